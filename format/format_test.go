package format

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBytes(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func writeGzip(t *testing.T, name string, payload []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func TestSniff(t *testing.T) {
	hdf5Header := append([]byte{}, hdf5Signature...)
	hdf5Header = append(hdf5Header, []byte("trailing content")...)

	tests := []struct {
		name string
		path string
		want Kind
	}{
		{name: "hdf5", path: writeBytes(t, "a.h5", hdf5Header), want: KindHDF5},
		{name: "gzip", path: writeGzip(t, "a.h5.gz", []byte("payload")), want: KindGzip},
		{name: "unknown", path: writeBytes(t, "a.txt", []byte("hello world")), want: KindUnknown},
		{name: "empty", path: writeBytes(t, "empty", nil), want: KindUnknown},
		{name: "short", path: writeBytes(t, "short", []byte{0x89}), want: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sniff(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSniffMissingFile(t *testing.T) {
	_, err := Sniff(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}

func TestLocalizePlain(t *testing.T) {
	path := writeBytes(t, "plain.h5", hdf5Signature)

	local, cleanup, err := Localize(path)
	require.NoError(t, err)
	assert.Equal(t, path, local)
	require.NoError(t, cleanup())

	// Cleanup of a plain file must not remove it.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestLocalizeGzip(t *testing.T) {
	payload := append([]byte{}, hdf5Signature...)
	payload = append(payload, []byte("container body")...)
	path := writeGzip(t, "wrapped.h5.gz", payload)

	local, cleanup, err := Localize(path)
	require.NoError(t, err)
	assert.NotEqual(t, path, local)

	got, err := os.ReadFile(local)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	require.NoError(t, cleanup())
	_, err = os.Stat(local)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalizeEmptyFile(t *testing.T) {
	path := writeBytes(t, "empty", nil)

	_, _, err := Localize(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLocalizeUnknown(t *testing.T) {
	path := writeBytes(t, "mystery.bin", []byte("no signature here"))

	_, _, err := Localize(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLocalizeTruncatedGzip(t *testing.T) {
	// A gzip signature with a corrupt body must fail during staging.
	path := writeBytes(t, "broken.gz", []byte{0x1f, 0x8b, 0xff})

	_, _, err := Localize(path)
	require.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "hdf5", KindHDF5.String())
	assert.Equal(t, "gzip", KindGzip.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}

package simex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndexSpec(t *testing.T) {
	tests := []struct {
		name string
		spec any
		want IndexSpec
	}{
		{name: "nil means all", spec: nil, want: All()},
		{name: "int", spec: 7, want: Single(7)},
		{name: "int64", spec: int64(7), want: Single(7)},
		{name: "numeric string", spec: "7", want: Single(7)},
		{name: "numeric string with spaces", spec: " 7 ", want: Single(7)},
		{name: "pair array", spec: [2]int{2, 5}, want: Range(2, 5)},
		{name: "pair slice", spec: []int{2, 5}, want: Range(2, 5)},
		{name: "colon string", spec: "2:5", want: Range(2, 5)},
		{name: "colon string with spaces", spec: "2 : 5", want: Range(2, 5)},
		{name: "already parsed", spec: Single(3), want: Single(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIndexSpec(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIndexSpecInvalid(t *testing.T) {
	tests := []struct {
		name string
		spec any
	}{
		{name: "float", spec: 3.5},
		{name: "bool", spec: true},
		{name: "empty string", spec: ""},
		{name: "non-numeric string", spec: "abc"},
		{name: "malformed colon string", spec: "2:b"},
		{name: "colon string missing start", spec: ":5"},
		{name: "three-element slice", spec: []int{1, 2, 3}},
		{name: "one-element slice", spec: []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIndexSpec(tt.spec)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSpec)
		})
	}
}

func TestResolve(t *testing.T) {
	const total = 13

	t.Run("all", func(t *testing.T) {
		sel, err := All().Resolve(total)
		require.NoError(t, err)
		assert.Equal(t, total, sel.Len())
		assert.Equal(t, 0, int(sel.Indices()[0]))
		assert.Equal(t, total-1, int(sel.Indices()[total-1]))
	})

	t.Run("all of empty dataset", func(t *testing.T) {
		sel, err := All().Resolve(0)
		require.NoError(t, err)
		assert.Equal(t, 0, sel.Len())
	})

	t.Run("single", func(t *testing.T) {
		sel, err := Single(2).Resolve(total)
		require.NoError(t, err)
		assert.Equal(t, []uint32{2}, sel.Indices())
	})

	t.Run("range", func(t *testing.T) {
		sel, err := Range(2, 5).Resolve(total)
		require.NoError(t, err)
		assert.Equal(t, []uint32{2, 3, 4}, sel.Indices())
	})

	t.Run("indices are ascending", func(t *testing.T) {
		sel, err := Range(0, total).Resolve(total)
		require.NoError(t, err)
		indices := sel.Indices()
		for i := 1; i < len(indices); i++ {
			assert.Less(t, indices[i-1], indices[i])
		}
	})
}

func TestResolveOutOfRange(t *testing.T) {
	const total = 13

	tests := []struct {
		name string
		spec IndexSpec
	}{
		{name: "negative single", spec: Single(-1)},
		{name: "single one past the end", spec: Single(total)},
		{name: "negative range start", spec: Range(-1, 3)},
		{name: "range end past total", spec: Range(0, total + 1)},
		{name: "empty range", spec: Range(4, 4)},
		{name: "inverted range", spec: Range(5, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.spec.Resolve(total)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrOutOfRange)
		})
	}
}

func TestIndexSpecString(t *testing.T) {
	assert.Equal(t, "all", All().String())
	assert.Equal(t, "7", Single(7).String())
	assert.Equal(t, "2:5", Range(2, 5).String())
}

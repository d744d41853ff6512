package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p := New(3, 4)

	assert.Equal(t, 3, p.Height)
	assert.Equal(t, 4, p.Width)
	assert.Len(t, p.Data, 12)
	assert.Equal(t, 0.0, p.Sum())
}

func TestFromData(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}

	p, err := FromData(2, 3, data)
	require.NoError(t, err)

	assert.Equal(t, 1.0, p.At(0, 0))
	assert.Equal(t, 4.0, p.At(1, 0))
	assert.Equal(t, 6.0, p.At(1, 2))
}

func TestFromDataShapeMismatch(t *testing.T) {
	_, err := FromData(2, 3, []float64{1, 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestFromRows(t *testing.T) {
	p, err := FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, p.Height)
	assert.Equal(t, 3, p.Width)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, p.Data)
}

func TestFromRowsRagged(t *testing.T) {
	_, err := FromRows([][]float64{
		{1, 2, 3},
		{4, 5},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestFromRowsEmpty(t *testing.T) {
	_, err := FromRows(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestSetAt(t *testing.T) {
	p := New(2, 2)
	p.Set(1, 0, 7.5)

	assert.Equal(t, 7.5, p.At(1, 0))
	assert.Equal(t, 7.5, p.Data[2])
}

func TestSum(t *testing.T) {
	p, err := FromData(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	assert.Equal(t, 10.0, p.Sum())
}

func TestClone(t *testing.T) {
	p, err := FromData(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	c := p.Clone()
	c.Set(0, 0, 99)

	assert.Equal(t, 1.0, p.At(0, 0))
	assert.Equal(t, 99.0, c.At(0, 0))
}

func TestEqual(t *testing.T) {
	a, err := FromData(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	assert.True(t, a.Equal(a.Clone()))

	b := a.Clone()
	b.Set(1, 1, 0)
	assert.False(t, a.Equal(b))

	c, err := FromData(1, 4, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}

func TestRows(t *testing.T) {
	p, err := FromData(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	rows := p.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, []float64{1, 2, 3}, rows[0])
	assert.Equal(t, []float64{4, 5, 6}, rows[1])

	// Rows alias the pattern storage.
	rows[1][0] = 40
	assert.Equal(t, 40.0, p.At(1, 0))
}

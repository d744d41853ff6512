package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionRegistration(t *testing.T) {
	c := NewCollection()
	c.New("photon_energy", "Beam photon energy", "eV").SetValue(4960.0)
	c.New("num_patterns", "Number of diffraction patterns", "").SetValue(13)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"photon_energy", "num_patterns"}, c.Names())
	assert.Equal(t, []string{"num_patterns", "photon_energy"}, c.SortedNames())
}

func TestCollectionDuplicatePanics(t *testing.T) {
	c := NewCollection()
	c.New("a", "", "")

	assert.Panics(t, func() { c.New("a", "", "") })
}

func TestCollectionGet(t *testing.T) {
	c := NewCollection()
	c.New("a", "first", "m").SetValue(1.5)

	p, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "first", p.Comment)
	assert.Equal(t, "m", p.Unit)

	_, ok = c.Get("missing")
	assert.False(t, ok)

	assert.Panics(t, func() { c.MustGet("missing") })
}

func TestParameterFloat(t *testing.T) {
	c := NewCollection()

	c.New("f", "", "").SetValue(2.5)
	v, err := c.MustGet("f").Float()
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	c.New("i", "", "").SetValue(3)
	v, err = c.MustGet("i").Float()
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	c.New("s", "", "").SetValue("nope")
	_, err = c.MustGet("s").Float()
	assert.Error(t, err)
}

func TestParameterInt(t *testing.T) {
	c := NewCollection()

	c.New("i", "", "").SetValue(13)
	v, err := c.MustGet("i").Int()
	require.NoError(t, err)
	assert.Equal(t, 13, v)

	c.New("f", "", "").SetValue(2.5)
	_, err = c.MustGet("f").Int()
	assert.Error(t, err)
}

func TestParameterPair(t *testing.T) {
	c := NewCollection()

	c.New("a", "", "").SetValue([2]float64{0, 81})
	pair, err := c.MustGet("a").Pair()
	require.NoError(t, err)
	assert.Equal(t, [2]float64{0, 81}, pair)

	c.New("b", "", "").SetValue([]float64{1, 2})
	pair, err = c.MustGet("b").Pair()
	require.NoError(t, err)
	assert.Equal(t, [2]float64{1, 2}, pair)

	c.New("c", "", "").SetValue([]float64{1, 2, 3})
	_, err = c.MustGet("c").Pair()
	assert.Error(t, err)
}

func TestParameterString(t *testing.T) {
	c := NewCollection()

	c.New("dist", "", "m").SetValue(0.13)
	assert.Equal(t, "dist = 0.13 m", c.MustGet("dist").String())

	c.New("count", "", "").SetValue(13)
	assert.Equal(t, "count = 13", c.MustGet("count").String())
}

func TestParameterValueUnset(t *testing.T) {
	c := NewCollection()
	p := c.New("later", "", "")

	assert.Nil(t, p.Value())
	_, err := p.Float()
	assert.Error(t, err)
}

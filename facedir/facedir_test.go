package facedir

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMULTREGT(t *testing.T) {
	tests := []struct {
		code string
		want []Dir
	}{
		{"X", []Dir{XMinus, XPlus}},
		{"Y", []Dir{YMinus, YPlus}},
		{"Z", []Dir{ZMinus, ZPlus}},
		{"XY", []Dir{XMinus, XPlus, YMinus, YPlus}},
		{"XZ", []Dir{XMinus, XPlus, ZMinus, ZPlus}},
		{"YZ", []Dir{YMinus, YPlus, ZMinus, ZPlus}},
		{"XYZ", Dirs[:]},
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			set, err := ParseMULTREGT(tc.code)
			require.NoError(t, err)
			assert.Equal(t, tc.want, slices.Collect(set.All()))
			assert.Equal(t, tc.code, set.String())
		})
	}

	for _, bad := range []string{"", "Q", "x", "ZX", "XX", "X+"} {
		t.Run("invalid "+bad, func(t *testing.T) {
			_, err := ParseMULTREGT(bad)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestSet(t *testing.T) {
	var empty Set
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, "{}", empty.String())

	s := NewSet(ZPlus)
	assert.True(t, s.Has(ZPlus))
	assert.False(t, s.Has(ZMinus))
	assert.False(t, s.Has(XPlus))
	assert.False(t, s.Has(Dir(42)))
	assert.Equal(t, "{Z+}", s.String())

	s2 := s.With(ZMinus, Dir(-1))
	assert.Equal(t, 2, s2.Len())
	assert.Equal(t, "Z", s2.String())
	assert.Equal(t, 1, s.Len(), "With must not mutate the receiver")

	assert.Equal(t, 6, All().Len())
	assert.Equal(t, NewSet(XPlus, XMinus), NewSet(XMinus, XPlus))
}

func TestDir(t *testing.T) {
	for _, d := range Dirs {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.NotEqual(t, d, d.Opposite())

		di, dj, dk := d.Offset()
		oi, oj, ok := d.Opposite().Offset()
		assert.Equal(t, [3]int{-di, -dj, -dk}, [3]int{oi, oj, ok})

		parsed, err := Parse(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}

	d, err := Parse("k-")
	require.NoError(t, err)
	assert.Equal(t, ZMinus, d)

	d, err = Parse("J")
	require.NoError(t, err)
	assert.Equal(t, YPlus, d)

	_, err = Parse("W+")
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, "Dir(9)", Dir(9).String())
}

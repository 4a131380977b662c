package can

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStandardID(t *testing.T) {
	id, err := NewStandardID(0x7FF)
	assert.Nil(t, err)
	assert.EqualValues(t, 0x7FF, id.Value())
	assert.Equal(t, Standard, id.Kind())
	assert.False(t, id.IsExtended())

	_, err = NewStandardID(0x800)
	assert.ErrorIs(t, err, ErrIDOutOfRange)
}

func TestNewExtendedID(t *testing.T) {
	id, err := NewExtendedID(0x1FFFFFFF)
	assert.Nil(t, err)
	assert.EqualValues(t, 0x1FFFFFFF, id.Value())
	assert.Equal(t, Extended, id.Kind())
	assert.True(t, id.IsExtended())

	_, err = NewExtendedID(0x20000000)
	assert.ErrorIs(t, err, ErrIDOutOfRange)
}

func TestIDEquality(t *testing.T) {
	a, _ := NewStandardID(0x123)
	b, _ := NewStandardID(0x123)
	c, _ := NewExtendedID(0x123)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestIDCompareSameKind(t *testing.T) {
	low, _ := NewStandardID(0x100)
	high, _ := NewStandardID(0x200)
	assert.Equal(t, -1, low.Compare(high))
	assert.Equal(t, 1, high.Compare(low))
	assert.Equal(t, 0, low.Compare(low))

	extLow, _ := NewExtendedID(0x100)
	extHigh, _ := NewExtendedID(0x18DAF142)
	assert.Equal(t, -1, extLow.Compare(extHigh))
	assert.Equal(t, 1, extHigh.Compare(extLow))
}

func TestIDCompareMixedKinds(t *testing.T) {
	std, _ := NewStandardID(0x123)

	// Equal leading 11 bits : the standard frame wins arbitration
	// because the extended frame's IDE bit is recessive.
	ext, _ := NewExtendedID(0x123 << 18)
	assert.Equal(t, -1, std.Compare(ext))
	assert.Equal(t, 1, ext.Compare(std))

	// Extended with lower leading bits beats the standard frame.
	extLow, _ := NewExtendedID(0x122 << 18)
	assert.Equal(t, 1, std.Compare(extLow))
	assert.Equal(t, -1, extLow.Compare(std))

	// Extended with higher leading bits loses.
	extHigh, _ := NewExtendedID(0x124 << 18)
	assert.Equal(t, -1, std.Compare(extHigh))
	assert.Equal(t, 1, extHigh.Compare(std))

	// The bits below the shared 11 never decide a mixed comparison.
	extTail, _ := NewExtendedID(0x123<<18 | 0x3FFFF)
	assert.Equal(t, -1, std.Compare(extTail))
}

func TestIDCompareAntisymmetric(t *testing.T) {
	mk := func(kind IDKind, value uint32) ID {
		if kind == Extended {
			id, err := NewExtendedID(value)
			assert.Nil(t, err)
			return id
		}
		id, err := NewStandardID(value)
		assert.Nil(t, err)
		return id
	}
	ids := []ID{
		mk(Standard, 0),
		mk(Standard, 0x123),
		mk(Standard, 0x7FF),
		mk(Extended, 0),
		mk(Extended, 0x123<<18),
		mk(Extended, 0x18DAF142),
		mk(Extended, 0x1FFFFFFF),
	}
	for _, a := range ids {
		for _, b := range ids {
			assert.Equal(t, a.Compare(b), -b.Compare(a), "compare(%v, %v)", a, b)
			if a.Compare(b) == 0 {
				assert.Equal(t, a, b)
			}
		}
	}
}

func TestIDBase(t *testing.T) {
	ext, _ := NewExtendedID(0x123<<18 | 0x2FF)
	base := ext.Base()
	assert.Equal(t, Standard, base.Kind())
	assert.EqualValues(t, 0x123, base.Value())

	std, _ := NewStandardID(0x456)
	assert.Equal(t, std, std.Base())
}

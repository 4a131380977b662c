package can

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOBDBroadcast(t *testing.T) {
	std := OBDBroadcast(Standard)
	assert.Equal(t, Standard, std.Kind())
	assert.EqualValues(t, 0x7DF, std.Value())

	ext := OBDBroadcast(Extended)
	assert.Equal(t, Extended, ext.Kind())
	assert.EqualValues(t, 0x18DB33F1, ext.Value())
}

func TestOBDRequestAddressStandard(t *testing.T) {
	id, _ := NewStandardID(0x7E0)
	req, err := NewOBDRequestAddress(id)
	assert.Nil(t, err)
	assert.Equal(t, id, req.ID())

	resp := req.Response()
	assert.EqualValues(t, 0x7E8, resp.ID().Value())
	assert.Equal(t, req, resp.Request())

	outside, _ := NewStandardID(0x7DF)
	_, err = NewOBDRequestAddress(outside)
	assert.ErrorIs(t, err, ErrNotOBDAddress)
}

func TestOBDRequestAddressExtended(t *testing.T) {
	id, _ := NewExtendedID(0x18DAF142)
	req, err := NewOBDRequestAddress(id)
	assert.Nil(t, err)

	resp := req.Response()
	assert.EqualValues(t, 0x18DA42F1, resp.ID().Value())

	// The byte swap is its own inverse.
	assert.Equal(t, req.ID(), resp.Request().ID())
}

func TestOBDResponseAddress(t *testing.T) {
	id, _ := NewStandardID(0x7EF)
	resp, err := NewOBDResponseAddress(id)
	assert.Nil(t, err)
	assert.EqualValues(t, 0x7E7, resp.Request().ID().Value())

	outside, _ := NewStandardID(0x7F0)
	_, err = NewOBDResponseAddress(outside)
	assert.ErrorIs(t, err, ErrNotOBDAddress)

	ext, _ := NewExtendedID(0x18DAF1AB)
	extResp, err := NewOBDResponseAddress(ext)
	assert.Nil(t, err)
	assert.EqualValues(t, 0x18DAABF1, extResp.Request().ID().Value())
}

func TestSwapOBDTargetSource(t *testing.T) {
	assert.EqualValues(t, 0x18DA42F1, swapOBDTargetSource(0x18DAF142))
	assert.EqualValues(t, 0x18DAF142, swapOBDTargetSource(0x18DA42F1))
}

func TestOBDResponseFilterStandard(t *testing.T) {
	filter := OBDResponseFilter(Standard)
	for raw := uint32(0x7E8); raw <= 0x7EF; raw++ {
		id, _ := NewStandardID(raw)
		assert.True(t, filter.Matches(id), "%#X", raw)
	}
	before, _ := NewStandardID(0x7E7)
	after, _ := NewStandardID(0x7F0)
	assert.False(t, filter.Matches(before))
	assert.False(t, filter.Matches(after))

	// Same bits in extended format must not pass.
	ext, _ := NewExtendedID(0x7E8)
	assert.False(t, filter.Matches(ext))
}

func TestOBDResponseFilterExtended(t *testing.T) {
	filter := OBDResponseFilter(Extended)
	inRange, _ := NewExtendedID(0x18DAF1AB)
	assert.True(t, filter.Matches(inRange))

	broadcast, _ := NewExtendedID(0x18DB33F1)
	request, _ := NewExtendedID(0x18DA42F1)
	assert.False(t, filter.Matches(broadcast))
	assert.False(t, filter.Matches(request))
}

package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(64)
	assert.Equal(uint64(64), mem.Size())

	for _, addr := range []uint64{0, 1, 7, 31, 56} {
		err := mem.SetUint64(addr, 0x0123_4567_89ab_cdef)
		assert.NoError(err)
		value, err := mem.Uint64(addr)
		assert.NoError(err)
		assert.Equal(uint64(0x0123_4567_89ab_cdef), value, "addr %d", addr)
	}

	err := mem.SetUint32(60, 0xcafe_f00d)
	assert.NoError(err)
	word, err := mem.Uint32(60)
	assert.NoError(err)
	assert.Equal(uint32(0xcafe_f00d), word)
}

func TestMemory_LittleEndian(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(16)
	assert.NoError(mem.SetUint64(0, 0x0807_0605_0403_0201))

	word, err := mem.Uint32(0)
	assert.NoError(err)
	assert.Equal(uint32(0x0403_0201), word)

	word, err = mem.Uint32(4)
	assert.NoError(err)
	assert.Equal(uint32(0x0807_0605), word)
}

func TestMemory_Bounds(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(64)

	_, err := mem.Uint64(57)
	assert.ErrorIs(err, ErrBounds)
	assert.ErrorIs(mem.SetUint64(64, 1), ErrBounds)
	assert.ErrorIs(mem.SetUint64(^uint64(0), 1), ErrBounds)
	_, err = mem.Uint32(61)
	assert.ErrorIs(err, ErrBounds)

	var ea ErrAddress
	assert.ErrorAs(err, &ea)
	assert.Equal(uint64(61), ea.Addr)
	assert.Equal(uint64(INSTRUCTION_SIZE), ea.Width)

	// Failed stores leave memory untouched.
	value, err := mem.Uint64(56)
	assert.NoError(err)
	assert.Equal(uint64(0), value)
}

func TestMemory_Effective(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(64)

	addr, err := mem.Effective(16, -8, WORD_SIZE)
	assert.NoError(err)
	assert.Equal(uint64(8), addr)

	addr, err = mem.Effective(48, 8, WORD_SIZE)
	assert.NoError(err)
	assert.Equal(uint64(56), addr)

	_, err = mem.Effective(4, -8, WORD_SIZE)
	assert.ErrorIs(err, ErrBounds)

	_, err = mem.Effective(50, 8, WORD_SIZE)
	assert.ErrorIs(err, ErrBounds)
}

func TestMemory_Reset(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(16)
	assert.NoError(mem.SetUint64(8, 0xffff))
	mem.Reset()

	value, err := mem.Uint64(8)
	assert.NoError(err)
	assert.Equal(uint64(0), value)
}

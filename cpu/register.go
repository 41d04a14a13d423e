package cpu

import (
	"math"
)

const (
	REGISTER_COUNT = 32 // Number of general purpose registers.
	REG_SP         = 31 // Stack pointer, by convention.
)

// RegisterFile holds the untyped 64-bit general purpose registers.
type RegisterFile [REGISTER_COUNT]uint64

// Int returns register n as a two's-complement signed integer.
func (rf *RegisterFile) Int(n int) int64 {
	return int64(rf[n])
}

// SetInt sets register n from a signed integer.
func (rf *RegisterFile) SetInt(n int, value int64) {
	rf[n] = uint64(value)
}

// Float returns register n reinterpreted as an IEEE-754 double.
func (rf *RegisterFile) Float(n int) float64 {
	return math.Float64frombits(rf[n])
}

// SetFloat stores the IEEE-754 bit pattern of value in register n.
func (rf *RegisterFile) SetFloat(n int, value float64) {
	rf[n] = math.Float64bits(value)
}

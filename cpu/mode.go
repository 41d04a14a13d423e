package cpu

// Mode is the privilege level of the CPU.
//
// The mode is switched by priv, but no instruction consults it.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_USER       = Mode(0) // user
	MODE_SUPERVISOR = Mode(1) // supervisor
)

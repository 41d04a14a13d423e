// Package io provides the console channel for the tinker emulator.
// The CPU reads unsigned decimal words from the channel's input stream and
// writes unsigned decimal words to its output stream.
package io

// Channel defines the interface for the CPU console.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive blocks for, and returns, the next input word.
	Receive() (value uint64, err error)
	// Send writes a word to the channel.
	Send(value uint64) error
}

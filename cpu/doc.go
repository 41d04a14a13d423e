// Package cpu implements the processor core of the tinker emulator.
//
// The CPU consists of a program counter (PC), thirty-two 64-bit general
// purpose registers (r0-r31), a flat byte-addressable memory, and a
// user/supervisor privilege mode. Register r31 is the stack pointer by
// convention; call and return keep the return address in a memory slot just
// below it.
//
// Instructions are fixed 32-bit little-endian words, laid out MSB first as
// opcode[31:27] r1[26:22] r2[21:17] r3[16:12] literal[11:0]. Each of the 30
// opcodes is dispatched through a fixed handler table.
package cpu

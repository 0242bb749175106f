// Package bus implements the CPU's 16-bit address space: 2 KiB of
// mirrored RAM, a reserved PPU register window, an unmapped region,
// and cartridge PRG-ROM reached through a mapper.Mapper.
package bus

import (
	"log"

	"github.com/bdwalton/nescore/mapper"
)

const (
	ramSize   = 0x0800
	ramMask   = 0x07FF
	ramEnd    = 0x1FFF
	ppuEnd    = 0x3FFF
	unmapEnd  = 0x7FFF
	prgWindow = 0x8000
)

// Bus is the CPU's view of memory: internal RAM plus a cartridge
// reached through its mapper. It owns RAM outright and holds a
// reference to the mapper for the lifetime of the CPU, per the
// single-owner resource model this core assumes.
type Bus struct {
	ram []uint8
	m   mapper.Mapper
}

// New constructs a Bus backed by fresh, zeroed RAM and the given
// mapper. A nil mapper is valid and used by tests that only exercise
// the RAM window.
func New(m mapper.Mapper) *Bus {
	return &Bus{
		ram: make([]uint8, ramSize),
		m:   m,
	}
}

// Read8 resolves addr per the address map and returns the byte there.
// Reads outside any mapped range never fault: they return 0.
func (b *Bus) Read8(addr uint16) uint8 {
	switch {
	case addr <= ramEnd:
		return b.ram[addr&ramMask]
	case addr <= ppuEnd:
		// PPU register window: reserved, reads return 0.
		return 0
	case addr <= unmapEnd:
		log.Printf("bus: read from unmapped address %#04x", addr)
		return 0
	default:
		if b.m == nil {
			log.Printf("bus: read from %#04x with no cartridge mapped", addr)
			return 0
		}
		return b.m.PrgRead(addr)
	}
}

// Write8 writes v to addr iff addr maps to RAM or the PPU register
// window. Writes to ROM or to an unmapped region are no-ops, logged
// at warn level.
func (b *Bus) Write8(addr uint16, v uint8) {
	switch {
	case addr <= ramEnd:
		b.ram[addr&ramMask] = v
	case addr <= ppuEnd:
		// PPU register window: writes accepted silently.
	case addr <= unmapEnd:
		log.Printf("bus: discarding write of %#02x to unmapped address %#04x", v, addr)
	default:
		if b.m == nil {
			log.Printf("bus: write of %#02x to %#04x with no cartridge mapped", v, addr)
			return
		}
		b.m.PrgWrite(addr, v)
	}
}

// Read16 reads a little-endian word: the low byte at addr, the high
// byte at addr+1 (wrapping modulo 2^16).
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read8(addr))
	hi := uint16(b.Read8(addr + 1))
	return lo | hi<<8
}

// Write16 writes v as a little-endian word at addr, addr+1.
func (b *Bus) Write16(addr uint16, v uint16) {
	b.Write8(addr, uint8(v))
	b.Write8(addr+1, uint8(v>>8))
}

// Read16ZeroPage reads a little-endian word whose high byte wraps
// within the zero page: the low byte is at ptr, the high byte at
// (ptr+1) mod 256. This is the addressing-mode helper IndirectX and
// IndirectY both need, and differs from Read16 only in how the high
// byte's address wraps.
func (b *Bus) Read16ZeroPage(ptr uint8) uint16 {
	lo := uint16(b.Read8(uint16(ptr)))
	hi := uint16(b.Read8(uint16(ptr + 1)))
	return lo | hi<<8
}

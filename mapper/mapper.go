// Package mapper implements the cartridge mapper abstraction the bus
// uses to turn a CPU address into a PRG-ROM (and, for a future PPU, a
// CHR-ROM) offset. Only mapper 0 (NROM) has defined banking in this
// module's scope; any other mapper id resolves to NROM, logged as
// unsupported, since nothing beyond mapper 0 is addressed by the
// contracts this core implements.
package mapper

import (
	"fmt"
	"log"

	"github.com/bdwalton/nescore/rom"
)

// Mapper translates CPU/PPU addresses into offsets within a
// cartridge's PRG-ROM and CHR-ROM, per the banking scheme the
// cartridge's mapper id selects.
type Mapper interface {
	// ID returns the iNES mapper number this implementation serves.
	ID() uint8
	// Name returns a short human-readable identifier, for logging.
	Name() string
	// PrgRead returns the PRG-ROM byte mapped to CPU address addr,
	// which must be in $8000-$FFFF. The mapper owns the
	// subtract-and-fold arithmetic.
	PrgRead(addr uint16) uint8
	// PrgWrite attempts a PRG-ROM write at CPU address addr. NROM
	// (and every mapper this module implements) treats PRG-ROM as
	// read-only and logs the rejected write itself; the bus forwards
	// the write without logging it.
	PrgWrite(addr uint16, v uint8)
	// ChrRead returns the CHR-ROM byte at the given offset. Unused
	// by the CPU core; retained for a future PPU package.
	ChrRead(addr uint16) uint8
}

// registry of constructors, keyed by mapper id. A constructor rather
// than a shared instance, since each cartridge needs its own PRG/CHR
// view.
var registry = map[uint8]func(r *rom.Rom) Mapper{}

// Register adds a mapper constructor under the given iNES mapper id.
// Re-registering an id already in use is a programming error and
// panics.
func Register(id uint8, ctor func(r *rom.Rom) Mapper) {
	if _, ok := registry[id]; ok {
		panic(fmt.Sprintf("mapper: id %d already registered", id))
	}
	registry[id] = ctor
}

func init() {
	Register(0, newNROM)
}

// Get resolves r's mapper id to an implementation. An id this module
// doesn't implement falls back to NROM, logged as unsupported, rather
// than failing the whole load: nothing in this module's scope defines
// mapper-1+ banking, and the bus still needs a mapper to talk to.
func Get(r *rom.Rom) Mapper {
	ctor, ok := registry[r.MapperID()]
	if !ok {
		log.Printf("mapper: unsupported mapper id %d, falling back to NROM", r.MapperID())
		ctor = newNROM
	}
	return ctor(r)
}

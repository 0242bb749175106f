package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdwalton/nescore/rom"
)

func newTestRom(t *testing.T, prgLen int) *rom.Rom {
	t.Helper()
	header := []byte{'N', 'E', 'S', 0x1A, uint8(prgLen / prgBlockSizeForTest), 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]byte, prgLen)
	// Mixing in the page number makes every byte differ from the one
	// 16 KiB later, so a fold shows up as a changed read.
	for i := range prg {
		prg[i] = uint8(i) ^ uint8(i>>8)
	}
	img := append(header, prg...)
	r, err := rom.Parse(img)
	require.NoError(t, err)
	return r
}

const prgBlockSizeForTest = 16384

func TestNROMFolds16KiBPrg(t *testing.T) {
	r := newTestRom(t, 16384)
	m := Get(r)

	assert.Equal(t, uint8(0), m.ID())
	assert.Equal(t, r.PRG[0], m.PrgRead(0x8000))
	assert.Equal(t, r.PRG[0], m.PrgRead(0xC000)) // mirrored half
	assert.Equal(t, r.PRG[0x3FFF], m.PrgRead(0xBFFF))
	assert.Equal(t, r.PRG[0x3FFF], m.PrgRead(0xFFFF))
}

func TestNROM32KiBPrgIsNotFolded(t *testing.T) {
	r := newTestRom(t, 32768)
	m := Get(r)

	assert.Equal(t, r.PRG[0], m.PrgRead(0x8000))
	assert.Equal(t, r.PRG[0x7FFF], m.PrgRead(0xFFFF))
	assert.NotEqual(t, m.PrgRead(0x8000), m.PrgRead(0xC000))
}

func TestPrgWriteIsRejectedSilently(t *testing.T) {
	r := newTestRom(t, 16384)
	m := Get(r)

	assert.NotPanics(t, func() { m.PrgWrite(0x8000, 0xFF) })
	assert.Equal(t, r.PRG[0], m.PrgRead(0x8000))
}

func TestUnknownMapperIDFallsBackToNROM(t *testing.T) {
	header := []byte{'N', 'E', 'S', 0x1A, 1, 0, 0xF0, 0xF0, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]byte, 16384)
	r, err := rom.Parse(append(header, prg...))
	require.NoError(t, err)
	assert.NotEqual(t, uint8(0), r.MapperID())

	m := Get(r)
	assert.Equal(t, uint8(0), m.ID(), "unsupported ids fall back to NROM")
}

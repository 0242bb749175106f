package rom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildImage(prgBlocks, chrBlocks, flags6, flags7 uint8, trainer, prg, chr []byte) []byte {
	header := []byte{'N', 'E', 'S', 0x1A, prgBlocks, chrBlocks, flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0}
	out := append([]byte{}, header...)
	out = append(out, trainer...)
	out = append(out, prg...)
	out = append(out, chr...)
	return out
}

func TestParseRejectsShortInput(t *testing.T) {
	_, err := Parse([]byte{'N', 'E', 'S'})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestParseRejectsBadMagic(t *testing.T) {
	img := buildImage(1, 1, 0, 0, nil, make([]byte, prgBlockSize), make([]byte, chrBlockSize))
	img[0] = 'X'
	_, err := Parse(img)
	assert.ErrorIs(t, err, ErrInvalidMagic)
}

func TestParseRejectsNES2(t *testing.T) {
	img := buildImage(1, 1, 0, flags7NES2Val, nil, make([]byte, prgBlockSize), make([]byte, chrBlockSize))
	_, err := Parse(img)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseRejectsTruncatedPRG(t *testing.T) {
	img := buildImage(1, 0, 0, 0, nil, make([]byte, prgBlockSize-1), nil)
	_, err := Parse(img)
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestParseNROM16KiB(t *testing.T) {
	prg := make([]byte, prgBlockSize)
	prg[0] = 0xEA
	chr := make([]byte, chrBlockSize)
	chr[0] = 0x42

	// Flags6: vertical mirroring (bit 0), mapper low nibble 0.
	img := buildImage(1, 1, 0x01, 0x00, nil, prg, chr)

	r, err := Parse(img)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), r.MapperID())
	assert.Equal(t, Vertical, r.Mirroring())
	assert.False(t, r.HasBattery())
	assert.Len(t, r.PRG, prgBlockSize)
	assert.Equal(t, uint8(0xEA), r.PRG[0])
	assert.Len(t, r.CHR, chrBlockSize)
	assert.Equal(t, uint8(0x42), r.CHR[0])
}

func TestParseHonorsTrainer(t *testing.T) {
	trainer := make([]byte, trainerSize)
	trainer[0] = 0x99
	prg := make([]byte, prgBlockSize)
	prg[0] = 0x11

	img := buildImage(1, 0, flags6Trainer, 0, trainer, prg, nil)

	r, err := Parse(img)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x11), r.PRG[0])
}

func TestMapperIDCombinesBothNibbles(t *testing.T) {
	// Flags6 high nibble = 1, Flags7 high nibble = 2 -> mapper id 0x21.
	img := buildImage(1, 0, 0x10, 0x20, nil, make([]byte, prgBlockSize), nil)
	r, err := Parse(img)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x21), r.MapperID())
}

func TestFourScreenDominatesMirroring(t *testing.T) {
	img := buildImage(1, 0, flags6FourScreen|flags6Mirroring, 0, nil, make([]byte, prgBlockSize), nil)
	r, err := Parse(img)
	require.NoError(t, err)
	assert.Equal(t, FourScreen, r.Mirroring())
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	// Sanity check that the sentinel errors are distinguishable from
	// each other via errors.Is, not just by string comparison.
	assert.False(t, errors.Is(ErrInvalidMagic, ErrUnsupportedFormat))
}

package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdwalton/nescore/bus"
	"github.com/bdwalton/nescore/cpu"
)

func TestLineFormatsImmediateLoad(t *testing.T) {
	b := bus.New(nil)
	c := cpu.New(b)
	c.Load([]byte{0xA9, 0x05})

	line, ok := Line(c)
	require.True(t, ok)
	assert.Contains(t, line, "A9 05")
	assert.Contains(t, line, "LDA")
	assert.Contains(t, line, "#$05")
	assert.Contains(t, line, "A:00 X:00 Y:00")
}

func TestLineReportsUnknownOpcode(t *testing.T) {
	b := bus.New(nil)
	c := cpu.New(b)
	c.Load([]byte{0x02})

	_, ok := Line(c)
	assert.False(t, ok)
}

func TestLineFormatsAbsoluteJMPWithoutValue(t *testing.T) {
	b := bus.New(nil)
	b.Write8(0x0600, 0x4C)
	b.Write8(0x0601, 0x34)
	b.Write8(0x0602, 0x12)
	c := cpu.New(b)
	c.Load([]byte{0x4C, 0x34, 0x12})

	line, ok := Line(c)
	require.True(t, ok)
	assert.Contains(t, line, "$1234")
	assert.NotContains(t, line, "$1234 =")
}

func TestLineFormatsZeroPageWithValue(t *testing.T) {
	b := bus.New(nil)
	b.Write8(0x0010, 0x99)
	c := cpu.New(b)
	c.Load([]byte{0xA5, 0x10}) // LDA $10

	line, ok := Line(c)
	require.True(t, ok)
	assert.Contains(t, line, "$10 = 99")
}

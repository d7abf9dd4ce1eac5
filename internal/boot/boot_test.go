package boot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBootROM(t *testing.T) {
	t.Run("invalid length", func(t *testing.T) {
		_, err := LoadBootROM(make([]byte, 2304))
		assert.Error(t, err)
	})
	t.Run("unknown image", func(t *testing.T) {
		b := make([]byte, Size)
		b[0] = 0x31
		b[0xFF] = 0x50

		rom, err := LoadBootROM(b)
		require.NoError(t, err)

		assert.Equal(t, uint8(0x31), rom.Read(0x0000))
		assert.Equal(t, uint8(0x50), rom.Read(0x00FF))
		assert.Equal(t, uint8(0xFF), rom.Read(0x0100))
		assert.True(t, rom.Contains(0x00FF))
		assert.False(t, rom.Contains(0x0100))
		assert.Len(t, rom.Checksum(), 32)
		assert.Equal(t, "unknown", rom.Model())

		// the image is copied
		b[0] = 0x00
		assert.Equal(t, uint8(0x31), rom.Read(0x0000))
	})
	t.Run("nil", func(t *testing.T) {
		var rom *ROM
		assert.Equal(t, "none", rom.Model())
		assert.Empty(t, rom.Checksum())
		assert.False(t, rom.Contains(0))
	})
}

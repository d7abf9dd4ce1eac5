package interrupts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSource_Vector(t *testing.T) {
	for _, test := range []struct {
		src    Source
		vector uint16
		flag   uint8
	}{
		{VBlank, 0x0040, VBlankFlag},
		{LCD, 0x0048, LCDFlag},
		{Timer, 0x0050, TimerFlag},
		{Serial, 0x0058, SerialFlag},
		{Joypad, 0x0060, JoypadFlag},
	} {
		t.Run(test.src.String(), func(t *testing.T) {
			assert.Equal(t, test.vector, test.src.Vector())
			assert.Equal(t, test.flag, test.src.Flag())
		})
	}
}

func TestService_Take(t *testing.T) {
	t.Run("priority", func(t *testing.T) {
		s := NewService()
		s.Enable = 0x1F
		s.Request(Timer)
		s.Request(VBlank)

		src, ok := s.Take()
		assert.True(t, ok)
		assert.Equal(t, VBlank, src)

		src, ok = s.Take()
		assert.True(t, ok)
		assert.Equal(t, Timer, src)

		_, ok = s.Take()
		assert.False(t, ok)
		assert.Zero(t, s.Flag)
	})
	t.Run("masked", func(t *testing.T) {
		s := NewService()
		s.Enable = TimerFlag
		s.Request(VBlank)

		_, ok := s.Pending()
		assert.False(t, ok)
		assert.False(t, s.HasInterrupts())
		assert.True(t, s.Requested(VBlank))
	})
	t.Run("pending does not clear", func(t *testing.T) {
		s := NewService()
		s.Enable = 0xFF
		s.Request(Joypad)

		src, ok := s.Pending()
		assert.True(t, ok)
		assert.Equal(t, Joypad, src)
		assert.Equal(t, uint8(JoypadFlag), s.Flag)
	})
}

func TestService_Flag(t *testing.T) {
	s := NewService()
	s.WriteFlag(0xFF)
	assert.Equal(t, uint8(0x1F), s.Flag)
	assert.Equal(t, uint8(0xFF), s.ReadFlag())

	s.WriteFlag(0x05)
	assert.Equal(t, uint8(0xE5), s.ReadFlag())
}

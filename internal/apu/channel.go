package apu

// channel holds the state of a sound channel that is visible through
// the registers: whether it is playing, its DAC, and its length timer.
type channel struct {
	enabled    bool
	dacEnabled bool

	// NRx1
	lengthCounter uint
	maxLength     uint

	// NRx4
	lengthCounterEnabled bool

	channelBit uint8
}

func newChannel(channelBit uint8, maxLength uint) *channel {
	return &channel{
		channelBit: channelBit,
		maxLength:  maxLength,
	}
}

// setLength loads the length timer from the length field of NRx1.
func (c *channel) setLength(length uint8) {
	c.lengthCounter = c.maxLength - uint(length)
}

// setDAC powers the channel's DAC, a channel with its DAC off can
// never be enabled.
func (c *channel) setDAC(on bool) {
	c.dacEnabled = on
	if !on {
		c.enabled = false
	}
}

// setNRx4 handles the length enable and trigger bits.
func (c *channel) setNRx4(v uint8) {
	c.lengthCounterEnabled = v&0x40 != 0
	if v&0x80 != 0 {
		c.enabled = c.dacEnabled
		if c.lengthCounter == 0 {
			c.lengthCounter = c.maxLength
		}
	}
}

func (c *channel) isEnabled() bool {
	return c.enabled && c.dacEnabled
}

func (c *channel) lengthStep() {
	if c.lengthCounterEnabled && c.lengthCounter > 0 {
		c.lengthCounter--
		if c.lengthCounter == 0 {
			c.enabled = false
		}
	}
}

func (c *channel) reset() {
	*c = channel{channelBit: c.channelBit, maxLength: c.maxLength}
}

package display

import (
	"context"
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDriver struct{ name string }

func (f *fakeDriver) Run(context.Context, Emulator) error { return nil }

func TestDrivers(t *testing.T) {
	defer func(installed []*InstalledDriver) { InstalledDrivers = installed }(InstalledDrivers)
	InstalledDrivers = nil

	_, err := GetDriver("auto")
	assert.Error(t, err)

	var scale int
	var vsync bool
	b, a := &fakeDriver{"b"}, &fakeDriver{"a"}
	Install("b", b, []DriverOption{{Name: "scale", Default: 4, Value: &scale, Description: "window scale"}})
	Install("a", a, []DriverOption{{Name: "vsync", Default: true, Value: &vsync, Description: "vertical sync"}})

	d, err := GetDriver("auto")
	require.NoError(t, err)
	assert.Same(t, a, d)
	d, err = GetDriver("b")
	require.NoError(t, err)
	assert.Same(t, b, d)
	_, err = GetDriver("c")
	assert.Error(t, err)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"-b-scale", "3"}))
	assert.Equal(t, 3, scale)
	assert.True(t, vsync)
}

func TestFrameTime(t *testing.T) {
	assert.InDelta(t, 16.74, float64(FrameTime)/float64(time.Millisecond), 0.01)
}

// Package display provides the host windows that present the emulator.
// Drivers register themselves with Install from an init function, and
// are only compiled in with their build tag, so that a headless build
// carries no cgo dependencies.
package display

import (
	"context"
	"flag"
	"fmt"
	"sort"
	"time"

	"github.com/thelolagemann/dmgboy/internal/cpu"
	"github.com/thelolagemann/dmgboy/internal/joypad"
	"github.com/thelolagemann/dmgboy/internal/ppu"
)

// FrameTime is the duration of one frame at the DMG's clock speed.
const FrameTime = time.Second * ppu.FrameCycles / cpu.ClockSpeed

// Emulator is the interface that wraps the methods a driver uses to
// run and present the emulator.
type Emulator interface {
	// Title returns the title of the loaded cartridge.
	Title() string
	// Frame emulates until the next frame is complete.
	Frame() error
	// Framebuffer returns the last completed frame.
	Framebuffer() *ppu.Frame
	Press(button joypad.Button)
	Release(button joypad.Button)
}

// Driver is the interface that wraps the basic methods for a
// display driver.
type Driver interface {
	// Run presents emu until the window is closed, ctx is done or
	// the emulator returns an error.
	Run(ctx context.Context, emu Emulator) error
}

// DriverOption is a display driver option, exposed as the command
// line flag <driver>-<name>.
type DriverOption struct {
	Name        string // name of the option
	Default     any    // default value of the option
	Value       any    // pointer to the value of the option
	Description string // description of the option
}

// InstalledDriver is a driver that has been installed. This is
// used to allow drivers to register their name.
type InstalledDriver struct {
	Name    string
	Options []DriverOption
	Driver
}

// InstalledDrivers is a list of all the installed drivers. Drivers
// should call Install in their init() function.
var InstalledDrivers []*InstalledDriver

// Install registers a display driver with the given name.
func Install(name string, driver Driver, options []DriverOption) {
	InstalledDrivers = append(InstalledDrivers, &InstalledDriver{
		Name:    name,
		Options: options,
		Driver:  driver,
	})
	sort.Slice(InstalledDrivers, func(i, j int) bool {
		return InstalledDrivers[i].Name < InstalledDrivers[j].Name
	})
}

// GetDriver returns the driver with the given name, or the first
// installed driver for "auto". An error is returned if no such driver
// is installed.
func GetDriver(name string) (Driver, error) {
	if len(InstalledDrivers) == 0 {
		return nil, fmt.Errorf("display: no drivers installed")
	}
	if name == "auto" {
		return InstalledDrivers[0].Driver, nil
	}
	for _, driver := range InstalledDrivers {
		if driver.Name == name {
			return driver.Driver, nil
		}
	}

	return nil, fmt.Errorf("display: unknown driver %q", name)
}

// RegisterFlags registers the options of every installed driver with fs.
func RegisterFlags(fs *flag.FlagSet) {
	for _, driver := range InstalledDrivers {
		for _, opt := range driver.Options {
			name := fmt.Sprintf("%s-%s", driver.Name, opt.Name)
			switch v := opt.Value.(type) {
			case *string:
				fs.StringVar(v, name, opt.Default.(string), opt.Description)
			case *bool:
				fs.BoolVar(v, name, opt.Default.(bool), opt.Description)
			case *int:
				fs.IntVar(v, name, opt.Default.(int), opt.Description)
			case *float64:
				fs.Float64Var(v, name, opt.Default.(float64), opt.Description)
			}
		}
	}
}

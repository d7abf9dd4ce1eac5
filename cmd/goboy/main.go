// Command goboy runs a DMG ROM, either headless or in a window
// provided by one of the display drivers compiled in.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/profile"
	"github.com/thelolagemann/dmgboy/internal/gameboy"
	"github.com/thelolagemann/dmgboy/internal/ppu/palette"
	"github.com/thelolagemann/dmgboy/pkg/display"
	"github.com/thelolagemann/dmgboy/pkg/log"
	"github.com/thelolagemann/dmgboy/pkg/utils"
)

type config struct {
	rom, boot  string
	frames     int
	screenshot string
	scale      int
	palette    int
	driver     string
	trace      bool
	strict     bool
	serial     bool
	hash       bool
	profile    string
	level      string
}

func main() {
	cfg := config{}
	flag.StringVar(&cfg.rom, "rom", "", "The rom file to load (.gb, .gz, .zip or .7z)")
	flag.StringVar(&cfg.boot, "boot", "", "The boot rom file to load")
	flag.IntVar(&cfg.frames, "frames", 0, "Number of frames to run headless, 0 runs until interrupted")
	flag.StringVar(&cfg.screenshot, "screenshot", "", "Save the last frame as a PNG file")
	flag.IntVar(&cfg.scale, "scale", 1, "Scale of the screenshot")
	flag.IntVar(&cfg.palette, "palette", palette.Greyscale, "Palette of the screenshot (0 grey, 1 green, 2 red, 3 yellow)")
	flag.StringVar(&cfg.driver, "driver", "none", "The display driver to use, none runs headless")
	flag.BoolVar(&cfg.trace, "trace", false, "Log every executed instruction (implies -log debug)")
	flag.BoolVar(&cfg.strict, "strict", false, "Abort on accesses to unusable memory")
	flag.BoolVar(&cfg.serial, "serial", false, "Write bytes sent over the serial port to stdout")
	flag.BoolVar(&cfg.hash, "hash", false, "Print the hash of the last frame")
	flag.StringVar(&cfg.profile, "profile", "", "Write a cpu or mem profile to the working directory")
	flag.StringVar(&cfg.level, "log", "info", "Log level")
	display.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "goboy:", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	if cfg.rom == "" {
		return errors.New("no rom given, use -rom")
	}

	switch cfg.profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile %q", cfg.profile)
	}

	if cfg.trace {
		cfg.level = "debug"
	}
	logger, err := log.NewWithLevel(cfg.level)
	if err != nil {
		return err
	}

	rom, err := utils.LoadFile(cfg.rom)
	if err != nil {
		return err
	}

	opts := []gameboy.Opt{gameboy.WithLogger(logger)}
	if cfg.boot != "" {
		boot, err := utils.LoadFile(cfg.boot)
		if err != nil {
			return err
		}
		opts = append(opts, gameboy.WithBootROM(boot))
	}
	if cfg.trace {
		opts = append(opts, gameboy.Debug())
	}
	if cfg.strict {
		opts = append(opts, gameboy.Strict())
	}
	if cfg.serial {
		opts = append(opts, gameboy.SerialOutput(os.Stdout))
	}

	gb, err := gameboy.NewGameBoy(rom, opts...)
	if err != nil {
		return err
	}
	header := gb.Cartridge.Header()
	logger.Infof("goboy: running %s (%s)", header.Title, header.CartridgeType)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.driver == "none" {
		err = gb.Run(ctx, cfg.frames)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	} else {
		var driver display.Driver
		if driver, err = display.GetDriver(cfg.driver); err != nil {
			return err
		}
		err = driver.Run(ctx, gb)
	}
	if err != nil {
		return err
	}

	if cfg.hash {
		fmt.Printf("%016x\n", gb.FrameHash())
	}
	if cfg.screenshot != "" {
		img := utils.Scale(utils.FrameImage(gb.Framebuffer(), palette.Get(cfg.palette)), cfg.scale)
		if err := utils.SavePNG(cfg.screenshot, img); err != nil {
			return err
		}
	}
	return nil
}

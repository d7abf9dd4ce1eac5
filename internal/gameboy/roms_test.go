package gameboy

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test ROMs are not distributed with the repository. Place them under
// testdata/roms/blargg and testdata/roms/mooneye to run these tests.
const romPath = "testdata/roms"

// romFiles returns the .gb files in dir, skipping t when there are none.
func romFiles(t *testing.T, dir string) []string {
	t.Helper()
	files, _ := filepath.Glob(filepath.Join(romPath, dir, "*.gb"))
	if len(files) == 0 {
		t.Skipf("no test roms in %s", filepath.Join(romPath, dir))
	}
	return files
}

func runROM(t *testing.T, file string, frames int, opts ...Opt) *GameBoy {
	t.Helper()
	rom, err := os.ReadFile(file)
	require.NoError(t, err)
	gb, err := NewGameBoy(rom, opts...)
	require.NoError(t, err)
	require.NoError(t, gb.Run(context.Background(), frames))
	return gb
}

// Blargg's test roms report their result over the serial port.
func TestROMs_Blargg(t *testing.T) {
	for _, file := range romFiles(t, "blargg/cpu_instrs/individual") {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".gb"), func(t *testing.T) {
			output := &bytes.Buffer{}
			runROM(t, file, 60*60, SerialOutput(output))
			assert.Contains(t, output.String(), "Passed")
			assert.NotContains(t, output.String(), "Failed")
		})
	}
}

// The mooneye test suite loads the fibonacci sequence into the
// registers on success.
func TestROMs_Mooneye(t *testing.T) {
	for _, file := range romFiles(t, "mooneye/acceptance") {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".gb"), func(t *testing.T) {
			gb := runROM(t, file, 60*5)
			got := []uint8{gb.CPU.B, gb.CPU.C, gb.CPU.D, gb.CPU.E, gb.CPU.H, gb.CPU.L}
			assert.Equal(t, []uint8{3, 5, 8, 13, 21, 34}, got)
		})
	}
}

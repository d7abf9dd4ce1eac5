//go:build sdl2

package main

import _ "github.com/thelolagemann/dmgboy/pkg/display/sdl"

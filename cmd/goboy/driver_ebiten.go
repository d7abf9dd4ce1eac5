//go:build ebiten

package main

import _ "github.com/thelolagemann/dmgboy/pkg/display/ebiten"

// This file is part of Ember.
//
// Ember is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ember is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ember.  If not, see <https://www.gnu.org/licenses/>.

package controllers

import (
	"github.com/emberengine/ember/input"
	"github.com/emberengine/ember/preferences"

	"github.com/veandco/go-sdl2/sdl"
)

// number of buttons and axes polled on every gamepad.
const (
	numPadButtons = int(sdl.CONTROLLER_BUTTON_MAX)
	numPadAxes    = int(sdl.CONTROLLER_AXIS_MAX)
)

// Gamepad is an SDL game controller participating in the input system as a
// Device. Button and axis state is polled during Update() and any change is
// injected into the event queue.
type Gamepad struct {
	sys   *input.System
	prefs *preferences.Preferences
	pad   *sdl.GameController
	name  string

	buttons [numPadButtons]bool
	axes    [numPadAxes]float32
}

func newGamepad(sys *input.System, prefs *preferences.Preferences, pad *sdl.GameController) *Gamepad {
	return &Gamepad{
		sys:   sys,
		prefs: prefs,
		pad:   pad,
		name:  pad.Name(),
	}
}

// Type implements the input.Device interface.
func (g *Gamepad) Type() input.DeviceType {
	return input.ControllerType
}

// Name implements the input.Device interface.
func (g *Gamepad) Name() string {
	return g.name
}

// Update implements the input.Device interface. Polls SDL button and axis
// state, injecting Button and Axis events on change.
func (g *Gamepad) Update(dt float32) {
	deadzone := int16(g.prefs.StickDeadzone.Get().(int))

	for b := 0; b < numPadButtons; b++ {
		down := g.pad.Button(sdl.GameControllerButton(b)) == sdl.PRESSED
		if down != g.buttons[b] {
			g.buttons[b] = down
			g.sys.InjectEvent(input.Event{
				Type:   input.EventButton,
				Device: g,
				Data:   input.ButtonData{Key: b, Down: down},
			})
		}
	}

	for a := 0; a < numPadAxes; a++ {
		raw := g.pad.Axis(sdl.GameControllerAxis(a))
		if raw > -deadzone && raw < deadzone {
			raw = 0
		}

		// normalise to the range -1.0 to 1.0
		v := float32(raw) / 32768.0

		if v != g.axes[a] {
			g.axes[a] = v
			g.sys.InjectEvent(input.Event{
				Type:   input.EventAxis,
				Device: g,
				Data:   input.AxisData{Axis: a, X: v},
			})
		}
	}
}

// IsDown returns the current state of a gamepad button.
func (g *Gamepad) IsDown(b int) bool {
	if b < 0 || b >= numPadButtons {
		return false
	}
	return g.buttons[b]
}

// Axis returns the most recent normalised value of a gamepad axis.
func (g *Gamepad) Axis(a int) float32 {
	if a < 0 || a >= numPadAxes {
		return 0
	}
	return g.axes[a]
}

func (g *Gamepad) attached() bool {
	return g.pad.Attached()
}

func (g *Gamepad) close() {
	g.pad.Close()
}

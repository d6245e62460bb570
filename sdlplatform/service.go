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

package sdlplatform

import (
	"strings"

	"github.com/emberengine/ember/input"

	"github.com/veandco/go-sdl2/sdl"
)

// Service polls and translates all pending SDL events. It must be called
// once per frame, from the main goroutine, after the input system's Update()
// function and before the frame's events are consumed. Update() invalidates
// the previous frame's queue, so events injected here remain readable until
// the next Update().
//
// Returns false when a quit has been requested.
func (plt *Platform) Service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.KeyboardEvent:
			plt.serviceKeyboard(ev)

		case *sdl.TextInputEvent:
			for _, r := range strings.TrimRight(string(ev.Text[:]), "\x00") {
				plt.sys.InjectEvent(input.Event{
					Type:   input.EventText,
					Device: plt.sys.Keyboard(),
					Data:   input.TextData{Text: r},
				})
			}

		case *sdl.MouseMotionEvent:
			plt.serviceMouseMotion(ev)

		case *sdl.MouseButtonEvent:
			plt.serviceMouseButton(ev)

		case *sdl.MouseWheelEvent:
			plt.sys.Mouse().SetWheel(float32(ev.Y))
			plt.sys.InjectEvent(input.Event{
				Type:   input.EventAxis,
				Device: plt.sys.Mouse(),
				Data:   input.AxisData{Axis: mouseAxisWheel, Y: float32(ev.Y)},
			})
		}
	}

	return true
}

// axis numbers used for events produced by the built-in mouse device.
const (
	mouseAxisMotion = 0
	mouseAxisWheel  = 1
)

func (plt *Platform) serviceKeyboard(ev *sdl.KeyboardEvent) {
	if ev.Repeat == 1 {
		return
	}

	down := ev.Type == sdl.KEYDOWN
	scancode := int(ev.Keysym.Scancode)

	plt.sys.Keyboard().SetKey(scancode, down)
	plt.sys.InjectEvent(input.Event{
		Type:   input.EventButton,
		Device: plt.sys.Keyboard(),
		Data: input.ButtonData{
			Key:      int(ev.Keysym.Sym),
			Scancode: scancode,
			Down:     down,
		},
	})
}

func (plt *Platform) serviceMouseMotion(ev *sdl.MouseMotionEvent) {
	// cursor position is the unmodified window coordinate
	plt.sys.SetCursorPosition(input.Position{
		X: float32(ev.X),
		Y: float32(ev.Y),
	})

	// motion deltas are scaled by the sensitivity preference
	sensitivity := float32(plt.prefs.MouseSensitivity.Get().(float64))

	plt.sys.InjectEvent(input.Event{
		Type:   input.EventAxis,
		Device: plt.sys.Mouse(),
		Data: input.AxisData{
			Axis: mouseAxisMotion,
			X:    float32(ev.XRel) * sensitivity,
			Y:    float32(ev.YRel) * sensitivity,
		},
	})
}

func (plt *Platform) serviceMouseButton(ev *sdl.MouseButtonEvent) {
	var button input.MouseButton

	switch ev.Button {
	case sdl.BUTTON_LEFT:
		button = input.MouseButtonLeft
	case sdl.BUTTON_MIDDLE:
		button = input.MouseButtonMiddle
	case sdl.BUTTON_RIGHT:
		button = input.MouseButtonRight
	default:
		return
	}

	down := ev.Type == sdl.MOUSEBUTTONDOWN

	plt.sys.Mouse().SetButton(button, down)
	plt.sys.InjectEvent(input.Event{
		Type:   input.EventButton,
		Device: plt.sys.Mouse(),
		Data: input.ButtonData{
			Key:  int(button),
			Down: down,
			X:    float32(ev.X),
			Y:    float32(ev.Y),
		},
	})
}

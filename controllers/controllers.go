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
	"github.com/emberengine/ember/curated"
	"github.com/emberengine/ember/input"
	"github.com/emberengine/ember/logger"
	"github.com/emberengine/ember/preferences"

	"github.com/veandco/go-sdl2/sdl"
)

// Controllers is the game controller backend. It implements input.Source:
// once per frame it detects controller attach/detach, registering and
// unregistering Gamepad devices with the input system as required.
//
// Attach to an input system with:
//
//	ctrl, _ := NewControllers(sys, prefs)
//	sys.AttachSource(ctrl)
type Controllers struct {
	sys   *input.System
	prefs *preferences.Preferences

	// open gamepads keyed by SDL joystick instance ID
	pads map[sdl.JoystickID]*Gamepad
}

// NewControllers is the preferred method of initialisation for the
// Controllers type. It initialises the SDL game controller subsystem.
func NewControllers(sys *input.System, prefs *preferences.Preferences) (*Controllers, error) {
	err := sdl.InitSubSystem(sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER)
	if err != nil {
		return nil, curated.Errorf("controllers: %v", err)
	}

	return &Controllers{
		sys:   sys,
		prefs: prefs,
		pads:  make(map[sdl.JoystickID]*Gamepad),
	}, nil
}

// Frame implements the input.Source interface. Hotplug detection happens
// here rather than through the SDL event queue so that the backend works
// even when no window event pump is running.
func (ctrl *Controllers) Frame(dt float32) {
	sdl.GameControllerUpdate()

	// close pads that have been detached
	for id, pad := range ctrl.pads {
		if !pad.attached() {
			logger.Logf("controllers", "detached: %s", pad.Name())
			ctrl.sys.RemoveDevice(pad)
			pad.close()
			delete(ctrl.pads, id)
		}
	}

	// open pads that have been attached
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}

		pad := sdl.GameControllerOpen(i)
		if pad == nil || !pad.Attached() {
			continue
		}

		id := pad.Joystick().InstanceID()
		if _, ok := ctrl.pads[id]; ok {
			// already open. SDL reference counts GameControllerOpen() so
			// closing the duplicate handle is safe
			pad.Close()
			continue
		}

		g := newGamepad(ctrl.sys, ctrl.prefs, pad)
		ctrl.pads[id] = g
		ctrl.sys.AddDevice(g)
		logger.Logf("controllers", "attached: %s", g.Name())
	}
}

// Shutdown closes all open controllers and quits the SDL game controller
// subsystem. Called by System.Destroy() for attached sources.
func (ctrl *Controllers) Shutdown() {
	for id, pad := range ctrl.pads {
		pad.close()
		delete(ctrl.pads, id)
	}
	sdl.QuitSubSystem(sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER)
}

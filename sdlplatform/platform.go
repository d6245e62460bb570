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
	"runtime"

	"github.com/emberengine/ember/curated"
	"github.com/emberengine/ember/input"
	"github.com/emberengine/ember/logger"
	"github.com/emberengine/ember/preferences"

	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "Ember"

// Platform owns the SDL window and the event pump. It is the windowing
// collaborator of the input system: platform events are translated into
// device state, queue events and the cursor position.
type Platform struct {
	sys   *input.System
	prefs *preferences.Preferences

	window *sdl.Window
	mode   sdl.DisplayMode
}

// NewPlatform is the preferred method of initialisation for the Platform
// type. It must be called from the main goroutine.
func NewPlatform(sys *input.System, prefs *preferences.Preferences) (*Platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdlplatform: %v", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf("sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &Platform{
		sys:   sys,
		prefs: prefs,
	}

	plt.mode, err = sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdlplatform: %v", err)
	}
	logger.Logf("sdl", "refresh rate: %dHz", plt.mode.RefreshRate)

	plt.window, err = sdl.CreateWindow(windowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(float32(plt.mode.W)*0.80), int32(float32(plt.mode.H)*0.80),
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdlplatform: %v", err)
	}

	return plt, nil
}

// Destroy cleans up the resources.
func (plt *Platform) Destroy() error {
	if plt.window != nil {
		err := plt.window.Destroy()
		if err != nil {
			return curated.Errorf("sdlplatform: %v", err)
		}
		plt.window = nil
	}
	sdl.Quit()

	return nil
}

// WindowSize returns the dimensions of the window.
func (plt *Platform) WindowSize() (int32, int32) {
	return plt.window.GetSize()
}

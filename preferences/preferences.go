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

// Package preferences defines and collates the preference values used by the
// input layer. Preferences are held in memory only. There is no disk
// persistence anywhere in the input layer.
package preferences

import (
	"github.com/emberengine/ember/prefs"
)

// default values for the preferences in the Preferences type.
const (
	DefaultStickDeadzone    = 8000
	DefaultMouseSensitivity = 1.0
	DefaultEnabledOnStartup = true
)

// Preferences defines and collates all the preference values used by the
// input layer.
type Preferences struct {
	// the axis value below which a gamepad thumbstick reading is treated as
	// centred. the range of an SDL axis is -32768 to 32767
	StickDeadzone prefs.Int

	// multiplier applied to mouse motion deltas before they are injected as
	// axis events. the cursor position is never scaled
	MouseSensitivity prefs.Float

	// whether the input system starts in the enabled state
	EnabledOnStartup prefs.Bool
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	err := p.SetDefaults()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults revert all preferences to the default values.
func (p *Preferences) SetDefaults() error {
	err := p.StickDeadzone.Set(DefaultStickDeadzone)
	if err != nil {
		return err
	}

	err = p.MouseSensitivity.Set(DefaultMouseSensitivity)
	if err != nil {
		return err
	}

	return p.EnabledOnStartup.Set(DefaultEnabledOnStartup)
}

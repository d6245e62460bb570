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

// Package environment is the context an engine subsystem runs in. Every
// subsystem constructor takes an explicit *Environment rather than reaching
// for ambient global state, which keeps multiple engine instances (a game
// and an editor preview, for example) apart.
package environment

import (
	"github.com/emberengine/ember/preferences"
)

// Label is used to name the environment.
type Label string

// Environment provides context for an engine instance. Particularly useful
// when running more than one instance in the same process.
type Environment struct {
	Label Label

	// the engine preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// The prefs argument can be nil, in which case a new Preferences instance is
// created. Providing a non-nil value allows the preferences of more than one
// engine instance to be synchronised.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// IsLabelled checks the environment label and returns true if it matches.
func (env *Environment) IsLabelled(label Label) bool {
	return env.Label == label
}

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

package script_test

import (
	"strings"
	"testing"

	"github.com/emberengine/ember/script"
	"github.com/emberengine/ember/test"

	"github.com/veandco/go-sdl2/sdl"
)

// testRegistry records registered system variables like a scripting host
// would.
type testRegistry struct {
	vars map[string]int
}

func (r *testRegistry) SetSystemVariable(namespace string, name string, value int) {
	if r.vars == nil {
		r.vars = make(map[string]int)
	}
	r.vars[namespace+"."+name] = value
}

func TestRegister(t *testing.T) {
	reg := &testRegistry{}
	script.Register(reg)

	test.Equate(t, len(reg.vars), len(script.Scancodes)+len(script.Keycodes))

	// spot check both families
	v, ok := reg.vars["Engine.INPUT_SCANCODE_A"]
	test.ExpectedSuccess(t, ok)
	test.Equate(t, v, int(sdl.SCANCODE_A))

	v, ok = reg.vars["Engine.INPUT_KEYCODE_RETURN"]
	test.ExpectedSuccess(t, ok)
	test.Equate(t, v, int(sdl.K_RETURN))

	// every registered name carries one of the two family prefixes
	for k := range reg.vars {
		if !strings.HasPrefix(k, "Engine."+script.ScancodePrefix) &&
			!strings.HasPrefix(k, "Engine."+script.KeycodePrefix) {
			t.Errorf("unexpected variable name %s", k)
		}
	}
}

func TestLookup(t *testing.T) {
	v, ok := script.Lookup(script.Scancodes, "SPACE")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, v, int(sdl.SCANCODE_SPACE))

	// keycode letter constants keep the lower case name of the platform
	// keycode
	v, ok = script.Lookup(script.Keycodes, "a")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, v, int(sdl.K_a))

	_, ok = script.Lookup(script.Keycodes, "NOT_A_KEY")
	test.ExpectedFailure(t, ok)
}

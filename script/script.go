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

// Package script is the scripting-facing surface of the input layer. It
// exposes the platform key identifiers as two static constant tables, one
// for scancodes (physical key position, layout independent) and one for
// keycodes (logical key, layout dependent).
//
// The tables are pure data. A scripting host makes them visible to scripts
// by implementing the Registry interface and calling Register() once at
// startup.
package script

// Constant is a single named integer constant for the scripting environment.
type Constant struct {
	Name  string
	Value int
}

// Registry is implemented by scripting hosts that can hold named system
// variables.
type Registry interface {
	SetSystemVariable(namespace string, name string, value int)
}

// the namespace and name prefixes used by Register().
const (
	Namespace      = "Engine"
	ScancodePrefix = "INPUT_SCANCODE_"
	KeycodePrefix  = "INPUT_KEYCODE_"
)

// Register walks the Scancodes and Keycodes tables and publishes every
// constant to the registry. It carries no runtime contract beyond "constant
// X maps to platform code Y".
func Register(reg Registry) {
	for _, c := range Scancodes {
		reg.SetSystemVariable(Namespace, ScancodePrefix+c.Name, c.Value)
	}
	for _, c := range Keycodes {
		reg.SetSystemVariable(Namespace, KeycodePrefix+c.Name, c.Value)
	}
}

// Lookup returns the value of the named constant in the given table and
// false if the name is not present.
func Lookup(table []Constant, name string) (int, bool) {
	for _, c := range table {
		if c.Name == name {
			return c.Value, true
		}
	}
	return 0, false
}

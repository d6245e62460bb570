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

package input

// Keyboard is the built-in keyboard device. It is created by the System and
// cannot be removed.
//
// Key state is keyed by platform scancode and maintained by the windowing
// collaborator through SetKey().
type Keyboard struct {
	down map[int]bool
}

func newKeyboard() *Keyboard {
	return &Keyboard{
		down: make(map[int]bool),
	}
}

// Type implements the Device interface.
func (k *Keyboard) Type() DeviceType {
	return KeyboardType
}

// Name implements the Device interface.
func (k *Keyboard) Name() string {
	return "keyboard"
}

// Update implements the Device interface.
func (k *Keyboard) Update(dt float32) {
}

// SetKey records the up/down state of the key with the given scancode.
func (k *Keyboard) SetKey(scancode int, down bool) {
	if down {
		k.down[scancode] = true
	} else {
		delete(k.down, scancode)
	}
}

// IsDown returns the current state of the key with the given scancode.
func (k *Keyboard) IsDown(scancode int) bool {
	return k.down[scancode]
}

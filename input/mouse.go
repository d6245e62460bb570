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

// MouseButton identifies a button on the built-in mouse device.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
	numMouseButtons
)

// Mouse is the built-in mouse device. It is created by the System and cannot
// be removed.
//
// Button state is maintained by the windowing collaborator through
// SetButton().
type Mouse struct {
	buttons [numMouseButtons]bool
	wheel   float32
}

func newMouse() *Mouse {
	return &Mouse{}
}

// Type implements the Device interface.
func (m *Mouse) Type() DeviceType {
	return MouseType
}

// Name implements the Device interface.
func (m *Mouse) Name() string {
	return "mouse"
}

// Update implements the Device interface. The wheel delta is per-frame state
// and is zeroed here; buttons stay down until the collaborator reports the
// release.
func (m *Mouse) Update(dt float32) {
	m.wheel = 0
}

// SetButton records the up/down state of a mouse button.
func (m *Mouse) SetButton(b MouseButton, down bool) {
	if b < 0 || b >= numMouseButtons {
		return
	}
	m.buttons[b] = down
}

// IsDown returns the current state of a mouse button.
func (m *Mouse) IsDown(b MouseButton) bool {
	if b < 0 || b >= numMouseButtons {
		return false
	}
	return m.buttons[b]
}

// SetWheel records the most recent mouse wheel delta.
func (m *Mouse) SetWheel(delta float32) {
	m.wheel = delta
}

// Wheel returns the most recent mouse wheel delta.
func (m *Mouse) Wheel() float32 {
	return m.wheel
}

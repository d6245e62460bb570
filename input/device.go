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

// DeviceType differentiates the kinds of device that can participate in the
// input system.
type DeviceType string

// List of defined DeviceTypes.
const (
	MouseType      DeviceType = "Mouse"
	KeyboardType   DeviceType = "Keyboard"
	ControllerType DeviceType = "Controller"
)

// Device is any input source participating in the per-frame update cycle.
// The two built-in devices are created by the System itself; collaborators
// (a controller backend, a custom peripheral) implement Device to take part.
type Device interface {
	// Type identifies the kind of device.
	Type() DeviceType

	// Name is the human-readable name of the device.
	Name() string

	// Update is called once per frame, in device registration order, from
	// System.Update().
	Update(dt float32)
}

// Position is a 2D coordinate in window space.
type Position struct {
	X float32
	Y float32
}

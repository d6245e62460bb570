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

// EventType tags an Event with the kind of input occurrence it records.
type EventType string

// List of defined EventTypes.
const (
	// lifecycle events. queued even when the input system is disabled.
	EventDeviceAdded   EventType = "DeviceAdded"
	EventDeviceRemoved EventType = "DeviceRemoved"

	// device events. the Data field carries the corresponding payload type.
	EventButton EventType = "Button" // ButtonData
	EventAxis   EventType = "Axis"   // AxisData
	EventText   EventType = "Text"   // TextData
)

// EventData is the payload associated with an event. The underlying type
// depends on the EventType, as noted in the EventType list.
type EventData interface{}

// Event is an immutable record of a discrete input occurrence during the
// current frame.
//
// The Device reference is non-owning. Device lifetime is controlled by the
// System and a removed device is released at the start of the next frame, so
// an Event (and the Device it references) must not be read after the Update()
// call that follows its production.
type Event struct {
	Type   EventType
	Device Device
	Data   EventData
}

// ButtonData is the payload for EventButton.
type ButtonData struct {
	// Key is the platform keycode for keyboard devices or the button number
	// for mouse and controller devices.
	Key int

	// Scancode is the platform scancode. zero for non-keyboard devices.
	Scancode int

	Down bool

	// pointer position at the time of a mouse button event.
	X float32
	Y float32
}

// AxisData is the payload for EventAxis.
type AxisData struct {
	// Axis is the device-specific axis number.
	Axis int

	X float32
	Y float32
}

// TextData is the payload for EventText.
type TextData struct {
	Text rune
}

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

import (
	"github.com/emberengine/ember/environment"
)

// Source is an aggregate provider of devices, advanced once per frame at the
// end of System.Update(). The controller backend is the canonical
// implementation, using its Frame() function for hotplug detection and
// device polling.
type Source interface {
	Frame(dt float32)
}

// System is the single entry point to the input layer. It owns every device
// it holds, drives the per-frame update and exposes the event queue and
// cursor position to consumers.
type System struct {
	env *environment.Environment

	enabled bool

	// devices in registration order. the built-in keyboard and mouse are
	// registered at construction and are always the first two entries
	devices  []Device
	toRemove []Device

	// events produced during the current frame
	events []Event

	sources []Source

	mouse    *Mouse
	keyboard *Keyboard

	cursor Position
}

// NewSystem is the preferred method of initialisation for the System type.
// The returned System has the built-in keyboard and mouse devices
// registered, in that order.
func NewSystem(env *environment.Environment) *System {
	sys := &System{
		env:      env,
		keyboard: newKeyboard(),
		mouse:    newMouse(),
		devices:  make([]Device, 0, 4),
		events:   make([]Event, 0, 64),
	}

	sys.devices = append(sys.devices, sys.keyboard, sys.mouse)
	sys.enabled = env.Prefs.EnabledOnStartup.Get().(bool)

	return sys
}

// Destroy releases the resources held by the System. Attached sources that
// implement a Shutdown() function are shut down. The System must not be used
// after Destroy() has been called.
func (sys *System) Destroy() {
	for _, src := range sys.sources {
		if s, ok := src.(interface{ Shutdown() }); ok {
			s.Shutdown()
		}
	}
	sys.sources = sys.sources[:0]
	sys.devices = sys.devices[:0]
	sys.toRemove = sys.toRemove[:0]
	sys.events = sys.events[:0]
}

// Enable or disable the input system. While disabled, device updates are
// skipped and injected events are discarded, with the exception of
// DeviceAdded/DeviceRemoved events which are always queued. Pending device
// removals are still finalised and the event queue is still cleared on every
// Update(), preserving the per-frame invariants.
func (sys *System) Enable(enabled bool) {
	sys.enabled = enabled
}

// IsEnabled returns true if the input system is enabled.
func (sys *System) IsEnabled() bool {
	return sys.enabled
}

// AddDevice appends a device to the active set and queues a DeviceAdded
// event referencing it. No deduplication is performed; adding the same
// device twice is a caller error.
func (sys *System) AddDevice(d Device) {
	sys.devices = append(sys.devices, d)
	sys.events = append(sys.events, Event{Type: EventDeviceAdded, Device: d})
}

// RemoveDevice marks a device for removal at the start of the next Update()
// call and queues a DeviceRemoved event immediately. The device remains
// queryable until then, so code reacting to the event within the same frame
// can still inspect it.
//
// Removing one of the built-in devices is a contract violation and panics.
func (sys *System) RemoveDevice(d Device) {
	if d == Device(sys.mouse) || d == Device(sys.keyboard) {
		panic("input: built-in devices cannot be removed")
	}

	sys.toRemove = append(sys.toRemove, d)
	sys.events = append(sys.events, Event{Type: EventDeviceRemoved, Device: d})
}

// Update drives the input layer one frame forward. It must be called exactly
// once per engine frame tick, before the windowing collaborator pumps
// platform events for the new frame. Update() invalidates the previous
// frame's events; anything injected after it returns remains readable until
// the next call.
func (sys *System) Update(dt float32) {
	// finalise removals marked during the previous frame
	for _, d := range sys.toRemove {
		for i := range sys.devices {
			if sys.devices[i] == d {
				sys.devices = append(sys.devices[:i], sys.devices[i+1:]...)
				break
			}
		}
	}
	sys.toRemove = sys.toRemove[:0]

	// events of the previous frame are invalid from this point
	sys.events = sys.events[:0]

	if sys.enabled {
		for _, d := range sys.devices {
			d.Update(dt)
		}
	}

	// aggregate sources advance once per frame. sources run even while the
	// system is disabled so that device hotplug is not missed
	for _, src := range sys.sources {
		src.Frame(dt)
	}
}

// InjectEvent appends an event to the current frame's queue. While the
// system is disabled only lifecycle events are accepted.
func (sys *System) InjectEvent(ev Event) {
	if !sys.enabled && ev.Type != EventDeviceAdded && ev.Type != EventDeviceRemoved {
		return
	}
	sys.events = append(sys.events, ev)
}

// EventCount returns the number of events produced so far this frame.
func (sys *System) EventCount() int {
	return len(sys.events)
}

// Events returns the events produced so far this frame, in production order.
// The returned slice is a view of the live queue: it is valid only until the
// next call to Update() and is empty (never nil-dangling) when no events
// have been produced. Consumers needing history must copy.
func (sys *System) Events() []Event {
	return sys.events
}

// DeviceCount returns the number of devices in the active set, including any
// devices marked for removal but not yet finalised.
func (sys *System) DeviceCount() int {
	return len(sys.devices)
}

// Device returns the device at the given position in registration order. An
// index outside the range [0, DeviceCount()) is a caller error.
func (sys *System) Device(idx int) Device {
	return sys.devices[idx]
}

// Mouse returns the built-in mouse device.
func (sys *System) Mouse() *Mouse {
	return sys.mouse
}

// Keyboard returns the built-in keyboard device.
func (sys *System) Keyboard() *Keyboard {
	return sys.keyboard
}

// CursorPosition returns the value most recently given to
// SetCursorPosition(), without transformation.
func (sys *System) CursorPosition() Position {
	return sys.cursor
}

// SetCursorPosition records the cursor position. Called by the windowing
// collaborator.
func (sys *System) SetCursorPosition(pos Position) {
	sys.cursor = pos
}

// AttachSource attaches an aggregate device source. The source's Frame()
// function is called once per Update(), after all devices have updated.
func (sys *System) AttachSource(src Source) {
	sys.sources = append(sys.sources, src)
}

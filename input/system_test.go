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

package input_test

import (
	"testing"

	"github.com/emberengine/ember/environment"
	"github.com/emberengine/ember/input"
	"github.com/emberengine/ember/test"
)

// testDevice is a minimal Device implementation standing in for an external
// peripheral.
type testDevice struct {
	name    string
	updates int
}

func (d *testDevice) Type() input.DeviceType {
	return input.ControllerType
}

func (d *testDevice) Name() string {
	return d.name
}

func (d *testDevice) Update(dt float32) {
	d.updates++
}

func newSystem(t *testing.T) *input.System {
	t.Helper()

	env, err := environment.NewEnvironment("test", nil)
	test.ExpectedSuccess(t, err)

	return input.NewSystem(env)
}

func TestBuiltinDevices(t *testing.T) {
	sys := newSystem(t)

	// keyboard and mouse are always present and always first, in that order
	test.Equate(t, sys.DeviceCount(), 2)
	test.Equate(t, string(sys.Device(0).Type()), string(input.KeyboardType))
	test.Equate(t, string(sys.Device(1).Type()), string(input.MouseType))
	test.Equate(t, sys.Device(0).Name(), "keyboard")
	test.Equate(t, sys.Device(1).Name(), "mouse")
}

func TestRemoveBuiltinMouse(t *testing.T) {
	sys := newSystem(t)

	defer test.ExpectedPanic(t)
	sys.RemoveDevice(sys.Mouse())
}

func TestRemoveBuiltinKeyboard(t *testing.T) {
	sys := newSystem(t)

	defer test.ExpectedPanic(t)
	sys.RemoveDevice(sys.Keyboard())
}

// the device lifecycle scenario: add a gamepad, remove it, observe the
// deferred removal across the update boundary.
func TestDeviceLifecycle(t *testing.T) {
	sys := newSystem(t)

	gamepad := &testDevice{name: "gamepad"}

	sys.AddDevice(gamepad)
	test.Equate(t, sys.DeviceCount(), 3)

	// new device appears at the tail of enumeration order
	test.Equate(t, sys.Device(2).Name(), "gamepad")

	// a DeviceAdded event referencing the gamepad has been queued
	test.Equate(t, sys.EventCount(), 1)
	ev := sys.Events()[sys.EventCount()-1]
	test.Equate(t, string(ev.Type), string(input.EventDeviceAdded))
	test.Equate(t, ev.Device == input.Device(gamepad), true)

	sys.RemoveDevice(gamepad)

	// removal is deferred. the device is still queryable
	test.Equate(t, sys.DeviceCount(), 3)
	ev = sys.Events()[sys.EventCount()-1]
	test.Equate(t, string(ev.Type), string(input.EventDeviceRemoved))
	test.Equate(t, ev.Device == input.Device(gamepad), true)

	sys.Update(0.016)

	// removal has been finalised
	test.Equate(t, sys.DeviceCount(), 2)
	for i := 0; i < sys.DeviceCount(); i++ {
		if sys.Device(i) == input.Device(gamepad) {
			t.Errorf("gamepad still enumerable after update")
		}
	}
}

func TestEventQueueClearedOnUpdate(t *testing.T) {
	sys := newSystem(t)

	sys.InjectEvent(input.Event{
		Type:   input.EventButton,
		Device: sys.Keyboard(),
		Data:   input.ButtonData{Scancode: 4, Down: true},
	})
	test.Equate(t, sys.EventCount(), 1)

	// injected events only have effect until the next update
	sys.Update(0.016)
	test.Equate(t, sys.EventCount(), 0)

	// the view of an empty queue is empty, not nil-dangling
	test.Equate(t, len(sys.Events()), 0)
}

// the windowing collaborator pumps platform events after Update() has run
// for the frame. those events must still be in the queue when the consumer
// drains it at the end of the frame.
func TestPumpedEventsSurviveToConsumer(t *testing.T) {
	sys := newSystem(t)

	sys.Update(0.016)

	// a keypress arriving from the platform event pump
	sys.InjectEvent(input.Event{
		Type:   input.EventButton,
		Device: sys.Keyboard(),
		Data:   input.ButtonData{Key: 13, Scancode: 40, Down: true},
	})

	// consumer drain at the end of the frame
	test.Equate(t, sys.EventCount(), 1)
	ev := sys.Events()[0]
	test.Equate(t, string(ev.Type), string(input.EventButton))
	test.Equate(t, ev.Data.(input.ButtonData).Key, 13)
	test.Equate(t, ev.Data.(input.ButtonData).Down, true)

	// the next frame's update invalidates the event
	sys.Update(0.016)
	test.Equate(t, sys.EventCount(), 0)
}

func TestDeviceUpdateOrder(t *testing.T) {
	sys := newSystem(t)

	a := &testDevice{name: "a"}
	b := &testDevice{name: "b"}
	sys.AddDevice(a)
	sys.AddDevice(b)

	sys.Update(0.016)
	test.Equate(t, a.updates, 1)
	test.Equate(t, b.updates, 1)

	sys.Update(0.016)
	test.Equate(t, a.updates, 2)
	test.Equate(t, b.updates, 2)
}

func TestCursorPosition(t *testing.T) {
	sys := newSystem(t)

	test.Equate(t, sys.CursorPosition().X, 0)
	test.Equate(t, sys.CursorPosition().Y, 0)

	sys.SetCursorPosition(input.Position{X: 100.5, Y: 200.25})
	test.Equate(t, sys.CursorPosition().X, float32(100.5))
	test.Equate(t, sys.CursorPosition().Y, float32(200.25))

	// value is returned exactly, surviving updates
	sys.Update(0.016)
	test.Equate(t, sys.CursorPosition().X, float32(100.5))
	test.Equate(t, sys.CursorPosition().Y, float32(200.25))
}

func TestDisable(t *testing.T) {
	sys := newSystem(t)
	d := &testDevice{name: "gamepad"}
	sys.AddDevice(d)
	sys.Update(0.016)
	test.Equate(t, d.updates, 1)

	sys.Enable(false)
	test.Equate(t, sys.IsEnabled(), false)

	// device updates are suppressed while disabled
	sys.Update(0.016)
	test.Equate(t, d.updates, 1)

	// non-lifecycle events are discarded while disabled
	sys.InjectEvent(input.Event{Type: input.EventButton, Device: sys.Keyboard()})
	test.Equate(t, sys.EventCount(), 0)

	// lifecycle events are always queued
	e := &testDevice{name: "late gamepad"}
	sys.AddDevice(e)
	test.Equate(t, sys.EventCount(), 1)

	sys.Enable(true)
	sys.Update(0.016)
	test.Equate(t, d.updates, 2)
	test.Equate(t, e.updates, 1)
}

// testSource counts how often the system advances it.
type testSource struct {
	frames   int
	shutdown bool
}

func (s *testSource) Frame(dt float32) {
	s.frames++
}

func (s *testSource) Shutdown() {
	s.shutdown = true
}

func TestSourceFrame(t *testing.T) {
	sys := newSystem(t)

	src := &testSource{}
	sys.AttachSource(src)

	sys.Update(0.016)
	sys.Update(0.016)
	test.Equate(t, src.frames, 2)

	// sources advance even while the system is disabled (hotplug detection
	// must not stall)
	sys.Enable(false)
	sys.Update(0.016)
	test.Equate(t, src.frames, 3)

	sys.Destroy()
	test.Equate(t, src.shutdown, true)
}

func TestDeviceState(t *testing.T) {
	sys := newSystem(t)

	sys.Keyboard().SetKey(44, true)
	test.Equate(t, sys.Keyboard().IsDown(44), true)
	test.Equate(t, sys.Keyboard().IsDown(45), false)
	sys.Keyboard().SetKey(44, false)
	test.Equate(t, sys.Keyboard().IsDown(44), false)

	sys.Mouse().SetButton(input.MouseButtonLeft, true)
	test.Equate(t, sys.Mouse().IsDown(input.MouseButtonLeft), true)
	test.Equate(t, sys.Mouse().IsDown(input.MouseButtonRight), false)
}

func TestMouseWheel(t *testing.T) {
	sys := newSystem(t)

	sys.Mouse().SetWheel(1)
	test.Equate(t, sys.Mouse().Wheel(), float32(1))

	// the wheel delta is per-frame state. buttons persist until released but
	// the wheel reports nothing once the frame has passed
	sys.Mouse().SetButton(input.MouseButtonLeft, true)
	sys.Update(0.016)
	test.Equate(t, sys.Mouse().Wheel(), float32(0))
	test.Equate(t, sys.Mouse().IsDown(input.MouseButtonLeft), true)
}

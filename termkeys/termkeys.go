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

//go:build !windows
// +build !windows

// Package termkeys provides a terminal keyboard source for the input layer.
// It puts the controlling terminal into cbreak mode and turns keypresses
// into Button events, allowing input to be driven without a window. Useful
// for headless runs of the engine.
//
// The terminal is read on a dedicated goroutine but events enter the input
// system only during Frame(), on the goroutine driving the update loop, as
// the input system requires.
package termkeys

import (
	"os"

	"github.com/emberengine/ember/curated"
	"github.com/emberengine/ember/input"
	"github.com/emberengine/ember/logger"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// the pending channel buffers this many unserviced keypresses before
// dropping new ones.
const pendingBuffer = 64

// device is the terminal keyboard registered with the input system.
type device struct{}

func (d *device) Type() input.DeviceType {
	return input.KeyboardType
}

func (d *device) Name() string {
	return "terminal"
}

func (d *device) Update(dt float32) {
}

// Keys reads keypresses from the controlling terminal and injects them into
// the input system. It implements input.Source.
type Keys struct {
	sys    *input.System
	device *device

	input *os.File

	// terminal attributes on entry, restored by Shutdown()
	canAttr    unix.Termios
	cbreakAttr unix.Termios

	pending chan byte
}

// NewKeys is the preferred method of initialisation for the Keys type. The
// terminal is placed into cbreak mode immediately and the returned Keys is
// registered with the input system as a device.
//
// Attach to the input system with:
//
//	keys, _ := termkeys.NewKeys(sys)
//	sys.AttachSource(keys)
func NewKeys(sys *input.System) (*Keys, error) {
	k := &Keys{
		sys:     sys,
		device:  &device{},
		input:   os.Stdin,
		pending: make(chan byte, pendingBuffer),
	}

	err := termios.Tcgetattr(k.input.Fd(), &k.canAttr)
	if err != nil {
		return nil, curated.Errorf("termkeys: %v", err)
	}

	k.cbreakAttr = k.canAttr
	termios.Cfmakecbreak(&k.cbreakAttr)

	err = termios.Tcsetattr(k.input.Fd(), termios.TCIFLUSH, &k.cbreakAttr)
	if err != nil {
		return nil, curated.Errorf("termkeys: %v", err)
	}

	sys.AddDevice(k.device)

	// the read goroutine ends when the stdin file descriptor is closed or
	// the process exits. there is no clean way of interrupting a blocked
	// read so we let it linger
	go func() {
		b := make([]byte, 1)
		for {
			n, err := k.input.Read(b)
			if err != nil {
				return
			}
			if n == 1 {
				select {
				case k.pending <- b[0]:
				default:
					logger.Log("termkeys", "dropped keypress")
				}
			}
		}
	}()

	return k, nil
}

// Frame implements the input.Source interface. Pending keypresses are
// injected as a Button down/up pair because a terminal reports no key
// release.
func (k *Keys) Frame(dt float32) {
	for {
		select {
		case b := <-k.pending:
			k.sys.InjectEvent(input.Event{
				Type:   input.EventButton,
				Device: k.device,
				Data:   input.ButtonData{Key: int(b), Down: true},
			})
			k.sys.InjectEvent(input.Event{
				Type:   input.EventButton,
				Device: k.device,
				Data:   input.ButtonData{Key: int(b), Down: false},
			})
		default:
			return
		}
	}
}

// Shutdown restores the terminal attributes found at initialisation. Called
// by System.Destroy() for attached sources.
func (k *Keys) Shutdown() {
	_ = termios.Tcsetattr(k.input.Fd(), termios.TCIFLUSH, &k.canAttr)
}

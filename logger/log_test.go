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

package logger_test

import (
	"testing"

	"github.com/emberengine/ember/logger"
	"github.com/emberengine/ember/test"
)

// the central logger is shared by all tests so each test must Clear() before
// it begins.

func TestCentralLogger(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Write(tw)
	test.Equate(t, tw.String(), "")

	logger.Log("test", "this is a test")
	logger.Write(tw)
	test.Equate(t, tw.String(), "test: this is a test\n")

	// clear the CompareWriter buffer before continuing, makes comparisons
	// easier to manage
	tw.Clear()

	logger.Log("test2", "this is another test")
	logger.Write(tw)
	test.Equate(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	logger.Tail(tw, 100)
	test.Equate(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for exactly the correct number of entries is okay
	tw.Clear()
	logger.Tail(tw, 2)
	test.Equate(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	tw.Clear()
	logger.Tail(tw, 1)
	test.Equate(t, tw.String(), "test2: this is another test\n")

	// and no entries
	tw.Clear()
	logger.Tail(tw, 0)
	test.Equate(t, tw.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Log("test", "same detail")
	logger.Log("test", "same detail")
	logger.Log("test", "same detail")
	logger.Write(tw)
	test.Equate(t, tw.String(), "test: same detail (repeat x3)\n")

	// a different tag breaks the repetition
	tw.Clear()
	logger.Log("test2", "same detail")
	logger.Write(tw)
	test.Equate(t, tw.String(), "test: same detail (repeat x3)\ntest2: same detail\n")
}

func TestEcho(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.SetEcho(tw)
	logger.Logf("test", "formatted %d", 10)
	test.Equate(t, tw.String(), "test: formatted 10\n")
	logger.SetEcho(nil)

	// entries made after echo is turned off are not written
	tw.Clear()
	logger.Log("test", "no echo")
	test.Equate(t, tw.String(), "")
}

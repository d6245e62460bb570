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

package prefs_test

import (
	"testing"

	"github.com/emberengine/ember/prefs"
	"github.com/emberengine/ember/test"
)

func TestBool(t *testing.T) {
	var p prefs.Bool

	test.Equate(t, p.Get().(bool), false)

	err := p.Set(true)
	test.ExpectedSuccess(t, err)
	test.Equate(t, p.Get().(bool), true)

	// string values are interpreted. anything other than "true" is false
	err = p.Set("false")
	test.ExpectedSuccess(t, err)
	test.Equate(t, p.Get().(bool), false)

	// unsupported types are an error
	err = p.Set(10)
	test.ExpectedFailure(t, err)
}

func TestInt(t *testing.T) {
	var p prefs.Int

	err := p.Set(100)
	test.ExpectedSuccess(t, err)
	test.Equate(t, p.Get().(int), 100)

	err = p.Set("250")
	test.ExpectedSuccess(t, err)
	test.Equate(t, p.Get().(int), 250)

	test.Equate(t, p.String(), "250")
}

func TestFloat(t *testing.T) {
	var p prefs.Float

	err := p.Set(1.5)
	test.ExpectedSuccess(t, err)
	test.Equate(t, float32(p.Get().(float64)), float32(1.5))

	err = p.Set("2.5")
	test.ExpectedSuccess(t, err)
	test.Equate(t, float32(p.Get().(float64)), float32(2.5))
}

func TestString(t *testing.T) {
	var p prefs.String

	err := p.Set("hello")
	test.ExpectedSuccess(t, err)
	test.Equate(t, p.Get().(string), "hello")

	// any value is accepted by the String type
	err = p.Set(100)
	test.ExpectedSuccess(t, err)
	test.Equate(t, p.Get().(string), "100")
}

func TestHookPost(t *testing.T) {
	var p prefs.Int

	hooked := -1
	p.SetHookPost(func(v prefs.Value) error {
		hooked = v.(int)
		return nil
	})

	err := p.Set(99)
	test.ExpectedSuccess(t, err)
	test.Equate(t, hooked, 99)

	// the post hook runs after the value has been stored
	test.Equate(t, p.Get().(int), 99)
}

func TestReset(t *testing.T) {
	var p prefs.Int

	err := p.Set(100)
	test.ExpectedSuccess(t, err)

	err = p.Reset()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p.Get().(int), 0)
}

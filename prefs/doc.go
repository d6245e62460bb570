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

// Package prefs provides the preference value types used throughout the
// engine. Values are stored atomically so they can be read from any
// goroutine, which is useful for preferences set from a UI thread and read
// from the frame loop.
//
// The zero value of each type is ready for use. The post-set hook can be
// used to react to changes:
//
//	var deadzone prefs.Int
//	deadzone.SetHookPost(func(v prefs.Value) error {
//		fmt.Println("deadzone now", v.(int))
//		return nil
//	})
package prefs

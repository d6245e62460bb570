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

// Package input is the input layer of the engine. It maintains the set of
// active input devices and a queue of the input events produced during the
// current frame.
//
// The System type is the single entry point. It is created with the built-in
// mouse and keyboard devices already registered; further devices (game
// controllers typically) are added and removed dynamically, either directly
// or by an attached Source.
//
// The System is strictly single-threaded. All mutation must happen on the
// goroutine that calls Update(). Collaborators that gather input on other
// goroutines must funnel it to the update goroutine themselves (see the
// termkeys package for an example).
//
// Events are valid only for the frame in which they are produced. The
// Update() function clears the queue of the previous frame before any device
// produces new events, so consumers must drain Events() between calls to
// Update(). Consumers wanting history must copy.
package input

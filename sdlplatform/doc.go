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

// Package sdlplatform is the SDL windowing collaborator of the input layer.
// It owns the SDL window and translates the platform event stream into the
// input system's model: device state, queue events and the cursor position.
//
// The package deliberately stops at the window and the event pump. Rendering
// is the responsibility of other parts of the engine.
package sdlplatform

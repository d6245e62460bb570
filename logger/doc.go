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

// Package logger is the central log for the engine. Log entries are tagged
// with the subsystem that makes them and identical, adjacent entries are
// folded into a repeat count.
//
// The simplest use of the logger is to echo to os.Stderr as entries arrive:
//
//	logger.SetEcho(os.Stderr)
//	logger.Logf("sdl", "version %d.%d.%d", maj, min, pch)
//
// Alternatively, Write() or Tail() can be used to dump the accumulated log
// at a convenient moment.
package logger

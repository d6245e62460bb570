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

package test

import "strings"

// CompareWriter is an io.Writer that captures output for comparison with
// predefined strings.
type CompareWriter struct {
	buffer strings.Builder
}

func (tw *CompareWriter) Write(p []byte) (n int, err error) {
	return tw.buffer.Write(p)
}

// Clear empties the captured output.
func (tw *CompareWriter) Clear() {
	tw.buffer.Reset()
}

// Compare captured output with the expected string.
func (tw *CompareWriter) Compare(s string) bool {
	return s == tw.buffer.String()
}

// implements Stringer interface.
func (tw *CompareWriter) String() string {
	return tw.buffer.String()
}

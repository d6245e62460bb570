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

// Package curated provides error values that can be matched against the
// pattern they were created with. It is a half-way house between opaque
// fmt.Errorf() errors and sentinel error values.
//
// Creation is through the Errorf() function:
//
//	err := curated.Errorf("input: %v", underlyingError)
//
// Errors created this way can be tested later without string comparison of
// the formatted message:
//
//	if curated.Is(err, "input: %v") {
//		...
//	}
//
// The Has() function performs the same test but walks the chain of wrapped
// curated errors.
package curated

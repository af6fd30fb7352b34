// seehuhn.de/go/fontmerge - consolidation of subsetted fonts across documents
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package fontmerge

import "errors"

// UnsupportedError indicates that a source font uses a feature this
// pipeline cannot represent.  There is no partial-success mode: the whole
// batch is aborted.
type UnsupportedError struct {
	Font    FontID
	Feature string
}

func (err *UnsupportedError) Error() string {
	return err.Font.String() + ": " + err.Feature + " not supported"
}

// IsUnsupported returns true if the error is an UnsupportedError.
func IsUnsupported(err error) bool {
	var uErr *UnsupportedError
	return errors.As(err, &uErr)
}

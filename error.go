// seehuhn.de/go/pngtag - chunk tags for PNG-style container files
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

package pngtag

import (
	"errors"
	"strconv"
)

var (
	// ErrLength indicates that an input does not consist of exactly
	// four characters.
	ErrLength = errors.New("tag must be four characters")

	// ErrNotAlphabetic indicates that an input contains a byte outside
	// the ranges A-Z and a-z.
	ErrNotAlphabetic = errors.New("tag byte outside A-Z/a-z")
)

// DecodeError indicates that an input could not be decoded as a chunk
// tag.
type DecodeError struct {
	Input string
	Err   error
}

func (err *DecodeError) Error() string {
	return "invalid chunk tag " + strconv.Quote(err.Input) + ": " + err.Err.Error()
}

func (err *DecodeError) Unwrap() error {
	return err.Err
}

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

// Package pngtag implements the four-byte type codes which identify
// chunks in PNG-style container files.
//
// Each chunk in such a file starts with a four-byte tag.  The bytes of
// a tag are ASCII letters, and the case of each letter doubles as a
// property bit: byte 0 marks the chunk as critical, byte 1 marks the
// tag as publicly registered, byte 2 is reserved for future versions
// of the format, and byte 3 indicates whether editors which do not
// understand the chunk may copy it unchanged.
//
// A [Tag] is obtained from raw bytes using [New], or from a string
// using [Parse]:
//
//	tag, err := pngtag.Parse("tEXt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !tag.IsCritical() {
//	    ... chunk may be skipped ...
//	}
//
// Both constructors guarantee that every byte of the resulting Tag is
// an ASCII letter; malformed input is reported as a [DecodeError].
// Reading and writing of whole chunks is left to the surrounding
// container code, which embeds the tag in its four-byte tag field.
package pngtag

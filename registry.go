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

// The chunk tags registered in the PNG 1.2 specification.
var (
	// Critical chunks.
	IHDR = Tag{'I', 'H', 'D', 'R'} // image header
	PLTE = Tag{'P', 'L', 'T', 'E'} // palette
	IDAT = Tag{'I', 'D', 'A', 'T'} // image data
	IEND = Tag{'I', 'E', 'N', 'D'} // image trailer

	// Ancillary chunks.
	CHRM = Tag{'c', 'H', 'R', 'M'} // primary chromaticities
	GAMA = Tag{'g', 'A', 'M', 'A'} // image gamma
	ICCP = Tag{'i', 'C', 'C', 'P'} // embedded ICC profile
	SBIT = Tag{'s', 'B', 'I', 'T'} // significant bits
	SRGB = Tag{'s', 'R', 'G', 'B'} // standard RGB color space
	BKGD = Tag{'b', 'K', 'G', 'D'} // background color
	HIST = Tag{'h', 'I', 'S', 'T'} // palette histogram
	TRNS = Tag{'t', 'R', 'N', 'S'} // transparency
	PHYS = Tag{'p', 'H', 'Y', 's'} // physical pixel dimensions
	SPLT = Tag{'s', 'P', 'L', 'T'} // suggested palette
	TIME = Tag{'t', 'I', 'M', 'E'} // last modification time
	ITXT = Tag{'i', 'T', 'X', 't'} // international text
	TEXT = Tag{'t', 'E', 'X', 't'} // textual data
	ZTXT = Tag{'z', 'T', 'X', 't'} // compressed textual data
)

var registered = map[Tag]bool{
	IHDR: true,
	PLTE: true,
	IDAT: true,
	IEND: true,
	CHRM: true,
	GAMA: true,
	ICCP: true,
	SBIT: true,
	SRGB: true,
	BKGD: true,
	HIST: true,
	TRNS: true,
	PHYS: true,
	SPLT: true,
	TIME: true,
	ITXT: true,
	TEXT: true,
	ZTXT: true,
}

// IsRegistered reports whether t is one of the tags registered in the
// PNG 1.2 specification.  Note that this is a membership test for the
// registry above, not the same as [Tag.IsPublic]: an unregistered tag
// may still have its public bit set.
func IsRegistered(t Tag) bool {
	return registered[t]
}

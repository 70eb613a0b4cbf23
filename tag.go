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

// Tag is the four-byte type code identifying a chunk's kind.  Every
// byte of a Tag is an ASCII letter; this is enforced by [New] and
// [Parse], so that a Tag obtained from either constructor is always
// well-formed.  Tags are plain values and can be compared using ==.
type Tag [4]byte

// New returns the Tag consisting of the given four bytes, with case
// preserved.  If any byte is not an ASCII letter (this includes all
// bytes which are not valid ASCII text), New returns a [DecodeError].
func New(b [4]byte) (Tag, error) {
	for _, c := range b {
		if !isLetter(c) {
			return Tag{}, &DecodeError{Input: string(b[:]), Err: ErrNotAlphabetic}
		}
	}
	return Tag(b), nil
}

// Parse returns the Tag corresponding to a four-character string, with
// case preserved.  If the string is not exactly four characters long,
// or if any character is not an ASCII letter, Parse returns a
// [DecodeError].  For well-formed input, Parse(s) equals New(b)
// whenever the bytes of s equal b.
func Parse(s string) (Tag, error) {
	if len(s) != 4 {
		return Tag{}, &DecodeError{Input: s, Err: ErrLength}
	}
	var b [4]byte
	copy(b[:], s)
	return New(b)
}

// Bytes returns the four bytes of the tag, as stored.  This is the
// form in which the tag appears in the container's byte stream.
func (t Tag) Bytes() [4]byte {
	return [4]byte(t)
}

// String returns the four bytes of the tag as a string.  This
// implements the [fmt.Stringer] interface.
func (t Tag) String() string {
	return string(t[:])
}

// IsCritical reports whether the chunk is required for correct
// interpretation of the file.  A consumer which does not recognise a
// critical tag must not skip the chunk.  The property is encoded as
// byte 0 being upper case.
func (t Tag) IsCritical() bool {
	return isUpper(t[0])
}

// IsPublic reports whether the tag belongs to the format's registered
// vocabulary, as opposed to being application-defined.  The property
// is encoded as byte 1 being upper case.
func (t Tag) IsPublic() bool {
	return isUpper(t[1])
}

// IsReservedBitValid reports whether byte 2 is upper case.  This byte
// is reserved for future versions of the format; the current version
// requires it to be upper case.
func (t Tag) IsReservedBitValid() bool {
	return isUpper(t[2])
}

// IsSafeToCopy reports whether an editor which does not understand the
// chunk may copy it unchanged when other chunks are modified.  The
// property is encoded as byte 3 being lower case.
func (t Tag) IsSafeToCopy() bool {
	return isLower(t[3])
}

// IsValid reports whether the tag is acceptable for use in the current
// version of the format.  This is a narrower check than
// well-formedness: constructed tags are always alphabetic, and IsValid
// only adds the reserved-bit rule, i.e. it is equivalent to
// [Tag.IsReservedBitValid].
func (t Tag) IsValid() bool {
	return t.IsReservedBitValid()
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (t Tag) MarshalText() ([]byte, error) {
	return t[:], nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// The input is validated in the same way as by [Parse].
func (t *Tag) UnmarshalText(data []byte) error {
	tag, err := Parse(string(data))
	if err != nil {
		return err
	}
	*t = tag
	return nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// The binary form of a tag is identical to its text form.
func (t Tag) MarshalBinary() ([]byte, error) {
	return t[:], nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler]
// interface.  The input is validated in the same way as by [New].
func (t *Tag) UnmarshalBinary(data []byte) error {
	return t.UnmarshalText(data)
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isLetter(c byte) bool {
	return isUpper(c) || isLower(c)
}

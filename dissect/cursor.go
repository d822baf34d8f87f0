package dissect

import (
	"encoding/binary"
	"math"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Collections in a replay are length-prefixed. A declared element count past
// this cap, or past the bytes left in the section, is rejected before any
// allocation happens.
const maxListSize = 25_000

// Strings in either section never legitimately get near this long.
const maxTextSize = 10_000

// cursor is the byte-level reader for the header and body sections.
type cursor struct {
	data []byte
	off  int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

func (c *cursor) bytesRead() int { return c.off }

func (c *cursor) remaining() int { return len(c.data) - c.off }

// view returns the next size bytes without advancing.
func (c *cursor) view(size int) ([]byte, error) {
	if size < 0 || size > c.remaining() {
		return nil, &InsufficientDataError{Needed: size, Available: c.remaining()}
	}
	return c.data[c.off : c.off+size], nil
}

func (c *cursor) take(size int) ([]byte, error) {
	res, err := c.view(size)
	if err != nil {
		return nil, err
	}
	c.off += size
	return res, nil
}

func (c *cursor) skip(size int) error {
	_, err := c.take(size)
	return err
}

func (c *cursor) i32() (int32, error) {
	d, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(d)), nil
}

func (c *cursor) u32() (uint32, error) {
	v, err := c.i32()
	return uint32(v), err
}

func (c *cursor) u64() (uint64, error) {
	d, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(d), nil
}

func (c *cursor) f32() (float32, error) {
	v, err := c.u32()
	return math.Float32frombits(v), err
}

// scope hands back a sub-cursor over the next size bytes and advances past
// them, bounding whatever the caller decodes to the declared size.
func (c *cursor) scope(size uint64) (*cursor, error) {
	if size > uint64(c.remaining()) {
		return nil, &InsufficientDataError{Needed: int(size), Available: c.remaining()}
	}
	d, err := c.take(int(size))
	if err != nil {
		return nil, err
	}
	return newCursor(d), nil
}

// listOf decodes a length-prefixed list, capping the declared count against
// both the hard limit and the bytes actually left.
func listOf[T any](c *cursor, field string, f func(*cursor) (T, error)) ([]T, error) {
	size, err := c.i32()
	if err != nil {
		return nil, err
	}
	n := int(size)
	if n < 0 || n > maxListSize || n > c.remaining() {
		return nil, &ListTooLargeError{Field: field, Requested: n}
	}
	res := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := f(c)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

func (c *cursor) textList() ([]string, error) {
	return listOf(c, "string list", (*cursor).text)
}

// str decodes a length-prefixed, null-terminated ASCII/UTF-8 string. These
// are the property keys and class names, never localized text.
func (c *cursor) str() (string, error) {
	size, err := c.i32()
	if err != nil {
		return "", err
	}
	// Some old replays declare the size of the closing "None" key as
	// 0x05000000. Rattletrap special cases the same constant.
	if size == 0x0500_0000 {
		size = 8
	}
	data, err := c.take(int(size))
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", &InvalidStringError{Encoding: "utf-8", Size: 0}
	}
	data = data[:len(data)-1]
	if !utf8.Valid(data) {
		return "", &InvalidStringError{Encoding: "utf-8", Size: size}
	}
	return string(data), nil
}

// text decodes a length-prefixed string that is windows-1252 when the length
// is positive and UTF-16LE when negative.
func (c *cursor) text() (string, error) {
	chars, err := c.i32()
	if err != nil {
		return "", err
	}
	switch {
	case chars == 0:
		return "", &InvalidStringError{Encoding: "text", Size: 0}
	case chars > maxTextSize || chars < -maxTextSize:
		return "", &StringTooLargeError{Size: chars}
	case chars < 0:
		data, err := c.take(int(chars) * -2)
		if err != nil {
			return "", err
		}
		return decodeUTF16(data)
	default:
		data, err := c.take(int(chars))
		if err != nil {
			return "", err
		}
		return decodeWindows1252(data)
	}
}

// decodeUTF16 converts null-terminated UTF-16LE bytes. Unpaired surrogates
// come out as U+FFFD rather than failing the whole replay.
func decodeUTF16(data []byte) (string, error) {
	if len(data) < 2 || len(data)%2 != 0 {
		return "", &InvalidStringError{Encoding: "utf-16", Size: int32(len(data))}
	}
	data = data[:len(data)-2]
	units := make([]uint16, len(data)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(data[i*2:])
	}
	return string(utf16.Decode(units)), nil
}

// decodeWindows1252 converts null-terminated windows-1252 bytes.
func decodeWindows1252(data []byte) (string, error) {
	if len(data) == 0 {
		return "", &InvalidStringError{Encoding: "windows-1252", Size: 0}
	}
	data = data[:len(data)-1]
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = charmap.Windows1252.DecodeByte(b)
	}
	return string(runes), nil
}

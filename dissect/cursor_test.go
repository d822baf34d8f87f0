package dissect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStr(t *testing.T) {
	b := (&byteBuilder{}).str("TAGame.Replay_Soccar_TA").bytes()
	c := newCursor(b)
	s, err := c.str()
	require.NoError(t, err)
	assert.Equal(t, "TAGame.Replay_Soccar_TA", s)
	assert.Equal(t, 0, c.remaining())
}

func TestParseStrTruncated(t *testing.T) {
	b := (&byteBuilder{}).str("TAGame.Replay_Soccar_TA").bytes()
	c := newCursor(b[:len(b)-1])
	_, err := c.str()
	var insufficient *InsufficientDataError
	require.ErrorAs(t, err, &insufficient)
}

func TestParseStrZeroSize(t *testing.T) {
	c := newCursor([]byte{0, 0, 0, 0, 0})
	_, err := c.str()
	var invalid *InvalidStringError
	require.ErrorAs(t, err, &invalid)
}

func TestParseStrNoneQuirk(t *testing.T) {
	// Replays exist whose closing "None" key declares size 0x05000000.
	b := (&byteBuilder{}).u32(0x0500_0000).raw([]byte("None\x00\x00\x00\x00")).bytes()
	c := newCursor(b)
	s, err := c.str()
	require.NoError(t, err)
	assert.Equal(t, "None\x00\x00\x00", s)
}

func TestParseTextWindows1252(t *testing.T) {
	// 0xb3 is superscript three in windows-1252.
	payload := append([]byte("caudillman6000\xb3(2)"), 0)
	b := (&byteBuilder{}).i32(int32(len(payload))).raw(payload).bytes()
	c := newCursor(b)
	s, err := c.text()
	require.NoError(t, err)
	assert.Equal(t, "caudillman6000³(2)", s)
}

func TestParseTextUTF16(t *testing.T) {
	payload := []byte{'h', 0, 'i', 0, 0, 0}
	b := (&byteBuilder{}).i32(-3).raw(payload).bytes()
	c := newCursor(b)
	s, err := c.text()
	require.NoError(t, err)
	assert.Equal(t, "hi", s)
}

func TestParseTextInvalidUTF16(t *testing.T) {
	// An unpaired surrogate decodes to U+FFFD instead of failing.
	data := []byte{0xfd, 0xff, 0xff, 0xff, 0xd8, 0xd8, 0x00, 0x00, 0x00, 0x00}
	c := newCursor(data)
	s, err := c.text()
	require.NoError(t, err)
	assert.Equal(t, "�\x00", s)
}

func TestParseTextTooLarge(t *testing.T) {
	c := newCursor([]byte{0xcc, 0xcc, 0xcc, 0xcc, 0xcc})
	_, err := c.text()
	var tooLarge *StringTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, int32(-858993460), tooLarge.Size)
}

func TestParseTextZeroSize(t *testing.T) {
	c := newCursor([]byte{0, 0, 0, 0, 0})
	_, err := c.text()
	assert.Error(t, err)
}

func TestListOfCapsAgainstRemaining(t *testing.T) {
	// Claims one million entries with four bytes of backing data.
	b := (&byteBuilder{}).i32(1_000_000).u32(0).bytes()
	c := newCursor(b)
	_, err := listOf(c, "debug info", func(s *cursor) (int32, error) { return s.i32() })
	var tooLarge *ListTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, "debug info", tooLarge.Field)
}

func TestListOfNegativeCount(t *testing.T) {
	b := (&byteBuilder{}).i32(-1).bytes()
	c := newCursor(b)
	_, err := listOf(c, "keyframes", func(s *cursor) (int32, error) { return s.i32() })
	var tooLarge *ListTooLargeError
	require.ErrorAs(t, err, &tooLarge)
}

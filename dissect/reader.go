package dissect

import (
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"
)

// CrcPolicy controls when section checksums are verified. The check is by
// far the most expensive part of decoding a header-only read, so it is
// lazy by default.
type CrcPolicy int

const (
	// CrcOnError verifies only after a section fails to decode, to tell
	// corruption apart from an unsupported patch.
	CrcOnError CrcPolicy = iota

	// CrcAlways verifies both sections up front.
	CrcAlways

	// CrcNever skips verification entirely.
	CrcNever
)

// NetworkPolicy controls whether the network stream — the most intensive
// and patch-volatile section — gets decoded.
type NetworkPolicy int

const (
	// NetworkIgnoreOnError decodes the stream but downgrades a failure to
	// a replay without frames.
	NetworkIgnoreOnError NetworkPolicy = iota

	// NetworkAlways fails the whole decode when the stream fails.
	NetworkAlways

	// NetworkNever skips the stream.
	NetworkNever
)

// Reader decodes replay files. The zero value uses lazy crc checking and
// best-effort network decoding. A Reader is stateless and safe for
// concurrent use; each call decodes independently.
type Reader struct {
	CrcPolicy     CrcPolicy
	NetworkPolicy NetworkPolicy
}

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Open decodes the replay file at path with default options.
func Open(path string) (*Replay, error) {
	return (&Reader{}).Open(path)
}

// Decode decodes an in-memory replay with default options.
func Decode(data []byte) (*Replay, error) {
	return (&Reader{}).Decode(data)
}

// Open reads and decodes the replay file at path. Zstd-compressed archives
// (.replay.zst) are decompressed transparently.
func (r *Reader) Open(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return r.Read(f)
}

// Read decodes a replay from src, sniffing for zstd compression first.
func (r *Reader) Read(src io.Reader) (*Replay, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	if bytes.HasPrefix(data, zstdMagic) {
		log.Debug().Msg("decompressing zstd replay archive")
		dec, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		if data, err = io.ReadAll(dec); err != nil {
			return nil, err
		}
	}
	return r.Decode(data)
}

// Decode decodes a raw replay byte slice. The returned Replay owns all its
// data; data may be reused afterwards.
func (r *Reader) Decode(data []byte) (*Replay, error) {
	c := newCursor(data)

	headerSize, err := c.u32()
	if err != nil {
		return nil, &sectionError{Section: "header size", Offset: c.bytesRead(), Err: err}
	}
	headerCrc, err := c.u32()
	if err != nil {
		return nil, &sectionError{Section: "header crc", Offset: c.bytesRead(), Err: err}
	}
	headerData, err := c.take(int(headerSize))
	if err != nil {
		return nil, &sectionError{Section: "header data", Offset: c.bytesRead(), Err: err}
	}

	header, err := parseHeader(newCursor(headerData))
	if err = r.crcSection(headerData, headerCrc, "header", err); err != nil {
		return nil, err
	}
	log.Debug().
		Int32("major", header.MajorVersion).
		Int32("minor", header.MinorVersion).
		Str("game_type", header.GameType).
		Msg("header parsed")

	contentSize, err := c.u32()
	if err != nil {
		return nil, &sectionError{Section: "content size", Offset: c.bytesRead(), Err: err}
	}
	contentCrc, err := c.u32()
	if err != nil {
		return nil, &sectionError{Section: "content crc", Offset: c.bytesRead(), Err: err}
	}
	contentData, err := c.take(int(contentSize))
	if err != nil {
		return nil, &sectionError{Section: "content data", Offset: c.bytesRead(), Err: err}
	}

	body, err := parseBody(newCursor(contentData))
	if err = r.crcSection(contentData, contentCrc, "body", err); err != nil {
		return nil, err
	}

	var network *NetworkFrames
	switch r.NetworkPolicy {
	case NetworkAlways:
		if network, err = decodeNetwork(header, body); err != nil {
			return nil, err
		}
	case NetworkIgnoreOnError:
		if network, err = decodeNetwork(header, body); err != nil {
			log.Debug().Err(err).Msg("ignoring network decode failure")
			network = nil
		}
	case NetworkNever:
	}

	return &Replay{
		HeaderSize:    headerSize,
		HeaderCrc:     headerCrc,
		MajorVersion:  header.MajorVersion,
		MinorVersion:  header.MinorVersion,
		NetVersion:    header.NetVersion,
		GameType:      header.GameType,
		Properties:    header.Properties,
		ContentSize:   contentSize,
		ContentCrc:    contentCrc,
		NetworkFrames: network,
		Levels:        body.levels,
		Keyframes:     body.keyframes,
		DebugInfo:     body.debugInfo,
		TickMarks:     body.tickMarks,
		Packages:      body.packages,
		Objects:       body.objects,
		Names:         body.names,
		ClassIndices:  body.classIndices,
		NetCache:      body.netCache,
	}, nil
}

// crcSection applies the configured checksum policy to one decoded section.
// With lazy checking, a failed section is re-attributed to corruption when
// the stored checksum disagrees too.
func (r *Reader) crcSection(data []byte, crc uint32, span string, parseErr error) error {
	switch r.CrcPolicy {
	case CrcAlways:
		if actual := CalcCrc(data); actual != crc {
			return &CrcMismatchError{Span: span, Expected: crc, Actual: actual}
		}
		return parseErr
	case CrcOnError:
		if parseErr == nil {
			return nil
		}
		if actual := CalcCrc(data); actual != crc {
			return &CorruptReplayError{Section: span, Err: parseErr}
		}
		return parseErr
	default:
		return parseErr
	}
}

package dissect

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// PropertyKind enumerates the value shapes a header property can take.
type PropertyKind uint8

const (
	PropArray PropertyKind = iota
	PropBool
	PropByte
	PropFloat
	PropInt
	PropInt64
	PropQWord
	PropName
	PropStr
	PropStruct
)

// Property is one typed header value. Exactly the fields for its Kind are
// meaningful.
type Property struct {
	Kind PropertyKind

	Bool  bool
	Float float32
	Int   int32
	Int64 int64
	QWord uint64
	Str   string // Name / Str / Byte value / Struct name

	// ByteKind holds the enum kind of a ByteProperty ("OnlinePlatform").
	ByteKind string

	Array  []PropertyDict
	Struct PropertyDict
}

// PropertyEntry preserves the key order and possible duplicate keys of the
// on-disk dictionary.
type PropertyEntry struct {
	Name  string
	Value Property
}

// PropertyDict is an ordered property dictionary.
type PropertyDict []PropertyEntry

// Get returns the first property stored under name.
func (d PropertyDict) Get(name string) (Property, bool) {
	for _, e := range d {
		if e.Name == name {
			return e.Value, true
		}
	}
	return Property{}, false
}

func (d PropertyDict) getInt(name string) (int32, bool) {
	p, ok := d.Get(name)
	if !ok || p.Kind != PropInt {
		return 0, false
	}
	return p.Int, true
}

func (d PropertyDict) getString(name string) (string, bool) {
	p, ok := d.Get(name)
	if !ok || (p.Kind != PropStr && p.Kind != PropName) {
		return "", false
	}
	return p.Str, true
}

// MarshalJSON emits the dictionary as a JSON object in stored order. Keys are
// not guaranteed unique by the format; duplicates are emitted as-is.
func (d PropertyDict) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON writes the property as its bare value; the kind is left
// self-describing. 64-bit integers are emitted as decimal strings so
// consumers limited to 53-bit numbers keep them lossless.
func (p Property) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case PropArray:
		return json.Marshal(p.Array)
	case PropBool:
		return json.Marshal(p.Bool)
	case PropByte, PropName, PropStr:
		return json.Marshal(p.Str)
	case PropFloat:
		return json.Marshal(p.Float)
	case PropInt:
		return json.Marshal(p.Int)
	case PropInt64:
		return json.Marshal(strconv.FormatInt(p.Int64, 10))
	case PropQWord:
		return json.Marshal(strconv.FormatUint(p.QWord, 10))
	case PropStruct:
		return json.Marshal(p.Struct)
	}
	return []byte("null"), nil
}

// Header carries the replay versions, game type, and the property dictionary
// holding match metadata (scores, goals, players, frame counts).
type Header struct {
	MajorVersion int32        `json:"major_version"`
	MinorVersion int32        `json:"minor_version"`
	NetVersion   *int32       `json:"net_version,omitempty"`
	GameType     string       `json:"game_type"`
	Properties   PropertyDict `json:"properties"`
}

func (h *Header) netVersion() int32 {
	if h.NetVersion == nil {
		return 0
	}
	return *h.NetVersion
}

// NumFrames is the frame count the network stream should decode to.
func (h *Header) NumFrames() (int32, bool) {
	return h.Properties.getInt("NumFrames")
}

// MaxChannels bounds actor ids in the network stream.
func (h *Header) MaxChannels() (int32, bool) {
	return h.Properties.getInt("MaxChannels")
}

// MatchType reports the match type property ("Online", "Lan", ...).
func (h *Header) MatchType() (string, bool) {
	return h.Properties.getString("MatchType")
}

// BuildVersion reports the game build stamp, present on newer replays.
func (h *Header) BuildVersion() (string, bool) {
	return h.Properties.getString("BuildVersion")
}

// headerMode selects property-decoding quirks. Replays reporting version
// (0, 0) predate the stable layout: bools are four bytes and byte
// properties carry only a kind.
type headerMode uint8

const (
	modeStandard headerMode = iota
	modeQuirks
)

func parseHeader(c *cursor) (*Header, error) {
	major, err := c.i32()
	if err != nil {
		return nil, &sectionError{Section: "major version", Offset: c.bytesRead(), Err: err}
	}
	minor, err := c.i32()
	if err != nil {
		return nil, &sectionError{Section: "minor version", Offset: c.bytesRead(), Err: err}
	}

	var netVersion *int32
	if major > 865 && minor > 17 {
		v, err := c.i32()
		if err != nil {
			return nil, &sectionError{Section: "net version", Offset: c.bytesRead(), Err: err}
		}
		netVersion = &v
	}

	mode := modeStandard
	if major == 0 && minor == 0 && netVersion == nil {
		mode = modeQuirks
	}

	gameType, err := c.text()
	if err != nil {
		return nil, &sectionError{Section: "game type", Offset: c.bytesRead(), Err: err}
	}

	properties, err := parsePropertyDict(c, mode)
	if err != nil {
		return nil, &sectionError{Section: "header properties", Offset: c.bytesRead(), Err: err}
	}

	return &Header{
		MajorVersion: major,
		MinorVersion: minor,
		NetVersion:   netVersion,
		GameType:     gameType,
		Properties:   properties,
	}, nil
}

func parsePropertyDict(c *cursor, mode headerMode) (PropertyDict, error) {
	var res PropertyDict
	for {
		key, err := c.str()
		if err != nil {
			return nil, err
		}
		// The 0x05000000-size quirk pads the terminator key with nulls.
		if strings.Trim(key, "\x00") == "None" {
			return res, nil
		}

		kind, err := c.str()
		if err != nil {
			return nil, err
		}
		size, err := c.u64()
		if err != nil {
			return nil, err
		}
		val, err := parseProperty(c, mode, key, kind, size)
		if err != nil {
			return nil, err
		}
		res = append(res, PropertyEntry{Name: key, Value: val})
	}
}

func parseProperty(c *cursor, mode headerMode, key, kind string, size uint64) (Property, error) {
	switch kind {
	case "BoolProperty":
		// The declared size is zero; the payload is one byte anyway
		// (four in quirks mode).
		width := 1
		if mode == modeQuirks {
			width = 4
		}
		d, err := c.take(width)
		if err != nil {
			return Property{}, err
		}
		return Property{Kind: PropBool, Bool: d[0] == 1}, nil

	case "ByteProperty":
		if mode == modeQuirks {
			sub, err := c.scope(size)
			if err != nil {
				return Property{}, err
			}
			v, err := sub.text()
			if err != nil {
				return Property{}, err
			}
			return Property{Kind: PropByte, ByteKind: v}, nil
		}
		byteKind, err := c.str()
		if err != nil {
			return Property{}, err
		}
		// Some platforms inline the value where the kind belongs.
		if strings.HasPrefix(byteKind, "OnlinePlatform_") {
			return Property{Kind: PropByte, Str: byteKind}, nil
		}
		value, err := c.str()
		if err != nil {
			return Property{}, err
		}
		return Property{Kind: PropByte, ByteKind: byteKind, Str: value}, nil

	case "ArrayProperty":
		sub, err := c.scope(size)
		if err != nil {
			return Property{}, err
		}
		arr, err := listOf(sub, "array property", func(s *cursor) (PropertyDict, error) {
			return parsePropertyDict(s, mode)
		})
		if err != nil {
			return Property{}, err
		}
		return Property{Kind: PropArray, Array: arr}, nil

	case "FloatProperty":
		if size != 4 {
			return Property{}, &PropertySizeError{Name: key, Kind: kind, Size: size}
		}
		v, err := c.f32()
		if err != nil {
			return Property{}, err
		}
		return Property{Kind: PropFloat, Float: v}, nil

	case "IntProperty":
		if size != 4 {
			return Property{}, &PropertySizeError{Name: key, Kind: kind, Size: size}
		}
		v, err := c.i32()
		if err != nil {
			return Property{}, err
		}
		return Property{Kind: PropInt, Int: v}, nil

	case "Int64Property":
		if size != 8 {
			return Property{}, &PropertySizeError{Name: key, Kind: kind, Size: size}
		}
		v, err := c.u64()
		if err != nil {
			return Property{}, err
		}
		return Property{Kind: PropInt64, Int64: int64(v)}, nil

	case "QWordProperty":
		if size != 8 {
			return Property{}, &PropertySizeError{Name: key, Kind: kind, Size: size}
		}
		v, err := c.u64()
		if err != nil {
			return Property{}, err
		}
		return Property{Kind: PropQWord, QWord: v}, nil

	case "NameProperty":
		sub, err := c.scope(size)
		if err != nil {
			return Property{}, err
		}
		v, err := sub.text()
		if err != nil {
			return Property{}, err
		}
		return Property{Kind: PropName, Str: v}, nil

	case "StrProperty":
		sub, err := c.scope(size)
		if err != nil {
			return Property{}, err
		}
		v, err := sub.text()
		if err != nil {
			return Property{}, err
		}
		return Property{Kind: PropStr, Str: v}, nil

	case "StructProperty":
		name, err := c.str()
		if err != nil {
			return Property{}, err
		}
		sub, err := c.scope(size)
		if err != nil {
			return Property{}, err
		}
		fields, err := parsePropertyDict(sub, mode)
		if err != nil {
			return Property{}, err
		}
		return Property{Kind: PropStruct, Str: name, Struct: fields}, nil
	}

	return Property{}, &UnknownPropertyError{Kind: kind}
}

package dissect

import "github.com/rs/zerolog/log"

// Replay is the fully decoded file: header metadata, the body tables that
// make up the per-replay catalog, and (when network decoding is enabled and
// succeeds) the frame sequence. The value owns all of its strings and
// tables; nothing borrows from the input buffer.
type Replay struct {
	HeaderSize uint32 `json:"header_size"`
	HeaderCrc  uint32 `json:"header_crc"`

	MajorVersion int32        `json:"major_version"`
	MinorVersion int32        `json:"minor_version"`
	NetVersion   *int32       `json:"net_version,omitempty"`
	GameType     string       `json:"game_type"`
	Properties   PropertyDict `json:"properties"`

	ContentSize uint32 `json:"content_size"`
	ContentCrc  uint32 `json:"content_crc"`

	NetworkFrames *NetworkFrames `json:"network_frames,omitempty"`

	Levels       []string        `json:"levels"`
	Keyframes    []Keyframe      `json:"keyframes"`
	DebugInfo    []DebugInfo     `json:"debug_info"`
	TickMarks    []TickMark      `json:"tick_marks"`
	Packages     []string        `json:"packages"`
	Objects      []string        `json:"objects"`
	Names        []string        `json:"names"`
	ClassIndices []ClassIndex    `json:"class_indices"`
	NetCache     []ClassNetCache `json:"net_cache"`
}

// Header rebuilds the header view of the replay.
func (r *Replay) Header() *Header {
	return &Header{
		MajorVersion: r.MajorVersion,
		MinorVersion: r.MinorVersion,
		NetVersion:   r.NetVersion,
		GameType:     r.GameType,
		Properties:   r.Properties,
	}
}

// NetworkFrames is the decoded network stream.
type NetworkFrames struct {
	Frames []Frame `json:"frames"`
}

// Keyframe marks a stream position that can be decoded independently of the
// frames before it, used by the game for scrubbing.
type Keyframe struct {
	Time     float32 `json:"time"`
	Frame    int32   `json:"frame"`
	Position int32   `json:"position"`
}

// DebugInfo is only populated when the recording client had debugging on.
type DebugInfo struct {
	Frame int32  `json:"frame"`
	User  string `json:"user"`
	Text  string `json:"text"`
}

// TickMark flags a significant frame (eg. "Team1Goal"). The mark is placed
// a second or two of ramp-up before the event itself.
type TickMark struct {
	Description string `json:"description"`
	Frame       int32  `json:"frame"`
}

// ClassIndex declares an object path as a class root.
type ClassIndex struct {
	Class string `json:"class"`
	Index int32  `json:"index"`
}

// CacheProp maps a compressed stream id to the attribute object it stands
// for within one class cache.
type CacheProp struct {
	ObjectInd int32 `json:"object_ind"`
	StreamID  int32 `json:"stream_id"`
}

// ClassNetCache is one flat entry of the replay-embedded class/property
// table. ParentID and CacheID are kept as read; the catalog does not follow
// them and takes class inheritance from the static hierarchy in data.go.
type ClassNetCache struct {
	ObjectInd  int32       `json:"object_ind"`
	ParentID   int32       `json:"parent_id"`
	CacheID    int32       `json:"cache_id"`
	Properties []CacheProp `json:"properties"`
}

// body is the intermediate result of decoding the content section.
type body struct {
	levels       []string
	keyframes    []Keyframe
	networkData  []byte
	debugInfo    []DebugInfo
	tickMarks    []TickMark
	packages     []string
	objects      []string
	names        []string
	classIndices []ClassIndex
	netCache     []ClassNetCache
}

func parseBody(c *cursor) (*body, error) {
	levels, err := c.textList()
	if err != nil {
		return nil, &sectionError{Section: "levels", Offset: c.bytesRead(), Err: err}
	}

	keyframes, err := listOf(c, "keyframes", func(s *cursor) (Keyframe, error) {
		var k Keyframe
		var err error
		if k.Time, err = s.f32(); err != nil {
			return k, err
		}
		if k.Frame, err = s.i32(); err != nil {
			return k, err
		}
		k.Position, err = s.i32()
		return k, err
	})
	if err != nil {
		return nil, &sectionError{Section: "keyframes", Offset: c.bytesRead(), Err: err}
	}

	networkSize, err := c.i32()
	if err != nil {
		return nil, &sectionError{Section: "network size", Offset: c.bytesRead(), Err: err}
	}
	networkData, err := c.take(int(networkSize))
	if err != nil {
		return nil, &sectionError{Section: "network data", Offset: c.bytesRead(), Err: err}
	}

	debugInfo, err := listOf(c, "debug info", func(s *cursor) (DebugInfo, error) {
		var d DebugInfo
		var err error
		if d.Frame, err = s.i32(); err != nil {
			return d, err
		}
		if d.User, err = s.text(); err != nil {
			return d, err
		}
		d.Text, err = s.text()
		return d, err
	})
	if err != nil {
		return nil, &sectionError{Section: "debug info", Offset: c.bytesRead(), Err: err}
	}

	tickMarks, err := listOf(c, "tick marks", func(s *cursor) (TickMark, error) {
		var t TickMark
		var err error
		if t.Description, err = s.text(); err != nil {
			return t, err
		}
		t.Frame, err = s.i32()
		return t, err
	})
	if err != nil {
		return nil, &sectionError{Section: "tick marks", Offset: c.bytesRead(), Err: err}
	}

	packages, err := c.textList()
	if err != nil {
		return nil, &sectionError{Section: "packages", Offset: c.bytesRead(), Err: err}
	}
	objects, err := c.textList()
	if err != nil {
		return nil, &sectionError{Section: "objects", Offset: c.bytesRead(), Err: err}
	}
	names, err := c.textList()
	if err != nil {
		return nil, &sectionError{Section: "names", Offset: c.bytesRead(), Err: err}
	}

	classIndices, err := listOf(c, "class index", func(s *cursor) (ClassIndex, error) {
		var ci ClassIndex
		var err error
		if ci.Class, err = s.str(); err != nil {
			return ci, err
		}
		ci.Index, err = s.i32()
		return ci, err
	})
	if err != nil {
		return nil, &sectionError{Section: "class index", Offset: c.bytesRead(), Err: err}
	}

	netCache, err := listOf(c, "net cache", func(s *cursor) (ClassNetCache, error) {
		var nc ClassNetCache
		var err error
		if nc.ObjectInd, err = s.i32(); err != nil {
			return nc, err
		}
		if nc.ParentID, err = s.i32(); err != nil {
			return nc, err
		}
		if nc.CacheID, err = s.i32(); err != nil {
			return nc, err
		}
		nc.Properties, err = listOf(s, "net cache properties", func(p *cursor) (CacheProp, error) {
			var cp CacheProp
			var err error
			if cp.ObjectInd, err = p.i32(); err != nil {
				return cp, err
			}
			cp.StreamID, err = p.i32()
			return cp, err
		})
		return nc, err
	})
	if err != nil {
		return nil, &sectionError{Section: "net cache", Offset: c.bytesRead(), Err: err}
	}

	// Some platforms append trailer bytes here. They carry nothing we
	// interpret; tolerate both their presence and their absence.
	if c.remaining() > 0 {
		log.Debug().Int("bytes", c.remaining()).Msg("ignoring body trailer")
	}

	return &body{
		levels:       levels,
		keyframes:    keyframes,
		networkData:  networkData,
		debugInfo:    debugInfo,
		tickMarks:    tickMarks,
		packages:     packages,
		objects:      objects,
		names:        names,
		classIndices: classIndices,
		netCache:     netCache,
	}, nil
}

package dissect

import (
	"encoding/json"
	"strconv"
)

// Platform system ids seen in UniqueId attributes.
const (
	systemSplitScreen = 0
	systemSteam       = 1
	systemPlayStation = 2
	systemXbox        = 4
	systemQQ          = 5
	systemSwitch      = 6
	systemPsyNet      = 7
	systemEpic        = 11
)

// RemoteID is a platform-specific player identifier. Exactly one field is
// set, matching SystemID on the enclosing UniqueID.
type RemoteID struct {
	SplitScreen *uint32
	Steam       *uint64
	PlayStation *Ps4ID
	Xbox        *uint64
	QQ          *uint64
	Switch      *SwitchID
	PsyNet      *PsyNetID
	Epic        *string
}

func (r RemoteID) MarshalJSON() ([]byte, error) {
	switch {
	case r.SplitScreen != nil:
		return json.Marshal(map[string]any{"SplitScreen": *r.SplitScreen})
	case r.Steam != nil:
		return json.Marshal(map[string]any{"Steam": strconv.FormatUint(*r.Steam, 10)})
	case r.PlayStation != nil:
		return json.Marshal(map[string]any{"PlayStation": r.PlayStation})
	case r.Xbox != nil:
		return json.Marshal(map[string]any{"Xbox": strconv.FormatUint(*r.Xbox, 10)})
	case r.QQ != nil:
		return json.Marshal(map[string]any{"QQ": strconv.FormatUint(*r.QQ, 10)})
	case r.Switch != nil:
		return json.Marshal(map[string]any{"Switch": r.Switch})
	case r.PsyNet != nil:
		return json.Marshal(map[string]any{"PsyNet": r.PsyNet})
	case r.Epic != nil:
		return json.Marshal(map[string]any{"Epic": *r.Epic})
	}
	return []byte("null"), nil
}

// Ps4ID carries the PSN name, opaque padding, and online id.
type Ps4ID struct {
	OnlineID uint64 `json:"-"`
	Name     string `json:"name"`
	Unknown1 []byte `json:"unknown1"`
}

func (p Ps4ID) MarshalJSON() ([]byte, error) {
	type alias Ps4ID
	return json.Marshal(struct {
		OnlineID string `json:"online_id"`
		alias
	}{OnlineID: strconv.FormatUint(p.OnlineID, 10), alias: alias(p)})
}

// SwitchID carries the Switch online id plus opaque trailing bytes.
type SwitchID struct {
	OnlineID uint64 `json:"-"`
	Unknown1 []byte `json:"unknown1"`
}

func (s SwitchID) MarshalJSON() ([]byte, error) {
	type alias SwitchID
	return json.Marshal(struct {
		OnlineID string `json:"online_id"`
		alias
	}{OnlineID: strconv.FormatUint(s.OnlineID, 10), alias: alias(s)})
}

// PsyNetID carries the PsyNet online id; pre net-version-10 replays append
// opaque bytes that are preserved verbatim.
type PsyNetID struct {
	OnlineID uint64 `json:"-"`
	Unknown1 []byte `json:"unknown1,omitempty"`
}

func (p PsyNetID) MarshalJSON() ([]byte, error) {
	type alias PsyNetID
	return json.Marshal(struct {
		OnlineID string `json:"online_id"`
		alias
	}{OnlineID: strconv.FormatUint(p.OnlineID, 10), alias: alias(p)})
}

// UniqueID identifies a player across platforms.
type UniqueID struct {
	SystemID uint8    `json:"system_id"`
	RemoteID RemoteID `json:"remote_id"`
	LocalID  uint8    `json:"local_id"`
}

func (*UniqueID) attributeName() string { return "UniqueId" }

func decodeUniqueID(r *bitReader, netVersion int32) (*UniqueID, error) {
	systemID, err := r.readU8()
	if err != nil {
		return nil, err
	}
	return decodeUniqueIDWithSystem(r, netVersion, systemID)
}

func decodeUniqueIDWithSystem(r *bitReader, netVersion int32, systemID uint8) (*UniqueID, error) {
	var remote RemoteID
	switch systemID {
	case systemSplitScreen:
		v, err := r.readBits(24)
		if err != nil {
			return nil, err
		}
		id := uint32(v)
		remote.SplitScreen = &id

	case systemSteam:
		v, err := r.readU64()
		if err != nil {
			return nil, err
		}
		remote.Steam = &v

	case systemPlayStation:
		nameBytes, err := r.readBytes(16)
		if err != nil {
			return nil, err
		}
		end := 0
		for end < len(nameBytes) && nameBytes[end] != 0 {
			end++
		}
		name, err := decodeWindows1252(append(nameBytes[:end:end], 0))
		if err != nil {
			return nil, err
		}
		padding := 8
		if netVersion >= 1 {
			padding = 16
		}
		unknown, err := r.readBytes(padding)
		if err != nil {
			return nil, err
		}
		onlineID, err := r.readU64()
		if err != nil {
			return nil, err
		}
		remote.PlayStation = &Ps4ID{OnlineID: onlineID, Name: name, Unknown1: unknown}

	case systemXbox:
		v, err := r.readU64()
		if err != nil {
			return nil, err
		}
		remote.Xbox = &v

	case systemQQ:
		v, err := r.readU64()
		if err != nil {
			return nil, err
		}
		remote.QQ = &v

	case systemSwitch:
		onlineID, err := r.readU64()
		if err != nil {
			return nil, err
		}
		unknown, err := r.readBytes(24)
		if err != nil {
			return nil, err
		}
		remote.Switch = &SwitchID{OnlineID: onlineID, Unknown1: unknown}

	case systemPsyNet:
		onlineID, err := r.readU64()
		if err != nil {
			return nil, err
		}
		id := PsyNetID{OnlineID: onlineID}
		if netVersion < 10 {
			unknown, err := r.readBytes(24)
			if err != nil {
				return nil, err
			}
			id.Unknown1 = unknown
		}
		remote.PsyNet = &id

	case systemEpic:
		s, err := decodeNetText(r)
		if err != nil {
			return nil, err
		}
		remote.Epic = &s

	default:
		return nil, &UnrecognizedRemoteIDError{SystemID: systemID}
	}

	localID, err := r.readU8()
	if err != nil {
		return nil, err
	}

	return &UniqueID{SystemID: systemID, RemoteID: remote, LocalID: localID}, nil
}

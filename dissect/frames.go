package dissect

import (
	"encoding/json"
	"math"

	"github.com/rs/zerolog/log"
)

// Trajectory is the optional spawn location and rotation of a new actor.
type Trajectory struct {
	Location *Vector3i `json:"location,omitempty"`
	Rotation *Rotation `json:"rotation,omitempty"`
}

// NewActor records an actor channel opening.
type NewActor struct {
	ActorID ActorID `json:"actor_id"`

	// Only present on newer replays.
	NameID *int32 `json:"name_id,omitempty"`

	ObjectID          ObjectID   `json:"object_id"`
	InitialTrajectory Trajectory `json:"initial_trajectory"`
}

// UpdatedAttribute records one attribute update on an open actor channel.
// ObjectID is the attribute object resolved from StreamID through the
// actor class's cumulative property table.
type UpdatedAttribute struct {
	ActorID   ActorID   `json:"actor_id"`
	StreamID  StreamID  `json:"stream_id"`
	ObjectID  ObjectID  `json:"object_id"`
	Attribute Attribute `json:"attribute"`
}

func (u UpdatedAttribute) MarshalJSON() ([]byte, error) {
	attr, err := marshalAttribute(u.Attribute)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		ActorID  ActorID         `json:"actor_id"`
		StreamID StreamID        `json:"stream_id"`
		ObjectID ObjectID        `json:"object_id"`
		Attr     json.RawMessage `json:"attribute"`
	}{u.ActorID, u.StreamID, u.ObjectID, attr})
}

// Frame is one tick of the network stream. Spawns, deletes, and updates each
// keep bitstream order within their own list; the interleaving across the
// three lists is not recorded.
type Frame struct {
	// Seconds since match start; non-decreasing across frames.
	Time float32 `json:"time"`

	// Seconds since the previous frame.
	Delta float32 `json:"delta"`

	NewActors     []NewActor         `json:"new_actors"`
	DeletedActors []ActorID          `json:"deleted_actors"`
	UpdatedActors []UpdatedAttribute `json:"updated_actors"`
}

// frameContextWindow bounds how many decoded frames ride along on a frame
// decode error.
const frameContextWindow = 16

// frameDecoder walks the bit stream frame by frame, tracking open actor
// channels so updates can be routed to the right class cache.
type frameDecoder struct {
	framesLen   int
	maxChannels uint64
	channelBits uint
	catalog     *catalog
	version     versionTriplet
	attrs       attributeDecoder
}

func (d *frameDecoder) decodeFrames(r *bitReader) ([]Frame, error) {
	frames := make([]Frame, 0, d.framesLen)
	actors := make(map[ActorID]ObjectID)

	for r.bitsRemaining() > 0 && len(frames) < d.framesLen {
		frame, end, err := d.decodeFrame(r, actors, frames)
		if err != nil {
			return nil, err
		}
		if end {
			break
		}
		frames = append(frames, frame)
	}

	if d.version.ge(868, 24, 10) {
		if _, err := r.readU32(); err != nil {
			return nil, d.frameErr(err, frames, len(frames), 0, 0, 0, tagNotImplemented)
		}
	}

	log.Debug().Int("frames", len(frames)).Msg("network stream decoded")
	return frames, nil
}

// frameErr attaches the bounded recent-frame window and the failing
// update's coordinates to err.
func (d *frameDecoder) frameErr(err error, frames []Frame, index int, actor ActorID, object ObjectID, stream StreamID, tag attributeTag) error {
	recent := frames
	if len(recent) > frameContextWindow {
		recent = recent[len(recent)-frameContextWindow:]
	}
	return &FrameError{
		Err:           err,
		RecentFrames:  append([]Frame(nil), recent...),
		FrameIndex:    index,
		Actor:         actor,
		Object:        object,
		ObjectName:    d.catalog.objectName(object),
		Stream:        stream,
		AttributeKind: tag.String(),
	}
}

func validTime(v float32) bool {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	// Negative and denormal times only appear in corrupt or misdecoded
	// streams.
	return v >= 0 && (v == 0 || v >= 1e-10)
}

func (d *frameDecoder) decodeFrame(r *bitReader, actors map[ActorID]ObjectID, decoded []Frame) (Frame, bool, error) {
	index := len(decoded)
	fail := func(err error, actor ActorID, object ObjectID, stream StreamID, tag attributeTag) (Frame, bool, error) {
		return Frame{}, false, d.frameErr(err, decoded, index, actor, object, stream, tag)
	}

	time, err := r.readF32()
	if err != nil {
		return fail(err, 0, 0, 0, tagNotImplemented)
	}
	delta, err := r.readF32()
	if err != nil {
		return fail(err, 0, 0, 0, tagNotImplemented)
	}
	if time == 0 && delta == 0 {
		return Frame{}, true, nil
	}
	if !validTime(time) || !validTime(delta) {
		return fail(&TimeOutOfRangeError{Frame: index, Time: time, Delta: delta}, 0, 0, 0, tagNotImplemented)
	}
	if index > 0 && time < decoded[index-1].Time {
		return fail(&TimeOutOfRangeError{Frame: index, Time: time, Delta: delta}, 0, 0, 0, tagNotImplemented)
	}

	frame := Frame{
		Time:          time,
		Delta:         delta,
		NewActors:     []NewActor{},
		DeletedActors: []ActorID{},
		UpdatedActors: []UpdatedAttribute{},
	}

	for {
		more, err := r.readBit()
		if err != nil {
			return fail(err, 0, 0, 0, tagNotImplemented)
		}
		if !more {
			break
		}

		id, err := r.readBitsMax(d.channelBits, d.maxChannels)
		if err != nil {
			return fail(err, 0, 0, 0, tagNotImplemented)
		}
		actorID := ActorID(id)

		alive, err := r.readBit()
		if err != nil {
			return fail(err, actorID, 0, 0, tagNotImplemented)
		}
		if !alive {
			frame.DeletedActors = append(frame.DeletedActors, actorID)
			delete(actors, actorID)
			continue
		}

		isNew, err := r.readBit()
		if err != nil {
			return fail(err, actorID, 0, 0, tagNotImplemented)
		}
		if isNew {
			actor, err := d.decodeNewActor(r, actorID)
			if err != nil {
				return fail(err, actorID, actor.ObjectID, 0, tagNotImplemented)
			}
			// Reused actor ids are common; the newest spawn wins.
			actors[actorID] = actor.ObjectID
			frame.NewActors = append(frame.NewActors, actor)
			continue
		}

		objectID, ok := actors[actorID]
		if !ok {
			return fail(&ActorNotFoundError{Actor: actorID}, actorID, 0, 0, tagNotImplemented)
		}
		cache, ok := d.catalog.caches[objectID]
		if !ok {
			return fail(&MissingCacheError{Actor: actorID, Object: objectID}, actorID, objectID, 0, tagNotImplemented)
		}

		for {
			hasProp, err := r.readBit()
			if err != nil {
				return fail(err, actorID, objectID, 0, tagNotImplemented)
			}
			if !hasProp {
				break
			}

			sid, err := r.readBitsMax(cache.propIDBits, cache.maxPropID)
			if err != nil {
				return fail(err, actorID, objectID, 0, tagNotImplemented)
			}
			streamID := StreamID(sid)

			attr, ok := cache.attributes[streamID]
			if !ok {
				return fail(&MissingAttributeError{Actor: actorID, Object: objectID, Stream: streamID},
					actorID, objectID, streamID, tagNotImplemented)
			}
			if attr.tag == tagNotImplemented {
				return fail(&UnrecognizedAttributeError{Object: attr.objectID, Path: d.catalog.objectName(attr.objectID)},
					actorID, objectID, streamID, attr.tag)
			}

			value, err := d.attrs.decode(attr.tag, r)
			if err != nil {
				if err == errUnimplementedAttribute {
					err = &UnrecognizedAttributeError{Object: attr.objectID, Path: d.catalog.objectName(attr.objectID)}
				}
				return fail(err, actorID, objectID, streamID, attr.tag)
			}

			frame.UpdatedActors = append(frame.UpdatedActors, UpdatedAttribute{
				ActorID:   actorID,
				StreamID:  streamID,
				ObjectID:  attr.objectID,
				Attribute: value,
			})
		}
	}

	return frame, false, nil
}

func (d *frameDecoder) decodeNewActor(r *bitReader, actorID ActorID) (NewActor, error) {
	actor := NewActor{ActorID: actorID}

	if d.version.ge(868, 14, 0) {
		nameID, err := r.readI32()
		if err != nil {
			return actor, err
		}
		actor.NameID = &nameID
	}

	// One flag of unconfirmed meaning precedes the object id; it is
	// discarded, never interpreted.
	if _, err := r.readBit(); err != nil {
		return actor, err
	}

	objectID, err := r.readI32()
	if err != nil {
		return actor, err
	}
	actor.ObjectID = ObjectID(objectID)
	if objectID < 0 || int(objectID) >= len(d.catalog.spawns) {
		return actor, &ObjectIDOutOfRangeError{Object: actor.ObjectID}
	}

	switch d.catalog.spawns[objectID] {
	case spawnLocation:
		loc, err := decodeVector3i(r, d.version.net)
		if err != nil {
			return actor, err
		}
		actor.InitialTrajectory.Location = &loc
	case spawnLocationAndRotation:
		loc, err := decodeVector3i(r, d.version.net)
		if err != nil {
			return actor, err
		}
		rot, err := decodeRotation(r)
		if err != nil {
			return actor, err
		}
		actor.InitialTrajectory.Location = &loc
		actor.InitialTrajectory.Rotation = &rot
	}

	return actor, nil
}

// decodeNetwork builds the catalog and frame decoder from the header and
// body, then drains the stream.
func decodeNetwork(header *Header, b *body) (*NetworkFrames, error) {
	version := versionTriplet{
		major: header.MajorVersion,
		minor: header.MinorVersion,
		net:   header.netVersion(),
	}

	numFrames, ok := header.NumFrames()
	if !ok || numFrames <= 0 {
		return &NetworkFrames{Frames: []Frame{}}, nil
	}
	// Each frame costs well over a byte of stream; a frame count beyond the
	// raw byte length is forged or corrupt. Reject before allocating.
	if int(numFrames) > len(b.networkData) {
		return nil, &TooManyFramesError{Frames: numFrames}
	}

	cat, err := buildCatalog(b)
	if err != nil {
		return nil, err
	}

	// 1023 matches the default the game used before the property existed.
	maxChannels := int32(1023)
	if mc, ok := header.MaxChannels(); ok && mc > 0 {
		maxChannels = mc
	}
	channelBits := bitWidth(uint64(maxChannels))
	if channelBits > 0 {
		channelBits--
	}

	isRL223 := false
	if build, ok := header.BuildVersion(); ok && build >= "221120.42953.406184" {
		isRL223 = true
	}

	decoder := &frameDecoder{
		framesLen:   int(numFrames),
		maxChannels: uint64(maxChannels),
		channelBits: channelBits,
		catalog:     cat,
		version:     version,
		attrs: attributeDecoder{
			version: version,
			product: newProductDecoder(cat.nameIndex),
			isRL223: isRL223,
		},
	}

	frames, err := decoder.decodeFrames(newBitReader(b.networkData))
	if err != nil {
		return nil, err
	}
	return &NetworkFrames{Frames: frames}, nil
}

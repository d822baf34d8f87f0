package dissect

import "fmt"

// InsufficientDataError reports a reader underrun: a read wanted more bytes
// (or bits) than the section had left.
type InsufficientDataError struct {
	Context   string
	Needed    int
	Available int
}

func (e *InsufficientDataError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("insufficient data for %s: needed %d, have %d", e.Context, e.Needed, e.Available)
	}
	return fmt.Sprintf("insufficient data: needed %d, have %d", e.Needed, e.Available)
}

// CrcMismatchError reports that a section's stored checksum does not match
// the computed one. Span is "header" or "body".
type CrcMismatchError struct {
	Span     string
	Expected uint32
	Actual   uint32
}

func (e *CrcMismatchError) Error() string {
	return fmt.Sprintf("crc mismatch in %s: expected %d but received %d", e.Span, e.Expected, e.Actual)
}

// CorruptReplayError wraps a decode failure whose section also failed the
// lazy crc check, disambiguating corruption from an unsupported patch.
type CorruptReplayError struct {
	Section string
	Err     error
}

func (e *CorruptReplayError) Error() string {
	return fmt.Sprintf("failed to parse %s and crc check failed, replay is corrupt: %v", e.Section, e.Err)
}

func (e *CorruptReplayError) Unwrap() error { return e.Err }

// UnknownPropertyError reports an unrecognized header property kind.
type UnknownPropertyError struct {
	Kind string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("did not expect a property of: %s", e.Kind)
}

// PropertySizeError reports a primitive header property whose declared size
// does not match its kind's natural width.
type PropertySizeError struct {
	Name string
	Kind string
	Size uint64
}

func (e *PropertySizeError) Error() string {
	return fmt.Sprintf("property %s of kind %s declared unexpected size %d", e.Name, e.Kind, e.Size)
}

// InvalidStringError reports string data that failed to decode under the
// declared encoding.
type InvalidStringError struct {
	Encoding string
	Size     int32
}

func (e *InvalidStringError) Error() string {
	return fmt.Sprintf("invalid %s string of size %d", e.Encoding, e.Size)
}

// ListTooLargeError is the defensive cap on length-prefixed collections: a
// declared element count that cannot fit in the remaining input is rejected
// before any allocation happens.
type ListTooLargeError struct {
	Field     string
	Requested int
}

func (e *ListTooLargeError) Error() string {
	return fmt.Sprintf("%s: list of size %d is too large", e.Field, e.Requested)
}

// TimeOutOfRangeError reports an implausible frame time or delta.
type TimeOutOfRangeError struct {
	Frame int
	Time  float32
	Delta float32
}

func (e *TimeOutOfRangeError) Error() string {
	return fmt.Sprintf("frame %d has time (%v) or delta (%v) out of range", e.Frame, e.Time, e.Delta)
}

// ActorNotFoundError reports an update for an actor id with no open channel.
type ActorNotFoundError struct {
	Actor ActorID
}

func (e *ActorNotFoundError) Error() string {
	return fmt.Sprintf("update for unknown actor: %d", e.Actor)
}

// MissingCacheError reports an actor whose object has no property cache, so
// stream ids cannot be resolved.
type MissingCacheError struct {
	Actor  ActorID
	Object ObjectID
}

func (e *MissingCacheError) Error() string {
	return fmt.Sprintf("actor %d of object %d has no attribute cache", e.Actor, e.Object)
}

// MissingAttributeError reports a stream id that does not resolve to any
// object through the actor class's cumulative property table.
type MissingAttributeError struct {
	Actor  ActorID
	Object ObjectID
	Stream StreamID
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("actor %d of object %d has no attribute for stream id %d", e.Actor, e.Object, e.Stream)
}

// ObjectIDOutOfRangeError reports an object id beyond the replay's object
// table.
type ObjectIDOutOfRangeError struct {
	Object ObjectID
}

func (e *ObjectIDOutOfRangeError) Error() string {
	return fmt.Sprintf("object id of %d exceeds range", e.Object)
}

// UnrecognizedAttributeError reports a net-cache property whose object path
// is absent from the static attribute registry.
type UnrecognizedAttributeError struct {
	Object ObjectID
	Path   string
}

func (e *UnrecognizedAttributeError) Error() string {
	return fmt.Sprintf("unrecognized attribute object %d (%s)", e.Object, e.Path)
}

// UnrecognizedRemoteIDError reports an unknown UniqueId platform.
type UnrecognizedRemoteIDError struct {
	SystemID uint8
}

func (e *UnrecognizedRemoteIDError) Error() string {
	return fmt.Sprintf("unrecognized remote id system: %d", e.SystemID)
}

// StringTooLargeError reports a string with an implausible declared size,
// whether in the header/body sections or in the network stream.
type StringTooLargeError struct {
	Size int32
}

func (e *StringTooLargeError) Error() string {
	return fmt.Sprintf("unexpected size for string: %d", e.Size)
}

// TooManyFramesError rejects a forged NumFrames before allocating.
type TooManyFramesError struct {
	Frames int32
}

func (e *TooManyFramesError) Error() string {
	return fmt.Sprintf("too many frames to decode: %d", e.Frames)
}

// FrameError wraps any failure inside the network-stream decoder with
// best-effort context: a bounded window of recently decoded frames and the
// position of the failing update.
type FrameError struct {
	Err error

	// Last frames decoded before the failure, oldest first. Bounded by
	// frameContextWindow.
	RecentFrames []Frame

	// Partial state of the frame under decode when the failure happened.
	FrameIndex    int
	Actor         ActorID
	Object        ObjectID
	ObjectName    string
	Stream        StreamID
	AttributeKind string
}

func (e *FrameError) Error() string {
	if e.ObjectName != "" {
		return fmt.Sprintf("frame %d (actor %d, object %q, stream %d, attribute %s): %v",
			e.FrameIndex, e.Actor, e.ObjectName, e.Stream, e.AttributeKind, e.Err)
	}
	return fmt.Sprintf("frame %d: %v", e.FrameIndex, e.Err)
}

func (e *FrameError) Unwrap() error { return e.Err }

// sectionError records where in the byte stream a section failed to decode.
type sectionError struct {
	Section string
	Offset  int
	Err     error
}

func (e *sectionError) Error() string {
	return fmt.Sprintf("could not decode replay %s at offset (%d): %v", e.Section, e.Offset, e.Err)
}

func (e *sectionError) Unwrap() error { return e.Err }

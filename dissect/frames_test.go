package dissect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBody builds a minimal catalog: one team class with one Int attribute
// at stream id 5.
func testBody(networkData []byte) *body {
	return &body{
		objects: []string{
			"TAGame.Team_Soccar_TA", // 0: spawns bare
			"Engine.TeamInfo:Score", // 1: Int
		},
		names:       []string{"Team"},
		networkData: networkData,
		netCache: []ClassNetCache{
			{ObjectInd: 0, ParentID: 0, CacheID: 1, Properties: []CacheProp{{ObjectInd: 1, StreamID: 5}}},
		},
	}
}

func testHeader(numFrames int32) *Header {
	net := int32(7)
	return &Header{
		MajorVersion: 868,
		MinorVersion: 20,
		NetVersion:   &net,
		GameType:     "TAGame.Replay_Soccar_TA",
		Properties: PropertyDict{
			{Name: "NumFrames", Value: Property{Kind: PropInt, Int: numFrames}},
			{Name: "MaxChannels", Value: Property{Kind: PropInt, Int: 1023}},
		},
	}
}

const testChannelBits = 9 // bitWidth(1023) - 1

func writeActorHeader(w *bitWriter, actor uint64, alive, isNew bool) {
	w.writeBit(true) // another channel event
	w.writeBitsMax(testChannelBits, 1023, actor)
	w.writeBit(alive)
	if alive {
		w.writeBit(isNew)
	}
}

// writeSpawn emits a new-actor record for object 0 (no trajectory data).
func writeSpawn(w *bitWriter, actor uint64) {
	writeActorHeader(w, actor, true, true)
	w.writeI32(2) // name id
	w.writeBit(false)
	w.writeI32(0) // object id
}

func TestDecodeFramesSpawnUpdateDelete(t *testing.T) {
	w := &bitWriter{}

	// Frame 1: spawn actor 4.
	w.writeF32(0.001)
	w.writeF32(0.001)
	writeSpawn(w, 4)
	w.writeBit(false) // end of channel events

	// Frame 2: update actor 4 with Int 42 on stream 5, then delete it.
	w.writeF32(0.034)
	w.writeF32(0.033)
	writeActorHeader(w, 4, true, false)
	w.writeBit(true) // a property follows
	w.writeBitsMax(2, 6, 5)
	w.writeI32(42)
	w.writeBit(false) // no more properties
	writeActorHeader(w, 4, false, false)
	w.writeBit(false)

	frames, err := decodeNetwork(testHeader(2), testBody(w.bytes()))
	require.NoError(t, err)
	require.Len(t, frames.Frames, 2)

	first := frames.Frames[0]
	require.Len(t, first.NewActors, 1)
	assert.Equal(t, ActorID(4), first.NewActors[0].ActorID)
	assert.Equal(t, ObjectID(0), first.NewActors[0].ObjectID)
	require.NotNil(t, first.NewActors[0].NameID)
	assert.Equal(t, int32(2), *first.NewActors[0].NameID)
	assert.Nil(t, first.NewActors[0].InitialTrajectory.Location)

	second := frames.Frames[1]
	require.Len(t, second.UpdatedActors, 1)
	update := second.UpdatedActors[0]
	assert.Equal(t, ActorID(4), update.ActorID)
	assert.Equal(t, StreamID(5), update.StreamID)
	// The resolved object id must be the one the class table stores for
	// this stream id.
	assert.Equal(t, ObjectID(1), update.ObjectID)
	assert.Equal(t, IntAttr(42), update.Attribute)
	assert.Equal(t, []ActorID{4}, second.DeletedActors)

	// Time bookkeeping: non-decreasing, delta consistent.
	assert.LessOrEqual(t, first.Time, second.Time)
	assert.InDelta(t, float64(second.Time-first.Time), float64(second.Delta), 1e-6)
}

func TestDecodeFramesEndMarker(t *testing.T) {
	w := &bitWriter{}
	w.writeF32(0.001)
	w.writeF32(0.001)
	w.writeBit(false)
	// All-zero time and delta end the stream before NumFrames is reached.
	w.writeF32(0)
	w.writeF32(0)

	frames, err := decodeNetwork(testHeader(50), testBody(w.bytes()))
	require.NoError(t, err)
	assert.Len(t, frames.Frames, 1)
}

func TestDecodeFramesZeroFrames(t *testing.T) {
	header := testHeader(0)
	frames, err := decodeNetwork(header, testBody(nil))
	require.NoError(t, err)
	assert.Empty(t, frames.Frames)
}

func TestDecodeFramesTooMany(t *testing.T) {
	_, err := decodeNetwork(testHeader(2_000_000_000), testBody(make([]byte, 64)))
	var tooMany *TooManyFramesError
	require.ErrorAs(t, err, &tooMany)
	assert.Equal(t, int32(2_000_000_000), tooMany.Frames)
}

func TestDecodeFramesUnknownActorUpdate(t *testing.T) {
	w := &bitWriter{}
	w.writeF32(0.001)
	w.writeF32(0.001)
	writeActorHeader(w, 9, true, false) // update with no prior spawn
	w.writeBit(false)

	_, err := decodeNetwork(testHeader(1), testBody(w.bytes()))
	var frameErr *FrameError
	require.ErrorAs(t, err, &frameErr)
	var notFound *ActorNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, ActorID(9), notFound.Actor)
}

func TestDecodeFramesTimeOutOfRange(t *testing.T) {
	w := &bitWriter{}
	w.writeF32(-1.5)
	w.writeF32(0.03)

	_, err := decodeNetwork(testHeader(1), testBody(w.bytes()))
	var oor *TimeOutOfRangeError
	require.ErrorAs(t, err, &oor)
}

func TestDecodeFramesTimeRegression(t *testing.T) {
	w := &bitWriter{}
	w.writeF32(5.0)
	w.writeF32(0.03)
	w.writeBit(false)
	w.writeF32(1.0) // earlier than the previous frame
	w.writeF32(0.03)
	w.writeBit(false)

	_, err := decodeNetwork(testHeader(2), testBody(w.bytes()))
	var oor *TimeOutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 1, oor.Frame)
}

func TestDecodeFramesTruncatedStream(t *testing.T) {
	w := &bitWriter{}
	w.writeF32(0.001)
	w.writeF32(0.001)
	writeSpawn(w, 4)

	data := w.bytes()
	// Chop a byte mid-record: the decoder must error, not panic.
	_, err := decodeNetwork(testHeader(2), testBody(data[:len(data)-1]))
	var frameErr *FrameError
	require.ErrorAs(t, err, &frameErr)
	var insufficient *InsufficientDataError
	require.ErrorAs(t, err, &insufficient)
}

func TestDecodeFramesUnrecognizedAttribute(t *testing.T) {
	b := &body{
		objects: []string{
			"TAGame.Team_Soccar_TA",
			"TAGame.Team_TA:FutureAttribute",
		},
		networkData: nil,
		netCache: []ClassNetCache{
			{ObjectInd: 0, ParentID: 0, CacheID: 1, Properties: []CacheProp{{ObjectInd: 1, StreamID: 5}}},
		},
	}
	w := &bitWriter{}
	w.writeF32(0.001)
	w.writeF32(0.001)
	writeSpawn(w, 4)
	w.writeBit(false)
	w.writeF32(0.03)
	w.writeF32(0.03)
	writeActorHeader(w, 4, true, false)
	w.writeBit(true)
	w.writeBitsMax(2, 6, 5)
	b.networkData = w.bytes()

	_, err := decodeNetwork(testHeader(2), b)
	var unrecognized *UnrecognizedAttributeError
	require.ErrorAs(t, err, &unrecognized)
	assert.Equal(t, "TAGame.Team_TA:FutureAttribute", unrecognized.Path)

	// The frame context rides along with the error.
	var frameErr *FrameError
	require.ErrorAs(t, err, &frameErr)
	assert.Equal(t, ActorID(4), frameErr.Actor)
	assert.Equal(t, StreamID(5), frameErr.Stream)
	assert.Len(t, frameErr.RecentFrames, 1)
}

func TestDecodeFramesContextWindowBounded(t *testing.T) {
	w := &bitWriter{}
	time := float32(0.001)
	for i := 0; i < 40; i++ {
		w.writeF32(time)
		w.writeF32(0.033)
		w.writeBit(false)
		time += 0.033
	}
	// Frame 41 dies mid-read.
	w.writeF32(time)

	_, err := decodeNetwork(testHeader(64), testBody(w.bytes()))
	var frameErr *FrameError
	require.ErrorAs(t, err, &frameErr)
	assert.Len(t, frameErr.RecentFrames, frameContextWindow)
	assert.Equal(t, 40, frameErr.FrameIndex)
}

func TestDecodeFramesSpawnWithTrajectory(t *testing.T) {
	b := &body{
		objects: []string{
			"Archetypes.Ball.Ball_Default",        // 0: location + rotation
			"TAGame.RBActor_TA:ReplicatedRBState", // 1
		},
		netCache: []ClassNetCache{
			{ObjectInd: 0, ParentID: 0, CacheID: 1, Properties: []CacheProp{{ObjectInd: 1, StreamID: 1}}},
		},
	}
	w := &bitWriter{}
	w.writeF32(0.001)
	w.writeF32(0.001)
	writeActorHeader(w, 0, true, true)
	w.writeI32(0)     // name id
	w.writeBit(false) // discarded flag
	w.writeI32(0)     // object id
	w.writeBitsMax(4, 22, 0)
	w.writeBits(3, 2) // x = 1
	w.writeBits(2, 2) // y = 0
	w.writeBits(2, 2) // z = 0
	w.writeBit(true)  // yaw present
	w.writeU8(0x80)   // -128
	w.writeBit(false)
	w.writeBit(false)
	w.writeBit(false) // end channel events
	b.networkData = w.bytes()

	frames, err := decodeNetwork(testHeader(1), b)
	require.NoError(t, err)
	require.Len(t, frames.Frames, 1)
	actor := frames.Frames[0].NewActors[0]
	require.NotNil(t, actor.InitialTrajectory.Location)
	assert.Equal(t, Vector3i{X: 1, Y: 0, Z: 0}, *actor.InitialTrajectory.Location)
	require.NotNil(t, actor.InitialTrajectory.Rotation)
	require.NotNil(t, actor.InitialTrajectory.Rotation.Yaw)
	assert.Equal(t, int8(-128), *actor.InitialTrajectory.Rotation.Yaw)
	assert.Nil(t, actor.InitialTrajectory.Rotation.Pitch)
}

func TestDecodeFramesMaxChannelsWidth(t *testing.T) {
	// With two channels, actor ids occupy a single bit.
	header := testHeader(1)
	for i, e := range header.Properties {
		if e.Name == "MaxChannels" {
			header.Properties[i].Value = Property{Kind: PropInt, Int: 2}
		}
	}
	w := &bitWriter{}
	w.writeF32(0.001)
	w.writeF32(0.001)
	w.writeBit(true)
	w.writeBits(1, 1) // actor id 1 in one bit
	w.writeBit(true)
	w.writeBit(true)
	w.writeI32(0)
	w.writeBit(false)
	w.writeI32(0)
	w.writeBit(false)

	frames, err := decodeNetwork(header, testBody(w.bytes()))
	require.NoError(t, err)
	require.Len(t, frames.Frames, 1)
	assert.Equal(t, ActorID(1), frames.Frames[0].NewActors[0].ActorID)
}

func TestDecodeFramesTrailerConsumed(t *testing.T) {
	net := int32(10)
	header := testHeader(1)
	header.MinorVersion = 26 // (868, 26) >= (868, 24, 10): trailer applies
	header.NetVersion = &net

	w := &bitWriter{}
	w.writeF32(0.001)
	w.writeF32(0.001)
	w.writeBit(false)
	w.writeU32(0) // trailer

	frames, err := decodeNetwork(header, testBody(w.bytes()))
	require.NoError(t, err)
	assert.Len(t, frames.Frames, 1)
}

package dissect

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildReplay assembles a complete, checksum-correct replay file around the
// given network stream.
func buildReplay(t *testing.T, numFrames int32, networkData []byte) []byte {
	t.Helper()

	header := &byteBuilder{}
	header.i32(868).i32(20).i32(7)
	header.str("TAGame.Replay_Soccar_TA")
	header.str("TeamSize").str("IntProperty").u64(4).i32(3)
	header.str("Team0Score").str("IntProperty").u64(4).i32(5)
	header.str("Team1Score").str("IntProperty").u64(4).i32(2)
	header.str("NumFrames").str("IntProperty").u64(4).i32(numFrames)
	header.str("MaxChannels").str("IntProperty").u64(4).i32(1023)
	header.str("None")
	headerData := header.bytes()

	content := &byteBuilder{}
	content.i32(0)                                // levels
	content.i32(0)                                // keyframes
	content.i32(int32(len(networkData))).raw(networkData) // network stream
	content.i32(0)                                // debug info
	content.i32(0)                                // tick marks
	content.i32(0)                                // packages
	content.i32(2)                                // objects
	content.str("TAGame.Team_Soccar_TA")
	content.str("Engine.TeamInfo:Score")
	content.i32(1).str("Team") // names
	content.i32(0)             // class index
	content.i32(1)             // net cache
	content.i32(0).i32(0).i32(1)
	content.i32(1).i32(1).i32(5) // one property: object 1 at stream 5
	contentData := content.bytes()

	file := &byteBuilder{}
	file.u32(uint32(len(headerData))).u32(CalcCrc(headerData)).raw(headerData)
	file.u32(uint32(len(contentData))).u32(CalcCrc(contentData)).raw(contentData)
	return file.bytes()
}

func simpleNetworkStream() []byte {
	w := &bitWriter{}
	w.writeF32(0.001)
	w.writeF32(0.001)
	writeSpawn(w, 4)
	w.writeBit(false)
	w.writeF32(0.034)
	w.writeF32(0.033)
	writeActorHeader(w, 4, true, false)
	w.writeBit(true)
	w.writeBitsMax(2, 6, 5)
	w.writeI32(42)
	w.writeBit(false)
	w.writeBit(false)
	return w.bytes()
}

func TestDecodeFullReplay(t *testing.T) {
	data := buildReplay(t, 2, simpleNetworkStream())
	r := Reader{CrcPolicy: CrcAlways, NetworkPolicy: NetworkAlways}
	replay, err := r.Decode(data)
	require.NoError(t, err)

	teamSize, ok := replay.Properties.getInt("TeamSize")
	require.True(t, ok)
	assert.Equal(t, int32(3), teamSize)
	score0, _ := replay.Properties.getInt("Team0Score")
	score1, _ := replay.Properties.getInt("Team1Score")
	assert.Equal(t, int32(5), score0)
	assert.Equal(t, int32(2), score1)

	require.NotNil(t, replay.NetworkFrames)
	frames, ok := replay.Header().NumFrames()
	require.True(t, ok)
	assert.Len(t, replay.NetworkFrames.Frames, int(frames))
	assert.InDelta(t, 0.001, replay.NetworkFrames.Frames[0].Time, 1e-6)
	assert.InDelta(t, 0.033, replay.NetworkFrames.Frames[1].Delta, 1e-6)
	assert.Equal(t, []string{"TAGame.Team_Soccar_TA", "Engine.TeamInfo:Score"}, replay.Objects)
}

func TestDecodeCrcMismatch(t *testing.T) {
	data := buildReplay(t, 2, simpleNetworkStream())
	// Flip the trailing null of the header's "None" key: the section still
	// parses but its checksum no longer holds.
	headerSize := uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16 | uint32(data[3])<<24
	data[8+headerSize-1] ^= 0x20

	r := Reader{CrcPolicy: CrcAlways, NetworkPolicy: NetworkNever}
	_, err := r.Decode(data)
	var mismatch *CrcMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "header", mismatch.Span)

	// Lazy checking does not mind: the flipped byte still parses.
	r = Reader{CrcPolicy: CrcOnError, NetworkPolicy: NetworkNever}
	_, err = r.Decode(data)
	assert.NoError(t, err)
}

func TestDecodeNetworkPolicies(t *testing.T) {
	// Corrupt the stream so network decoding fails.
	bad := simpleNetworkStream()
	data := buildReplay(t, 2, bad[:4])

	r := Reader{NetworkPolicy: NetworkAlways}
	_, err := r.Decode(data)
	require.Error(t, err)

	// IgnoreOnError downgrades the failure to a replay without frames.
	r = Reader{NetworkPolicy: NetworkIgnoreOnError}
	replay, err := r.Decode(data)
	require.NoError(t, err)
	assert.Nil(t, replay.NetworkFrames)

	r = Reader{NetworkPolicy: NetworkNever}
	replay, err = r.Decode(data)
	require.NoError(t, err)
	assert.Nil(t, replay.NetworkFrames)
}

func TestDecodeEmptyInput(t *testing.T) {
	_, err := Decode(nil)
	require.Error(t, err)
	var insufficient *InsufficientDataError
	assert.ErrorAs(t, err, &insufficient)
}

func TestDecodeTruncatedByOneByte(t *testing.T) {
	data := buildReplay(t, 2, simpleNetworkStream())
	r := Reader{NetworkPolicy: NetworkNever}
	_, err := r.Decode(data[:len(data)-1])
	var insufficient *InsufficientDataError
	require.ErrorAs(t, err, &insufficient)
}

func TestDecodeDeterministic(t *testing.T) {
	data := buildReplay(t, 2, simpleNetworkStream())
	r := Reader{NetworkPolicy: NetworkAlways}
	first, err := r.Decode(data)
	require.NoError(t, err)
	second, err := r.Decode(data)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestJSONStructuralRoundTrip(t *testing.T) {
	data := buildReplay(t, 2, simpleNetworkStream())
	replay, err := Decode(data)
	require.NoError(t, err)

	out, err := json.Marshal(replay)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	props := decoded["properties"].(map[string]any)
	assert.Equal(t, float64(3), props["TeamSize"])
	assert.Equal(t, "TAGame.Replay_Soccar_TA", decoded["game_type"])
}

func TestReadZstdCompressed(t *testing.T) {
	data := buildReplay(t, 2, simpleNetworkStream())

	var compressed bytes.Buffer
	enc, err := zstd.NewWriter(&compressed)
	require.NoError(t, err)
	_, err = enc.Write(data)
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	r := Reader{NetworkPolicy: NetworkAlways}
	replay, err := r.Read(bytes.NewReader(compressed.Bytes()))
	require.NoError(t, err)
	require.NotNil(t, replay.NetworkFrames)
	assert.Len(t, replay.NetworkFrames.Frames, 2)

	// Uncompressed input goes through the same path untouched.
	replay, err = r.Read(bytes.NewReader(data))
	require.NoError(t, err)
	assert.NotNil(t, replay.NetworkFrames)
}

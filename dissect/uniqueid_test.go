package dissect

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUniqueIDSteam(t *testing.T) {
	w := &bitWriter{}
	w.writeU8(systemSteam)
	w.writeU64(76561198101748375)
	w.writeU8(0)

	id, err := decodeUniqueID(newBitReader(w.bytes()), 7)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), id.SystemID)
	require.NotNil(t, id.RemoteID.Steam)
	assert.Equal(t, uint64(76561198101748375), *id.RemoteID.Steam)

	out, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"Steam":"76561198101748375"`)
}

func TestDecodeUniqueIDSplitScreen(t *testing.T) {
	w := &bitWriter{}
	w.writeU8(systemSplitScreen)
	w.writeBits(0, 24)
	w.writeU8(1)

	id, err := decodeUniqueID(newBitReader(w.bytes()), 7)
	require.NoError(t, err)
	require.NotNil(t, id.RemoteID.SplitScreen)
	assert.Equal(t, uint8(1), id.LocalID)
}

func TestDecodeUniqueIDPlayStation(t *testing.T) {
	name := make([]byte, 16)
	copy(name, "gamer")
	w := &bitWriter{}
	w.writeU8(systemPlayStation)
	w.writeBytes(name)
	w.writeBytes(make([]byte, 16)) // padding is 16 bytes for net >= 1
	w.writeU64(9001)
	w.writeU8(0)

	id, err := decodeUniqueID(newBitReader(w.bytes()), 7)
	require.NoError(t, err)
	ps := id.RemoteID.PlayStation
	require.NotNil(t, ps)
	assert.Equal(t, "gamer", ps.Name)
	assert.Equal(t, uint64(9001), ps.OnlineID)
	assert.Len(t, ps.Unknown1, 16)
}

func TestDecodeUniqueIDPsyNet(t *testing.T) {
	// Old streams carry 24 trailing bytes preserved verbatim.
	trailer := make([]byte, 24)
	trailer[0] = 0xaa
	w := &bitWriter{}
	w.writeU8(systemPsyNet)
	w.writeU64(123456789)
	w.writeBytes(trailer)
	w.writeU8(0)

	id, err := decodeUniqueID(newBitReader(w.bytes()), 9)
	require.NoError(t, err)
	psy := id.RemoteID.PsyNet
	require.NotNil(t, psy)
	assert.Equal(t, uint64(123456789), psy.OnlineID)
	assert.Equal(t, trailer, psy.Unknown1)

	out, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"online_id":"123456789"`)

	// Net version 10 dropped the trailer.
	w = &bitWriter{}
	w.writeU8(systemPsyNet)
	w.writeU64(42)
	w.writeU8(0)
	id, err = decodeUniqueID(newBitReader(w.bytes()), 10)
	require.NoError(t, err)
	assert.Empty(t, id.RemoteID.PsyNet.Unknown1)
}

func TestDecodeUniqueIDSwitch(t *testing.T) {
	w := &bitWriter{}
	w.writeU8(systemSwitch)
	w.writeU64(777)
	w.writeBytes(make([]byte, 24))
	w.writeU8(0)

	id, err := decodeUniqueID(newBitReader(w.bytes()), 7)
	require.NoError(t, err)
	require.NotNil(t, id.RemoteID.Switch)
	assert.Equal(t, uint64(777), id.RemoteID.Switch.OnlineID)
}

func TestDecodeUniqueIDEpic(t *testing.T) {
	w := &bitWriter{}
	w.writeU8(systemEpic)
	w.writeI32(5)
	w.writeBytes([]byte{'e', 'p', 'i', 'c', 0})
	w.writeU8(2)

	id, err := decodeUniqueID(newBitReader(w.bytes()), 11)
	require.NoError(t, err)
	require.NotNil(t, id.RemoteID.Epic)
	assert.Equal(t, "epic", *id.RemoteID.Epic)
	assert.Equal(t, uint8(2), id.LocalID)
}

func TestDecodeUniqueIDUnknownSystem(t *testing.T) {
	w := &bitWriter{}
	w.writeU8(3)
	_, err := decodeUniqueID(newBitReader(w.bytes()), 7)
	var unrecognized *UnrecognizedRemoteIDError
	require.ErrorAs(t, err, &unrecognized)
	assert.Equal(t, uint8(3), unrecognized.SystemID)
}

func TestUniqueIDJSONRoundTrip(t *testing.T) {
	online := uint64(123456789)
	id := &UniqueID{SystemID: systemPsyNet, RemoteID: RemoteID{PsyNet: &PsyNetID{OnlineID: online, Unknown1: []byte{1, 2}}}}
	out, err := json.Marshal(id)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	remote := decoded["remote_id"].(map[string]any)
	psy := remote["PsyNet"].(map[string]any)
	assert.Equal(t, "123456789", psy["online_id"])
	assert.False(t, strings.Contains(string(out), `"online_id":123456789`), "online id must not be numeric")
}

package dissect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeObject(t *testing.T) {
	assert.Equal(t,
		"TheWorld:PersistentLevel.VehiclePickup_Boost_TA",
		normalizeObject("stadium_foggy_p.TheWorld:PersistentLevel.VehiclePickup_Boost_TA_30"))
	assert.Equal(t,
		"TheWorld:PersistentLevel.CrowdActor_TA",
		normalizeObject("Wasteland_S_P.TheWorld:PersistentLevel.CrowdActor_TA_2"))
	assert.Equal(t, "TAGame.Ball_TA", normalizeObject("TAGame.Ball_TA"))
}

func TestBuildCatalogInheritance(t *testing.T) {
	b := &body{
		objects: []string{
			"TAGame.Ball_TA",                     // 0
			"TAGame.RBActor_TA",                  // 1
			"TAGame.RBActor_TA:ReplicatedRBState", // 2
			"TAGame.Ball_TA:HitTeamNum",          // 3
		},
		netCache: []ClassNetCache{
			{ObjectInd: 1, ParentID: 0, CacheID: 1, Properties: []CacheProp{{ObjectInd: 2, StreamID: 4}}},
			{ObjectInd: 0, ParentID: 1, CacheID: 2, Properties: []CacheProp{{ObjectInd: 3, StreamID: 7}}},
		},
	}
	cat, err := buildCatalog(b)
	require.NoError(t, err)

	ball, ok := cat.caches[0]
	require.True(t, ok)
	// The ball sees its own property and the inherited rigid body state.
	assert.Equal(t, objectAttribute{tag: tagByte, objectID: 3}, ball.attributes[7])
	assert.Equal(t, objectAttribute{tag: tagRigidBody, objectID: 2}, ball.attributes[4])
	assert.Equal(t, uint64(8), ball.maxPropID)
	assert.Equal(t, uint(3), ball.propIDBits)

	// Balls spawn with both location and rotation.
	assert.Equal(t, spawnLocationAndRotation, cat.spawns[0])
}

func TestBuildCatalogArchetypeChain(t *testing.T) {
	b := &body{
		objects: []string{
			"Archetypes.Ball.Ball_Default",        // 0
			"TAGame.Ball_TA",                      // 1
			"TAGame.RBActor_TA:ReplicatedRBState", // 2
		},
		netCache: []ClassNetCache{
			{ObjectInd: 1, ParentID: 0, CacheID: 1, Properties: []CacheProp{{ObjectInd: 2, StreamID: 1}}},
		},
	}
	cat, err := buildCatalog(b)
	require.NoError(t, err)

	// The archetype inherits the class cache and the class spawn shape.
	archetype, ok := cat.caches[0]
	require.True(t, ok)
	assert.Equal(t, tagRigidBody, archetype.attributes[1].tag)
	assert.Equal(t, spawnLocationAndRotation, cat.spawns[0])
}

func TestBuildCatalogDuplicateObjects(t *testing.T) {
	b := &body{
		objects: []string{
			"TAGame.Team_Soccar_TA",  // 0 (primary)
			"Engine.TeamInfo:Score",  // 1
			"TAGame.Team_Soccar_TA",  // 2 (secondary of 0)
		},
		netCache: []ClassNetCache{
			{ObjectInd: 2, ParentID: 0, CacheID: 1, Properties: []CacheProp{{ObjectInd: 1, StreamID: 3}}},
		},
	}
	cat, err := buildCatalog(b)
	require.NoError(t, err)

	// The cache declared against the duplicate is visible through both ids.
	for _, id := range []ObjectID{0, 2} {
		info, ok := cat.caches[id]
		require.True(t, ok, "object %d", id)
		assert.Equal(t, tagInt, info.attributes[3].tag)
	}
}

func TestBuildCatalogUnknownAttributeDeferred(t *testing.T) {
	// Unknown attribute objects only fail when the stream references them.
	b := &body{
		objects: []string{
			"TAGame.Ball_TA",                 // 0
			"TAGame.Ball_TA:FutureAttribute", // 1
		},
		netCache: []ClassNetCache{
			{ObjectInd: 0, ParentID: 0, CacheID: 1, Properties: []CacheProp{{ObjectInd: 1, StreamID: 1}}},
		},
	}
	cat, err := buildCatalog(b)
	require.NoError(t, err)
	assert.Equal(t, tagNotImplemented, cat.caches[0].attributes[1].tag)
}

func TestBuildCatalogObjectIndOutOfRange(t *testing.T) {
	b := &body{
		objects: []string{"TAGame.Ball_TA"},
		netCache: []ClassNetCache{
			{ObjectInd: 0, ParentID: 0, CacheID: 1, Properties: []CacheProp{{ObjectInd: 1547, StreamID: 1}}},
		},
	}
	_, err := buildCatalog(b)
	var outOfRange *ObjectIDOutOfRangeError
	require.ErrorAs(t, err, &outOfRange)
	assert.Equal(t, ObjectID(1547), outOfRange.Object)
}

func TestCacheInfoWidth(t *testing.T) {
	info := newCacheInfo(map[StreamID]objectAttribute{
		5: {tag: tagInt, objectID: 1},
	})
	assert.Equal(t, uint64(6), info.maxPropID)
	assert.Equal(t, uint(2), info.propIDBits)

	// Empty caches still get the minimum width.
	info = newCacheInfo(map[StreamID]objectAttribute{})
	assert.Equal(t, uint64(3), info.maxPropID)
	assert.Equal(t, uint(1), info.propIDBits)
}

func TestParentChainsTerminate(t *testing.T) {
	for name := range objectClasses {
		steps := 0
		for current, ok := name, true; ok; current, ok = parentOf(current) {
			steps++
			require.Less(t, steps, 32, "cycle through %s", name)
		}
	}
	for name := range parentClasses {
		steps := 0
		for current, ok := name, true; ok; current, ok = parentOf(current) {
			steps++
			require.Less(t, steps, 32, "cycle through %s", name)
		}
	}
}

func TestSpawnStatsReachableFromArchetypes(t *testing.T) {
	// Every ball/car archetype must resolve to a spawn shape via its chain.
	for _, name := range []string{
		"Archetypes.Ball.Ball_Default",
		"Archetypes.Ball.Ball_Puck",
		"Archetypes.Car.Car_Default",
		"Archetypes.GameEvent.GameEvent_Soccar",
		"TheWorld:PersistentLevel.VehiclePickup_Boost_TA",
	} {
		found := false
		for current, ok := name, true; ok; current, ok = parentOf(current) {
			if _, hit := spawnStats[current]; hit {
				found = true
				break
			}
		}
		assert.True(t, found, "no spawn shape reachable from %s", name)
	}
}

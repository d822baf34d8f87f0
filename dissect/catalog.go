package dissect

import "github.com/rs/zerolog/log"

// ObjectID indexes the replay's object table. It keys the attribute
// hierarchy and identifies what a new actor is.
type ObjectID int32

// StreamID is the compressed per-class form of an attribute's object id: an
// object id may need 9 bits on the wire where the stream id needs 6.
type StreamID int32

// ActorID identifies an actor for the lifetime of its channel. Ids are
// reused within a replay once a channel closes.
type ActorID int32

// objectAttribute pairs the decoder tag with the attribute's object id.
type objectAttribute struct {
	tag      attributeTag
	objectID ObjectID
}

// cacheInfo is one class's cumulative property table: every stream id it or
// any ancestor can send, plus the bit width stream ids occupy on the wire.
type cacheInfo struct {
	maxPropID  uint64
	propIDBits uint
	attributes map[StreamID]objectAttribute
}

// catalog is the read-only per-replay lookup state handed to the frame
// decoder: object spawn shapes, per-object attribute caches, and the name
// index for product attributes. It is never mutated once built.
type catalog struct {
	objects   []string
	names     []string
	spawns    []spawnTrajectory
	caches    map[ObjectID]*cacheInfo
	nameIndex map[string]ObjectID
}

// buildCatalog reconstructs the class/property lookup tables from the body's
// object and net-cache tables.
func buildCatalog(b *body) (*catalog, error) {
	normalized := make([]string, len(b.objects))
	for i, name := range b.objects {
		normalized[i] = normalizeObject(name)
	}

	// The same name can appear several times in the object table. One index
	// becomes primary; the rest resolve through it.
	nameIndex := make(map[string]ObjectID, len(b.objects))
	primary := make(map[ObjectID]ObjectID)
	secondary := make(map[ObjectID][]ObjectID)
	for i, name := range b.objects {
		id := ObjectID(i)
		if first, ok := nameIndex[name]; ok {
			primary[id] = first
			secondary[first] = append(secondary[first], id)
		} else {
			nameIndex[name] = id
		}
	}
	primaryOf := func(id ObjectID) ObjectID {
		if p, ok := primary[id]; ok {
			return p
		}
		return id
	}

	// Resolve each object's spawn shape by walking the static class chain.
	spawns := make([]spawnTrajectory, len(b.objects))
	for i := range b.objects {
		name := normalized[i]
		for {
			if st, ok := spawnStats[name]; ok {
				spawns[i] = st
				break
			}
			parent, ok := parentOf(name)
			if !ok {
				break
			}
			name = parent
		}
	}

	// Per-object property sets learned from the replay's own net cache.
	type streamProp struct {
		stream StreamID
		attr   objectAttribute
	}
	netProperties := make(map[ObjectID][]streamProp)
	for _, cache := range b.netCache {
		props := make([]streamProp, 0, len(cache.Properties))
		for _, p := range cache.Properties {
			if p.ObjectInd < 0 || int(p.ObjectInd) >= len(normalized) {
				return nil, &ObjectIDOutOfRangeError{Object: ObjectID(p.ObjectInd)}
			}
			tag, ok := objectAttributes[normalized[p.ObjectInd]]
			if !ok {
				tag = tagNotImplemented
			}
			props = append(props, streamProp{
				stream: StreamID(p.StreamID),
				attr:   objectAttribute{tag: tag, objectID: ObjectID(p.ObjectInd)},
			})
		}
		if cache.ObjectInd < 0 || int(cache.ObjectInd) >= len(normalized) {
			return nil, &ObjectIDOutOfRangeError{Object: ObjectID(cache.ObjectInd)}
		}
		key := primaryOf(ObjectID(cache.ObjectInd))
		netProperties[key] = append(netProperties[key], props...)
	}

	// Accumulate each object's cumulative attribute table: its own cache
	// properties plus everything inherited along the parent chain,
	// child entries overriding ancestors on stream id collisions.
	caches := make(map[ObjectID]*cacheInfo, len(netProperties))
	for i := range b.objects {
		id := primaryOf(ObjectID(i))
		if _, done := caches[id]; done {
			continue
		}

		var chain [][]streamProp
		if self, ok := netProperties[id]; ok {
			chain = append(chain, self)
		}
		name := normalized[i]
		for {
			parent, ok := parentOf(name)
			if !ok {
				break
			}
			name = parent
			if ind, ok := nameIndex[name]; ok {
				if props, ok := netProperties[primaryOf(ind)]; ok {
					chain = append(chain, props)
				}
			}
		}
		if len(chain) == 0 {
			continue
		}

		attrs := make(map[StreamID]objectAttribute)
		for j := len(chain) - 1; j >= 0; j-- {
			for _, p := range chain[j] {
				attrs[p.stream] = p.attr
			}
		}

		info := newCacheInfo(attrs)
		caches[id] = info
		for _, sec := range secondary[id] {
			caches[sec] = info
		}
	}

	log.Debug().
		Int("objects", len(b.objects)).
		Int("caches", len(caches)).
		Msg("catalog built")

	return &catalog{
		objects:   b.objects,
		names:     b.names,
		spawns:    spawns,
		caches:    caches,
		nameIndex: nameIndex,
	}, nil
}

func newCacheInfo(attrs map[StreamID]objectAttribute) *cacheInfo {
	maxStream := int32(2)
	for s := range attrs {
		if int32(s) > maxStream {
			maxStream = int32(s)
		}
	}
	maxPropID := uint64(maxStream) + 1
	width := bitWidth(maxPropID)
	if width < 1 {
		width = 1
	}
	return &cacheInfo{
		maxPropID:  maxPropID,
		propIDBits: width - 1,
		attributes: attrs,
	}
}

// objectName is a bounds-safe lookup for diagnostics.
func (c *catalog) objectName(id ObjectID) string {
	if id < 0 || int(id) >= len(c.objects) {
		return ""
	}
	return c.objects[id]
}

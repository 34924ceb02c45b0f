// This file contains the Class-Net-Cache Resolver (component E): the
// footer's ClassNetCache entries record each class's *own* properties, a
// parent_id, and a class-object-id, not the full inherited property list
// the frame state machine needs. Before any frame can be decoded, every
// class's flattened, inherited property list must be reconstructed.

package netstream

import (
	"math/bits"

	"github.com/rlreplay/rlrep/repattr"
)

// ClassEntry is one footer Class table row: a class name paired with the
// Objects-table index of its archetype instance.
type ClassEntry struct {
	ClassName   string
	ObjectIndex uint32
}

// CacheProperty is one raw (object_id, stream_id) entry as recorded in a
// footer ClassNetCache block, before Tag resolution. ObjectIndex refers
// to the Objects table, giving the full dotted name of the replicated
// field this stream_id stands for.
type CacheProperty struct {
	StreamID    uint32
	ObjectIndex uint32
}

// ClassCacheEntry is one footer ClassNetCache block: the Objects-table
// index of the class this entry describes, its cache id, the cache id
// of the entry it inherits from, and the properties declared directly
// on it (not including anything inherited).
type ClassCacheEntry struct {
	ObjectID   uint32
	ParentID   uint32
	CacheID    uint32
	Properties []CacheProperty
}

type resolvedCacheEntry struct {
	entry     ClassCacheEntry
	className string
	flattened []CacheProperty
}

// ResolveClassDispatch reconstructs every class's flattened dispatch
// table from the footer's condensed ClassNetCache entries, following the
// single-pass algorithm: for each raw entry, inherit first via the
// Class:ParentClass table (resolving the parent class's own entry by
// object id), falling back to a reverse scan for the closest prior entry
// whose cache id matches this entry's parent id, and otherwise standing
// alone. The result is keyed by ObjectID so the frame state machine can
// look a dispatch table up directly once it has resolved an actor's
// parent object (§4.G).
func ResolveClassDispatch(entries []ClassCacheEntry, classes []ClassEntry, objects []string) (map[uint32]*ClassDispatch, error) {
	classNameByObjectIndex := make(map[uint32]string, len(classes))
	objectIndexByClassName := make(map[string]uint32, len(classes))
	for _, c := range classes {
		classNameByObjectIndex[c.ObjectIndex] = c.ClassName
		objectIndexByClassName[c.ClassName] = c.ObjectIndex
	}

	resolved := make([]resolvedCacheEntry, 0, len(entries))

	for _, e := range entries {
		className := classNameByObjectIndex[e.ObjectID]

		var inherited []CacheProperty
		if parentClassName, ok := repattr.ResolveParentClass(className); ok {
			if parentObjIndex, ok2 := objectIndexByClassName[parentClassName]; ok2 {
				inherited = findMostRecentByObjectID(resolved, parentObjIndex)
			}
		}
		if inherited == nil && e.ParentID != 0 {
			inherited = findMostRecentByCacheID(resolved, e.ParentID)
		}

		flattened := make([]CacheProperty, 0, len(inherited)+len(e.Properties))
		flattened = append(flattened, inherited...)
		flattened = append(flattened, e.Properties...)

		resolved = append(resolved, resolvedCacheEntry{entry: e, className: className, flattened: flattened})
	}

	dispatch := make(map[uint32]*ClassDispatch, len(resolved))
	for _, re := range resolved {
		d, err := buildDispatch(re.className, re.flattened, objects)
		if err != nil {
			return nil, err
		}
		dispatch[re.entry.ObjectID] = d
	}
	return dispatch, nil
}

// findMostRecentByObjectID scans resolved in reverse for the most
// recently emitted entry whose raw ObjectID equals objectIndex, the
// resolver's namesake reverse scan (§4.E step 3).
func findMostRecentByObjectID(resolved []resolvedCacheEntry, objectIndex uint32) []CacheProperty {
	for i := len(resolved) - 1; i >= 0; i-- {
		if resolved[i].entry.ObjectID == objectIndex {
			return resolved[i].flattened
		}
	}
	return nil
}

// findMostRecentByCacheID scans resolved in reverse for the most
// recently emitted entry whose CacheID equals parentID (§4.E step 4).
func findMostRecentByCacheID(resolved []resolvedCacheEntry, parentID uint32) []CacheProperty {
	for i := len(resolved) - 1; i >= 0; i-- {
		if resolved[i].entry.CacheID == parentID {
			return resolved[i].flattened
		}
	}
	return nil
}

func objectName(objects []string, index uint32) string {
	if int(index) < len(objects) {
		return objects[index]
	}
	return ""
}

func buildDispatch(className string, flattened []CacheProperty, objects []string) (*ClassDispatch, error) {
	maxStreamID := uint32(0)
	for _, p := range flattened {
		if p.StreamID+1 > maxStreamID {
			maxStreamID = p.StreamID + 1
		}
	}
	if maxStreamID == 0 {
		maxStreamID = 3
	}

	d := &ClassDispatch{
		ClassName:     className,
		ByStreamID:    make([]AttrEntry, maxStreamID),
		MaxStreamID:   maxStreamID,
		StreamIDWidth: uint32(bits.Len32(maxStreamID)) - 1,
	}

	for _, prop := range flattened {
		if prop.StreamID >= maxStreamID {
			continue
		}
		name := objectName(objects, prop.ObjectIndex)
		tag, ok := repattr.ResolveAttrTag(name)
		if !ok {
			if parentName, ok2 := repattr.ResolveParent(name); ok2 {
				tag, ok = repattr.ResolveAttrTag(parentName)
			}
		}
		if !ok {
			continue
		}
		d.ByStreamID[prop.StreamID] = AttrEntry{StreamID: prop.StreamID, ObjectName: name, Tag: tag}
	}

	return d, nil
}

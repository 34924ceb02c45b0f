// This file contains the resolved per-class dispatch table type shared by
// the class-net-cache resolver (classcache.go) and the frame state
// machine (framedecoder.go).

package netstream

import "github.com/rlreplay/rlrep/repattr"

// AttrEntry is one flattened (stream_id -> attribute) dispatch entry for
// a single class.
type AttrEntry struct {
	// StreamID is the attribute's position in this class's flattened
	// attribute list, as encoded in the network stream.
	StreamID uint32

	// ObjectName is the fully qualified object name the attribute was
	// declared under (used to resolve its Tag via repattr.ResolveAttrTag).
	ObjectName string

	// Tag is the attribute shape this entry decodes as.
	Tag repattr.Tag
}

// ClassDispatch is a resolved, array-indexed dispatch table for one
// class: ByStreamID[stream_id] gives O(1) lookup from the network
// stream's stream_id field to the attribute to decode. MaxStreamID and
// StreamIDWidth are precomputed once at resolution time rather than
// recomputed on every frame-loop stream_id read.
type ClassDispatch struct {
	// ClassName is the resolved class (object) name this table belongs
	// to.
	ClassName string

	// ByStreamID is indexed directly by stream_id; its length equals
	// MaxStreamID.
	ByStreamID []AttrEntry

	// MaxStreamID is (max stream_id seen in this class's flattened
	// property list) + 1, or 3 when the list is empty.
	MaxStreamID uint32

	// StreamIDWidth is bit_length(MaxStreamID) - 1, the bmc count
	// argument used to read a stream_id for this class.
	StreamIDWidth uint32
}

// Lookup returns the AttrEntry for streamID, or false if streamID falls
// outside this class's resolved range or has no table entry.
func (d *ClassDispatch) Lookup(streamID uint32) (AttrEntry, bool) {
	if int(streamID) >= len(d.ByStreamID) {
		return AttrEntry{}, false
	}
	e := d.ByStreamID[streamID]
	if e.ObjectName == "" {
		return AttrEntry{}, false
	}
	return e, true
}

// This file contains the types describing the replay footer: the object
// and name tables referenced by ObjectID throughout the network stream,
// and the class-net-cache data the resolver flattens into dispatch
// tables.

package rep

// ClassEntry is one footer Class table row: a class name paired with the
// Objects-table index of its archetype instance.
type ClassEntry struct {
	ClassName   string
	ObjectIndex uint32
}

// CacheProperty is one raw (object_id, stream_id) pair as recorded
// directly on a ClassNetCacheEntry, before resolution.
type CacheProperty struct {
	StreamID    uint32
	ObjectIndex uint32
}

// ClassNetCacheEntry is one raw footer ClassNetCache block, exactly as
// read off the wire: unflattened, and with ParentID referring to another
// entry's CacheID rather than anything resolved yet.
type ClassNetCacheEntry struct {
	ObjectID   uint32
	ParentID   uint32
	CacheID    uint32
	Properties []CacheProperty
}

// Footer models the replay footer.
type Footer struct {
	// Objects is the ordered table of fully-qualified object names,
	// addressable by 0-based ObjectID throughout the network stream.
	Objects []string

	// Names is the ordered table of actor name strings, addressed by the
	// NameID field some new-actor segments carry.
	Names []string

	// Classes pairs each class name with the Objects-table index of its
	// archetype instance.
	Classes []ClassEntry

	// ClassNetCacheRaw is the condensed, inheritance-encoded cache data
	// the resolver (netstream.ResolveClassDispatch) flattens into
	// per-object dispatch tables.
	ClassNetCacheRaw []ClassNetCacheEntry

	// Debug holds the raw section bytes, retained only when decoding with
	// Config.Debug set.
	Debug *FooterDebug `json:"-"`
}

// FooterDebug holds debug info for the footer section.
type FooterDebug struct {
	// Data is the raw, uncompressed data of the combined body+footer
	// block, starting right after its length and CRC fields.
	Data []byte

	// CRC is the body+footer block's stored CRC32 checksum. It is stored
	// but never verified; verification is left to the caller.
	CRC uint32
}

// This file contains the footer block decoder: the object, name and class
// tables the network-stream decoder resolves attribute dispatch against,
// plus the class-net-cache entries the resolver flattens.

package replayfile

import "github.com/rlreplay/rlrep/rep"

// debugString is one footer DebugString entry; it documents replication
// warnings Psyonix's own tooling logs and plays no part in decoding.
type debugString struct {
	Frame int32
	User  string
	Text  string
}

// tickMark is one footer TickMark entry (e.g. "Goal", "Replay").
type tickMark struct {
	Description string
	Frame       int32
}

// decodeFooter decodes the footer block starting at sr's current
// position, immediately following the network-stream bytes.
func decodeFooter(sr *sliceReader, footerCRC uint32, keepDebug bool, debugData []byte) *rep.Footer {
	decodeDebugStringList(sr) // not retained downstream, just advances sr
	decodeTickMarkList(sr)    // same

	sr.getStringList() // packages, not needed downstream

	f := &rep.Footer{
		Objects: sr.getStringList(),
		Names:   sr.getStringList(),
		Classes: decodeClassList(sr),
	}
	f.ClassNetCacheRaw = decodeClassNetCacheList(sr)

	if keepDebug {
		f.Debug = &rep.FooterDebug{Data: debugData, CRC: footerCRC}
	}

	return f
}

func decodeDebugStringList(sr *sliceReader) []debugString {
	n := sr.getUint32()
	out := make([]debugString, n)
	for i := range out {
		out[i] = debugString{
			Frame: sr.getInt32(),
			User:  sr.getString16(),
			Text:  sr.getString16(),
		}
	}
	return out
}

func decodeTickMarkList(sr *sliceReader) []tickMark {
	n := sr.getUint32()
	out := make([]tickMark, n)
	for i := range out {
		out[i] = tickMark{
			Description: sr.getString16(),
			Frame:       sr.getInt32(),
		}
	}
	return out
}

func decodeClassList(sr *sliceReader) []rep.ClassEntry {
	n := sr.getUint32()
	out := make([]rep.ClassEntry, n)
	for i := range out {
		out[i] = rep.ClassEntry{
			ClassName:   sr.getString8(),
			ObjectIndex: sr.getUint32(),
		}
	}
	return out
}

func decodeClassNetCacheList(sr *sliceReader) []rep.ClassNetCacheEntry {
	n := sr.getUint32()
	out := make([]rep.ClassNetCacheEntry, n)
	for i := range out {
		out[i] = rep.ClassNetCacheEntry{
			ObjectID:   sr.getUint32(),
			ParentID:   sr.getUint32(),
			CacheID:    sr.getUint32(),
			Properties: decodeCachePropertyList(sr),
		}
	}
	return out
}

func decodeCachePropertyList(sr *sliceReader) []rep.CacheProperty {
	n := sr.getUint32()
	out := make([]rep.CacheProperty, n)
	for i := range out {
		out[i] = rep.CacheProperty{
			ObjectIndex: sr.getUint32(),
			StreamID:    sr.getUint32(),
		}
	}
	return out
}

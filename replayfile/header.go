// This file contains the header block decoder: the version triple the
// network-stream decoder's Context is built from, plus the header's
// PropertySet.

package replayfile

import "github.com/rlreplay/rlrep/rep"

// decodeHeader decodes the header block starting at sr's current
// position. The header's own length field tells sr where the block ends,
// so the caller needn't track it separately; sr.pos is left positioned
// at the start of the body block.
func decodeHeader(sr *sliceReader, keepDebug bool) *rep.Header {
	headerLen := sr.getUint32()
	headerCRC := sr.getUint32()

	start := sr.pos
	h := &rep.Header{}

	h.EngineVersion = sr.getUint32()
	h.LicenseeVersion = sr.getUint32()

	if h.EngineVersion >= 866 && h.LicenseeVersion >= 18 {
		h.NetVersion = sr.getUint32()
		h.HasNetVersion = true
	}

	h.VersionID = sr.getString16()
	h.Properties = sr.getPropertySet()

	applyKnownHeaderProperties(h)

	sr.pos = start + headerLen

	if keepDebug {
		h.Debug = &rep.HeaderDebug{
			Data: append([]byte(nil), sr.b[start:start+headerLen]...),
			CRC:  headerCRC,
		}
	}

	return h
}

// applyKnownHeaderProperties copies the subset of h.Properties that this
// package surfaces as named Header fields.
func applyKnownHeaderProperties(h *rep.Header) {
	if p, ok := h.Properties["MatchType"]; ok {
		h.MatchType = p.StrValue
	}
	if p, ok := h.Properties["BuildVersion"]; ok {
		h.BuildVersion = p.StrValue
		h.HasBuildVersion = true
	}
	if p, ok := h.Properties["MaxChannels"]; ok {
		h.MaxChannels = uint32(p.IntValue)
		h.HasMaxChannels = true
	}
	if p, ok := h.Properties["TeamSize"]; ok {
		h.TeamSize = p.IntValue
	}
	if p, ok := h.Properties["PlayerName"]; ok {
		h.PlayerName = p.StrValue
	}
	if p, ok := h.Properties["MapName"]; ok {
		h.MapName = p.StrValue
	}
	if p, ok := h.Properties["NumFrames"]; ok {
		h.NumFrames = p.IntValue
	}
}

package replayfile

import "testing"

// buildHeaderBlock assembles a header block (length, CRC, version triple,
// VersionID, PropertySet) the way decodeHeader expects to read it.
func buildHeaderBlock(engine, licensee, net uint32, withNet bool, versionID string, props []byte) []byte {
	var body []byte
	body = append(body, encodeUint32(engine)...)
	body = append(body, encodeUint32(licensee)...)
	if withNet {
		body = append(body, encodeUint32(net)...)
	}
	body = append(body, encodeString16(versionID)...)
	body = append(body, props...)

	var out []byte
	out = append(out, encodeUint32(uint32(len(body)))...)
	out = append(out, encodeUint32(0xDEADBEEF)...) // CRC, unverified
	out = append(out, body...)
	return out
}

// encodeString16 builds a positive-length Windows-1252 String16 value.
func encodeString16(s string) []byte {
	buf := append(encodeInt32(int32(len(s)+1)), []byte(s)...)
	return append(buf, 0)
}

func TestDecodeHeaderVersionTriplePresent(t *testing.T) {
	props := noneTerminator()
	b := buildHeaderBlock(868, 20, 12, true, "v1.0", props)

	sr := &sliceReader{b: b}
	h := decodeHeader(sr, false)

	if h.EngineVersion != 868 || h.LicenseeVersion != 20 || h.NetVersion != 12 {
		t.Errorf("version triple = (%d, %d, %d), want (868, 20, 12)", h.EngineVersion, h.LicenseeVersion, h.NetVersion)
	}
	if !h.HasNetVersion {
		t.Error("HasNetVersion = false, want true")
	}
	if h.VersionID != "v1.0" {
		t.Errorf("VersionID = %q, want %q", h.VersionID, "v1.0")
	}
}

func TestDecodeHeaderVersionTripleAbsent(t *testing.T) {
	// Below the 866/18 threshold: no NetVersion field on the wire.
	props := noneTerminator()
	b := buildHeaderBlock(800, 10, 0, false, "v0.9", props)

	sr := &sliceReader{b: b}
	h := decodeHeader(sr, false)

	if h.HasNetVersion {
		t.Error("HasNetVersion = true, want false below the version threshold")
	}
	if h.NetVersion != 0 {
		t.Errorf("NetVersion = %d, want 0", h.NetVersion)
	}
}

func TestDecodeHeaderAppliesKnownProperties(t *testing.T) {
	var props []byte
	props = append(props, propertyEntry("MatchType", "StrProperty", encodeString16("Online"))...)
	props = append(props, propertyEntry("TeamSize", "IntProperty", encodeInt32(3))...)
	props = append(props, propertyEntry("PlayerName", "StrProperty", encodeString16("Squishy"))...)
	props = append(props, noneTerminator()...)

	b := buildHeaderBlock(868, 20, 12, true, "v1.0", props)
	sr := &sliceReader{b: b}
	h := decodeHeader(sr, false)

	if h.MatchType != "Online" {
		t.Errorf("MatchType = %q, want Online", h.MatchType)
	}
	if h.TeamSize != 3 {
		t.Errorf("TeamSize = %d, want 3", h.TeamSize)
	}
	if h.PlayerName != "Squishy" {
		t.Errorf("PlayerName = %q, want Squishy", h.PlayerName)
	}
}

func TestDecodeHeaderDebugBytes(t *testing.T) {
	props := noneTerminator()
	b := buildHeaderBlock(868, 20, 12, true, "v1.0", props)

	sr := &sliceReader{b: b}
	h := decodeHeader(sr, true)

	if h.Debug == nil {
		t.Fatal("Debug is nil with Config.Debug true")
	}
	if h.Debug.CRC != 0xDEADBEEF {
		t.Errorf("Debug.CRC = %#x, want 0xdeadbeef", h.Debug.CRC)
	}
	if len(h.Debug.Data) == 0 {
		t.Error("Debug.Data is empty")
	}
}

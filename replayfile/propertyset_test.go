package replayfile

import (
	"encoding/binary"
	"testing"

	"github.com/rlreplay/rlrep/rep"
)

// encodeString8 builds the wire bytes for a String8 value: a signed
// 32-bit length (string length + 1 for the NUL terminator), the bytes,
// then the NUL.
func encodeString8(s string) []byte {
	buf := make([]byte, 4+len(s)+1)
	binary.LittleEndian.PutUint32(buf, uint32(len(s)+1))
	copy(buf[4:], s)
	return buf
}

func encodeUint32(v uint32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, v)
	return buf
}

func encodeInt32(v int32) []byte {
	return encodeUint32(uint32(v))
}

func encodeUint64(v uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, v)
	return buf
}

// propertyEntry builds one name/type/filler/value entry for a PropertySet.
func propertyEntry(name, typeTag string, value []byte) []byte {
	var out []byte
	out = append(out, encodeString8(name)...)
	out = append(out, encodeString8(typeTag)...)
	out = append(out, encodeUint64(0)...) // unknown filler
	out = append(out, value...)
	return out
}

func noneTerminator() []byte {
	return encodeString8("None")
}

func TestGetPropertySetIntProperty(t *testing.T) {
	var b []byte
	b = append(b, propertyEntry("Score", "IntProperty", encodeInt32(7))...)
	b = append(b, noneTerminator()...)

	sr := &sliceReader{b: b}
	ps := sr.getPropertySet()

	prop, ok := ps["Score"]
	if !ok {
		t.Fatal("PropertySet missing \"Score\"")
	}
	if prop.Type != rep.PropertyInt || prop.IntValue != 7 {
		t.Errorf("ps[\"Score\"] = %+v, want IntProperty 7", prop)
	}
}

func TestGetPropertySetByteLikePlatform(t *testing.T) {
	// ByteProperty OnlinePlatform -> OnlinePlatform_Steam has no value
	// field; the decoder must not try to read one.
	var b []byte
	b = append(b, propertyEntry("Platform", "ByteProperty", encodeString8("OnlinePlatform_Steam"))...)
	b = append(b, noneTerminator()...)

	sr := &sliceReader{b: b}
	ps := sr.getPropertySet()

	prop, ok := ps["Platform"]
	if !ok {
		t.Fatal("PropertySet missing \"Platform\"")
	}
	if prop.ByteKey != "OnlinePlatform_Steam" {
		t.Errorf("ByteKey = %q, want OnlinePlatform_Steam", prop.ByteKey)
	}
	if prop.ByteValue != "" {
		t.Errorf("ByteValue = %q, want empty (value field absent for this key)", prop.ByteValue)
	}
}

func TestGetPropertySetByteWithValue(t *testing.T) {
	var b []byte
	value := append(encodeString8("TeamColor"), encodeString8("Blue")...)
	b = append(b, propertyEntry("Team", "ByteProperty", value)...)
	b = append(b, noneTerminator()...)

	sr := &sliceReader{b: b}
	ps := sr.getPropertySet()

	prop, ok := ps["Team"]
	if !ok {
		t.Fatal("PropertySet missing \"Team\"")
	}
	if prop.ByteKey != "TeamColor" || prop.ByteValue != "Blue" {
		t.Errorf("ps[\"Team\"] = %+v, want {ByteKey: TeamColor, ByteValue: Blue}", prop)
	}
}

func TestGetPropertySetBoolLowBitOnly(t *testing.T) {
	var b []byte
	// 0xFE has its low bit clear; only the low bit should be consulted.
	b = append(b, propertyEntry("Flag", "BoolProperty", []byte{0xFE})...)
	b = append(b, noneTerminator()...)

	sr := &sliceReader{b: b}
	ps := sr.getPropertySet()

	if ps["Flag"].BoolValue {
		t.Error("BoolValue = true for a byte with low bit clear, want false")
	}
}

func TestGetPropertySetArrayNested(t *testing.T) {
	var inner []byte
	inner = append(inner, propertyEntry("Kills", "IntProperty", encodeInt32(3))...)
	inner = append(inner, noneTerminator()...)

	var b []byte
	value := append(encodeUint32(1), inner...)
	b = append(b, propertyEntry("PlayerStats", "ArrayProperty", value)...)
	b = append(b, noneTerminator()...)

	sr := &sliceReader{b: b}
	ps := sr.getPropertySet()

	prop, ok := ps["PlayerStats"]
	if !ok {
		t.Fatal("PropertySet missing \"PlayerStats\"")
	}
	if len(prop.ArrayValue) != 1 {
		t.Fatalf("ArrayValue has %d elements, want 1", len(prop.ArrayValue))
	}
	if prop.ArrayValue[0]["Kills"].IntValue != 3 {
		t.Errorf("ArrayValue[0][\"Kills\"].IntValue = %d, want 3", prop.ArrayValue[0]["Kills"].IntValue)
	}
}

func TestGetString16SignGatesEncoding(t *testing.T) {
	// Negative length: UTF-16LE code units.
	b := append(encodeInt32(-3), []byte{'a', 0, 'b', 0, 'c', 0}...)
	sr := &sliceReader{b: b}
	if got := sr.getString16(); got != "abc" {
		t.Errorf("getString16() = %q, want %q", got, "abc")
	}

	// Positive length: Windows-1252 bytes, trailing NUL trimmed.
	b = append(encodeInt32(4), []byte{'x', 'y', 'z', 0}...)
	sr = &sliceReader{b: b}
	if got := sr.getString16(); got != "xyz" {
		t.Errorf("getString16() = %q, want %q", got, "xyz")
	}
}

func TestGetString8BuggedLength(t *testing.T) {
	b := append(encodeInt32(string8BuggedLength), []byte("abcdefg\x00")...)
	sr := &sliceReader{b: b}
	if got := sr.getString8(); got != "abcdefg" {
		t.Errorf("getString8() = %q, want %q", got, "abcdefg")
	}
}

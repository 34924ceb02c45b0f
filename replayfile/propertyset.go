// This file contains the byte-aligned PropertySet decoder and the two
// string encodings the header/footer blocks use: the same String8/String16
// shapes the network stream uses (see netstream/primitives.go), but read
// through a sliceReader instead of a BitReader.

package replayfile

import (
	"log"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/rlreplay/rlrep/rep"
)

// string8BuggedLength mirrors netstream's known source-data bug: one
// known replay carries this length where 8 was meant.
const string8BuggedLength = 83886080

// getString8 reads a length-prefixed, UTF-8 decoded string: a signed
// 32-bit length, then that many bytes, the last of which (a NUL
// terminator) is dropped.
func (sr *sliceReader) getString8() string {
	n := sr.getInt32()
	if n == string8BuggedLength {
		log.Printf("replayfile: String8 length %d is a known source-data bug, reading 8 instead", n)
		n = 8
	}
	if n == 0 {
		return ""
	}
	b := sr.readSlice(uint32(n))
	return string(trimTrailingNUL(b))
}

// getString16 reads a string whose length prefix's sign selects the
// encoding: positive is Windows-1252 bytes, negative is UTF-16LE code
// units.
func (sr *sliceReader) getString16() string {
	n := sr.getInt32()
	if n == 0 {
		return ""
	}
	if n < 0 {
		b := sr.readSlice(uint32(-n) * 2)
		out, _, err := transform.Bytes(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder(), b)
		if err != nil {
			return ""
		}
		return trimTrailingNULString(string(out))
	}
	b := sr.readSlice(uint32(n))
	out, err := charmap.Windows1252.NewDecoder().Bytes(trimTrailingNUL(b))
	if err != nil {
		return string(b)
	}
	return trimTrailingNULString(string(out))
}

func trimTrailingNUL(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == 0 {
		return b[:n-1]
	}
	return b
}

func trimTrailingNULString(s string) string {
	if n := len(s); n > 0 && s[n-1] == 0 {
		return s[:n-1]
	}
	return s
}

// getStringList reads a u32 element count followed by that many
// String16 values.
func (sr *sliceReader) getStringList() []string {
	n := sr.getUint32()
	out := make([]string, n)
	for i := range out {
		out[i] = sr.getString16()
	}
	return out
}

// byteValuePresent tells if a ByteProperty's key requires a second
// String8 value field, per spec's two documented exceptions.
func byteValuePresent(key string) bool {
	return key != "OnlinePlatform_Steam" && key != "OnlinePlatform_PS4"
}

// getPropertySet reads Property entries until one named "None", per the
// source format's None-terminated walk.
func (sr *sliceReader) getPropertySet() rep.PropertySet {
	props := rep.PropertySet{}
	for {
		name := sr.getString8()
		if name == "None" {
			return props
		}
		typeTag := sr.getString8()
		sr.getUint64() // unknown filler, always present regardless of type

		props[name] = sr.getPropertyValue(typeTag)
	}
}

func (sr *sliceReader) getPropertyValue(typeTag string) rep.Property {
	switch typeTag {
	case "IntProperty":
		return rep.Property{Type: rep.PropertyInt, IntValue: sr.getInt32()}
	case "StrProperty":
		return rep.Property{Type: rep.PropertyStr, StrValue: sr.getString16()}
	case "NameProperty":
		return rep.Property{Type: rep.PropertyName, StrValue: sr.getString16()}
	case "FloatProperty":
		return rep.Property{Type: rep.PropertyFloat, FloatValue: sr.getFloat32()}
	case "QWordProperty":
		return rep.Property{Type: rep.PropertyQWord, QWordValue: sr.getUint64()}
	case "BoolProperty":
		// The format stores this as a single byte; only the low bit is
		// meaningful.
		return rep.Property{Type: rep.PropertyBool, BoolValue: sr.getByte()&1 != 0}
	case "ByteProperty":
		key := sr.getString8()
		p := rep.Property{Type: rep.PropertyByte, ByteKey: key}
		if byteValuePresent(key) {
			p.ByteValue = sr.getString8()
		}
		return p
	case "ArrayProperty":
		n := sr.getUint32()
		arr := make([]rep.PropertySet, n)
		for i := range arr {
			arr[i] = sr.getPropertySet()
		}
		return rep.Property{Type: rep.PropertyArray, ArrayValue: arr}
	default:
		panic("replayfile: unknown property type tag: " + typeTag)
	}
}

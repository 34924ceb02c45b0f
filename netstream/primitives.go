// This file contains the primitive decode helpers layered directly on top
// of BitReader: the bounded-magnitude coder, compressed floats, and the
// two string encodings the network stream uses.

package netstream

import (
	"log"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// string8BuggedLength is a length value (0x05000000) observed in one
// known replay's String8 field; it is a source-data bug, not a valid
// length, and must be read as 8 instead.
const string8BuggedLength = 83886080

// ReadBoundedMagnitude reads a bounded-magnitude-coded unsigned value: a
// fixed count of low bits plus, when the resulting value could still be
// within [0, max], one extra continuation bit. max is the largest value
// this field can ever hold; count is the number of bits needed to
// represent max's lower range (ceil(log2(max+1)) in the common case, but
// callers pass it explicitly since some fields use a narrower count than
// their nominal max would imply).
func ReadBoundedMagnitude(r *BitReader, count uint, max uint64) (uint64, error) {
	d, err := r.ReadBits(count)
	if err != nil {
		return 0, err
	}
	u := d + (uint64(1) << count)
	if u > max {
		return d, nil
	}
	bit, err := r.ReadBool()
	if err != nil {
		return 0, err
	}
	if bit {
		return u, nil
	}
	return d, nil
}

// bmc is a package-local short alias for ReadBoundedMagnitude, used by the
// geometry, attribute, list and frame decoders.
func bmc(r *BitReader, count uint, max uint64) (uint64, error) {
	return ReadBoundedMagnitude(r, count, max)
}

// ReadString8 reads a length-prefixed, UTF-8 decoded string: a signed
// 32-bit length, then that many bytes, the last of which (a NUL
// terminator) is dropped.
func ReadString8(r *BitReader) (string, error) {
	n, err := r.ReadI32()
	if err != nil {
		return "", err
	}
	if n == string8BuggedLength {
		log.Printf("netstream: String8 length %d is a known source-data bug, reading 8 instead", n)
		n = 8
	}
	if n == 0 {
		return "", nil
	}
	b, err := r.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	return string(trimTrailingNUL(b)), nil
}

// ReadString16 reads a string whose length prefix's sign selects the
// encoding: a positive length is Windows-1252 bytes, a negative length is
// UTF-16LE code units (the magnitude counts code units, not bytes).
func ReadString16(r *BitReader) (string, error) {
	n, err := r.ReadI32()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	if n < 0 {
		return readUTF16String(r, -n)
	}
	b, err := r.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	return decodeWindows1252(trimTrailingNUL(b)), nil
}

func readUTF16String(r *BitReader, units int32) (string, error) {
	b, err := r.ReadBytes(int(units) * 2)
	if err != nil {
		return "", err
	}
	out, _, err := transform.Bytes(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder(), b)
	if err != nil {
		return "", err
	}
	return trimTrailingNULString(string(out)), nil
}

func decodeWindows1252(b []byte) string {
	out, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return trimTrailingNULString(string(out))
}

// filterNulBytes drops every NUL byte rather than just a single trailing
// one, for fixed-width fields (like the PlayStation remote ID's name)
// that pad with NUL instead of terminating with a single one.
func filterNulBytes(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c != 0 {
			out = append(out, c)
		}
	}
	return out
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

// ReadList reads a bmc-coded element count and then n elements via the
// supplied decode function. T is typically an Attribute or a plain value
// type such as rlcore.Vector3i.
func ReadList[T any](r *BitReader, max uint64, count uint, decode func(*BitReader) (T, error)) ([]T, error) {
	n, err := bmc(r, count, max)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, n)
	for i := uint64(0); i < n; i++ {
		v, err := decode(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

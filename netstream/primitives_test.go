package netstream

import "testing"

func TestBoundedMagnitudeCoder(t *testing.T) {
	tests := []struct {
		name  string
		b     byte
		count uint
		max   uint64
		want  uint64
	}{
		// bits "1011": first bit read is the value's low bit, so the
		// nibble 1,0,1,1 (in read order) packs as 0x0D. d=13, u=29>20,
		// continuation bit not consumed.
		{"above max, continuation skipped", 0x0D, 4, 20, 13},
		// bits "0100" then "1": packs as 0x12. d=2, u=18<=20,
		// continuation bit is 1, so the extended value is returned.
		{"within max, continuation consumed", 0x12, 4, 20, 18},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewBitReader([]byte{tc.b})
			got, err := bmc(r, tc.count, tc.max)
			if err != nil {
				t.Fatalf("bmc: %v", err)
			}
			if got != tc.want {
				t.Errorf("bmc(%#x, %d, %d) = %d, want %d", tc.b, tc.count, tc.max, got, tc.want)
			}
		})
	}
}

func TestBoundedMagnitudeUpperBound(t *testing.T) {
	for max := uint64(1); max < 64; max++ {
		for b := 0; b < 256; b++ {
			r := NewBitReader([]byte{byte(b)})
			got, err := bmc(r, 4, max)
			if err != nil {
				t.Fatalf("bmc: %v", err)
			}
			if got > max {
				t.Fatalf("bmc(%#x, 4, %d) = %d, exceeds max", b, max, got)
			}
		}
	}
}

func TestReadString16NegativeLength(t *testing.T) {
	// length -4: read 8 bytes, decode as UTF-16LE "abcd".
	b := []byte{
		0xFC, 0xFF, 0xFF, 0xFF, // -4 as little-endian int32
		'a', 0, 'b', 0, 'c', 0, 'd', 0,
	}
	r := NewBitReader(b)
	s, err := ReadString16(r)
	if err != nil {
		t.Fatalf("ReadString16: %v", err)
	}
	if s != "abcd" {
		t.Errorf("ReadString16() = %q, want %q", s, "abcd")
	}
}

func TestReadString16PositiveLength(t *testing.T) {
	// length 6: read 6 Windows-1252 bytes, trailing NUL trimmed.
	b := []byte{6, 0, 0, 0, 'a', 'b', 'c', 'd', 'e', 0}
	r := NewBitReader(b)
	s, err := ReadString16(r)
	if err != nil {
		t.Fatalf("ReadString16: %v", err)
	}
	if s != "abcde" {
		t.Errorf("ReadString16() = %q, want %q", s, "abcde")
	}
}

func TestReadString16ZeroLength(t *testing.T) {
	b := []byte{0, 0, 0, 0}
	r := NewBitReader(b)
	s, err := ReadString16(r)
	if err != nil {
		t.Fatalf("ReadString16: %v", err)
	}
	if s != "" {
		t.Errorf("ReadString16() = %q, want empty", s)
	}
}

func TestReadString8BuggedLength(t *testing.T) {
	b := []byte{0, 0, 0, 5, 'a', 'b', 'c', 'd', 'e', 'f', 'g', 0}
	r := NewBitReader(b)
	s, err := ReadString8(r)
	if err != nil {
		t.Fatalf("ReadString8: %v", err)
	}
	if s != "abcdefg" {
		t.Errorf("ReadString8() = %q, want %q", s, "abcdefg")
	}
}

func TestReadListCount(t *testing.T) {
	// count=2, max=3: any 2-bit d already exceeds max once extended
	// (u = d+4 > 3), so the element count is read as a plain 2-bit
	// value with no continuation bit. First byte's low 2 bits are 1,1
	// (0x03), giving d=3 elements.
	raw := []byte{0x03, 0x11, 0x22, 0x33}
	r := NewBitReader(raw)
	got, err := ReadList(r, 3, 2, func(r *BitReader) (byte, error) {
		return r.ReadU8()
	})
	if err != nil {
		t.Fatalf("ReadList: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ReadList returned %d elements, want 3", len(got))
	}
}

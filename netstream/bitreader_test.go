package netstream

import "testing"

func TestBitReaderFillOrder(t *testing.T) {
	r := NewBitReader([]byte{0x69, 0xC5})

	v, err := r.ReadBits(5)
	if err != nil {
		t.Fatalf("ReadBits(5): %v", err)
	}
	if v != 9 {
		t.Errorf("ReadBits(5) = %d, want 9", v)
	}

	// Independently derived from the fill-order rule documented on
	// BitReader: new bytes enter scratch at the current fill position,
	// bits are consumed low-order first.
	v, err = r.ReadBits(8)
	if err != nil {
		t.Fatalf("ReadBits(8): %v", err)
	}
	if v != 0x2B {
		t.Errorf("ReadBits(8) = %#x, want 0x2b", v)
	}

	v, err = r.ReadBits(3)
	if err != nil {
		t.Fatalf("ReadBits(3): %v", err)
	}
	if v != 6 {
		t.Errorf("ReadBits(3) = %d, want 6", v)
	}

	if _, err := r.ReadBits(1); err != ErrEndOfStream {
		t.Errorf("trailing ReadBits(1) = %v, want ErrEndOfStream", err)
	}
}

func TestBitReaderLenAndOffset(t *testing.T) {
	r := NewBitReader([]byte{0xFF, 0xFF})
	if got := r.Len(); got != 16 {
		t.Fatalf("Len() = %d, want 16", got)
	}
	if _, err := r.ReadBits(3); err != nil {
		t.Fatalf("ReadBits(3): %v", err)
	}
	if got := r.BitOffset(); got != 3 {
		t.Errorf("BitOffset() = %d, want 3", got)
	}
	if got := r.Len(); got != 13 {
		t.Errorf("Len() = %d, want 13", got)
	}
}

func TestBitReaderReadBytesOrder(t *testing.T) {
	r := NewBitReader([]byte{0x01, 0x02, 0x03})
	b, err := r.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes(3): %v", err)
	}
	want := []byte{0x01, 0x02, 0x03}
	for i := range want {
		if b[i] != want[i] {
			t.Errorf("ReadBytes(3)[%d] = %#x, want %#x", i, b[i], want[i])
		}
	}
}

func TestBitReaderReadU32LittleEndian(t *testing.T) {
	r := NewBitReader([]byte{0x01, 0x00, 0x00, 0x00})
	v, err := r.ReadU32()
	if err != nil {
		t.Fatalf("ReadU32: %v", err)
	}
	if v != 1 {
		t.Errorf("ReadU32() = %d, want 1", v)
	}
}

func TestBitReaderReadBitsZero(t *testing.T) {
	r := NewBitReader(nil)
	v, err := r.ReadBits(0)
	if err != nil || v != 0 {
		t.Errorf("ReadBits(0) = (%d, %v), want (0, nil)", v, err)
	}
}

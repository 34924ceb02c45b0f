package netstream

import (
	"math"
	"testing"

	"github.com/rlreplay/rlrep/rlcore"
)

// bitField is one value-plus-width entry for packBits.
type bitField struct {
	val uint64
	n   uint
}

// packBits packs fields LSB-first into bytes, the exact inverse of
// BitReader's fill/consume order: each field's value occupies the next
// n bits above whatever has already been packed.
func packBits(fields []bitField) []byte {
	var scratch uint64
	var nbits uint
	var out []byte
	for _, f := range fields {
		scratch |= f.val << nbits
		nbits += f.n
		for nbits >= 8 {
			out = append(out, byte(scratch))
			scratch >>= 8
			nbits -= 8
		}
	}
	if nbits > 0 {
		out = append(out, byte(scratch))
	}
	return out
}

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestReadQuaternionSmallestThree(t *testing.T) {
	const half = 1 << 17 // component raw value whose normalized float is ~0

	b := packBits([]bitField{
		{2, 2},          // largest = 2 (z omitted)
		{half, quatComponentBits}, // a
		{half, quatComponentBits}, // b
		{half, quatComponentBits}, // c
	})

	r := NewBitReader(b)
	ctx := &rlcore.Context{NetVersion: 7}

	q, err := ReadQuaternion(r, ctx)
	if err != nil {
		t.Fatalf("ReadQuaternion: %v", err)
	}

	const eps = 1e-3
	if !approxEqual(q.X, 0, eps) {
		t.Errorf("X = %v, want ~0", q.X)
	}
	if !approxEqual(q.Y, 0, eps) {
		t.Errorf("Y = %v, want ~0", q.Y)
	}
	if !approxEqual(q.Z, 1, eps) {
		t.Errorf("Z = %v, want ~1 (reconstructed omitted component)", q.Z)
	}
	if !approxEqual(q.W, 0, eps) {
		t.Errorf("W = %v, want ~0", q.W)
	}
}

func TestReadQuaternionPreNetVersion7(t *testing.T) {
	// Three cf32-encoded 16-bit fields, w defaults to 0.
	b := packBits([]bitField{
		{0, 16},
		{0, 16},
		{0, 16},
	})
	r := NewBitReader(b)
	ctx := &rlcore.Context{NetVersion: 6}

	q, err := ReadQuaternion(r, ctx)
	if err != nil {
		t.Fatalf("ReadQuaternion: %v", err)
	}
	if q.W != 0 {
		t.Errorf("W = %v, want 0 below net version 7", q.W)
	}
}

func TestReadVector3iBoundByNetVersion(t *testing.T) {
	ctx6 := &rlcore.Context{NetVersion: 6}
	if got := vector3iMaxBound(ctx6); got != 20 {
		t.Errorf("vector3iMaxBound(netver 6) = %d, want 20", got)
	}
	ctx7 := &rlcore.Context{NetVersion: 7}
	if got := vector3iMaxBound(ctx7); got != 22 {
		t.Errorf("vector3iMaxBound(netver 7) = %d, want 22", got)
	}
}

func TestReadRotationAbsentComponents(t *testing.T) {
	// Three presence bits, all 0: yaw/pitch/roll all absent.
	b := packBits([]bitField{{0, 1}, {0, 1}, {0, 1}})
	r := NewBitReader(b)
	rot, err := ReadRotation(r)
	if err != nil {
		t.Fatalf("ReadRotation: %v", err)
	}
	if rot.Yaw != 0 || rot.Pitch != 0 || rot.Roll != 0 {
		t.Errorf("ReadRotation() = %+v, want all zero", rot)
	}
}

// This file contains the decode functions for rlcore's plain geometric
// value types: compressed vectors, rotations, and the smallest-three
// quaternion encoding.

package netstream

import (
	"math"

	"github.com/rlreplay/rlrep/rlcore"
)

// vector3iMaxBound is the bmc upper bound for a Vector3i's bit-size
// selector: 22 once NET_VERSION reaches 7, else 20.
func vector3iMaxBound(ctx *rlcore.Context) uint64 {
	if ctx.NetVersion >= 7 {
		return 22
	}
	return 20
}

// ReadVector3i reads a compressed integer 3D vector: a bmc-coded bit
// count selector followed by three signed fields of that width, each
// biased by half its range.
func ReadVector3i(r *BitReader, ctx *rlcore.Context) (rlcore.Vector3i, error) {
	size, err := bmc(r, 4, vector3iMaxBound(ctx))
	if err != nil {
		return rlcore.Vector3i{}, err
	}

	bits := uint(size) + 2
	bias := int64(1) << (uint(size) + 1)

	x, err := readBiasedInt(r, bits, bias)
	if err != nil {
		return rlcore.Vector3i{}, err
	}
	y, err := readBiasedInt(r, bits, bias)
	if err != nil {
		return rlcore.Vector3i{}, err
	}
	z, err := readBiasedInt(r, bits, bias)
	if err != nil {
		return rlcore.Vector3i{}, err
	}
	return rlcore.Vector3i{X: x, Y: y, Z: z}, nil
}

func readBiasedInt(r *BitReader, bits uint, bias int64) (int32, error) {
	v, err := r.ReadBits(bits)
	if err != nil {
		return 0, err
	}
	return int32(int64(v) - bias), nil
}

// ReadVector3f reads a compressed floating point 3D vector: the same
// bit-size-selected shape as ReadVector3i, with each axis then divided
// by 100 to recover engine units.
func ReadVector3f(r *BitReader, ctx *rlcore.Context) (rlcore.Vector3f, error) {
	v, err := ReadVector3i(r, ctx)
	if err != nil {
		return rlcore.Vector3f{}, err
	}
	return rlcore.Vector3f{
		X: float32(v.X) / 100,
		Y: float32(v.Y) / 100,
		Z: float32(v.Z) / 100,
	}, nil
}

// ReadCompressedFloat reads a 16-bit compressed float in the canonical
// cf32 encoding used by the pre-net-version-7 quaternion layout.
func ReadCompressedFloat(r *BitReader) (float32, error) {
	v, err := r.ReadBits(16)
	if err != nil {
		return 0, err
	}
	return cf32(v), nil
}

// cf32 converts a raw 16-bit field into the float the wire format
// represents.
func cf32(v uint64) float32 {
	return 1 / ((float32(v) + 32768) * 32767)
}

// ReadRotation reads a compressed rotation: each of yaw/pitch/roll is
// gated by a presence bit, and when present holds a signed byte.
func ReadRotation(r *BitReader) (rlcore.Rotation, error) {
	var rot rlcore.Rotation
	yaw, err := readOptionalSignedByte(r)
	if err != nil {
		return rot, err
	}
	rot.Yaw = yaw
	pitch, err := readOptionalSignedByte(r)
	if err != nil {
		return rot, err
	}
	rot.Pitch = pitch
	roll, err := readOptionalSignedByte(r)
	if err != nil {
		return rot, err
	}
	rot.Roll = roll
	return rot, nil
}

func readOptionalSignedByte(r *BitReader) (int8, error) {
	present, err := r.ReadBool()
	if err != nil {
		return 0, err
	}
	if !present {
		return 0, nil
	}
	v, err := r.ReadU8()
	if err != nil {
		return 0, err
	}
	return int8(v), nil
}

// quatComponentBits is the width of each of the smallest-three
// quaternion's explicit components.
const quatComponentBits = 18

// quatComponentMax is the largest value an 18-bit quaternion component
// field can hold, used to rescale it back into [-1/sqrt(2), 1/sqrt(2)].
const quatComponentMax = (1 << quatComponentBits) - 1

const quatScale = 1 / math.Sqrt2

// ReadQuaternion reads a unit quaternion. Below net version 7 this is
// three cf32 components with w = 0; from net version 7 on it is a
// smallest-three encoding: a 2-bit index of the omitted (largest
// magnitude) component, then the other three components as biased
// 18-bit fields, with the omitted component reconstructed from the
// unit-length constraint.
func ReadQuaternion(r *BitReader, ctx *rlcore.Context) (rlcore.Quaternion, error) {
	if ctx.NetVersion < 7 {
		x, err := ReadCompressedFloat(r)
		if err != nil {
			return rlcore.Quaternion{}, err
		}
		y, err := ReadCompressedFloat(r)
		if err != nil {
			return rlcore.Quaternion{}, err
		}
		z, err := ReadCompressedFloat(r)
		if err != nil {
			return rlcore.Quaternion{}, err
		}
		return rlcore.Quaternion{X: float64(x), Y: float64(y), Z: float64(z), W: 0}, nil
	}

	largest, err := r.ReadBits(2)
	if err != nil {
		return rlcore.Quaternion{}, err
	}
	a, err := readQuatComponent(r)
	if err != nil {
		return rlcore.Quaternion{}, err
	}
	b, err := readQuatComponent(r)
	if err != nil {
		return rlcore.Quaternion{}, err
	}
	c, err := readQuatComponent(r)
	if err != nil {
		return rlcore.Quaternion{}, err
	}

	extra := math.Sqrt(math.Max(0, 1-a*a-b*b-c*c))

	var q rlcore.Quaternion
	switch largest {
	case 0:
		q = rlcore.Quaternion{X: extra, Y: a, Z: b, W: c}
	case 1:
		q = rlcore.Quaternion{X: a, Y: extra, Z: b, W: c}
	case 2:
		q = rlcore.Quaternion{X: a, Y: b, Z: extra, W: c}
	default:
		q = rlcore.Quaternion{X: a, Y: b, Z: c, W: extra}
	}
	return q, nil
}

func readQuatComponent(r *BitReader) (float64, error) {
	v, err := r.ReadBits(quatComponentBits)
	if err != nil {
		return 0, err
	}
	normalized := (float64(v)/float64(quatComponentMax) - 0.5) * 2
	return normalized * quatScale, nil
}

// This file contains the plain geometric value types. Decoding them from
// the bit stream lives in netstream/geometry.go; these are just the value
// shapes, kept dependency-free so repattr's attribute values can embed
// them without creating an import cycle with netstream.

package rlcore

// Vector3i is a compressed integer 3D vector.
type Vector3i struct {
	X, Y, Z int32
}

// Vector3f is a compressed floating point 3D vector.
type Vector3f struct {
	X, Y, Z float32
}

// Rotation is a compressed 3-axis rotation, each axis independently present.
type Rotation struct {
	Yaw, Pitch, Roll int8
}

// Quaternion is a unit quaternion, either decoded from three cf32 fields
// (pre net-version 7) or a smallest-three encoding (net-version 7+).
type Quaternion struct {
	X, Y, Z, W float64
}

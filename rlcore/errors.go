// This file contains the fatal error kinds the network-stream decoder may
// surface. Every kind is fatal to the current parse: once bit alignment is
// lost there is no recovering mid-stream.

package rlcore

import "fmt"

// ErrorKind classifies why decoding a replay's network stream failed.
type ErrorKind byte

const (
	// ErrEndOfStream means the reader was exhausted before the request it
	// was asked to satisfy.
	ErrEndOfStream ErrorKind = iota

	// ErrStringDecode means invalid UTF-8/UTF-16/Windows-1252 bytes were
	// encountered while decoding a string.
	ErrStringDecode

	// ErrUnknownObjectIndex means an object_id fell outside the Objects
	// table's range.
	ErrUnknownObjectIndex

	// ErrUnknownAttributeType means an object actually updated in the
	// stream has no entry in the Object:AttributeType table.
	ErrUnknownAttributeType

	// ErrUnresolvedParentObject means the parent-object resolver (§4.G)
	// found no parent for an object name.
	ErrUnresolvedParentObject

	// ErrDispatchStreamIDOutOfRange means a stream_id read from the
	// network stream has no entry in the resolved dispatch table.
	ErrDispatchStreamIDOutOfRange

	// ErrUnknownSystemID means a UniqueID attribute's system byte fell
	// outside the known {0,1,2,4,5,6,7,11} set.
	ErrUnknownSystemID

	// ErrInconsistent means NumFrames was fully decoded but bits remain
	// beyond a byte of padding, or the frame gate protocol terminated in
	// an inconsistent state.
	ErrInconsistent
)

var errorKindStrings = [...]string{
	ErrEndOfStream:                "end of stream",
	ErrStringDecode:               "string decode error",
	ErrUnknownObjectIndex:         "unknown object index",
	ErrUnknownAttributeType:       "unknown attribute type",
	ErrUnresolvedParentObject:     "unresolved parent object",
	ErrDispatchStreamIDOutOfRange: "dispatch stream id out of range",
	ErrUnknownSystemID:            "unknown system id",
	ErrInconsistent:               "inconsistent frame state",
}

// String returns a short human-readable description of the error kind.
func (k ErrorKind) String() string {
	if int(k) < len(errorKindStrings) {
		return errorKindStrings[k]
	}
	return "unknown error kind"
}

// DecodeError is returned by the network-stream decoder on any fatal
// failure. It carries enough context (bit offset, frame index) for a
// caller to report exactly where the stream desynchronized.
type DecodeError struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// Detail is a human-readable detail string, e.g. the offending object
	// index or system ID.
	Detail string

	// BitOffset is the absolute bit offset into the network stream at
	// the time of failure.
	BitOffset int64

	// FrameIndex is the 0-based index of the frame being decoded when
	// the failure occurred, or -1 if decoding failed before the first
	// frame.
	FrameIndex int
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s (bit offset %d, frame %d)", e.Kind, e.BitOffset, e.FrameIndex)
	}
	return fmt.Sprintf("%s: %s (bit offset %d, frame %d)", e.Kind, e.Detail, e.BitOffset, e.FrameIndex)
}

// This file contains the public per-frame types a caller of this package
// actually wants to see: plain data, independent of the bit-level decoder
// that produced it.

package rep

import (
	"github.com/rlreplay/rlrep/repattr"
	"github.com/rlreplay/rlrep/rlcore"
)

// NewActor describes an actor that came into existence during a frame.
type NewActor struct {
	// ActorID is the identifier the network stream addresses this actor by
	// in this and later frames until it is deleted; it may be reused after
	// deletion.
	ActorID int32

	// ObjectID indexes into Footer.Objects and names the archetype this
	// actor instantiates.
	ObjectID uint32

	// ObjectName is ObjectID resolved against Footer.Objects, kept here
	// too so callers don't need the footer in hand to read a frame.
	ObjectName string

	// NameID is the actor's replicated name index, present only when the
	// replay's version requires it (see HasNameID).
	NameID    int32
	HasNameID bool

	// Location and Rotation are the actor's spawn transform, present only
	// for object types whose SpawnTrajectory table entry requests them.
	Location rlcore.Vector3i
	Rotation rlcore.Rotation
}

// UpdatedActor is one attribute write applied to an already-live actor
// during a frame.
type UpdatedActor struct {
	ActorID    int32
	ObjectName string
	Tag        repattr.Tag
	Value      repattr.Attribute
}

// Frame is one decoded network-stream frame: a timestamp/delta pair plus
// the new, updated, and deleted actors observed during it.
type Frame struct {
	Time  float32
	Delta float32

	New     []NewActor
	Updated []UpdatedActor
	Deleted []int32
}

// This file contains the Frame State Machine (component F): decoding the
// ACTIVE_ACTORS gate-bit loop that drives new/update/delete actor
// segments within a single frame.

package netstream

import (
	"github.com/rlreplay/rlrep/repattr"
	"github.com/rlreplay/rlrep/rlcore"
)

// ActorState is a live actor's last-known identity: which object it is an
// instance of and its initial spawn trajectory.
type ActorState struct {
	ObjectID      uint32
	ObjectName    string
	NameID        int32
	HasNameID     bool
	SpawnLocation rlcore.Vector3i
	SpawnRotation rlcore.Rotation
}

// UpdatedAttribute is one attribute update applied to a live actor during
// a single frame.
type UpdatedAttribute struct {
	ActorID int32
	Entry   AttrEntry
	Value   repattr.Attribute
}

// Frame is one decoded network-stream frame.
type Frame struct {
	Time      float32
	Delta     float32
	NewActors map[int32]*ActorState
	Updated   []UpdatedAttribute
	Deleted   []int32
}

// FrameDecoder decodes frames against a single replay's dispatch tables
// and maintains the live actor table (ACTIVE_ACTORS) across frame
// boundaries, exactly as the game's own replication system does: an
// actor created in one frame can be updated or deleted in any later
// frame, so the table must persist between Decode calls.
type FrameDecoder struct {
	ctx     *rlcore.Context
	objects []string
	names   []string

	// dispatchByObjectID is the Class-Net-Cache Resolver's output, keyed
	// by the Objects-table index of the class it describes.
	dispatchByObjectID map[uint32]*ClassDispatch

	// objectIndexByName inverts objects for the Parent-Object resolver.
	objectIndexByName map[string]uint32

	// childDispatchCache memoises the parent-object resolution chain
	// keyed by the spawned (child) object_id, per §4.F's required
	// optimisation.
	childDispatchCache map[uint32]*ClassDispatch

	active map[int32]*ActorState
}

// NewFrameDecoder builds a FrameDecoder. dispatch is the output of
// ResolveClassDispatch; objects and names are the replay's Objects and
// Names tables.
func NewFrameDecoder(ctx *rlcore.Context, objects, names []string, dispatch map[uint32]*ClassDispatch) *FrameDecoder {
	objectIndexByName := make(map[string]uint32, len(objects))
	for i, name := range objects {
		objectIndexByName[name] = uint32(i)
	}
	return &FrameDecoder{
		ctx:                ctx,
		objects:            objects,
		names:              names,
		dispatchByObjectID: dispatch,
		objectIndexByName:  objectIndexByName,
		childDispatchCache: make(map[uint32]*ClassDispatch),
		active:             make(map[int32]*ActorState),
	}
}

// resolveDispatch resolves the dispatch table governing a spawned
// object's attribute layout: its own object name's parent object
// (§4.G), which indexes dispatchByObjectID directly. Results are cached
// by the child's object_id.
func (d *FrameDecoder) resolveDispatch(objIndex uint32) (*ClassDispatch, error) {
	if cd, ok := d.childDispatchCache[objIndex]; ok {
		return cd, nil
	}

	name := objectName(d.objects, objIndex)
	parentName, ok := repattr.ResolveParent(name)
	if !ok {
		return nil, &rlcore.DecodeError{Kind: rlcore.ErrUnresolvedParentObject, Detail: name}
	}
	parentObjIndex, ok := d.objectIndexByName[parentName]
	if !ok {
		return nil, &rlcore.DecodeError{Kind: rlcore.ErrUnresolvedParentObject, Detail: parentName}
	}
	cd, ok := d.dispatchByObjectID[parentObjIndex]
	if !ok {
		return nil, &rlcore.DecodeError{Kind: rlcore.ErrUnknownAttributeType, Detail: parentName}
	}

	d.childDispatchCache[objIndex] = cd
	return cd, nil
}

// Decode decodes a single frame from r. frameIndex is used only for error
// reporting.
func (d *FrameDecoder) Decode(r *BitReader, frameIndex int) (*Frame, error) {
	time, err := r.ReadF32()
	if err != nil {
		return nil, wrapFrameErr(err, r, frameIndex)
	}
	delta, err := r.ReadF32()
	if err != nil {
		return nil, wrapFrameErr(err, r, frameIndex)
	}

	f := &Frame{Time: time, Delta: delta, NewActors: make(map[int32]*ActorState)}

	for {
		hasActor, err := r.ReadBool()
		if err != nil {
			return nil, wrapFrameErr(err, r, frameIndex)
		}
		if !hasActor {
			break
		}

		actorID, err := bmc(r, uint(d.ctx.ActorIDSize), uint64(d.ctx.ActorIDMax))
		if err != nil {
			return nil, wrapFrameErr(err, r, frameIndex)
		}
		id := int32(actorID)

		alive, err := r.ReadBool()
		if err != nil {
			return nil, wrapFrameErr(err, r, frameIndex)
		}
		if !alive {
			delete(d.active, id)
			f.Deleted = append(f.Deleted, id)
			continue
		}

		isNew, err := r.ReadBool()
		if err != nil {
			return nil, wrapFrameErr(err, r, frameIndex)
		}

		if isNew {
			state, err := d.decodeNewActor(r, id, frameIndex)
			if err != nil {
				return nil, err
			}
			d.active[id] = state
			f.NewActors[id] = state
			continue
		}

		state, ok := d.active[id]
		if !ok {
			return nil, &rlcore.DecodeError{Kind: rlcore.ErrDispatchStreamIDOutOfRange, Detail: "update for unknown actor", BitOffset: r.BitOffset(), FrameIndex: frameIndex}
		}

		dispatch, err := d.resolveDispatch(state.ObjectID)
		if err != nil {
			return nil, wrapFrameErr(err, r, frameIndex)
		}

		updates, err := d.decodeUpdates(r, id, dispatch, frameIndex)
		if err != nil {
			return nil, err
		}
		f.Updated = append(f.Updated, updates...)
	}

	return f, nil
}

func (d *FrameDecoder) decodeNewActor(r *BitReader, id int32, frameIndex int) (*ActorState, error) {
	state := &ActorState{}

	if d.ctx.ParseActorNameID {
		nameID, err := r.ReadI32()
		if err != nil {
			return nil, wrapFrameErr(err, r, frameIndex)
		}
		state.NameID = nameID
		state.HasNameID = true
	}

	if _, err := r.ReadBool(); err != nil { // unknown bit
		return nil, wrapFrameErr(err, r, frameIndex)
	}

	objIndex, err := r.ReadU32()
	if err != nil {
		return nil, wrapFrameErr(err, r, frameIndex)
	}
	state.ObjectID = objIndex
	state.ObjectName = objectName(d.objects, objIndex)

	traj := repattr.ResolveSpawnTrajectory(state.ObjectName)
	if traj.HasPosition {
		loc, err := ReadVector3i(r, d.ctx)
		if err != nil {
			return nil, wrapFrameErr(err, r, frameIndex)
		}
		state.SpawnLocation = loc
	}
	if traj.HasRotation {
		rot, err := ReadRotation(r)
		if err != nil {
			return nil, wrapFrameErr(err, r, frameIndex)
		}
		state.SpawnRotation = rot
	}

	return state, nil
}

func (d *FrameDecoder) decodeUpdates(r *BitReader, actorID int32, dispatch *ClassDispatch, frameIndex int) ([]UpdatedAttribute, error) {
	var updates []UpdatedAttribute
	for {
		hasProp, err := r.ReadBool()
		if err != nil {
			return nil, wrapFrameErr(err, r, frameIndex)
		}
		if !hasProp {
			break
		}

		streamID, err := bmc(r, uint(dispatch.StreamIDWidth), uint64(dispatch.MaxStreamID))
		if err != nil {
			return nil, wrapFrameErr(err, r, frameIndex)
		}
		entry, ok := dispatch.Lookup(uint32(streamID))
		if !ok {
			return nil, &rlcore.DecodeError{Kind: rlcore.ErrDispatchStreamIDOutOfRange, Detail: dispatch.ClassName, BitOffset: r.BitOffset(), FrameIndex: frameIndex}
		}

		val, err := DecodeAttribute(entry.Tag, r, d.ctx, d.objects)
		if err != nil {
			return nil, wrapFrameErr(err, r, frameIndex)
		}

		updates = append(updates, UpdatedAttribute{ActorID: actorID, Entry: entry, Value: val})
	}
	return updates, nil
}

func wrapFrameErr(err error, r *BitReader, frameIndex int) error {
	if err == ErrEndOfStream {
		return &rlcore.DecodeError{Kind: rlcore.ErrEndOfStream, BitOffset: r.BitOffset(), FrameIndex: frameIndex}
	}
	if de, ok := err.(*rlcore.DecodeError); ok {
		de.BitOffset = r.BitOffset()
		de.FrameIndex = frameIndex
		return de
	}
	return &rlcore.DecodeError{Kind: rlcore.ErrInconsistent, Detail: err.Error(), BitOffset: r.BitOffset(), FrameIndex: frameIndex}
}

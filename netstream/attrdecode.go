// This file contains the attribute decode functions: one per repattr.Tag,
// plus the dispatch table DecodeAttribute uses to pick among them. Every
// decode function takes the replay's Objects name table alongside the
// *rlcore.Context and *BitReader, even though most ignore it; only
// Product attributes need it, to resolve a sub-object's name.

package netstream

import (
	"github.com/rlreplay/rlrep/repattr"
	"github.com/rlreplay/rlrep/rlcore"
)

type attrDecodeFunc func(r *BitReader, ctx *rlcore.Context, objects []string) (repattr.Attribute, error)

var attrDecoders = map[repattr.Tag]attrDecodeFunc{
	repattr.TagBoolean:              decodeBoolean,
	repattr.TagByte:                 decodeByte,
	repattr.TagInt:                  decodeInt,
	repattr.TagInt64:                decodeInt64,
	repattr.TagFloat:                decodeFloat,
	repattr.TagString:               decodeString,
	repattr.TagEnum:                 decodeEnum,
	repattr.TagLoadout:              decodeLoadout,
	repattr.TagLoadoutOnline:        decodeLoadoutOnline,
	repattr.TagLoadoutsOnline:       decodeLoadoutsOnline,
	repattr.TagTeamPaint:            decodeTeamPaint,
	repattr.TagProduct:              decodeProduct,
	repattr.TagUniqueID:             decodeUniqueID,
	repattr.TagReservation:          decodeReservation,
	repattr.TagPartyLeader:          decodePartyLeader,
	repattr.TagRigidBody:            decodeRigidBody,
	repattr.TagLocation:             decodeLocation,
	repattr.TagCameraSettings:       decodeCameraSettings,
	repattr.TagExplosion:            decodeExplosion,
	repattr.TagExtendedExplosion:    decodeExtendedExplosion,
	repattr.TagDemolish:             decodeDemolish,
	repattr.TagDemolishExtended:     decodeDemolishExtended,
	repattr.TagPickup:               decodePickup,
	repattr.TagPickupNew:            decodePickupNew,
	repattr.TagGameMode:             decodeGameMode,
	repattr.TagQWordString:         decodeQWordString,
	repattr.TagQWord:                decodeQWord,
	repattr.TagFlaggedInt:           decodeFlaggedInt,
	repattr.TagFlaggedByte:          decodeFlaggedByte,
	repattr.TagActiveActor:          decodeActiveActor,
	repattr.TagWeldedInfo:           decodeWeldedInfo,
	repattr.TagMusicStinger:         decodeMusicStinger,
	repattr.TagStatEvent:            decodeStatEvent,
	repattr.TagRumble:               decodeRumble,
	repattr.TagClubColors:           decodeClubColors,
	repattr.TagPrivateMatchSettings: decodePrivateMatchSettings,
	repattr.TagTitle:                decodeTitle,
}

// DecodeAttribute decodes a single attribute value of the given tag.
func DecodeAttribute(tag repattr.Tag, r *BitReader, ctx *rlcore.Context, objects []string) (repattr.Attribute, error) {
	decode, ok := attrDecoders[tag]
	if !ok {
		return nil, &rlcore.DecodeError{Kind: rlcore.ErrUnknownAttributeType, Detail: tag.String(), BitOffset: r.BitOffset()}
	}
	return decode(r, ctx, objects)
}

func decodeBoolean(r *BitReader, _ *rlcore.Context, _ []string) (repattr.Attribute, error) {
	v, err := r.ReadBool()
	return &repattr.BooleanAttr{Value: v}, err
}

func decodeByte(r *BitReader, _ *rlcore.Context, _ []string) (repattr.Attribute, error) {
	v, err := r.ReadU8()
	return &repattr.ByteAttr{Value: v}, err
}

func decodeInt(r *BitReader, _ *rlcore.Context, _ []string) (repattr.Attribute, error) {
	v, err := r.ReadI32()
	return &repattr.IntAttr{Value: v}, err
}

func decodeInt64(r *BitReader, _ *rlcore.Context, _ []string) (repattr.Attribute, error) {
	v, err := r.ReadI64()
	return &repattr.Int64Attr{Value: v}, err
}

func decodeFloat(r *BitReader, _ *rlcore.Context, _ []string) (repattr.Attribute, error) {
	v, err := r.ReadF32()
	return &repattr.FloatAttr{Value: v}, err
}

func decodeString(r *BitReader, _ *rlcore.Context, _ []string) (repattr.Attribute, error) {
	v, err := ReadString16(r)
	return &repattr.StringAttr{Value: v}, err
}

func decodeEnum(r *BitReader, _ *rlcore.Context, _ []string) (repattr.Attribute, error) {
	v, err := r.ReadBits(16)
	return &repattr.EnumAttr{Value: uint16(v)}, err
}

func decodeLoadout(r *BitReader, ctx *rlcore.Context, _ []string) (repattr.Attribute, error) {
	a := &repattr.LoadoutAttr{}
	version, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	a.Version = version

	fields := []*uint32{&a.Body, &a.Decoration, &a.Wheels, &a.RocketTrail, &a.Antenna, &a.Topper, &a.Unknown04}
	for _, f := range fields {
		v, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		*f = v
	}
	if version >= 9 {
		v, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		a.EngineAudio = v
	}
	if version >= 16 {
		for _, f := range []*uint32{&a.Trail, &a.GoalExplosion} {
			v, err := r.ReadU32()
			if err != nil {
				return nil, err
			}
			*f = v
		}
	}
	if version >= 17 {
		v, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		a.Banner = v
	}
	if version >= 19 {
		v, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		a.ProductID = v
	}
	if version >= 22 {
		for _, f := range []*uint32{&a.Unknown22A, &a.Unknown22B, &a.Unknown22C} {
			v, err := r.ReadU32()
			if err != nil {
				return nil, err
			}
			*f = v
		}
	}
	return a, nil
}

func decodeSingleProduct(r *BitReader, objects []string) (repattr.ProductAttr, error) {
	var p repattr.ProductAttr
	unk, err := r.ReadBool()
	if err != nil {
		return p, err
	}
	p.Unknown = unk

	objIdx, err := r.ReadBits(32)
	if err != nil {
		return p, err
	}
	p.ObjectID = uint32(objIdx)

	name := objectName(objects, p.ObjectID)
	kind, ok := repattr.ResolveProductKind(name)
	if !ok {
		p.Value = nil
		return p, nil
	}

	val := &repattr.ProductValue{Kind: kind}
	switch kind {
	case "UserColor":
		present, err := r.ReadBool()
		if err != nil {
			return p, err
		}
		if present {
			v, err := r.ReadBits(31)
			if err != nil {
				return p, err
			}
			val.Color = uint32(v)
		}
	case "Painted":
		v, err := bmc(r, 31, 0x7FFFFFFF)
		if err != nil {
			return p, err
		}
		val.Painted = uint32(v)
	case "SpecialEdition":
		v, err := bmc(r, 31, 0x7FFFFFFF)
		if err != nil {
			return p, err
		}
		val.SpecialEdition = uint32(v)
	case "TeamEdition":
		v, err := r.ReadU32()
		if err != nil {
			return p, err
		}
		val.TeamEdition = v
	case "TitleID":
		s, err := ReadString16(r)
		if err != nil {
			return p, err
		}
		val.TitleID = s
	}
	p.Value = val
	return p, nil
}

func decodeProduct(r *BitReader, _ *rlcore.Context, objects []string) (repattr.Attribute, error) {
	p, err := decodeSingleProduct(r, objects)
	return &p, err
}

func decodeLoadoutOnline(r *BitReader, _ *rlcore.Context, objects []string) (repattr.Attribute, error) {
	slots, err := ReadList(r, 0x1F, 5, func(r *BitReader) ([]repattr.ProductAttr, error) {
		return ReadList(r, 0x1F, 5, func(r *BitReader) (repattr.ProductAttr, error) {
			return decodeSingleProduct(r, objects)
		})
	})
	return &repattr.LoadoutOnlineAttr{Products: slots}, err
}

func decodeLoadoutsOnline(r *BitReader, ctx *rlcore.Context, objects []string) (repattr.Attribute, error) {
	a := &repattr.LoadoutsOnlineAttr{}
	blue, err := decodeLoadoutOnline(r, ctx, objects)
	if err != nil {
		return nil, err
	}
	a.Blue = *blue.(*repattr.LoadoutOnlineAttr)

	orange, err := decodeLoadoutOnline(r, ctx, objects)
	if err != nil {
		return nil, err
	}
	a.Orange = *orange.(*repattr.LoadoutOnlineAttr)

	u1, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.Unknown1 = u1
	u2, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.Unknown2 = u2
	return a, nil
}

func decodeTeamPaint(r *BitReader, _ *rlcore.Context, _ []string) (repattr.Attribute, error) {
	a := &repattr.TeamPaintAttr{}
	var err error
	var v byte
	if v, err = r.ReadU8(); err != nil {
		return nil, err
	}
	a.Team = v
	if v, err = r.ReadU8(); err != nil {
		return nil, err
	}
	a.PrimaryColor = v
	if v, err = r.ReadU8(); err != nil {
		return nil, err
	}
	a.AccentColor = v
	u32, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	a.PrimaryFinish = u32
	u32, err = r.ReadU32()
	if err != nil {
		return nil, err
	}
	a.AccentFinish = u32
	return a, nil
}

func decodeUniqueIDValue(r *BitReader, ctx *rlcore.Context) (repattr.UniqueIDAttr, error) {
	sys, err := r.ReadU8()
	if err != nil {
		return repattr.UniqueIDAttr{}, err
	}
	return decodeUniqueIDBody(r, ctx, sys)
}

// decodeUniqueIDBody decodes the remainder of a UniqueId value given its
// already-read system byte. Factored out so PartyLeaderAttr, which reads
// the system byte itself to detect its null value (system byte 0), can
// reuse the same per-system-id field logic without re-reading it.
func decodeUniqueIDBody(r *BitReader, ctx *rlcore.Context, sys byte) (repattr.UniqueIDAttr, error) {
	u := repattr.UniqueIDAttr{SystemID: sys}

	// Valid system bytes are exactly {0,1,2,4,5,6,7,11} (spec §7); 3, 8, 9
	// and 10 were never assigned to a remote-ID shape.
	switch sys {
	case 0: // split-screen
		v, err := r.ReadBits(24)
		if err != nil {
			return u, err
		}
		u.Remote.SplitScreenID = uint32(v)
	case 1: // Steam
		v, err := r.ReadU64()
		if err != nil {
			return u, err
		}
		u.Remote.SteamID = v
	case 2: // PlayStation
		nameBytes, err := r.ReadBytes(16)
		if err != nil {
			return u, err
		}
		u.Remote.PSName = decodeWindows1252(filterNulBytes(nameBytes))
		unkLen := 16
		if ctx.NetVersion < 1 {
			unkLen = 8
		}
		unk, err := r.ReadBytes(unkLen)
		if err != nil {
			return u, err
		}
		u.Remote.PSUnknown = unk
		id, err := r.ReadU64()
		if err != nil {
			return u, err
		}
		u.Remote.PSID = id
	case 4: // Xbox
		v, err := r.ReadU64()
		if err != nil {
			return u, err
		}
		u.Remote.XboxID = v
	case 5: // QQ
		v, err := r.ReadU64()
		if err != nil {
			return u, err
		}
		u.Remote.QQID = v
	case 6: // Switch
		unk, err := r.ReadBytes(24)
		if err != nil {
			return u, err
		}
		u.Remote.SwitchUnknown = unk
		id, err := r.ReadU64()
		if err != nil {
			return u, err
		}
		u.Remote.SwitchID = id
	case 7: // PsyNet
		id, err := r.ReadU64()
		if err != nil {
			return u, err
		}
		u.Remote.PsyNetID = id
		if ctx.NetVersion < 10 {
			unk, err := r.ReadBytes(24)
			if err != nil {
				return u, err
			}
			u.Remote.PsyNetUnknown = unk
		}
	case 11: // Epic
		id, err := ReadString16(r)
		if err != nil {
			return u, err
		}
		u.Remote.EpicID = id
	default:
		return u, &rlcore.DecodeError{Kind: rlcore.ErrUnknownSystemID, BitOffset: r.BitOffset()}
	}

	local, err := r.ReadU8()
	if err != nil {
		return u, err
	}
	u.LocalID = local
	return u, nil
}

func decodeUniqueID(r *BitReader, ctx *rlcore.Context, _ []string) (repattr.Attribute, error) {
	u, err := decodeUniqueIDValue(r, ctx)
	return &u, err
}

func decodeReservation(r *BitReader, ctx *rlcore.Context, objects []string) (repattr.Attribute, error) {
	a := &repattr.ReservationAttr{}
	num, err := bmc(r, 3, 7)
	if err != nil {
		return nil, err
	}
	a.Number = byte(num)

	uid, err := decodeUniqueIDValue(r, ctx)
	if err != nil {
		return nil, err
	}
	a.UniqueID = uid

	if uid.SystemID != 0 {
		name, err := ReadString16(r)
		if err != nil {
			return nil, err
		}
		a.Name = name
	}

	f1, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.Flag1 = f1
	f2, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.Flag2 = f2

	if ctx.EngineVersion >= 868 && ctx.LicenseeVersion >= 12 {
		if _, err := r.ReadBits(6); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func decodePartyLeader(r *BitReader, ctx *rlcore.Context, _ []string) (repattr.Attribute, error) {
	sys, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	if sys == 0 {
		return &repattr.PartyLeaderAttr{}, nil
	}

	u, err := decodeUniqueIDBody(r, ctx, sys)
	if err != nil {
		return nil, err
	}
	return &repattr.PartyLeaderAttr{UniqueID: &u}, nil
}

func decodeRigidBody(r *BitReader, ctx *rlcore.Context, _ []string) (repattr.Attribute, error) {
	a := &repattr.RigidBodyAttr{}
	sleeping, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.Sleeping = sleeping

	loc, err := ReadVector3f(r, ctx)
	if err != nil {
		return nil, err
	}
	a.Location = loc

	rot, err := ReadQuaternion(r, ctx)
	if err != nil {
		return nil, err
	}
	a.Rotation = rot

	if !sleeping {
		lv, err := ReadVector3f(r, ctx)
		if err != nil {
			return nil, err
		}
		a.LinearVelocity = &lv

		av, err := ReadVector3f(r, ctx)
		if err != nil {
			return nil, err
		}
		a.AngularVelocity = &av
	}
	return a, nil
}

func decodeLocation(r *BitReader, ctx *rlcore.Context, _ []string) (repattr.Attribute, error) {
	v, err := ReadVector3i(r, ctx)
	return &repattr.LocationAttr{Value: v}, err
}

func decodeCameraSettings(r *BitReader, ctx *rlcore.Context, _ []string) (repattr.Attribute, error) {
	a := &repattr.CameraSettingsAttr{}
	fields := []*float32{&a.FOV, &a.Height, &a.Angle, &a.Distance, &a.Stiffness, &a.SwivelSpeed}
	for _, f := range fields {
		v, err := r.ReadF32()
		if err != nil {
			return nil, err
		}
		*f = v
	}
	if ctx.EngineVersion >= 868 && ctx.LicenseeVersion >= 20 {
		v, err := r.ReadF32()
		if err != nil {
			return nil, err
		}
		a.Transition = &v
	}
	return a, nil
}

func decodeExplosionValue(r *BitReader, ctx *rlcore.Context) (repattr.ExplosionAttr, error) {
	var a repattr.ExplosionAttr
	noGoal, err := r.ReadBool()
	if err != nil {
		return a, err
	}
	a.NoGoal = noGoal
	if !noGoal {
		id, err := r.ReadI32()
		if err != nil {
			return a, err
		}
		a.ActorID = id
	}
	loc, err := ReadVector3i(r, ctx)
	if err != nil {
		return a, err
	}
	a.Location = loc
	return a, nil
}

func decodeExplosion(r *BitReader, ctx *rlcore.Context, _ []string) (repattr.Attribute, error) {
	v, err := decodeExplosionValue(r, ctx)
	return &v, err
}

func decodeExtendedExplosion(r *BitReader, ctx *rlcore.Context, _ []string) (repattr.Attribute, error) {
	a := &repattr.ExtendedExplosionAttr{}
	base, err := decodeExplosionValue(r, ctx)
	if err != nil {
		return nil, err
	}
	a.Explosion = base
	u1, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.Unknown1 = u1
	id, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	a.SecondaryID = id
	return a, nil
}

func decodeDemolishValue(r *BitReader, ctx *rlcore.Context) (repattr.DemolishAttr, error) {
	var a repattr.DemolishAttr
	af, err := r.ReadBool()
	if err != nil {
		return a, err
	}
	a.AttackerFlag = af
	aid, err := r.ReadI32()
	if err != nil {
		return a, err
	}
	a.AttackerActorID = aid

	vf, err := r.ReadBool()
	if err != nil {
		return a, err
	}
	a.VictimFlag = vf
	vid, err := r.ReadI32()
	if err != nil {
		return a, err
	}
	a.VictimActorID = vid

	av, err := ReadVector3i(r, ctx)
	if err != nil {
		return a, err
	}
	a.AttackerVelocity = av

	vv, err := ReadVector3i(r, ctx)
	if err != nil {
		return a, err
	}
	a.VictimVelocity = vv
	return a, nil
}

func decodeDemolish(r *BitReader, ctx *rlcore.Context, _ []string) (repattr.Attribute, error) {
	v, err := decodeDemolishValue(r, ctx)
	return &v, err
}

func decodeDemolishExtended(r *BitReader, ctx *rlcore.Context, _ []string) (repattr.Attribute, error) {
	a := &repattr.DemolishExtendedAttr{}
	base, err := decodeDemolishValue(r, ctx)
	if err != nil {
		return nil, err
	}
	a.Demolish = base

	uf, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.UnknownFlag = uf
	cd, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.CustomDemo = cd
	id, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	a.DemolishID = id
	return a, nil
}

func decodePickup(r *BitReader, _ *rlcore.Context, _ []string) (repattr.Attribute, error) {
	a := &repattr.PickupAttr{}
	flag, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.InstigatorFlag = flag
	if flag {
		id, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		a.InstigatorID = id
	}
	up, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.PickedUp = up
	return a, nil
}

func decodePickupNew(r *BitReader, _ *rlcore.Context, _ []string) (repattr.Attribute, error) {
	a := &repattr.PickupNewAttr{}
	flag, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.InstigatorFlag = flag
	if flag {
		id, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		a.InstigatorID = id
	}
	up, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.PickedUp = up
	unk, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.Unknown = unk
	return a, nil
}

// decodeGameMode keeps its version conditional even though both branches
// currently read the same width: a prior layout may have diverged them,
// and collapsing the conditional would erase that history.
func decodeGameMode(r *BitReader, ctx *rlcore.Context, _ []string) (repattr.Attribute, error) {
	var v uint64
	var err error
	if ctx.NetVersion >= 1 {
		v, err = r.ReadBits(8)
	} else {
		v, err = r.ReadBits(8)
	}
	return &repattr.GameModeAttr{Value: byte(v)}, err
}

func decodeQWordString(r *BitReader, ctx *rlcore.Context, _ []string) (repattr.Attribute, error) {
	a := &repattr.QWordStringAttr{}
	if ctx.IsRL223 {
		s, err := ReadString16(r)
		if err != nil {
			return nil, err
		}
		a.AsString = s
		a.IsString = true
		return a, nil
	}
	v, err := r.ReadU64()
	a.AsQWord = v
	return a, err
}

func decodeQWord(r *BitReader, _ *rlcore.Context, _ []string) (repattr.Attribute, error) {
	v, err := r.ReadU64()
	return &repattr.QWordAttr{Value: v}, err
}

func decodeFlaggedInt(r *BitReader, _ *rlcore.Context, _ []string) (repattr.Attribute, error) {
	a := &repattr.FlaggedIntAttr{}
	flag, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.Flag = flag
	v, err := r.ReadI32()
	a.Value = v
	return a, err
}

func decodeFlaggedByte(r *BitReader, _ *rlcore.Context, _ []string) (repattr.Attribute, error) {
	a := &repattr.FlaggedByteAttr{}
	flag, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.Flag = flag
	v, err := r.ReadU8()
	a.Value = v
	return a, err
}

func decodeActiveActor(r *BitReader, _ *rlcore.Context, _ []string) (repattr.Attribute, error) {
	a := &repattr.ActiveActorAttr{}
	flag, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.Flag = flag
	if flag {
		id, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		a.ActorID = id
	}
	return a, nil
}

func decodeWeldedInfo(r *BitReader, ctx *rlcore.Context, _ []string) (repattr.Attribute, error) {
	a := &repattr.WeldedInfoAttr{}
	active, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.Active = active
	id, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	a.ActorID = id
	off, err := ReadVector3f(r, ctx)
	if err != nil {
		return nil, err
	}
	a.Offset = off
	mass, err := r.ReadF32()
	if err != nil {
		return nil, err
	}
	a.Mass = mass
	rot, err := ReadRotation(r)
	if err != nil {
		return nil, err
	}
	a.Rotation = rot
	return a, nil
}

func decodeMusicStinger(r *BitReader, _ *rlcore.Context, _ []string) (repattr.Attribute, error) {
	a := &repattr.MusicStingerAttr{}
	flag, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.Flag = flag
	cue, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	a.CueID = cue
	track, err := r.ReadU8()
	a.TrackID = track
	return a, err
}

func decodeStatEvent(r *BitReader, _ *rlcore.Context, _ []string) (repattr.Attribute, error) {
	a := &repattr.StatEventAttr{}
	unk, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.Unknown = unk
	id, err := r.ReadI32()
	a.ObjectID = id
	return a, err
}

func decodeRumble(r *BitReader, _ *rlcore.Context, _ []string) (repattr.Attribute, error) {
	a := &repattr.RumbleAttr{}
	u1, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.Unknown1 = u1
	id, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	a.ItemID = id
	u2, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	a.Unknown2 = u2
	u3, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	a.Unknown3 = u3
	u4, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.Unknown4 = u4
	u5, err := r.ReadBool()
	a.Unknown5 = u5
	return a, err
}

func decodeClubColors(r *BitReader, _ *rlcore.Context, _ []string) (repattr.Attribute, error) {
	a := &repattr.ClubColorsAttr{}
	cb, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.CustomBlue = cb
	bc, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	a.BlueColor = bc
	co, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.CustomOrange = co
	oc, err := r.ReadU8()
	a.OrangeColor = oc
	return a, err
}

func decodePrivateMatchSettings(r *BitReader, _ *rlcore.Context, _ []string) (repattr.Attribute, error) {
	a := &repattr.PrivateMatchSettingsAttr{}
	mutator, err := ReadString16(r)
	if err != nil {
		return nil, err
	}
	a.MutatorIndex = mutator
	mapName, err := ReadString16(r)
	if err != nil {
		return nil, err
	}
	a.MapName = mapName
	max, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	a.MaxPlayers = max
	pw, err := r.ReadBool()
	a.PasswordSet = pw
	return a, err
}

func decodeTitle(r *BitReader, _ *rlcore.Context, _ []string) (repattr.Attribute, error) {
	a := &repattr.TitleAttr{}
	u1, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.Unknown1 = u1
	u2, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.Unknown2 = u2
	idx, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	a.TitleIndex = idx
	u3, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.Unknown3 = u3
	u4, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	a.Unknown4 = u4
	u5, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	a.Unknown5 = u5
	u6, err := r.ReadBool()
	a.Unknown6 = u6
	return a, err
}

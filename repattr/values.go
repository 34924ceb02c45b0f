// This file contains the concrete attribute value types, one per Tag.
// Every type is a plain data holder; all decoding logic lives in
// netstream/attrdecode.go, which builds these from a *BitReader.

package repattr

import "github.com/rlreplay/rlrep/rlcore"

// BooleanAttr is a single-bit flag.
type BooleanAttr struct{ Value bool }

func (a *BooleanAttr) AttrTag() Tag { return TagBoolean }

// ByteAttr is a raw byte value.
type ByteAttr struct{ Value byte }

func (a *ByteAttr) AttrTag() Tag { return TagByte }

// IntAttr is a 32-bit signed integer value.
type IntAttr struct{ Value int32 }

func (a *IntAttr) AttrTag() Tag { return TagInt }

// Int64Attr is a 64-bit signed integer value.
type Int64Attr struct{ Value int64 }

func (a *Int64Attr) AttrTag() Tag { return TagInt64 }

// FloatAttr is a 32-bit floating point value.
type FloatAttr struct{ Value float32 }

func (a *FloatAttr) AttrTag() Tag { return TagFloat }

// StringAttr is a String16-decoded text value.
type StringAttr struct{ Value string }

func (a *StringAttr) AttrTag() Tag { return TagString }

// EnumAttr is a 16-bit enumerated value (engine stores these as a raw
// ordinal; this package does not attempt to resolve the owning enum).
type EnumAttr struct{ Value uint16 }

func (a *EnumAttr) AttrTag() Tag { return TagEnum }

// LoadoutAttr is a player's cosmetic loadout (§4.D LoadoutAttr).
type LoadoutAttr struct {
	Version        byte
	Body           uint32
	Decoration     uint32
	Wheels         uint32
	RocketTrail    uint32
	Antenna        uint32
	Topper         uint32
	Unknown04      uint32
	EngineAudio    uint32 // version >= 9
	Trail          uint32 // version >= 16
	GoalExplosion  uint32 // version >= 16
	Banner         uint32 // version >= 17
	ProductID      uint32 // version >= 19
	Unknown22A     uint32 // version >= 22
	Unknown22B     uint32 // version >= 22
	Unknown22C     uint32 // version >= 22
}

func (a *LoadoutAttr) AttrTag() Tag { return TagLoadout }

// ProductValue is the resolved value of a Product attribute (the shape
// depends on which of the closed set of product-attribute object names the
// Product's object_id resolves to).
type ProductValue struct {
	// Kind names which of the known product-attribute shapes this value
	// holds ("UserColor", "Painted", "SpecialEdition", "TeamEdition" or
	// "TitleID"). An unrecognized object gets no ProductValue at all.
	Kind string

	Color          uint32
	Painted        uint32
	SpecialEdition uint32
	TeamEdition    uint32
	TitleID        string
}

// ProductAttr is a single cosmetic "product" slot (paint, decal, ...).
type ProductAttr struct {
	Unknown  bool
	ObjectID uint32
	Value    *ProductValue // nil when the object resolves to Absent
}

func (a *ProductAttr) AttrTag() Tag { return TagProduct }

// LoadoutOnlineAttr is a list of product slots for one team side, each
// slot itself a list of products.
type LoadoutOnlineAttr struct {
	Products [][]ProductAttr
}

func (a *LoadoutOnlineAttr) AttrTag() Tag { return TagLoadoutOnline }

// LoadoutsOnlineAttr pairs the blue and orange team LoadoutOnline values.
type LoadoutsOnlineAttr struct {
	Blue, Orange LoadoutOnlineAttr
	Unknown1     bool
	Unknown2     bool
}

func (a *LoadoutsOnlineAttr) AttrTag() Tag { return TagLoadoutsOnline }

// TeamPaintAttr is a team's primary/accent color selection.
type TeamPaintAttr struct {
	Team              byte
	PrimaryColor      byte
	AccentColor       byte
	PrimaryFinish     uint32
	AccentFinish      uint32
}

func (a *TeamPaintAttr) AttrTag() Tag { return TagTeamPaint }

// RemoteID holds the platform-specific part of a UniqueIdAttr.
type RemoteID struct {
	SplitScreenID uint32
	SteamID       uint64
	PSName        string
	PSUnknown     []byte
	PSID          uint64
	XboxID        uint64
	QQID          uint64
	SwitchUnknown []byte
	SwitchID      uint64
	PsyNetID      uint64
	PsyNetUnknown []byte
	EpicID        string
}

// UniqueIDAttr is a player's platform-specific unique identifier.
type UniqueIDAttr struct {
	SystemID byte
	Remote   RemoteID
	LocalID  byte
}

func (a *UniqueIDAttr) AttrTag() Tag { return TagUniqueID }

// ReservationAttr is a player-slot reservation record.
type ReservationAttr struct {
	Number   byte
	UniqueID UniqueIDAttr
	Name     string
	Flag1    bool
	Flag2    bool
}

func (a *ReservationAttr) AttrTag() Tag { return TagReservation }

// PartyLeaderAttr is a reference to the party leader's unique ID, or a null
// value when the pre-supplied system ID is 0.
type PartyLeaderAttr struct {
	UniqueID *UniqueIDAttr // nil when the value is null
}

func (a *PartyLeaderAttr) AttrTag() Tag { return TagPartyLeader }

// RigidBodyAttr is a physics actor's transform and, unless sleeping, its
// velocities.
type RigidBodyAttr struct {
	Sleeping        bool
	Location        rlcore.Vector3f
	Rotation        rlcore.Quaternion
	LinearVelocity  *rlcore.Vector3f
	AngularVelocity *rlcore.Vector3f
}

func (a *RigidBodyAttr) AttrTag() Tag { return TagRigidBody }

// LocationAttr is a bare compressed-integer position.
type LocationAttr struct{ Value rlcore.Vector3i }

func (a *LocationAttr) AttrTag() Tag { return TagLocation }

// CameraSettingsAttr is a player's camera configuration.
type CameraSettingsAttr struct {
	FOV, Height, Angle, Distance, Stiffness, SwivelSpeed float32
	Transition                                           *float32 // only present for newer engine/licensee pairs
}

func (a *CameraSettingsAttr) AttrTag() Tag { return TagCameraSettings }

// ExplosionAttr records a ball/car explosion (goal/demolition VFX trigger).
type ExplosionAttr struct {
	NoGoal   bool
	ActorID  int32
	Location rlcore.Vector3i
}

func (a *ExplosionAttr) AttrTag() Tag { return TagExplosion }

// ExtendedExplosionAttr is an ExplosionAttr plus applied-damage fields.
type ExtendedExplosionAttr struct {
	Explosion    ExplosionAttr
	Unknown1     bool
	SecondaryID  int32
}

func (a *ExtendedExplosionAttr) AttrTag() Tag { return TagExtendedExplosion }

// DemolishAttr records a car demolition event.
type DemolishAttr struct {
	AttackerFlag    bool
	AttackerActorID int32
	VictimFlag      bool
	VictimActorID   int32
	AttackerVelocity rlcore.Vector3i
	VictimVelocity   rlcore.Vector3i
}

func (a *DemolishAttr) AttrTag() Tag { return TagDemolish }

// DemolishExtendedAttr is the extended variant carrying destroyed-by info.
type DemolishExtendedAttr struct {
	Demolish      DemolishAttr
	UnknownFlag   bool
	CustomDemo    bool
	DemolishID    int32
}

func (a *DemolishExtendedAttr) AttrTag() Tag { return TagDemolishExtended }

// PickupAttr is a boost-pad pickup event.
type PickupAttr struct {
	InstigatorFlag bool
	InstigatorID   int32
	PickedUp       bool
}

func (a *PickupAttr) AttrTag() Tag { return TagPickup }

// PickupNewAttr is the newer-layout boost-pad pickup event.
type PickupNewAttr struct {
	InstigatorFlag bool
	InstigatorID   int32
	PickedUp       bool
	Unknown        bool
}

func (a *PickupNewAttr) AttrTag() Tag { return TagPickupNew }

// GameModeAttr is the active game mode, always 8 bits wide (both branches
// of the version conditional currently read the same width; kept as a
// conditional in case a future build diverges them).
type GameModeAttr struct{ Value byte }

func (a *GameModeAttr) AttrTag() Tag { return TagGameMode }

// QWordStringAttr is a 64-bit value that is either a raw QWord or a
// String16, depending on replay build.
type QWordStringAttr struct {
	AsString string
	AsQWord  uint64
	IsString bool
}

func (a *QWordStringAttr) AttrTag() Tag { return TagQWordString }

// QWordAttr is a raw 64-bit value.
type QWordAttr struct{ Value uint64 }

func (a *QWordAttr) AttrTag() Tag { return TagQWord }

// FlaggedIntAttr is an int32 behind a presence flag.
type FlaggedIntAttr struct {
	Flag  bool
	Value int32
}

func (a *FlaggedIntAttr) AttrTag() Tag { return TagFlaggedInt }

// FlaggedByteAttr is a byte behind a presence flag.
type FlaggedByteAttr struct {
	Flag  bool
	Value byte
}

func (a *FlaggedByteAttr) AttrTag() Tag { return TagFlaggedByte }

// ActiveActorAttr references another live actor by ID.
type ActiveActorAttr struct {
	Flag    bool
	ActorID int32
}

func (a *ActiveActorAttr) AttrTag() Tag { return TagActiveActor }

// WeldedInfoAttr describes a physical weld to another actor.
type WeldedInfoAttr struct {
	Active   bool
	ActorID  int32
	Offset   rlcore.Vector3f
	Mass     float32
	Rotation rlcore.Rotation
}

func (a *WeldedInfoAttr) AttrTag() Tag { return TagWeldedInfo }

// MusicStingerAttr triggers a music stinger cue.
type MusicStingerAttr struct {
	Flag     bool
	CueID    uint32
	TrackID  byte
}

func (a *MusicStingerAttr) AttrTag() Tag { return TagMusicStinger }

// StatEventAttr records a scoreboard stat ping (e.g. "Savior", "Goal").
type StatEventAttr struct {
	Unknown bool
	ObjectID int32
}

func (a *StatEventAttr) AttrTag() Tag { return TagStatEvent }

// RumbleAttr is an active power-up's (Rumble mode) identity and target.
type RumbleAttr struct {
	Unknown1   bool
	ItemID     int32
	Unknown2   int32
	Unknown3   int32
	Unknown4   bool
	Unknown5   bool
}

func (a *RumbleAttr) AttrTag() Tag { return TagRumble }

// ClubColorsAttr is a club's team color configuration.
type ClubColorsAttr struct {
	CustomBlue   bool
	BlueColor    byte
	CustomOrange bool
	OrangeColor  byte
}

func (a *ClubColorsAttr) AttrTag() Tag { return TagClubColors }

// PrivateMatchSettingsAttr is a private/custom match's lobby configuration.
type PrivateMatchSettingsAttr struct {
	MutatorIndex string
	MapName      string
	MaxPlayers   uint32
	PasswordSet  bool
}

func (a *PrivateMatchSettingsAttr) AttrTag() Tag { return TagPrivateMatchSettings }

// TitleAttr is a cosmetic player title reference.
type TitleAttr struct {
	Unknown1, Unknown2 bool
	TitleIndex         uint32
	Unknown3, Unknown4 bool
	Unknown5           uint32
	Unknown6           bool
}

func (a *TitleAttr) AttrTag() Tag { return TagTitle }

// AbsentAttr is the TagAbsent "no value" shape. The netstream decoders do
// not produce it.
type AbsentAttr struct{}

func (a *AbsentAttr) AttrTag() Tag { return TagAbsent }

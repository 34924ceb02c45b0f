// This file contains the closed set of attribute tags. Adding a new shape
// means adding a new Tag here, a new value type in values.go, and a new
// decode function in netstream/attrdecode.go.

package repattr

// Tag identifies the concrete shape of an attribute value. The zero value
// is TagBoolean. TagAbsent names the "no value" shape (AbsentAttr); no
// decoder in netstream produces it, and a Product whose sub-object doesn't
// resolve to a known kind is a ProductAttr with a nil Value instead.
type Tag byte

const (
	TagBoolean Tag = iota
	TagByte
	TagInt
	TagInt64
	TagFloat
	TagString
	TagEnum
	TagLoadout
	TagLoadoutOnline
	TagLoadoutsOnline
	TagTeamPaint
	TagProduct
	TagUniqueID
	TagReservation
	TagPartyLeader
	TagRigidBody
	TagLocation
	TagCameraSettings
	TagExplosion
	TagExtendedExplosion
	TagDemolish
	TagDemolishExtended
	TagPickup
	TagPickupNew
	TagGameMode
	TagQWordString
	TagQWord
	TagFlaggedInt
	TagFlaggedByte
	TagActiveActor
	TagWeldedInfo
	TagMusicStinger
	TagStatEvent
	TagRumble
	TagClubColors
	TagPrivateMatchSettings
	TagTitle
	TagAbsent

	tagCount
)

var tagNames = [tagCount]string{
	TagBoolean:              "Boolean",
	TagByte:                 "Byte",
	TagInt:                  "Int",
	TagInt64:                "Int64",
	TagFloat:                "Float",
	TagString:               "String",
	TagEnum:                 "Enum",
	TagLoadout:              "Loadout",
	TagLoadoutOnline:        "LoadoutOnline",
	TagLoadoutsOnline:       "LoadoutsOnline",
	TagTeamPaint:            "TeamPaint",
	TagProduct:              "Product",
	TagUniqueID:             "UniqueId",
	TagReservation:          "Reservation",
	TagPartyLeader:          "PartyLeader",
	TagRigidBody:            "RigidBody",
	TagLocation:             "Location",
	TagCameraSettings:       "CameraSettings",
	TagExplosion:            "Explosion",
	TagExtendedExplosion:    "ExtendedExplosion",
	TagDemolish:             "Demolish",
	TagDemolishExtended:     "DemolishExtended",
	TagPickup:               "Pickup",
	TagPickupNew:            "PickupNew",
	TagGameMode:             "GameMode",
	TagQWordString:          "QWordString",
	TagQWord:                "QWord",
	TagFlaggedInt:           "FlaggedInt",
	TagFlaggedByte:          "FlaggedByte",
	TagActiveActor:          "ActiveActor",
	TagWeldedInfo:           "WeldedInfo",
	TagMusicStinger:         "MusicStinger",
	TagStatEvent:            "StatEvent",
	TagRumble:               "Rumble",
	TagClubColors:           "ClubColors",
	TagPrivateMatchSettings: "PrivateMatchSettings",
	TagTitle:                "Title",
	TagAbsent:               "Absent",
}

// String returns the tag's name.
func (t Tag) String() string {
	if t < tagCount {
		return tagNames[t]
	}
	return "Unknown"
}

// Attribute is implemented by every decoded attribute value.
type Attribute interface {
	// AttrTag returns the tag identifying this value's concrete shape.
	AttrTag() Tag
}

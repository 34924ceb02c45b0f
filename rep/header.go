// This file contains the types describing the replay header: the version
// triple that gates the network-stream decoder's conditional bit layouts,
// plus the property bag everything else in the header decodes into.

package rep

import "time"

// PropertyType identifies the concrete shape of a decoded header/footer
// property value.
type PropertyType byte

const (
	PropertyInt PropertyType = iota
	PropertyFloat
	PropertyStr
	PropertyName
	PropertyBool
	PropertyByte
	PropertyQWord
	PropertyArray
)

// Property is one decoded PropertySet entry. Only the field matching Type
// is meaningful.
type Property struct {
	Type PropertyType

	IntValue   int32   `json:",omitempty"`
	FloatValue float32 `json:",omitempty"`
	StrValue   string  `json:",omitempty"`
	BoolValue  bool    `json:",omitempty"`
	QWordValue uint64  `json:",omitempty"`

	// ByteKey/ByteValue hold ByteProperty's two strings: most ByteProperty
	// values are a (key, value) pair, e.g. OnlinePlatform -> OnlinePlatform_Steam.
	ByteKey   string `json:",omitempty"`
	ByteValue string `json:",omitempty"`

	// ArrayValue holds ArrayProperty's element list, each element itself a
	// PropertySet (e.g. the header's PlayerStats array).
	ArrayValue []PropertySet `json:",omitempty"`
}

// PropertySet is a decoded property dictionary, keyed by property name,
// filled by a None-terminated walk of the source format. Go maps don't
// preserve insertion order, so the order of the properties on the wire is
// not kept.
type PropertySet map[string]Property

// Header models the replay header: the version triple and match metadata
// needed to derive a rlcore.Context, plus every other header property the
// replay carries.
type Header struct {
	// EngineVersion, LicenseeVersion and NetVersion are the version triple
	// that gates the network stream's conditional bit layouts.
	EngineVersion   uint32
	LicenseeVersion uint32
	NetVersion      uint32
	HasNetVersion   bool

	// VersionID is the free-text version identifier string read alongside
	// the version triple.
	VersionID string

	// BuildVersion is the "221120.42953.406184"-shaped string used to
	// derive IsRL223; HasBuildVersion tells if the property was present.
	BuildVersion    string
	HasBuildVersion bool

	// MatchType is "Lan", "Online", "Offline" or "Tournament".
	MatchType string

	// MaxChannels bounds actor-id bit width; HasMaxChannels tells if the
	// property was present (older replays default to 1023).
	MaxChannels    uint32
	HasMaxChannels bool

	// TeamSize, PlayerName, MapName, NumFrames mirror the most commonly
	// consulted header properties. Date is not filled by the replayfile
	// decoder; the raw "Date" property, if any, stays in Properties.
	TeamSize   int32
	PlayerName string
	MapName    string
	Date       time.Time
	NumFrames  int32

	// Properties holds every decoded header property, including ones
	// already surfaced above as named fields.
	Properties PropertySet

	// Debug holds the raw section bytes, retained only when decoding with
	// Config.Debug set.
	Debug *HeaderDebug `json:"-"`
}

// HeaderDebug holds debug info for the header section.
type HeaderDebug struct {
	// Data is the raw, uncompressed data of the header block.
	Data []byte

	// CRC is the header block's stored CRC32 checksum. It is stored but
	// never verified; verification is left to the caller.
	CRC uint32
}

// This file contains the Context record and the version-flag computation
// that derives it from the already-decoded header properties.

package rlcore

import (
	"math/bits"
	"strconv"
	"strings"
)

// minRL223BuildVersion is the build version string at and above which a
// replay is considered to originate from Rocket League 2.23 or later.
const minRL223BuildVersion = "221120.42953.406184"

// Context is the immutable record every decoder in netstream/repattr reads
// from. It is created once, right after the header and footer have been
// decoded, and never mutated afterward.
type Context struct {
	// EngineVersion, LicenseeVersion and NetVersion are the three version
	// axes that gate almost every conditional bit layout in the network
	// stream.
	EngineVersion, LicenseeVersion, NetVersion uint32

	// IsRL223 tells if the replay's BuildVersion header property compares
	// at or above minRL223BuildVersion.
	IsRL223 bool

	// IsLAN tells if the header's MatchType property is "Lan".
	IsLAN bool

	// ParseActorNameID tells if new-actor segments carry an extra name_id
	// field ahead of the object_id.
	ParseActorNameID bool

	// ActorIDMax is the upper bound passed to bmc() when decoding actor IDs.
	ActorIDMax uint32

	// ActorIDSize is the bit-width passed to bmc() when decoding actor IDs.
	ActorIDSize uint32
}

// NewContext derives a Context from already-decoded header properties.
// hasBuildVersion / hasMaxChannels tell whether the corresponding header
// property was present at all; when absent the documented defaults apply.
func NewContext(engineVersion, licenseeVersion, netVersion uint32, buildVersion string, hasBuildVersion bool, matchType string, maxChannels uint32, hasMaxChannels bool) *Context {
	ctx := &Context{
		EngineVersion:   engineVersion,
		LicenseeVersion: licenseeVersion,
		NetVersion:      netVersion,
		IsLAN:           matchType == "Lan",
	}

	ctx.IsRL223 = hasBuildVersion && compareBuildVersions(buildVersion, minRL223BuildVersion) >= 0

	ctx.ParseActorNameID = (engineVersion >= 868 && licenseeVersion >= 20) ||
		(engineVersion >= 868 && licenseeVersion >= 14 && !ctx.IsLAN)

	if hasMaxChannels {
		ctx.ActorIDMax = maxChannels
	} else {
		ctx.ActorIDMax = 1023
	}

	if bitLen := bits.Len32(ctx.ActorIDMax); bitLen > 0 {
		ctx.ActorIDSize = uint32(bitLen - 1)
	} else {
		ctx.ActorIDSize = 0
	}

	return ctx
}

// compareBuildVersions lexically compares two dot-separated numeric-triple
// build version strings, component by component, each component compared
// as an integer. It returns -1, 0 or 1 the way strings.Compare does.
func compareBuildVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	for i := 0; i < len(as) || i < len(bs); i++ {
		var av, bv int64
		if i < len(as) {
			av, _ = strconv.ParseInt(as[i], 10, 64)
		}
		if i < len(bs) {
			bv, _ = strconv.ParseInt(bs[i], 10, 64)
		}
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	}

	return 0
}

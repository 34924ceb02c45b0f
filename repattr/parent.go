// This file contains the Object:Parent resolver (§4.G): mapping a fully
// qualified object name to the attribute class whose Object:AttributeType
// entries it should inherit when none are directly recorded for it.

package repattr

import "strings"

// parentExact holds exact object-name-to-parent-name overrides, checked
// before the substring fallback rules.
var parentExact = map[string]string{
	"Archetypes.Ball.Ball_Default": "TAGame.Ball_TA",
	"Archetypes.Ball.Ball_Basketball": "TAGame.Ball_TA",
	"Archetypes.Car.Car_Default":    "TAGame.Car_TA",
}

// parentSame is the sentinel parent value meaning "the object is its own
// parent" (§4.G: several substring rules resolve to "same").
const parentSame = ""

// parentSubstringRules is evaluated in order; the first rule whose
// substring appears in the object name wins. This is the literal table
// from §4.G: a "same" parent means the object resolves to itself, not to
// a different class name, so those entries carry parentSame and
// ResolveParent substitutes objectName for them.
var parentSubstringRules = []struct {
	substr string
	parent string
}{
	{"TheWorld:PersistentLevel.CrowdActor_TA", parentSame},
	{"TheWorld:PersistentLevel.VehiclePickup_Boost_TA", parentSame},
	{"TheWorld:PersistentLevel.CrowdManager_TA", parentSame},
	{"TheWorld:PersistentLevel.BreakOutActor_Platform_TA", parentSame},
	{"TheWorld:PersistentLevel.InMapScoreboard_TA", parentSame},
	{"TheWorld:PersistentLevel.HauntedBallTrapTrigger_TA", parentSame},
	{":GameReplicationInfoArchetype", "TAGame.GRI_TA"},
}

// ResolveParent finds the attribute-class name whose Object:AttributeType
// entries an object should inherit. It first checks parentExact, then
// scans parentSubstringRules in order for the first substring match. The
// bool result is false when no rule matches.
func ResolveParent(objectName string) (string, bool) {
	if p, ok := parentExact[objectName]; ok {
		return p, true
	}
	for _, rule := range parentSubstringRules {
		if strings.Contains(objectName, rule.substr) {
			if rule.parent == parentSame {
				return objectName, true
			}
			return rule.parent, true
		}
	}
	return "", false
}

// This file contains the static tables the network-stream decoder uses to
// resolve an object's name to the attribute tag (and, for Product
// attributes, the sub-kind) it must decode as.

package repattr

// objectAttrTag maps a resolved object name (e.g.
// "TAGame.Default__PRI_TA") to the Tag it must decode its attribute value
// as. This is populated from the Object:AttributeType table described in
// §4.D; for a name not present here the class-net-cache resolver
// (netstream/classcache.go) retries with the name's ResolveParent result,
// and leaves the stream_id unmapped if that misses too.
var objectAttrTag = map[string]Tag{
	"Engine.PlayerReplicationInfo:Ping":                         TagByte,
	"Engine.PlayerReplicationInfo:PlayerName":                   TagString,
	"Engine.PlayerReplicationInfo:Team":                         TagActiveActor,
	"Engine.PlayerReplicationInfo:UniqueId":                     TagUniqueID,
	"Engine.PlayerReplicationInfo:bReadyToPlay":                 TagBoolean,
	"Engine.PlayerReplicationInfo:RemoteUserData":                TagString,
	"Engine.Pawn:PlayerReplicationInfo":                         TagActiveActor,
	"Engine.GameReplicationInfo:GameClass":                      TagFlaggedInt,
	"ProjectX.GRI_X:ReplicatedGameMutatorIndex":                 TagInt,
	"TAGame.GameEvent_TA:ReplicatedStateIndex":                  TagByte,
	"TAGame.GameEvent_Soccar_TA:SecondsRemaining":                TagInt,
	"TAGame.GameEvent_Soccar_TA:RoundNum":                        TagInt,
	"TAGame.GameEvent_Soccar_TA:bOverTime":                       TagBoolean,
	"TAGame.GameEvent_Soccar_TA:bBallHasBeenHit":                 TagBoolean,
	"TAGame.GameEvent_TA:ReplicatedGameStateTimeRemaining":       TagInt,
	"TAGame.GameEvent_Team_TA:MaxTeamSize":                       TagByte,
	"TAGame.PRI_TA:MatchScore":                                   TagInt,
	"TAGame.PRI_TA:MatchGoals":                                   TagInt,
	"TAGame.PRI_TA:MatchSaves":                                   TagInt,
	"TAGame.PRI_TA:MatchShots":                                   TagInt,
	"TAGame.PRI_TA:MatchAssists":                                 TagInt,
	"TAGame.PRI_TA:bMatchMVP":                                    TagBoolean,
	"TAGame.PRI_TA:CameraSettings":                                TagCameraSettings,
	"TAGame.PRI_TA:ClientLoadout":                                TagLoadout,
	"TAGame.PRI_TA:ClientLoadoutOnline":                           TagLoadoutOnline,
	"TAGame.PRI_TA:ClientLoadouts":                                TagLoadoutsOnline,
	"TAGame.PRI_TA:PartyLeader":                                  TagPartyLeader,
	"TAGame.PRI_TA:PlayerHistoryValid":                           TagBoolean,
	"TAGame.PRI_TA:TotalXP":                                      TagInt,
	"TAGame.PRI_TA:SteeringSensitivity":                          TagFloat,
	"TAGame.PRI_TA:TimeTillItem":                                 TagInt,
	"TAGame.PRI_TA:PrimaryTitle":                                  TagTitle,
	"TAGame.PRI_TA:ClubColors":                                   TagClubColors,
	"TAGame.Team_TA:GameEvent":                                   TagActiveActor,
	"TAGame.Team_TA:CustomTeamName":                               TagString,
	"TAGame.Team_TA:Score":                                       TagInt,
	"TAGame.RBActor_TA:ReplicatedRBState":                         TagRigidBody,
	"TAGame.Car_TA:ReplicatedDemolish":                            TagDemolish,
	"TAGame.Car_TA:ReplicatedDemolishExtended":                    TagDemolishExtended,
	"TAGame.Car_TA:TeamPaint":                                     TagTeamPaint,
	"TAGame.CarComponent_TA:ReplicatedActive":                     TagFlaggedByte,
	"TAGame.CarComponent_Boost_TA:ReplicatedBoostAmount":          TagByte,
	"TAGame.CarComponent_Boost_TA:bUnlimitedBoostRefCount":         TagByte,
	"TAGame.CarComponent_Dodge_TA:DodgeTorque":                    TagLocation,
	"TAGame.Ball_TA:ReplicatedExplosionData":                       TagExplosion,
	"TAGame.Ball_TA:ReplicatedExplosionDataExtended":                TagExtendedExplosion,
	"TAGame.Ball_TA:HitTeamNum":                                    TagByte,
	"TAGame.VehiclePickup_TA:ReplicatedPickupData":                 TagPickup,
	"TAGame.VehiclePickup_Boost_TA:ReplicatedPickupData":            TagPickupNew,
	"TAGame.GameEvent_Soccar_TA:bMatchEnded":                       TagBoolean,
	"TAGame.CrowdActor_TA:ModifiedNoise":                           TagFloat,
	"TAGame.CrowdActor_TA:GameEvent":                                TagActiveActor,
	"TAGame.CrowdManager_TA:GameEvent":                              TagActiveActor,
	"TAGame.Default__PRI_TA:PartyLeader":                           TagPartyLeader,
	"TAGame.Music_TA:bPlayingMusic":                                 TagBoolean,
	"TAGame.GameEvent_Team_TA:bNoContest":                           TagBoolean,
	"TAGame.SpecialPickup_TA:FlipCarTime":                           TagFloat,
	"TAGame.WeldedInfo_TA:WeldedInfo":                               TagWeldedInfo,
	"TAGame.CameraSettingsActor_TA:PRI":                              TagActiveActor,
	"TAGame.GRI_TA:MatchGUID":                                       TagString,
	"TAGame.GRI_TA:ReplicatedServerRegion":                          TagString,
	"TAGame.GRI_TA:GameServerID":                                    TagQWord,
	"TAGame.GRI_TA:ReplicatedGamePlaylist":                          TagInt,
	"TAGame.GameEvent_TA:MusicStinger":                              TagMusicStinger,
	"TAGame.SpecialPickup_TA:bActivated":                            TagBoolean,
	"TAGame.SpecialPickup_Rumble_TA:TargetActiveActor":               TagRumble,
	"TAGame.PlayerStart_TA:GameEvent":                                TagActiveActor,
	"TAGame.GameEvent_TA:MatchTypeClass":                            TagActiveActor,
	"TAGame.GameEvent_TA:ReplicatedRoundCountDownNumber":              TagInt,
	"TAGame.Default__GameEvent_Soccar_TA:ReplicatedMusicStinger":      TagMusicStinger,
	"ProjectX.GRI_X:ReplicatedGamePlaylist":                          TagInt,
	"TAGame.GRI_TA:NewDedicatedServerIP":                              TagString,
	"TAGame.GRI_TA:ReplicatedGameMutatorIndex":                        TagInt,
	"TAGame.PRI_TA:StatTotalPlaytime":                                 TagStatEvent,
}

// productKind maps the resolved object name of a Product's sub-shape to a
// ProductValue.Kind label.
var productKind = map[string]string{
	"TAGame.ProductAttribute_Painted_TA":        "Painted",
	"TAGame.ProductAttribute_UserColor_TA":      "UserColor",
	"TAGame.ProductAttribute_SpecialEdition_TA": "SpecialEdition",
	"TAGame.ProductAttribute_TeamEdition_TA":    "TeamEdition",
	"TAGame.ProductAttribute_TitleID_TA":        "TitleID",
}

// classParentClass is the Class:ParentClass table consulted by the
// class-net-cache resolver (§4.E step 3) before falling back to a
// cache_id match.
var classParentClass = map[string]string{
	"TAGame.PRI_TA":                 "Engine.PlayerReplicationInfo",
	"TAGame.Car_TA":                 "TAGame.RBActor_TA",
	"TAGame.Ball_TA":                "TAGame.RBActor_TA",
	"TAGame.CarComponent_Boost_TA":  "TAGame.CarComponent_TA",
	"TAGame.CarComponent_Dodge_TA":  "TAGame.CarComponent_TA",
	"TAGame.VehiclePickup_Boost_TA": "TAGame.VehiclePickup_TA",
	"TAGame.SpecialPickup_Rumble_TA": "TAGame.SpecialPickup_TA",
	"TAGame.GameEvent_Soccar_TA":    "TAGame.GameEvent_Team_TA",
	"TAGame.GameEvent_Team_TA":      "TAGame.GameEvent_TA",
}

// ResolveParentClass looks up the class a given class name inherits its
// replicated-property layout from.
func ResolveParentClass(className string) (string, bool) {
	p, ok := classParentClass[className]
	return p, ok
}

// SpawnTrajectory is the {HasPosition, HasRotation} pair a new-actor
// segment's Object:SpawnTrajectory entry controls.
type SpawnTrajectory struct {
	HasPosition bool
	HasRotation bool
}

// objectSpawnTrajectory is the Object:SpawnTrajectory table. Objects not
// present here default to {false, false} (no initial transform at all,
// e.g. for purely logical actors like GameReplicationInfo).
var objectSpawnTrajectory = map[string]SpawnTrajectory{
	"Archetypes.Ball.Ball_Default":      {true, true},
	"Archetypes.Ball.Ball_Basketball":   {true, true},
	"Archetypes.Car.Car_Default":        {true, true},
	"Archetypes.CarComponents.CarComponent_Boost": {false, false},
	"Archetypes.GameEvent.GameEvent_Soccar":       {false, false},
	"TheWorld:PersistentLevel.CrowdActor_TA":      {true, false},
	"TheWorld:PersistentLevel.VehiclePickup_Boost_TA": {true, true},
	"Archetypes.Tutorial.Ball_Default_Tutorial":   {true, true},
}

// ResolveSpawnTrajectory looks up objectName's spawn trajectory flags.
func ResolveSpawnTrajectory(objectName string) SpawnTrajectory {
	return objectSpawnTrajectory[objectName]
}

// ResolveAttrTag looks up the Tag a decoded object's name maps to. The
// bool result is false when the name has no table entry.
func ResolveAttrTag(objectName string) (Tag, bool) {
	t, ok := objectAttrTag[objectName]
	return t, ok
}

// ResolveProductKind looks up the ProductValue.Kind a Product sub-object's
// name maps to. The bool result is false when the name is not one of the
// known product sub-shapes (the caller should then treat the value as
// absent).
func ResolveProductKind(objectName string) (string, bool) {
	k, ok := productKind[objectName]
	return k, ok
}

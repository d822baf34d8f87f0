package dissect

import "strings"

// spawnTrajectory selects what trajectory data a new actor carries.
type spawnTrajectory uint8

const (
	spawnNone spawnTrajectory = iota
	spawnLocation
	spawnLocationAndRotation
)

// normalizeObject folds the per-stadium instance suffix out of world-level
// object names, eg.
// `stadium_foggy_p.TheWorld:PersistentLevel.VehiclePickup_Boost_TA_30` →
// `TheWorld:PersistentLevel.VehiclePickup_Boost_TA`, so one registry entry
// covers every stadium and pickup.
func normalizeObject(name string) string {
	for _, stem := range []string{
		"TheWorld:PersistentLevel.CrowdActor_TA",
		"TheWorld:PersistentLevel.CrowdManager_TA",
		"TheWorld:PersistentLevel.VehiclePickup_Boost_TA",
		"TheWorld:PersistentLevel.InMapScoreboard_TA",
		"TheWorld:PersistentLevel.BreakOutActor_Platform_TA",
	} {
		if strings.Contains(name, stem) {
			return stem
		}
	}
	return name
}

// objectClasses maps archetype and world-level object names onto the class
// whose net cache governs them. Chains continue through parentClasses.
var objectClasses = map[string]string{
	"Archetypes.Ball.Ball_BasketBall_Mutator":              "TAGame.Ball_TA",
	"Archetypes.Ball.Ball_Basketball":                      "TAGame.Ball_TA",
	"Archetypes.Ball.Ball_BasketBall":                      "TAGame.Ball_TA",
	"Archetypes.Ball.Ball_Beachball":                       "TAGame.Ball_TA",
	"Archetypes.Ball.Ball_Anniversary":                     "TAGame.Ball_TA",
	"Archetypes.Ball.Ball_Breakout":                        "TAGame.Ball_Breakout_TA",
	"Archetypes.Ball.Ball_Default":                         "TAGame.Ball_TA",
	"Archetypes.Ball.Ball_God":                             "TAGame.Ball_God_TA",
	"Archetypes.Ball.Ball_Haunted":                         "TAGame.Ball_Haunted_TA",
	"Archetypes.Ball.Ball_Puck":                            "TAGame.Ball_TA",
	"Archetypes.Ball.Ball_Training":                        "TAGame.Ball_TA",
	"Archetypes.Ball.CubeBall":                             "TAGame.Ball_TA",
	"Archetypes.Car.Car_Default":                           "TAGame.Car_TA",
	"Archetypes.CarComponents.CarComponent_Boost":          "TAGame.CarComponent_Boost_TA",
	"Archetypes.CarComponents.CarComponent_Dodge":          "TAGame.CarComponent_Dodge_TA",
	"Archetypes.CarComponents.CarComponent_DoubleJump":     "TAGame.CarComponent_DoubleJump_TA",
	"Archetypes.CarComponents.CarComponent_FlipCar":        "TAGame.CarComponent_FlipCar_TA",
	"Archetypes.CarComponents.CarComponent_Jump":           "TAGame.CarComponent_Jump_TA",
	"Archetypes.GameEvent.GameEvent_Basketball":            "TAGame.GameEvent_Soccar_TA",
	"Archetypes.GameEvent.GameEvent_BasketballPrivate":     "TAGame.GameEvent_SoccarPrivate_TA",
	"Archetypes.GameEvent.GameEvent_BasketballSplitscreen": "TAGame.GameEvent_SoccarSplitscreen_TA",
	"Archetypes.GameEvent.GameEvent_Breakout":              "TAGame.GameEvent_Breakout_TA",
	"Archetypes.GameEvent.GameEvent_Hockey":                "TAGame.GameEvent_Soccar_TA",
	"Archetypes.GameEvent.GameEvent_HockeyPrivate":         "TAGame.GameEvent_SoccarPrivate_TA",
	"Archetypes.GameEvent.GameEvent_HockeySplitscreen":     "TAGame.GameEvent_SoccarSplitscreen_TA",
	"Archetypes.GameEvent.GameEvent_Items":                 "TAGame.GameEvent_Soccar_TA",
	"Archetypes.GameEvent.GameEvent_Season":                "TAGame.GameEvent_Season_TA",
	"Archetypes.GameEvent.GameEvent_Season:CarArchetype":   "TAGame.Car_TA",
	"Archetypes.GameEvent.GameEvent_Soccar":                "TAGame.GameEvent_Soccar_TA",
	"Archetypes.GameEvent.GameEvent_SoccarLan":             "TAGame.GameEvent_SoccarPrivate_TA",
	"Archetypes.GameEvent.GameEvent_SoccarPrivate":         "TAGame.GameEvent_SoccarPrivate_TA",
	"Archetypes.GameEvent.GameEvent_SoccarSplitscreen":     "TAGame.GameEvent_SoccarSplitscreen_TA",
	"Archetypes.GameEvent.GameEvent_Tutorial":              "TAGame.GameEvent_Tutorial_TA",
	"Archetypes.SpecialPickups.SpecialPickup_BallFreeze":          "TAGame.SpecialPickup_BallFreeze_TA",
	"Archetypes.SpecialPickups.SpecialPickup_BallGrapplingHook":   "TAGame.SpecialPickup_GrapplingHook_TA",
	"Archetypes.SpecialPickups.SpecialPickup_BallLasso":           "TAGame.SpecialPickup_BallLasso_TA",
	"Archetypes.SpecialPickups.SpecialPickup_BallSpring":          "TAGame.SpecialPickup_BallCarSpring_TA",
	"Archetypes.SpecialPickups.SpecialPickup_BallVelcro":          "TAGame.SpecialPickup_BallVelcro_TA",
	"Archetypes.SpecialPickups.SpecialPickup_Batarang":            "TAGame.SpecialPickup_Batarang_TA",
	"Archetypes.SpecialPickups.SpecialPickup_BoostOverride":       "TAGame.SpecialPickup_BoostOverride_TA",
	"Archetypes.SpecialPickups.SpecialPickup_CarSpring":           "TAGame.SpecialPickup_BallCarSpring_TA",
	"Archetypes.SpecialPickups.SpecialPickup_GravityWell":         "TAGame.SpecialPickup_BallGravity_TA",
	"Archetypes.SpecialPickups.SpecialPickup_StrongHit":           "TAGame.SpecialPickup_HitForce_TA",
	"Archetypes.SpecialPickups.SpecialPickup_Swapper":             "TAGame.SpecialPickup_Swapper_TA",
	"Archetypes.SpecialPickups.SpecialPickup_Tornado":             "TAGame.SpecialPickup_Tornado_TA",
	"Archetypes.SpecialPickups.SpecialPickup_HauntedBallBeam":     "TAGame.SpecialPickup_HauntedBallBeam_TA",
	"Archetypes.SpecialPickups.SpecialPickup_Rugby":               "TAGame.SpecialPickup_Rugby_TA",
	"Archetypes.Teams.Team0": "TAGame.Team_Soccar_TA",
	"Archetypes.Teams.Team1": "TAGame.Team_Soccar_TA",
	"GameInfo_Basketball.GameInfo.GameInfo_Basketball:GameReplicationInfoArchetype": "TAGame.GRI_TA",
	"GameInfo_Breakout.GameInfo.GameInfo_Breakout:GameReplicationInfoArchetype":     "TAGame.GRI_TA",
	"GameInfo_Hockey.GameInfo.GameInfo_Hockey:GameReplicationInfoArchetype":         "TAGame.GRI_TA",
	"GameInfo_Items.GameInfo.GameInfo_Items:GameReplicationInfoArchetype":           "TAGame.GRI_TA",
	"GameInfo_Season.GameInfo.GameInfo_Season:GameReplicationInfoArchetype":         "TAGame.GRI_TA",
	"GameInfo_Soccar.GameInfo.GameInfo_Soccar:GameReplicationInfoArchetype":         "TAGame.GRI_TA",
	"GameInfo_Tutorial.GameInfo.GameInfo_Tutorial:GameReplicationInfoArchetype":     "TAGame.GRI_TA",
	"TAGame.Default__CameraSettingsActor_TA":                  "TAGame.CameraSettingsActor_TA",
	"TAGame.Default__PRI_TA":                                  "TAGame.PRI_TA",
	"TAGame.Default__MaxTimeWarningData_TA":                   "TAGame.MaxTimeWarningData_TA",
	"TheWorld:PersistentLevel.BreakOutActor_Platform_TA":      "TAGame.BreakOutActor_Platform_TA",
	"TheWorld:PersistentLevel.CrowdActor_TA":                  "TAGame.CrowdActor_TA",
	"TheWorld:PersistentLevel.CrowdManager_TA":                "TAGame.CrowdManager_TA",
	"TheWorld:PersistentLevel.InMapScoreboard_TA":             "TAGame.InMapScoreboard_TA",
	"TheWorld:PersistentLevel.VehiclePickup_Boost_TA":         "TAGame.VehiclePickup_Boost_TA",
}

// parentClasses is the static class hierarchy. Attribute resolution and
// spawn-trajectory lookups walk these chains to the root.
var parentClasses = map[string]string{
	"Engine.Actor":                   "Core.Object",
	"Engine.GameReplicationInfo":     "Engine.ReplicationInfo",
	"Engine.Info":                    "Engine.Actor",
	"Engine.Pawn":                    "Engine.Actor",
	"Engine.PlayerReplicationInfo":   "Engine.ReplicationInfo",
	"Engine.ReplicationInfo":         "Engine.Info",
	"Engine.ReplicatedActor_ORS":     "Engine.Actor",
	"Engine.TeamInfo":                "Engine.ReplicationInfo",
	"ProjectX.GRI_X":                 "Engine.GameReplicationInfo",
	"ProjectX.Pawn_X":                "Engine.Pawn",
	"ProjectX.PRI_X":                 "Engine.PlayerReplicationInfo",
	"TAGame.Ball_Breakout_TA":        "TAGame.Ball_TA",
	"TAGame.Ball_God_TA":             "TAGame.Ball_TA",
	"TAGame.Ball_Haunted_TA":         "TAGame.Ball_TA",
	"TAGame.Ball_TA":                 "TAGame.RBActor_TA",
	"TAGame.BreakOutActor_Platform_TA": "Engine.Actor",
	"TAGame.CameraSettingsActor_TA":  "Engine.ReplicationInfo",
	"TAGame.Car_Season_TA":           "TAGame.Car_TA",
	"TAGame.Car_TA":                  "TAGame.Vehicle_TA",
	"TAGame.CarComponent_Boost_TA":   "TAGame.CarComponent_TA",
	"TAGame.CarComponent_Dodge_TA":   "TAGame.CarComponent_TA",
	"TAGame.CarComponent_DoubleJump_TA": "TAGame.CarComponent_TA",
	"TAGame.CarComponent_FlipCar_TA": "TAGame.CarComponent_TA",
	"TAGame.CarComponent_Jump_TA":    "TAGame.CarComponent_TA",
	"TAGame.CarComponent_TA":         "Engine.ReplicationInfo",
	"TAGame.CrowdActor_TA":           "Engine.ReplicationInfo",
	"TAGame.CrowdManager_TA":         "Engine.ReplicationInfo",
	"TAGame.GRI_TA":                  "ProjectX.GRI_X",
	"TAGame.GameEvent_Breakout_TA":   "TAGame.GameEvent_Soccar_TA",
	"TAGame.GameEvent_Season_TA":     "TAGame.GameEvent_Soccar_TA",
	"TAGame.GameEvent_Soccar_TA":     "TAGame.GameEvent_Team_TA",
	"TAGame.GameEvent_SoccarPrivate_TA":     "TAGame.GameEvent_Soccar_TA",
	"TAGame.GameEvent_SoccarSplitscreen_TA": "TAGame.GameEvent_SoccarPrivate_TA",
	"TAGame.GameEvent_TA":            "Engine.ReplicationInfo",
	"TAGame.GameEvent_Team_TA":       "TAGame.GameEvent_TA",
	"TAGame.GameEvent_Tutorial_TA":   "TAGame.GameEvent_Soccar_TA",
	"TAGame.InMapScoreboard_TA":      "Engine.Actor",
	"TAGame.MaxTimeWarningData_TA":   "Engine.ReplicatedActor_ORS",
	"TAGame.PRI_TA":                  "ProjectX.PRI_X",
	"TAGame.RBActor_TA":              "ProjectX.Pawn_X",
	"TAGame.SpecialPickup_BallCarSpring_TA":  "TAGame.SpecialPickup_Spring_TA",
	"TAGame.SpecialPickup_BallFreeze_TA":     "TAGame.SpecialPickup_Targeted_TA",
	"TAGame.SpecialPickup_BallGravity_TA":    "TAGame.SpecialPickup_TA",
	"TAGame.SpecialPickup_BallLasso_TA":      "TAGame.SpecialPickup_GrapplingHook_TA",
	"TAGame.SpecialPickup_BallVelcro_TA":     "TAGame.SpecialPickup_TA",
	"TAGame.SpecialPickup_Batarang_TA":       "TAGame.SpecialPickup_BallLasso_TA",
	"TAGame.SpecialPickup_BoostOverride_TA":  "TAGame.SpecialPickup_Targeted_TA",
	"TAGame.SpecialPickup_GrapplingHook_TA":  "TAGame.SpecialPickup_Targeted_TA",
	"TAGame.SpecialPickup_HauntedBallBeam_TA": "TAGame.SpecialPickup_TA",
	"TAGame.SpecialPickup_HitForce_TA":       "TAGame.SpecialPickup_TA",
	"TAGame.SpecialPickup_Rugby_TA":          "TAGame.SpecialPickup_TA",
	"TAGame.SpecialPickup_Spring_TA":         "TAGame.SpecialPickup_Targeted_TA",
	"TAGame.SpecialPickup_Swapper_TA":        "TAGame.SpecialPickup_Targeted_TA",
	"TAGame.SpecialPickup_TA":                "TAGame.CarComponent_TA",
	"TAGame.SpecialPickup_Targeted_TA":       "TAGame.SpecialPickup_TA",
	"TAGame.SpecialPickup_Tornado_TA":        "TAGame.SpecialPickup_TA",
	"TAGame.Team_Soccar_TA":          "TAGame.Team_TA",
	"TAGame.Team_TA":                 "Engine.TeamInfo",
	"TAGame.Vehicle_TA":              "TAGame.RBActor_TA",
	"TAGame.VehiclePickup_Boost_TA":  "TAGame.VehiclePickup_TA",
	"TAGame.VehiclePickup_TA":        "Engine.ReplicationInfo",
}

// parentOf looks up an object's parent: an archetype resolves to its class
// first, then the class hierarchy takes over.
func parentOf(name string) (string, bool) {
	if cls, ok := objectClasses[name]; ok {
		return cls, true
	}
	parent, ok := parentClasses[name]
	return parent, ok
}

// spawnStats declares what trajectory data each class's new actors carry.
// Pawn-like classes (balls, cars) spawn with both a location and a
// rotation; world and info actors with a location only. Objects not rooted
// in any of these spawn bare.
var spawnStats = map[string]spawnTrajectory{
	"TAGame.Ball_Breakout_TA":          spawnLocationAndRotation,
	"TAGame.Ball_God_TA":               spawnLocationAndRotation,
	"TAGame.Ball_Haunted_TA":           spawnLocationAndRotation,
	"TAGame.Ball_TA":                   spawnLocationAndRotation,
	"TAGame.Car_Season_TA":             spawnLocationAndRotation,
	"TAGame.Car_TA":                    spawnLocationAndRotation,
	"TAGame.CameraSettingsActor_TA":    spawnLocation,
	"TAGame.GRI_TA":                    spawnLocation,
	"TAGame.GameEvent_Breakout_TA":     spawnLocation,
	"TAGame.GameEvent_Season_TA":       spawnLocation,
	"TAGame.GameEvent_Soccar_TA":       spawnLocation,
	"TAGame.GameEvent_SoccarPrivate_TA":      spawnLocation,
	"TAGame.GameEvent_SoccarSplitscreen_TA":  spawnLocation,
	"TAGame.GameEvent_Tutorial_TA":     spawnLocation,
	"TAGame.PRI_TA":                    spawnLocation,
	"TAGame.BreakOutActor_Platform_TA": spawnLocation,
	"TAGame.CrowdActor_TA":             spawnLocation,
	"TAGame.CrowdManager_TA":           spawnLocation,
	"TAGame.InMapScoreboard_TA":        spawnLocation,
	"TAGame.VehiclePickup_Boost_TA":    spawnLocation,
	"TAGame.VehiclePickup_TA":          spawnLocation,
}

// objectAttributes maps normalized attribute object paths to their decoder
// tag. Objects referenced by a net cache but absent here are tagged
// not-implemented and only fail if the stream actually updates them.
var objectAttributes = map[string]attributeTag{
	"Engine.Actor:bBlockActors":     tagBoolean,
	"Engine.Actor:bCollideActors":   tagBoolean,
	"Engine.Actor:bHidden":          tagBoolean,
	"Engine.Actor:bProjTarget":      tagBoolean,
	"Engine.Actor:bTearOff":         tagBoolean,
	"Engine.Actor:DrawScale":        tagFloat,
	"Engine.Actor:Location":         tagLocation,
	"Engine.Actor:RelativeLocation": tagLocation,
	"Engine.Actor:RelativeRotation": tagRotation,
	"Engine.Actor:RemoteRole":       tagEnum,
	"Engine.Actor:Role":             tagEnum,
	"Engine.Actor:Rotation":         tagRotation,
	"Engine.GameReplicationInfo:bMatchIsOver":     tagBoolean,
	"Engine.GameReplicationInfo:GameClass":        tagActiveActor,
	"Engine.GameReplicationInfo:ServerName":       tagString,
	"Engine.Pawn:PlayerReplicationInfo":           tagActiveActor,
	"Engine.PlayerReplicationInfo:bBot":           tagBoolean,
	"Engine.PlayerReplicationInfo:bIsSpectator":   tagBoolean,
	"Engine.PlayerReplicationInfo:bReadyToPlay":   tagBoolean,
	"Engine.PlayerReplicationInfo:bTimedOut":      tagBoolean,
	"Engine.PlayerReplicationInfo:bWaitingPlayer": tagBoolean,
	"Engine.PlayerReplicationInfo:Ping":           tagByte,
	"Engine.PlayerReplicationInfo:PlayerID":       tagInt,
	"Engine.PlayerReplicationInfo:PlayerName":     tagString,
	"Engine.PlayerReplicationInfo:RemoteUserData": tagString,
	"Engine.PlayerReplicationInfo:Score":          tagInt,
	"Engine.PlayerReplicationInfo:Team":           tagActiveActor,
	"Engine.PlayerReplicationInfo:UniqueId":       tagUniqueID,
	"Engine.ReplicatedActor_ORS:ReplicatedOwner":  tagActiveActor,
	"Engine.TeamInfo:Score":                       tagInt,
	"Engine.WorldInfo:TimeDilation":               tagFloat,
	"Engine.WorldInfo:WorldGravityZ":              tagFloat,
	"ProjectX.GRI_X:bGameStarted":                 tagBoolean,
	"ProjectX.GRI_X:GameServerID":                 tagQWordString,
	"ProjectX.GRI_X:MatchGUID":                    tagString,
	"ProjectX.GRI_X:ReplicatedGameMutatorIndex":   tagInt,
	"ProjectX.GRI_X:ReplicatedGamePlaylist":       tagInt,
	"ProjectX.GRI_X:ReplicatedServerRegion":       tagString,
	"ProjectX.GRI_X:Reservations":                 tagReservation,
	"TAGame.Ball_Breakout_TA:AppliedDamage":       tagAppliedDamage,
	"TAGame.Ball_Breakout_TA:DamageIndex":         tagInt,
	"TAGame.Ball_Breakout_TA:LastTeamTouch":       tagByte,
	"TAGame.Ball_God_TA:TargetSpeed":              tagFloat,
	"TAGame.Ball_Haunted_TA:bIsBallBeamed":             tagBoolean,
	"TAGame.Ball_Haunted_TA:DeactivatedGoalIndex":      tagByte,
	"TAGame.Ball_Haunted_TA:LastTeamTouch":             tagByte,
	"TAGame.Ball_Haunted_TA:ReplicatedBeamBrokenValue": tagByte,
	"TAGame.Ball_Haunted_TA:TotalActiveBeams":          tagByte,
	"TAGame.Ball_TA:GameEvent":                         tagActiveActor,
	"TAGame.Ball_TA:HitTeamNum":                        tagByte,
	"TAGame.Ball_TA:ReplicatedAddedCarBounceScale":     tagFloat,
	"TAGame.Ball_TA:ReplicatedBallGravityScale":        tagFloat,
	"TAGame.Ball_TA:ReplicatedBallMaxLinearSpeedScale": tagFloat,
	"TAGame.Ball_TA:ReplicatedBallScale":               tagFloat,
	"TAGame.Ball_TA:ReplicatedExplosionData":           tagExplosion,
	"TAGame.Ball_TA:ReplicatedExplosionDataExtended":   tagExtendedExplosion,
	"TAGame.Ball_TA:ReplicatedPhysMatOverride":         tagActiveActor,
	"TAGame.Ball_TA:ReplicatedWorldBounceScale":        tagFloat,
	"TAGame.BreakOutActor_Platform_TA:DamageState":     tagDamageState,
	"TAGame.CameraSettingsActor_TA:bMouseCameraToggleEnabled": tagBoolean,
	"TAGame.CameraSettingsActor_TA:bUsingBehindView":          tagBoolean,
	"TAGame.CameraSettingsActor_TA:bUsingSecondaryCamera":     tagBoolean,
	"TAGame.CameraSettingsActor_TA:CameraPitch":               tagByte,
	"TAGame.CameraSettingsActor_TA:CameraYaw":                 tagByte,
	"TAGame.CameraSettingsActor_TA:PRI":                       tagActiveActor,
	"TAGame.CameraSettingsActor_TA:ProfileSettings":           tagCamSettings,
	"TAGame.Car_TA:AddedBallForceMultiplier":       tagFloat,
	"TAGame.Car_TA:AddedCarForceMultiplier":        tagFloat,
	"TAGame.Car_TA:AttachedPickup":                 tagActiveActor,
	"TAGame.Car_TA:ClubColors":                     tagClubColors,
	"TAGame.Car_TA:ReplicatedCarScale":             tagFloat,
	"TAGame.Car_TA:ReplicatedDemolish":             tagDemolish,
	"TAGame.Car_TA:ReplicatedDemolish_CustomFX":    tagDemolishFx,
	"TAGame.Car_TA:RumblePickups":                  tagPickupInfo,
	"TAGame.Car_TA:TeamPaint":                      tagTeamPaint,
	"TAGame.CarComponent_Boost_TA:bNoBoost":             tagBoolean,
	"TAGame.CarComponent_Boost_TA:BoostModifier":        tagFloat,
	"TAGame.CarComponent_Boost_TA:bUnlimitedBoost":      tagBoolean,
	"TAGame.CarComponent_Boost_TA:RechargeDelay":        tagFloat,
	"TAGame.CarComponent_Boost_TA:RechargeRate":         tagFloat,
	"TAGame.CarComponent_Boost_TA:ReplicatedBoost":      tagReplicatedBoost,
	"TAGame.CarComponent_Boost_TA:ReplicatedBoostAmount": tagByte,
	"TAGame.CarComponent_Boost_TA:UnlimitedBoostRefCount": tagInt,
	"TAGame.CarComponent_Dodge_TA:DodgeImpulse":         tagLocation,
	"TAGame.CarComponent_Dodge_TA:DodgeTorque":          tagLocation,
	"TAGame.CarComponent_FlipCar_TA:bFlipRight":         tagBoolean,
	"TAGame.CarComponent_FlipCar_TA:FlipCarTime":        tagFloat,
	"TAGame.CarComponent_TA:ReplicatedActive":           tagByte,
	"TAGame.CarComponent_TA:ReplicatedActivityTime":     tagFloat,
	"TAGame.CarComponent_TA:Vehicle":                    tagActiveActor,
	"TAGame.CrowdActor_TA:GameEvent":                    tagActiveActor,
	"TAGame.CrowdActor_TA:ModifiedNoise":                tagFloat,
	"TAGame.CrowdActor_TA:ReplicatedCountDownNumber":    tagInt,
	"TAGame.CrowdActor_TA:ReplicatedOneShotSound":       tagActiveActor,
	"TAGame.CrowdActor_TA:ReplicatedRoundCountDownNumber": tagInt,
	"TAGame.CrowdManager_TA:GameEvent":                    tagActiveActor,
	"TAGame.CrowdManager_TA:ReplicatedGlobalOneShotSound": tagActiveActor,
	"TAGame.GameEvent_Soccar_TA:bBallHasBeenHit":          tagBoolean,
	"TAGame.GameEvent_Soccar_TA:bClubMatch":               tagBoolean,
	"TAGame.GameEvent_Soccar_TA:bMatchEnded":              tagBoolean,
	"TAGame.GameEvent_Soccar_TA:bNoContest":               tagBoolean,
	"TAGame.GameEvent_Soccar_TA:bOverTime":                tagBoolean,
	"TAGame.GameEvent_Soccar_TA:bUnlimitedTime":           tagBoolean,
	"TAGame.GameEvent_Soccar_TA:GameTime":                 tagInt,
	"TAGame.GameEvent_Soccar_TA:MaxScore":                 tagInt,
	"TAGame.GameEvent_Soccar_TA:MVP":                      tagActiveActor,
	"TAGame.GameEvent_Soccar_TA:ReplicatedMusicStinger":   tagMusicStinger,
	"TAGame.GameEvent_Soccar_TA:ReplicatedScoredOnTeam":   tagByte,
	"TAGame.GameEvent_Soccar_TA:ReplicatedServerPerformanceState": tagByte,
	"TAGame.GameEvent_Soccar_TA:ReplicatedStatEvent":      tagStatEvent,
	"TAGame.GameEvent_Soccar_TA:RoundNum":                 tagInt,
	"TAGame.GameEvent_Soccar_TA:SecondsRemaining":         tagInt,
	"TAGame.GameEvent_Soccar_TA:SeriesLength":             tagInt,
	"TAGame.GameEvent_Soccar_TA:SubRulesArchetypeName":    tagString,
	"TAGame.GameEvent_SoccarPrivate_TA:MatchSettings":     tagPrivateMatchSettings,
	"TAGame.GameEvent_TA:bCanVoteToForfeit":               tagBoolean,
	"TAGame.GameEvent_TA:bHasLeaveMatchPenalty":           tagBoolean,
	"TAGame.GameEvent_TA:bIsBotMatch":                     tagBoolean,
	"TAGame.GameEvent_TA:BotSkill":                        tagInt,
	"TAGame.GameEvent_TA:GameMode":                        tagGameMode,
	"TAGame.GameEvent_TA:MatchTypeClass":                  tagActiveActor,
	"TAGame.GameEvent_TA:ReplicatedGameStateTimeRemaining": tagInt,
	"TAGame.GameEvent_TA:ReplicatedRoundCountDownNumber":   tagInt,
	"TAGame.GameEvent_TA:ReplicatedStateIndex":             tagByte,
	"TAGame.GameEvent_TA:ReplicatedStateName":              tagInt,
	"TAGame.GameEvent_Team_TA:bForfeit":                    tagBoolean,
	"TAGame.GameEvent_Team_TA:MaxTeamSize":                 tagInt,
	"TAGame.GRI_TA:NewDedicatedServerIP":                   tagString,
	"TAGame.MaxTimeWarningData_TA:EndGameEpochTime":        tagInt64,
	"TAGame.MaxTimeWarningData_TA:EndGameWarningEpochTime": tagInt64,
	"TAGame.PRI_TA:bIsInSplitScreen":       tagBoolean,
	"TAGame.PRI_TA:bMatchMVP":              tagBoolean,
	"TAGame.PRI_TA:bOnlineLoadoutSet":      tagBoolean,
	"TAGame.PRI_TA:bOnlineLoadoutsSet":     tagBoolean,
	"TAGame.PRI_TA:bReady":                 tagBoolean,
	"TAGame.PRI_TA:bUsingBehindView":       tagBoolean,
	"TAGame.PRI_TA:bUsingFreecam":          tagBoolean,
	"TAGame.PRI_TA:bUsingItems":            tagBoolean,
	"TAGame.PRI_TA:bUsingSecondaryCamera":  tagBoolean,
	"TAGame.PRI_TA:BotProductName":         tagInt,
	"TAGame.PRI_TA:CameraPitch":            tagByte,
	"TAGame.PRI_TA:CameraSettings":         tagCamSettings,
	"TAGame.PRI_TA:CameraYaw":              tagByte,
	"TAGame.PRI_TA:ClientLoadout":          tagLoadout,
	"TAGame.PRI_TA:ClientLoadoutOnline":    tagLoadoutOnline,
	"TAGame.PRI_TA:ClientLoadouts":         tagTeamLoadout,
	"TAGame.PRI_TA:ClientLoadoutsOnline":   tagLoadoutsOnline,
	"TAGame.PRI_TA:ClubID":                 tagInt64,
	"TAGame.PRI_TA:MatchAssists":           tagInt,
	"TAGame.PRI_TA:MatchBreakoutDamage":    tagInt,
	"TAGame.PRI_TA:MatchGoals":             tagInt,
	"TAGame.PRI_TA:MatchSaves":             tagInt,
	"TAGame.PRI_TA:MatchScore":             tagInt,
	"TAGame.PRI_TA:MatchShots":             tagInt,
	"TAGame.PRI_TA:MaxTimeTillItem":        tagInt,
	"TAGame.PRI_TA:PartyLeader":            tagPartyLeader,
	"TAGame.PRI_TA:PawnType":               tagByte,
	"TAGame.PRI_TA:PersistentCamera":       tagActiveActor,
	"TAGame.PRI_TA:PlayerHistoryKey":       tagPlayerHistoryKey,
	"TAGame.PRI_TA:PlayerHistoryValid":     tagBoolean,
	"TAGame.PRI_TA:PrimaryTitle":           tagTitle,
	"TAGame.PRI_TA:RepStatTitles":          tagRepStatTitle,
	"TAGame.PRI_TA:ReplicatedGameEvent":    tagActiveActor,
	"TAGame.PRI_TA:ReplicatedWorstNetQualityBeyondLatency": tagByte,
	"TAGame.PRI_TA:SecondaryTitle":         tagTitle,
	"TAGame.PRI_TA:SpectatorShortcut":      tagInt,
	"TAGame.PRI_TA:SteeringSensitivity":    tagFloat,
	"TAGame.PRI_TA:TimeTillItem":           tagInt,
	"TAGame.PRI_TA:Title":                  tagInt,
	"TAGame.PRI_TA:TotalXP":                tagInt,
	"TAGame.RBActor_TA:bFrozen":            tagBoolean,
	"TAGame.RBActor_TA:bIgnoreSyncing":     tagBoolean,
	"TAGame.RBActor_TA:bReplayActor":       tagBoolean,
	"TAGame.RBActor_TA:ReplicatedRBState":  tagRigidBody,
	"TAGame.RBActor_TA:WeldedInfo":         tagWelded,
	"TAGame.SpecialPickup_BallFreeze_TA:RepOrigSpeed":    tagFloat,
	"TAGame.SpecialPickup_BallVelcro_TA:AttachTime":      tagFloat,
	"TAGame.SpecialPickup_BallVelcro_TA:bBroken":         tagBoolean,
	"TAGame.SpecialPickup_BallVelcro_TA:bHit":            tagBoolean,
	"TAGame.SpecialPickup_BallVelcro_TA:BreakTime":       tagFloat,
	"TAGame.SpecialPickup_Targeted_TA:Targeted":          tagActiveActor,
	"TAGame.Team_Soccar_TA:GameScore":      tagInt,
	"TAGame.Team_TA:ClubColors":            tagClubColors,
	"TAGame.Team_TA:ClubID":                tagInt64,
	"TAGame.Team_TA:CustomTeamName":        tagString,
	"TAGame.Team_TA:Difficulty":            tagInt,
	"TAGame.Team_TA:GameEvent":             tagActiveActor,
	"TAGame.Team_TA:LogoData":              tagActiveActor,
	"TAGame.Vehicle_TA:bDriving":           tagBoolean,
	"TAGame.Vehicle_TA:bReplicatedHandbrake": tagBoolean,
	"TAGame.Vehicle_TA:ReplicatedSteer":    tagByte,
	"TAGame.Vehicle_TA:ReplicatedThrottle": tagByte,
	"TAGame.VehiclePickup_TA:bNoPickup":    tagBoolean,
	"TAGame.VehiclePickup_TA:NewReplicatedPickupData": tagPickupNew,
	"TAGame.VehiclePickup_TA:PickupInfo":              tagPickupInfo,
	"TAGame.VehiclePickup_TA:ReplicatedPickupData":    tagPickup,
	"TAGame.Car_TA:ReplicatedCarImpulse":              tagImpulse,
}

package dissect

import (
	"encoding/json"
	"strconv"
)

// Attribute is the typed value carried by an actor update. Each concrete
// type corresponds to one wire shape; attributeName is the tag it serializes
// under.
type Attribute interface {
	attributeName() string
}

// marshalAttribute wraps a decoded attribute as {"<Kind>": value}.
func marshalAttribute(a Attribute) ([]byte, error) {
	if a == nil {
		return []byte("null"), nil
	}
	return json.Marshal(map[string]Attribute{a.attributeName(): a})
}

// Boolean is a single replicated bit.
type Boolean bool

func (Boolean) attributeName() string { return "Boolean" }

// ByteAttr is a single replicated byte.
type ByteAttr uint8

func (ByteAttr) attributeName() string { return "Byte" }

// EnumAttr is an 11 bit enumeration value.
type EnumAttr uint16

func (EnumAttr) attributeName() string { return "Enum" }

// FloatAttr is a replicated f32.
type FloatAttr float32

func (FloatAttr) attributeName() string { return "Float" }

// IntAttr is a replicated i32.
type IntAttr int32

func (IntAttr) attributeName() string { return "Int" }

// Int64Attr is a replicated i64, serialized as a decimal string.
type Int64Attr int64

func (Int64Attr) attributeName() string { return "Int64" }

func (a Int64Attr) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(int64(a), 10))
}

// QWordAttr is a replicated u64, serialized as a decimal string.
type QWordAttr uint64

func (QWordAttr) attributeName() string { return "QWord" }

func (a QWordAttr) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(a), 10))
}

// StringAttr is a replicated string.
type StringAttr string

func (StringAttr) attributeName() string { return "String" }

// PlayerHistoryKey is an opaque 14 bit key into player history.
type PlayerHistoryKey uint16

func (PlayerHistoryKey) attributeName() string { return "PlayerHistoryKey" }

// LocationAttr is a replicated world position.
type LocationAttr Vector3f

func (LocationAttr) attributeName() string { return "Location" }

// RotationAttr is a replicated byte-step rotation.
type RotationAttr Rotation

func (RotationAttr) attributeName() string { return "Rotation" }

// ActiveActor links to another actor together with an active flag, the
// game's replicated actor reference.
type ActiveActor struct {
	Active bool    `json:"active"`
	Actor  ActorID `json:"actor"`
}

func (ActiveActor) attributeName() string { return "ActiveActor" }

// CamSettings is a player's camera profile.
type CamSettings struct {
	Fov        float32  `json:"fov"`
	Height     float32  `json:"height"`
	Angle      float32  `json:"angle"`
	Distance   float32  `json:"distance"`
	Stiffness  float32  `json:"stiffness"`
	Swivel     float32  `json:"swivel"`
	Transition *float32 `json:"transition,omitempty"`
}

func (*CamSettings) attributeName() string { return "CamSettings" }

// ClubColors carries club color overrides for both teams.
type ClubColors struct {
	BlueFlag    bool  `json:"blue_flag"`
	BlueColor   uint8 `json:"blue_color"`
	OrangeFlag  bool  `json:"orange_flag"`
	OrangeColor uint8 `json:"orange_color"`
}

func (ClubColors) attributeName() string { return "ClubColors" }

// AppliedDamage is a dropshot ball damage event.
type AppliedDamage struct {
	ID          uint8    `json:"id"`
	Position    Vector3f `json:"position"`
	DamageIndex int32    `json:"damage_index"`
	TotalDamage int32    `json:"total_damage"`
}

func (AppliedDamage) attributeName() string { return "AppliedDamage" }

// DamageState is the state of a dropshot tile.
type DamageState struct {
	// 0 undamaged, 1 damaged, 2 destroyed
	TileState uint8 `json:"tile_state"`
	Damaged   bool  `json:"damaged"`

	// Player actor that inflicted the damage
	Offender ActorID `json:"offender"`

	// Ball position at the time of the damage
	BallPosition Vector3f `json:"ball_position"`

	// True for the tile directly hit by the ball
	DirectHit bool `json:"direct_hit"`
	Unknown1  bool `json:"unknown1"`
}

func (DamageState) attributeName() string { return "DamageState" }

// Demolish records a car demolition.
type Demolish struct {
	AttackerFlag   bool     `json:"attacker_flag"`
	Attacker       ActorID  `json:"attacker"`
	VictimFlag     bool     `json:"victim_flag"`
	Victim         ActorID  `json:"victim"`
	AttackVelocity Vector3f `json:"attack_velocity"`
	VictimVelocity Vector3f `json:"victim_velocity"`
}

func (*Demolish) attributeName() string { return "Demolish" }

// DemolishFx is a demolition with a custom goal-explosion effect.
type DemolishFx struct {
	CustomDemoFlag bool     `json:"custom_demo_flag"`
	CustomDemoID   int32    `json:"custom_demo_id"`
	AttackerFlag   bool     `json:"attacker_flag"`
	Attacker       ActorID  `json:"attacker"`
	VictimFlag     bool     `json:"victim_flag"`
	Victim         ActorID  `json:"victim"`
	AttackVelocity Vector3f `json:"attack_velocity"`
	VictimVelocity Vector3f `json:"victim_velocity"`
}

func (*DemolishFx) attributeName() string { return "DemolishFx" }

// Explosion is a ball explosion event.
type Explosion struct {
	Flag     bool     `json:"flag"`
	Actor    ActorID  `json:"actor"`
	Location Vector3f `json:"location"`
}

func (Explosion) attributeName() string { return "Explosion" }

// ExtendedExplosion adds a secondary actor to an explosion.
type ExtendedExplosion struct {
	Explosion      Explosion `json:"explosion"`
	Unknown1       bool      `json:"unknown1"`
	SecondaryActor ActorID   `json:"secondary_actor"`
}

func (ExtendedExplosion) attributeName() string { return "ExtendedExplosion" }

// GameMode carries the replicated game mode byte, along with how many bits
// it occupied on the wire (the width changed across patches).
type GameMode struct {
	Bits uint8 `json:"num_bits"`
	Mode uint8 `json:"mode"`
}

func (GameMode) attributeName() string { return "GameMode" }

// Loadout is a player's offline item loadout. Later versions append slots;
// absent slots stay nil.
type Loadout struct {
	Version       uint8   `json:"version"`
	Body          uint32  `json:"body"`
	Decal         uint32  `json:"decal"`
	Wheels        uint32  `json:"wheels"`
	RocketTrail   uint32  `json:"rocket_trail"`
	Antenna       uint32  `json:"antenna"`
	Topper        uint32  `json:"topper"`
	Unknown1      uint32  `json:"unknown1"`
	Unknown2      *uint32 `json:"unknown2,omitempty"`
	EngineAudio   *uint32 `json:"engine_audio,omitempty"`
	Trail         *uint32 `json:"trail,omitempty"`
	GoalExplosion *uint32 `json:"goal_explosion,omitempty"`
	Banner        *uint32 `json:"banner,omitempty"`
	ProductID     *uint32 `json:"product_id,omitempty"`
}

func (*Loadout) attributeName() string { return "Loadout" }

// TeamLoadout pairs both team-colored loadouts.
type TeamLoadout struct {
	Blue   Loadout `json:"blue"`
	Orange Loadout `json:"orange"`
}

func (*TeamLoadout) attributeName() string { return "TeamLoadout" }

// StatEvent references a stat event object (goal, save, ...).
type StatEvent struct {
	Unknown1 bool  `json:"unknown1"`
	ObjectID int32 `json:"object_id"`
}

func (StatEvent) attributeName() string { return "StatEvent" }

// MusicStinger triggers a stadium music cue.
type MusicStinger struct {
	Flag    bool   `json:"flag"`
	Cue     uint32 `json:"cue"`
	Trigger uint8  `json:"trigger"`
}

func (MusicStinger) attributeName() string { return "MusicStinger" }

// Pickup is a boost pad pickup event.
type Pickup struct {
	Instigator *ActorID `json:"instigator,omitempty"`
	PickedUp   bool     `json:"picked_up"`
}

func (Pickup) attributeName() string { return "Pickup" }

// PickupNew is the newer boost pad pickup shape.
type PickupNew struct {
	Instigator *ActorID `json:"instigator,omitempty"`
	PickedUp   uint8    `json:"picked_up"`
}

func (PickupNew) attributeName() string { return "PickupNew" }

// PickupInfo is the rumble item pickup state.
type PickupInfo struct {
	Active          bool    `json:"active"`
	Actor           ActorID `json:"actor"`
	ItemsArePreview bool    `json:"items_are_preview"`
	Unknown         bool    `json:"unknown"`
	Unknown2        bool    `json:"unknown2"`
}

func (PickupInfo) attributeName() string { return "PickupInfo" }

// Welded describes an actor welded onto another (eg. batarang rumble).
type Welded struct {
	Active   bool     `json:"active"`
	Actor    ActorID  `json:"actor"`
	Offset   Vector3f `json:"offset"`
	Mass     float32  `json:"mass"`
	Rotation Rotation `json:"rotation"`
}

func (Welded) attributeName() string { return "Welded" }

// TeamPaint is a car's team paint scheme.
type TeamPaint struct {
	Team          uint8  `json:"team"`
	PrimaryColor  uint8  `json:"primary_color"`
	AccentColor   uint8  `json:"accent_color"`
	PrimaryFinish uint32 `json:"primary_finish"`
	AccentFinish  uint32 `json:"accent_finish"`
}

func (TeamPaint) attributeName() string { return "TeamPaint" }

// RigidBody is the dominant attribute in any replay: an actor's physics
// pose, plus velocities while awake.
type RigidBody struct {
	Sleeping        bool       `json:"sleeping"`
	Location        Vector3f   `json:"location"`
	Rotation        Quaternion `json:"rotation"`
	LinearVelocity  *Vector3f  `json:"linear_velocity,omitempty"`
	AngularVelocity *Vector3f  `json:"angular_velocity,omitempty"`
}

func (RigidBody) attributeName() string { return "RigidBody" }

// Title is an opaque title payload; field semantics are unconfirmed.
type Title struct {
	Unknown1 bool   `json:"unknown1"`
	Unknown2 bool   `json:"unknown2"`
	Unknown3 uint32 `json:"unknown3"`
	Unknown4 uint32 `json:"unknown4"`
	Unknown5 uint32 `json:"unknown5"`
	Unknown6 uint32 `json:"unknown6"`
	Unknown7 uint32 `json:"unknown7"`
	Unknown8 bool   `json:"unknown8"`
}

func (Title) attributeName() string { return "Title" }

// ReplicatedBoost is the newer boost state replication.
type ReplicatedBoost struct {
	GrantCount  uint8 `json:"grant_count"`
	BoostAmount uint8 `json:"boost_amount"`
	Unused1     uint8 `json:"unused1"`
	Unused2     uint8 `json:"unused2"`
}

func (ReplicatedBoost) attributeName() string { return "ReplicatedBoost" }

// Impulse is a replicated impulse burst.
type Impulse struct {
	CompressedRotation int32   `json:"compressed_rotation"`
	Speed              float32 `json:"speed"`
}

func (Impulse) attributeName() string { return "Impulse" }

// RepStatTitle is a replicated stat title update.
type RepStatTitle struct {
	Unknown  bool   `json:"unknown"`
	Name     string `json:"name"`
	Unknown2 bool   `json:"unknown2"`
	Index    uint32 `json:"index"`
	Value    uint32 `json:"value"`
}

func (RepStatTitle) attributeName() string { return "RepStatTitle" }

// Reservation is a lobby slot reservation.
type Reservation struct {
	Number   uint32   `json:"number"`
	UniqueID UniqueID `json:"unique_id"`
	Name     *string  `json:"name,omitempty"`
	Unknown1 bool     `json:"unknown1"`
	Unknown2 bool     `json:"unknown2"`
	Unknown3 *uint8   `json:"unknown3,omitempty"`
}

func (*Reservation) attributeName() string { return "Reservation" }

// PrivateMatchSettings describes a private lobby.
type PrivateMatchSettings struct {
	Mutators   string `json:"mutators"`
	JoinableBy uint32 `json:"joinable_by"`
	MaxPlayers uint32 `json:"max_players"`
	GameName   string `json:"game_name"`
	Password   string `json:"password"`
	Flag       bool   `json:"flag"`
}

func (*PrivateMatchSettings) attributeName() string { return "PrivateMatch" }

// PartyLeader identifies a player's party leader, absent when solo.
type PartyLeader struct {
	ID *UniqueID `json:"id"`
}

func (*PartyLeader) attributeName() string { return "PartyLeader" }

// Product is one attribute of an online loadout item (paint, color, ...).
type Product struct {
	Unknown   bool         `json:"unknown"`
	ObjectInd uint32       `json:"object_ind"`
	Value     ProductValue `json:"value"`
}

// ProductValueKind tags how a product attribute value was encoded.
type ProductValueKind uint8

const (
	ProductAbsent ProductValueKind = iota
	ProductNoColor
	ProductOldColor
	ProductNewColor
	ProductOldPaint
	ProductNewPaint
	ProductTitle
	ProductSpecialEdition
	ProductOldTeamEdition
	ProductNewTeamEdition
)

var productValueNames = map[ProductValueKind]string{
	ProductAbsent:         "absent",
	ProductNoColor:        "no_color",
	ProductOldColor:       "old_color",
	ProductNewColor:       "new_color",
	ProductOldPaint:       "old_paint",
	ProductNewPaint:       "new_paint",
	ProductTitle:          "title",
	ProductSpecialEdition: "special_edition",
	ProductOldTeamEdition: "old_team_edition",
	ProductNewTeamEdition: "new_team_edition",
}

// ProductValue is the decoded product attribute payload.
type ProductValue struct {
	Kind  ProductValueKind
	Value uint32
	Title string
}

func (p ProductValue) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case ProductAbsent, ProductNoColor:
		return json.Marshal(map[string]any{"kind": productValueNames[p.Kind]})
	case ProductTitle:
		return json.Marshal(map[string]any{"kind": productValueNames[p.Kind], "title": p.Title})
	default:
		return json.Marshal(map[string]any{"kind": productValueNames[p.Kind], "value": p.Value})
	}
}

// OnlineLoadout is one car's online item list, grouped per slot.
type OnlineLoadout [][]Product

func (OnlineLoadout) attributeName() string { return "LoadoutOnline" }

// LoadoutsOnline pairs both teams' online loadouts.
type LoadoutsOnline struct {
	Blue     OnlineLoadout `json:"blue"`
	Orange   OnlineLoadout `json:"orange"`
	Unknown1 bool          `json:"unknown1"`
	Unknown2 bool          `json:"unknown2"`
}

func (*LoadoutsOnline) attributeName() string { return "LoadoutsOnline" }

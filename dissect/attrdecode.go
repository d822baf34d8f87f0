package dissect

// attributeTag selects the decoder for one attribute object. Dispatch is a
// switch on this small tag so the hot path stays branch-predictable.
type attributeTag uint8

const (
	tagNotImplemented attributeTag = iota
	tagBoolean
	tagByte
	tagAppliedDamage
	tagDamageState
	tagCamSettings
	tagClubColors
	tagDemolish
	tagDemolishFx
	tagEnum
	tagExplosion
	tagExtendedExplosion
	tagActiveActor
	tagFloat
	tagGameMode
	tagInt
	tagInt64
	tagLoadout
	tagTeamLoadout
	tagLocation
	tagMusicStinger
	tagPickup
	tagPickupNew
	tagPickupInfo
	tagPlayerHistoryKey
	tagQWord
	tagQWordString
	tagWelded
	tagRigidBody
	tagTitle
	tagTeamPaint
	tagString
	tagUniqueID
	tagReservation
	tagPartyLeader
	tagPrivateMatchSettings
	tagLoadoutOnline
	tagLoadoutsOnline
	tagStatEvent
	tagRotation
	tagRepStatTitle
	tagReplicatedBoost
	tagImpulse
)

var tagNames = map[attributeTag]string{
	tagNotImplemented:       "NotImplemented",
	tagBoolean:              "Boolean",
	tagByte:                 "Byte",
	tagAppliedDamage:        "AppliedDamage",
	tagDamageState:          "DamageState",
	tagCamSettings:          "CamSettings",
	tagClubColors:           "ClubColors",
	tagDemolish:             "Demolish",
	tagDemolishFx:           "DemolishFx",
	tagEnum:                 "Enum",
	tagExplosion:            "Explosion",
	tagExtendedExplosion:    "ExtendedExplosion",
	tagActiveActor:          "ActiveActor",
	tagFloat:                "Float",
	tagGameMode:             "GameMode",
	tagInt:                  "Int",
	tagInt64:                "Int64",
	tagLoadout:              "Loadout",
	tagTeamLoadout:          "TeamLoadout",
	tagLocation:             "Location",
	tagMusicStinger:         "MusicStinger",
	tagPickup:               "Pickup",
	tagPickupNew:            "PickupNew",
	tagPickupInfo:           "PickupInfo",
	tagPlayerHistoryKey:     "PlayerHistoryKey",
	tagQWord:                "QWord",
	tagQWordString:          "QWordString",
	tagWelded:               "Welded",
	tagRigidBody:            "RigidBody",
	tagTitle:                "Title",
	tagTeamPaint:            "TeamPaint",
	tagString:               "String",
	tagUniqueID:             "UniqueId",
	tagReservation:          "Reservation",
	tagPartyLeader:          "PartyLeader",
	tagPrivateMatchSettings: "PrivateMatchSettings",
	tagLoadoutOnline:        "LoadoutOnline",
	tagLoadoutsOnline:       "LoadoutsOnline",
	tagStatEvent:            "StatEvent",
	tagRotation:             "Rotation",
	tagRepStatTitle:         "RepStatTitle",
	tagReplicatedBoost:      "ReplicatedBoost",
	tagImpulse:              "Impulse",
}

func (t attributeTag) String() string { return tagNames[t] }

// versionTriplet threads the engine, licensee, and net versions through
// decoding so codecs can branch on patch-dependent encodings.
type versionTriplet struct {
	major int32
	minor int32
	net   int32
}

// ge is a lexicographic comparison against a literal triplet.
func (v versionTriplet) ge(major, minor, net int32) bool {
	if v.major != major {
		return v.major > major
	}
	if v.minor != minor {
		return v.minor > minor
	}
	return v.net >= net
}

// attributeDecoder decodes one attribute value per call, branching on the
// replay's version triplet where the game changed encodings.
type attributeDecoder struct {
	version versionTriplet
	product productDecoder

	// RL 2.23 changed GameServerID from a qword to a string.
	isRL223 bool
}

func (d *attributeDecoder) decode(tag attributeTag, r *bitReader) (Attribute, error) {
	switch tag {
	case tagBoolean:
		v, err := r.readBit()
		return Boolean(v), err
	case tagByte:
		v, err := r.readU8()
		return ByteAttr(v), err
	case tagAppliedDamage:
		return d.decodeAppliedDamage(r)
	case tagDamageState:
		return d.decodeDamageState(r)
	case tagCamSettings:
		return d.decodeCamSettings(r)
	case tagClubColors:
		return d.decodeClubColors(r)
	case tagDemolish:
		return d.decodeDemolish(r)
	case tagDemolishFx:
		return d.decodeDemolishFx(r)
	case tagEnum:
		v, err := r.readBits(11)
		return EnumAttr(v), err
	case tagExplosion:
		return d.decodeExplosion(r)
	case tagExtendedExplosion:
		return d.decodeExtendedExplosion(r)
	case tagActiveActor:
		return d.decodeActiveActor(r)
	case tagFloat:
		v, err := r.readF32()
		return FloatAttr(v), err
	case tagGameMode:
		return d.decodeGameMode(r)
	case tagInt:
		v, err := r.readI32()
		return IntAttr(v), err
	case tagInt64:
		v, err := r.readI64()
		return Int64Attr(v), err
	case tagLoadout:
		v, err := decodeLoadout(r)
		return v, err
	case tagTeamLoadout:
		return d.decodeTeamLoadout(r)
	case tagLocation:
		v, err := decodeVector3f(r, d.version.net)
		return LocationAttr(v), err
	case tagMusicStinger:
		return d.decodeMusicStinger(r)
	case tagPickup:
		return d.decodePickup(r)
	case tagPickupNew:
		return d.decodePickupNew(r)
	case tagPickupInfo:
		return d.decodePickupInfo(r)
	case tagPlayerHistoryKey:
		v, err := r.readBits(14)
		return PlayerHistoryKey(v), err
	case tagQWord:
		v, err := r.readU64()
		return QWordAttr(v), err
	case tagQWordString:
		if d.isRL223 {
			s, err := decodeNetText(r)
			return StringAttr(s), err
		}
		v, err := r.readU64()
		return QWordAttr(v), err
	case tagWelded:
		return d.decodeWelded(r)
	case tagRigidBody:
		return d.decodeRigidBody(r)
	case tagTitle:
		return d.decodeTitle(r)
	case tagTeamPaint:
		return d.decodeTeamPaint(r)
	case tagString:
		s, err := decodeNetText(r)
		return StringAttr(s), err
	case tagUniqueID:
		return decodeUniqueID(r, d.version.net)
	case tagReservation:
		return d.decodeReservation(r)
	case tagPartyLeader:
		return d.decodePartyLeader(r)
	case tagPrivateMatchSettings:
		return d.decodePrivateMatchSettings(r)
	case tagLoadoutOnline:
		v, err := d.decodeOnlineLoadout(r)
		return v, err
	case tagLoadoutsOnline:
		return d.decodeLoadoutsOnline(r)
	case tagStatEvent:
		return d.decodeStatEvent(r)
	case tagRotation:
		v, err := decodeRotation(r)
		return RotationAttr(v), err
	case tagRepStatTitle:
		return d.decodeRepStatTitle(r)
	case tagReplicatedBoost:
		return d.decodeReplicatedBoost(r)
	case tagImpulse:
		return d.decodeImpulse(r)
	}
	return nil, errUnimplementedAttribute
}

// errUnimplementedAttribute is mapped to UnrecognizedAttributeError (with
// the object path attached) by the frame decoder.
var errUnimplementedAttribute = &UnrecognizedAttributeError{}

func (d *attributeDecoder) decodeAppliedDamage(r *bitReader) (Attribute, error) {
	id, err := r.readU8()
	if err != nil {
		return nil, err
	}
	position, err := decodeVector3f(r, d.version.net)
	if err != nil {
		return nil, err
	}
	damageIndex, err := r.readI32()
	if err != nil {
		return nil, err
	}
	totalDamage, err := r.readI32()
	if err != nil {
		return nil, err
	}
	return AppliedDamage{ID: id, Position: position, DamageIndex: damageIndex, TotalDamage: totalDamage}, nil
}

func (d *attributeDecoder) decodeDamageState(r *bitReader) (Attribute, error) {
	tileState, err := r.readU8()
	if err != nil {
		return nil, err
	}
	damaged, err := r.readBit()
	if err != nil {
		return nil, err
	}
	offender, err := r.readI32()
	if err != nil {
		return nil, err
	}
	ballPosition, err := decodeVector3f(r, d.version.net)
	if err != nil {
		return nil, err
	}
	directHit, err := r.readBit()
	if err != nil {
		return nil, err
	}
	unknown1, err := r.readBit()
	if err != nil {
		return nil, err
	}
	return DamageState{
		TileState:    tileState,
		Damaged:      damaged,
		Offender:     ActorID(offender),
		BallPosition: ballPosition,
		DirectHit:    directHit,
		Unknown1:     unknown1,
	}, nil
}

func (d *attributeDecoder) decodeCamSettings(r *bitReader) (Attribute, error) {
	var s CamSettings
	for _, f := range []*float32{&s.Fov, &s.Height, &s.Angle, &s.Distance, &s.Stiffness, &s.Swivel} {
		v, err := r.readF32()
		if err != nil {
			return nil, err
		}
		*f = v
	}
	if d.version.ge(868, 20, 0) {
		v, err := r.readF32()
		if err != nil {
			return nil, err
		}
		s.Transition = &v
	}
	return &s, nil
}

func (d *attributeDecoder) decodeClubColors(r *bitReader) (Attribute, error) {
	blueFlag, err := r.readBit()
	if err != nil {
		return nil, err
	}
	blueColor, err := r.readU8()
	if err != nil {
		return nil, err
	}
	orangeFlag, err := r.readBit()
	if err != nil {
		return nil, err
	}
	orangeColor, err := r.readU8()
	if err != nil {
		return nil, err
	}
	return ClubColors{BlueFlag: blueFlag, BlueColor: blueColor, OrangeFlag: orangeFlag, OrangeColor: orangeColor}, nil
}

func (d *attributeDecoder) decodeDemolish(r *bitReader) (Attribute, error) {
	attackerFlag, err := r.readBit()
	if err != nil {
		return nil, err
	}
	attacker, err := r.readI32()
	if err != nil {
		return nil, err
	}
	victimFlag, err := r.readBit()
	if err != nil {
		return nil, err
	}
	victim, err := r.readI32()
	if err != nil {
		return nil, err
	}
	attackVelocity, err := decodeVector3f(r, d.version.net)
	if err != nil {
		return nil, err
	}
	victimVelocity, err := decodeVector3f(r, d.version.net)
	if err != nil {
		return nil, err
	}
	return &Demolish{
		AttackerFlag:   attackerFlag,
		Attacker:       ActorID(attacker),
		VictimFlag:     victimFlag,
		Victim:         ActorID(victim),
		AttackVelocity: attackVelocity,
		VictimVelocity: victimVelocity,
	}, nil
}

func (d *attributeDecoder) decodeDemolishFx(r *bitReader) (Attribute, error) {
	customDemoFlag, err := r.readBit()
	if err != nil {
		return nil, err
	}
	customDemoID, err := r.readI32()
	if err != nil {
		return nil, err
	}
	inner, err := d.decodeDemolish(r)
	if err != nil {
		return nil, err
	}
	dem := inner.(*Demolish)
	return &DemolishFx{
		CustomDemoFlag: customDemoFlag,
		CustomDemoID:   customDemoID,
		AttackerFlag:   dem.AttackerFlag,
		Attacker:       dem.Attacker,
		VictimFlag:     dem.VictimFlag,
		Victim:         dem.Victim,
		AttackVelocity: dem.AttackVelocity,
		VictimVelocity: dem.VictimVelocity,
	}, nil
}

func (d *attributeDecoder) decodeExplosion(r *bitReader) (Explosion, error) {
	flag, err := r.readBit()
	if err != nil {
		return Explosion{}, err
	}
	actor, err := r.readI32()
	if err != nil {
		return Explosion{}, err
	}
	location, err := decodeVector3f(r, d.version.net)
	if err != nil {
		return Explosion{}, err
	}
	return Explosion{Flag: flag, Actor: ActorID(actor), Location: location}, nil
}

func (d *attributeDecoder) decodeExtendedExplosion(r *bitReader) (Attribute, error) {
	explosion, err := d.decodeExplosion(r)
	if err != nil {
		return nil, err
	}
	unknown1, err := r.readBit()
	if err != nil {
		return nil, err
	}
	secondary, err := r.readI32()
	if err != nil {
		return nil, err
	}
	return ExtendedExplosion{Explosion: explosion, Unknown1: unknown1, SecondaryActor: ActorID(secondary)}, nil
}

func (d *attributeDecoder) decodeActiveActor(r *bitReader) (Attribute, error) {
	active, err := r.readBit()
	if err != nil {
		return nil, err
	}
	actor, err := r.readI32()
	if err != nil {
		return nil, err
	}
	return ActiveActor{Active: active, Actor: ActorID(actor)}, nil
}

func (d *attributeDecoder) decodeGameMode(r *bitReader) (Attribute, error) {
	bits := uint8(8)
	if !d.version.ge(868, 12, 0) {
		bits = 2
	}
	v, err := r.readBits(uint(bits))
	if err != nil {
		return nil, err
	}
	return GameMode{Bits: bits, Mode: uint8(v)}, nil
}

func (d *attributeDecoder) decodeTeamLoadout(r *bitReader) (Attribute, error) {
	blue, err := decodeLoadout(r)
	if err != nil {
		return nil, err
	}
	orange, err := decodeLoadout(r)
	if err != nil {
		return nil, err
	}
	return &TeamLoadout{Blue: *blue, Orange: *orange}, nil
}

func (d *attributeDecoder) decodeMusicStinger(r *bitReader) (Attribute, error) {
	flag, err := r.readBit()
	if err != nil {
		return nil, err
	}
	cue, err := r.readU32()
	if err != nil {
		return nil, err
	}
	trigger, err := r.readU8()
	if err != nil {
		return nil, err
	}
	return MusicStinger{Flag: flag, Cue: cue, Trigger: trigger}, nil
}

func (d *attributeDecoder) decodePickup(r *bitReader) (Attribute, error) {
	instigator, err := ifGet(r, (*bitReader).readI32)
	if err != nil {
		return nil, err
	}
	pickedUp, err := r.readBit()
	if err != nil {
		return nil, err
	}
	return Pickup{Instigator: (*ActorID)(instigator), PickedUp: pickedUp}, nil
}

func (d *attributeDecoder) decodePickupNew(r *bitReader) (Attribute, error) {
	instigator, err := ifGet(r, (*bitReader).readI32)
	if err != nil {
		return nil, err
	}
	pickedUp, err := r.readU8()
	if err != nil {
		return nil, err
	}
	return PickupNew{Instigator: (*ActorID)(instigator), PickedUp: pickedUp}, nil
}

func (d *attributeDecoder) decodePickupInfo(r *bitReader) (Attribute, error) {
	var p PickupInfo
	var err error
	if p.Active, err = r.readBit(); err != nil {
		return nil, err
	}
	actor, err := r.readI32()
	if err != nil {
		return nil, err
	}
	p.Actor = ActorID(actor)
	if p.ItemsArePreview, err = r.readBit(); err != nil {
		return nil, err
	}
	if p.Unknown, err = r.readBit(); err != nil {
		return nil, err
	}
	if p.Unknown2, err = r.readBit(); err != nil {
		return nil, err
	}
	return p, nil
}

func (d *attributeDecoder) decodeWelded(r *bitReader) (Attribute, error) {
	active, err := r.readBit()
	if err != nil {
		return nil, err
	}
	actor, err := r.readI32()
	if err != nil {
		return nil, err
	}
	offset, err := decodeVector3f(r, d.version.net)
	if err != nil {
		return nil, err
	}
	mass, err := r.readF32()
	if err != nil {
		return nil, err
	}
	rotation, err := decodeRotation(r)
	if err != nil {
		return nil, err
	}
	return Welded{Active: active, Actor: ActorID(actor), Offset: offset, Mass: mass, Rotation: rotation}, nil
}

func (d *attributeDecoder) decodeRigidBody(r *bitReader) (Attribute, error) {
	sleeping, err := r.readBit()
	if err != nil {
		return nil, err
	}
	location, err := decodeVector3f(r, d.version.net)
	if err != nil {
		return nil, err
	}
	var rotation Quaternion
	if d.version.net >= 7 {
		rotation, err = decodeQuaternion(r)
	} else {
		rotation, err = decodeQuaternionCompressed(r)
	}
	if err != nil {
		return nil, err
	}

	rb := RigidBody{Sleeping: sleeping, Location: location, Rotation: rotation}
	if !sleeping {
		lv, err := decodeVector3f(r, d.version.net)
		if err != nil {
			return nil, err
		}
		av, err := decodeVector3f(r, d.version.net)
		if err != nil {
			return nil, err
		}
		rb.LinearVelocity = &lv
		rb.AngularVelocity = &av
	}
	return rb, nil
}

func (d *attributeDecoder) decodeTitle(r *bitReader) (Attribute, error) {
	var t Title
	var err error
	if t.Unknown1, err = r.readBit(); err != nil {
		return nil, err
	}
	if t.Unknown2, err = r.readBit(); err != nil {
		return nil, err
	}
	for _, f := range []*uint32{&t.Unknown3, &t.Unknown4, &t.Unknown5, &t.Unknown6, &t.Unknown7} {
		v, err := r.readU32()
		if err != nil {
			return nil, err
		}
		*f = v
	}
	if t.Unknown8, err = r.readBit(); err != nil {
		return nil, err
	}
	return t, nil
}

func (d *attributeDecoder) decodeTeamPaint(r *bitReader) (Attribute, error) {
	var p TeamPaint
	var err error
	if p.Team, err = r.readU8(); err != nil {
		return nil, err
	}
	if p.PrimaryColor, err = r.readU8(); err != nil {
		return nil, err
	}
	if p.AccentColor, err = r.readU8(); err != nil {
		return nil, err
	}
	if p.PrimaryFinish, err = r.readU32(); err != nil {
		return nil, err
	}
	if p.AccentFinish, err = r.readU32(); err != nil {
		return nil, err
	}
	return p, nil
}

func (d *attributeDecoder) decodeReservation(r *bitReader) (Attribute, error) {
	number, err := r.readBits(3)
	if err != nil {
		return nil, err
	}
	unique, err := decodeUniqueID(r, d.version.net)
	if err != nil {
		return nil, err
	}
	res := Reservation{Number: uint32(number), UniqueID: *unique}
	if unique.SystemID != 0 {
		name, err := decodeNetText(r)
		if err != nil {
			return nil, err
		}
		res.Name = &name
	}
	if res.Unknown1, err = r.readBit(); err != nil {
		return nil, err
	}
	if res.Unknown2, err = r.readBit(); err != nil {
		return nil, err
	}
	if d.version.ge(868, 12, 0) {
		v, err := r.readBits(6)
		if err != nil {
			return nil, err
		}
		b := uint8(v)
		res.Unknown3 = &b
	}
	return &res, nil
}

func (d *attributeDecoder) decodePartyLeader(r *bitReader) (Attribute, error) {
	systemID, err := r.readU8()
	if err != nil {
		return nil, err
	}
	if systemID == 0 {
		return &PartyLeader{}, nil
	}
	id, err := decodeUniqueIDWithSystem(r, d.version.net, systemID)
	if err != nil {
		return nil, err
	}
	return &PartyLeader{ID: id}, nil
}

func (d *attributeDecoder) decodePrivateMatchSettings(r *bitReader) (Attribute, error) {
	var s PrivateMatchSettings
	var err error
	if s.Mutators, err = decodeNetText(r); err != nil {
		return nil, err
	}
	if s.JoinableBy, err = r.readU32(); err != nil {
		return nil, err
	}
	if s.MaxPlayers, err = r.readU32(); err != nil {
		return nil, err
	}
	if s.GameName, err = decodeNetText(r); err != nil {
		return nil, err
	}
	if s.Password, err = decodeNetText(r); err != nil {
		return nil, err
	}
	if s.Flag, err = r.readBit(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (d *attributeDecoder) decodeLoadoutsOnline(r *bitReader) (Attribute, error) {
	blue, err := d.decodeOnlineLoadout(r)
	if err != nil {
		return nil, err
	}
	orange, err := d.decodeOnlineLoadout(r)
	if err != nil {
		return nil, err
	}
	unknown1, err := r.readBit()
	if err != nil {
		return nil, err
	}
	unknown2, err := r.readBit()
	if err != nil {
		return nil, err
	}
	return &LoadoutsOnline{Blue: blue, Orange: orange, Unknown1: unknown1, Unknown2: unknown2}, nil
}

func (d *attributeDecoder) decodeOnlineLoadout(r *bitReader) (OnlineLoadout, error) {
	size, err := r.readU8()
	if err != nil {
		return nil, err
	}
	res := make(OnlineLoadout, 0, size)
	for i := 0; i < int(size); i++ {
		count, err := r.readU8()
		if err != nil {
			return nil, err
		}
		products := make([]Product, 0, count)
		for j := 0; j < int(count); j++ {
			p, err := d.decodeProduct(r)
			if err != nil {
				return nil, err
			}
			products = append(products, p)
		}
		res = append(res, products)
	}
	return res, nil
}

func (d *attributeDecoder) decodeProduct(r *bitReader) (Product, error) {
	unknown, err := r.readBit()
	if err != nil {
		return Product{}, err
	}
	objInd, err := r.readU32()
	if err != nil {
		return Product{}, err
	}
	value, err := d.product.decode(r, d.version, objInd)
	if err != nil {
		return Product{}, err
	}
	return Product{Unknown: unknown, ObjectInd: objInd, Value: value}, nil
}

func (d *attributeDecoder) decodeStatEvent(r *bitReader) (Attribute, error) {
	unknown1, err := r.readBit()
	if err != nil {
		return nil, err
	}
	objectID, err := r.readI32()
	if err != nil {
		return nil, err
	}
	return StatEvent{Unknown1: unknown1, ObjectID: objectID}, nil
}

func (d *attributeDecoder) decodeRepStatTitle(r *bitReader) (Attribute, error) {
	var t RepStatTitle
	var err error
	if t.Unknown, err = r.readBit(); err != nil {
		return nil, err
	}
	if t.Name, err = decodeNetText(r); err != nil {
		return nil, err
	}
	if t.Unknown2, err = r.readBit(); err != nil {
		return nil, err
	}
	if t.Index, err = r.readU32(); err != nil {
		return nil, err
	}
	if t.Value, err = r.readU32(); err != nil {
		return nil, err
	}
	return t, nil
}

func (d *attributeDecoder) decodeReplicatedBoost(r *bitReader) (Attribute, error) {
	var b ReplicatedBoost
	for _, f := range []*uint8{&b.GrantCount, &b.BoostAmount, &b.Unused1, &b.Unused2} {
		v, err := r.readU8()
		if err != nil {
			return nil, err
		}
		*f = v
	}
	return b, nil
}

func (d *attributeDecoder) decodeImpulse(r *bitReader) (Attribute, error) {
	compressedRotation, err := r.readI32()
	if err != nil {
		return nil, err
	}
	speed, err := r.readF32()
	if err != nil {
		return nil, err
	}
	return Impulse{CompressedRotation: compressedRotation, Speed: speed}, nil
}

// Network strings never legitimately exceed this many bytes.
const maxNetString = 4096

// decodeNetText reads a length-prefixed string from the bit stream. Unlike
// header strings, a zero length is fine here.
func decodeNetText(r *bitReader) (string, error) {
	size, err := r.readI32()
	if err != nil {
		return "", err
	}
	switch {
	case size == 0:
		return "", nil
	case size < 0:
		if size < -maxNetString/2 {
			return "", &StringTooLargeError{Size: size}
		}
		data, err := r.readBytes(int(size) * -2)
		if err != nil {
			return "", err
		}
		return decodeUTF16(data)
	default:
		if size > maxNetString {
			return "", &StringTooLargeError{Size: size}
		}
		data, err := r.readBytes(int(size))
		if err != nil {
			return "", err
		}
		return decodeWindows1252(data)
	}
}

// decodeLoadout reads the versioned offline loadout record.
func decodeLoadout(r *bitReader) (*Loadout, error) {
	version, err := r.readU8()
	if err != nil {
		return nil, err
	}
	l := Loadout{Version: version}
	for _, f := range []*uint32{&l.Body, &l.Decal, &l.Wheels, &l.RocketTrail, &l.Antenna, &l.Topper, &l.Unknown1} {
		v, err := r.readU32()
		if err != nil {
			return nil, err
		}
		*f = v
	}
	readSlot := func() (*uint32, error) {
		v, err := r.readU32()
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
	if version > 10 {
		if l.Unknown2, err = readSlot(); err != nil {
			return nil, err
		}
	}
	if version >= 16 {
		if l.EngineAudio, err = readSlot(); err != nil {
			return nil, err
		}
		if l.Trail, err = readSlot(); err != nil {
			return nil, err
		}
		if l.GoalExplosion, err = readSlot(); err != nil {
			return nil, err
		}
	}
	if version >= 17 {
		if l.Banner, err = readSlot(); err != nil {
			return nil, err
		}
	}
	if version >= 19 {
		if l.ProductID, err = readSlot(); err != nil {
			return nil, err
		}
	}
	if version >= 22 {
		for i := 0; i < 3; i++ {
			if _, err := r.readU32(); err != nil {
				return nil, err
			}
		}
	}
	return &l, nil
}

// productDecoder resolves which object ids carry which product attribute
// encodings for this replay. The ids vary per replay since they are plain
// indices into the object table.
type productDecoder struct {
	colorInd          uint32
	paintedInd        uint32
	titleInd          uint32
	specialEditionInd uint32
	teamEditionInd    uint32
}

func newProductDecoder(nameIndex map[string]ObjectID) productDecoder {
	lookup := func(name string) uint32 {
		if ind, ok := nameIndex[name]; ok {
			return uint32(ind)
		}
		return 0
	}
	return productDecoder{
		colorInd:          lookup("TAGame.ProductAttribute_UserColor_TA"),
		paintedInd:        lookup("TAGame.ProductAttribute_Painted_TA"),
		titleInd:          lookup("TAGame.ProductAttribute_TitleID_TA"),
		specialEditionInd: lookup("TAGame.ProductAttribute_SpecialEdition_TA"),
		teamEditionInd:    lookup("TAGame.ProductAttribute_TeamEdition_TA"),
	}
}

func (p productDecoder) decode(r *bitReader, version versionTriplet, objInd uint32) (ProductValue, error) {
	switch objInd {
	case p.colorInd:
		if version.ge(868, 23, 8) {
			v, err := r.readI32()
			if err != nil {
				return ProductValue{}, err
			}
			return ProductValue{Kind: ProductNewColor, Value: uint32(v)}, nil
		}
		set, err := r.readBit()
		if err != nil {
			return ProductValue{}, err
		}
		if !set {
			return ProductValue{Kind: ProductNoColor}, nil
		}
		v, err := r.readBits(31)
		if err != nil {
			return ProductValue{}, err
		}
		return ProductValue{Kind: ProductOldColor, Value: uint32(v)}, nil

	case p.paintedInd:
		if version.ge(868, 18, 0) {
			v, err := r.readBits(31)
			if err != nil {
				return ProductValue{}, err
			}
			return ProductValue{Kind: ProductNewPaint, Value: uint32(v)}, nil
		}
		v, err := r.readBitsMax(3, 14)
		if err != nil {
			return ProductValue{}, err
		}
		return ProductValue{Kind: ProductOldPaint, Value: uint32(v)}, nil

	case p.titleInd:
		title, err := decodeNetText(r)
		if err != nil {
			return ProductValue{}, err
		}
		return ProductValue{Kind: ProductTitle, Title: title}, nil

	case p.specialEditionInd:
		v, err := r.readBits(31)
		if err != nil {
			return ProductValue{}, err
		}
		return ProductValue{Kind: ProductSpecialEdition, Value: uint32(v)}, nil

	case p.teamEditionInd:
		if version.ge(868, 18, 0) {
			v, err := r.readBits(31)
			if err != nil {
				return ProductValue{}, err
			}
			return ProductValue{Kind: ProductNewTeamEdition, Value: uint32(v)}, nil
		}
		v, err := r.readBitsMax(3, 14)
		if err != nil {
			return ProductValue{}, err
		}
		return ProductValue{Kind: ProductOldTeamEdition, Value: uint32(v)}, nil
	}

	return ProductValue{Kind: ProductAbsent}, nil
}

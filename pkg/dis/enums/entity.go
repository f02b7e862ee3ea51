package enums

import "strconv"

// ForceID identifies the team an entity belongs to. [UID 6]
type ForceID uint8

const (
	ForceIDOther    ForceID = 0
	ForceIDFriendly ForceID = 1
	ForceIDOpposing ForceID = 2
	ForceIDNeutral  ForceID = 3
)

var forceIDs = func() catalog[ForceID] {
	names := map[ForceID]string{
		ForceIDOther:    "Other",
		ForceIDFriendly: "Friendly",
		ForceIDOpposing: "Opposing",
		ForceIDNeutral:  "Neutral",
	}
	// Values 4..30 repeat the three sides with a ranked suffix.
	sides := [...]string{"Friendly", "Opposing", "Neutral"}
	for v := 4; v <= 30; v++ {
		rank := (v-1)/3 + 1
		names[ForceID(v)] = sides[(v-1)%3] + " " + strconv.Itoa(rank)
	}
	return newCatalog("ForceID", ForceIDOther, names)
}()

// DecodeForceID maps a wire value, Other when unknown.
func DecodeForceID(raw uint8) ForceID { return forceIDs.decode(ForceID(raw)) }

func (f ForceID) String() string { return forceIDs.name(f) }

// MarshalText implements encoding.TextMarshaler.
func (f ForceID) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// EntityKind is the first field of an entity type. [UID 7]
type EntityKind uint8

const (
	EntityKindOther           EntityKind = 0
	EntityKindPlatform        EntityKind = 1
	EntityKindMunition        EntityKind = 2
	EntityKindLifeForm        EntityKind = 3
	EntityKindEnvironmental   EntityKind = 4
	EntityKindCulturalFeature EntityKind = 5
	EntityKindSupply          EntityKind = 6
	EntityKindRadio           EntityKind = 7
	EntityKindExpendable      EntityKind = 8
	EntityKindSensorEmitter   EntityKind = 9
)

var entityKinds = newCatalog("EntityKind", EntityKindOther, map[EntityKind]string{
	EntityKindOther:           "Other",
	EntityKindPlatform:        "Platform",
	EntityKindMunition:        "Munition",
	EntityKindLifeForm:        "Life form",
	EntityKindEnvironmental:   "Environmental",
	EntityKindCulturalFeature: "Cultural feature",
	EntityKindSupply:          "Supply",
	EntityKindRadio:           "Radio",
	EntityKindExpendable:      "Expendable",
	EntityKindSensorEmitter:   "Sensor/Emitter",
})

// DecodeEntityKind maps a wire value, Other when unknown.
func DecodeEntityKind(raw uint8) EntityKind { return entityKinds.decode(EntityKind(raw)) }

func (k EntityKind) String() string { return entityKinds.name(k) }

// MarshalText implements encoding.TextMarshaler.
func (k EntityKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// PlatformDomain is the domain field of a platform entity type. [UID 8]
type PlatformDomain uint8

const (
	PlatformDomainOther      PlatformDomain = 0
	PlatformDomainLand       PlatformDomain = 1
	PlatformDomainAir        PlatformDomain = 2
	PlatformDomainSurface    PlatformDomain = 3
	PlatformDomainSubsurface PlatformDomain = 4
	PlatformDomainSpace      PlatformDomain = 5
)

var platformDomains = newCatalog("PlatformDomain", PlatformDomainOther, map[PlatformDomain]string{
	PlatformDomainOther:      "Other",
	PlatformDomainLand:       "Land",
	PlatformDomainAir:        "Air",
	PlatformDomainSurface:    "Surface",
	PlatformDomainSubsurface: "Subsurface",
	PlatformDomainSpace:      "Space",
})

// DecodePlatformDomain maps a wire value, Other when unknown.
func DecodePlatformDomain(raw uint8) PlatformDomain {
	return platformDomains.decode(PlatformDomain(raw))
}

func (d PlatformDomain) String() string { return platformDomains.name(d) }

// MarshalText implements encoding.TextMarshaler.
func (d PlatformDomain) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// Country is the country field of an entity type. [UID 29]
//
// Only a handful of countries are named; every other code still round-trips
// through the EntityType record, which stores the raw value.
type Country uint16

const (
	CountryOther         Country = 0
	CountryAustralia     Country = 13
	CountryCanada        Country = 39
	CountryFrance        Country = 71
	CountryGermany       Country = 78
	CountryItaly         Country = 106
	CountryNetherlands   Country = 153
	CountryNorway        Country = 158
	CountrySpain         Country = 198
	CountryUnitedKingdom Country = 224
	CountryUnitedStates  Country = 225
)

var countries = newCatalog("Country", CountryOther, map[Country]string{
	CountryOther:         "Other",
	CountryAustralia:     "Australia",
	CountryCanada:        "Canada",
	CountryFrance:        "France",
	CountryGermany:       "Germany",
	CountryItaly:         "Italy",
	CountryNetherlands:   "Netherlands",
	CountryNorway:        "Norway",
	CountrySpain:         "Spain",
	CountryUnitedKingdom: "United Kingdom of Great Britain and Northern Ireland",
	CountryUnitedStates:  "United States of America (USA)",
})

// DecodeCountry maps a wire value, Other when unknown.
func DecodeCountry(raw uint16) Country { return countries.decode(Country(raw)) }

func (c Country) String() string { return countries.name(c) }

// MarshalText implements encoding.TextMarshaler.
func (c Country) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// DeadReckoningAlgorithm selects the motion extrapolation model. [UID 44]
type DeadReckoningAlgorithm uint8

const (
	DeadReckoningOther  DeadReckoningAlgorithm = 0
	DeadReckoningStatic DeadReckoningAlgorithm = 1
	DeadReckoningDRMFPW DeadReckoningAlgorithm = 2
	DeadReckoningDRMRPW DeadReckoningAlgorithm = 3
	DeadReckoningDRMRVW DeadReckoningAlgorithm = 4
	DeadReckoningDRMFVW DeadReckoningAlgorithm = 5
	DeadReckoningDRMFPB DeadReckoningAlgorithm = 6
	DeadReckoningDRMRPB DeadReckoningAlgorithm = 7
	DeadReckoningDRMRVB DeadReckoningAlgorithm = 8
	DeadReckoningDRMFVB DeadReckoningAlgorithm = 9
)

var deadReckoningAlgorithms = newCatalog("DeadReckoningAlgorithm", DeadReckoningOther, map[DeadReckoningAlgorithm]string{
	DeadReckoningOther:  "Other",
	DeadReckoningStatic: "Static (Entity does not move.)",
	DeadReckoningDRMFPW: "DRM (F, P, W)",
	DeadReckoningDRMRPW: "DRM (R, P, W)",
	DeadReckoningDRMRVW: "DRM (R, V, W)",
	DeadReckoningDRMFVW: "DRM (F, V, W)",
	DeadReckoningDRMFPB: "DRM (F, P, B)",
	DeadReckoningDRMRPB: "DRM (R, P, B)",
	DeadReckoningDRMRVB: "DRM (R, V, B)",
	DeadReckoningDRMFVB: "DRM (F, V, B)",
})

// DecodeDeadReckoningAlgorithm maps a wire value, Other when unknown.
func DecodeDeadReckoningAlgorithm(raw uint8) DeadReckoningAlgorithm {
	return deadReckoningAlgorithms.decode(DeadReckoningAlgorithm(raw))
}

func (a DeadReckoningAlgorithm) String() string { return deadReckoningAlgorithms.name(a) }

// MarshalText implements encoding.TextMarshaler.
func (a DeadReckoningAlgorithm) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// EntityMarkingCharacterSet selects how the marking characters are read. [UID 45]
type EntityMarkingCharacterSet uint8

const (
	MarkingUnused       EntityMarkingCharacterSet = 0
	MarkingASCII        EntityMarkingCharacterSet = 1
	MarkingArmyMarking  EntityMarkingCharacterSet = 2
	MarkingDigitChevron EntityMarkingCharacterSet = 3
)

var markingCharacterSets = newCatalog("EntityMarkingCharacterSet", MarkingUnused, map[EntityMarkingCharacterSet]string{
	MarkingUnused:       "Unused",
	MarkingASCII:        "ASCII",
	MarkingArmyMarking:  "U.S. Army Marking (CCTT)",
	MarkingDigitChevron: "Digit Chevron",
})

// DecodeEntityMarkingCharacterSet maps a wire value, Unused when unknown.
func DecodeEntityMarkingCharacterSet(raw uint8) EntityMarkingCharacterSet {
	return markingCharacterSets.decode(EntityMarkingCharacterSet(raw))
}

func (c EntityMarkingCharacterSet) String() string { return markingCharacterSets.name(c) }

// MarshalText implements encoding.TextMarshaler.
func (c EntityMarkingCharacterSet) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// VariableParameterRecordType discriminates the 16-byte variable parameter
// records attached to entity state and detonation PDUs. [UID 56]
type VariableParameterRecordType uint8

const (
	VariableParameterArticulatedPart   VariableParameterRecordType = 0
	VariableParameterAttachedPart      VariableParameterRecordType = 1
	VariableParameterSeparation        VariableParameterRecordType = 2
	VariableParameterEntityType        VariableParameterRecordType = 3
	VariableParameterEntityAssociation VariableParameterRecordType = 4
)

var variableParameterRecordTypes = newCatalog("VariableParameterRecordType", VariableParameterArticulatedPart, map[VariableParameterRecordType]string{
	VariableParameterArticulatedPart:   "Articulated Part",
	VariableParameterAttachedPart:      "Attached Part",
	VariableParameterSeparation:        "Separation",
	VariableParameterEntityType:        "Entity Type",
	VariableParameterEntityAssociation: "Entity Association",
})

// DecodeVariableParameterRecordType maps a wire value, ArticulatedPart when unknown.
func DecodeVariableParameterRecordType(raw uint8) VariableParameterRecordType {
	return variableParameterRecordTypes.decode(VariableParameterRecordType(raw))
}

// Known reports whether t is listed in the catalog.
func (t VariableParameterRecordType) Known() bool { return variableParameterRecordTypes.known(t) }

func (t VariableParameterRecordType) String() string { return variableParameterRecordTypes.name(t) }

// MarshalText implements encoding.TextMarshaler.
func (t VariableParameterRecordType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// CollisionType distinguishes elastic and inelastic collisions. [UID 189]
type CollisionType uint8

const (
	CollisionInelastic         CollisionType = 0
	CollisionElastic           CollisionType = 1
	CollisionBoomNozzleCleared CollisionType = 55
)

var collisionTypes = newCatalog("CollisionType", CollisionInelastic, map[CollisionType]string{
	CollisionInelastic:         "Inelastic",
	CollisionElastic:           "Elastic",
	CollisionBoomNozzleCleared: "Boom Nozzle Has Cleared the Receiver's Refueling Receptacle",
})

// DecodeCollisionType maps a wire value, Inelastic when unknown.
func DecodeCollisionType(raw uint8) CollisionType { return collisionTypes.decode(CollisionType(raw)) }

func (c CollisionType) String() string { return collisionTypes.name(c) }

// MarshalText implements encoding.TextMarshaler.
func (c CollisionType) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

package enums

// DetonationResult describes the outcome of a detonation. [UID 62]
type DetonationResult uint8

const (
	DetonationResultOther                     DetonationResult = 0
	DetonationResultEntityImpact              DetonationResult = 1
	DetonationResultEntityProximateDetonation DetonationResult = 2
	DetonationResultGroundImpact              DetonationResult = 3
	DetonationResultGroundProximateDetonation DetonationResult = 4
	DetonationResultDetonation                DetonationResult = 5
	DetonationResultNoneOrDud                 DetonationResult = 6
	DetonationResultHEHitSmall                DetonationResult = 7
	DetonationResultHEHitMedium               DetonationResult = 8
	DetonationResultHEHitLarge                DetonationResult = 9
	DetonationResultArmorPiercingHit          DetonationResult = 10
	DetonationResultDirtBlastSmall            DetonationResult = 11
	DetonationResultDirtBlastMedium           DetonationResult = 12
	DetonationResultDirtBlastLarge            DetonationResult = 13
	DetonationResultWaterBlastSmall           DetonationResult = 14
	DetonationResultWaterBlastMedium          DetonationResult = 15
	DetonationResultWaterBlastLarge           DetonationResult = 16
	DetonationResultAirHit                    DetonationResult = 17
)

var detonationResults = newCatalog("DetonationResult", DetonationResultOther, map[DetonationResult]string{
	DetonationResultOther:                     "Other",
	DetonationResultEntityImpact:              "Entity Impact",
	DetonationResultEntityProximateDetonation: "Entity Proximate Detonation",
	DetonationResultGroundImpact:              "Ground Impact",
	DetonationResultGroundProximateDetonation: "Ground Proximate Detonation",
	DetonationResultDetonation:                "Detonation",
	DetonationResultNoneOrDud:                 "None or No Detonation (Dud)",
	DetonationResultHEHitSmall:                "HE hit, small",
	DetonationResultHEHitMedium:               "HE hit, medium",
	DetonationResultHEHitLarge:                "HE hit, large",
	DetonationResultArmorPiercingHit:          "Armor-piercing hit",
	DetonationResultDirtBlastSmall:            "Dirt blast, small",
	DetonationResultDirtBlastMedium:           "Dirt blast, medium",
	DetonationResultDirtBlastLarge:            "Dirt blast, large",
	DetonationResultWaterBlastSmall:           "Water blast, small",
	DetonationResultWaterBlastMedium:          "Water blast, medium",
	DetonationResultWaterBlastLarge:           "Water blast, large",
	DetonationResultAirHit:                    "Air hit",
})

// DecodeDetonationResult maps a wire value, Other when unknown.
func DecodeDetonationResult(raw uint8) DetonationResult {
	return detonationResults.decode(DetonationResult(raw))
}

func (d DetonationResult) String() string { return detonationResults.name(d) }

// MarshalText implements encoding.TextMarshaler.
func (d DetonationResult) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

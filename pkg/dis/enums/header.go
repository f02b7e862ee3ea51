package enums

// ProtocolVersion is the DIS protocol version carried in every header. [UID 3]
type ProtocolVersion uint8

const (
	ProtocolVersionOther               ProtocolVersion = 0
	ProtocolVersionDISPDUv1            ProtocolVersion = 1
	ProtocolVersionIEEE1278_1993       ProtocolVersion = 2
	ProtocolVersionDISPDUv2ThirdDraft  ProtocolVersion = 3
	ProtocolVersionDISPDUv2FourthDraft ProtocolVersion = 4
	ProtocolVersionIEEE1278_1_1995     ProtocolVersion = 5
	ProtocolVersionIEEE1278_1A_1998    ProtocolVersion = 6
	ProtocolVersionIEEE1278_1_2012     ProtocolVersion = 7
)

var protocolVersions = newCatalog("ProtocolVersion", ProtocolVersionOther, map[ProtocolVersion]string{
	ProtocolVersionOther:               "Other",
	ProtocolVersionDISPDUv1:            "DIS PDU version 1.0 (May 92)",
	ProtocolVersionIEEE1278_1993:       "IEEE 1278-1993",
	ProtocolVersionDISPDUv2ThirdDraft:  "DIS Applications Version 2.0 - Third Draft (May 1993)",
	ProtocolVersionDISPDUv2FourthDraft: "DIS Application Protocols Version 2.0 - Fourth Draft (Revised) (March 16, 1994)",
	ProtocolVersionIEEE1278_1_1995:     "IEEE 1278.1-1995",
	ProtocolVersionIEEE1278_1A_1998:    "IEEE 1278.1A-1998",
	ProtocolVersionIEEE1278_1_2012:     "IEEE 1278.1-2012",
})

// DecodeProtocolVersion maps a wire value, Other when unknown.
func DecodeProtocolVersion(raw uint8) ProtocolVersion {
	return protocolVersions.decode(ProtocolVersion(raw))
}

// Known reports whether v is listed in the catalog.
func (v ProtocolVersion) Known() bool { return protocolVersions.known(v) }

func (v ProtocolVersion) String() string { return protocolVersions.name(v) }

// MarshalText implements encoding.TextMarshaler.
func (v ProtocolVersion) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// PDUType selects the body layout of a PDU. [UID 4]
type PDUType uint8

const (
	PDUTypeOther                       PDUType = 0
	PDUTypeEntityState                 PDUType = 1
	PDUTypeFire                        PDUType = 2
	PDUTypeDetonation                  PDUType = 3
	PDUTypeCollision                   PDUType = 4
	PDUTypeServiceRequest              PDUType = 5
	PDUTypeResupplyOffer               PDUType = 6
	PDUTypeResupplyReceived            PDUType = 7
	PDUTypeResupplyCancel              PDUType = 8
	PDUTypeRepairComplete              PDUType = 9
	PDUTypeRepairResponse              PDUType = 10
	PDUTypeCreateEntity                PDUType = 11
	PDUTypeRemoveEntity                PDUType = 12
	PDUTypeStartResume                 PDUType = 13
	PDUTypeStopFreeze                  PDUType = 14
	PDUTypeAcknowledge                 PDUType = 15
	PDUTypeActionRequest               PDUType = 16
	PDUTypeActionResponse              PDUType = 17
	PDUTypeDataQuery                   PDUType = 18
	PDUTypeSetData                     PDUType = 19
	PDUTypeData                        PDUType = 20
	PDUTypeEventReport                 PDUType = 21
	PDUTypeComment                     PDUType = 22
	PDUTypeElectromagneticEmission     PDUType = 23
	PDUTypeDesignator                  PDUType = 24
	PDUTypeTransmitter                 PDUType = 25
	PDUTypeSignal                      PDUType = 26
	PDUTypeReceiver                    PDUType = 27
	PDUTypeIFF                         PDUType = 28
	PDUTypeUnderwaterAcoustic          PDUType = 29
	PDUTypeSupplementalEmission        PDUType = 30
	PDUTypeIntercomSignal              PDUType = 31
	PDUTypeIntercomControl             PDUType = 32
	PDUTypeAggregateState              PDUType = 33
	PDUTypeIsGroupOf                   PDUType = 34
	PDUTypeTransferOwnership           PDUType = 35
	PDUTypeIsPartOf                    PDUType = 36
	PDUTypeMinefieldState              PDUType = 37
	PDUTypeMinefieldQuery              PDUType = 38
	PDUTypeMinefieldData               PDUType = 39
	PDUTypeMinefieldResponseNACK       PDUType = 40
	PDUTypeEnvironmentalProcess        PDUType = 41
	PDUTypeGriddedData                 PDUType = 42
	PDUTypePointObjectState            PDUType = 43
	PDUTypeLinearObjectState           PDUType = 44
	PDUTypeArealObjectState            PDUType = 45
	PDUTypeTSPI                        PDUType = 46
	PDUTypeAppearance                  PDUType = 47
	PDUTypeArticulatedParts            PDUType = 48
	PDUTypeLEFire                      PDUType = 49
	PDUTypeLEDetonation                PDUType = 50
	PDUTypeCreateEntityReliable        PDUType = 51
	PDUTypeRemoveEntityReliable        PDUType = 52
	PDUTypeStartResumeReliable         PDUType = 53
	PDUTypeStopFreezeReliable          PDUType = 54
	PDUTypeAcknowledgeReliable         PDUType = 55
	PDUTypeActionRequestReliable       PDUType = 56
	PDUTypeActionResponseReliable      PDUType = 57
	PDUTypeDataQueryReliable           PDUType = 58
	PDUTypeSetDataReliable             PDUType = 59
	PDUTypeDataReliable                PDUType = 60
	PDUTypeEventReportReliable         PDUType = 61
	PDUTypeCommentReliable             PDUType = 62
	PDUTypeRecordReliable              PDUType = 63
	PDUTypeSetRecordReliable           PDUType = 64
	PDUTypeRecordQueryReliable         PDUType = 65
	PDUTypeCollisionElastic            PDUType = 66
	PDUTypeEntityStateUpdate           PDUType = 67
	PDUTypeDirectedEnergyFire          PDUType = 68
	PDUTypeEntityDamageStatus          PDUType = 69
	PDUTypeInformationOperationsAction PDUType = 70
	PDUTypeInformationOperationsReport PDUType = 71
	PDUTypeAttribute                   PDUType = 72
)

var pduTypes = newCatalog("PDUType", PDUTypeOther, map[PDUType]string{
	PDUTypeOther:                       "Other",
	PDUTypeEntityState:                 "Entity State",
	PDUTypeFire:                        "Fire",
	PDUTypeDetonation:                  "Detonation",
	PDUTypeCollision:                   "Collision",
	PDUTypeServiceRequest:              "Service Request",
	PDUTypeResupplyOffer:               "Resupply Offer",
	PDUTypeResupplyReceived:            "Resupply Received",
	PDUTypeResupplyCancel:              "Resupply Cancel",
	PDUTypeRepairComplete:              "Repair Complete",
	PDUTypeRepairResponse:              "Repair Response",
	PDUTypeCreateEntity:                "Create Entity",
	PDUTypeRemoveEntity:                "Remove Entity",
	PDUTypeStartResume:                 "Start/Resume",
	PDUTypeStopFreeze:                  "Stop/Freeze",
	PDUTypeAcknowledge:                 "Acknowledge",
	PDUTypeActionRequest:               "Action Request",
	PDUTypeActionResponse:              "Action Response",
	PDUTypeDataQuery:                   "Data Query",
	PDUTypeSetData:                     "Set Data",
	PDUTypeData:                        "Data",
	PDUTypeEventReport:                 "Event Report",
	PDUTypeComment:                     "Comment",
	PDUTypeElectromagneticEmission:     "Electromagnetic Emission",
	PDUTypeDesignator:                  "Designator",
	PDUTypeTransmitter:                 "Transmitter",
	PDUTypeSignal:                      "Signal",
	PDUTypeReceiver:                    "Receiver",
	PDUTypeIFF:                         "IFF",
	PDUTypeUnderwaterAcoustic:          "Underwater Acoustic",
	PDUTypeSupplementalEmission:        "Supplemental Emission / Entity State",
	PDUTypeIntercomSignal:              "Intercom Signal",
	PDUTypeIntercomControl:             "Intercom Control",
	PDUTypeAggregateState:              "Aggregate State",
	PDUTypeIsGroupOf:                   "IsGroupOf",
	PDUTypeTransferOwnership:           "Transfer Ownership",
	PDUTypeIsPartOf:                    "IsPartOf",
	PDUTypeMinefieldState:              "Minefield State",
	PDUTypeMinefieldQuery:              "Minefield Query",
	PDUTypeMinefieldData:               "Minefield Data",
	PDUTypeMinefieldResponseNACK:       "Minefield Response NACK",
	PDUTypeEnvironmentalProcess:        "Environmental Process",
	PDUTypeGriddedData:                 "Gridded Data",
	PDUTypePointObjectState:            "Point Object State",
	PDUTypeLinearObjectState:           "Linear Object State",
	PDUTypeArealObjectState:            "Areal Object State",
	PDUTypeTSPI:                        "TSPI",
	PDUTypeAppearance:                  "Appearance",
	PDUTypeArticulatedParts:            "Articulated Parts",
	PDUTypeLEFire:                      "LE Fire",
	PDUTypeLEDetonation:                "LE Detonation",
	PDUTypeCreateEntityReliable:        "Create Entity-R",
	PDUTypeRemoveEntityReliable:        "Remove Entity-R",
	PDUTypeStartResumeReliable:         "Start/Resume-R",
	PDUTypeStopFreezeReliable:          "Stop/Freeze-R",
	PDUTypeAcknowledgeReliable:         "Acknowledge-R",
	PDUTypeActionRequestReliable:       "Action Request-R",
	PDUTypeActionResponseReliable:      "Action Response-R",
	PDUTypeDataQueryReliable:           "Data Query-R",
	PDUTypeSetDataReliable:             "Set Data-R",
	PDUTypeDataReliable:                "Data-R",
	PDUTypeEventReportReliable:         "Event Report-R",
	PDUTypeCommentReliable:             "Comment-R",
	PDUTypeRecordReliable:              "Record-R",
	PDUTypeSetRecordReliable:           "Set Record-R",
	PDUTypeRecordQueryReliable:         "Record Query-R",
	PDUTypeCollisionElastic:            "Collision-Elastic",
	PDUTypeEntityStateUpdate:           "Entity State Update",
	PDUTypeDirectedEnergyFire:          "Directed Energy Fire",
	PDUTypeEntityDamageStatus:          "Entity Damage Status",
	PDUTypeInformationOperationsAction: "Information Operations Action",
	PDUTypeInformationOperationsReport: "Information Operations Report",
	PDUTypeAttribute:                   "Attribute",
})

// DecodePDUType maps a wire value, Other when unknown.
func DecodePDUType(raw uint8) PDUType { return pduTypes.decode(PDUType(raw)) }

// Known reports whether t is listed in the catalog.
func (t PDUType) Known() bool { return pduTypes.known(t) }

func (t PDUType) String() string { return pduTypes.name(t) }

// MarshalText implements encoding.TextMarshaler.
func (t PDUType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// ProtocolFamily groups PDU types. [UID 5]
type ProtocolFamily uint8

const (
	ProtocolFamilyOther                               ProtocolFamily = 0
	ProtocolFamilyEntityInformation                   ProtocolFamily = 1
	ProtocolFamilyWarfare                             ProtocolFamily = 2
	ProtocolFamilyLogistics                           ProtocolFamily = 3
	ProtocolFamilyRadioCommunications                 ProtocolFamily = 4
	ProtocolFamilySimulationManagement                ProtocolFamily = 5
	ProtocolFamilyDistributedEmissionRegeneration     ProtocolFamily = 6
	ProtocolFamilyEntityManagement                    ProtocolFamily = 7
	ProtocolFamilyMinefield                           ProtocolFamily = 8
	ProtocolFamilySyntheticEnvironment                ProtocolFamily = 9
	ProtocolFamilySimulationManagementWithReliability ProtocolFamily = 10
	ProtocolFamilyLiveEntityInformationInteraction    ProtocolFamily = 11
	ProtocolFamilyNonRealTime                         ProtocolFamily = 12
	ProtocolFamilyInformationOperations               ProtocolFamily = 13
)

var protocolFamilies = newCatalog("ProtocolFamily", ProtocolFamilyOther, map[ProtocolFamily]string{
	ProtocolFamilyOther:                               "Other",
	ProtocolFamilyEntityInformation:                   "Entity Information/Interaction",
	ProtocolFamilyWarfare:                             "Warfare",
	ProtocolFamilyLogistics:                           "Logistics",
	ProtocolFamilyRadioCommunications:                 "Radio Communications",
	ProtocolFamilySimulationManagement:                "Simulation Management",
	ProtocolFamilyDistributedEmissionRegeneration:     "Distributed Emission Regeneration",
	ProtocolFamilyEntityManagement:                    "Entity Management",
	ProtocolFamilyMinefield:                           "Minefield",
	ProtocolFamilySyntheticEnvironment:                "Synthetic Environment",
	ProtocolFamilySimulationManagementWithReliability: "Simulation Management with Reliability",
	ProtocolFamilyLiveEntityInformationInteraction:    "Live Entity (LE) Information/Interaction",
	ProtocolFamilyNonRealTime:                         "Non-Real-Time Protocol",
	ProtocolFamilyInformationOperations:               "Information Operations",
})

// DecodeProtocolFamily maps a wire value, Other when unknown.
func DecodeProtocolFamily(raw uint8) ProtocolFamily {
	return protocolFamilies.decode(ProtocolFamily(raw))
}

// Known reports whether f is listed in the catalog.
func (f ProtocolFamily) Known() bool { return protocolFamilies.known(f) }

func (f ProtocolFamily) String() string { return protocolFamilies.name(f) }

// MarshalText implements encoding.TextMarshaler.
func (f ProtocolFamily) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

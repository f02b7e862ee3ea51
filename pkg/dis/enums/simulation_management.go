package enums

// StopFreezeReason explains why a simulation was stopped. [UID 67]
type StopFreezeReason uint8

const (
	StopFreezeOther                                   StopFreezeReason = 0
	StopFreezeRecess                                  StopFreezeReason = 1
	StopFreezeTermination                             StopFreezeReason = 2
	StopFreezeSystemFailure                           StopFreezeReason = 3
	StopFreezeSecurityViolation                       StopFreezeReason = 4
	StopFreezeEntityReconstitution                    StopFreezeReason = 5
	StopFreezeStopForReset                            StopFreezeReason = 6
	StopFreezeStopForRestart                          StopFreezeReason = 7
	StopFreezeAbortTrainingReturnToTacticalOperations StopFreezeReason = 8
)

var stopFreezeReasons = newCatalog("StopFreezeReason", StopFreezeOther, map[StopFreezeReason]string{
	StopFreezeOther:                                   "Other",
	StopFreezeRecess:                                  "Recess",
	StopFreezeTermination:                             "Termination",
	StopFreezeSystemFailure:                           "System Failure",
	StopFreezeSecurityViolation:                       "Security Violation",
	StopFreezeEntityReconstitution:                    "Entity Reconstitution",
	StopFreezeStopForReset:                            "Stop for reset",
	StopFreezeStopForRestart:                          "Stop for restart",
	StopFreezeAbortTrainingReturnToTacticalOperations: "Abort Training Return to Tactical Operations",
})

// DecodeStopFreezeReason maps a wire value, Other when unknown.
func DecodeStopFreezeReason(raw uint8) StopFreezeReason {
	return stopFreezeReasons.decode(StopFreezeReason(raw))
}

func (r StopFreezeReason) String() string { return stopFreezeReasons.name(r) }

// MarshalText implements encoding.TextMarshaler.
func (r StopFreezeReason) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// AcknowledgeFlag names the request an Acknowledge PDU answers. [UID 69]
type AcknowledgeFlag uint16

const (
	AcknowledgeOther             AcknowledgeFlag = 0
	AcknowledgeCreateEntity      AcknowledgeFlag = 1
	AcknowledgeRemoveEntity      AcknowledgeFlag = 2
	AcknowledgeStartResume       AcknowledgeFlag = 3
	AcknowledgeStopFreeze        AcknowledgeFlag = 4
	AcknowledgeTransferOwnership AcknowledgeFlag = 5
)

var acknowledgeFlags = newCatalog("AcknowledgeFlag", AcknowledgeOther, map[AcknowledgeFlag]string{
	AcknowledgeOther:             "Other",
	AcknowledgeCreateEntity:      "Create Entity",
	AcknowledgeRemoveEntity:      "Remove Entity",
	AcknowledgeStartResume:       "Start/Resume",
	AcknowledgeStopFreeze:        "Stop/Freeze",
	AcknowledgeTransferOwnership: "Transfer Ownership",
})

// DecodeAcknowledgeFlag maps a wire value, Other when unknown.
func DecodeAcknowledgeFlag(raw uint16) AcknowledgeFlag {
	return acknowledgeFlags.decode(AcknowledgeFlag(raw))
}

func (f AcknowledgeFlag) String() string { return acknowledgeFlags.name(f) }

// MarshalText implements encoding.TextMarshaler.
func (f AcknowledgeFlag) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// AcknowledgeResponseFlag reports whether the receiver complied. [UID 70]
type AcknowledgeResponseFlag uint16

const (
	ResponseOther                 AcknowledgeResponseFlag = 0
	ResponseAbleToComply          AcknowledgeResponseFlag = 1
	ResponseUnableToComply        AcknowledgeResponseFlag = 2
	ResponsePendingOperatorAction AcknowledgeResponseFlag = 3
)

var acknowledgeResponseFlags = newCatalog("AcknowledgeResponseFlag", ResponseOther, map[AcknowledgeResponseFlag]string{
	ResponseOther:                 "Other",
	ResponseAbleToComply:          "Able to comply",
	ResponseUnableToComply:        "Unable to comply",
	ResponsePendingOperatorAction: "Pending Operator Action",
})

// DecodeAcknowledgeResponseFlag maps a wire value, Other when unknown.
func DecodeAcknowledgeResponseFlag(raw uint16) AcknowledgeResponseFlag {
	return acknowledgeResponseFlags.decode(AcknowledgeResponseFlag(raw))
}

func (f AcknowledgeResponseFlag) String() string { return acknowledgeResponseFlags.name(f) }

// MarshalText implements encoding.TextMarshaler.
func (f AcknowledgeResponseFlag) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// RequestStatus is the status carried by an Action Response PDU. [UID 72]
type RequestStatus uint32

const (
	RequestStatusOther                       RequestStatus = 0
	RequestStatusPending                     RequestStatus = 1
	RequestStatusExecuting                   RequestStatus = 2
	RequestStatusPartiallyComplete           RequestStatus = 3
	RequestStatusComplete                    RequestStatus = 4
	RequestStatusRequestRejected             RequestStatus = 5
	RequestStatusRetransmitRequestNow        RequestStatus = 6
	RequestStatusRetransmitRequestLater      RequestStatus = 7
	RequestStatusInvalidTimeParameters       RequestStatus = 8
	RequestStatusSimulationTimeExceeded      RequestStatus = 9
	RequestStatusRequestDone                 RequestStatus = 10
	RequestStatusTACCSFLOSReplyTypeOne       RequestStatus = 100
	RequestStatusTACCSFLOSReplyTypeTwo       RequestStatus = 101
	RequestStatusJoinExerciseRequestRejected RequestStatus = 201
)

var requestStatuses = newCatalog("RequestStatus", RequestStatusOther, map[RequestStatus]string{
	RequestStatusOther:                       "Other",
	RequestStatusPending:                     "Pending",
	RequestStatusExecuting:                   "Executing",
	RequestStatusPartiallyComplete:           "Partially Complete",
	RequestStatusComplete:                    "Complete",
	RequestStatusRequestRejected:             "Request Rejected",
	RequestStatusRetransmitRequestNow:        "Retransmit Request Now",
	RequestStatusRetransmitRequestLater:      "Retransmit Request Later",
	RequestStatusInvalidTimeParameters:       "Invalid Time Parameters",
	RequestStatusSimulationTimeExceeded:      "Simulation Time Exceeded",
	RequestStatusRequestDone:                 "Request Done",
	RequestStatusTACCSFLOSReplyTypeOne:       "TACCSF LOS Reply-Type 1",
	RequestStatusTACCSFLOSReplyTypeTwo:       "TACCSF LOS Reply-Type 2",
	RequestStatusJoinExerciseRequestRejected: "Join Exercise Request Rejected",
})

// DecodeRequestStatus maps a wire value, Other when unknown.
func DecodeRequestStatus(raw uint32) RequestStatus { return requestStatuses.decode(RequestStatus(raw)) }

func (s RequestStatus) String() string { return requestStatuses.name(s) }

// MarshalText implements encoding.TextMarshaler.
func (s RequestStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// EventType classifies an Event Report PDU. [UID 73]
type EventType uint32

const (
	EventTypeOther                              EventType = 0
	EventTypeRanOutOfAmmunition                 EventType = 2
	EventTypeKilledInAction                     EventType = 3
	EventTypeDamage                             EventType = 4
	EventTypeMobilityDisabled                   EventType = 5
	EventTypeFireDisabled                       EventType = 6
	EventTypeRanOutOfFuel                       EventType = 7
	EventTypeEntityInitialization               EventType = 8
	EventTypeRequestForIndirectFireOrCASMission EventType = 9
	EventTypeIndirectFireOrCASFire              EventType = 10
	EventTypeMinefieldEntry                     EventType = 11
	EventTypeMinefieldDetonation                EventType = 12
	EventTypeVehicleMasterPowerOn               EventType = 13
	EventTypeVehicleMasterPowerOff              EventType = 14
	EventTypeAggregateStateChangeRequested      EventType = 15
	EventTypePreventCollisionDetonation         EventType = 16
	EventTypeOwnershipReport                    EventType = 17
	EventTypeRadarPerception                    EventType = 18
	EventTypeDetect                             EventType = 19
)

var eventTypes = newCatalog("EventType", EventTypeOther, map[EventType]string{
	EventTypeOther:                              "Other",
	EventTypeRanOutOfAmmunition:                 "Ran Out of Ammunition",
	EventTypeKilledInAction:                     "Killed in Action (KIA)",
	EventTypeDamage:                             "Damage",
	EventTypeMobilityDisabled:                   "Mobility Disabled",
	EventTypeFireDisabled:                       "Fire Disabled",
	EventTypeRanOutOfFuel:                       "Ran Out of Fuel",
	EventTypeEntityInitialization:               "Entity Initialization",
	EventTypeRequestForIndirectFireOrCASMission: "Request for Indirect Fire or CAS Mission",
	EventTypeIndirectFireOrCASFire:              "Indirect Fire or CAS Fire",
	EventTypeMinefieldEntry:                     "Minefield Entry",
	EventTypeMinefieldDetonation:                "Minefield Detonation",
	EventTypeVehicleMasterPowerOn:               "Vehicle Master Power On",
	EventTypeVehicleMasterPowerOff:              "Vehicle Master Power Off",
	EventTypeAggregateStateChangeRequested:      "Aggregate State Change Requested",
	EventTypePreventCollisionDetonation:         "Prevent Collision / Detonation",
	EventTypeOwnershipReport:                    "Ownership Report",
	EventTypeRadarPerception:                    "Radar Perception",
	EventTypeDetect:                             "Detect",
})

// DecodeEventType maps a wire value, Other when unknown.
func DecodeEventType(raw uint32) EventType { return eventTypes.decode(EventType(raw)) }

func (e EventType) String() string { return eventTypes.name(e) }

// MarshalText implements encoding.TextMarshaler.
func (e EventType) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// RequiredReliabilityService selects acknowledged or unacknowledged
// delivery for the reliable simulation management family. [UID 74]
type RequiredReliabilityService uint8

const (
	ReliabilityAcknowledged   RequiredReliabilityService = 0
	ReliabilityUnacknowledged RequiredReliabilityService = 1
)

var reliabilityServices = newCatalog("RequiredReliabilityService", ReliabilityAcknowledged, map[RequiredReliabilityService]string{
	ReliabilityAcknowledged:   "Acknowledged",
	ReliabilityUnacknowledged: "Unacknowledged",
})

// DecodeRequiredReliabilityService maps a wire value, Acknowledged when unknown.
func DecodeRequiredReliabilityService(raw uint8) RequiredReliabilityService {
	return reliabilityServices.decode(RequiredReliabilityService(raw))
}

func (s RequiredReliabilityService) String() string { return reliabilityServices.name(s) }

// MarshalText implements encoding.TextMarshaler.
func (s RequiredReliabilityService) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// GridAxisType selects regular or irregular spacing for a grid axis.
type GridAxisType uint8

const (
	GridAxisRegular   GridAxisType = 0
	GridAxisIrregular GridAxisType = 1
)

var gridAxisTypes = newCatalog("GridAxisType", GridAxisRegular, map[GridAxisType]string{
	GridAxisRegular:   "Regular Axis",
	GridAxisIrregular: "Irregular Axis",
})

// DecodeGridAxisType maps a wire value, Regular when unknown.
func DecodeGridAxisType(raw uint8) GridAxisType { return gridAxisTypes.decode(GridAxisType(raw)) }

func (t GridAxisType) String() string { return gridAxisTypes.name(t) }

// MarshalText implements encoding.TextMarshaler.
func (t GridAxisType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

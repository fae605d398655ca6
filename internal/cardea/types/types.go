package types

import "time"

// CredentialKind identifies which physical modality produced a credential.
type CredentialKind string

const (
	KindPIN   CredentialKind = "PIN"
	KindRFID  CredentialKind = "RFID"
	KindToken CredentialKind = "TOKEN"
)

// Credential is one completed entry from a reader. It is ephemeral: created
// per scan, consumed by exactly one decision, never persisted by the core.
type Credential struct {
	Kind       CredentialKind
	Code       string
	ReceivedAt time.Time
}

// Role is the coarse authorization role of a subject.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleApartmentAdmin Role = "apartment_admin"
	RoleUser           Role = "user"
	RoleGuest          Role = "guest"
)

// Subject is a read snapshot of a person (or integration) known to the
// credential store. The snapshot is taken once per decision.
type Subject struct {
	ID          string
	Name        string
	Role        Role
	ApartmentID string
	Active      bool
}

// Door identifies the door a controller instance guards. An empty
// ApartmentID marks a shared entrance that is not scoped to any apartment.
type Door struct {
	ID          string
	ApartmentID string
}

// Reason explains a decision outcome. Populated on every decision,
// including allows.
type Reason string

const (
	ReasonOK               Reason = "OK"
	ReasonNoSubject        Reason = "NO_SUBJECT"
	ReasonInactiveSubject  Reason = "INACTIVE_SUBJECT"
	ReasonOutsideSchedule  Reason = "OUTSIDE_SCHEDULE"
	ReasonInsufficientRole Reason = "INSUFFICIENT_ROLE"
	ReasonLookupFailed     Reason = "LOOKUP_FAILED"
	ReasonUnknownDoor      Reason = "UNKNOWN_DOOR"
)

// Decision is the immutable outcome of one authorization. It is the sole
// audit artifact; no actuation happens without a prior allowed Decision.
type Decision struct {
	ID             string         `json:"id"`
	Allowed        bool           `json:"allowed"`
	Reason         Reason         `json:"reason"`
	SubjectID      string         `json:"subject_id,omitempty"`
	CredentialKind CredentialKind `json:"credential_kind,omitempty"`
	DoorID         string         `json:"door_id"`
	DecidedAt      time.Time      `json:"decided_at"`
}

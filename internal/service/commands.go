package service

import "github.com/tidewatch/backend/internal/model"

type CreateSightingCommand struct {
	UserID       string
	CreatureID   *string
	ImageBytes   []byte
	Latitude     float64
	Longitude    float64
	LocationName *string
	Memo         *string
	AISuggestion *string
	AIConfidence *float64
}

type CreateSightingResponse struct {
	SightingID    string
	Status        model.SubmissionStatus
	DuplicateOfID string
}

type CreateCleanupCommand struct {
	UserID       string
	BeforeBytes  []byte
	AfterBytes   []byte
	Latitude     float64
	Longitude    float64
	LocationName *string
	TrashType    string
	Amount       model.CleanupAmount
}

type CreateCleanupResponse struct {
	CleanupID     string
	Status        model.SubmissionStatus
	DuplicateOfID string
}

type DecideSightingCommand struct {
	SightingID string
	Approve    bool
	// CreatureID lets the moderator correct the species before approval.
	CreatureID *string
}

type DecideSightingResponse struct {
	Status       model.SubmissionStatus
	PointsEarned int64
	NewDiscovery bool
}

type DecideCleanupCommand struct {
	CleanupID string
	Approve   bool
}

type DecideCleanupResponse struct {
	Status       model.SubmissionStatus
	PointsEarned int64
}

type PurchaseCommand struct {
	UserID      string
	CreatureIDs []string
}

type PurchaseResponse struct {
	Success          bool
	PurchasedIDs     []string
	TotalSpent       int64
	RemainingBalance int64
}

type ApprovalEvent struct {
	Kind       string `json:"kind"` // "sighting" or "cleanup"
	RecordID   string `json:"record_id"`
	UserID     string `json:"user_id"`
	CreatureID string `json:"creature_id,omitempty"`
	Points     int64  `json:"points"`
	Discovery  bool   `json:"discovery"`
}

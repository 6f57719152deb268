package v1

import "time"

type SubmissionResponse struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	DuplicateOfID string `json:"duplicate_of_id,omitempty"`
}

type DecisionResponse struct {
	Status       string `json:"status"`
	PointsEarned int64  `json:"points_earned"`
	NewDiscovery bool   `json:"new_discovery,omitempty"`
}

type ClassifyResponse struct {
	CreatureID string  `json:"creature_id"`
	Category   string  `json:"category"`
	Rarity     string  `json:"rarity"`
	Confidence float64 `json:"confidence"`
	Confident  bool    `json:"confident"`
	Degraded   bool    `json:"degraded"`
}

type MarketItemResponse struct {
	CreatureID string `json:"creature_id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Rarity     string `json:"rarity"`
	Price      int64  `json:"price"`
	InAquarium bool   `json:"in_aquarium"`
}

type MarketListResponse struct {
	Items      []MarketItemResponse `json:"items"`
	UserPoints int64                `json:"user_points"`
}

type PurchaseResponse struct {
	Success          bool     `json:"success"`
	PurchasedIDs     []string `json:"purchased_ids"`
	TotalSpent       int64    `json:"total_spent"`
	RemainingBalance int64    `json:"remaining_balance"`
}

type UserStatsResponse struct {
	UserID            string `json:"user_id"`
	Nickname          string `json:"nickname"`
	Points            int64  `json:"points"`
	ApprovedSightings int64  `json:"approved_sightings"`
	ApprovedCleanups  int64  `json:"approved_cleanups"`
	CollectionSize    int64  `json:"collection_size"`
	CatalogSize       int    `json:"catalog_size"`
}

type BadgeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	NameEN      string `json:"name_en"`
	Description string `json:"description"`
	Threshold   int64  `json:"threshold"`
}

type UserBadgeResponse struct {
	Badge    BadgeResponse `json:"badge"`
	EarnedAt time.Time     `json:"earned_at"`
}

type RankEntryResponse struct {
	UserID string `json:"user_id"`
	Score  int64  `json:"score"`
	Rank   int64  `json:"rank"`
}

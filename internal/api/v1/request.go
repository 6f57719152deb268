package v1

type DecisionRequest struct {
	Approve    bool    `json:"approve"`
	CreatureID *string `json:"creature_id" validate:"omitempty,creature_id"`
}

type PurchaseRequest struct {
	UserID      string   `json:"user_id" validate:"required,uuid4"`
	CreatureIDs []string `json:"creature_ids" validate:"dive,creature_id"`
}

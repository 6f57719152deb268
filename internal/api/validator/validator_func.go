package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

const (
	CreatureIDTag    = "creature_id"
	CleanupAmountTag = "cleanup_amount"
)

var creatureIDRegex = regexp.MustCompile(`^creature-\d{3}$`)

var cleanupAmounts = map[string]struct{}{
	"handful": {},
	"one_bag": {},
	"large":   {},
}

var valid = map[string]func(fl validator.FieldLevel) bool{
	CreatureIDTag:    ValidateCreatureID,
	CleanupAmountTag: ValidateCleanupAmount,
}

// ValidateCreatureID accepts catalog-style identifiers and the literal
// "unknown" the client sends when the species is undetermined.
func ValidateCreatureID(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	if id == "unknown" {
		return true
	}
	return creatureIDRegex.MatchString(id)
}

func ValidateCleanupAmount(fl validator.FieldLevel) bool {
	_, ok := cleanupAmounts[fl.Field().String()]
	return ok
}

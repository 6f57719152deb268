// Package catalog holds the static creature encyclopedia shared with the
// mobile client. IDs and rarity tiers are fixed at build time; there is no
// dynamic update path.
package catalog

import "github.com/tidewatch/backend/internal/model"

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

type Creature struct {
	ID       string
	Name     string
	NameEN   string
	Category string
	Rarity   Rarity
}

var creatures = []Creature{
	{ID: "creature-001", Name: "고등어", NameEN: "Chub Mackerel", Category: "fish", Rarity: RarityCommon},
	{ID: "creature-002", Name: "꽁치", NameEN: "Pacific Saury", Category: "fish", Rarity: RarityCommon},
	{ID: "creature-003", Name: "가자미", NameEN: "Flounder", Category: "fish", Rarity: RarityCommon},
	{ID: "creature-004", Name: "복어", NameEN: "Pufferfish", Category: "fish", Rarity: RarityRare},
	{ID: "creature-005", Name: "오징어", NameEN: "Squid", Category: "mollusk", Rarity: RarityRare},
	{ID: "creature-006", Name: "문어", NameEN: "Octopus", Category: "mollusk", Rarity: RarityRare},
	{ID: "creature-007", Name: "해마", NameEN: "Seahorse", Category: "fish", Rarity: RarityRare},
	{ID: "creature-008", Name: "바다거북", NameEN: "Sea Turtle", Category: "turtle", Rarity: RarityRare},
	{ID: "creature-009", Name: "돌고래", NameEN: "Dolphin", Category: "cetacean", Rarity: RarityLegendary},
	{ID: "creature-010", Name: "점박이물범", NameEN: "Spotted Seal", Category: "pinniped", Rarity: RarityLegendary},
	{ID: "creature-011", Name: "고래상어", NameEN: "Whale Shark", Category: "fish", Rarity: RarityLegendary},
}

var byID = func() map[string]Creature {
	m := make(map[string]Creature, len(creatures))
	for _, c := range creatures {
		m[c.ID] = c
	}
	return m
}()

var prices = map[Rarity]int64{
	RarityCommon:    50,
	RarityRare:      150,
	RarityLegendary: 300,
}

var sightingPoints = map[Rarity]int64{
	RarityCommon:    30,
	RarityRare:      80,
	RarityLegendary: 150,
}

var cleanupPoints = map[model.CleanupAmount]int64{
	model.CleanupAmountHandful: 30,
	model.CleanupAmountOneBag:  50,
	model.CleanupAmountLarge:   100,
}

// Catalog is a read-only view over the static creature table. It exists as a
// value rather than package functions so services take it as an explicit
// dependency.
type Catalog struct{}

func New() Catalog { return Catalog{} }

func (Catalog) All() []Creature {
	out := make([]Creature, len(creatures))
	copy(out, creatures)
	return out
}

func (Catalog) Get(id string) (Creature, bool) {
	c, ok := byID[id]
	return c, ok
}

func (Catalog) RarityOf(id string) Rarity {
	if c, ok := byID[id]; ok {
		return c.Rarity
	}
	return RarityCommon
}

// PriceOf returns the marketplace price for a creature. Unknown creatures
// fall back to a flat 100, matching the client's display logic.
func (cat Catalog) PriceOf(id string) int64 {
	c, ok := byID[id]
	if !ok {
		return 100
	}
	if p, ok := prices[c.Rarity]; ok {
		return p
	}
	return 100
}

// SightingBase returns the base point award for a rarity tier.
func (Catalog) SightingBase(r Rarity) int64 {
	if p, ok := sightingPoints[r]; ok {
		return p
	}
	return sightingPoints[RarityCommon]
}

// CleanupBase returns the base point award for a collected-amount tier.
func (Catalog) CleanupBase(a model.CleanupAmount) int64 {
	if p, ok := cleanupPoints[a]; ok {
		return p
	}
	return cleanupPoints[model.CleanupAmountHandful]
}

func (Catalog) Total() int { return len(creatures) }

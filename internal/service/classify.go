package service

import (
	"context"
	"hash/fnv"
	"strings"

	"github.com/tidewatch/backend/internal/catalog"
	"github.com/tidewatch/backend/pkg/classifier"
	"go.uber.org/zap"
)

const confidentScore = 0.7

// modelLabelMap translates the external model's label vocabulary onto
// catalog creatures. Labels missing here come back as "unknown".
var modelLabelMap = map[string]string{
	"killer_whale":       "creature-011",
	"grey_whale":         "creature-011",
	"dugong":             "creature-009",
	"sea_lion":           "creature-010",
	"loggerhead":         "creature-008",
	"leatherback_turtle": "creature-008",
	"octopus":            "creature-006",
	"conch":              "creature-005",
	"sea_slug":           "creature-005",
	"stingray":           "creature-004",
	"electric_ray":       "creature-004",
	"great_white_shark":  "creature-011",
	"tiger_shark":        "creature-011",
	"hammerhead":         "creature-011",
	"seahorse":           "creature-007",
	"puffer":             "creature-004",
}

// Classification carries the model's best guess. Degraded marks a stand-in
// produced without the external model; callers and admins must be able to
// tell the two apart, so it is an explicit flag rather than a silent default.
type Classification struct {
	CreatureID string
	Category   string
	Rarity     catalog.Rarity
	Confidence float64
	Confident  bool
	Degraded   bool
}

type ClassifyService interface {
	ClassifyCreature(ctx context.Context, imageBytes []byte) Classification
}

type classify struct {
	client  classifier.Classifier
	catalog catalog.Catalog
	logger  *zap.Logger
}

func NewClassifyService(client classifier.Classifier, cat catalog.Catalog, logger *zap.Logger) ClassifyService {
	return &classify{client: client, catalog: cat, logger: logger}
}

func (c *classify) ClassifyCreature(ctx context.Context, imageBytes []byte) Classification {
	labels, err := c.client.Classify(ctx, imageBytes)
	if err != nil {
		c.logger.Warn("External classifier unavailable, serving degraded suggestion", zap.Error(err))
		return c.degraded(imageBytes)
	}

	for _, label := range labels {
		normalized := strings.ReplaceAll(strings.ToLower(label.Label), " ", "_")
		creatureID, ok := modelLabelMap[normalized]
		if !ok {
			continue
		}

		creature, _ := c.catalog.Get(creatureID)
		return Classification{
			CreatureID: creatureID,
			Category:   creature.Category,
			Rarity:     creature.Rarity,
			Confidence: label.Score,
			Confident:  label.Score > confidentScore,
		}
	}

	result := Classification{CreatureID: "unknown", Category: "unknown", Rarity: catalog.RarityCommon}
	if len(labels) > 0 {
		result.Confidence = labels[0].Score
	}

	return result
}

// degraded picks a stable suggestion from the image bytes themselves, so
// repeated uploads of the same photo suggest the same creature. Zero
// confidence and the Degraded flag keep it distinguishable from a real
// classification.
func (c *classify) degraded(imageBytes []byte) Classification {
	all := c.catalog.All()

	h := fnv.New32a()
	h.Write(imageBytes)
	pick := all[int(h.Sum32())%len(all)]

	return Classification{
		CreatureID: pick.ID,
		Category:   pick.Category,
		Rarity:     pick.Rarity,
		Confidence: 0,
		Confident:  false,
		Degraded:   true,
	}
}

package v1

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tidewatch/backend/internal/api/validator"
	"github.com/tidewatch/backend/internal/constants"
	"github.com/tidewatch/backend/internal/metrics"
	"github.com/tidewatch/backend/internal/model"
	"github.com/tidewatch/backend/internal/service"
	"go.uber.org/zap"
)

type Handler struct {
	logger     *zap.Logger
	validator  validator.IXValidator
	metrics    *metrics.Metrics
	submission service.SubmissionService
	moderation service.ModerationService
	classify   service.ClassifyService
	market     service.MarketService
	profile    service.ProfileService
	ranking    service.RankingService
	badges     service.BadgeService
}

func NewHandler(logger *zap.Logger, validator validator.IXValidator, metrics *metrics.Metrics,
	submission service.SubmissionService, moderation service.ModerationService,
	classify service.ClassifyService, market service.MarketService,
	profile service.ProfileService, ranking service.RankingService,
	badges service.BadgeService) *Handler {
	return &Handler{
		logger:     logger,
		validator:  validator,
		metrics:    metrics,
		submission: submission,
		moderation: moderation,
		classify:   classify,
		market:     market,
		profile:    profile,
		ranking:    ranking,
		badges:     badges,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) CreateSighting(c *fiber.Ctx) error {
	ctx := c.UserContext()

	imageBytes, err := h.readFormFile(c, "image")
	if err != nil {
		return badRequest(c, constants.ErrCodeInvalidRequestBody)
	}

	userID := c.FormValue("user_id")
	if userID == "" {
		return badRequest(c, constants.ErrCodeInvalidRequestBody)
	}

	cmd := service.CreateSightingCommand{
		UserID:       userID,
		CreatureID:   optionalFormValue(c, "creature_id"),
		ImageBytes:   imageBytes,
		Latitude:     parseFloat(c.FormValue("latitude")),
		Longitude:    parseFloat(c.FormValue("longitude")),
		LocationName: optionalFormValue(c, "location_name"),
		Memo:         optionalFormValue(c, "memo"),
	}

	h.metrics.RecordSubmission("sighting")

	resp, err := h.submission.CreateSighting(ctx, cmd)
	if err != nil {
		h.logger.Error("Failed to create sighting",
			zap.Error(err),
			zap.String("userID", userID))
		return err
	}

	if resp.DuplicateOfID != "" {
		h.metrics.RecordDuplicate(true)
	}

	return c.Status(fiber.StatusCreated).JSON(SubmissionResponse{
		ID:            resp.SightingID,
		Status:        string(resp.Status),
		DuplicateOfID: resp.DuplicateOfID,
	})
}

func (h *Handler) CreateCleanup(c *fiber.Ctx) error {
	ctx := c.UserContext()

	beforeBytes, err := h.readFormFile(c, "before_image")
	if err != nil {
		return badRequest(c, constants.ErrCodeInvalidRequestBody)
	}

	afterBytes, err := h.readFormFile(c, "after_image")
	if err != nil {
		return badRequest(c, constants.ErrCodeInvalidRequestBody)
	}

	userID := c.FormValue("user_id")
	if userID == "" {
		return badRequest(c, constants.ErrCodeInvalidRequestBody)
	}

	cmd := service.CreateCleanupCommand{
		UserID:       userID,
		BeforeBytes:  beforeBytes,
		AfterBytes:   afterBytes,
		Latitude:     parseFloat(c.FormValue("latitude")),
		Longitude:    parseFloat(c.FormValue("longitude")),
		LocationName: optionalFormValue(c, "location_name"),
		TrashType:    c.FormValue("trash_type"),
		Amount:       model.CleanupAmount(c.FormValue("amount")),
	}

	h.metrics.RecordSubmission("cleanup")

	resp, err := h.submission.CreateCleanup(ctx, cmd)
	if err != nil {
		h.logger.Error("Failed to create cleanup",
			zap.Error(err),
			zap.String("userID", userID))
		return err
	}

	if resp.DuplicateOfID != "" {
		h.metrics.RecordDuplicate(true)
	}

	return c.Status(fiber.StatusCreated).JSON(SubmissionResponse{
		ID:            resp.CleanupID,
		Status:        string(resp.Status),
		DuplicateOfID: resp.DuplicateOfID,
	})
}

func (h *Handler) Classify(c *fiber.Ctx) error {
	ctx := c.UserContext()

	imageBytes, err := h.readFormFile(c, "image")
	if err != nil {
		return badRequest(c, constants.ErrCodeInvalidRequestBody)
	}

	result := h.classify.ClassifyCreature(ctx, imageBytes)
	if result.Degraded {
		h.metrics.RecordClassifierFallback()
	}

	return c.JSON(ClassifyResponse{
		CreatureID: result.CreatureID,
		Category:   result.Category,
		Rarity:     string(result.Rarity),
		Confidence: result.Confidence,
		Confident:  result.Confident,
		Degraded:   result.Degraded,
	})
}

func (h *Handler) PendingSightings(c *fiber.Ctx) error {
	ctx := c.UserContext()

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	records, total, err := h.moderation.PendingSightings(ctx, limit, offset)
	if err != nil {
		return err
	}

	items := make([]fiber.Map, 0, len(records))
	for _, r := range records {
		items = append(items, fiber.Map{
			"id":            r.ID,
			"user_id":       r.UserID,
			"creature_id":   r.CreatureID,
			"photo_url":     r.PhotoURL,
			"ai_suggestion": r.AISuggestion,
			"created_at":    r.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{"items": items, "total": total})
}

func (h *Handler) PendingCleanups(c *fiber.Ctx) error {
	ctx := c.UserContext()

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	records, err := h.moderation.PendingCleanups(ctx, limit, offset)
	if err != nil {
		return err
	}

	items := make([]fiber.Map, 0, len(records))
	for _, r := range records {
		items = append(items, fiber.Map{
			"id":               r.ID,
			"user_id":          r.UserID,
			"before_photo_url": r.BeforePhotoURL,
			"after_photo_url":  r.AfterPhotoURL,
			"trash_type":       r.TrashType,
			"amount":           r.Amount,
			"created_at":       r.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{"items": items})
}

func (h *Handler) DecideSighting(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request DecisionRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body", zap.Error(err))
		return badRequest(c, constants.ErrCodeInvalidRequestBody)
	}

	if errs := h.validator.Validate(request); len(errs) > 0 {
		return validationFailed(c, errs)
	}

	cmd := service.DecideSightingCommand{
		SightingID: c.Params("id"),
		Approve:    request.Approve,
		CreatureID: request.CreatureID,
	}

	resp, err := h.moderation.DecideSighting(ctx, cmd)
	if err != nil {
		return err
	}

	h.metrics.RecordDecision("sighting", string(resp.Status))
	h.metrics.RecordPointsAwarded(resp.PointsEarned)

	return c.JSON(DecisionResponse{
		Status:       string(resp.Status),
		PointsEarned: resp.PointsEarned,
		NewDiscovery: resp.NewDiscovery,
	})
}

func (h *Handler) DecideCleanup(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request DecisionRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body", zap.Error(err))
		return badRequest(c, constants.ErrCodeInvalidRequestBody)
	}

	if errs := h.validator.Validate(request); len(errs) > 0 {
		return validationFailed(c, errs)
	}

	cmd := service.DecideCleanupCommand{
		CleanupID: c.Params("id"),
		Approve:   request.Approve,
	}

	resp, err := h.moderation.DecideCleanup(ctx, cmd)
	if err != nil {
		return err
	}

	h.metrics.RecordDecision("cleanup", string(resp.Status))
	h.metrics.RecordPointsAwarded(resp.PointsEarned)

	return c.JSON(DecisionResponse{
		Status:       string(resp.Status),
		PointsEarned: resp.PointsEarned,
	})
}

func (h *Handler) MarketList(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID := c.Query("user_id")
	if userID == "" {
		return badRequest(c, constants.ErrCodeInvalidRequestBody)
	}

	listing, err := h.market.ListItems(ctx, userID)
	if err != nil {
		return err
	}

	items := make([]MarketItemResponse, 0, len(listing.Items))
	for _, item := range listing.Items {
		items = append(items, MarketItemResponse{
			CreatureID: item.CreatureID,
			Name:       item.Name,
			Category:   item.Category,
			Rarity:     string(item.Rarity),
			Price:      item.Price,
			InAquarium: item.InAquarium,
		})
	}

	return c.JSON(MarketListResponse{Items: items, UserPoints: listing.UserPoints})
}

func (h *Handler) Purchase(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request PurchaseRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body", zap.Error(err))
		return badRequest(c, constants.ErrCodeInvalidRequestBody)
	}

	if errs := h.validator.Validate(request); len(errs) > 0 {
		return validationFailed(c, errs)
	}

	cmd := service.PurchaseCommand{UserID: request.UserID, CreatureIDs: request.CreatureIDs}

	resp, err := h.market.Purchase(ctx, cmd)
	if err != nil {
		h.metrics.RecordPurchase("failed", 0)
		return err
	}

	h.metrics.RecordPurchase("success", resp.TotalSpent)

	return c.JSON(PurchaseResponse{
		Success:          resp.Success,
		PurchasedIDs:     resp.PurchasedIDs,
		TotalSpent:       resp.TotalSpent,
		RemainingBalance: resp.RemainingBalance,
	})
}

func (h *Handler) UserStats(c *fiber.Ctx) error {
	ctx := c.UserContext()

	stats, err := h.profile.Stats(ctx, c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(UserStatsResponse{
		UserID:            stats.UserID,
		Nickname:          stats.Nickname,
		Points:            stats.Points,
		ApprovedSightings: stats.ApprovedSightings,
		ApprovedCleanups:  stats.ApprovedCleanups,
		CollectionSize:    stats.CollectionSize,
		CatalogSize:       stats.CatalogSize,
	})
}

func (h *Handler) UserCollection(c *fiber.Ctx) error {
	ctx := c.UserContext()

	ids, err := h.profile.Collection(ctx, c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"creature_ids": ids})
}

func (h *Handler) ListBadges(c *fiber.Ctx) error {
	all := h.badges.AllBadges()

	out := make([]BadgeResponse, 0, len(all))
	for _, b := range all {
		out = append(out, BadgeResponse{
			ID:          b.ID,
			Name:        b.Name,
			NameEN:      b.NameEN,
			Description: b.Description,
			Threshold:   b.Threshold,
		})
	}

	return c.JSON(fiber.Map{"badges": out, "total": len(out)})
}

func (h *Handler) UserBadges(c *fiber.Ctx) error {
	ctx := c.UserContext()

	earned, err := h.badges.UserBadges(ctx, c.Params("id"))
	if err != nil {
		return err
	}

	out := make([]UserBadgeResponse, 0, len(earned))
	for _, e := range earned {
		out = append(out, UserBadgeResponse{
			Badge: BadgeResponse{
				ID:          e.Badge.ID,
				Name:        e.Badge.Name,
				NameEN:      e.Badge.NameEN,
				Description: e.Badge.Description,
				Threshold:   e.Badge.Threshold,
			},
			EarnedAt: e.EarnedAt,
		})
	}

	return c.JSON(fiber.Map{"badges": out, "total": len(out)})
}

func (h *Handler) RankingsPoints(c *fiber.Ctx) error {
	return h.rankings(c, h.ranking.TopByPoints)
}

func (h *Handler) RankingsCleanups(c *fiber.Ctx) error {
	return h.rankings(c, h.ranking.TopByCleanups)
}

func (h *Handler) rankings(c *fiber.Ctx,
	top func(ctx context.Context, n int64) ([]service.RankEntry, error)) error {
	ctx := c.UserContext()

	n := int64(c.QueryInt("limit", 10))

	entries, err := top(ctx, n)
	if err != nil {
		h.logger.Error("Failed to load rankings", zap.Error(err))
		return service.NewServiceError(constants.ErrCodeInternalError, err)
	}

	out := make([]RankEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, RankEntryResponse{UserID: e.UserID, Score: e.Score, Rank: e.Rank})
	}

	return c.JSON(fiber.Map{"entries": out})
}

func validationFailed(c *fiber.Ctx, errs []validator.Error) error {
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, fmt.Sprintf("%s failed on %s", e.FailedField, e.Tag))
	}

	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"code":    constants.ErrCodeValidationFailed,
		"message": strings.Join(fields, " and "),
	})
}

func (h *Handler) readFormFile(c *fiber.Ctx, field string) ([]byte, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

func badRequest(c *fiber.Ctx, code string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":    code,
		"message": constants.GetErrorMessage(code),
	})
}

func optionalFormValue(c *fiber.Ctx, field string) *string {
	v := c.FormValue(field)
	if v == "" {
		return nil
	}
	return &v
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

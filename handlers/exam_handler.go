package handlers

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/kokushiworks/exam_bank/models"
	"github.com/kokushiworks/exam_bank/services"
	"github.com/kokushiworks/exam_bank/store"
	"github.com/kokushiworks/exam_bank/websocket"
)

var validate = validator.New()

var (
	questionStore    *store.QuestionStore
	ingestService    *services.IngestService
	reconcileService *services.ReconcileService
	assetService     *services.AssetService
	queryService     *services.QueryService
)

// Init builds the service layer over the given store. Called once from
// main; tests call it with an in-memory store.
func Init(s *store.QuestionStore) {
	questionStore = s
	ingestService = services.NewIngestService(s)
	reconcileService = services.NewReconcileService(s)
	assetService = services.NewAssetService(s)
	queryService = services.NewQueryService(s)
}

// AssetSvc exposes the asset service for the cron job wiring.
func AssetSvc() *services.AssetService {
	return assetService
}

type IngestRequest struct {
	ExamYear  string                  `json:"exam_year" validate:"required"`
	Questions []models.QuestionRecord `json:"questions" validate:"required,min=1"`
}

// IngestQuestions accepts an extraction batch. Only the envelope is
// validated; record contents are the producer's contract and are stored
// as-is.
func IngestQuestions(c *fiber.Ctx) error {
	var req IngestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res, err := ingestService.Ingest(c.Context(), req.ExamYear, req.Questions, func(written, total int) {
		websocket.BroadcastProgress(websocket.ProgressEvent{
			Event:   websocket.EventIngestProgress,
			Year:    req.ExamYear,
			Written: written,
			Total:   total,
		})
	})
	if err != nil {
		// chunks already applied stay committed; tell the caller how far we got
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Ingestion failed partway through the batch",
			"written": res.Written,
			"chunks":  res.Chunks,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(res)
}

type ReconcileRequest struct {
	Mappings []services.AccuracyMapping `json:"mappings" validate:"required,min=1"`
}

func ReconcileAccuracy(c *fiber.Ctx) error {
	var req ReconcileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res, err := reconcileService.Reconcile(c.Context(), req.Mappings)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reconcile accuracy data"})
	}
	return c.JSON(res)
}

func QueryQuestions(c *fiber.Ctx) error {
	minRate := 0.0
	if raw := c.Query("min_rate"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "min_rate must be a number"})
		}
		minRate = parsed
	}

	filter := services.QueryFilter{
		Years:      splitParam(c.Query("years")),
		Categories: splitParam(c.Query("categories")),
		MinRate:    minRate,
	}

	records, err := queryService.Query(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to query questions"})
	}
	return c.JSON(fiber.Map{"count": len(records), "questions": records})
}

func ListYears(c *fiber.Ctx) error {
	years, err := queryService.Years(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list years"})
	}
	return c.JSON(fiber.Map{"years": years})
}

func GetStats(c *fiber.Ctx) error {
	stats, err := queryService.Stats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load stats"})
	}
	return c.JSON(stats)
}

func DeleteYear(c *fiber.Ctx) error {
	year, err := url.PathUnescape(c.Params("year"))
	if err != nil || year == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid year"})
	}

	deleted, err := questionStore.DeleteByYear(c.Context(), year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete year"})
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}

func ListCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"fields": models.PTFields})
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

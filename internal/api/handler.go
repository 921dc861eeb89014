package api

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/terraincognita07/refboard/internal/ai"
	"github.com/terraincognita07/refboard/internal/catalog"
	"github.com/terraincognita07/refboard/internal/i18n"
	"github.com/terraincognita07/refboard/internal/services"
	"github.com/terraincognita07/refboard/internal/store"
)

// Handler bundles every dependency the HTTP surface needs. The AI
// client may be nil when no API key is configured; AI endpoints then
// answer 503 instead of failing at startup.
type Handler struct {
	stores       *store.Stores
	catalog      *catalog.Catalog
	analytics    *services.AnalyticsService
	earnings     *services.EarningsService
	achievements *services.AchievementService
	exports      *services.ExportService
	referrals    *services.ReferralService
	library      *services.LibraryService
	settings     *services.SettingsService
	assistant    *services.AssistantService
	ai           *ai.Client
	i18n         *i18n.Manager
	validate     *validator.Validate
	logger       logrus.FieldLogger
}

type Dependencies struct {
	Stores       *store.Stores
	Catalog      *catalog.Catalog
	Analytics    *services.AnalyticsService
	Earnings     *services.EarningsService
	Achievements *services.AchievementService
	Exports      *services.ExportService
	Referrals    *services.ReferralService
	Library      *services.LibraryService
	Settings     *services.SettingsService
	Assistant    *services.AssistantService
	AI           *ai.Client
	I18n         *i18n.Manager
	Logger       logrus.FieldLogger
}

func NewHandler(dependencies Dependencies) *Handler {
	return &Handler{
		stores:       dependencies.Stores,
		catalog:      dependencies.Catalog,
		analytics:    dependencies.Analytics,
		earnings:     dependencies.Earnings,
		achievements: dependencies.Achievements,
		exports:      dependencies.Exports,
		referrals:    dependencies.Referrals,
		library:      dependencies.Library,
		settings:     dependencies.Settings,
		assistant:    dependencies.Assistant,
		ai:           dependencies.AI,
		i18n:         dependencies.I18n,
		validate:     validator.New(),
		logger:       dependencies.Logger,
	}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/refboard/internal/models"
	"github.com/terraincognita07/refboard/internal/services"
)

func (handler *Handler) GetAnalyticsOverview(c *fiber.Ctx) error {
	return c.JSON(handler.analytics.BuildOverview(time.Now()))
}

func (handler *Handler) GetFunnel(c *fiber.Ctx) error {
	return c.JSON(handler.earnings.BuildFunnel())
}

func (handler *Handler) GetEarningsOverview(c *fiber.Ctx) error {
	overview := handler.earnings.BuildOverview(time.Now())
	goal := handler.settings.Goal()
	return c.JSON(fiber.Map{
		"earnings":     overview,
		"goal":         goal,
		"goalProgress": services.GoalProgressPercent(goal, overview.TotalEarnings),
	})
}

func (handler *Handler) achievementMetrics() services.AchievementMetrics {
	return services.AchievementMetrics{
		ReferralCodeSet:  handler.stores.ReferralCode.Get() != "",
		FavoriteCount:    len(handler.stores.Favorites.All()),
		TotalClicks:      len(handler.stores.Clicks.All()),
		TotalLeads:       len(handler.stores.Leads.All()),
		TotalConversions: len(handler.stores.Conversions.All()),
		TotalEarnings:    handler.earnings.TotalEarnings(),
	}
}

// GetAchievements recomputes unlock state and reports achievements not
// yet notified, localized, exactly once each.
func (handler *Handler) GetAchievements(c *fiber.Ctx) error {
	achievements, newlyUnlocked, err := handler.achievements.Refresh(handler.achievementMetrics())
	if err != nil {
		return handler.internalError(c, err)
	}

	language := handler.requestLanguage(c)
	localized := make([]models.Achievement, 0, len(achievements))
	for _, achievement := range achievements {
		achievement.Name = handler.i18n.Translate(language, "achievements."+achievement.ID+".name")
		achievement.Description = handler.i18n.Translate(language, "achievements."+achievement.ID+".description")
		localized = append(localized, achievement)
	}

	notifications := make([]string, 0, len(newlyUnlocked))
	for _, id := range newlyUnlocked {
		name := handler.i18n.Translate(language, "achievements."+id+".name")
		notifications = append(notifications, handler.i18n.Translatef(language, "achievements.unlocked", name))
	}

	return c.JSON(fiber.Map{
		"achievements":  localized,
		"notifications": notifications,
	})
}

func (handler *Handler) GetGoal(c *fiber.Ctx) error {
	goal := handler.settings.Goal()
	return c.JSON(fiber.Map{
		"goal":         goal,
		"goalProgress": services.GoalProgressPercent(goal, handler.earnings.TotalEarnings()),
	})
}

type setGoalRequest struct {
	Goal float64 `json:"goal"`
}

func (handler *Handler) SetGoal(c *fiber.Ctx) error {
	request := setGoalRequest{}
	if err := c.BodyParser(&request); err != nil {
		return handler.badRequest(c)
	}

	goal, err := handler.settings.SetGoal(request.Goal)
	if err != nil {
		return handler.internalError(c, err)
	}
	return handler.toast(c, "toasts.goal_saved", fiber.Map{"goal": goal})
}

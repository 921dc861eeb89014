package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/lang/:lang", handler.SetLanguage)

	api := app.Group("/api")

	properties := api.Group("/properties")
	properties.Get("", handler.ListProperties)
	properties.Get("/:id", handler.GetProperty)
	properties.Post("/:id/favorite", handler.ToggleFavorite)
	properties.Get("/:id/analysis", handler.AnalyzeProperty)

	clicks := api.Group("/clicks")
	clicks.Get("", handler.ListClicks)
	clicks.Post("", handler.LogClick)

	leads := api.Group("/leads")
	leads.Get("", handler.ListLeads)
	leads.Post("", handler.CaptureLead)
	leads.Post("/follow-up-email", handler.DraftFollowUpEmail)

	conversions := api.Group("/conversions")
	conversions.Get("", handler.ListConversions)
	conversions.Post("", handler.RecordConversion)

	analytics := api.Group("/analytics")
	analytics.Get("/overview", handler.GetAnalyticsOverview)
	analytics.Get("/funnel", handler.GetFunnel)
	analytics.Get("/earnings", handler.GetEarningsOverview)
	analytics.Get("/insights", handler.GetInsights)

	api.Get("/calculator", handler.CalculateCommission)

	achievements := api.Group("/achievements")
	achievements.Get("", handler.GetAchievements)

	goal := api.Group("/goal")
	goal.Get("", handler.GetGoal)
	goal.Put("", handler.SetGoal)
	goal.Get("/plan", handler.GetStrategicPlan)

	layout := api.Group("/layout")
	layout.Get("", handler.GetLayout)
	layout.Put("", handler.SaveLayout)
	layout.Post("/widgets/:id/toggle", handler.ToggleWidget)
	layout.Post("/reset", handler.ResetLayout)

	library := api.Group("/library")
	library.Get("", handler.ListLibrary)
	library.Post("", handler.SaveContent)
	library.Delete("/:id", handler.DeleteContent)

	content := api.Group("/content")
	content.Post("/chat", handler.StreamContentChat)
	content.Post("/image", handler.GenerateImage)
	content.Post("/hashtags", handler.GenerateHashtags)

	assistant := api.Group("/assistant")
	assistant.Get("/tip", handler.GetCurrentTip)
	assistant.Post("/tip/check", handler.CheckForTip)
	assistant.Post("/tip/:id/dismiss", handler.DismissTip)

	referral := api.Group("/referral")
	referral.Get("/code", handler.GetReferralCode)
	referral.Put("/code", handler.SetReferralCode)
	referral.Delete("/code", handler.ClearReferralCode)
	referral.Get("/code/suggest", handler.SuggestReferralCode)

	export := api.Group("/export")
	export.Get("/:collection", handler.ExportCollection)

	settings := api.Group("/settings")
	settings.Get("/stores", handler.ListClearableStores)
	settings.Post("/stores/:name/clear", handler.ClearStore)
	settings.Post("/clear-all", handler.ClearAllData)
}

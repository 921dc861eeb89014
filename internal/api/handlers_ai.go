package api

import (
	"bufio"
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/terraincognita07/refboard/internal/ai"
	"github.com/terraincognita07/refboard/internal/models"
)

const aiRequestTimeout = 90 * time.Second

func (handler *Handler) aiAvailable(c *fiber.Ctx) bool {
	return handler.ai != nil
}

func (handler *Handler) aiUnavailable(c *fiber.Ctx) error {
	return handler.apiError(c, fiber.StatusServiceUnavailable, "errors.ai_unavailable")
}

type contentChatRequest struct {
	PropertyID string       `json:"propertyId" validate:"required"`
	Messages   []ai.Message `json:"messages" validate:"dive"`
}

// StreamContentChat proxies the marketing-copy stream as server-sent
// events: one data event per text chunk, then a terminal done or error
// event.
func (handler *Handler) StreamContentChat(c *fiber.Ctx) error {
	if !handler.aiAvailable(c) {
		return handler.aiUnavailable(c)
	}

	request := contentChatRequest{}
	if err := c.BodyParser(&request); err != nil {
		return handler.badRequest(c)
	}
	if err := handler.validate.Struct(request); err != nil {
		return handler.badRequest(c)
	}

	property, found := handler.catalog.ByID(request.PropertyID)
	if !found {
		return handler.apiError(c, fiber.StatusNotFound, "errors.unknown_property")
	}

	ctx, cancel := context.WithTimeout(context.Background(), aiRequestTimeout)
	stream, err := handler.ai.ContentChatStream(ctx, property, handler.referrals.Link(), handler.requestLanguage(c), request.Messages)
	if err != nil {
		cancel()
		handler.logger.WithError(err).Warn("content stream failed to open")
		return handler.aiUnavailable(c)
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set("Connection", "keep-alive")
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(writer *bufio.Writer) {
		defer cancel()
		for event := range stream.Events() {
			if event.Err != nil {
				writeSSE(writer, "error", fiber.Map{"message": event.Err.Error()})
				return
			}
			if event.Done {
				writeSSE(writer, "done", fiber.Map{})
				return
			}
			writeSSE(writer, "chunk", fiber.Map{"text": event.Chunk})
		}
	}))
	return nil
}

func writeSSE(writer *bufio.Writer, event string, payload fiber.Map) {
	serialized, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if _, err := writer.WriteString("event: " + event + "\ndata: " + string(serialized) + "\n\n"); err != nil {
		return
	}
	if err := writer.Flush(); err != nil {
		return
	}
}

type generateImageRequest struct {
	PropertyID string `json:"propertyId" validate:"required"`
}

func (handler *Handler) GenerateImage(c *fiber.Ctx) error {
	if !handler.aiAvailable(c) {
		return handler.aiUnavailable(c)
	}

	request := generateImageRequest{}
	if err := c.BodyParser(&request); err != nil {
		return handler.badRequest(c)
	}
	if err := handler.validate.Struct(request); err != nil {
		return handler.badRequest(c)
	}

	property, found := handler.catalog.ByID(request.PropertyID)
	if !found {
		return handler.apiError(c, fiber.StatusNotFound, "errors.unknown_property")
	}

	ctx, cancel := context.WithTimeout(c.Context(), aiRequestTimeout)
	defer cancel()

	imageURL, err := handler.ai.GeneratePropertyImage(ctx, property)
	if err != nil {
		handler.logger.WithError(err).Warn("image generation failed")
		return handler.aiUnavailable(c)
	}
	return c.JSON(fiber.Map{"imageUrl": imageURL})
}

type hashtagsRequest struct {
	PropertyID  string `json:"propertyId" validate:"required"`
	PostContent string `json:"postContent" validate:"required"`
}

func (handler *Handler) GenerateHashtags(c *fiber.Ctx) error {
	if !handler.aiAvailable(c) {
		return handler.aiUnavailable(c)
	}

	request := hashtagsRequest{}
	if err := c.BodyParser(&request); err != nil {
		return handler.badRequest(c)
	}
	if err := handler.validate.Struct(request); err != nil {
		return handler.badRequest(c)
	}

	property, found := handler.catalog.ByID(request.PropertyID)
	if !found {
		return handler.apiError(c, fiber.StatusNotFound, "errors.unknown_property")
	}

	ctx, cancel := context.WithTimeout(c.Context(), aiRequestTimeout)
	defer cancel()

	hashtags, err := handler.ai.GenerateHashtags(ctx, request.PostContent, property, handler.requestLanguage(c))
	if err != nil {
		handler.logger.WithError(err).Warn("hashtag generation failed")
		return handler.aiUnavailable(c)
	}
	return c.JSON(fiber.Map{"hashtags": hashtags})
}

func (handler *Handler) AnalyzeProperty(c *fiber.Ctx) error {
	if !handler.aiAvailable(c) {
		return handler.aiUnavailable(c)
	}

	property, found := handler.catalog.ByID(c.Params("id"))
	if !found {
		return handler.apiError(c, fiber.StatusNotFound, "errors.unknown_property")
	}

	ctx, cancel := context.WithTimeout(c.Context(), aiRequestTimeout)
	defer cancel()

	report, err := handler.ai.AnalyzeProperty(ctx, property, handler.requestLanguage(c))
	if err != nil {
		handler.logger.WithError(err).Warn("property analysis failed")
		return handler.aiUnavailable(c)
	}
	return c.JSON(report)
}

type followUpEmailRequest struct {
	LeadEmail string `json:"leadEmail" validate:"required,email"`
}

func (handler *Handler) DraftFollowUpEmail(c *fiber.Ctx) error {
	if !handler.aiAvailable(c) {
		return handler.aiUnavailable(c)
	}

	request := followUpEmailRequest{}
	if err := c.BodyParser(&request); err != nil {
		return handler.badRequest(c)
	}
	if err := handler.validate.Struct(request); err != nil {
		return handler.badRequest(c)
	}

	lead, found := handler.findLead(request.LeadEmail)
	if !found {
		return handler.apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	ctx, cancel := context.WithTimeout(c.Context(), aiRequestTimeout)
	defer cancel()

	overview := handler.earnings.BuildOverview(time.Now())
	email, err := handler.ai.DraftFollowUpEmail(ctx, lead, overview.TopProperty, handler.referrals.Link(), handler.requestLanguage(c))
	if err != nil {
		handler.logger.WithError(err).Warn("email drafting failed")
		return handler.aiUnavailable(c)
	}
	return c.JSON(email)
}

func (handler *Handler) GetInsights(c *fiber.Ctx) error {
	if !handler.aiAvailable(c) {
		return handler.aiUnavailable(c)
	}

	ctx, cancel := context.WithTimeout(c.Context(), aiRequestTimeout)
	defer cancel()

	report, err := handler.ai.GenerateInsights(ctx, handler.insightsSnapshot(), handler.requestLanguage(c))
	if err != nil {
		handler.logger.WithError(err).Warn("insights generation failed")
		return handler.aiUnavailable(c)
	}
	return c.JSON(report)
}

func (handler *Handler) GetStrategicPlan(c *fiber.Ctx) error {
	if !handler.aiAvailable(c) {
		return handler.aiUnavailable(c)
	}

	goal := handler.settings.Goal()
	if goal <= 0 {
		return handler.badRequest(c)
	}

	ctx, cancel := context.WithTimeout(c.Context(), aiRequestTimeout)
	defer cancel()

	plan, err := handler.ai.GenerateStrategicPlan(ctx, goal, handler.insightsSnapshot(), handler.requestLanguage(c))
	if err != nil {
		handler.logger.WithError(err).Warn("strategic plan generation failed")
		return handler.aiUnavailable(c)
	}
	return c.JSON(plan)
}

func (handler *Handler) insightsSnapshot() ai.InsightsSnapshot {
	now := time.Now()
	analytics := handler.analytics.BuildOverview(now)
	earnings := handler.earnings.BuildOverview(now)

	snapshot := ai.InsightsSnapshot{
		TotalClicks:      analytics.TotalClicks,
		TotalLeads:       len(handler.stores.Leads.All()),
		TotalConversions: len(handler.stores.Conversions.All()),
		TotalEarnings:    earnings.TotalEarnings,
	}
	if analytics.TopProperty != nil {
		snapshot.TopPropertyByClicksName = analytics.TopProperty.Name
	}
	if earnings.TopProperty != nil {
		snapshot.TopPropertyByEarningsName = earnings.TopProperty.Name
	}
	return snapshot
}

func (handler *Handler) findLead(email string) (models.Lead, bool) {
	for _, candidate := range handler.stores.Leads.All() {
		if candidate.Email == email {
			return candidate, true
		}
	}
	return models.Lead{}, false
}

package api

import "github.com/gofiber/fiber/v2"

// apiError answers with a localized message keyed by the i18n catalog.
func (handler *Handler) apiError(c *fiber.Ctx, status int, messageKey string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": handler.i18n.Translate(handler.requestLanguage(c), messageKey),
		"code":  messageKey,
	})
}

func (handler *Handler) internalError(c *fiber.Ctx, err error) error {
	handler.logger.WithError(err).WithField("path", c.Path()).Error("request failed")
	return handler.apiError(c, fiber.StatusInternalServerError, "errors.internal")
}

func (handler *Handler) badRequest(c *fiber.Ctx) error {
	return handler.apiError(c, fiber.StatusBadRequest, "errors.bad_request")
}

// toast pairs a payload with a localized notification message.
func (handler *Handler) toast(c *fiber.Ctx, messageKey string, payload fiber.Map) error {
	if payload == nil {
		payload = fiber.Map{}
	}
	payload["message"] = handler.i18n.Translate(handler.requestLanguage(c), messageKey)
	return c.JSON(payload)
}

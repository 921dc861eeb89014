package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetCurrentTip(c *fiber.Ctx) error {
	if handler.assistant == nil {
		return c.JSON(fiber.Map{"tip": nil})
	}
	tip := handler.assistant.Current()
	if tip == nil {
		return c.JSON(fiber.Map{"tip": nil})
	}
	return c.JSON(fiber.Map{"tip": tip})
}

// CheckForTip triggers an on-demand tip check. Debouncing and the
// one-active-tip rule live in the assistant service.
func (handler *Handler) CheckForTip(c *fiber.Ctx) error {
	if !handler.aiAvailable(c) {
		return handler.aiUnavailable(c)
	}

	tip, err := handler.assistant.Check(c.Context(), handler.requestLanguage(c))
	if err != nil {
		handler.logger.WithError(err).Warn("tip check failed")
		return handler.aiUnavailable(c)
	}
	return c.JSON(fiber.Map{"tip": tip})
}

func (handler *Handler) DismissTip(c *fiber.Ctx) error {
	tipID := c.Params("id")
	if tipID == "" {
		return handler.badRequest(c)
	}

	if handler.assistant == nil {
		if err := handler.stores.DismissedTips.Add(tipID); err != nil {
			return handler.internalError(c, err)
		}
		return handler.toast(c, "toasts.tip_dismissed", nil)
	}
	if err := handler.assistant.Dismiss(tipID); err != nil {
		return handler.internalError(c, err)
	}
	return handler.toast(c, "toasts.tip_dismissed", nil)
}

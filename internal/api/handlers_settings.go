package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/refboard/internal/services"
)

type clearRequest struct {
	Confirm bool `json:"confirm"`
}

// ClearStore wipes one record store. The destructive action requires an
// explicit confirm flag in the body.
func (handler *Handler) ClearStore(c *fiber.Ctx) error {
	request := clearRequest{}
	if err := c.BodyParser(&request); err != nil {
		return handler.badRequest(c)
	}
	if !request.Confirm {
		return handler.apiError(c, fiber.StatusBadRequest, "errors.confirmation_required")
	}

	if err := handler.settings.ClearStore(c.Params("name")); err != nil {
		if errors.Is(err, services.ErrUnknownStore) {
			return handler.apiError(c, fiber.StatusNotFound, "errors.unknown_store")
		}
		return handler.internalError(c, err)
	}
	return handler.toast(c, "toasts.store_cleared", fiber.Map{"store": c.Params("name")})
}

func (handler *Handler) ClearAllData(c *fiber.Ctx) error {
	request := clearRequest{}
	if err := c.BodyParser(&request); err != nil {
		return handler.badRequest(c)
	}
	if !request.Confirm {
		return handler.apiError(c, fiber.StatusBadRequest, "errors.confirmation_required")
	}

	if err := handler.settings.ClearAll(); err != nil {
		return handler.internalError(c, err)
	}
	return handler.toast(c, "toasts.all_cleared", nil)
}

func (handler *Handler) ListClearableStores(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"stores": handler.settings.ClearableStores()})
}

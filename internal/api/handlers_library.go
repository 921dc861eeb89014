package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/refboard/internal/services"
)

func (handler *Handler) ListLibrary(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"items": handler.library.All()})
}

type saveContentRequest struct {
	PropertyID string `json:"propertyId" validate:"required"`
	Text       string `json:"text" validate:"required"`
	ImageURL   string `json:"imageUrl" validate:"required"`
}

func (handler *Handler) SaveContent(c *fiber.Ctx) error {
	request := saveContentRequest{}
	if err := c.BodyParser(&request); err != nil {
		return handler.badRequest(c)
	}
	if err := handler.validate.Struct(request); err != nil {
		return handler.badRequest(c)
	}

	item, err := handler.library.Save(request.PropertyID, request.Text, request.ImageURL, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyLibraryContent):
			return handler.apiError(c, fiber.StatusUnprocessableEntity, "errors.empty_library_content")
		case errors.Is(err, services.ErrUnknownProperty):
			return handler.apiError(c, fiber.StatusNotFound, "errors.unknown_property")
		default:
			return handler.internalError(c, err)
		}
	}
	return handler.toast(c, "toasts.content_saved", fiber.Map{"item": item})
}

func (handler *Handler) DeleteContent(c *fiber.Ctx) error {
	if err := handler.library.Delete(c.Params("id")); err != nil {
		return handler.internalError(c, err)
	}
	return handler.toast(c, "toasts.content_deleted", nil)
}

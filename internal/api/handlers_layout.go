package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/refboard/internal/models"
)

func (handler *Handler) GetLayout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"layout": handler.stores.Layout.Load()})
}

type saveLayoutRequest struct {
	Layout []models.DashboardWidget `json:"layout" validate:"required"`
}

func (handler *Handler) SaveLayout(c *fiber.Ctx) error {
	request := saveLayoutRequest{}
	if err := c.BodyParser(&request); err != nil {
		return handler.badRequest(c)
	}
	if err := handler.validate.Struct(request); err != nil {
		return handler.badRequest(c)
	}

	if err := handler.stores.Layout.Save(request.Layout); err != nil {
		return handler.internalError(c, err)
	}
	return handler.toast(c, "toasts.layout_saved", fiber.Map{"layout": handler.stores.Layout.Load()})
}

// ToggleWidget flips one widget's visibility without disturbing order.
func (handler *Handler) ToggleWidget(c *fiber.Ctx) error {
	widgetID := c.Params("id")

	layout := handler.stores.Layout.Load()
	found := false
	for index, widget := range layout {
		if widget.ID == widgetID {
			layout[index].IsVisible = !widget.IsVisible
			found = true
			break
		}
	}
	if !found {
		return handler.apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	if err := handler.stores.Layout.Save(layout); err != nil {
		return handler.internalError(c, err)
	}
	return handler.toast(c, "toasts.layout_saved", fiber.Map{"layout": handler.stores.Layout.Load()})
}

func (handler *Handler) ResetLayout(c *fiber.Ctx) error {
	if err := handler.stores.Layout.Clear(); err != nil {
		return handler.internalError(c, err)
	}
	return handler.toast(c, "toasts.layout_saved", fiber.Map{"layout": handler.stores.Layout.Load()})
}

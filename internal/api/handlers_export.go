package api

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/refboard/internal/services"
)

// ExportCollection streams one record collection as CSV with every
// field quoted.
func (handler *Handler) ExportCollection(c *fiber.Ctx) error {
	collection := c.Params("collection")

	var table services.CSVTable
	switch collection {
	case "clicks":
		table = handler.exports.ClicksTable()
	case "leads":
		table = handler.exports.LeadsTable()
	case "conversions":
		table = handler.exports.ConversionsTable()
	case "library":
		table = services.SavedContentRows(handler.library.All())
	default:
		return handler.apiError(c, fiber.StatusNotFound, "errors.not_found")
	}

	setExportAttachmentHeaders(c, services.ExportFilename(collection, time.Now()))
	return c.SendString(table.Encode())
}

func setExportAttachmentHeaders(c *fiber.Ctx, filename string) {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}

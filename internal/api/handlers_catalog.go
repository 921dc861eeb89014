package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/refboard/internal/catalog"
)

func (handler *Handler) ListProperties(c *fiber.Ctx) error {
	filter := catalog.Filter{
		Search:        c.Query("search"),
		MinROI:        c.QueryFloat("minRoi", 0),
		MaxRisk:       c.QueryInt("maxRisk", 0),
		PropertyType:  c.Query("type"),
		Bedrooms:      c.QueryInt("bedrooms", 0),
		FavoritesOnly: c.QueryBool("favoritesOnly", false),
		SortBy:        c.Query("sortBy", catalog.SortDefault),
	}
	if filter.FavoritesOnly {
		filter.Favorites = handler.stores.Favorites.All()
	}

	lowest, highest := handler.catalog.ROIRange()
	return c.JSON(fiber.Map{
		"properties": handler.catalog.Search(filter),
		"favorites":  handler.stores.Favorites.All(),
		"roiRange":   fiber.Map{"min": lowest, "max": highest},
	})
}

func (handler *Handler) GetProperty(c *fiber.Ctx) error {
	property, found := handler.catalog.ByID(c.Params("id"))
	if !found {
		return handler.apiError(c, fiber.StatusNotFound, "errors.unknown_property")
	}
	return c.JSON(fiber.Map{
		"property":   property,
		"isFavorite": handler.stores.Favorites.IsFavorite(property.ID),
	})
}

func (handler *Handler) ToggleFavorite(c *fiber.Ctx) error {
	propertyID := c.Params("id")
	if _, found := handler.catalog.ByID(propertyID); !found {
		return handler.apiError(c, fiber.StatusNotFound, "errors.unknown_property")
	}

	isFavorite, err := handler.stores.Favorites.Toggle(propertyID)
	if err != nil {
		return handler.internalError(c, err)
	}

	messageKey := "toasts.favorite_removed"
	if isFavorite {
		messageKey = "toasts.favorite_added"
	}
	return handler.toast(c, messageKey, fiber.Map{
		"propertyId": propertyID,
		"isFavorite": isFavorite,
	})
}

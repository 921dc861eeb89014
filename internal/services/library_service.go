package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/refboard/internal/models"
)

var (
	ErrEmptyLibraryContent = errors.New("library content must include text and an image")
	ErrUnknownProperty     = errors.New("unknown property")
)

type LibraryStorage interface {
	All() []models.SavedContent
	Add(item models.SavedContent) error
	Delete(id string) error
}

type LibraryService struct {
	library    LibraryStorage
	properties PropertyResolver
}

func NewLibraryService(library LibraryStorage, properties PropertyResolver) *LibraryService {
	return &LibraryService{
		library:    library,
		properties: properties,
	}
}

func (service *LibraryService) All() []models.SavedContent {
	return service.library.All()
}

// Save keeps a generated post with its rendered image for later reuse.
func (service *LibraryService) Save(propertyID string, text string, imageURL string, now time.Time) (models.SavedContent, error) {
	if strings.TrimSpace(text) == "" || imageURL == "" {
		return models.SavedContent{}, ErrEmptyLibraryContent
	}

	property, found := service.properties.ByID(propertyID)
	if !found {
		return models.SavedContent{}, ErrUnknownProperty
	}

	item := models.SavedContent{
		ID:       fmt.Sprintf("lib_%s", uuid.NewString()),
		Property: property,
		Text:     text,
		ImageURL: imageURL,
		SavedAt:  now.UnixMilli(),
	}
	if err := service.library.Add(item); err != nil {
		return models.SavedContent{}, err
	}
	return item, nil
}

func (service *LibraryService) Delete(id string) error {
	return service.library.Delete(id)
}

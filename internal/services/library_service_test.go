package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/terraincognita07/refboard/internal/models"
)

type stubLibraryStorage struct {
	items []models.SavedContent
}

func (stub *stubLibraryStorage) All() []models.SavedContent { return stub.items }

func (stub *stubLibraryStorage) Add(item models.SavedContent) error {
	stub.items = append([]models.SavedContent{item}, stub.items...)
	return nil
}

func (stub *stubLibraryStorage) Delete(id string) error {
	remaining := make([]models.SavedContent, 0, len(stub.items))
	for _, item := range stub.items {
		if item.ID != id {
			remaining = append(remaining, item)
		}
	}
	stub.items = remaining
	return nil
}

func TestLibrarySaveMintsIDAndResolvesProperty(t *testing.T) {
	storage := &stubLibraryStorage{}
	properties := stubProperties{properties: map[string]models.Property{
		"p1": {ID: "p1", Name: "Azure Bay"},
	}}
	service := NewLibraryService(storage, properties)
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	item, err := service.Save("p1", "Great post", "data:image/jpeg;base64,aGk=", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(item.ID, "lib_") {
		t.Fatalf("expected lib_ prefixed id, got %q", item.ID)
	}
	if item.Property.Name != "Azure Bay" {
		t.Fatalf("expected resolved property, got %+v", item.Property)
	}
	if item.SavedAt != now.UnixMilli() {
		t.Fatalf("expected saved-at %d, got %d", now.UnixMilli(), item.SavedAt)
	}
	if len(storage.items) != 1 {
		t.Fatalf("expected item persisted")
	}
}

func TestLibrarySaveRejectsIncompleteContent(t *testing.T) {
	service := NewLibraryService(&stubLibraryStorage{}, stubProperties{properties: map[string]models.Property{"p1": {ID: "p1"}}})
	now := time.Now()

	if _, err := service.Save("p1", "   ", "data:image/jpeg;base64,aGk=", now); !errors.Is(err, ErrEmptyLibraryContent) {
		t.Fatalf("expected ErrEmptyLibraryContent, got %v", err)
	}
	if _, err := service.Save("p1", "text", "", now); !errors.Is(err, ErrEmptyLibraryContent) {
		t.Fatalf("expected ErrEmptyLibraryContent, got %v", err)
	}
	if _, err := service.Save("missing", "text", "image", now); !errors.Is(err, ErrUnknownProperty) {
		t.Fatalf("expected ErrUnknownProperty, got %v", err)
	}
}

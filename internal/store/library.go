package store

import (
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/refboard/internal/models"
)

type LibraryStore struct {
	kv     KeyValue
	logger logrus.FieldLogger
}

func (store *LibraryStore) All() []models.SavedContent {
	items := make([]models.SavedContent, 0)
	if !loadJSONValue(store.kv, store.logger, keyLibrary, &items) {
		return []models.SavedContent{}
	}

	valid := make([]models.SavedContent, 0, len(items))
	for _, item := range items {
		if item.ID == "" || item.Property.ID == "" || item.Text == "" || item.ImageURL == "" || item.SavedAt <= 0 {
			continue
		}
		valid = append(valid, item)
	}
	return valid
}

func (store *LibraryStore) Add(item models.SavedContent) error {
	items := store.All()
	items = append([]models.SavedContent{item}, items...)
	return saveJSONValue(store.kv, keyLibrary, items)
}

func (store *LibraryStore) Delete(id string) error {
	items := store.All()
	remaining := make([]models.SavedContent, 0, len(items))
	for _, item := range items {
		if item.ID == id {
			continue
		}
		remaining = append(remaining, item)
	}
	return saveJSONValue(store.kv, keyLibrary, remaining)
}

func (store *LibraryStore) Clear() error {
	return store.kv.Delete(keyLibrary)
}

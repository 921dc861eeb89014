package store

import (
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/refboard/internal/models"
)

type ClickStore struct {
	kv     KeyValue
	logger logrus.FieldLogger
}

func (store *ClickStore) All() []models.ClickEvent {
	clicks := make([]models.ClickEvent, 0)
	if !loadJSONValue(store.kv, store.logger, keyClicks, &clicks) {
		return []models.ClickEvent{}
	}

	valid := make([]models.ClickEvent, 0, len(clicks))
	for _, click := range clicks {
		if click.PropertyID == "" || click.Timestamp <= 0 {
			continue
		}
		valid = append(valid, click)
	}
	return valid
}

func (store *ClickStore) Append(click models.ClickEvent) error {
	clicks := store.All()
	clicks = append(clicks, click)
	return saveJSONValue(store.kv, keyClicks, clicks)
}

func (store *ClickStore) Clear() error {
	return store.kv.Delete(keyClicks)
}

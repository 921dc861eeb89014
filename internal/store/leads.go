package store

import (
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/refboard/internal/models"
)

type LeadStore struct {
	kv     KeyValue
	logger logrus.FieldLogger
}

func (store *LeadStore) All() []models.Lead {
	leads := make([]models.Lead, 0)
	if !loadJSONValue(store.kv, store.logger, keyLeads, &leads) {
		return []models.Lead{}
	}

	valid := make([]models.Lead, 0, len(leads))
	for _, lead := range leads {
		if lead.Email == "" || lead.Timestamp <= 0 {
			continue
		}
		valid = append(valid, lead)
	}
	return valid
}

// Add prepends so the newest lead lists first.
func (store *LeadStore) Add(lead models.Lead) error {
	leads := store.All()
	leads = append([]models.Lead{lead}, leads...)
	return saveJSONValue(store.kv, keyLeads, leads)
}

func (store *LeadStore) Clear() error {
	return store.kv.Delete(keyLeads)
}

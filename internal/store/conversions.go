package store

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/refboard/internal/models"
)

// ErrLeadAlreadyConverted rejects a second conversion for the same lead
// email. First write wins; the collection is left unchanged.
var ErrLeadAlreadyConverted = errors.New("lead already converted")

type ConversionStore struct {
	kv     KeyValue
	logger logrus.FieldLogger
}

func (store *ConversionStore) All() []models.Conversion {
	conversions := make([]models.Conversion, 0)
	if !loadJSONValue(store.kv, store.logger, keyConversions, &conversions) {
		return []models.Conversion{}
	}

	valid := make([]models.Conversion, 0, len(conversions))
	for _, conversion := range conversions {
		if conversion.LeadEmail == "" || conversion.PropertyID == "" || conversion.Timestamp <= 0 {
			continue
		}
		if conversion.InvestmentAmount < 0 {
			continue
		}
		valid = append(valid, conversion)
	}
	return valid
}

func (store *ConversionStore) Add(conversion models.Conversion) error {
	conversions := store.All()
	for _, existing := range conversions {
		if existing.LeadEmail == conversion.LeadEmail {
			return ErrLeadAlreadyConverted
		}
	}
	conversions = append([]models.Conversion{conversion}, conversions...)
	return saveJSONValue(store.kv, keyConversions, conversions)
}

func (store *ConversionStore) Clear() error {
	return store.kv.Delete(keyConversions)
}

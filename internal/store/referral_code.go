package store

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// ReferralCodeStore keeps the operator's code as a raw string value,
// not JSON, matching the original storage format.
type ReferralCodeStore struct {
	kv     KeyValue
	logger logrus.FieldLogger
}

func (store *ReferralCodeStore) Get() string {
	raw, found, err := store.kv.Get(keyReferralCode)
	if err != nil {
		store.logger.WithError(err).WithField("key", keyReferralCode).Warn("record store read failed")
		return ""
	}
	if !found {
		return ""
	}
	return strings.TrimSpace(raw)
}

func (store *ReferralCodeStore) Set(code string) error {
	return store.kv.Put(keyReferralCode, strings.TrimSpace(code))
}

func (store *ReferralCodeStore) Clear() error {
	return store.kv.Delete(keyReferralCode)
}

package store

import "github.com/sirupsen/logrus"

type DismissedTipStore struct {
	kv     KeyValue
	logger logrus.FieldLogger
}

func (store *DismissedTipStore) All() []string {
	ids := make([]string, 0)
	loadJSONValue(store.kv, store.logger, keyDismissedTips, &ids)

	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		valid = append(valid, id)
	}
	return valid
}

func (store *DismissedTipStore) Contains(tipID string) bool {
	for _, id := range store.All() {
		if id == tipID {
			return true
		}
	}
	return false
}

func (store *DismissedTipStore) Add(tipID string) error {
	if store.Contains(tipID) {
		return nil
	}
	ids := append(store.All(), tipID)
	return saveJSONValue(store.kv, keyDismissedTips, ids)
}

func (store *DismissedTipStore) Clear() error {
	return store.kv.Delete(keyDismissedTips)
}

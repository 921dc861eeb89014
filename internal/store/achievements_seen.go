package store

import "github.com/sirupsen/logrus"

type SeenAchievementStore struct {
	kv     KeyValue
	logger logrus.FieldLogger
}

func (store *SeenAchievementStore) All() map[string]struct{} {
	ids := make([]string, 0)
	loadJSONValue(store.kv, store.logger, keyAchievementsSeen, &ids)

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		seen[id] = struct{}{}
	}
	return seen
}

func (store *SeenAchievementStore) Add(achievementIDs ...string) error {
	seen := store.All()
	for _, id := range achievementIDs {
		if id == "" {
			continue
		}
		seen[id] = struct{}{}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	return saveJSONValue(store.kv, keyAchievementsSeen, ids)
}

// Clear re-arms unlock notifications; it never revokes unlock state,
// which is always recomputed from the record stores.
func (store *SeenAchievementStore) Clear() error {
	return store.kv.Delete(keyAchievementsSeen)
}

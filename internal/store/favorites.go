package store

import "github.com/sirupsen/logrus"

type FavoriteStore struct {
	kv     KeyValue
	logger logrus.FieldLogger
}

func (store *FavoriteStore) All() []string {
	favorites := make([]string, 0)
	if !loadJSONValue(store.kv, store.logger, keyFavorites, &favorites) {
		return []string{}
	}

	valid := make([]string, 0, len(favorites))
	for _, propertyID := range favorites {
		if propertyID == "" {
			continue
		}
		valid = append(valid, propertyID)
	}
	return valid
}

func (store *FavoriteStore) IsFavorite(propertyID string) bool {
	for _, favorite := range store.All() {
		if favorite == propertyID {
			return true
		}
	}
	return false
}

// Toggle flips membership and reports the resulting state.
func (store *FavoriteStore) Toggle(propertyID string) (bool, error) {
	favorites := store.All()
	updated := make([]string, 0, len(favorites)+1)
	removed := false
	for _, favorite := range favorites {
		if favorite == propertyID {
			removed = true
			continue
		}
		updated = append(updated, favorite)
	}
	if !removed {
		updated = append(updated, propertyID)
	}
	if err := saveJSONValue(store.kv, keyFavorites, updated); err != nil {
		return false, err
	}
	return !removed, nil
}

func (store *FavoriteStore) Clear() error {
	return store.kv.Delete(keyFavorites)
}

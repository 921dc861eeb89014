package store

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

type GoalStore struct {
	kv     KeyValue
	logger logrus.FieldLogger
}

// Load returns the monthly earnings goal, 0 when unset or unparsable.
func (store *GoalStore) Load() float64 {
	raw, found, err := store.kv.Get(keyGoal)
	if err != nil {
		store.logger.WithError(err).WithField("key", keyGoal).Warn("record store read failed")
		return 0
	}
	if !found {
		return 0
	}

	goal, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		store.logger.WithField("key", keyGoal).Warn("record store holds malformed goal")
		return 0
	}
	if goal < 0 {
		return 0
	}
	return goal
}

// Save clamps the goal to zero or above before persisting.
func (store *GoalStore) Save(goal float64) error {
	if goal < 0 {
		goal = 0
	}
	return store.kv.Put(keyGoal, strconv.FormatFloat(goal, 'f', -1, 64))
}

func (store *GoalStore) Clear() error {
	return store.kv.Delete(keyGoal)
}

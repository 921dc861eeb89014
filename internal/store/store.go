package store

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// Storage key per record store. The names match the original browser
// deployment so an imported data dump loads unchanged.
const (
	keyClicks           = "realisteAnalyticsData"
	keyLeads            = "realisteLeads"
	keyConversions      = "realisteConversions"
	keyFavorites        = "realisteFavorites"
	keyLibrary          = "realisteLibraryContent"
	keyLayout           = "realisteDashboardLayout_v4"
	keyGoal             = "realisteEarningsGoal"
	keyAchievementsSeen = "realisteAchievementsSeen"
	keyDismissedTips    = "realisteProactiveDismissedTips_v2"
	keyReferralCode     = "referralCode"
)

type KeyValue interface {
	Get(key string) (string, bool, error)
	Put(key string, value string) error
	Delete(key string) error
}

type Stores struct {
	Clicks           *ClickStore
	Leads            *LeadStore
	Conversions      *ConversionStore
	Favorites        *FavoriteStore
	Library          *LibraryStore
	Layout           *LayoutStore
	Goal             *GoalStore
	AchievementsSeen *SeenAchievementStore
	DismissedTips    *DismissedTipStore
	ReferralCode     *ReferralCodeStore
}

func NewStores(kv KeyValue, logger logrus.FieldLogger) *Stores {
	return &Stores{
		Clicks:           &ClickStore{kv: kv, logger: logger},
		Leads:            &LeadStore{kv: kv, logger: logger},
		Conversions:      &ConversionStore{kv: kv, logger: logger},
		Favorites:        &FavoriteStore{kv: kv, logger: logger},
		Library:          &LibraryStore{kv: kv, logger: logger},
		Layout:           &LayoutStore{kv: kv, logger: logger},
		Goal:             &GoalStore{kv: kv, logger: logger},
		AchievementsSeen: &SeenAchievementStore{kv: kv, logger: logger},
		DismissedTips:    &DismissedTipStore{kv: kv, logger: logger},
		ReferralCode:     &ReferralCodeStore{kv: kv, logger: logger},
	}
}

// ClearAll wipes every record store. Irreversible; callers gate it
// behind an explicit confirmation.
func (stores *Stores) ClearAll() error {
	clears := []func() error{
		stores.Clicks.Clear,
		stores.Leads.Clear,
		stores.Conversions.Clear,
		stores.Favorites.Clear,
		stores.Library.Clear,
		stores.Layout.Clear,
		stores.Goal.Clear,
		stores.AchievementsSeen.Clear,
		stores.DismissedTips.Clear,
		stores.ReferralCode.Clear,
	}
	for _, clear := range clears {
		if err := clear(); err != nil {
			return err
		}
	}
	return nil
}

// loadJSONValue reads and decodes a stored JSON value. Missing keys and
// malformed payloads fall back to the zero value: storage problems are
// logged, never surfaced to the caller.
func loadJSONValue[T any](kv KeyValue, logger logrus.FieldLogger, key string, target *T) bool {
	raw, found, err := kv.Get(key)
	if err != nil {
		logger.WithError(err).WithField("key", key).Warn("record store read failed")
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		logger.WithError(err).WithField("key", key).Warn("record store holds malformed JSON")
		return false
	}
	return true
}

func saveJSONValue(kv KeyValue, key string, value any) error {
	serialized, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return kv.Put(key, string(serialized))
}

package services

import (
	"errors"

	"github.com/terraincognita07/refboard/internal/store"
)

var ErrUnknownStore = errors.New("unknown record store")

// SettingsService backs the danger-zone actions: per-store and global
// clears, plus the monthly goal. Clears are irreversible and gated
// behind an explicit confirmation at the API surface.
type SettingsService struct {
	stores *store.Stores
}

func NewSettingsService(stores *store.Stores) *SettingsService {
	return &SettingsService{stores: stores}
}

func (service *SettingsService) ClearStore(name string) error {
	clear, known := service.clearByName(name)
	if !known {
		return ErrUnknownStore
	}
	return clear()
}

func (service *SettingsService) ClearableStores() []string {
	return []string{
		"clicks",
		"leads",
		"conversions",
		"favorites",
		"library",
		"layout",
		"goal",
		"achievements_seen",
		"dismissed_tips",
		"referral_code",
	}
}

func (service *SettingsService) clearByName(name string) (func() error, bool) {
	switch name {
	case "clicks":
		return service.stores.Clicks.Clear, true
	case "leads":
		return service.stores.Leads.Clear, true
	case "conversions":
		return service.stores.Conversions.Clear, true
	case "favorites":
		return service.stores.Favorites.Clear, true
	case "library":
		return service.stores.Library.Clear, true
	case "layout":
		return service.stores.Layout.Clear, true
	case "goal":
		return service.stores.Goal.Clear, true
	case "achievements_seen":
		return service.stores.AchievementsSeen.Clear, true
	case "dismissed_tips":
		return service.stores.DismissedTips.Clear, true
	case "referral_code":
		return service.stores.ReferralCode.Clear, true
	default:
		return nil, false
	}
}

func (service *SettingsService) ClearAll() error {
	return service.stores.ClearAll()
}

func (service *SettingsService) Goal() float64 {
	return service.stores.Goal.Load()
}

func (service *SettingsService) SetGoal(goal float64) (float64, error) {
	if err := service.stores.Goal.Save(goal); err != nil {
		return 0, err
	}
	return service.stores.Goal.Load(), nil
}

package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/refboard/internal/models"
	"github.com/terraincognita07/refboard/internal/store"
)

func newSettingsFixture() (*SettingsService, *store.Stores) {
	stores := store.NewStores(newMemoryKV(), silentLogger())
	return NewSettingsService(stores), stores
}

func TestClearStoreWipesOnlyNamedStore(t *testing.T) {
	service, stores := newSettingsFixture()
	if err := stores.Clicks.Append(models.ClickEvent{PropertyID: "p1", Timestamp: 1}); err != nil {
		t.Fatalf("seed clicks: %v", err)
	}
	if err := stores.Leads.Add(models.Lead{Email: "a@example.com", Timestamp: 1}); err != nil {
		t.Fatalf("seed leads: %v", err)
	}

	if err := service.ClearStore("clicks"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stores.Clicks.All()) != 0 {
		t.Fatalf("expected clicks cleared")
	}
	if len(stores.Leads.All()) != 1 {
		t.Fatalf("expected leads untouched")
	}
}

func TestClearStoreRejectsUnknownName(t *testing.T) {
	service, _ := newSettingsFixture()
	if err := service.ClearStore("sessions"); !errors.Is(err, ErrUnknownStore) {
		t.Fatalf("expected ErrUnknownStore, got %v", err)
	}
}

func TestEveryClearableStoreResolves(t *testing.T) {
	service, _ := newSettingsFixture()
	for _, name := range service.ClearableStores() {
		if err := service.ClearStore(name); err != nil {
			t.Fatalf("clear %q: %v", name, err)
		}
	}
}

func TestSetGoalClampsNegative(t *testing.T) {
	service, _ := newSettingsFixture()

	goal, err := service.SetGoal(-50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if goal != 0 {
		t.Fatalf("expected clamped goal 0, got %v", goal)
	}

	goal, err = service.SetGoal(1500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if goal != 1500 {
		t.Fatalf("expected goal 1500, got %v", goal)
	}
	if service.Goal() != 1500 {
		t.Fatalf("expected persisted goal")
	}
}

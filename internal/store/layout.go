package store

import (
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/refboard/internal/models"
)

type LayoutStore struct {
	kv     KeyValue
	logger logrus.FieldLogger
}

// Load returns the stored layout reconciled against the known widget
// set: unknown ids are dropped, duplicates collapse to their first
// occurrence, and missing widgets are appended visible. Consumers always
// see a total order over exactly the known widget ids.
func (store *LayoutStore) Load() []models.DashboardWidget {
	stored := make([]models.DashboardWidget, 0)
	if !loadJSONValue(store.kv, store.logger, keyLayout, &stored) {
		return models.DefaultDashboardLayout()
	}
	return ReconcileLayout(stored)
}

func (store *LayoutStore) Save(layout []models.DashboardWidget) error {
	return saveJSONValue(store.kv, keyLayout, ReconcileLayout(layout))
}

func (store *LayoutStore) Clear() error {
	return store.kv.Delete(keyLayout)
}

func ReconcileLayout(stored []models.DashboardWidget) []models.DashboardWidget {
	known := make(map[string]struct{}, len(models.KnownWidgetIDs()))
	for _, id := range models.KnownWidgetIDs() {
		known[id] = struct{}{}
	}

	reconciled := make([]models.DashboardWidget, 0, len(known))
	placed := make(map[string]struct{}, len(known))
	for _, widget := range stored {
		if _, ok := known[widget.ID]; !ok {
			continue
		}
		if _, duplicate := placed[widget.ID]; duplicate {
			continue
		}
		placed[widget.ID] = struct{}{}
		reconciled = append(reconciled, widget)
	}

	for _, widget := range models.DefaultDashboardLayout() {
		if _, ok := placed[widget.ID]; ok {
			continue
		}
		reconciled = append(reconciled, widget)
	}
	return reconciled
}

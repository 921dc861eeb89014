package services

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/refboard/internal/models"
)

type stubClicks struct {
	clicks []models.ClickEvent
}

func (stub stubClicks) All() []models.ClickEvent { return stub.clicks }

type stubLeads struct {
	leads []models.Lead
}

func (stub stubLeads) All() []models.Lead { return stub.leads }

type stubConversions struct {
	conversions []models.Conversion
}

func (stub stubConversions) All() []models.Conversion { return stub.conversions }

type stubLibrary struct {
	items []models.SavedContent
}

func (stub stubLibrary) All() []models.SavedContent { return stub.items }

type stubProperties struct {
	properties map[string]models.Property
}

func (stub stubProperties) ByID(id string) (models.Property, bool) {
	property, found := stub.properties[id]
	return property, found
}

type stubSeenLedger struct {
	seen   map[string]struct{}
	addErr error
}

func newStubSeenLedger(ids ...string) *stubSeenLedger {
	ledger := &stubSeenLedger{seen: make(map[string]struct{})}
	for _, id := range ids {
		ledger.seen[id] = struct{}{}
	}
	return ledger
}

func (ledger *stubSeenLedger) All() map[string]struct{} {
	snapshot := make(map[string]struct{}, len(ledger.seen))
	for id := range ledger.seen {
		snapshot[id] = struct{}{}
	}
	return snapshot
}

func (ledger *stubSeenLedger) Add(achievementIDs ...string) error {
	if ledger.addErr != nil {
		return ledger.addErr
	}
	for _, id := range achievementIDs {
		ledger.seen[id] = struct{}{}
	}
	return nil
}

type memoryKV struct {
	values map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{values: make(map[string]string)}
}

func (kv *memoryKV) Get(key string) (string, bool, error) {
	value, found := kv.values[key]
	return value, found, nil
}

func (kv *memoryKV) Put(key string, value string) error {
	kv.values[key] = value
	return nil
}

func (kv *memoryKV) Delete(key string) error {
	delete(kv.values, key)
	return nil
}

func silentLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

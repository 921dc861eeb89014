package services

import (
	"context"
	"testing"
	"time"

	"github.com/terraincognita07/refboard/internal/ai"
	"github.com/terraincognita07/refboard/internal/models"
	"github.com/terraincognita07/refboard/internal/store"
)

type stubTipGenerator struct {
	suggestion models.TipSuggestion
	err        error
	calls      int
	snapshot   ai.TipSnapshot
	dismissed  []string
}

func (stub *stubTipGenerator) GenerateTip(ctx context.Context, snapshot ai.TipSnapshot, dismissedIDs []string, language string) (models.TipSuggestion, error) {
	stub.calls++
	stub.snapshot = snapshot
	stub.dismissed = dismissedIDs
	return stub.suggestion, stub.err
}

type assistantFixture struct {
	service   *AssistantService
	generator *stubTipGenerator
	stores    *store.Stores
}

func newAssistantFixture(t *testing.T, generator *stubTipGenerator, leads []models.Lead, conversions []models.Conversion, referralCode string) assistantFixture {
	t.Helper()
	stores := store.NewStores(newMemoryKV(), silentLogger())
	if referralCode != "" {
		if err := stores.ReferralCode.Set(referralCode); err != nil {
			t.Fatalf("seed referral code: %v", err)
		}
	}

	properties := stubProperties{properties: map[string]models.Property{
		"p1": {ID: "p1", Name: "Azure Bay"},
	}}

	service := NewAssistantService(
		generator,
		stubClicks{clicks: []models.ClickEvent{{PropertyID: "p1", Timestamp: 1}}},
		stubLeads{leads: leads},
		stubConversions{conversions: conversions},
		stubLibrary{},
		stores.ReferralCode,
		stores.DismissedTips,
		properties,
		time.Nanosecond,
		silentLogger(),
	)
	return assistantFixture{service: service, generator: generator, stores: stores}
}

func TestBuildSnapshotCountsUnconvertedLeads(t *testing.T) {
	leads := []models.Lead{
		{Email: "new@example.com", Timestamp: 3},
		{Email: "converted@example.com", Timestamp: 2},
		{Email: "old@example.com", Timestamp: 1},
	}
	conversions := []models.Conversion{
		{LeadEmail: "converted@example.com", PropertyID: "p1", InvestmentAmount: 10000, Timestamp: 4},
	}

	fixture := newAssistantFixture(t, &stubTipGenerator{}, leads, conversions, "AGENT007")
	snapshot := fixture.service.BuildSnapshot()

	if !snapshot.ReferralCodeSet {
		t.Fatalf("expected referral code to register as set")
	}
	if snapshot.UnconvertedLeadCount != 2 {
		t.Fatalf("expected 2 unconverted leads, got %d", snapshot.UnconvertedLeadCount)
	}
	if snapshot.NewestUnconvertedEmail != "new@example.com" {
		t.Fatalf("expected newest unconverted lead first, got %q", snapshot.NewestUnconvertedEmail)
	}
	if snapshot.TopPropertyByClicksName != "Azure Bay" {
		t.Fatalf("expected resolved top property name, got %q", snapshot.TopPropertyByClicksName)
	}
}

func TestCheckPublishesResolvedTip(t *testing.T) {
	leads := []models.Lead{{Email: "new@example.com", Timestamp: 1}}
	generator := &stubTipGenerator{suggestion: models.TipSuggestion{
		ID:              "follow_up_lead",
		ShouldShow:      true,
		Message:         "Follow up with your newest lead.",
		ActionLabel:     "Compose email",
		ActionType:      models.TipActionComposeEmail,
		ActionPayloadID: "new@example.com",
	}}
	fixture := newAssistantFixture(t, generator, leads, nil, "")

	tip, err := fixture.service.Check(context.Background(), ai.LangEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tip == nil {
		t.Fatalf("expected a tip")
	}
	if tip.Action.Lead == nil || tip.Action.Lead.Email != "new@example.com" {
		t.Fatalf("expected hydrated lead payload, got %+v", tip.Action)
	}

	// An active tip short-circuits the next check.
	again, err := fixture.service.Check(context.Background(), ai.LangEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again == nil || again.ID != tip.ID {
		t.Fatalf("expected the active tip back, got %+v", again)
	}
	if generator.calls != 1 {
		t.Fatalf("expected a single upstream call, got %d", generator.calls)
	}
}

func TestCheckSuppressesHiddenAndDismissedTips(t *testing.T) {
	generator := &stubTipGenerator{suggestion: models.TipSuggestion{
		ID:          "quiet",
		ShouldShow:  false,
		Message:     "ignored",
		ActionLabel: "ignored",
		ActionType:  models.TipActionNone,
	}}
	fixture := newAssistantFixture(t, generator, nil, nil, "")

	tip, err := fixture.service.Check(context.Background(), ai.LangEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tip != nil {
		t.Fatalf("expected no tip when shouldShow is false, got %+v", tip)
	}

	generator.suggestion = models.TipSuggestion{
		ID:          "set_referral_code",
		ShouldShow:  true,
		Message:     "Set your code.",
		ActionLabel: "Go",
		ActionType:  models.TipActionNone,
	}
	if err := fixture.stores.DismissedTips.Add("set_referral_code"); err != nil {
		t.Fatalf("seed dismissed tip: %v", err)
	}

	tip, err = fixture.service.Check(context.Background(), ai.LangEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tip != nil {
		t.Fatalf("expected dismissed tip suppressed, got %+v", tip)
	}
	if len(generator.dismissed) != 1 || generator.dismissed[0] != "set_referral_code" {
		t.Fatalf("expected dismissed ids forwarded, got %v", generator.dismissed)
	}
}

func TestCheckSuppressesUnresolvableAction(t *testing.T) {
	generator := &stubTipGenerator{suggestion: models.TipSuggestion{
		ID:              "promote_property",
		ShouldShow:      true,
		Message:         "Promote your top property.",
		ActionLabel:     "Generate content",
		ActionType:      models.TipActionGenerateContent,
		ActionPayloadID: "missing-property",
	}}
	fixture := newAssistantFixture(t, generator, nil, nil, "")

	tip, err := fixture.service.Check(context.Background(), ai.LangEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tip != nil {
		t.Fatalf("expected unresolvable tip suppressed, got %+v", tip)
	}
	if fixture.service.Current() != nil {
		t.Fatalf("expected no active tip")
	}
}

func TestDismissClearsActiveTipAndPersists(t *testing.T) {
	generator := &stubTipGenerator{suggestion: models.TipSuggestion{
		ID:          "set_goal",
		ShouldShow:  true,
		Message:     "Set a monthly goal.",
		ActionLabel: "Open settings",
		ActionType:  models.TipActionNone,
	}}
	fixture := newAssistantFixture(t, generator, nil, nil, "")

	if _, err := fixture.service.Check(context.Background(), ai.LangEN); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fixture.service.Current() == nil {
		t.Fatalf("expected an active tip")
	}

	if err := fixture.service.Dismiss("set_goal"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fixture.service.Current() != nil {
		t.Fatalf("expected active tip cleared")
	}
	if !fixture.stores.DismissedTips.Contains("set_goal") {
		t.Fatalf("expected dismissal persisted")
	}
}

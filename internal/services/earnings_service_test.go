package services

import (
	"math"
	"testing"
	"time"

	"github.com/terraincognita07/refboard/internal/models"
)

func TestReferrerEarningsApplyFixedRate(t *testing.T) {
	if got := ReferrerEarnings(50000); math.Abs(got-750) > 1e-9 {
		t.Fatalf("expected 750, got %v", got)
	}
	if got := RefereeBonus(50000); math.Abs(got-250) > 1e-9 {
		t.Fatalf("expected 250, got %v", got)
	}
}

func TestBuildFunnelSurvivesZeroDenominators(t *testing.T) {
	service := NewEarningsService(stubClicks{}, stubLeads{}, stubConversions{}, stubProperties{})

	funnel := service.BuildFunnel()
	if funnel.ClickToLeadRate != 0 || funnel.LeadToConversionRate != 0 || funnel.ClickToConversionRate != 0 {
		t.Fatalf("expected zero rates on empty data, got %+v", funnel)
	}
}

func TestBuildFunnelRates(t *testing.T) {
	clicks := make([]models.ClickEvent, 10)
	for index := range clicks {
		clicks[index] = models.ClickEvent{PropertyID: "p1", Timestamp: 1}
	}
	leads := []models.Lead{
		{Email: "a@example.com", Timestamp: 1},
		{Email: "b@example.com", Timestamp: 2},
	}
	conversions := []models.Conversion{
		{LeadEmail: "a@example.com", PropertyID: "p1", InvestmentAmount: 50000, Timestamp: 3},
	}

	service := NewEarningsService(stubClicks{clicks: clicks}, stubLeads{leads: leads}, stubConversions{conversions: conversions}, stubProperties{})
	funnel := service.BuildFunnel()

	if math.Abs(funnel.ClickToLeadRate-20) > 1e-9 {
		t.Fatalf("expected 20%% click-to-lead, got %v", funnel.ClickToLeadRate)
	}
	if math.Abs(funnel.LeadToConversionRate-50) > 1e-9 {
		t.Fatalf("expected 50%% lead-to-conversion, got %v", funnel.LeadToConversionRate)
	}
	if math.Abs(funnel.ClickToConversionRate-10) > 1e-9 {
		t.Fatalf("expected 10%% click-to-conversion, got %v", funnel.ClickToConversionRate)
	}
}

func TestBuildOverviewDerivesEarnings(t *testing.T) {
	now := time.Date(2026, 8, 31, 18, 0, 0, 0, time.UTC)
	conversions := []models.Conversion{
		{LeadEmail: "a@example.com", PropertyID: "p1", InvestmentAmount: 50000, Timestamp: now.UnixMilli()},
		{LeadEmail: "b@example.com", PropertyID: "p2", InvestmentAmount: 20000, Timestamp: now.AddDate(0, 0, -2).UnixMilli()},
	}
	properties := stubProperties{properties: map[string]models.Property{
		"p1": {ID: "p1", Name: "Azure Bay"},
		"p2": {ID: "p2", Name: "Skyline Lofts"},
	}}

	service := NewEarningsService(stubClicks{}, stubLeads{}, stubConversions{conversions: conversions}, properties)
	overview := service.BuildOverview(now)

	if math.Abs(overview.TotalEarnings-1050) > 1e-9 {
		t.Fatalf("expected 1050 total earnings, got %v", overview.TotalEarnings)
	}
	if overview.TopProperty == nil || overview.TopProperty.ID != "p1" {
		t.Fatalf("expected top property p1, got %+v", overview.TopProperty)
	}
	if len(overview.DailyEarnings) != 7 {
		t.Fatalf("expected 7 daily entries, got %d", len(overview.DailyEarnings))
	}
	if overview.DailyEarnings[0].Date != "2026-08-25" {
		t.Fatalf("expected oldest-first series, got first date %s", overview.DailyEarnings[0].Date)
	}
	last := overview.DailyEarnings[6]
	if last.Date != "2026-08-31" || math.Abs(last.Amount-750) > 1e-9 {
		t.Fatalf("unexpected newest bucket: %+v", last)
	}
}

func TestGoalProgressPercentClamps(t *testing.T) {
	tests := []struct {
		name     string
		goal     float64
		earnings float64
		want     float64
	}{
		{name: "quarter", goal: 1000, earnings: 250, want: 25},
		{name: "overshoot clamps", goal: 1000, earnings: 1500, want: 100},
		{name: "zero goal", goal: 0, earnings: 500, want: 0},
		{name: "negative goal", goal: -10, earnings: 500, want: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := GoalProgressPercent(test.goal, test.earnings); math.Abs(got-test.want) > 1e-9 {
				t.Fatalf("got %v, want %v", got, test.want)
			}
		})
	}
}

package services

import (
	"strings"
	"testing"
	"time"

	"github.com/terraincognita07/refboard/internal/models"
)

func TestCSVTableEncodeQuotesEveryField(t *testing.T) {
	table := CSVTable{
		Headers: []string{"a", "b"},
		Rows:    [][]string{{"1", "x,y"}},
	}

	expected := `"a","b"` + "\n" + `"1","x,y"`
	if got := table.Encode(); got != expected {
		t.Fatalf("got %q, want %q", got, expected)
	}
}

func TestCSVTableEncodeDoublesInternalQuotes(t *testing.T) {
	table := CSVTable{
		Headers: []string{"text"},
		Rows:    [][]string{{`say "hello"`}},
	}

	expected := `"text"` + "\n" + `"say ""hello"""`
	if got := table.Encode(); got != expected {
		t.Fatalf("got %q, want %q", got, expected)
	}
}

func TestConversionsTableUsesNaturalKeyOrder(t *testing.T) {
	conversions := []models.Conversion{
		{LeadEmail: "a@example.com", PropertyID: "p1", InvestmentAmount: 50000, Timestamp: 1700000000000},
	}
	service := NewExportService(stubClicks{}, stubLeads{}, stubConversions{conversions: conversions})

	table := service.ConversionsTable()
	header := strings.Join(table.Headers, ",")
	if header != "leadEmail,propertyId,investmentAmount,timestamp" {
		t.Fatalf("unexpected header order: %s", header)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(table.Rows))
	}
	row := table.Rows[0]
	if row[0] != "a@example.com" || row[1] != "p1" || row[2] != "50000" || row[3] != "1700000000000" {
		t.Fatalf("unexpected row: %v", row)
	}
}

func TestExportFilenameStampsUTCDate(t *testing.T) {
	now := time.Date(2026, 8, 31, 23, 30, 0, 0, time.FixedZone("ahead", 3*3600))
	if got := ExportFilename("leads", now); got != "refboard_leads_2026-08-31.csv" {
		t.Fatalf("unexpected filename: %s", got)
	}
}

func TestEmptyTableEncodesHeaderOnly(t *testing.T) {
	service := NewExportService(stubClicks{}, stubLeads{}, stubConversions{})
	if got := service.ClicksTable().Encode(); got != `"propertyId","timestamp"` {
		t.Fatalf("unexpected empty export: %q", got)
	}
}

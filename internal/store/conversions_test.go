package store

import (
	"errors"
	"testing"

	"github.com/terraincognita07/refboard/internal/models"
)

func TestConversionStoreRejectsSecondConversionForSameLead(t *testing.T) {
	stores := newTestStores(newStubKV())

	first := models.Conversion{LeadEmail: "ada@example.com", PropertyID: "p1", InvestmentAmount: 50000, Timestamp: 1000}
	if err := stores.Conversions.Add(first); err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}

	duplicate := models.Conversion{LeadEmail: "ada@example.com", PropertyID: "p2", InvestmentAmount: 75000, Timestamp: 2000}
	if err := stores.Conversions.Add(duplicate); !errors.Is(err, ErrLeadAlreadyConverted) {
		t.Fatalf("expected ErrLeadAlreadyConverted, got %v", err)
	}

	conversions := stores.Conversions.All()
	if len(conversions) != 1 {
		t.Fatalf("expected collection unchanged with one conversion, got %d", len(conversions))
	}
	if conversions[0].PropertyID != "p1" || conversions[0].InvestmentAmount != 50000 {
		t.Fatalf("expected first-write-wins conversion, got %#v", conversions[0])
	}
}

func TestConversionStoreNewestFirst(t *testing.T) {
	stores := newTestStores(newStubKV())

	if err := stores.Conversions.Add(models.Conversion{LeadEmail: "a@example.com", PropertyID: "p1", InvestmentAmount: 1000, Timestamp: 1}); err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}
	if err := stores.Conversions.Add(models.Conversion{LeadEmail: "b@example.com", PropertyID: "p2", InvestmentAmount: 2000, Timestamp: 2}); err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}

	conversions := stores.Conversions.All()
	if len(conversions) != 2 || conversions[0].LeadEmail != "b@example.com" {
		t.Fatalf("expected newest conversion first, got %#v", conversions)
	}
}

func TestConversionStoreSkipsMalformedRecords(t *testing.T) {
	kv := newStubKV()
	kv.values[keyConversions] = `[{"leadEmail":"","propertyId":"p1","investmentAmount":10,"timestamp":1},{"leadEmail":"ok@example.com","propertyId":"p1","investmentAmount":10,"timestamp":1}]`
	stores := newTestStores(kv)

	conversions := stores.Conversions.All()
	if len(conversions) != 1 || conversions[0].LeadEmail != "ok@example.com" {
		t.Fatalf("expected only the valid conversion, got %#v", conversions)
	}
}

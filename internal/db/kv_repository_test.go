package db

import (
	"path/filepath"
	"testing"
)

func TestOpenSQLiteBootstrapsKVTable(t *testing.T) {
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "refboard.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() unexpected error: %v", err)
	}

	repo := NewKVRepository(database)

	if _, found, err := repo.Get("missing"); err != nil || found {
		t.Fatalf("expected missing key lookup (false, nil), got found=%v err=%v", found, err)
	}

	if err := repo.Put("realisteLeads", `[{"email":"a@b.c","timestamp":1}]`); err != nil {
		t.Fatalf("Put() unexpected error: %v", err)
	}

	value, found, err := repo.Get("realisteLeads")
	if err != nil || !found {
		t.Fatalf("expected stored key, got found=%v err=%v", found, err)
	}
	if value != `[{"email":"a@b.c","timestamp":1}]` {
		t.Fatalf("unexpected stored value %q", value)
	}

	if err := repo.Put("realisteLeads", `[]`); err != nil {
		t.Fatalf("Put() upsert unexpected error: %v", err)
	}
	value, _, err = repo.Get("realisteLeads")
	if err != nil || value != `[]` {
		t.Fatalf("expected upserted value [], got %q err=%v", value, err)
	}

	if err := repo.Delete("realisteLeads"); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if _, found, _ := repo.Get("realisteLeads"); found {
		t.Fatalf("expected key removed after delete")
	}
}

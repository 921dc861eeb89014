package store

import "testing"

func TestGoalSaveClampsNegativeToZero(t *testing.T) {
	stores := newTestStores(newStubKV())

	if err := stores.Goal.Save(-250); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	if goal := stores.Goal.Load(); goal != 0 {
		t.Fatalf("expected clamped goal 0, got %v", goal)
	}

	if err := stores.Goal.Save(1000); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	if goal := stores.Goal.Load(); goal != 1000 {
		t.Fatalf("expected goal 1000, got %v", goal)
	}
}

func TestGoalLoadToleratesMalformedValue(t *testing.T) {
	kv := newStubKV()
	kv.values[keyGoal] = "not-a-number"
	stores := newTestStores(kv)

	if goal := stores.Goal.Load(); goal != 0 {
		t.Fatalf("expected goal 0 on malformed value, got %v", goal)
	}
}

func TestGoalLoadToleratesStorageError(t *testing.T) {
	kv := newStubKV()
	kv.getErr = errStubStorage
	stores := newTestStores(kv)

	if goal := stores.Goal.Load(); goal != 0 {
		t.Fatalf("expected goal 0 on storage error, got %v", goal)
	}
}

package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap"
)

type record struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Note   string  `json:"note,omitempty"`
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := NewFileStore(t.TempDir(), zap.NewNop())

	in := []record{
		{ID: "TXN001", Amount: 340.50, Note: "groceries"},
		{ID: "TXN002", Amount: 65000},
	}
	if !s.Save("payflow_transactions", in) {
		t.Fatal("Save reported failure")
	}

	var out []record
	if !s.Load("payflow_transactions", &out) {
		t.Fatal("Load reported a miss after Save")
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round-trip mismatch: saved %+v, loaded %+v", in, out)
	}
}

func TestFileStoreMissingKey(t *testing.T) {
	s := NewFileStore(t.TempDir(), zap.NewNop())

	var out []record
	if s.Load("absent", &out) {
		t.Error("Load reported a hit for a key never written")
	}
	if len(out) != 0 {
		t.Errorf("out mutated on miss: %+v", out)
	}
}

func TestFileStoreCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir, zap.NewNop())

	if err := os.WriteFile(filepath.Join(dir, "payflow_expenses.json"), []byte("{broken"), 0644); err != nil {
		t.Fatalf("failed to plant corrupt document: %v", err)
	}

	var out []record
	if s.Load("payflow_expenses", &out) {
		t.Error("Load reported a hit for a corrupt document")
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	s := NewFileStore(t.TempDir(), zap.NewNop())

	if !s.Save("k", []record{{ID: "a", Amount: 1}}) {
		t.Fatal("first Save failed")
	}
	if !s.Save("k", []record{{ID: "b", Amount: 2}}) {
		t.Fatal("second Save failed")
	}

	var out []record
	if !s.Load("k", &out) {
		t.Fatal("Load missed after overwrite")
	}
	if len(out) != 1 || out[0].ID != "b" {
		t.Errorf("expected latest write to win, got %+v", out)
	}
}

func TestFileStoreUnwritableDirectory(t *testing.T) {
	// A data directory that cannot be created: writes drop, reads miss,
	// nothing crashes.
	file := filepath.Join(t.TempDir(), "occupied")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	s := NewFileStore(filepath.Join(file, "nested"), zap.NewNop())
	if s.Save("k", []record{{ID: "a"}}) {
		t.Error("Save reported success into an unwritable directory")
	}
	var out []record
	if s.Load("k", &out) {
		t.Error("Load reported a hit from an unwritable directory")
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()

	in := []record{{ID: "1", Amount: 99.99}}
	if !m.Save("k", in) {
		t.Fatal("Save reported failure")
	}

	var out []record
	if !m.Load("k", &out) {
		t.Fatal("Load missed after Save")
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round-trip mismatch: %+v vs %+v", in, out)
	}
}

func TestMemoryFailWrites(t *testing.T) {
	m := NewMemory()
	m.FailWrites = true

	if m.Save("k", []record{{ID: "1"}}) {
		t.Error("Save reported success with FailWrites set")
	}
	var out []record
	if m.Load("k", &out) {
		t.Error("Load reported a hit after a dropped write")
	}
}

func TestMemoryCorrupt(t *testing.T) {
	m := NewMemory()
	if !m.Save("k", []record{{ID: "1"}}) {
		t.Fatal("Save failed")
	}
	m.Corrupt("k")

	var out []record
	if m.Load("k", &out) {
		t.Error("Load reported a hit for a corrupt document")
	}
}

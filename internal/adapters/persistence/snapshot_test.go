package persistence

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/hb/internal/ports/secondary"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func TestSnapshotStore_RoundTrip(t *testing.T) {
	store := NewSnapshotStore()
	path := filepath.Join(t.TempDir(), "snap.json")

	original := []*secondary.HeartbeatRecord{
		{
			Code:            "backup",
			LastLine:        "backup ran %s ago",
			NeverLine:       "backup has never run",
			LeniencySeconds: 86400,
			LastPing:        1700000000,
		},
		{
			Code:      "water-plants",
			LastLine:  "plants watered %s ago",
			NeverLine: "plants never watered",
		},
	}

	if err := store.Write(path, original); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	loaded, err := store.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(loaded) != len(original) {
		t.Fatalf("loaded %d records, want %d", len(loaded), len(original))
	}
	for i := range original {
		if *loaded[i] != *original[i] {
			t.Errorf("record %d mismatch: got %+v, want %+v", i, loaded[i], original[i])
		}
	}
}

func TestSnapshotStore_PreservesOrder(t *testing.T) {
	store := NewSnapshotStore()
	path := filepath.Join(t.TempDir(), "snap.json")

	var records []*secondary.HeartbeatRecord
	codes := []string{"zeta", "alpha", "mid"}
	for _, code := range codes {
		records = append(records, &secondary.HeartbeatRecord{
			Code:      code,
			LastLine:  code + " %s",
			NeverLine: code + " never",
		})
	}

	if err := store.Write(path, records); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	loaded, err := store.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	for i, code := range codes {
		if loaded[i].Code != code {
			t.Errorf("loaded[%d] = %q, want %q", i, loaded[i].Code, code)
		}
	}
}

func TestSnapshotStore_NeverPingOmitted(t *testing.T) {
	store := NewSnapshotStore()
	path := filepath.Join(t.TempDir(), "snap.json")

	records := []*secondary.HeartbeatRecord{
		{Code: "backup", LastLine: "%s", NeverLine: "never"},
	}
	if err := store.Write(path, records); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	loaded, err := store.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if loaded[0].LastPing != 0 {
		t.Errorf("LastPing = %d, want 0 for never-pinged record", loaded[0].LastPing)
	}
}

func TestSnapshotStore_Read_MissingFile(t *testing.T) {
	store := NewSnapshotStore()

	_, err := store.Read(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSnapshotStore_Read_OrderReferencesUnknownCode(t *testing.T) {
	store := NewSnapshotStore()
	path := filepath.Join(t.TempDir(), "snap.json")

	bad := `{"version":"1","order":["ghost"],"heartbeats":{}}`
	if err := writeFile(path, bad); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	_, err := store.Read(path)
	if err == nil || !strings.Contains(err.Error(), "ghost") {
		t.Fatalf("expected unknown-code error, got %v", err)
	}
}

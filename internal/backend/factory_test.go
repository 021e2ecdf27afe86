package backend

import (
	"context"
	"path/filepath"
	"testing"

	"lynq/internal/config"
)

func TestCreateMemoryBackend(t *testing.T) {
	factory := NewFactory(nil)
	result, err := factory.CreateBackend(context.Background(), Config{Type: MemoryBackend})
	if err != nil {
		t.Fatalf("create memory backend: %v", err)
	}
	if result.Cleanup != nil {
		t.Fatalf("memory backend should not need cleanup")
	}

	p, err := result.Backend.ReadProfile(context.Background())
	if err != nil {
		t.Fatalf("read profile: %v", err)
	}
	if p.User.Name == "" {
		t.Fatalf("sample profile should have a name")
	}
}

func TestCreateSQLiteBackend(t *testing.T) {
	factory := NewFactory(nil)
	result, err := factory.CreateBackend(context.Background(), Config{
		Type:         SQLiteBackend,
		SQLiteDBPath: filepath.Join(t.TempDir(), "lynq.db"),
	})
	if err != nil {
		t.Fatalf("create sqlite backend: %v", err)
	}
	defer result.Cleanup()

	// The factory seeds an empty database from the sample document.
	p, err := result.Backend.ReadProfile(context.Background())
	if err != nil {
		t.Fatalf("read profile: %v", err)
	}
	if p.User.Name == "" {
		t.Fatalf("sqlite backend should be seeded")
	}
}

func TestCreateBackendInvalidType(t *testing.T) {
	factory := NewFactory(nil)
	if _, err := factory.CreateBackend(context.Background(), Config{Type: "bogus"}); err == nil {
		t.Fatalf("expected error for invalid backend type")
	}
}

func TestFromAppConfig(t *testing.T) {
	cfg, err := FromAppConfig(&config.Config{
		DataBackend:  "sqlite",
		SQLiteDBPath: "/tmp/lynq.db",
	})
	if err != nil {
		t.Fatalf("from app config: %v", err)
	}
	if cfg.Type != SQLiteBackend || cfg.SQLiteDBPath != "/tmp/lynq.db" {
		t.Fatalf("config = %+v", cfg)
	}

	if _, err := FromAppConfig(nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
	if _, err := FromAppConfig(&config.Config{DataBackend: "bogus"}); err == nil {
		t.Fatalf("expected error for invalid backend")
	}
}

func TestBackendTypeIsValid(t *testing.T) {
	for _, bt := range []BackendType{SQLiteBackend, SheetsBackend, MemoryBackend} {
		if !bt.IsValid() {
			t.Errorf("%s should be valid", bt)
		}
	}
	if BackendType("csv").IsValid() {
		t.Errorf("csv should not be valid")
	}
}

package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func TestCredentialStoreSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "credentials.json")
	store := NewCredentialStore(path)

	cred := &Credential{
		AccessToken: "tok-123",
		ExpiresAt:   "2099-01-01T00:00:00Z",
	}
	if err := store.Save(cred); err != nil {
		t.Fatalf("Failed to save credential: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Failed to load credential: %v", err)
	}
	if loaded.AccessToken != "tok-123" {
		t.Errorf("Expected token tok-123, got %s", loaded.AccessToken)
	}
	if loaded.ExpiresAt != "2099-01-01T00:00:00Z" {
		t.Errorf("Expected expiry preserved, got %s", loaded.ExpiresAt)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Failed to stat credential file: %v", err)
		}
		if info.Mode().Perm() != 0600 {
			t.Errorf("Expected file mode 0600, got %o", info.Mode().Perm())
		}
	}
}

func TestCredentialStoreLoadMissing(t *testing.T) {
	store := NewCredentialStore(filepath.Join(t.TempDir(), "credentials.json"))

	cred, err := store.Load()
	if err != nil {
		t.Fatalf("Missing file should not be an error: %v", err)
	}
	if cred.AccessToken != "" {
		t.Errorf("Expected empty credential, got %+v", cred)
	}
}

func TestCredentialStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewCredentialStore(path)

	if err := store.Save(&Credential{AccessToken: "tok", ExpiresAt: "2099-01-01T00:00:00Z"}); err != nil {
		t.Fatalf("Failed to save credential: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Failed to clear credential: %v", err)
	}

	// 文件仍然存在，内容为空对象
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Credential file should still exist after clear: %v", err)
	}
	cred, err := store.Load()
	if err != nil {
		t.Fatalf("Failed to load cleared credential: %v", err)
	}
	if cred.AccessToken != "" || cred.ExpiresAt != "" {
		t.Errorf("Expected empty credential after clear, got %+v", cred)
	}
}

func TestCredentialExpired(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		expiresAt string
		expired   bool
	}{
		{"2026-08-30T11:59:59Z", true},
		{"2026-08-30T12:00:01Z", false},
		{"", false},
		{"not-a-timestamp", false}, // 无法解析时交由服务端401兜底
	}

	for _, tt := range tests {
		cred := &Credential{AccessToken: "tok", ExpiresAt: tt.expiresAt}
		if got := cred.Expired(now); got != tt.expired {
			t.Errorf("Expired(%q) = %v, expected %v", tt.expiresAt, got, tt.expired)
		}
	}
}

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"asoctl/pkg/config"
)

// newTestRoot 装配指向测试服务器的命令树，并预置一个有效凭证
func newTestRoot(t *testing.T, origin string) (*bytes.Buffer, *bytes.Buffer, func(args ...string) error) {
	t.Helper()

	dir := t.TempDir()
	credPath := filepath.Join(dir, "credentials.json")
	store := config.NewCredentialStore(credPath)
	if err := store.Save(&config.Credential{
		AccessToken: "tok-test",
		ExpiresAt:   "2099-01-01T00:00:00Z",
	}); err != nil {
		t.Fatalf("Failed to seed credential: %v", err)
	}

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root := NewRootCommand(&Options{
		Stdout:         stdout,
		Stderr:         stderr,
		ConfigPath:     filepath.Join(dir, "config.yaml"),
		CredentialPath: credPath,
		Origin:         origin,
	})

	run := func(args ...string) error {
		root.SetArgs(args)
		root.SetOut(stdout)
		root.SetErr(stderr)
		return root.ExecuteContext(context.Background())
	}
	return stdout, stderr, run
}

func TestKeywordsCapEnforcedBeforeNetwork(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"keywords": []interface{}{}})
	}))
	defer server.Close()

	_, _, run := newTestRoot(t, server.URL)

	// 刚好50个关键词: 通过
	args := []string{"keywords", "123456"}
	for i := 0; i < 50; i++ {
		args = append(args, "kw"+strconv.Itoa(i))
	}
	if err := run(args...); err != nil {
		t.Fatalf("50 keywords should succeed: %v", err)
	}
	if requests != 1 {
		t.Fatalf("Expected exactly one request, got %d", requests)
	}

	// 51个: 在发起网络请求前拒绝
	args = append(args, "kw50")
	err := run(args...)
	if err == nil {
		t.Fatal("Expected 51 keywords to be rejected")
	}
	if !strings.Contains(err.Error(), "50") {
		t.Errorf("Error should name the cap, got %q", err.Error())
	}
	if requests != 1 {
		t.Errorf("Rejection must happen before any network call, got %d requests", requests)
	}
}

func TestKeywordsGreedyAppToken(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"keywords": []interface{}{}})
	}))
	defer server.Close()

	_, _, run := newTestRoot(t, server.URL)

	if err := run("keywords", "id6443551234", `"run tracker"`, "running"); err != nil {
		t.Fatalf("keywords command failed: %v", err)
	}

	if gotBody["appId"] != "6443551234" {
		t.Errorf("Expected appId from greedy token, got %v", gotBody["appId"])
	}
	kws, _ := gotBody["keywords"].([]interface{})
	if len(kws) != 2 || kws[0] != "run tracker" || kws[1] != "running" {
		t.Errorf("Expected normalized keywords, got %v", kws)
	}
	if gotBody["region"] != "US" || gotBody["platform"] != "iphone" {
		t.Errorf("Expected default region/platform, got %v/%v", gotBody["region"], gotBody["platform"])
	}
}

func TestCommandsRequireLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("No request should be made without a credential")
	}))
	defer server.Close()

	dir := t.TempDir()
	stdout := &bytes.Buffer{}
	root := NewRootCommand(&Options{
		Stdout:         stdout,
		Stderr:         &bytes.Buffer{},
		ConfigPath:     filepath.Join(dir, "config.yaml"),
		CredentialPath: filepath.Join(dir, "credentials.json"),
		Origin:         server.URL,
	})
	root.SetArgs([]string{"list-apps"})
	err := root.ExecuteContext(context.Background())
	if err == nil || !strings.Contains(err.Error(), "login") {
		t.Fatalf("Expected a login-required error, got %v", err)
	}
}

func TestExpiredCredentialFailsFast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("No request should be made with an expired credential")
	}))
	defer server.Close()

	dir := t.TempDir()
	credPath := filepath.Join(dir, "credentials.json")
	store := config.NewCredentialStore(credPath)
	if err := store.Save(&config.Credential{
		AccessToken: "tok-old",
		ExpiresAt:   "2020-01-01T00:00:00Z",
	}); err != nil {
		t.Fatalf("Failed to seed credential: %v", err)
	}

	root := NewRootCommand(&Options{
		Stdout:         &bytes.Buffer{},
		Stderr:         &bytes.Buffer{},
		ConfigPath:     filepath.Join(dir, "config.yaml"),
		CredentialPath: credPath,
		Origin:         server.URL,
	})
	root.SetArgs([]string{"subscription"})
	err := root.ExecuteContext(context.Background())
	if err == nil || !strings.Contains(err.Error(), "login") {
		t.Fatalf("Expected a login-required error, got %v", err)
	}
}

func TestLogoutClearsCredential(t *testing.T) {
	dir := t.TempDir()
	credPath := filepath.Join(dir, "credentials.json")
	store := config.NewCredentialStore(credPath)
	if err := store.Save(&config.Credential{AccessToken: "tok", ExpiresAt: "2099-01-01T00:00:00Z"}); err != nil {
		t.Fatalf("Failed to seed credential: %v", err)
	}

	stdout := &bytes.Buffer{}
	root := NewRootCommand(&Options{
		Stdout:         stdout,
		Stderr:         &bytes.Buffer{},
		ConfigPath:     filepath.Join(dir, "config.yaml"),
		CredentialPath: credPath,
	})
	root.SetArgs([]string{"logout"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	cred, err := store.Load()
	if err != nil {
		t.Fatalf("Failed to reload credential: %v", err)
	}
	if cred.AccessToken != "" {
		t.Errorf("Expected credential cleared, got %q", cred.AccessToken)
	}
}

func TestUnknownCommand(t *testing.T) {
	dir := t.TempDir()
	root := NewRootCommand(&Options{
		Stdout:     &bytes.Buffer{},
		Stderr:     &bytes.Buffer{},
		ConfigPath: filepath.Join(dir, "config.yaml"),
	})
	root.SetArgs([]string{"frobnicate"})
	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Fatal("Expected unknown command error")
	}
}

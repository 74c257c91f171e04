package commands

import (
	"testing"
)

func TestResolveAppGreedyFirstToken(t *testing.T) {
	loc, rest, err := resolveApp([]string{"id6443551234", "run tracker", "running"}, appFlags{}, false)
	if err != nil {
		t.Fatalf("resolveApp failed: %v", err)
	}
	if loc.AppID != "6443551234" {
		t.Errorf("Expected app id 6443551234, got %q", loc.AppID)
	}
	if len(rest) != 2 || rest[0] != "run tracker" {
		t.Errorf("Expected locator token consumed, rest = %v", rest)
	}
}

func TestResolveAppFallsBackToFlag(t *testing.T) {
	// 首个参数不是定位符时保留给关键词解析
	loc, rest, err := resolveApp([]string{"run tracker", "running"}, appFlags{app: "123456"}, false)
	if err != nil {
		t.Fatalf("resolveApp failed: %v", err)
	}
	if loc.AppID != "123456" {
		t.Errorf("Expected app id from flag, got %q", loc.AppID)
	}
	if len(rest) != 2 {
		t.Errorf("Expected args untouched, rest = %v", rest)
	}
}

func TestResolveAppGreedyBeatsFlag(t *testing.T) {
	// 贪心策略先于flag：长得像应用id的首个参数总是被吃掉
	loc, rest, err := resolveApp([]string{"654321", "running"}, appFlags{app: "123456"}, false)
	if err != nil {
		t.Fatalf("resolveApp failed: %v", err)
	}
	if loc.AppID != "654321" {
		t.Errorf("Expected positional to win, got %q", loc.AppID)
	}
	if len(rest) != 1 || rest[0] != "running" {
		t.Errorf("Unexpected rest %v", rest)
	}
}

func TestResolveAppPlannedFlag(t *testing.T) {
	loc, _, err := resolveApp([]string{"running"}, appFlags{planned: " my planned app "}, true)
	if err != nil {
		t.Fatalf("resolveApp failed: %v", err)
	}
	if !loc.IsPlanned() || loc.PlannedID != "myplannedapp" {
		t.Errorf("Expected planned locator, got %+v", loc)
	}
}

func TestResolveAppNoAppSpecified(t *testing.T) {
	if _, _, err := resolveApp([]string{"run tracker"}, appFlags{}, false); err == nil {
		t.Fatal("Expected an error when no app is specified")
	}

	if _, _, err := resolveApp(nil, appFlags{app: "not-an-id"}, false); err == nil {
		t.Fatal("Expected an error for an invalid --app value")
	}
}

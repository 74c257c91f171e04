package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	// 测试默认配置
	cfg, err := LoadConfig("nonexistent.yaml")
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}

	if cfg.App == nil {
		t.Fatal("App config should not be nil")
	}
	if cfg.API == nil {
		t.Fatal("API config should not be nil")
	}
	if cfg.App.LogLevel != "warn" {
		t.Errorf("Expected default log level warn, got %s", cfg.App.LogLevel)
	}
	if cfg.App.DefaultRegion != "US" {
		t.Errorf("Expected default region US, got %s", cfg.App.DefaultRegion)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), "test_config.yaml")

	originalConfig := &Config{
		App: &AppConfig{
			LogLevel:        "debug",
			LogFile:         "/tmp/test.log",
			DefaultRegion:   "SE",
			DefaultPlatform: "ipad",
		},
		API: &APIConfig{
			Origin: "https://staging.example.com",
		},
	}

	if err := SaveConfig(originalConfig, tempFile); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loadedConfig, err := LoadConfig(tempFile)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loadedConfig.App.LogLevel != originalConfig.App.LogLevel {
		t.Errorf("Expected log level %s, got %s", originalConfig.App.LogLevel, loadedConfig.App.LogLevel)
	}
	if loadedConfig.App.DefaultRegion != "SE" {
		t.Errorf("Expected region SE, got %s", loadedConfig.App.DefaultRegion)
	}
	if loadedConfig.API.Origin != originalConfig.API.Origin {
		t.Errorf("Expected origin %s, got %s", originalConfig.API.Origin, loadedConfig.API.Origin)
	}
}

func TestConfigWithEnvVars(t *testing.T) {
	// 设置环境变量
	os.Setenv("ASOCTL_API_ORIGIN", "https://env.example.com")
	os.Setenv("ASOCTL_LOG_LEVEL", "debug")
	os.Setenv("ASOCTL_REGION", "DE")
	defer func() {
		os.Unsetenv("ASOCTL_API_ORIGIN")
		os.Unsetenv("ASOCTL_LOG_LEVEL")
		os.Unsetenv("ASOCTL_REGION")
	}()

	cfg, err := LoadConfig("nonexistent.yaml")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// 验证环境变量覆盖了默认值
	if cfg.API.Origin != "https://env.example.com" {
		t.Errorf("Expected origin from env, got %s", cfg.API.Origin)
	}
	if cfg.App.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.App.LogLevel)
	}
	if cfg.App.DefaultRegion != "DE" {
		t.Errorf("Expected region DE, got %s", cfg.App.DefaultRegion)
	}
}

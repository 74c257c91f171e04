package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadConfig 从指定路径加载配置文件。路径为空时按默认顺序查找，
// 配置文件不存在时返回默认配置而不报错。
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = getDefaultConfigPath()
	}

	// 如果配置文件不存在，返回默认配置
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := getDefaultConfig()
		mergeEnvVars(cfg)
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigNotFound, err)
	}

	config := getDefaultConfig()
	ext := filepath.Ext(configPath)

	switch ext {
	case ".json":
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("%w: JSON parsing failed: %v", ErrInvalidFormat, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("%w: YAML parsing failed: %v", ErrInvalidFormat, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config file format: %s", ErrInvalidFormat, ext)
	}

	if config.App == nil {
		config.App = NewAppConfig()
	}
	if config.API == nil {
		config.API = NewAPIConfig()
	}

	mergeEnvVars(config)
	return config, nil
}

// SaveConfig 保存配置到指定路径
func SaveConfig(config *Config, configPath string) error {
	if configPath == "" {
		configPath = getDefaultConfigPath()
	}

	// 确保目录存在
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	ext := filepath.Ext(configPath)
	var data []byte
	var err error

	switch ext {
	case ".json":
		data, err = json.MarshalIndent(config, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(config)
	default:
		return fmt.Errorf("%w: unsupported config file format: %s", ErrInvalidFormat, ext)
	}

	if err != nil {
		return fmt.Errorf("config serialization failed: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getDefaultConfigPath 获取默认配置文件路径
func getDefaultConfigPath() string {
	// 优先级：当前目录 > 用户配置目录
	paths := []string{
		"./asoctl.yaml",
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(homeDir, ".asoctl", "config.yaml"),
			filepath.Join(homeDir, ".asoctl", "config.json"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	// 默认返回用户配置目录的 yaml 配置
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".asoctl", "config.yaml")
	}
	return "./asoctl.yaml"
}

// mergeEnvVars 将环境变量合并到配置中，环境变量优先于文件内容
func mergeEnvVars(config *Config) {
	if v := os.Getenv("ASOCTL_API_ORIGIN"); v != "" {
		config.API.Origin = v
	}
	if v := os.Getenv("ASOCTL_LOG_LEVEL"); v != "" {
		config.App.LogLevel = v
	}
	if v := os.Getenv("ASOCTL_LOG_FILE"); v != "" {
		config.App.LogFile = v
	}
	if v := os.Getenv("ASOCTL_REGION"); v != "" {
		config.App.DefaultRegion = v
	}
	if v := os.Getenv("ASOCTL_PLATFORM"); v != "" {
		config.App.DefaultPlatform = v
	}
}

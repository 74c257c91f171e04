package config

// Config 主配置结构体
type Config struct {
	App *AppConfig `json:"app" yaml:"app"`
	API *APIConfig `json:"api" yaml:"api"`
}

// AppConfig 应用级配置
type AppConfig struct {
	LogLevel        string `json:"log_level" yaml:"log_level"`
	LogFile         string `json:"log_file" yaml:"log_file"`
	DefaultRegion   string `json:"default_region" yaml:"default_region"`
	DefaultPlatform string `json:"default_platform" yaml:"default_platform"`
}

// APIConfig 服务端接口配置
type APIConfig struct {
	Origin string `json:"origin" yaml:"origin"` // 为空时使用内置origin
}

// NewAppConfig 创建默认应用配置
func NewAppConfig() *AppConfig {
	return &AppConfig{
		LogLevel:        "warn",
		DefaultRegion:   "US",
		DefaultPlatform: "iphone",
	}
}

// NewAPIConfig 创建默认接口配置
func NewAPIConfig() *APIConfig {
	return &APIConfig{}
}

// getDefaultConfig 获取默认配置，所有配置项都使用各自的默认值
func getDefaultConfig() *Config {
	return &Config{
		App: NewAppConfig(),
		API: NewAPIConfig(),
	}
}

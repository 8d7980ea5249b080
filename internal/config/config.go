// Package config 提供 gherkinparam CLI 的配置。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - .gherkinparam.yaml 等，见 cfgm.DefaultPaths
//  3. 环境变量 - GHERKINPARAM_ 前缀
//  4. CLI flags
package config

import "github.com/lwmacct/251207-go-pkg-gherkinparam/pkg/cfgm"

// Config CLI 配置。
type Config struct {
	Fixtures FixturesConfig `json:"fixtures" desc:"夹具配置"`
	Suite    SuiteConfig    `json:"suite" desc:"套件配置"`
	Output   OutputConfig   `json:"output" desc:"输出配置"`
	Log      LogConfig      `json:"log" desc:"日志配置"`
}

// FixturesConfig 夹具文件配置。
type FixturesConfig struct {
	Path string `json:"path" desc:"夹具文件路径 (YAML/JSON)"`
}

// SuiteConfig 套件配置文件。
//
//nolint:tagliatelle
type SuiteConfig struct {
	Paths     []string `json:"paths" desc:"套件配置搜索路径，命中首个即停止"`
	EnvPrefix string   `json:"env-prefix" desc:"覆盖套件配置的环境变量前缀"`
}

// OutputConfig 输出配置。
type OutputConfig struct {
	Format string `json:"format" desc:"输出格式 yaml|json"`
	Strict bool   `json:"strict" desc:"存在未解析的占位符时返回错误"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level string `json:"level" desc:"日志级别 debug|info|warn|error"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Fixtures: FixturesConfig{
			Path: "features/fixtures.yaml",
		},
		Suite: SuiteConfig{
			Paths:     cfgm.SuitePaths(),
			EnvPrefix: "SUITE_",
		},
		Output: OutputConfig{
			Format: "yaml",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

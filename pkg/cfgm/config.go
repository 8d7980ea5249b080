package cfgm

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-gherkinparam/pkg/templexp"
)

// DefaultPaths 返回默认配置文件的搜索顺序。
//
// appName 可选，提供后会追加应用专属路径。
// 返回顺序即查找顺序，先命中的文件生效。
//
// 优先级 (从高到低)：
//  1. ./.appname.yaml - 当前目录应用配置
//  2. ~/.appname.yaml - 用户主目录配置
//  3. /etc/appname/config.yaml - 系统级配置
//  4. config.yaml - 当前目录通用配置
//  5. config/config.yaml - 子目录通用配置
func DefaultPaths(appName ...string) []string {
	var paths []string

	if len(appName) > 0 && appName[0] != "" {
		name := appName[0]
		paths = append(paths, "."+name+".yaml")
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, "."+name+".yaml"))
		}
		paths = append(paths, "/etc/"+name+"/config.yaml")
	}

	paths = append(paths, "config.yaml", "config/config.yaml")

	return paths
}

// SuitePaths 返回套件配置文件的默认搜索顺序。
//
//  1. features/suite.yaml
//  2. features/suite.json
//  3. suite.yaml
func SuitePaths() []string {
	return []string{"features/suite.yaml", "features/suite.json", "suite.yaml"}
}

// Load 读取配置到结构体并按优先级合并。
//
// 优先级 (从低到高)：
//  1. 默认值 - defaultConfig
//  2. 配置文件 - [WithConfigPaths] / [WithAppName]
//  3. 环境变量(前缀) - [WithEnvPrefix]
//  4. CLI flags - [WithCommand]
//
// 配置 key 由 json tag 定义，YAML 与 JSON 共享同一套 key。
func Load[T any](defaultConfig T, opts ...Option) (*T, error) {
	o := newOptions(opts)
	if len(o.configPaths) == 0 {
		o.configPaths = DefaultPaths(o.appName)
	}

	configMap := structToMap(defaultConfig)
	if err := o.mergeFirstFile(configMap); err != nil {
		return nil, err
	}

	if o.envPrefix != "" {
		applyEnv(configMap, o.envPrefix, collectConfigKeys(defaultConfig))
	}

	if o.cmd != nil {
		applyCLIFlags(o.cmd, configMap, reflect.TypeOf(defaultConfig), "")
	}

	var cfg T
	if err := decodeConfigMap(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadCmd 是 [Load] 的便捷版本，适用于 CLI 场景。
//
// 它会注入 [WithCommand]，appName 非空时额外注入 [WithAppName]。
func LoadCmd[T any](cmd *cli.Command, defaultConfig T, appName string, opts ...Option) (*T, error) {
	baseOpts := []Option{WithCommand(cmd)}
	if appName != "" {
		baseOpts = append(baseOpts, WithAppName(appName))
	}

	return Load(defaultConfig, append(baseOpts, opts...)...)
}

// MustLoad 调用 [Load] 并在失败时 panic，适合启动阶段。
func MustLoad[T any](defaultConfig T, opts ...Option) *T {
	cfg, err := Load(defaultConfig, opts...)
	if err != nil {
		panic(fmt.Sprintf("cfgm: failed to load config: %v", err))
	}

	return cfg
}

// LoadMap 读取无固定结构的配置，例如测试套件的 settings。
//
// 优先级 (从低到高)：
//  1. 默认值 - [WithDefaults]
//  2. 配置文件 - [WithConfigPaths]，未设置时使用 [SuitePaths]
//  3. 环境变量(前缀) - [WithEnvPrefix]，仅覆盖已存在的叶子 key
//
// 没有找到任何文件时返回默认值（可能为空 map），不视为错误。
func LoadMap(opts ...Option) (map[string]any, error) {
	o := newOptions(opts)
	if len(o.configPaths) == 0 {
		o.configPaths = SuitePaths()
	}

	settings, _ := cloneValue(o.defaults).(map[string]any)
	if settings == nil {
		settings = map[string]any{}
	}
	if err := o.mergeFirstFile(settings); err != nil {
		return nil, err
	}

	if o.envPrefix != "" {
		applyEnv(settings, o.envPrefix, flattenMapKeys(settings))
	}

	return settings, nil
}

// MustLoadMap 调用 [LoadMap] 并在失败时 panic。
func MustLoadMap(opts ...Option) map[string]any {
	settings, err := LoadMap(opts...)
	if err != nil {
		panic(fmt.Sprintf("cfgm: failed to load settings: %v", err))
	}

	return settings
}

// LoadFile 读取单个 YAML/JSON 文件，根节点必须是对象。
//
// 与 [LoadMap] 不同，文件不存在时返回错误。常用于夹具文件。
func LoadFile(path string, opts ...Option) (map[string]any, error) {
	o := newOptions(opts)
	data, err := o.readFile(o.resolvePath(path))
	if err != nil {
		return nil, err
	}

	return data, nil
}

// mergeFirstFile 将首个可读文件合并到 dst。
func (o *options) mergeFirstFile(dst map[string]any) error {
	for _, p := range o.configPaths {
		path := o.resolvePath(p)
		fileMap, err := o.readFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return err
		}

		mergeMaps(dst, fileMap)
		slog.Debug("Loaded config from file", "path", path, "templateExpansion", !o.noTemplateExpansion)

		return nil
	}

	slog.Debug("No config file found, using defaults", "paths", o.configPaths)

	return nil
}

func (o *options) resolvePath(path string) string {
	if o.baseDir == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(o.baseDir, path)
}

func (o *options) readFile(path string) (map[string]any, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if !o.noTemplateExpansion {
		expanded, expandErr := templexp.ExpandTemplate(string(content))
		if expandErr != nil {
			return nil, fmt.Errorf("expand template in %s: %w", path, expandErr)
		}
		content = []byte(expanded)
	}

	data, err := parseConfigBytes(path, content)
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return data, nil
}

// applyEnv 按前缀读取环境变量并覆盖对应 key。
func applyEnv(dst map[string]any, prefix string, keys []string) {
	bindings := generateEnvBindings(prefix, keys)
	slog.Debug("Generated auto env bindings", "prefix", prefix, "count", len(bindings))
	for envKey, configPath := range bindings {
		if val := os.Getenv(envKey); val != "" {
			setByPath(dst, configPath, val)
			slog.Debug("Loaded env binding", "env", envKey, "path", configPath)
		}
	}
}

// collectConfigKeys 递归收集配置结构体的叶子 key（如 suite.env-prefix）。
func collectConfigKeys[T any](defaultConfig T) []string {
	var keys []string
	collectConfigKeysRecursive(reflect.TypeOf(defaultConfig), "", &keys)

	return keys
}

func collectConfigKeysRecursive(typ reflect.Type, prefix string, keys *[]string) {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := range typ.NumField() {
		field := typ.Field(i)
		key := configTagName(field)
		if key == "" {
			continue
		}

		fullKey := joinKey(prefix, key)
		if isStructType(field.Type) {
			collectConfigKeysRecursive(field.Type, fullKey, keys)

			continue
		}

		*keys = append(*keys, fullKey)
	}
}

// Package command 提供 gherkinparam 子命令共用的加载逻辑。
package command

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-gherkinparam/internal/config"
	"github.com/lwmacct/251207-go-pkg-gherkinparam/pkg/cfgm"
	"github.com/lwmacct/251207-go-pkg-gherkinparam/pkg/gherkinparam"
)

// AppName 应用名称，用于配置文件搜索路径。
const AppName = "gherkinparam"

// EnvPrefix CLI 配置的环境变量前缀。
const EnvPrefix = "GHERKINPARAM_"

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// Flags 返回 resolve 与 render 共用的 flags。
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "fixtures-path",
			Aliases: []string{"f"},
			Value:   Defaults.Fixtures.Path,
			Usage:   "夹具文件路径 (YAML/JSON)",
		},
		&cli.StringSliceFlag{
			Name:    "suite-paths",
			Aliases: []string{"s"},
			Value:   Defaults.Suite.Paths,
			Usage:   "套件配置搜索路径",
		},
		&cli.StringFlag{
			Name:  "suite-env-prefix",
			Value: Defaults.Suite.EnvPrefix,
			Usage: "覆盖套件配置的环境变量前缀",
		},
		&cli.StringFlag{
			Name:    "output-format",
			Aliases: []string{"o"},
			Value:   Defaults.Output.Format,
			Usage:   "输出格式 yaml|json",
		},
		&cli.BoolFlag{
			Name:  "output-strict",
			Usage: "存在未解析的占位符时返回错误",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: Defaults.Log.Level,
			Usage: "日志级别 debug|info|warn|error",
		},
	}
}

// Env 一次命令执行所需的配置与解析上下文。
type Env struct {
	Config   *config.Config
	Fixtures *gherkinparam.Fixtures
	Settings map[string]any
	Hook     *gherkinparam.Hook
}

// Setup 加载 CLI 配置、日志级别、夹具与套件配置。
func Setup(cmd *cli.Command) (*Env, error) {
	cfg, err := cfgm.LoadCmd(cmd, config.DefaultConfig(), AppName, cfgm.WithEnvPrefix(EnvPrefix))
	if err != nil {
		return nil, err
	}
	if err := SetupLogger(cfg.Log.Level); err != nil {
		return nil, err
	}

	return NewEnv(cfg)
}

// NewEnv 按 cfg 加载夹具与套件配置。
//
// 夹具文件不存在时使用空夹具；套件配置缺失时使用空 map。
func NewEnv(cfg *config.Config) (*Env, error) {
	fixtures := gherkinparam.NewFixtures(nil)
	if cfg.Fixtures.Path != "" {
		data, err := cfgm.LoadFile(cfg.Fixtures.Path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			slog.Debug("No fixtures file found", "path", cfg.Fixtures.Path)
		case err != nil:
			return nil, fmt.Errorf("load fixtures: %w", err)
		default:
			fixtures.Merge(data)
		}
	}

	settings, err := cfgm.LoadMap(
		cfgm.WithConfigPaths(cfg.Suite.Paths...),
		cfgm.WithEnvPrefix(cfg.Suite.EnvPrefix),
	)
	if err != nil {
		return nil, fmt.Errorf("load suite settings: %w", err)
	}

	hook := gherkinparam.NewHook(fixtures)
	hook.BeforeSuite(settings)

	return &Env{Config: cfg, Fixtures: fixtures, Settings: settings, Hook: hook}, nil
}

// SetupLogger 设置默认 slog 级别，日志输出到 stderr。
func SetupLogger(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))

	return nil
}

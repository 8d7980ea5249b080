package cfgm

import (
	"reflect"
	"strings"

	"github.com/urfave/cli/v3"
)

// applyCLIFlags 将用户显式设置的 CLI flags 写入配置 map。
//
// flag 名称由 json tag 路径生成，仅替换 "." 为 "-"：
//   - fixtures.path → --fixtures-path
//   - suite.env-prefix → --suite-env-prefix
//
// 支持 string、bool、int、int64、float64、time.Duration 与 []string。
func applyCLIFlags(cmd *cli.Command, config map[string]any, typ reflect.Type, prefix string) {
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
			applyCLIFlags(cmd, config, field.Type, fullKey)

			continue
		}

		flag := strings.ReplaceAll(fullKey, ".", "-")
		if !cmd.IsSet(flag) {
			continue
		}
		if value, ok := flagValue(cmd, flag, field.Type); ok {
			setByPath(config, fullKey, value)
		}
	}
}

func flagValue(cmd *cli.Command, flag string, typ reflect.Type) (any, bool) {
	if typ == durationType {
		return cmd.Duration(flag), true
	}

	switch typ.Kind() {
	case reflect.String:
		return cmd.String(flag), true
	case reflect.Bool:
		return cmd.Bool(flag), true
	case reflect.Int:
		return cmd.Int(flag), true
	case reflect.Int64:
		return cmd.Int64(flag), true
	case reflect.Float64:
		return cmd.Float64(flag), true
	case reflect.Slice:
		if typ.Elem().Kind() == reflect.String {
			return cmd.StringSlice(flag), true
		}
	}

	return nil, false
}

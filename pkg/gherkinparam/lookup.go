package gherkinparam

import (
	"reflect"
	"strconv"
)

// isContainer 报告 v 是否可以按键或下标继续下钻（map、slice、array）。
func isContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	case nil:
		return false
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// index 按 key 取容器中的元素。
//
// map 以字符串形式比较键（支持 string 与整数键），slice/array 以十进制下标访问。
// 容器不可索引或键不存在时返回 false。
func index(container any, key string) (any, bool) {
	switch c := container.(type) {
	case map[string]any:
		v, ok := c[key]
		return v, ok
	case []any:
		i, ok := sliceIndex(key, len(c))
		if !ok {
			return nil, false
		}
		return c[i], true
	case nil:
		return nil, false
	}

	val := reflect.ValueOf(container)
	switch val.Kind() {
	case reflect.Map:
		mk, ok := mapKey(val.Type().Key(), key)
		if !ok {
			return nil, false
		}
		elem := val.MapIndex(mk)
		if !elem.IsValid() {
			return nil, false
		}
		return elem.Interface(), true
	case reflect.Slice, reflect.Array:
		i, ok := sliceIndex(key, val.Len())
		if !ok {
			return nil, false
		}
		return val.Index(i).Interface(), true
	default:
		return nil, false
	}
}

func sliceIndex(key string, n int) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= n {
		return 0, false
	}

	return i, true
}

// mapKey 将字符串 key 转换为 map 的键类型。
func mapKey(typ reflect.Type, key string) (reflect.Value, bool) {
	switch typ.Kind() {
	case reflect.String:
		return reflect.ValueOf(key).Convert(typ), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(key, 10, typ.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(typ), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(key, 10, typ.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(typ), true
	case reflect.Interface:
		// map[any]any 等：YAML v2 风格的键通常是字符串。
		return reflect.ValueOf(key), true
	default:
		return reflect.Value{}, false
	}
}

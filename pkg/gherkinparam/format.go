package gherkinparam

import (
	"encoding/json"
	"fmt"
)

// Format 将解析结果转换为可写回步骤文本的字符串。
//
//   - nil → ""
//   - string / []byte → 原样
//   - map、slice 等容器 → JSON
//   - 其余标量 → fmt 默认格式
func Format(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	}

	if isContainer(v) {
		b, err := json.Marshal(v)
		if err == nil {
			return string(b)
		}
	}

	return fmt.Sprint(v)
}

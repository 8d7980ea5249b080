package templexp

import (
	"fmt"
	"maps"
	"os"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════
// 变量快照
// ═══════════════════════════════════════════════════════════════════════════

// environ 生成当前环境变量快照，":=" 的赋值只会写入这份数据。
func environ() map[string]string {
	vars := make(map[string]string)
	for _, env := range os.Environ() {
		if name, value, ok := strings.Cut(env, "="); ok {
			vars[name] = value
		}
	}

	return vars
}

// ═══════════════════════════════════════════════════════════════════════════
// 表达式解析
// ═══════════════════════════════════════════════════════════════════════════

// operator ${NAME<op>WORD} 中的运算符，不含可选的冒号前缀。
type operator byte

const (
	opNone    operator = 0
	opDefault operator = '-'
	opAlt     operator = '+'
	opError   operator = '?'
	opAssign  operator = '='
)

// expression 一个 ${...} 表达式。
//
// colon 为 true 时，空字符串与未设置等同对待。
type expression struct {
	name  string
	op    operator
	colon bool
	word  string
}

func isNameStart(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '_'
}

func isNameChar(ch byte) bool {
	return isNameStart(ch) || (ch >= '0' && ch <= '9')
}

func isOperator(ch byte) bool {
	switch operator(ch) {
	case opDefault, opAlt, opError, opAssign:
		return true
	}

	return false
}

func parseExpression(expr string) (expression, bool) {
	if expr == "" || !isNameStart(expr[0]) {
		return expression{}, false
	}

	i := 1
	for i < len(expr) && isNameChar(expr[i]) {
		i++
	}

	e := expression{name: expr[:i]}
	rest := expr[i:]
	switch {
	case rest == "":
		return e, true
	case len(rest) >= 2 && rest[0] == ':' && isOperator(rest[1]):
		e.colon = true
		e.op = operator(rest[1])
		e.word = rest[2:]
	case isOperator(rest[0]):
		e.op = operator(rest[0])
		e.word = rest[1:]
	default:
		return expression{}, false
	}

	return e, true
}

// ═══════════════════════════════════════════════════════════════════════════
// 展开
// ═══════════════════════════════════════════════════════════════════════════

type expander struct {
	vars map[string]string
}

func (x *expander) word(word string) (string, error) {
	if !strings.Contains(word, "${") {
		return word, nil
	}

	return x.text(word)
}

func (x *expander) eval(e expression) (string, error) {
	val, isSet := x.vars[e.name]
	// 带冒号时空值视为未设置
	present := isSet && (!e.colon || val != "")

	switch e.op {
	case opNone:
		return val, nil
	case opDefault:
		if present {
			return val, nil
		}
		return x.word(e.word)
	case opAlt:
		if !present {
			return "", nil
		}
		return x.word(e.word)
	case opError:
		if present {
			return val, nil
		}
		if e.word == "" {
			return "", fmt.Errorf("templexp: %s: parameter null or not set", e.name)
		}
		return "", fmt.Errorf("templexp: %s: %s", e.name, e.word)
	case opAssign:
		if present {
			return val, nil
		}
		expanded, err := x.word(e.word)
		if err != nil {
			return "", err
		}
		x.vars[e.name] = expanded
		return expanded, nil
	}

	return "", nil
}

func (x *expander) text(text string) (string, error) {
	var buf strings.Builder
	buf.Grow(len(text))

	for i := 0; i < len(text); {
		if text[i] != '$' || i+1 >= len(text) {
			buf.WriteByte(text[i])
			i++
			continue
		}

		switch text[i+1] {
		case '$':
			buf.WriteByte('$')
			i += 2
			continue
		case '{':
		default:
			buf.WriteByte('$')
			i++
			continue
		}

		end := matchingBrace(text, i+2)
		if end == -1 {
			buf.WriteByte('$')
			i++
			continue
		}

		e, ok := parseExpression(text[i+2 : end])
		if !ok {
			buf.WriteString(text[i : end+1])
			i = end + 1
			continue
		}
		expanded, err := x.eval(e)
		if err != nil {
			return "", err
		}
		buf.WriteString(expanded)
		i = end + 1
	}

	return buf.String(), nil
}

func matchingBrace(text string, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		switch {
		case text[i] == '$' && i+1 < len(text) && text[i+1] == '{':
			depth++
			i++
		case text[i] == '}' && depth == 0:
			return i
		case text[i] == '}':
			depth--
		}
	}

	return -1
}

// ExpandTemplate 使用当前环境变量对 text 执行 Shell 参数展开。
//
// 支持语法：
//   - ${VAR} - 变量替换
//   - ${VAR:-default} / ${VAR-default} - fallback
//   - ${VAR:+alt} / ${VAR+alt} - 替代值
//   - ${VAR:?msg} / ${VAR?msg} - 必填校验
//   - ${VAR:=default} / ${VAR=default} - 赋值（仅作用于当前展开）
//
// 仅在必填校验失败时返回 error。
func ExpandTemplate(text string) (string, error) {
	x := &expander{vars: environ()}
	return x.text(text)
}

// Expand 与 [ExpandTemplate] 相同，但变量来自 vars 而非环境变量。
//
// vars 不会被修改。
func Expand(text string, vars map[string]string) (string, error) {
	x := &expander{vars: maps.Clone(vars)}
	if x.vars == nil {
		x.vars = map[string]string{}
	}

	return x.text(text)
}

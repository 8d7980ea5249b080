package gherkinparam

import (
	"regexp"
)

// ═══════════════════════════════════════════════════════════════════════════
// 占位符分类
// ═══════════════════════════════════════════════════════════════════════════

// Kind 占位符的解析方式。
type Kind int

const (
	// KindFixture 直接按 body 查找夹具（默认）。
	KindFixture Kind = iota
	// KindConfig 沿冒号分隔的路径查找套件配置。
	KindConfig
	// KindArray 取夹具中的某个键或下标。
	KindArray
)

// String 返回 Kind 的可读名称。
func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindArray:
		return "array"
	default:
		return "fixture"
	}
}

var (
	// 方括号用于 {{name[key]}} 形式。
	tokenPattern   = regexp.MustCompile(`^\{\{([A-Za-z0-9_:\[\]-]+)\}\}$`)
	segmentPattern = regexp.MustCompile(`:([A-Za-z0-9_-]+)`)
	arrayPattern   = regexp.MustCompile(`^([A-Za-z0-9_-]+)\[(.+)\]$`)
	quotedPattern  = regexp.MustCompile(`"(\{\{[A-Za-z0-9_:\[\]-]+\}\})"`)
)

// Placeholder 一个已分类的占位符。
type Placeholder struct {
	Raw  string   // 原始字符串，如 {{config:db:host}}
	Body string   // 去掉 {{ }} 后的内容
	Kind Kind     // 解析方式
	Path []string // KindConfig: 配置路径分段
	Name string   // KindArray: 夹具名
	Key  string   // KindArray: 键或下标
}

// Parse 判断 raw 是否为占位符并完成分类。
//
// raw 必须完整匹配 {{...}}，否则返回 false。
func Parse(raw string) (Placeholder, bool) {
	m := tokenPattern.FindStringSubmatch(raw)
	if m == nil {
		return Placeholder{}, false
	}

	p := Placeholder{Raw: raw, Body: m[1], Kind: KindFixture}
	if path := configPath(p.Body); len(path) > 0 {
		p.Kind = KindConfig
		p.Path = path

		return p, true
	}
	if am := arrayPattern.FindStringSubmatch(p.Body); am != nil {
		p.Kind = KindArray
		p.Name = am[1]
		p.Key = am[2]
	}

	return p, true
}

// configPath 提取 ":segment" 形式的路径分段。
//
// 分段之后必须紧跟 ":" 或到达结尾，开头的 config 字面量不计入路径。
func configPath(body string) []string {
	var path []string
	for _, loc := range segmentPattern.FindAllStringSubmatchIndex(body, -1) {
		end := loc[1]
		if end < len(body) && body[end] != ':' {
			continue
		}
		path = append(path, body[loc[2]:loc[3]])
	}

	return path
}

// Placeholders 返回步骤文本中被双引号包裹的占位符，按出现顺序排列。
func Placeholders(text string) []string {
	var out []string
	for _, m := range quotedPattern.FindAllStringSubmatch(text, -1) {
		out = append(out, m[1])
	}

	return out
}

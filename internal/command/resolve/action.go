package resolve

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/251207-go-pkg-gherkinparam/internal/command"
	"github.com/lwmacct/251207-go-pkg-gherkinparam/pkg/gherkinparam"
)

// Result 单个参数的解析结果。
type Result struct {
	Input    string `json:"input" yaml:"input"`
	Kind     string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Value    any    `json:"value" yaml:"value"`
	Resolved bool   `json:"resolved" yaml:"resolved"`
}

func action(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return errors.New("at least one placeholder is required")
	}

	env, err := command.Setup(cmd)
	if err != nil {
		return err
	}

	results := Resolve(env.Hook.Resolver(), cmd.Args().Slice())
	if err := Write(cmd.Root().Writer, env.Config.Output.Format, results); err != nil {
		return err
	}

	if env.Config.Output.Strict {
		if n := countUnresolved(results); n > 0 {
			return fmt.Errorf("%d placeholder(s) unresolved", n)
		}
	}

	return nil
}

// Resolve 逐个解析输入。
//
// 非占位符原样返回且 Kind 为空；占位符结果为 nil 时 Resolved 为 false。
func Resolve(r *gherkinparam.Resolver, inputs []string) []Result {
	results := make([]Result, 0, len(inputs))
	for _, in := range inputs {
		p, ok := gherkinparam.Parse(in)
		if !ok {
			results = append(results, Result{Input: in, Value: in, Resolved: true})
			continue
		}

		value := r.Resolve(p)
		results = append(results, Result{
			Input:    in,
			Kind:     p.Kind.String(),
			Value:    value,
			Resolved: value != nil,
		})
	}

	return results
}

// Write 按 format 输出结果，支持 yaml 与 json。
func Write(w io.Writer, format string, results []Result) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml", "":
		enc := yamlv3.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func countUnresolved(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Resolved {
			n++
		}
	}

	return n
}

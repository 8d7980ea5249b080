package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	gherkin "github.com/cucumber/gherkin/go/v26"
	messages "github.com/cucumber/messages/go/v21"
	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-gherkinparam/internal/command"
	"github.com/lwmacct/251207-go-pkg-gherkinparam/pkg/gherkinparam"
	"github.com/lwmacct/251207-go-pkg-gherkinparam/pkg/godogparam"
)

func action(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return errors.New("at least one feature file is required")
	}

	env, err := command.Setup(cmd)
	if err != nil {
		return err
	}

	plugin := godogparam.New(
		godogparam.WithFixtures(env.Fixtures),
		godogparam.WithSettings(env.Settings),
	)
	plugin.BeforeSuite()

	unresolved := 0
	for _, path := range cmd.Args().Slice() {
		n, err := RenderFile(cmd.Root().Writer, plugin, path)
		if err != nil {
			return err
		}
		unresolved += n
	}

	if unresolved > 0 {
		slog.Warn("Unresolved placeholders", "count", unresolved)
		if env.Config.Output.Strict {
			return fmt.Errorf("%d placeholder(s) unresolved", unresolved)
		}
	}

	return nil
}

// RenderFile 解析并渲染单个 feature 文件，返回未解析的占位符数量。
func RenderFile(w io.Writer, plugin *godogparam.Plugin, path string) (int, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by the user
	if err != nil {
		return 0, fmt.Errorf("open feature: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Render(w, plugin, path, f)
}

// Render 解析 feature 内容，编译为 pickle 后逐步改写并输出。
func Render(w io.Writer, plugin *godogparam.Plugin, uri string, in io.Reader) (int, error) {
	doc, err := gherkin.ParseGherkinDocument(in, uuid.NewString)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", uri, err)
	}

	unresolved := 0
	for _, pickle := range gherkin.Pickles(*doc, uri, uuid.NewString) {
		fmt.Fprintf(w, "Scenario: %s\n", pickle.Name)
		for _, step := range pickle.Steps {
			for _, p := range missing(plugin.Hook().Resolver(), step) {
				slog.Debug("Placeholder not resolved", "uri", uri, "scenario", pickle.Name, "placeholder", p)
				unresolved++
			}
			plugin.BeforeStep(step)
			writeStep(w, step)
		}
		fmt.Fprintln(w)
	}

	return unresolved, nil
}

// missing 返回步骤中解析结果为 nil 的占位符。
func missing(r *gherkinparam.Resolver, step *messages.PickleStep) []string {
	var out []string
	check := func(s string) {
		if p, ok := gherkinparam.Parse(s); ok && r.Resolve(p) == nil {
			out = append(out, s)
		}
	}

	args := godogparam.StepArguments(step)
	for i := range args.Len() {
		switch arg := args.At(i).(type) {
		case string:
			check(arg)
		case gherkinparam.Table:
			for _, row := range arg.Rows() {
				for _, cell := range row {
					check(cell)
				}
			}
		}
	}

	return out
}

func writeStep(w io.Writer, step *messages.PickleStep) {
	fmt.Fprintf(w, "  * %s\n", step.Text)
	if step.Argument == nil {
		return
	}

	if doc := step.Argument.DocString; doc != nil {
		fmt.Fprintln(w, `    """`)
		for _, line := range strings.Split(doc.Content, "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
		fmt.Fprintln(w, `    """`)
	}

	if table := step.Argument.DataTable; table != nil {
		for _, row := range table.Rows {
			cells := make([]string, len(row.Cells))
			for i, cell := range row.Cells {
				cells[i] = cell.Value
			}
			fmt.Fprintf(w, "    | %s |\n", strings.Join(cells, " | "))
		}
	}
}

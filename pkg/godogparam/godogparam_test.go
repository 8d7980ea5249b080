package godogparam_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-gherkinparam/pkg/cfgm"
	"github.com/lwmacct/251207-go-pkg-gherkinparam/pkg/gherkinparam"
	"github.com/lwmacct/251207-go-pkg-gherkinparam/pkg/godogparam"
)

func newPlugin() *godogparam.Plugin {
	return godogparam.New(
		godogparam.WithFixtures(gherkinparam.NewFixtures(map[string]any{
			"username": "alice",
			"users":    []any{"bob", "carol"},
			"profile":  map[string]any{"age": 30},
		})),
		godogparam.WithSettings(map[string]any{
			"db": map[string]any{"host": "localhost", "port": 5432},
		}),
	)
}

func TestBeforeStep(t *testing.T) {
	p := newPlugin()
	p.BeforeSuite()

	step := &godog.Step{
		Text: `I log in as "{{username}}" on "{{config:db:host}}" with "secret"`,
		Argument: &messages.PickleStepArgument{
			DocString: &godog.DocString{Content: "{{config:db:port}}"},
			DataTable: &godog.Table{Rows: []*messages.PickleTableRow{
				{Cells: []*messages.PickleTableCell{{Value: "name"}, {Value: "age"}}},
				{Cells: []*messages.PickleTableCell{{Value: "{{users[1]}}"}, {Value: "{{profile[age]}}"}}},
				{Cells: []*messages.PickleTableCell{{Value: "{{missing}}"}, {Value: "lit"}}},
			}},
		},
	}
	p.BeforeStep(step)

	assert.Equal(t, `I log in as "alice" on "localhost" with "secret"`, step.Text)
	assert.Equal(t, "5432", step.Argument.DocString.Content)

	rows := step.Argument.DataTable.Rows
	require.Len(t, rows, 3)
	assert.Equal(t, "name", rows[0].Cells[0].Value)
	assert.Equal(t, "carol", rows[1].Cells[0].Value)
	assert.Equal(t, "30", rows[1].Cells[1].Value)
	assert.Empty(t, rows[2].Cells[0].Value)
	assert.Equal(t, "lit", rows[2].Cells[1].Value)
}

func TestStepArguments(t *testing.T) {
	table := &godog.Table{Rows: []*messages.PickleTableRow{{Cells: []*messages.PickleTableCell{{Value: "a"}}}}}
	step := &godog.Step{
		Text:     `"first" and "" then "third"`,
		Argument: &messages.PickleStepArgument{DataTable: table},
	}

	args := godogparam.StepArguments(step)
	require.Equal(t, 4, args.Len())
	assert.Equal(t, "first", args.At(0))
	assert.Empty(t, args.At(1))
	assert.Equal(t, "third", args.At(2))

	tbl, ok := args.At(3).(gherkinparam.Table)
	require.True(t, ok)
	assert.Equal(t, [][]string{{"a"}}, tbl.Rows())

	args.Set(1, 42)
	args.Set(2, nil)
	assert.Equal(t, `"first" and "42" then ""`, step.Text)
}

func TestStepArguments_NoArguments(t *testing.T) {
	step := &godog.Step{Text: "nothing to see here"}

	args := godogparam.StepArguments(step)
	assert.Equal(t, 0, args.Len())

	newPlugin().BeforeStep(step)
	assert.Equal(t, "nothing to see here", step.Text)
}

func TestStep(t *testing.T) {
	p := newPlugin()
	p.BeforeSuite()

	var gotUser, gotHost string
	var gotN int
	wrapped := p.Step(func(_ context.Context, user, host string, n int) error {
		gotUser, gotHost, gotN = user, host, n
		return nil
	})

	fn, ok := wrapped.(func(context.Context, string, string, int) error)
	require.True(t, ok, "wrapped handler keeps the original signature")
	require.NoError(t, fn(context.Background(), "{{username}}", "{{config:db:host}}", 3))

	assert.Equal(t, "alice", gotUser)
	assert.Equal(t, "localhost", gotHost)
	assert.Equal(t, 3, gotN)
}

func TestStep_ErrorsPassThrough(t *testing.T) {
	p := newPlugin()
	boom := errors.New("boom")

	fn := p.Step(func(string) error { return boom }).(func(string) error)
	assert.ErrorIs(t, fn("{{username}}"), boom)
}

func TestStep_Variadic(t *testing.T) {
	p := newPlugin()

	var got []string
	fn := p.Step(func(first string, rest ...string) {
		got = append([]string{first}, rest...)
	}).(func(string, ...string))
	fn("{{username}}", "x")

	assert.Equal(t, []string{"alice", "x"}, got)
}

func TestStep_NotAFunc(t *testing.T) {
	assert.Panics(t, func() { newPlugin().Step("not a func") })
}

func TestBeforeSuite_Loader(t *testing.T) {
	calls := 0
	p := godogparam.New(godogparam.WithSettingsLoader(func() (map[string]any, error) {
		calls++
		return map[string]any{"run": calls}, nil
	}))

	p.BeforeSuite()
	assert.Equal(t, 1, p.Hook().Resolver().ResolveScalar("{{config:run}}"))

	p.BeforeSuite()
	assert.Equal(t, 2, p.Hook().Resolver().ResolveScalar("{{config:run}}"))

	failing := godogparam.New(godogparam.WithSettingsLoader(func() (map[string]any, error) {
		return nil, errors.New("no settings")
	}))
	assert.Panics(t, failing.BeforeSuite)
}

func TestBeforeSuite_SettingsFrom(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "suite.yaml"), []byte("api:\n  url: http://localhost:8080\n"), 0o600))

	p := godogparam.New(godogparam.WithSettingsFrom(cfgm.WithBaseDir(dir), cfgm.WithConfigPaths("suite.yaml")))
	p.BeforeSuite()

	assert.Equal(t, "http://localhost:8080", p.Hook().Resolver().ResolveScalar("{{config:api:url}}"))
}

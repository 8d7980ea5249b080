package gherkinparam_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-gherkinparam/pkg/gherkinparam"
)

func testSettings() map[string]any {
	return map[string]any{
		"db": map[string]any{
			"host": "localhost",
			"port": 5432,
		},
		"hosts": []any{"a.example", "b.example"},
		"name":  "suite",
	}
}

func testFixtures() *gherkinparam.Fixtures {
	return gherkinparam.NewFixtures(map[string]any{
		"username": "alice",
		"users":    []any{"a", "b"},
		"empty":    []any{},
		"roles":    map[string]any{"admin": "root"},
		"ports":    map[int]string{8080: "http"},
		"codes":    []string{"x", "y"},
		"scalar":   42,
	})
}

func TestResolveScalar(t *testing.T) {
	r := gherkinparam.NewResolver(testSettings(), testFixtures())

	tests := []struct {
		name string
		raw  string
		want any
	}{
		{name: "plain string unchanged", raw: "hello", want: "hello"},
		{name: "empty string unchanged", raw: "", want: ""},
		{name: "embedded token unchanged", raw: "hi {{username}}", want: "hi {{username}}"},
		{name: "single braces unchanged", raw: "{username}", want: "{username}"},
		{name: "invalid chars unchanged", raw: "{{user name}}", want: "{{user name}}"},
		{name: "fixture", raw: "{{username}}", want: "alice"},
		{name: "missing fixture is nil", raw: "{{missing}}", want: nil},
		{name: "config leaf", raw: "{{config:db:host}}", want: "localhost"},
		{name: "config without prefix", raw: "{{:db:port}}", want: 5432},
		{name: "config nested map", raw: "{{config:db}}", want: map[string]any{"host": "localhost", "port": 5432}},
		{name: "config list index", raw: "{{config:hosts:1}}", want: "b.example"},
		{name: "config missing root", raw: "{{config:nope}}", want: nil},
		{name: "config missing leaf keeps last value", raw: "{{config:db:user}}", want: map[string]any{"host": "localhost", "port": 5432}},
		{name: "config stops at scalar", raw: "{{config:name:deeper}}", want: "suite"},
		{name: "array index", raw: "{{users[0]}}", want: "a"},
		{name: "array out of range", raw: "{{users[5]}}", want: nil},
		{name: "array empty", raw: "{{empty[0]}}", want: nil},
		{name: "array missing fixture", raw: "{{nobody[0]}}", want: nil},
		{name: "array map key", raw: "{{roles[admin]}}", want: "root"},
		{name: "array typed map key", raw: "{{ports[8080]}}", want: "http"},
		{name: "array typed slice", raw: "{{codes[1]}}", want: "y"},
		{name: "array on scalar is nil", raw: "{{scalar[0]}}", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ResolveScalar(tt.raw))
		})
	}
}

func TestResolveScalar_Idempotent(t *testing.T) {
	r := gherkinparam.NewResolver(testSettings(), testFixtures())

	first := r.ResolveScalar("{{username}}")
	require.Equal(t, "alice", first)
	assert.Equal(t, first, r.ResolveScalar(first.(string)))
}

func TestResolveScalar_NilDependencies(t *testing.T) {
	r := gherkinparam.NewResolver(nil, nil)

	assert.Nil(t, r.ResolveScalar("{{username}}"))
	assert.Nil(t, r.ResolveScalar("{{config:db:host}}"))
	assert.Nil(t, r.ResolveScalar("{{users[0]}}"))
	assert.Equal(t, "literal", r.ResolveScalar("literal"))
}

func TestResolveTable(t *testing.T) {
	fixtures := gherkinparam.NewFixtures(map[string]any{"a": "1", "b": "2"})
	r := gherkinparam.NewResolver(nil, fixtures)

	got := r.ResolveTable([][]string{
		{"{{a}}", "lit"},
		{"x", "{{b}}"},
		{},
		{"{{c}}"},
	})

	assert.Equal(t, [][]any{
		{"1", "lit"},
		{"x", "2"},
		{},
		{nil},
	}, got)
}

func TestResolveArguments(t *testing.T) {
	r := gherkinparam.NewResolver(testSettings(), testFixtures())
	type custom struct{ v string }

	args := gherkinparam.Args{
		"{{username}}",
		gherkinparam.NewGrid([][]string{{"name", "host"}, {"{{username}}", "{{config:db:host}}"}}),
		7,
		custom{v: "{{username}}"},
		"plain",
	}
	r.ResolveArguments(args)

	assert.Equal(t, "alice", args[0])
	table, ok := args[1].(gherkinparam.Table)
	require.True(t, ok, "table arguments stay tables")
	assert.Equal(t, [][]string{{"name", "host"}, {"alice", "localhost"}}, table.Rows())
	assert.Equal(t, 7, args[2])
	assert.Equal(t, custom{v: "{{username}}"}, args[3])
	assert.Equal(t, "plain", args[4])
}

func TestStoreFunc(t *testing.T) {
	calls := 0
	store := gherkinparam.StoreFunc(func(key string) (any, bool) {
		calls++
		return "v-" + key, true
	})
	r := gherkinparam.NewResolver(nil, store)

	assert.Equal(t, "v-token", r.ResolveScalar("{{token}}"))
	assert.Equal(t, "plain", r.ResolveScalar("plain"))
	assert.Equal(t, 1, calls, "non-placeholders never reach the store")
}

package gherkinparam_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lwmacct/251207-go-pkg-gherkinparam/pkg/gherkinparam"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: ""},
		{name: "string", in: "alice", want: "alice"},
		{name: "bytes", in: []byte("raw"), want: "raw"},
		{name: "int", in: 5432, want: "5432"},
		{name: "bool", in: true, want: "true"},
		{name: "float", in: 1.5, want: "1.5"},
		{name: "stringer", in: 3 * time.Second, want: "3s"},
		{name: "map", in: map[string]any{"port": 5432, "host": "localhost"}, want: `{"host":"localhost","port":5432}`},
		{name: "list", in: []any{"a", 1}, want: `["a",1]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gherkinparam.Format(tt.in))
		})
	}
}

func TestGrid(t *testing.T) {
	g := gherkinparam.NewGrid([][]string{{"a", "b"}, {"c"}})
	assert.Equal(t, gherkinparam.Grid{{"a", "b"}, {"c"}}, g)
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, g.Rows())

	replaced := g.Replace([][]any{{1, nil}, {"c"}})
	assert.Equal(t, [][]string{{"1", ""}, {"c"}}, replaced.Rows())
}

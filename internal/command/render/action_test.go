package render_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-gherkinparam/internal/command/render"
	"github.com/lwmacct/251207-go-pkg-gherkinparam/pkg/gherkinparam"
	"github.com/lwmacct/251207-go-pkg-gherkinparam/pkg/godogparam"
)

const feature = `Feature: checkout

  Scenario: pay with a saved card
    Given I am logged in as "{{username}}"
    When I open "{{config:shop:url}}"
    Then I see the cards:
      | owner        | number      |
      | {{username}} | {{cards[0]}} |
    And the receipt contains:
      """
      {{config:shop:name}}
      """

  Scenario: unknown user
    Given I am logged in as "{{nobody}}"
`

func newPlugin() *godogparam.Plugin {
	p := godogparam.New(
		godogparam.WithFixtures(gherkinparam.NewFixtures(map[string]any{
			"username": "alice",
			"cards":    []any{"4111"},
		})),
		godogparam.WithSettings(map[string]any{
			"shop": map[string]any{"url": "http://shop.local", "name": "Shop"},
		}),
	)
	p.BeforeSuite()

	return p
}

func TestRender(t *testing.T) {
	var out bytes.Buffer
	n, err := render.Render(&out, newPlugin(), "checkout.feature", strings.NewReader(feature))
	require.NoError(t, err)

	assert.Equal(t, 1, n, "only {{nobody}} is unresolved")
	assert.Equal(t, `Scenario: pay with a saved card
  * I am logged in as "alice"
  * I open "http://shop.local"
  * I see the cards:
    | owner | number |
    | alice | 4111 |
  * the receipt contains:
    """
    Shop
    """

Scenario: unknown user
  * I am logged in as ""

`, out.String())
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkout.feature")
	require.NoError(t, os.WriteFile(path, []byte(feature), 0o600))

	var out bytes.Buffer
	_, err := render.RenderFile(&out, newPlugin(), path)
	require.NoError(t, err)
	assert.Contains(t, out.String(), `I open "http://shop.local"`)

	_, err = render.RenderFile(&out, newPlugin(), filepath.Join(t.TempDir(), "missing.feature"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRender_ParseError(t *testing.T) {
	var out bytes.Buffer
	_, err := render.Render(&out, newPlugin(), "broken.feature", strings.NewReader("Scenario without feature\n  Given x\n"))
	assert.Error(t, err)
}

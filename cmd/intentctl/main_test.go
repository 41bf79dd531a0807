package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickorder/internal/intent"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("KEYWORDS_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCmd(t *testing.T) {
	out, err := run(t, "parse", "1k", "instagram", "seguidores", "@username")
	require.NoError(t, err)

	assert.Contains(t, out, "Quantity:  1000")
	assert.Contains(t, out, "Platform:  Instagram (instagram)")
	assert.Contains(t, out, "Service:   Followers (followers)")
	assert.Contains(t, out, "Target:    @username")
	assert.Contains(t, out, "Match:     100%")
	assert.Contains(t, out, "Ready:     true")
}

func TestParseCmdJSON(t *testing.T) {
	out, err := run(t, "parse", "--json", "2.5m views")
	require.NoError(t, err)

	var order intent.ParsedOrder
	require.NoError(t, json.Unmarshal([]byte(out), &order))
	assert.Equal(t, 2500000, order.QuantityValue())
	assert.Equal(t, intent.Views, order.ServiceType)
	assert.Equal(t, 50, order.MatchPercentage)
}

func TestParseCmdMissingFields(t *testing.T) {
	out, err := run(t, "parse", "hello")
	require.NoError(t, err)
	assert.Contains(t, out, "Quantity:  -")
	assert.Contains(t, out, "Ready:     false")
}

func TestParseCmdRequiresText(t *testing.T) {
	_, err := run(t, "parse")
	assert.Error(t, err)
}

func TestParseCmdThreshold(t *testing.T) {
	out, err := run(t, "parse", "instagram")
	require.NoError(t, err)
	assert.Contains(t, out, "Ready:     false")

	out, err = run(t, "parse", "--threshold", "0", "instagram")
	require.NoError(t, err)
	assert.Contains(t, out, "Ready:     true")

	t.Setenv("PREVIEW_THRESHOLD", "25")
	out, err = run(t, "parse", "instagram")
	require.NoError(t, err)
	assert.Contains(t, out, "Ready:     true")

	out, err = run(t, "parse", "--threshold", "100", "instagram")
	require.NoError(t, err)
	assert.Contains(t, out, "Ready:     false")
}

func TestParseCmdKeywordsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	content := `mode: replace
platforms:
  gram: instagram
service_types:
  fans: followers
display_names:
  platforms:
    instagram: IG
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := run(t, "parse", "--keywords", path, "--json", "100 gram fans")
	require.NoError(t, err)
	var order intent.ParsedOrder
	require.NoError(t, json.Unmarshal([]byte(out), &order))
	assert.Equal(t, intent.Instagram, order.Platform)
	assert.Equal(t, intent.Followers, order.ServiceType)

	// replace mode drops the built-in synonyms
	out, err = run(t, "parse", "--keywords", path, "--json", "100 tiktok likes")
	require.NoError(t, err)
	order = intent.ParsedOrder{}
	require.NoError(t, json.Unmarshal([]byte(out), &order))
	assert.Empty(t, order.Platform)
	assert.Empty(t, order.ServiceType)

	out, err = run(t, "names", "--keywords", path, "platform", "instagram")
	require.NoError(t, err)
	assert.Equal(t, "IG\n", out)
}

func TestParseCmdBadKeywordsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(path, []byte("platforms:\n  insta: myspace\n"), 0o644))

	_, err := run(t, "parse", "--keywords", path, "1k")
	assert.ErrorIs(t, err, intent.ErrUnknownPlatform)
}

func TestNamesCmd(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"names", "platform", "twitter"}, "Twitter/X\n"},
		{[]string{"names", "platform", "unknownslug"}, "UNKNOWNSLUG\n"},
		{[]string{"names", "service-type", "company-followers"}, "Company Followers\n"},
		{[]string{"names", "service-type", "saves"}, "Saves\n"},
	}
	for _, tt := range tests {
		out, err := run(t, tt.args...)
		require.NoError(t, err)
		assert.Equal(t, tt.want, out)
	}

	_, err := run(t, "names", "colour", "red")
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "intentctl dev (commit: none, built: unknown)\n", out)
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newswatch/config"
	"newswatch/models"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
output = "out/news.json"
max_items = 50
fetch_timeout = "5s"
keywords = ["tariff", "\"industrial strategy\""]

[[sources]]
url = "https://a.example/feed.xml"
label = "Source A"

[[sources]]
url = "https://b.example/page"
label = "Source B"
type = "html"
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "out/news.json", cfg.Output)
	assert.Equal(t, 50, cfg.MaxItems)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	assert.Equal(t, []string{"tariff", `"industrial strategy"`}, cfg.Keywords)

	require.Len(t, cfg.Sources, 2)
	// Type defaults to rss when omitted
	assert.Equal(t, models.SourceTypeRSS, cfg.Sources[0].Type)
	assert.Equal(t, models.SourceTypeHTML, cfg.Sources[1].Type)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(writeConfig(t, `keywords = ["tariff"]`))
	require.NoError(t, err)

	assert.Equal(t, "data/news.json", cfg.Output)
	assert.Equal(t, config.DefaultFetchTimeout, cfg.Timeout())
	assert.Empty(t, cfg.Sources)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "malformed toml",
			content: `keywords = [`,
		},
		{
			name: "source without url",
			content: `
[[sources]]
label = "nameless"
`,
		},
		{
			name: "unknown source type",
			content: `
[[sources]]
url = "https://a.example/feed.xml"
type = "gopher"
`,
		},
		{
			name:    "negative max_items",
			content: `max_items = -1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestWriteConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := &config.Config{
		Output:   "data/news.json",
		Keywords: []string{"tariff"},
		Sources: []models.Source{
			{URL: "https://a.example/feed.xml", Label: "Source A", Type: models.SourceTypeRSS},
		},
	}

	require.NoError(t, config.WriteConfig(path, cfg))

	loaded, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Keywords, loaded.Keywords)
	assert.Equal(t, cfg.Sources, loaded.Sources)

	// Refuses to overwrite
	assert.Error(t, config.WriteConfig(path, cfg))
}

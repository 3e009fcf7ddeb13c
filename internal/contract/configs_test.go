package contract

import (
	"testing"
	"time"

	"github.com/jordanopensource/topcontrib/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Port:            8080,
		Backend:         "sqlite",
		RefreshInterval: "1h",
		PageLimit:       100,
		Period:          "all",
		SortBy:          "score",
		Type:            "all",
		Output:          "text",
		Color:           "yes",
	}
}

// TestProcessAndValidate_Defaults tests the happy path.
func TestProcessAndValidate_Defaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput()))

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, schema.SQLiteBackend, cfg.Backend)
	assert.Equal(t, time.Hour, cfg.RefreshInterval)
	assert.Equal(t, schema.SortByScore, cfg.SortBy)
	assert.Equal(t, schema.AllContributions, cfg.Type)
	assert.Equal(t, DefaultResultLimit, cfg.ResultLimit)
	assert.True(t, cfg.UseColors)
}

// TestProcessAndValidate_Rejections tests that unrecognized enum values
// fail instead of silently defaulting.
func TestProcessAndValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{"bad port", func(in *ConfigRawInput) { in.Port = -1 }},
		{"bad backend", func(in *ConfigRawInput) { in.Backend = "oracle" }},
		{"bad interval", func(in *ConfigRawInput) { in.RefreshInterval = "soon" }},
		{"bad sort key", func(in *ConfigRawInput) { in.SortBy = "stars" }},
		{"bad type", func(in *ConfigRawInput) { in.Type = "gists" }},
		{"bad output", func(in *ConfigRawInput) { in.Output = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)
			err := ProcessAndValidate(&Config{}, in)
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

// TestProcessAndValidate_PageLimitClamp tests out-of-range page limits
// fall back to the default.
func TestProcessAndValidate_PageLimitClamp(t *testing.T) {
	in := validInput()
	in.PageLimit = MaxPageLimit + 1
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, in))
	assert.Equal(t, DefaultPageLimit, cfg.PageLimit)
}

// TestErrorConstructors tests the error taxonomy wrapping.
func TestErrorConstructors(t *testing.T) {
	assert.ErrorIs(t, NotFound("user", "octocat"), ErrNotFound)
	assert.ErrorIs(t, InvalidParameter("sort_by", "stars"), ErrInvalidParameter)
	assert.ErrorIs(t, Upstream(assert.AnError), ErrUpstream)
	assert.Contains(t, NotFound("user", "octocat").Error(), "octocat")
}

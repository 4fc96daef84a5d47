package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		model       string
		wantOrg     string
		wantCountry string
		wantOK      bool
	}{
		{
			name:        "gpt prefix",
			model:       "gpt-4-turbo",
			wantOrg:     "OpenAI",
			wantCountry: "USA",
			wantOK:      true,
		},
		{
			name:        "case-insensitive match",
			model:       "Claude-3-Opus",
			wantOrg:     "Anthropic",
			wantCountry: "USA",
			wantOK:      true,
		},
		{
			name:        "mistral prefix",
			model:       "mistral-large-2407",
			wantOrg:     "Mistral",
			wantCountry: "France",
			wantOK:      true,
		},
		{
			name:        "longest prefix wins over shorter",
			model:       "qwen2-72b-instruct",
			wantOrg:     "Alibaba",
			wantCountry: "China",
			wantOK:      true,
		},
		{
			name:   "unknown model",
			model:  "totally-novel-model",
			wantOK: false,
		},
		{
			name:   "empty name",
			model:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := Resolve(tt.model)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantOrg, id.Organization)
				assert.Equal(t, tt.wantCountry, id.Country)
			}
		})
	}
}

func TestResolveOrg(t *testing.T) {
	tests := []struct {
		name        string
		org         string
		wantCountry string
	}{
		{name: "known org", org: "Google", wantCountry: "USA"},
		{name: "known non-US org", org: "Cohere", wantCountry: "Canada"},
		{name: "unknown org", org: "Startup Labs", wantCountry: Unknown},
		{name: "lookup is case-sensitive", org: "google", wantCountry: Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := ResolveOrg(tt.org)
			assert.Equal(t, tt.wantCountry, id.Country)
			// The literal organization string is preserved either way.
			assert.Equal(t, tt.org, id.Organization)
		})
	}
}

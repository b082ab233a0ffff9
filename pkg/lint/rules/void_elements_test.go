package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVoidElementTrailingSlashRule(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDiags int
		wantFix   string
	}{
		{
			name:      "br with slash",
			input:     "<br/>",
			wantDiags: 1,
			wantFix:   "<br>",
		},
		{
			name:      "br with spaced slash",
			input:     "<p>a<br />b</p>\n",
			wantDiags: 1,
			wantFix:   "<p>a<br>b</p>\n",
		},
		{
			name:      "plain void element",
			input:     "<br>",
			wantDiags: 0,
		},
		{
			name:      "non-void element with slash",
			input:     "<div/>",
			wantDiags: 0,
		},
		{
			name:      "img with attributes",
			input:     `<img src="x.png" />`,
			wantDiags: 1,
			wantFix:   `<img src="x.png">`,
		},
		{
			name:      "several void elements",
			input:     "<br/><hr/>",
			wantDiags: 2,
			wantFix:   "<br><hr>",
		},
		{
			name:      "input inside form",
			input:     `<form><input type="text"/></form>`,
			wantDiags: 1,
			wantFix:   `<form><input type="text"></form>`,
		},
		{
			name:      "empty file",
			input:     "",
			wantDiags: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := NewVoidElementTrailingSlashRule()
			warnings := checkRule(t, rule, tt.input)
			assert.Len(t, warnings, tt.wantDiags)

			for _, w := range warnings {
				assert.Equal(t, rule.Code(), w.Code)
				assert.True(t, w.HasFix())
			}
			if tt.wantFix != "" {
				assert.Equal(t, tt.wantFix, applyFixes(t, tt.input, warnings))
			}
		})
	}
}

func TestVoidElementTrailingSlashRule_Metadata(t *testing.T) {
	rule := NewVoidElementTrailingSlashRule()

	assert.Equal(t, "void-element-trailing-slash", rule.Code())
	assert.NotEmpty(t, rule.Description())
}

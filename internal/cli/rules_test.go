package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesCommand_FormatFlag(t *testing.T) {
	cmd := newRulesCommand()
	flag := cmd.Flags().Lookup("format")
	assert.NotNil(t, flag)
	assert.Equal(t, "text", flag.DefValue)
}

func TestRulesCommand_TextListing(t *testing.T) {
	cmd := newRulesCommand()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	output := out.String()
	assert.Contains(t, output, "CODE")
	assert.Contains(t, output, "COLLECTION")
	assert.Contains(t, output, "void-element-trailing-slash")
	assert.Contains(t, output, "html-style")
}

func TestRulesCommand_JSONListing(t *testing.T) {
	cmd := newRulesCommand()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--format", "json"})

	require.NoError(t, cmd.Execute())

	output := out.String()
	assert.Contains(t, output, `"deprecated-doctype"`)
	assert.Contains(t, output, `"recommended"`)
	assert.Contains(t, output, `"members"`)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seats.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	rules, err := c.SelectedRules()
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, 4, rules[0].Threshold)
	assert.Equal(t, 5, rules[1].Threshold)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
rules: [visible]
thresholds:
  visible: 6
max_rounds: 50
log_level: debug
print: true
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 50, c.MaxRounds)
	assert.True(t, c.Print)
	assert.Equal(t, logrus.DebugLevel, c.Level())
	assert.Equal(t, Default().Workers, c.Workers)

	rules, err := c.SelectedRules()
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "visible", rules[0].Name)
	assert.Equal(t, 6, rules[0].Threshold)

	mixed, err := Load(writeConfig(t, "rules: [Visible]\nthresholds:\n  Visible: 7\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"visible": 7}, mixed.Thresholds)
	rules, err = mixed.SelectedRules()
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, 7, rules[0].Threshold, "override keyed in mixed case must apply")
}

func TestSelectedRulesMatchesKeysCaseInsensitively(t *testing.T) {
	c := Default()
	c.Thresholds = map[string]int{"ADJACENT": 2}
	rules, err := c.SelectedRules()
	require.NoError(t, err)
	assert.Equal(t, 2, rules[0].Threshold)
	assert.Equal(t, 5, rules[1].Threshold)
}

func TestLoadRejectsBadValues(t *testing.T) {
	for name, body := range map[string]string{
		"unknown rule":        "rules: [knight]\n",
		"negative rounds":     "max_rounds: -1\n",
		"bad level":           "log_level: loud\n",
		"zero threshold":      "thresholds: {adjacent: 0}\n",
		"unknown threshold":   "thresholds: {knight: 3}\n",
		"empty rule list":     "rules: []\n",
		"malformed document":  "rules: [adjacent\n",
		"duplicate rule":      "rules: [adjacent, Adjacent]\n",
		"duplicate threshold": "thresholds: {visible: 6, Visible: 7}\n",
	} {
		_, err := Load(writeConfig(t, body))
		assert.Error(t, err, name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

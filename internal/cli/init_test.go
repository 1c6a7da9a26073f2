package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovenly/cakectl/internal/config"
)

func TestRun_InitWritesStarterConfig(t *testing.T) {
	tmpDir := isolate(t)

	stdout, _, code := runCakectl(t, "init")

	assert.Equal(t, config.ExitSuccess, code)
	assert.Contains(t, stdout, "Wrote cakectl.yaml")

	content, err := os.ReadFile(filepath.Join(tmpDir, "cakectl.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "level: info")
}

func TestRun_InitRefusesToOverwrite(t *testing.T) {
	isolate(t)

	_, _, code := runCakectl(t, "init")
	require.Equal(t, config.ExitSuccess, code)

	_, stderr, code := runCakectl(t, "init")

	assert.Equal(t, config.ExitGeneralError, code)
	assert.Contains(t, stderr, "already exists")
}

func TestRun_InitForceOverwrites(t *testing.T) {
	isolate(t)

	_, _, code := runCakectl(t, "init")
	require.Equal(t, config.ExitSuccess, code)

	_, _, code = runCakectl(t, "init", "--force")

	assert.Equal(t, config.ExitSuccess, code)
}

func TestRun_ConfigReseedsOptionDefaults(t *testing.T) {
	tmpDir := isolate(t)

	content := `bakery:
  minutes: 7
  fancy: true
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "cakectl.yaml"), []byte(content), 0644))

	bakeOut, _, bakeCode := runCakectl(t, "bake")
	decorateOut, _, decorateCode := runCakectl(t, "decorate")

	assert.Equal(t, config.ExitSuccess, bakeCode)
	assert.Contains(t, bakeOut, "Baking for 7mins")
	assert.Equal(t, config.ExitSuccess, decorateCode)
	assert.Contains(t, decorateOut, "Adding fancy icing")
	assert.NotContains(t, decorateOut, "gift box")
}

func TestRun_InvalidConfigLogLevel(t *testing.T) {
	tmpDir := isolate(t)

	content := `logging:
  level: shouting
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "cakectl.yaml"), []byte(content), 0644))

	_, stderr, code := runCakectl(t, "bake")

	assert.Equal(t, config.ExitConfigurationError, code)
	assert.Contains(t, stderr, "invalid logging.level")
}

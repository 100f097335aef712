package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMissingCommand(t *testing.T) {
	err := run(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing command")
}

func TestRunUnknownCommand(t *testing.T) {
	err := run([]string{"frobnicate"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestHelp(t *testing.T) {
	require.NoError(t, run([]string{"help"}))
	require.NoError(t, run([]string{"help", "fetch-sdl"}))
	require.NoError(t, run([]string{"help", "generate"}))
	require.Error(t, run([]string{"help", "nope"}))
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	sdlFile := filepath.Join(dir, "schema.graphql")
	outFile := filepath.Join(dir, "types.go")
	require.NoError(t, os.WriteFile(sdlFile, []byte(`
type Team {
  id: ID!
  name: String!
}
type Query {
  teams: Team
}
`), 0644))

	require.NoError(t, run([]string{"generate", "-sdl", sdlFile, "-pkg", "linear", "-out", outFile}))

	src, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package linear")
	assert.Contains(t, string(src), "type Team struct")
}

func TestGenerateRequiresSDL(t *testing.T) {
	err := run([]string{"generate"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-sdl is required")
}

func TestGenerateStrictFailsOnWarnings(t *testing.T) {
	dir := t.TempDir()
	sdlFile := filepath.Join(dir, "schema.graphql")
	require.NoError(t, os.WriteFile(sdlFile, []byte(`
type Broken { field with no colon }
scalar Good
`), 0644))

	err := run([]string{"generate", "-sdl", sdlFile, "-strict", "-out", filepath.Join(dir, "out.go")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-strict")

	// Without -strict the same schema generates.
	require.NoError(t, run([]string{"generate", "-sdl", sdlFile, "-out", filepath.Join(dir, "out.go")}))
}

func TestFetchSDLRequiresToken(t *testing.T) {
	t.Setenv("LINEAR_API_TOKEN", "")
	err := run([]string{"fetch-sdl"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no API token")
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lineark-gen.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
endpoint: https://example.test/graphql
token_env: MY_TOKEN
package: linear
out: types.go
`), 0644))

	cfg := loadConfig(path)
	assert.Equal(t, "https://example.test/graphql", cfg.Endpoint)
	assert.Equal(t, "MY_TOKEN", cfg.TokenEnv)
	assert.Equal(t, "linear", cfg.Package)
	assert.Equal(t, "types.go", cfg.Out)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg := loadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Equal(t, config{}, cfg)
	assert.Equal(t, "generated", cfg.packageOr("generated"))
	assert.Equal(t, "https://api.linear.app/graphql", cfg.endpointOr("https://api.linear.app/graphql"))
}

package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTokenEnvWins(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, TokenFile), []byte("lin_api_file\n"), 0600))
	t.Setenv(TokenEnv, "lin_api_env")

	token, err := resolveToken()
	require.NoError(t, err)
	assert.Equal(t, "lin_api_env", token)
}

func TestResolveTokenFallsBackToFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(TokenEnv, "")
	require.NoError(t, os.WriteFile(filepath.Join(home, TokenFile), []byte("  lin_api_file\n"), 0600))

	token, err := resolveToken()
	require.NoError(t, err)
	assert.Equal(t, "lin_api_file", token)
}

func TestResolveTokenNoSource(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(TokenEnv, "")

	_, err := resolveToken()
	require.Error(t, err)
	assert.Equal(t, KindAuthConfig, kindOf(t, err))
}

func TestTokenFromEnvWhitespaceOnly(t *testing.T) {
	t.Setenv(TokenEnv, "   ")
	_, err := tokenFromEnv()
	require.Error(t, err)
}

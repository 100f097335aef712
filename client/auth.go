package client

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Token sources, in precedence order: explicit option, the TokenEnv
// environment variable, the TokenFile file in the home directory.
const (
	TokenEnv  = "LINEAR_API_TOKEN"
	TokenFile = ".linear_api_token"
)

func tokenFromEnv() (string, error) {
	if v := strings.TrimSpace(os.Getenv(TokenEnv)); v != "" {
		return v, nil
	}
	return "", &Error{Kind: KindAuthConfig, Message: TokenEnv + " environment variable not set"}
}

func tokenFromFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", &Error{Kind: KindAuthConfig, Message: "could not determine home directory"}
	}
	path := filepath.Join(home, TokenFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &Error{Kind: KindAuthConfig, Message: fmt.Sprintf("could not read token file %s: %v", path, err)}
	}
	return strings.TrimSpace(string(data)), nil
}

// resolveToken applies the precedence order: env var, then file.
func resolveToken() (string, error) {
	if token, err := tokenFromEnv(); err == nil {
		return token, nil
	}
	return tokenFromFile()
}

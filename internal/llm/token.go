package llm

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// LoadGitHubToken finds the GitHub OAuth token the Copilot provider
// exchanges for a bearer token. Order of precedence:
//  1. the GITHUB_TOKEN environment variable
//  2. ~/.config/github-copilot/hosts.json
//  3. ~/.config/github-copilot/apps.json
//
// The JSON files are written by IDE Copilot plugins, so anyone already
// using Copilot can run itinera without extra setup.
func LoadGitHubToken() (string, error) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, nil
	}

	configDir, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting config directory: %w", err)
	}

	candidates := []string{
		filepath.Join(configDir, "github-copilot", "hosts.json"),
		filepath.Join(configDir, "github-copilot", "apps.json"),
	}
	for _, path := range candidates {
		token, err := tokenFromCopilotConfig(path)
		if err == nil && token != "" {
			return token, nil
		}
	}

	return "", fmt.Errorf("GitHub token not found: set GITHUB_TOKEN or authenticate with GitHub Copilot in your IDE")
}

// userConfigDir resolves the per-user config root, honoring XDG_CONFIG_HOME
// and the Windows LOCALAPPDATA convention.
func userConfigDir() (string, error) {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if runtime.GOOS == "windows" {
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return localAppData, nil
		}
		return filepath.Join(home, "AppData", "Local"), nil
	}

	return filepath.Join(home, ".config"), nil
}

// tokenFromCopilotConfig extracts the oauth_token from a Copilot plugin
// config file. The file maps host keys (containing "github.com") to
// objects that carry the token.
func tokenFromCopilotConfig(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var config map[string]map[string]any
	if err := json.Unmarshal(data, &config); err != nil {
		return "", err
	}

	for key, value := range config {
		if strings.Contains(key, "github.com") {
			if oauthToken, ok := value["oauth_token"].(string); ok {
				return oauthToken, nil
			}
		}
	}

	return "", fmt.Errorf("oauth_token not found in %s", path)
}

package config

import "os"

const DefaultVaultPath = "~/Documents/vault/daily"

// VaultPath returns the vault path from DAILYROLL_VAULT env var,
// falling back to DefaultVaultPath.
func VaultPath() string {
	if env := os.Getenv("DAILYROLL_VAULT"); env != "" {
		return env
	}
	return DefaultVaultPath
}

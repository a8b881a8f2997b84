package config

import (
	"path/filepath"

	"fjacquet/expense-tracker/internal/fileutils"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file in the current or parent
// directory, if there is one. Variables already set in the environment win.
// It returns the file that was loaded, or "" when none was found.
func LoadEnv() string {
	for _, envFile := range []string{".env", filepath.Join("..", ".env")} {
		if !fileutils.FileExists(envFile) {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return ""
		}
		return envFile
	}
	return ""
}

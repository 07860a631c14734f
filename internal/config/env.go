package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// ReadEnv loads variables from a .env file chosen by ENV/env, or from
// ENV_FILE when set. Variables already present in the environment win.
// It returns os.ErrNotExist when the file is missing.
func ReadEnv() error {
	filename := strings.TrimSpace(os.Getenv("ENV_FILE"))
	if filename == "" {
		filename = envFilename()
	}
	if _, err := os.Stat(filename); err != nil {
		return err
	}

	envMap, err := godotenv.Read(filename)
	if err != nil {
		return err
	}
	for k, v := range envMap {
		if _, ok := os.LookupEnv(k); ok {
			continue
		}
		_ = os.Setenv(k, v)
	}
	return nil
}

func envFilename() string {
	env := strings.ToLower(strings.TrimSpace(os.Getenv("ENV")))
	if env == "" {
		env = strings.ToLower(strings.TrimSpace(os.Getenv("env")))
	}
	switch env {
	case "prd", "prod", "production":
		return "./.env.production"
	case "bak", "backup":
		return "./.env.bak"
	case "dev", "development":
		return "./.env.development"
	case "local":
		return "./.env.local"
	}
	return "./.env"
}

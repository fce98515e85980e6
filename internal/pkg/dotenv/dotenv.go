package dotenv

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func Load() error {
	return godotenv.Load()
}

// ApplyFlags переносит флаги командной строки в переменные окружения.
// Неизвестные флаги пропускаются, их разбирает сама команда.
func ApplyFlags(args []string) error {
	fs := pflag.NewFlagSet("env", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}

	portFlag := fs.String("port", "", "Server port (overrides PORT environment variable)")
	logLevelFlag := fs.String("log-level", "", "Log level (overrides LOG_LEVEL environment variable)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	overrides := map[string]string{
		"PORT":      *portFlag,
		"LOG_LEVEL": *logLevelFlag,
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return nil
}

package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load подгружает переменные из .env (существующие переменные окружения не перезаписываются)
// и применяет флаги командной строки поверх них.
func Load(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil {
		return err
	}

	return applyFlags(flag.CommandLine, os.Args[1:])
}

func applyFlags(fs *flag.FlagSet, args []string) error {
	var portFlag, logLevelFlag string
	fs.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	fs.StringVar(&logLevelFlag, "log-level", "", "Log level (overrides LOG_LEVEL environment variable)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	overrides := map[string]string{
		"PORT":      portFlag,
		"LOG_LEVEL": logLevelFlag,
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

package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	env_utils "planboard-backend/internal/util/env"
	"planboard-backend/internal/util/logger"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

type EnvVariables struct {
	IsTesting   bool
	DatabaseDsn string            `env:"DATABASE_DSN"`
	EnvMode     env_utils.EnvMode `env:"ENV_MODE"     env-default:"development"`
	HTTPPort    string            `env:"HTTP_PORT"    env-default:"4010"`
	HTTPSPort   string            `env:"HTTPS_PORT"   env-default:"4443"`
	EnableHTTPS bool              `env:"ENABLE_HTTPS" env-default:"false"`

	DataFolder    string
	SecretKeyPath string
	CertsDir      string
}

var (
	env  EnvVariables
	once sync.Once
)

func GetEnv() EnvVariables {
	once.Do(loadEnvVariables)
	return env
}

func loadEnvVariables() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	// Walk up to the module root so tests running from package
	// directories still find the .env file
	backendRoot := cwd
	for {
		if _, err := os.Stat(filepath.Join(backendRoot, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(backendRoot)
		if parent == backendRoot {
			break
		}

		backendRoot = parent
	}

	envPaths := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(backendRoot, ".env"),
	}

	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Info("Loaded .env", "path", path)
			break
		}
	}

	if err := cleanenv.ReadEnv(&env); err != nil {
		log.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			env.IsTesting = true
			break
		}
	}

	if env.EnvMode != env_utils.EnvModeDevelopment && env.EnvMode != env_utils.EnvModeProduction {
		log.Error("ENV_MODE is invalid", "mode", env.EnvMode)
		os.Exit(1)
	}

	if env.IsTesting {
		// Tests run against an in-memory database and a throwaway data dir
		env.DataFolder = filepath.Join(os.TempDir(), "planboard-test-data")
	} else {
		if env.DatabaseDsn == "" {
			log.Error("DATABASE_DSN is empty")
			os.Exit(1)
		}

		env.DataFolder = filepath.Join(filepath.Dir(backendRoot), "planboard-data")
	}

	env.SecretKeyPath = filepath.Join(env.DataFolder, "secret.key")
	env.CertsDir = filepath.Join(env.DataFolder, "certs")

	log.Info("Environment variables loaded successfully!", "mode", env.EnvMode)
}

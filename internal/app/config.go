package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/recorddesk-backend/internal/logger"
	"github.com/yungbote/recorddesk-backend/internal/types"
	"github.com/yungbote/recorddesk-backend/internal/utils"
)

type Config struct {
	LogMode      string
	Environment  string
	Port         int
	DBDriver     string
	BindingsPath string
	RedisAddr    string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		LogMode:      utils.GetEnv("LOG_MODE", "development", log),
		Environment:  utils.GetEnv("APP_ENV", "development", log),
		Port:         utils.GetEnvAsInt("PORT", 8080, log),
		DBDriver:     utils.GetEnv("DB_DRIVER", "postgres", log),
		BindingsPath: utils.GetEnv("BINDINGS_PATH", "", log),
		RedisAddr:    utils.GetEnv("REDIS_ADDR", "", log),
	}
}

// LoadBindings applies the kind→table overrides from the YAML file at path.
// It must run before the DB opens so migration and queries agree on table
// names. An empty path means defaults only.
func LoadBindings(log *logger.Logger, path string) error {
	if path == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read bindings file %q: %w", path, err)
	}
	overrides := map[string]string{}
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return fmt.Errorf("parse bindings file %q: %w", path, err)
	}
	if err := types.ApplyBindings(overrides); err != nil {
		return fmt.Errorf("apply bindings from %q: %w", path, err)
	}
	log.Info("Applied table bindings", "path", path, "overrides", len(overrides))
	return nil
}

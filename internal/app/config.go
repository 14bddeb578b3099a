package app

import (
	"github.com/yungbote/truecall-backend/internal/platform/envutil"
)

type Config struct {
	Environment string
	Version     string
}

func LoadConfig() Config {
	return Config{
		Environment: envutil.String("APP_ENV", "development"),
		Version:     envutil.String("APP_VERSION", "dev"),
	}
}

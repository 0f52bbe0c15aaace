package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	HTTP *HTTP `env:",prefix=HTTP_"`
	Log  *Log  `env:",prefix=LOG_"`

	// InsecureSkipVerify turns off TLS certificate verification for the
	// releases request. Only meant for sandboxes whose proxies re-sign TLS.
	InsecureSkipVerify bool `env:"INSECURE_SKIP_VERIFY,default=true"`
}

type HTTP struct {
	Timeout time.Duration `env:"TIMEOUT,default=30s"`
}

type Log struct {
	Format string `env:"FORMAT,default=console"`
	Level  string `env:"LEVEL,default=warn"`
}

func (cfg *Config) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddDuration("httpTimeout", cfg.HTTP.Timeout)
	enc.AddBool("insecureSkipVerify", cfg.InsecureSkipVerify)
	return nil
}

func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &cfg, l); err != nil {
		return nil, err
	}

	return &cfg, nil
}

package jackalpin

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces the environment variables read by ConfigFromEnv.
const envPrefix = "jackalpin"

// EnvConfig holds client settings resolved from the process environment.
type EnvConfig struct {
	// APIKey comes from JACKALPIN_API_KEY.
	APIKey string `envconfig:"API_KEY"`
	// BaseURL comes from JACKALPIN_API_URL.
	BaseURL string `envconfig:"API_URL"`
	// Timeout comes from JACKALPIN_TIMEOUT, a Go duration string.
	Timeout time.Duration `envconfig:"TIMEOUT"`
}

// ConfigFromEnv resolves client settings from JACKALPIN_-prefixed
// environment variables, loading the named dotenv files first when they
// exist (default ".env"). The client itself never reads the environment;
// pass the resolved key to [New] explicitly:
//
//	env, err := jackalpin.ConfigFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client, err := jackalpin.New(env.APIKey, env.Options()...)
func ConfigFromEnv(files ...string) (*EnvConfig, error) {
	// Missing dotenv files are fine; the real environment still applies.
	_ = godotenv.Load(files...)

	var cfg EnvConfig
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("resolve environment config: %w", err)
	}
	return &cfg, nil
}

// Options converts the resolved settings into client options, skipping
// unset fields so the defaults apply.
func (c *EnvConfig) Options() []Option {
	var opts []Option
	if c.BaseURL != "" {
		opts = append(opts, WithBaseURL(c.BaseURL))
	}
	if c.Timeout > 0 {
		opts = append(opts, WithTimeout(c.Timeout))
	}
	return opts
}

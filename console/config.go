package console

import (
	"github.com/cohesivestack/valgo"

	"github.com/AbaydullinAA/Project-Module2/valgoutil"
)

// Config is the cipherctl application configuration, loadable from YAML and
// environment variables.
type Config struct {
	AlphabetPath string       `yaml:"alphabetPath" env:"CIPHERCTL_ALPHABET"`
	LogLevel     string       `yaml:"logLevel" env:"CIPHERCTL_LOG_LEVEL"`
	Server       ServerConfig `yaml:"server" envPrefix:"CIPHERCTL_SERVER_"`
}

type ServerConfig struct {
	Port        int      `yaml:"port" env:"PORT"`
	CORSOrigins []string `yaml:"corsOrigins" env:"CORS_ORIGINS"`
}

func (c *Config) InitDefaults() {
	c.LogLevel = "info"
	c.Server.Port = 8080
}

func (c *Config) Validation() *valgo.Validation {
	v := valgo.New()
	v.Is(
		valgoutil.LogLevelValidator(c.LogLevel, "logLevel"),
		valgo.Int(c.Server.Port, "server.port").GreaterThan(0),
	)
	return v
}

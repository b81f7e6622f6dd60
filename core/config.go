package core

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds the settings shared by every app of the module.
type Config struct {
	Env          string
	AppName      string
	Build        string
	Debug        bool
	TestMode     bool
	LogLevel     string
	WorkDir      string
	DataFile     string
	SeedOnStart  bool
	RollbarToken string
}

// NewConfig loads the configuration from defaults, an optional `config/.env.<env>` file and the environment.
// ENV selects the environment (DEV by default) and is also used as the variable prefix, eg. DEV_DATAFILE.
func NewConfig() (*Config, error) {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", false)
	v.SetDefault("appName", "Marksheet")
	v.SetDefault("build", "dev")
	v.SetDefault("logLevel", "warn")
	v.SetDefault("dataFile", "studentMarks.txt")
	v.SetDefault("seedOnStart", true)
	v.SetDefault("rollbarToken", "")

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "config.Getwd")
	}

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "config.godotenv(%s)", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "config.os.Stat(%s)", dotEnvPath)
	}
	v.AutomaticEnv()

	conf := &Config{
		Env:          env,
		AppName:      v.GetString("appName"),
		Build:        v.GetString("build"),
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		LogLevel:     CleanString(v.GetString("logLevel"), true /* lower */),
		WorkDir:      wd,
		DataFile:     v.GetString("dataFile"),
		SeedOnStart:  v.GetBool("seedOnStart"),
		RollbarToken: v.GetString("rollbarToken"),
	}
	if !filepath.IsAbs(conf.DataFile) {
		conf.DataFile = filepath.Join(wd, conf.DataFile)
	}
	return conf, nil
}

package analyzer

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const defaultConfigPath = "./config.json"

type Config struct {
	ReportSize   int     `mapstructure:"report_size"`
	ReportDir    string  `mapstructure:"report_dir"`
	LogDir       string  `mapstructure:"log_dir"`
	LogFile      string  `mapstructure:"log_file"`
	ErrorsLimit  float64 `mapstructure:"errors_limit"`
	TemplateFile string  `mapstructure:"template_file"`
}

// ReadConfig loads defaults, then merges the JSON config file and any
// LOGALYZER_* environment variables over them. A missing file at the
// default path is fine; a missing file given explicitly is an error.
func ReadConfig(configFile string) error {
	explicit := configFile != ""
	if !explicit {
		configFile = defaultConfigPath
	}
	viper.SetConfigFile(configFile)
	viper.SetConfigType("json")
	viper.SetEnvPrefix("logalyzer")
	viper.AutomaticEnv()

	viper.SetDefault("report_size", 10)
	viper.SetDefault("report_dir", "./reports")
	viper.SetDefault("log_dir", "./logs")
	viper.SetDefault("log_file", "")
	viper.SetDefault("errors_limit", 0.64)
	viper.SetDefault("template_file", "")

	if err := viper.ReadInConfig(); err != nil {
		if os.IsNotExist(errors.Cause(err)) && !explicit {
			logrus.Debugf("no config file at %s, using defaults", configFile)
			return nil
		}
		return errors.Wrap(err, "unable to read configuration file")
	}

	return nil
}

// BindFlags lets command line flags override both defaults and config
// file values for the keys they cover.
func BindFlags(flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"report_size":   "size",
		"report_dir":    "report-dir",
		"log_dir":       "log-dir",
		"errors_limit":  "errors-limit",
		"template_file": "template",
	}

	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return errors.Wrapf(err, "failed to bind flag %s", name)
		}
	}

	return nil
}

func GetConfig() (*Config, error) {
	var cfg *Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

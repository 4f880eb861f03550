package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/awslabs/record-go/logging"
	"github.com/awslabs/record-go/logging/logruslogger"
	"github.com/awslabs/record-go/logging/zaplogger"
)

// Config holds the configuration for recordctl. Every key can be set by
// flag, by a RECORDCTL_ prefixed environment variable or in the file named
// by --config.
type Config struct {
	Model         string `yaml:"model"`
	Shape         string `yaml:"shape"`
	InputFormat   string `yaml:"input_format"`
	OutputFormat  string `yaml:"output_format"`
	StrictUnknown bool   `yaml:"strict_unknown"`
	JSONName      bool   `yaml:"json_name"`
	FillTokens    bool   `yaml:"fill_tokens"`
	Verbose       bool   `yaml:"verbose"`
	LogBackend    string `yaml:"log_backend"`
}

const (
	formatJSON = "json"
	formatYAML = "yaml"

	logBackendZap    = "zap"
	logBackendLogrus = "logrus"
)

// RegisterFlags adds the configuration flags to fs.
func (c *Config) RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "configuration file")
	fs.StringVar(&c.Model, "model", "", "YAML model file")
	fs.StringVar(&c.Shape, "shape", "", "structure shape the payload holds")
	fs.StringVar(&c.InputFormat, "input-format", formatJSON, "payload format, json or yaml")
	fs.StringVar(&c.OutputFormat, "output-format", formatJSON, "output format, json or yaml")
	fs.BoolVar(&c.StrictUnknown, "strict-unknown", false, "fail on payload keys the shape does not declare")
	fs.BoolVar(&c.JSONName, "json-name", false, "use jsonName traits for payload keys")
	fs.BoolVar(&c.FillTokens, "fill-tokens", false, "fill unset idempotency token members with random UUIDs")
	fs.BoolVarP(&c.Verbose, "verbose", "v", false, "log debug entries, such as dropped unknown keys")
	fs.String("log-backend", logBackendZap, "logger implementation, zap or logrus")
}

// InitFromViper reads the configuration from v, which has the flags of
// RegisterFlags bound.
func (c *Config) InitFromViper(v *viper.Viper) {
	c.Model = v.GetString("model")
	c.Shape = v.GetString("shape")
	c.InputFormat = strings.ToLower(v.GetString("input_format"))
	c.OutputFormat = strings.ToLower(v.GetString("output_format"))
	c.StrictUnknown = v.GetBool("strict_unknown")
	c.JSONName = v.GetBool("json_name")
	c.FillTokens = v.GetBool("fill_tokens")
	c.Verbose = v.GetBool("verbose")
	c.LogBackend = strings.ToLower(v.GetString("log_backend"))
}

// Validate reports configuration that cannot be used.
func (c *Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("model must be set")
	}
	if c.Shape == "" {
		return fmt.Errorf("shape must be set")
	}
	for _, f := range []string{c.InputFormat, c.OutputFormat} {
		if f != formatJSON && f != formatYAML {
			return fmt.Errorf("unknown format %q, expected json or yaml", f)
		}
	}
	if c.LogBackend != logBackendZap && c.LogBackend != logBackendLogrus {
		return fmt.Errorf("unknown log backend %q, expected zap or logrus", c.LogBackend)
	}
	return nil
}

func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("recordctl")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || err != nil {
			return
		}
		err = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
	if err != nil {
		return nil, err
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s, %w", path, err)
		}
	}
	return v, nil
}

// newLogger returns the logger record conversions report through, and a
// function flushing it.
func newLogger(cfg Config, w io.Writer) (logging.Logger, func()) {
	if cfg.LogBackend == logBackendLogrus {
		l := logrus.New()
		l.SetOutput(w)
		l.SetLevel(logrus.InfoLevel)
		if cfg.Verbose {
			l.SetLevel(logrus.DebugLevel)
		}
		return logruslogger.New(l), func() {}
	}

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if cfg.Verbose {
		level.SetLevel(zapcore.DebugLevel)
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	l := zap.New(core)
	return zaplogger.New(l), func() { _ = l.Sync() }
}

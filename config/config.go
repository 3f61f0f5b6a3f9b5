// Package config loads the console settings from defaults, an optional config
// file, LISTQ_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to the environment variables that override settings,
// e.g. LISTQ_LOG_LEVEL.
const EnvPrefix = "listq"

// Setting keys ...
const (
	KeyBufSize   = "console.bufsize"
	KeyDescend   = "console.descend"
	KeyEcho      = "console.echo"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
)

// Log formats ...
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatLogfmt  = "logfmt"
)

// Config ...
type Config struct {
	Console Console `mapstructure:"console"`
	Log     Log     `mapstructure:"log"`
}

// Console holds the interpreter settings.
type Console struct {
	BufSize int  `mapstructure:"bufsize"` // Size of the buffer removed values are copied into.
	Descend bool `mapstructure:"descend"` // Order used by sort, merge and the sortedness checks.
	Echo    bool `mapstructure:"echo"`    // Whether every command is echoed before its output.
}

// Log holds the logger settings.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// FlagNames maps setting keys to the command-line flags that override them.
var FlagNames = map[string]string{
	KeyBufSize:   "bufsize",
	KeyDescend:   "descend",
	KeyEcho:      "echo",
	KeyLogLevel:  "log-level",
	KeyLogFormat: "log-format",
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Console: Console{
			BufSize: 1024,
			Echo:    true,
		},
		Log: Log{
			Level:  "info",
			Format: FormatConsole,
		},
	}
}

// Flags registers the overriding flags on fs, with the defaults as values.
func Flags(fs *pflag.FlagSet) {
	def := Default()
	fs.Int(FlagNames[KeyBufSize], def.Console.BufSize, "size of the buffer removed values are copied into")
	fs.Bool(FlagNames[KeyDescend], def.Console.Descend, "sort and merge in descending order")
	fs.Bool(FlagNames[KeyEcho], def.Console.Echo, "echo every command")
	fs.String(FlagNames[KeyLogLevel], def.Log.Level, "log level (debug, info, warn, error)")
	fs.String(FlagNames[KeyLogFormat], def.Log.Format, "log format (console, json, logfmt)")
}

// Load reads the settings. An empty path skips the config file; flags may be nil.
func Load(fs afero.Fs, path string, flags *pflag.FlagSet) (Config, error) {
	var cfg Config

	v := viper.New()
	v.SetFs(fs)

	def := Default()
	v.SetDefault(KeyBufSize, def.Console.BufSize)
	v.SetDefault(KeyDescend, def.Console.Descend)
	v.SetDefault(KeyEcho, def.Console.Echo)
	v.SetDefault(KeyLogLevel, def.Log.Level)
	v.SetDefault(KeyLogFormat, def.Log.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range FlagNames {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return cfg, errors.Wrapf(err, "cannot bind flag %s", name)
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, errors.Wrapf(err, "cannot read config file %s", path)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "cannot decode config")
	}

	return cfg, cfg.Validate()
}

// Validate ...
func (c Config) Validate() error {
	if c.Console.BufSize < 1 {
		return errors.Errorf("bufsize should be a positive integer, got %d", c.Console.BufSize)
	}
	switch c.Log.Format {
	case FormatConsole, FormatJSON, FormatLogfmt:
	default:
		return errors.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

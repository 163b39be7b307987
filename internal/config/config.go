// Package config loads csvscan settings from flags, the environment and an
// optional config file, in that order of precedence.
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/shapestone/shape-csvstream/internal/source"
	"github.com/shapestone/shape-csvstream/pkg/csv"
)

// EnvPrefix prefixes environment variables, e.g. CSVSCAN_SEPARATOR.
const EnvPrefix = "CSVSCAN"

// Config is the decoded csvscan configuration.
type Config struct {
	Separator     string            `mapstructure:"separator"`
	Quote         string            `mapstructure:"quote"`
	Header        bool              `mapstructure:"header"`
	SkipEmpty     bool              `mapstructure:"skip-empty"`
	Strict        bool              `mapstructure:"strict"`
	Trim          bool              `mapstructure:"trim"`
	BeginLine     int               `mapstructure:"begin-line"`
	EndLine       int               `mapstructure:"end-line"`
	BufferSize    int               `mapstructure:"buffer-size"`
	HeaderAliases map[string]string `mapstructure:"alias"`
	Charset       string            `mapstructure:"charset"`
	Compression   string            `mapstructure:"compression"`
}

// RegisterFlags installs the dialect and input flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	def := csv.DefaultDialect()
	fs.String("separator", string(def.Separator), `field separator (a single character, or "tab")`)
	fs.String("quote", string(def.Quote), "quote character")
	fs.Bool("header", def.HasHeader, "treat the first row as column names")
	fs.Bool("skip-empty", def.SkipEmptyRows, "skip rows consisting of one empty field")
	fs.Bool("strict", def.StrictFieldCount, "fail when a row's field count differs from the first row")
	fs.Bool("trim", def.TrimFields, "trim white space around fields")
	fs.Int("begin-line", 0, "skip rows starting before this line (1-based)")
	fs.Int("end-line", 0, "stop at the first row starting after this line (1-based)")
	fs.Int("buffer-size", def.BufferSize, "read window size in characters")
	fs.StringToString("alias", nil, "rename header columns, e.g. --alias 'First Name=first'")
	fs.String("charset", "", "input charset (default utf-8)")
	fs.String("compression", source.CompressionAuto, "input compression: auto, none, gzip or zstd")
}

// Load binds fs into v and decodes the result. A non-empty configFile is
// read from fsys; its format follows the file extension.
func Load(v *viper.Viper, fs *pflag.FlagSet, fsys afero.Fs, configFile string) (Config, error) {
	var c Config

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return c, fmt.Errorf("config: bind flags: %w", err)
	}

	if configFile != "" {
		v.SetFs(fsys)
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("config: decode: %w", err)
	}
	return c, nil
}

// Dialect converts the configuration into a validated csv.Dialect.
func (c Config) Dialect() (csv.Dialect, error) {
	d := csv.DefaultDialect()

	sep, err := parseChar("separator", c.Separator)
	if err != nil {
		return d, err
	}
	quote, err := parseChar("quote", c.Quote)
	if err != nil {
		return d, err
	}

	d.Separator = sep
	d.Quote = quote
	d.HasHeader = c.Header
	d.SkipEmptyRows = c.SkipEmpty
	d.StrictFieldCount = c.Strict
	d.TrimFields = c.Trim
	d.BeginLine = c.BeginLine
	d.EndLine = c.EndLine
	if c.BufferSize > 0 {
		d.BufferSize = c.BufferSize
	}
	if len(c.HeaderAliases) > 0 {
		d.HeaderAliases = c.HeaderAliases
	}

	if err := d.Validate(); err != nil {
		return d, err
	}
	return d, nil
}

// Source returns the input options for source.Open.
func (c Config) Source() source.Options {
	return source.Options{
		Compression: c.Compression,
		Charset:     c.Charset,
	}
}

// parseChar reads a single-character setting. "tab" and `\t` mean a tab.
func parseChar(name, value string) (rune, error) {
	switch strings.ToLower(value) {
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("config: %s must be a single character, got %q", name, value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}

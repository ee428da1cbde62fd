// Package config handles befunge.toml interpreter configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/AtheMathmo/rubefunge-93/befunge"
)

// FileName is the configuration file looked up by FindAndLoad.
const FileName = "befunge.toml"

// Config represents a befunge.toml file.
type Config struct {
	Interpreter Interpreter `toml:"interpreter"`
	Grid        Grid        `toml:"grid"`
	IO          IO          `toml:"io"`
	Log         Log         `toml:"log"`

	// Path is the file the configuration was read from, if any.
	Path string `toml:"-"`
}

// Interpreter configures the VM.
type Interpreter struct {
	DivisionByZero string `toml:"division_by_zero"`
	EOFValue       *int64 `toml:"eof_value"`
	MaxStack       int    `toml:"max_stack"`
	MaxSteps       int64  `toml:"max_steps"`
	Seed           int64  `toml:"seed"`
	Trace          bool   `toml:"trace"`
}

// Grid limits the size of loaded programs.
type Grid struct {
	MaxWidth  int `toml:"max_width"`
	MaxHeight int `toml:"max_height"`
}

// IO configures the program's standard streams.
type IO struct {
	Encoding    string `toml:"encoding"`
	Interactive string `toml:"interactive"`
	Prompt      string `toml:"prompt"`
}

// Log configures commonlog.
type Log struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// Division by zero policies.
const (
	DivZero  = "zero"
	DivFatal = "fatal"
)

// Interactive modes.
const (
	InteractiveAuto   = "auto"
	InteractiveAlways = "always"
	InteractiveNever  = "never"
)

// Default returns the configuration used when no file is found.
func Default() *Config {
	c := &Config{}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	if c.Interpreter.DivisionByZero == "" {
		c.Interpreter.DivisionByZero = DivZero
	}
	if c.Interpreter.EOFValue == nil {
		eof := int64(-1)
		c.Interpreter.EOFValue = &eof
	}
	if c.IO.Encoding == "" {
		c.IO.Encoding = "utf-8"
	}
	if c.IO.Interactive == "" {
		c.IO.Interactive = InteractiveAuto
	}
}

// Load parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	c.Path = path

	c.setDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &c, nil
}

// FindAndLoad walks up from startDir to find a befunge.toml file
// and loads it.  Returns the default configuration if none is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", startDir, err)
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

// Validate checks values that the TOML decoder cannot.
func (c *Config) Validate() error {
	var errs []error
	switch c.Interpreter.DivisionByZero {
	case DivZero, DivFatal:
	default:
		errs = append(errs, fmt.Errorf("interpreter.division_by_zero: unknown policy %q", c.Interpreter.DivisionByZero))
	}
	if c.Interpreter.MaxStack < 0 {
		errs = append(errs, errors.New("interpreter.max_stack: must not be negative"))
	}
	if c.Interpreter.MaxSteps < 0 {
		errs = append(errs, errors.New("interpreter.max_steps: must not be negative"))
	}
	if c.Grid.MaxWidth < 0 || c.Grid.MaxHeight < 0 {
		errs = append(errs, errors.New("grid: limits must not be negative"))
	}
	if _, err := c.Encoding(); err != nil {
		errs = append(errs, err)
	}
	switch c.IO.Interactive {
	case InteractiveAuto, InteractiveAlways, InteractiveNever:
	default:
		errs = append(errs, fmt.Errorf("io.interactive: unknown mode %q", c.IO.Interactive))
	}
	return errors.Join(errs...)
}

// Encoding returns the text encoding named by io.encoding.
func (c *Config) Encoding() (encoding.Encoding, error) {
	switch c.IO.Encoding {
	case "", "utf-8", "utf8":
		return unicode.UTF8, nil
	case "latin1", "latin-1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "cp437":
		return charmap.CodePage437, nil
	case "windows-1252":
		return charmap.Windows1252, nil
	}
	return nil, fmt.Errorf("io.encoding: unknown encoding %q", c.IO.Encoding)
}

// Limits returns the grid limits.
func (c *Config) Limits() befunge.Limits {
	return befunge.Limits{MaxWidth: c.Grid.MaxWidth, MaxHeight: c.Grid.MaxHeight}
}

// Options returns VM options for this configuration.
func (c *Config) Options() *befunge.Options {
	opt := befunge.DefaultOptions()
	if c.Interpreter.DivisionByZero == DivFatal {
		opt.DivZero = befunge.DivZeroFatal
	}
	if c.Interpreter.EOFValue != nil {
		opt.EOFValue = befunge.Cell(*c.Interpreter.EOFValue)
	}
	opt.MaxStack = c.Interpreter.MaxStack
	opt.MaxSteps = c.Interpreter.MaxSteps
	opt.Rand = befunge.NewRandomizer(c.Interpreter.Seed)
	opt.Trace = c.Interpreter.Trace
	return opt
}

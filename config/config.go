/*
Package config holds the configuration of the course planner.

Configuration is a flat set of dotted keys ("input.path", "tracelevel.root").
Values are determined in three steps, later steps overriding earlier ones:

  - built-in defaults
  - an optional YAML file; nested maps are flattened to dotted keys
  - environment variables COURSEPLANNER_<KEY>, with dots in the key
    replaced by underscores and letters in upper case (e.g.
    COURSEPLANNER_DISPLAY_FORMAT)

Conf implements schuko.Configuration and may therefore be handed to the
tracing setup directly.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables overriding config keys.
const EnvPrefix = "COURSEPLANNER_"

// Well-known configuration keys.
const (
	KeyInputPath     = "input.path"
	KeyInputCourse   = "input.course" // course to print after loading
	KeyDisplayFormat = "display.format"
	KeyDisplayColor  = "display.color"
	KeyTraceAdapter  = "tracing.adapter"
	KeyTraceLevel    = "tracelevel" // prefix for per-tracer levels
)

// ErrInvalid is wrapped by errors from configuration validation.
var ErrInvalid = errors.New("invalid configuration")

// Conf is a flat key/value configuration.
type Conf struct {
	values  map[string]string
	environ func() []string
}

var _ schuko.Configuration = (*Conf)(nil)

// Load creates a configuration from defaults, the YAML file at path and the
// process environment. An empty path skips the file step; a path naming a
// file which does not exist is an error.
func Load(path string) (*Conf, error) {
	return load(path, os.Environ)
}

func load(path string, environ func() []string) (*Conf, error) {
	conf := &Conf{environ: environ}
	conf.InitDefaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := conf.merge(data); err != nil {
			return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
		}
	}
	conf.loadFromEnv()
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// InitDefaults sets the built-in default values. It is part of
// interface schuko.Configuration.
func (c *Conf) InitDefaults() {
	if c.values == nil {
		c.values = make(map[string]string)
	}
	c.values[KeyInputPath] = "ABCU_Advising_Program_Input.txt"
	c.values[KeyDisplayFormat] = "console"
	c.values[KeyDisplayColor] = "true"
	c.values[KeyTraceAdapter] = "go"
	c.values[KeyTraceLevel+".root"] = "Error"
	c.values[KeyTraceLevel+".coursetree"] = "Error"
}

// merge reads YAML data and flattens it into c.
func (c *Conf) merge(data []byte) error {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	flatten("", doc, c.values)
	return nil
}

func flatten(prefix string, m map[string]interface{}, into map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]interface{}:
			flatten(key, val, into)
		case nil:
			delete(into, key)
		default:
			into[key] = fmt.Sprint(val)
		}
	}
}

// loadFromEnv applies every environment variable starting with EnvPrefix.
// Names of keys already set are matched exactly; any other name is turned
// into a key by lower-casing it and replacing underscores with dots.
func (c *Conf) loadFromEnv() {
	if c.environ == nil {
		return
	}
	known := make(map[string]string, len(c.values))
	for _, key := range c.Keys() {
		known[EnvName(key)] = key
	}
	for _, kv := range c.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) || name == EnvPrefix {
			continue
		}
		key, isKnown := known[name]
		if !isKnown {
			key = strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(name, EnvPrefix), "_", "."))
		}
		c.values[key] = value
	}
}

// EnvName returns the name of the environment variable overriding key.
func EnvName(key string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func (c *Conf) validate() error {
	switch f := c.GetString(KeyDisplayFormat); f {
	case "console", "html":
	default:
		return fmt.Errorf("%w: unknown display format %q", ErrInvalid, f)
	}
	if c.GetString(KeyInputPath) == "" {
		return fmt.Errorf("%w: input path must not be empty", ErrInvalid)
	}
	if v := c.GetString(KeyDisplayColor); v != "" {
		if _, err := strconv.ParseBool(v); err != nil {
			return fmt.Errorf("%w: %s is not a boolean: %q", ErrInvalid, KeyDisplayColor, v)
		}
	}
	return nil
}

// Set sets a configuration value, e.g. from a command-line option.
func (c *Conf) Set(key, value string) {
	if c.values == nil {
		c.values = make(map[string]string)
	}
	c.values[key] = value
}

// Keys returns all keys set, sorted.
func (c *Conf) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsSet is part of interface schuko.Configuration.
func (c *Conf) IsSet(key string) bool {
	_, ok := c.values[key]
	return ok
}

// GetString is part of interface schuko.Configuration.
func (c *Conf) GetString(key string) string {
	return c.values[key]
}

// GetInt is part of interface schuko.Configuration. Values which are not
// integers yield 0.
func (c *Conf) GetInt(key string) int {
	n, err := strconv.Atoi(c.values[key])
	if err != nil {
		return 0
	}
	return n
}

// GetBool is part of interface schuko.Configuration. Values which are not
// booleans yield false.
func (c *Conf) GetBool(key string) bool {
	b, err := strconv.ParseBool(c.values[key])
	if err != nil {
		return false
	}
	return b
}

// IsInteractive is part of interface schuko.Configuration.
func (c *Conf) IsInteractive() bool {
	return false
}

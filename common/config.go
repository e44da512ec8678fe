package common

import (
	"os"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config represents the configuration of a batch of adjacency checks.
type Config struct {
	LogLevel string `yaml:"logLevel,omitempty" json:"logLevel"`
	// MaxBufferSize caps file buffers, e.g. "64MB" or "512KiB".
	MaxBufferSize string          `yaml:"maxBufferSize,omitempty" json:"maxBufferSize"`
	Buffers       []*BufferConfig `yaml:"buffers" json:"buffers"`
	Cases         []*CaseConfig   `yaml:"cases" json:"cases"`
	Metrics       *MetricsConfig  `yaml:"metrics,omitempty" json:"metrics"`
}

// BufferConfig declares one backing buffer, either inline or read from a file.
type BufferConfig struct {
	Id   string `yaml:"id" json:"id"`
	Text string `yaml:"text,omitempty" json:"text,omitempty"`
	File string `yaml:"file,omitempty" json:"file,omitempty"`
}

type CaseMode string

const (
	CaseModeOrdered   CaseMode = "ordered"
	CaseModeUnordered CaseMode = "unordered"
)

// CaseConfig is one concatenation to evaluate. A and B are operands written as
// "bufferId[start:end]"; the buffer id may be left out to use the first buffer.
type CaseConfig struct {
	Id          string   `yaml:"id" json:"id"`
	A           string   `yaml:"a" json:"a"`
	B           string   `yaml:"b" json:"b"`
	Mode        CaseMode `yaml:"mode,omitempty" json:"mode"`
	Expect      *string  `yaml:"expect,omitempty" json:"expect,omitempty"`
	ExpectError string   `yaml:"expectError,omitempty" json:"expectError,omitempty"`
}

type MetricsConfig struct {
	Enabled    *bool  `yaml:"enabled,omitempty" json:"enabled"`
	OutputFile string `yaml:"outputFile,omitempty" json:"outputFile"`
}

// LoadConfig loads the configuration from the specified file. Environment
// variables are expanded in settings only; buffer text and expected joins are
// data and are kept byte for byte.
func LoadConfig(fs afero.Fs, filename string) (*Config, error) {
	data, err := afero.ReadFile(fs, filename)

	if err != nil {
		return nil, err
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, NewErrInvalidConfig("cannot parse yaml", err)
	}
	cfg.expandEnv()

	return &cfg, nil
}

func (c *Config) expandEnv() {
	c.LogLevel = os.ExpandEnv(c.LogLevel)
	c.MaxBufferSize = os.ExpandEnv(c.MaxBufferSize)
	for _, b := range c.Buffers {
		if b == nil {
			continue
		}
		b.Id = os.ExpandEnv(b.Id)
		b.File = os.ExpandEnv(b.File)
	}
	for _, cs := range c.Cases {
		if cs == nil {
			continue
		}
		cs.Id = os.ExpandEnv(cs.Id)
		cs.A = os.ExpandEnv(cs.A)
		cs.B = os.ExpandEnv(cs.B)
		cs.Mode = CaseMode(os.ExpandEnv(string(cs.Mode)))
		cs.ExpectError = os.ExpandEnv(cs.ExpectError)
	}
	if c.Metrics != nil {
		c.Metrics.OutputFile = os.ExpandEnv(c.Metrics.OutputFile)
	}
}

// MaxBufferBytes returns MaxBufferSize in bytes. Validate has checked it parses.
func (c *Config) MaxBufferBytes() uint64 {
	n, err := humanize.ParseBytes(c.MaxBufferSize)
	if err != nil {
		return 0
	}
	return n
}

// GetBufferConfig returns the buffer configuration by id, or the first buffer for an empty id.
func (c *Config) GetBufferConfig(bufferId string) *BufferConfig {
	if bufferId == "" && len(c.Buffers) > 0 {
		return c.Buffers[0]
	}
	for _, buffer := range c.Buffers {
		if buffer.Id == bufferId {
			return buffer
		}
	}

	return nil
}

func (c *Config) MarshalZerologObject(e *zerolog.Event) {
	e.Str("logLevel", c.LogLevel).
		Str("maxBufferSize", c.MaxBufferSize).
		Int("buffers", len(c.Buffers)).
		Int("cases", len(c.Cases))
}

func (b *BufferConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Str("id", b.Id)
	if b.File != "" {
		e.Str("file", b.File)
	} else {
		e.Int("inlineBytes", len(b.Text))
	}
}

func (c *CaseConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Str("id", c.Id).
		Str("a", c.A).
		Str("b", c.B).
		Str("mode", string(c.Mode))
}

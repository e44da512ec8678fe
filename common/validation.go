package common

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

func (c *Config) Validate() error {
	if c.MaxBufferSize != "" {
		if _, err := humanize.ParseBytes(c.MaxBufferSize); err != nil {
			return NewErrInvalidConfig(fmt.Sprintf("maxBufferSize '%s' is invalid (must be like 512KiB, 64MB, etc)", c.MaxBufferSize), err)
		}
	}
	if len(c.Buffers) == 0 {
		return NewErrInvalidConfig("at least one buffer is required", nil)
	}
	bufferIds := make(map[string]bool, len(c.Buffers))
	for i, buffer := range c.Buffers {
		if buffer == nil {
			return NewErrInvalidConfig(fmt.Sprintf("buffers[%d] is empty", i), nil)
		}
		if err := buffer.Validate(); err != nil {
			return err
		}
		if bufferIds[buffer.Id] {
			return NewErrInvalidConfig(fmt.Sprintf("buffer id '%s' is defined more than once", buffer.Id), nil)
		}
		bufferIds[buffer.Id] = true
	}

	caseIds := make(map[string]bool, len(c.Cases))
	for i, cs := range c.Cases {
		if cs == nil {
			return NewErrInvalidConfig(fmt.Sprintf("cases[%d] is empty", i), nil)
		}
		if err := cs.Validate(c); err != nil {
			return err
		}
		if caseIds[cs.Id] {
			return NewErrInvalidConfig(fmt.Sprintf("case id '%s' is defined more than once", cs.Id), nil)
		}
		caseIds[cs.Id] = true
	}

	if c.Metrics != nil {
		if err := c.Metrics.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (b *BufferConfig) Validate() error {
	if b.Id == "" {
		return NewErrInvalidConfig("buffer.id is required", nil)
	}
	if b.Text != "" && b.File != "" {
		return NewErrInvalidConfig(fmt.Sprintf("buffer '%s' sets both text and file", b.Id), nil)
	}
	return nil
}

func (c *CaseConfig) Validate(cfg *Config) error {
	if c.Id == "" {
		return NewErrInvalidConfig("case.id is required", nil)
	}
	for _, raw := range []string{c.A, c.B} {
		op, err := ParseOperand(raw)
		if err != nil {
			return NewErrInvalidConfig(fmt.Sprintf("case '%s' has an invalid operand", c.Id), err)
		}
		if cfg.GetBufferConfig(op.BufferId) == nil {
			return NewErrInvalidConfig(fmt.Sprintf("case '%s' refers to an unknown buffer", c.Id), NewErrUnknownBuffer(op.BufferId))
		}
	}
	switch c.Mode {
	case CaseModeOrdered, CaseModeUnordered:
	default:
		return NewErrInvalidConfig(fmt.Sprintf("case '%s' has invalid mode '%s' (must be ordered or unordered)", c.Id, c.Mode), nil)
	}
	if c.Expect != nil && c.ExpectError != "" {
		return NewErrInvalidConfig(fmt.Sprintf("case '%s' sets both expect and expectError", c.Id), nil)
	}
	return nil
}

func (m *MetricsConfig) Validate() error {
	if m.Enabled != nil && *m.Enabled && m.OutputFile == "" {
		return NewErrInvalidConfig("metrics.outputFile is required when metrics.enabled is true", nil)
	}
	return nil
}

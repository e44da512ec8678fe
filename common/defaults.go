package common

import (
	"fmt"
)

func (c *Config) SetDefaults() error {
	if c.LogLevel == "" {
		c.LogLevel = "INFO"
	}
	if c.MaxBufferSize == "" {
		c.MaxBufferSize = "64MB"
	}
	for i, buffer := range c.Buffers {
		if buffer == nil {
			continue
		}
		if buffer.Id == "" {
			if i == 0 {
				buffer.Id = "main"
			} else {
				buffer.Id = fmt.Sprintf("buffer-%d", i)
			}
		}
	}
	for i, cs := range c.Cases {
		if cs == nil {
			continue
		}
		if err := cs.SetDefaults(i); err != nil {
			return err
		}
	}
	if c.Metrics == nil {
		c.Metrics = &MetricsConfig{}
	}
	if err := c.Metrics.SetDefaults(); err != nil {
		return err
	}

	return nil
}

func (c *CaseConfig) SetDefaults(index int) error {
	if c.Id == "" {
		c.Id = fmt.Sprintf("case-%d", index)
	}
	if c.Mode == "" {
		c.Mode = CaseModeOrdered
	}
	return nil
}

func (m *MetricsConfig) SetDefaults() error {
	if m.Enabled == nil {
		enabled := m.OutputFile != ""
		m.Enabled = &enabled
	}
	return nil
}

package config

import "fmt"

// Validate checks if the configuration is valid. The output key is checked
// by the commands that render with it.
func (c *Config) Validate() error {
	if c.LLM.MaxAttempts < 1 {
		return fmt.Errorf("llm.max_attempts must be at least 1, got %d", c.LLM.MaxAttempts)
	}
	if c.LLM.RetryDelay < 0 {
		return fmt.Errorf("llm.retry_delay must not be negative, got %s", c.LLM.RetryDelay)
	}
	if c.LLM.Timeout < 0 {
		return fmt.Errorf("llm.timeout must not be negative, got %s", c.LLM.Timeout)
	}
	return nil
}

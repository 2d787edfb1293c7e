package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.UploadRateLimit < 1 || c.Server.GenerateRateLimit < 1 {
		return fmt.Errorf("server rate limits must be >= 1 (got upload=%d, generate=%d)",
			c.Server.UploadRateLimit, c.Server.GenerateRateLimit)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if !c.Quota.Personal().IsValid() {
		return fmt.Errorf("quota.personal_plan must be FREE, PRO or ENTERPRISE (got %q)", c.Quota.PersonalPlan)
	}

	if c.Workflow.MaxUploadBytes <= 0 {
		return fmt.Errorf("workflow.max_upload_bytes must be > 0 (got %d)", c.Workflow.MaxUploadBytes)
	}
	if c.Workflow.MaxContentBytes <= 0 {
		return fmt.Errorf("workflow.max_content_bytes must be > 0 (got %d)", c.Workflow.MaxContentBytes)
	}
	if c.Workflow.AutosaveRetentionDays < 1 {
		return fmt.Errorf("workflow.autosave_retention_days must be >= 1 (got %d)", c.Workflow.AutosaveRetentionDays)
	}

	if c.Notify.Concurrency < 1 {
		return fmt.Errorf("notify.concurrency must be >= 1 (got %d)", c.Notify.Concurrency)
	}
	if c.Notify.Timeout <= 0 {
		return fmt.Errorf("notify.timeout must be > 0 (got %s)", c.Notify.Timeout)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))
	switch s.Driver {
	case "memory":
		return nil
	case "s3":
		if s.Bucket == "" {
			return fmt.Errorf("bucket is required for the s3 driver")
		}
		if (s.AccessKeyID == "") != (s.SecretAccessKey == "") {
			return fmt.Errorf("access_key_id and secret_access_key must be set together")
		}
		return nil
	}
	return fmt.Errorf("unknown driver %q (want s3 or memory)", s.Driver)
}

package config

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid config")

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageS3, StorageMinIO:
	default:
		return fmt.Errorf("%w: unknown storage driver %q", ErrInvalidConfig, c.StorageDriver)
	}
	if c.SecretKey == "" {
		return fmt.Errorf("%w: secret key is empty", ErrInvalidConfig)
	}
	if c.AccessTokenValidityDuration <= 0 || c.RefreshTokenValidityDuration <= 0 {
		return fmt.Errorf("%w: token validity must be positive", ErrInvalidConfig)
	}
	if c.PresignTTL <= 0 {
		return fmt.Errorf("%w: presign ttl must be positive", ErrInvalidConfig)
	}
	return nil
}

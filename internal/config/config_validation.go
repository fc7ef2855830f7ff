package config

import "errors"

func (c *StructuredConfig) validate() error {
	var errs []error

	if c.Storage.DB.DSN == "" {
		errs = append(errs, ErrNoDatabaseDSN)
	}
	if c.Auth.TokenSignKey == "" {
		errs = append(errs, ErrNoTokenSignKey)
	}
	if c.Server.HTTPAddress == "" {
		errs = append(errs, ErrNoHTTPAddress)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/MKhiriev/comfy-hf-uploader/models"
	"github.com/rs/zerolog"
)

// validate checks the settings shared by every binary. Request-level inputs
// (token, repo id, source) are validated by the upload service, which reports
// them to the user instead of refusing to start.
func (cfg *StructuredConfig) validate() error {
	if cfg.Hub.Endpoint != "" {
		u, err := url.Parse(cfg.Hub.Endpoint)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: endpoint %q must include scheme and host", ErrInvalidHubConfigs, cfg.Hub.Endpoint)
		}
	}

	if _, err := models.ParseModelKind(cfg.Upload.Kind); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUploadConfigs, err)
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Hub.Endpoint == "" || cfg.Hub.Revision == "" {
		return ErrInvalidHubConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Hub.Endpoint == "" || cfg.Hub.Revision == "" {
		return ErrInvalidHubConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

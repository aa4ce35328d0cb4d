package config

import (
	"fmt"
)

// ClientConfig is the configuration view used by the one-shot upload CLI.
type ClientConfig struct {
	Hub    Hub
	Upload Upload
	Log    Log
}

// ServerConfig is the configuration view used by the node service.
type ServerConfig struct {
	Hub    Hub
	Upload Upload
	Server Server
	Log    Log
}

// GetClientConfig builds and validates the CLI view of the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.Client()
}

// GetServerConfig builds and validates the node service view of the merged
// structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.ServerView()
}

// Client maps the fields relevant to the CLI and validates them.
func (cfg *StructuredConfig) Client() (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Hub:    cfg.Hub,
		Upload: cfg.Upload,
		Log:    cfg.Log,
	}

	return clientCfg, clientCfg.validate()
}

// ServerView maps the fields relevant to the node service and validates them.
func (cfg *StructuredConfig) ServerView() (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		Hub:    cfg.Hub,
		Upload: cfg.Upload,
		Server: cfg.Server,
		Log:    cfg.Log,
	}

	return serverCfg, serverCfg.validate()
}

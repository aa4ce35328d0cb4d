package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// optionalBool is a boolean flag that remembers whether it was set, so an
// explicit -card=false can override a true value from another source.
type optionalBool struct {
	value *bool
}

// ParseFlags parses configuration flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-endpoint Hub base URL
//	-token Hub access token
//	-revision target branch
//	-request-timeout outbound request timeout (e.g. "30s")
//	-output-dir default source directory
//	-repo repository id (owner/name)
//	-source model file or directory
//	-path-in-repo destination prefix inside the repo
//	-kind ckpt or diffusers
//	-message commit message
//	-card create a model card (true/false)
//	-preview preview image path (PNG or JPEG)
//	-a node service address in format [host]:[port]
//	-server-timeout node service read timeout
//	-log-level zerolog level
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("hf-upload", flag.ContinueOnError)

	var serverAddress NetAddress
	var card optionalBool
	var hubRequestTimeout, serverRequestTimeout time.Duration
	cfg := &StructuredConfig{}

	fs.StringVar(&cfg.Hub.Endpoint, "endpoint", "", "Hub base URL")
	fs.StringVar(&cfg.Hub.Token, "token", "", "Hub access token")
	fs.StringVar(&cfg.Hub.Revision, "revision", "", "Target branch")
	fs.DurationVar(&hubRequestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 30s, 1m)")

	fs.StringVar(&cfg.Upload.OutputDir, "output-dir", "", "Default source directory")
	fs.StringVar(&cfg.Upload.RepoID, "repo", "", "Repository id (owner/name)")
	fs.StringVar(&cfg.Upload.Source, "source", "", "Model file or directory")
	fs.StringVar(&cfg.Upload.PathInRepo, "path-in-repo", "", "Destination prefix inside the repository")
	fs.StringVar(&cfg.Upload.Kind, "kind", "", "Model kind: ckpt or diffusers")
	fs.StringVar(&cfg.Upload.CommitMessage, "message", "", "Commit message")
	fs.Var(&card, "card", "Create a model card (true/false)")
	fs.StringVar(&cfg.Upload.Preview, "preview", "", "Preview image path (PNG or JPEG)")

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&serverRequestTimeout, "server-timeout", 0, "Node service read timeout (e.g., 30s)")

	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")

	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Hub.RequestTimeout = hubRequestTimeout
	cfg.Upload.CreateModelCard = card.value
	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.RequestTimeout = serverRequestTimeout

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces; any other host must be "localhost"
// or a valid IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

func (b *optionalBool) String() string {
	if b.value == nil {
		return ""
	}
	return strconv.FormatBool(*b.value)
}

func (b *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.value = &v
	return nil
}

// IsBoolFlag lets the flag be given without a value ("-card").
func (b *optionalBool) IsBoolFlag() bool {
	return true
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	Hub struct {
		Endpoint       string   `json:"endpoint"`
		Token          string   `json:"token"`
		Revision       string   `json:"revision"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"hub,omitempty"`

	Upload struct {
		OutputDir       string `json:"output_dir"`
		RepoID          string `json:"repo_id"`
		Source          string `json:"source"`
		PathInRepo      string `json:"path_in_repo"`
		Kind            string `json:"kind"`
		CommitMessage   string `json:"commit_message"`
		CreateModelCard *bool  `json:"create_model_card"`
		Preview         string `json:"preview"`
	} `json:"upload,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Hub: Hub{
			Endpoint:       jsonCfg.Hub.Endpoint,
			Token:          jsonCfg.Hub.Token,
			Revision:       jsonCfg.Hub.Revision,
			RequestTimeout: time.Duration(jsonCfg.Hub.RequestTimeout),
		},
		Upload: Upload{
			OutputDir:       jsonCfg.Upload.OutputDir,
			RepoID:          jsonCfg.Upload.RepoID,
			Source:          jsonCfg.Upload.Source,
			PathInRepo:      jsonCfg.Upload.PathInRepo,
			Kind:            jsonCfg.Upload.Kind,
			CommitMessage:   jsonCfg.Upload.CommitMessage,
			CreateModelCard: jsonCfg.Upload.CreateModelCard,
			Preview:         jsonCfg.Upload.Preview,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

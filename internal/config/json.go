package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations so that operators can keep a readable config
// file alongside environment variables.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		BcryptCost       int      `json:"bcrypt_cost"`
		DefaultAvatarURL string   `json:"default_avatar_url"`
		Version          string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		ClientOrigin   string   `json:"client_origin"`
		SecureCookies  bool     `json:"secure_cookies"`
	} `json:"server,omitempty"`

	Avatar struct {
		Bucket          string `json:"bucket"`
		Region          string `json:"region"`
		AccessKeyID     string `json:"access_key_id"`
		SecretKey       string `json:"secret_key"`
		Endpoint        string `json:"endpoint"`
		BaseURL         string `json:"base_url"`
		MirrorQueueSize int    `json:"mirror_queue_size"`
	} `json:"avatar,omitempty"`
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
		App: App{
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			BcryptCost:       jsonCfg.App.BcryptCost,
			DefaultAvatarURL: jsonCfg.App.DefaultAvatarURL,
			Version:          jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			ClientOrigin:   jsonCfg.Server.ClientOrigin,
			SecureCookies:  jsonCfg.Server.SecureCookies,
		},
		Avatar: Avatar{
			Bucket:          jsonCfg.Avatar.Bucket,
			Region:          jsonCfg.Avatar.Region,
			AccessKeyID:     jsonCfg.Avatar.AccessKeyID,
			SecretKey:       jsonCfg.Avatar.SecretKey,
			Endpoint:        jsonCfg.Avatar.Endpoint,
			BaseURL:         jsonCfg.Avatar.BaseURL,
			MirrorQueueSize: jsonCfg.Avatar.MirrorQueueSize,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "168h", "30s".
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

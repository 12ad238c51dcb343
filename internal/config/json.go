package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version      string `env:"VERSION" json:"version"`
		PullPageSize int    `env:"PULL_PAGE_SIZE" json:"pull_page_size"`
	} `envPrefix:"APP_" json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `env:"ADDRESS" json:"http_address"`
		RequestTimeout Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`
	} `envPrefix:"ADAPTER_" json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `env:"DATABASE_URI" json:"dsn"`
		} `envPrefix:"DB_" json:"db,omitempty"`
	} `envPrefix:"STORAGE_" json:"storage,omitempty"`

	Workers struct {
		SyncInterval  Duration `env:"SYNC_INTERVAL" json:"sync_interval"`
		ProbeInterval Duration `env:"PROBE_INTERVAL" json:"probe_interval"`
	} `envPrefix:"WORKERS_" json:"workers,omitempty"`
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
			Version:      jsonCfg.App.Version,
			PullPageSize: jsonCfg.App.PullPageSize,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Workers: Workers{
			SyncInterval:  time.Duration(jsonCfg.Workers.SyncInterval),
			ProbeInterval: time.Duration(jsonCfg.Workers.ProbeInterval),
		},
		JSONFilePath: "",
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

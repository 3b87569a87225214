package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration file shape.
type Config struct {
	Version string  `yaml:"version" json:"version"`
	Server  Server  `yaml:"server" json:"server"`
	Balance Balance `yaml:"balance" json:"balance"`
}

type Server struct {
	Addr    string `yaml:"addr" json:"addr"`
	DataDir string `yaml:"data_dir" json:"data_dir"`
}

// Load reads a YAML config file. Missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Version: "1",
		Server:  Server{Addr: ":42069", DataDir: "data"},
		Balance: Default(),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":42069"
	}
	if cfg.Server.DataDir == "" {
		cfg.Server.DataDir = "data"
	}
	return cfg, nil
}

package config

import (
	_ "embed"
)

//go:embed defaults/tictactoe.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It matches the embedded
// defaults/tictactoe.yaml and is used if that file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			Mode:            "cpu",
			Difficulty:      "medium",
			Symbol:          "X",
			ComputerDelayMs: 500,
		},
		Server: ServerConfig{
			SSHAddress:         ":23235",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

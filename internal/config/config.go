// Package config provides YAML-based configuration loading for the
// tic-tac-toe game and its SSH server.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
)

// Config is the complete application configuration.
type Config struct {
	Game   GameConfig   `yaml:"game"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// GameConfig holds the settings a new game starts with.
type GameConfig struct {
	Mode            string `yaml:"mode" env:"TICTACTOE_MODE"`             // "pvp" or "cpu"
	Difficulty      string `yaml:"difficulty" env:"TICTACTOE_DIFFICULTY"` // "easy", "medium", "hard"
	Symbol          string `yaml:"symbol" env:"TICTACTOE_SYMBOL"`         // human's mark vs the computer
	ComputerDelayMs int    `yaml:"computer_delay_ms" env:"TICTACTOE_DELAY_MS"`
}

// ServerConfig holds settings for `tictactoe serve`.
type ServerConfig struct {
	SSHAddress         string `yaml:"ssh_address" env:"TICTACTOE_SSH_ADDR"`
	HostKeyPath        string `yaml:"host_key_path" env:"TICTACTOE_HOST_KEY"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes" env:"TICTACTOE_IDLE_TIMEOUT"`
	HTTPAddress        string `yaml:"http_address" env:"TICTACTOE_HTTP_ADDR"` // empty disables the stats endpoint
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" env:"TICTACTOE_LOG_LEVEL"`
	File  string `yaml:"file" env:"TICTACTOE_LOG_FILE"`
}

// ComputerDelay returns the computer delay as a duration.
func (g GameConfig) ComputerDelay() time.Duration {
	return time.Duration(g.ComputerDelayMs) * time.Millisecond
}

// IdleTimeout returns the SSH idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// ControllerOptions converts the game settings into engine options.
// Call Validate first; invalid values fall back to the engine defaults.
func (g GameConfig) ControllerOptions() tictactoe.Options {
	opts := tictactoe.Options{
		Human: tictactoe.X,
		Delay: g.ComputerDelay(),
	}
	if mode, err := tictactoe.ParseMode(g.Mode); err == nil {
		opts.Mode = mode
	}
	if tier, err := tictactoe.ParseDifficulty(g.Difficulty); err == nil {
		opts.Difficulty = tier
	}
	if mark, err := tictactoe.ParseMark(g.Symbol); err == nil {
		opts.Human = mark
	}
	return opts
}

// Validate checks that every setting has a known value.
func (c Config) Validate() error {
	if _, err := tictactoe.ParseMode(c.Game.Mode); err != nil {
		return fmt.Errorf("config: game.mode: %w", err)
	}
	if _, err := tictactoe.ParseDifficulty(c.Game.Difficulty); err != nil {
		return fmt.Errorf("config: game.difficulty: %w", err)
	}
	if _, err := tictactoe.ParseMark(c.Game.Symbol); err != nil {
		return fmt.Errorf("config: game.symbol: %w", err)
	}
	if c.Game.ComputerDelayMs < 0 {
		return fmt.Errorf("config: game.computer_delay_ms must not be negative, got %d", c.Game.ComputerDelayMs)
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: server.idle_timeout_minutes must not be negative, got %d", c.Server.IdleTimeoutMinutes)
	}
	return nil
}

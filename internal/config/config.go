package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModePlay  = "play"
	ModeArena = "arena"
)

type Config struct {
	LogLevel    string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode        string  `yaml:"mode" env:"MODE" env-default:"play"`
	FirstPlayer string  `yaml:"first-player" env:"FIRST_PLAYER" env-default:"O"`
	Players     Players `yaml:"players"`
	Render      Render  `yaml:"render"`
	Arena       Arena   `yaml:"arena"`
	Redis       Redis   `yaml:"redis"`
}

type Players struct {
	X Seat `yaml:"x" env-prefix:"PLAYER_X_"`
	O Seat `yaml:"o" env-prefix:"PLAYER_O_"`
}

// Seat - who controls one side of the board.
type Seat struct {
	Kind  string `yaml:"kind" env:"KIND" env-default:"human"`
	Depth int    `yaml:"depth" env:"DEPTH" env-default:"6"`
}

type Render struct {
	ClearScreen bool `yaml:"clear-screen" env:"RENDER_CLEAR_SCREEN" env-default:"true"`
}

type Arena struct {
	Games        int   `yaml:"games" env:"ARENA_GAMES" env-default:"20"`
	Workers      int   `yaml:"workers" env:"ARENA_WORKERS" env-default:"4"`
	DepthX       int   `yaml:"depth-x" env:"ARENA_DEPTH_X" env-default:"4"`
	DepthO       int   `yaml:"depth-o" env:"ARENA_DEPTH_O" env-default:"6"`
	OpeningPlies int   `yaml:"opening-plies" env:"ARENA_OPENING_PLIES" env-default:"2"`
	Seed         int64 `yaml:"seed" env:"ARENA_SEED" env-default:"1"`
	Reset        bool  `yaml:"reset" env:"ARENA_RESET" env-default:"false"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

package config

import "github.com/rs/zerolog"

func zerologLevel(name string) (zerolog.Level, error) {
	return zerolog.ParseLevel(name)
}

// Level returns the parsed log level; Validate guarantees it parses.
func (c Config) Level() zerolog.Level {
	lvl, err := zerologLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}

	return lvl
}

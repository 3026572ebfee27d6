// Package config holds the runtime settings for crossfill. Settings come
// from defaults, an optional config file, and CROSSFILL_-prefixed
// environment variables, in increasing priority; the file paths themselves
// come from the command line.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	StructurePath string
	WordsPath     string
	OutputPath    string
	Seed          uint64
	Debug         bool
}

// Load resolves settings via viper and then applies the positional
// command-line arguments: structure file, words file, and an optional
// output image path.
func (c *Config) Load(args []string) error {
	v := viper.New()
	v.SetEnvPrefix("crossfill")
	v.AutomaticEnv()

	v.SetDefault("seed", uint64(0))
	v.SetDefault("debug", false)

	v.SetConfigName("crossfill")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// a config file is optional
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	c.Seed = v.GetUint64("seed")
	c.Debug = v.GetBool("debug")

	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("usage: crossfill structure_file words_file [output.png]")
	}
	c.StructurePath = args[0]
	c.WordsPath = args[1]
	if len(args) == 3 {
		c.OutputPath = args[2]
	}
	return nil
}

package main

import (
	"blackjack/internal/config"
	"flag"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
	"io"
	"os"
)

var format = flag.String("format", "yaml", "output format (yaml or toml)")

func main() {
	flag.Parse()

	if err := encode(os.Stdout, *format, config.DefaultConfig()); err != nil {
		panic(err)
	}
}

func encode(w io.Writer, format string, cfg config.Config) error {
	if format == "toml" {
		return toml.NewEncoder(w).Encode(cfg)
	}

	return yaml.NewEncoder(w).Encode(cfg)
}

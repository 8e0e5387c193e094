package config

import (
	_ "embed"
	"fmt"

	"github.com/dshills/actionmap/internal/logging"
)

// DefaultPath is the source name reported for the built-in bindings.
const DefaultPath = "<default>"

//go:embed default.toml
var defaultTOML []byte

// Default returns the built-in bindings.
func Default() (*Bindings, error) {
	f, err := Parse(FormatTOML, DefaultPath, defaultTOML)
	if err != nil {
		return nil, err
	}
	b, err := f.Build(logging.Default().WithComponent("config"))
	if err != nil {
		return nil, fmt.Errorf("building default bindings: %w", err)
	}
	return b, nil
}

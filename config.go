package troute

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/rohanthewiz/serr"
)

// ServerOptions configures a Server at construction time.
type ServerOptions struct {
	// Address is the listen address, e.g. ":8080".
	Address string `toml:"address"`

	// Verbose raises the log level to debug.
	Verbose bool `toml:"verbose"`

	// FaviconPath points to the icon served for /favicon.ico.
	// When empty, the FAVICO_PATH environment variable is consulted.
	FaviconPath string `toml:"favicon_path"`
}

// LoadOptions reads ServerOptions from a TOML file.
func LoadOptions(path string) (opts ServerOptions, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, serr.Wrap(err, "unable to read server options file")
	}

	if err = toml.Unmarshal(data, &opts); err != nil {
		return opts, serr.Wrap(err, "unable to parse server options file")
	}

	return opts, nil
}

package app

import (
	"flag"

	"panel-sim/internal/assets"
)

// Config represents the command-line parameters for the simulator.
type Config struct {
	Background string
	LCDFrame   string
	TPS        int
	Verbose    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Background: assets.DefaultBackgroundPath, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Background, "bg", c.Background, "background image of the device chassis")
	fs.StringVar(&c.LCDFrame, "lcd-frame", c.LCDFrame, "optional raw 240x320 RGB565 dump shown on the LCD")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second cap")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log button state changes")
}

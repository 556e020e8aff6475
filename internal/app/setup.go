package app

import (
	"image"
	"log"

	"panel-sim/internal/assets"
	"panel-sim/internal/panel"
	"panel-sim/internal/render"
)

// NewSimulator builds the simulator for the default layout, wiring change
// logging when cfg asks for it.
func NewSimulator(cfg *Config) *panel.Simulator {
	sim := panel.New(panel.DefaultLayout())
	if cfg.Verbose {
		sim.Logf = log.Printf
	}
	return sim
}

// LoadScene loads the static assets. A background that cannot be loaded is
// an error; the caller must not start the loop without one.
func LoadScene(cfg *Config) (render.Scene, error) {
	bg, err := assets.LoadBackground(cfg.Background, panel.WindowSize)
	if err != nil {
		return render.Scene{}, err
	}

	var lcd image.Image
	if cfg.LCDFrame != "" {
		frame, err := assets.LoadRGB565(cfg.LCDFrame, panel.LCDSize)
		if err != nil {
			return render.Scene{}, err
		}
		lcd = frame
	} else {
		lcd = assets.NewLCDPlaceholder(panel.LCDSize, assets.BoldFace(assets.BannerSize))
	}

	return render.Scene{
		Size:       panel.WindowSize,
		Background: bg,
		LCD:        lcd,
		LCDOrigin:  panel.LCDOrigin,
		LabelFace:  assets.BoldFace(assets.LabelSize),
		Palette:    render.DefaultPalette(),
	}, nil
}

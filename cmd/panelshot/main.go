// Command panelshot replays a scripted input sequence through the panel
// simulator without a window and writes the last frame to a PNG file.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"panel-sim/internal/app"
	"panel-sim/internal/core"
	"panel-sim/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	script := flag.String("script", "-", "event script to replay ('-' for stdin)")
	out := flag.String("out", "panel.png", "PNG file receiving the last frame")
	flag.Parse()

	var r io.Reader = os.Stdin
	if *script != "-" {
		f, err := os.Open(*script)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		r = f
	}
	src, err := app.ParseScript(r)
	if err != nil {
		log.Fatal(err)
	}

	scene, err := app.LoadScene(cfg)
	if err != nil {
		log.Fatal(err)
	}

	sim := app.NewSimulator(cfg)
	sink := &app.SnapshotSink{}
	loop := &app.Loop{
		Sim:        sim,
		Compositor: render.NewCompositor(scene),
		Source:     src,
		Sink:       sink,
		Limiter:    core.NewFrameLimiter(cfg.TPS),
	}
	if err := loop.Run(); err != nil {
		log.Fatal(err)
	}
	if err := sink.WritePNG(*out); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d frames, button mask %#04x, wrote %s\n", loop.Frames(), sim.Mask(), *out)
}

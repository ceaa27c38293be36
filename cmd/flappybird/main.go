package main

import (
	"flag"

	flappybird "github.com/wieslawsoltes/FlappyBird"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	app := flappybird.NewAppBuilder().
		UseStates(flappybird.StateReady, flappybird.StateQuit).
		UseModule(
			flappybird.LoggingModule{Debug: *debug},
			flappybird.WindowModule{Width: 480, Height: 640, Title: "Flappy Bird"},
			flappybird.InputModule{},
			flappybird.TimeModule{},
			flappybird.AudioModule{},
			flappybird.ScoreModule{},
			flappybird.RenderModule{},
			flappybird.GameModule{},
		).
		Build()

	app.Run()
}

// Command gobble is the desktop game: click to steer, eat what is smaller,
// avoid what is bigger.
package main

import (
	"flag"
	"log"

	"github.com/rhpo/gobble"
	"github.com/rhpo/gobble/arcade"
	"github.com/rhpo/gobble/config"
)

func main() {
	envFile := flag.String("env", ".env", "optional .env file with GOBBLE_* settings")
	seed := flag.Int64("seed", 0, "random seed (0 keeps the configured or time based seed)")
	width := flag.Int("width", 800, "window width")
	height := flag.Int("height", 600, "window height")
	flag.Parse()

	settings, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	world, err := gobble.NewWorld(&gobble.WorldProps{
		Width:  *width,
		Height: *height,
		Game:   settings.Game,
		Seed:   settings.Seed,
		Mute:   settings.Mute,
	})
	if err != nil {
		log.Fatal(err)
	}
	world.SetVolume(settings.Volume)

	world.On(gobble.EventGameOver, func(data any) {
		res := data.(arcade.Result)
		log.Printf("round %d over: score %d after %v", world.Machine.Rounds(), res.Score, res.Elapsed)
	})

	if err := gobble.NewGame(world).Run(); err != nil {
		log.Fatal(err)
	}
}

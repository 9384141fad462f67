// Command gobble-term plays gobble in a terminal with the mouse.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/rhpo/gobble/config"
	"github.com/rhpo/gobble/terminal"
)

func main() {
	envFile := flag.String("env", ".env", "optional .env file with GOBBLE_* settings")
	seed := flag.Int64("seed", 0, "random seed (0 keeps the configured or time based seed)")
	logFile := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	settings, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	var sounds *terminal.SoundBoard
	if !settings.Mute {
		sounds = terminal.NewSoundBoard(settings.Volume)
		if err := sounds.Init(); err != nil {
			// Non-fatal, the game runs without sound.
			log.Printf("audio initialization failed: %v", err)
		}
		defer sounds.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	// The screen owns the terminal while the game runs.
	if *logFile == "" {
		log.SetOutput(io.Discard)
	}

	game, err := terminal.New(screen, terminal.Options{
		Game:   settings.Game,
		Seed:   settings.Seed,
		Sounds: sounds,
	})
	if err != nil {
		screen.Fini()
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	err = game.Run()
	if *logFile == "" {
		log.SetOutput(os.Stderr)
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("bye after %d rounds, last score %d", game.Machine().Rounds(), game.Machine().Last().Score)
}

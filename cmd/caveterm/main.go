package main

import (
	"flag"
	"io"
	"log"
	"os"

	"cave-golf/internal/app"
	"cave-golf/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	mute := flag.Bool("mute", false, "disable the level-ready chime")
	logPath := flag.String("log", "", "write generation progress to this file")
	flag.Parse()

	// the terminal is busy drawing, so logs go to a file or nowhere
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
		cfg.Level.Logger = log.Default()
	}

	session, err := app.NewSession(cfg.Level)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("generate: %v", err)
	}

	var sp *term.Speaker
	if !*mute {
		sp, err = term.OpenSpeaker()
		if err != nil {
			log.Printf("audio disabled: %v", err)
		}
		defer sp.Close()
	}

	preview, err := term.NewPreview(session, sp, cfg.TPS)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("terminal: %v", err)
	}
	preview.Run()
}

package main

import (
	"flag"
	"log"
	"net/http"

	"snake-arena/arena"
	"snake-arena/server"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	seed := flag.Int64("seed", 0, "match RNG seed (0 = seed from clock)")
	flag.Parse()

	cfg := arena.DefaultConfig()
	cfg.Seed = *seed

	hub := server.NewHub(cfg)
	http.HandleFunc("/ws", hub.HandleWS)

	go hub.Run()

	log.Printf("arena server listening on %s (%dx%d grid, %v match)",
		*addr, cfg.GridWidth, cfg.GridHeight, cfg.MatchDuration)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

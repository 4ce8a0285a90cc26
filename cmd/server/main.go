package main

import (
	"log"
	"net/http"

	"translata/internal/config"
	"translata/internal/db"
	"translata/internal/server"
	"translata/internal/translate"
)

func main() {
	cfg := config.Load()
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	gateway := translate.NewClient(cfg.APIKey, cfg.APIHost)
	srv := server.New(database, gateway, cfg)
	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv); err != nil {
		log.Fatal(err)
	}
}

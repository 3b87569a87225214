package main

import (
	"context"
	"log"
	"net/http"

	"github.com/Kytol/skeleton-crew/internal/config"
	"github.com/Kytol/skeleton-crew/internal/serverapp"
)

func main() {
	cfg, err := config.Load("skeleton_crew.yml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg.Balance = config.FromEnv(cfg.Balance)

	handler, engine, err := serverapp.NewHandler(serverapp.Options{
		Config:  cfg,
		DataDir: cfg.Server.DataDir,
		Logger:  log.Default(),
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	go engine.Run(context.Background())

	log.Printf("listening on http://localhost%s", cfg.Server.Addr)
	log.Fatal(http.ListenAndServe(cfg.Server.Addr, handler))
}

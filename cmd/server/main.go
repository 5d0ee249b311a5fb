package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/keremaydin/basketball-sim/internal/config"
	"github.com/keremaydin/basketball-sim/internal/loader"
	"github.com/keremaydin/basketball-sim/internal/server"
	"github.com/keremaydin/basketball-sim/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	st, err := store.NewStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}
	if err := st.Migrate(); err != nil {
		log.Fatalf("migrating database: %v", err)
	}

	groups, err := loader.LoadGroups(cfg.GroupsFile)
	if err != nil {
		log.Fatalf("loading groups: %v", err)
	}
	exhibitions, err := loader.LoadExhibitions(cfg.ExhibitionsFile)
	if err != nil {
		log.Fatalf("loading exhibitions: %v", err)
	}

	srv := server.New(st, groups, exhibitions)
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.Router()); err != nil {
		log.Fatalf("server: %v", err)
	}
}

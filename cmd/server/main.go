package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/cinos-pos/api/internal/config"
	"github.com/cinos-pos/api/internal/router"
	"github.com/cinos-pos/api/internal/service"
	"github.com/cinos-pos/api/internal/ws"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()

	pinHash, err := bcrypt.GenerateFromPassword([]byte(cfg.StaffPIN), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash staff PIN: %v", err)
	}

	sessions := service.NewSessions()

	hub := ws.NewHub()
	go hub.Run()

	r := router.New(cfg, sessions, hub, pinHash)

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatal(err)
	}
}

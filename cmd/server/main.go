package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/socialpulse/backend/config"
	"github.com/socialpulse/backend/database"
	"github.com/socialpulse/backend/routes"
)

func main() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	router := mux.NewRouter()
	routes.CreatePostRoutes(db, router)
	routes.CreateUserRoutes(db, router)
	routes.CreateInteractionRoutes(db, router)

	addr := ":" + cfg.Server.Port
	log.Info().Str("addr", addr).Msg("server listening")
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

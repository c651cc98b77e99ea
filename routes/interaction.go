package routes

import (
	"database/sql"

	"github.com/gorilla/mux"

	"github.com/socialpulse/backend/handlers"
)

func CreateInteractionRoutes(db *sql.DB, router *mux.Router) *mux.Router {
	// The aggregate route is registered before the {id} routes so that
	// "aggregate" is never captured as an identifier.
	router.HandleFunc("/interactions/aggregate", handlers.GetCityEngagement(db)).Methods("GET")
	router.HandleFunc("/interactions", handlers.CreateInteraction(db)).Methods("POST")
	router.HandleFunc("/interactions", handlers.GetPostEngagement(db)).Methods("GET")
	router.HandleFunc("/interactions/{id}", handlers.UpdateInteraction(db)).Methods("PUT")
	router.HandleFunc("/interactions/{id}", handlers.DeleteInteraction(db)).Methods("DELETE")

	return router
}

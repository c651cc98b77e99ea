package routes

import (
	"database/sql"

	"github.com/gorilla/mux"

	"github.com/socialpulse/backend/handlers"
)

func CreateUserRoutes(db *sql.DB, router *mux.Router) *mux.Router {
	router.HandleFunc("/users", handlers.CreateUser(db)).Methods("POST")
	router.HandleFunc("/users", handlers.GetUsers(db)).Methods("GET")
	router.HandleFunc("/users/{id}", handlers.UpdateUser(db)).Methods("PUT")
	router.HandleFunc("/users/{id}", handlers.DeleteUser(db)).Methods("DELETE")

	return router
}

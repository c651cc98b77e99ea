package routes

import (
	"database/sql"

	"github.com/gorilla/mux"

	"github.com/socialpulse/backend/handlers"
)

func CreatePostRoutes(db *sql.DB, router *mux.Router) *mux.Router {
	router.HandleFunc("/posts", handlers.CreatePost(db)).Methods("POST")
	router.HandleFunc("/posts", handlers.GetPosts(db)).Methods("GET")
	router.HandleFunc("/posts/{id}", handlers.UpdatePost(db)).Methods("PUT")
	router.HandleFunc("/posts/{id}", handlers.DeletePost(db)).Methods("DELETE")

	return router
}

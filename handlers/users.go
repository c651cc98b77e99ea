package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/socialpulse/backend/models"
	"github.com/socialpulse/backend/validation"
)

func CreateUser(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var u models.UserPayload
		if !decodeBody(w, r, &u) {
			return
		}
		if errs := validation.Struct(u); errs != nil {
			writeValidationErrors(w, errs)
			return
		}

		var id int
		err := db.QueryRow(
			`INSERT INTO users (nickname, age, city) VALUES ($1, $2, $3) RETURNING id`,
			u.Nickname, *u.Age, u.City,
		).Scan(&id)
		if err != nil {
			writeServerError(w, "create user", err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"message": "User created successfully",
			"userID":  id,
		})
	}
}

func UpdateUser(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ferr := validation.ID("id", mux.Vars(r)["id"])
		if ferr != nil {
			writeValidationErrors(w, []validation.FieldError{*ferr})
			return
		}

		var u models.UserPayload
		if !decodeBody(w, r, &u) {
			return
		}
		if errs := validation.Struct(u); errs != nil {
			writeValidationErrors(w, errs)
			return
		}

		res, err := db.Exec(
			`UPDATE users SET nickname = $1, age = $2, city = $3 WHERE id = $4`,
			u.Nickname, *u.Age, u.City, id,
		)
		if err != nil {
			writeServerError(w, "update user", err)
			return
		}

		n, err := res.RowsAffected()
		if err != nil {
			writeServerError(w, "update user", err)
			return
		}
		if n == 0 {
			writeNotFound(w, "User not found")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "User updated successfully"})
	}
}

func DeleteUser(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ferr := validation.ID("id", mux.Vars(r)["id"])
		if ferr != nil {
			writeValidationErrors(w, []validation.FieldError{*ferr})
			return
		}

		res, err := db.Exec(`DELETE FROM users WHERE id = $1`, id)
		if err != nil {
			writeServerError(w, "delete user", err)
			return
		}

		n, err := res.RowsAffected()
		if err != nil {
			writeServerError(w, "delete user", err)
			return
		}
		if n == 0 {
			writeNotFound(w, "User not found")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
	}
}

func GetUsers(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := db.Query(`SELECT id, nickname, age, city FROM users`)
		if err != nil {
			writeServerError(w, "list users", err)
			return
		}
		defer rows.Close()

		users := []models.User{}
		for rows.Next() {
			var u models.User
			if err := rows.Scan(&u.ID, &u.Nickname, &u.Age, &u.City); err != nil {
				writeServerError(w, "list users", err)
				return
			}
			users = append(users, u)
		}
		if err := rows.Err(); err != nil {
			writeServerError(w, "list users", err)
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}

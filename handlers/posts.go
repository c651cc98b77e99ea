package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/socialpulse/backend/models"
	"github.com/socialpulse/backend/validation"
)

func CreatePost(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p models.PostPayload
		if !decodeBody(w, r, &p) {
			return
		}
		if errs := validation.Struct(p); errs != nil {
			writeValidationErrors(w, errs)
			return
		}

		var id int
		err := db.QueryRow(
			`INSERT INTO posts (title, insertion_date) VALUES ($1, $2) RETURNING id`,
			p.Title, p.InsertionDate,
		).Scan(&id)
		if err != nil {
			writeServerError(w, "create post", err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"message": "Post created successfully",
			"postId":  id,
		})
	}
}

func UpdatePost(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ferr := validation.ID("id", mux.Vars(r)["id"])
		if ferr != nil {
			writeValidationErrors(w, []validation.FieldError{*ferr})
			return
		}

		var p models.PostPayload
		if !decodeBody(w, r, &p) {
			return
		}
		if errs := validation.Struct(p); errs != nil {
			writeValidationErrors(w, errs)
			return
		}

		res, err := db.Exec(
			`UPDATE posts SET title = $1, insertion_date = $2 WHERE id = $3`,
			p.Title, p.InsertionDate, id,
		)
		if err != nil {
			writeServerError(w, "update post", err)
			return
		}

		// Zero affected rows means the id does not exist: the statement
		// itself succeeded, so this is a 404, not a 500.
		n, err := res.RowsAffected()
		if err != nil {
			writeServerError(w, "update post", err)
			return
		}
		if n == 0 {
			writeNotFound(w, "Post not found")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Post updated successfully"})
	}
}

func DeletePost(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ferr := validation.ID("id", mux.Vars(r)["id"])
		if ferr != nil {
			writeValidationErrors(w, []validation.FieldError{*ferr})
			return
		}

		res, err := db.Exec(`DELETE FROM posts WHERE id = $1`, id)
		if err != nil {
			writeServerError(w, "delete post", err)
			return
		}

		n, err := res.RowsAffected()
		if err != nil {
			writeServerError(w, "delete post", err)
			return
		}
		if n == 0 {
			writeNotFound(w, "Post not found")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Post deleted successfully"})
	}
}

// GetPosts lists posts, optionally restricted to an exact insertion date
// via the insertion_date query parameter. No ordering is imposed.
func GetPosts(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := models.PostFilter{InsertionDate: r.URL.Query().Get("insertion_date")}
		if errs := validation.Struct(filter); errs != nil {
			writeValidationErrors(w, errs)
			return
		}

		query := `SELECT id, title, insertion_date FROM posts`
		args := []interface{}{}
		if filter.InsertionDate != "" {
			query += ` WHERE insertion_date = $1`
			args = append(args, filter.InsertionDate)
		}

		rows, err := db.Query(query, args...)
		if err != nil {
			writeServerError(w, "list posts", err)
			return
		}
		defer rows.Close()

		posts := []models.Post{}
		for rows.Next() {
			var p models.Post
			if err := rows.Scan(&p.ID, &p.Title, &p.InsertionDate); err != nil {
				writeServerError(w, "list posts", err)
				return
			}
			posts = append(posts, p)
		}
		if err := rows.Err(); err != nil {
			writeServerError(w, "list posts", err)
			return
		}

		writeJSON(w, http.StatusOK, posts)
	}
}

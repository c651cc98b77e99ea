package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/socialpulse/backend/models"
	"github.com/socialpulse/backend/validation"
)

func CreateInteraction(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.InteractionPayload
		if !decodeBody(w, r, &in) {
			return
		}
		if errs := validation.Struct(in); errs != nil {
			writeValidationErrors(w, errs)
			return
		}

		var id int
		err := db.QueryRow(
			`INSERT INTO interactions (post_id, user_id, interaction_type, interaction_time)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			*in.PostID, *in.UserID, in.InteractionType, in.InteractionTime,
		).Scan(&id)
		if err != nil {
			writeServerError(w, "create interaction", err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"message":       "Interaction created successfully",
			"interactionId": id,
		})
	}
}

// UpdateInteraction changes type and time only; the referenced post and
// user are fixed at creation.
func UpdateInteraction(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ferr := validation.ID("id", mux.Vars(r)["id"])
		if ferr != nil {
			writeValidationErrors(w, []validation.FieldError{*ferr})
			return
		}

		var in models.InteractionUpdate
		if !decodeBody(w, r, &in) {
			return
		}
		if errs := validation.Struct(in); errs != nil {
			writeValidationErrors(w, errs)
			return
		}

		res, err := db.Exec(
			`UPDATE interactions SET interaction_type = $1, interaction_time = $2 WHERE id = $3`,
			in.InteractionType, in.InteractionTime, id,
		)
		if err != nil {
			writeServerError(w, "update interaction", err)
			return
		}

		n, err := res.RowsAffected()
		if err != nil {
			writeServerError(w, "update interaction", err)
			return
		}
		if n == 0 {
			writeNotFound(w, "Interaction not found")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Interaction updated successfully"})
	}
}

func DeleteInteraction(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ferr := validation.ID("id", mux.Vars(r)["id"])
		if ferr != nil {
			writeValidationErrors(w, []validation.FieldError{*ferr})
			return
		}

		res, err := db.Exec(`DELETE FROM interactions WHERE id = $1`, id)
		if err != nil {
			writeServerError(w, "delete interaction", err)
			return
		}

		n, err := res.RowsAffected()
		if err != nil {
			writeServerError(w, "delete interaction", err)
			return
		}
		if n == 0 {
			writeNotFound(w, "Interaction not found")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Interaction deleted successfully"})
	}
}

// GetPostEngagement tallies likes and comments per post. The left join
// keeps posts with no interactions in the result at zero counts, and the
// group by guarantees one row per post.
func GetPostEngagement(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := db.Query(`
			SELECT p.id, p.title, p.insertion_date,
			       COUNT(*) FILTER (WHERE i.interaction_type = 'like')    AS like_count,
			       COUNT(*) FILTER (WHERE i.interaction_type = 'comment') AS comment_count
			FROM posts p
			LEFT JOIN interactions i ON i.post_id = p.id
			GROUP BY p.id, p.title, p.insertion_date`)
		if err != nil {
			writeServerError(w, "post engagement", err)
			return
		}
		defer rows.Close()

		result := []models.PostEngagement{}
		for rows.Next() {
			var e models.PostEngagement
			if err := rows.Scan(&e.ID, &e.Title, &e.InsertionDate, &e.LikeCount, &e.CommentCount); err != nil {
				writeServerError(w, "post engagement", err)
				return
			}
			result = append(result, e)
		}
		if err := rows.Err(); err != nil {
			writeServerError(w, "post engagement", err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// GetCityEngagement counts interactions per post for a given city and
// calendar day. Inner joins here: posts with no matching interaction are
// absent from the result.
func GetCityEngagement(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := models.AggregateQuery{
			City:            r.URL.Query().Get("city"),
			InteractionDate: r.URL.Query().Get("interaction_date"),
		}
		if errs := validation.Struct(q); errs != nil {
			writeValidationErrors(w, errs)
			return
		}

		rows, err := db.Query(`
			SELECT p.id AS post_id, u.city,
			       i.interaction_time::date AS interaction_date,
			       COUNT(*) AS total_interactions
			FROM interactions i
			JOIN posts p ON i.post_id = p.id
			JOIN users u ON i.user_id = u.id
			WHERE u.city = $1 AND i.interaction_time::date = $2
			GROUP BY p.id, u.city, i.interaction_time::date`,
			q.City, q.InteractionDate)
		if err != nil {
			writeServerError(w, "city engagement", err)
			return
		}
		defer rows.Close()

		result := []models.CityEngagement{}
		for rows.Next() {
			var e models.CityEngagement
			if err := rows.Scan(&e.PostID, &e.City, &e.InteractionDate, &e.TotalInteractions); err != nil {
				writeServerError(w, "city engagement", err)
				return
			}
			result = append(result, e)
		}
		if err := rows.Err(); err != nil {
			writeServerError(w, "city engagement", err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

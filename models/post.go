package models

type Post struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	InsertionDate Date   `json:"insertion_date"`
}

// PostPayload is the request body for creating or updating a post. The
// identifier is never part of the body; it is server-assigned on create
// and taken from the path on update.
type PostPayload struct {
	Title         string `json:"title" validate:"required"`
	InsertionDate string `json:"insertion_date" validate:"required,isodate"`
}

// PostFilter holds the optional query parameters of the post listing.
type PostFilter struct {
	InsertionDate string `json:"insertion_date" validate:"omitempty,isodate"`
}

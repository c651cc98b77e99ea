package models

// PostEngagement is one row of the per-post interaction tally. Posts with
// no interactions still appear, with both counts at zero.
type PostEngagement struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	InsertionDate Date   `json:"insertion_date"`
	LikeCount     int    `json:"like_count"`
	CommentCount  int    `json:"comment_count"`
}

// CityEngagement is one row of the city/date aggregate: a post that
// received at least one interaction from a user in the given city on the
// given day, with the count of those interactions.
type CityEngagement struct {
	PostID            int    `json:"post_id"`
	City              string `json:"city"`
	InteractionDate   Date   `json:"interaction_date"`
	TotalInteractions int    `json:"total_interactions"`
}

// AggregateQuery holds the required query parameters of the city/date
// aggregate endpoint.
type AggregateQuery struct {
	City            string `json:"city" validate:"required"`
	InteractionDate string `json:"interaction_date" validate:"required,isodate"`
}

package models

type Interaction struct {
	ID              int      `json:"id"`
	PostID          int      `json:"post_id"`
	UserID          int      `json:"user_id"`
	InteractionType string   `json:"interaction_type"`
	InteractionTime DateTime `json:"interaction_time"`
}

// InteractionPayload is the create body. Referenced post and user IDs are
// validated as integers only; their existence is not checked here.
type InteractionPayload struct {
	PostID          *int   `json:"post_id" validate:"required"`
	UserID          *int   `json:"user_id" validate:"required"`
	InteractionType string `json:"interaction_type" validate:"required,oneof=like comment"`
	InteractionTime string `json:"interaction_time" validate:"required,isodatetime"`
}

// InteractionUpdate is the update body. post_id and user_id are immutable
// once assigned, so only type and time may change.
type InteractionUpdate struct {
	InteractionType string `json:"interaction_type" validate:"required,oneof=like comment"`
	InteractionTime string `json:"interaction_time" validate:"required,isodatetime"`
}

package models

type User struct {
	ID       int    `json:"id"`
	Nickname string `json:"nickname"`
	Age      int    `json:"age"`
	City     string `json:"city"`
}

// UserPayload is the request body for creating or updating a user.
// Age is a pointer so that 0 is accepted while an absent field is not.
type UserPayload struct {
	Nickname string `json:"nickname" validate:"required"`
	Age      *int   `json:"age" validate:"required,gte=0"`
	City     string `json:"city" validate:"required"`
}

package model

import "time"

type Task struct {
	ID int64 `json:"id"`
	Title string `json:"title"`
	Description *string `json:"description"`
	Completed bool `json:"completed"`
	OwnerID int64 `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

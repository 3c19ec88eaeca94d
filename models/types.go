package models

import "time"

// Vote deltas
const (
	DeltaIncrement = 1
	DeltaDecrement = -1
)

// Request types

type CreateListRequest struct {
	Title string `json:"title" validate:"required"`
}

type CreateItemRequest struct {
	Name string `json:"name" validate:"required"`
}

// delta is +1 (vote) or -1 (retract own vote)
type VoteRequest struct {
	Delta int `json:"delta" validate:"oneof=-1 1"`
}

// Response types

type CreateListResponse struct {
	List     List   `json:"list"`
	ShareURL string `json:"share_url"`
}

type RemoveItemResponse struct {
	Success bool `json:"success"`
}

type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}

type ItemContribution struct {
	ItemID string `json:"item_id"`
	Count  int    `json:"count"`
}

type ListContributionsResponse struct {
	ListID        string             `json:"list_id"`
	Contributions []ItemContribution `json:"contributions"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Domain types

type List struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type Item struct {
	ID         string    `json:"id"`
	ListID     string    `json:"list_id"`
	Name       string    `json:"name"`
	TotalCount int       `json:"total_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type ListWithItems struct {
	List
	Items []Item `json:"items"`
}

type Contribution struct {
	ItemID    string    `json:"item_id"`
	SessionID string    `json:"-"` // Never expose in JSON
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

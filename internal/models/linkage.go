package models

import "time"

// Linkage is the funding source a group's loan is linked to.
type Linkage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateLinkageRequest struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type UpdateLinkageRequest struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

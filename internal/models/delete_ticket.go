package models

import "time"

// Delete ticket target types
const (
	TicketTypeSHG       = "shg"
	TicketTypeSHGMember = "shg_member"
)

// Delete ticket statuses
const (
	TicketStatusPending  = "pending"
	TicketStatusApproved = "approved"
	TicketStatusRejected = "rejected"
)

// DeleteTicket is a front-desk request to delete an SHG or a member,
// awaiting owner approval. Approval executes the deletion.
type DeleteTicket struct {
	ID              int        `json:"id"`
	RequestedBy     int        `json:"requestedBy"`
	RequestedByName string     `json:"requestedByName"`
	TicketType      string     `json:"ticketType"`
	EntityID        int        `json:"entityId"`
	Reason          string     `json:"reason,omitempty"`
	Status          string     `json:"status"`
	ApprovedBy      *int       `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type CreateDeleteTicketRequest struct {
	TicketType string `json:"ticketType"`
	EntityID   int    `json:"entityId"`
	Reason     string `json:"reason"`
}

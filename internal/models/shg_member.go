package models

import "time"

// SHG member roles
const (
	MemberRolePratini1 = "pratini1"
	MemberRolePratini2 = "pratini2"
	MemberRoleMember   = "member"
)

type SHGMember struct {
	ID                  int       `json:"id"`
	SHGID               int       `json:"shgId"`
	Name                string    `json:"name"`
	PhoneNumber         string    `json:"phoneNumber"`
	Role                string    `json:"role"`
	AadharCardFront     string    `json:"aadharCardFront"` // S3 URL
	AadharCardBack      string    `json:"aadharCardBack"`
	PanCard             string    `json:"panCard"`
	VoterIDCard         string    `json:"voterIdCard"`
	HomeRentalAgreement string    `json:"homeRentalAgreement"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

type CreateSHGMemberRequest struct {
	SHGID               int    `json:"shgId"`
	Name                string `json:"name"`
	PhoneNumber         string `json:"phoneNumber"`
	Role                string `json:"role"`
	AadharCardFront     string `json:"aadharCardFront"`
	AadharCardBack      string `json:"aadharCardBack"`
	PanCard             string `json:"panCard"`
	VoterIDCard         string `json:"voterIdCard"`
	HomeRentalAgreement string `json:"homeRentalAgreement"`
}

type UpdateSHGMemberRequest struct {
	Name                *string `json:"name"`
	PhoneNumber         *string `json:"phoneNumber"`
	Role                *string `json:"role"`
	AadharCardFront     *string `json:"aadharCardFront"`
	AadharCardBack      *string `json:"aadharCardBack"`
	PanCard             *string `json:"panCard"`
	VoterIDCard         *string `json:"voterIdCard"`
	HomeRentalAgreement *string `json:"homeRentalAgreement"`
}

// ValidMemberRole reports whether role is a known member role.
func ValidMemberRole(role string) bool {
	return role == MemberRolePratini1 || role == MemberRolePratini2 || role == MemberRoleMember
}

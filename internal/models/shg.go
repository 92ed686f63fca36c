package models

import "time"

// SHG is a Self-Help Group under a sanctioned loan. The group number is
// globally unique in the format NAV{year}{4-digit sequence}; the sequence
// restarts every calendar year.
type SHG struct {
	ID                     int       `json:"id"`
	SHGNumber              string    `json:"shgNumber"`
	SHGName                string    `json:"shgName"`
	SHGAddress             string    `json:"shgAddress"`
	SavingAccountNumber    string    `json:"savingAccountNumber"`
	LoanAccountNumber      string    `json:"loanAccountNumber"`
	LoanSanctionDate       time.Time `json:"loanSanctionDate"`
	RepaymentDate          time.Time `json:"repaymentDate"`
	FieldOfficerID         int       `json:"fieldOfficerId"`
	FieldOfficerName       string    `json:"fieldOfficerName"` // joined first+last name, "" if unresolved
	Branch                 string    `json:"branch"`
	LoanSanctionAmount     float64   `json:"loanSanctionAmount"`
	NumberOfMonths         int       `json:"numberOfMonths"`
	MonthlyRepaymentAmount float64   `json:"monthlyRepaymentAmount"`
	FixedDeposit           float64   `json:"fixedDeposit"`
	LinkageID              int       `json:"linkageId"`
	LinkageName            string    `json:"linkageName"`
	NumberOfMembers        int       `json:"numberOfMembers"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

type CreateSHGRequest struct {
	SHGName                string  `json:"shgName"`
	SHGAddress             string  `json:"shgAddress"`
	SavingAccountNumber    string  `json:"savingAccountNumber"`
	LoanAccountNumber      string  `json:"loanAccountNumber"`
	LoanSanctionDate       string  `json:"loanSanctionDate"` // 2006-01-02
	RepaymentDate          string  `json:"repaymentDate"`    // 2006-01-02
	FieldOfficerID         int     `json:"fieldOfficerId"`
	Branch                 string  `json:"branch"`
	LoanSanctionAmount     float64 `json:"loanSanctionAmount"`
	NumberOfMonths         int     `json:"numberOfMonths"`
	MonthlyRepaymentAmount float64 `json:"monthlyRepaymentAmount"`
	FixedDeposit           float64 `json:"fixedDeposit"`
	LinkageID              int     `json:"linkageId"`
	NumberOfMembers        int     `json:"numberOfMembers"`
}

// UpdateSHGRequest carries a partial update; nil fields are left untouched.
type UpdateSHGRequest struct {
	SHGName                *string  `json:"shgName"`
	SHGAddress             *string  `json:"shgAddress"`
	SavingAccountNumber    *string  `json:"savingAccountNumber"`
	LoanAccountNumber      *string  `json:"loanAccountNumber"`
	LoanSanctionDate       *string  `json:"loanSanctionDate"`
	RepaymentDate          *string  `json:"repaymentDate"`
	FieldOfficerID         *int     `json:"fieldOfficerId"`
	Branch                 *string  `json:"branch"`
	LoanSanctionAmount     *float64 `json:"loanSanctionAmount"`
	NumberOfMonths         *int     `json:"numberOfMonths"`
	MonthlyRepaymentAmount *float64 `json:"monthlyRepaymentAmount"`
	FixedDeposit           *float64 `json:"fixedDeposit"`
	LinkageID              *int     `json:"linkageId"`
	NumberOfMembers        *int     `json:"numberOfMembers"`
}

// PaginatedSHGs is the list response for GET /api/shgs.
type PaginatedSHGs struct {
	SHGs       []*SHG     `json:"shgs"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

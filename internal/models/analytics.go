package models

import "time"

// UpcomingRepayment is one due-date forecast entry for the next-3-days
// dashboard buckets.
type UpcomingRepayment struct {
	SHGID                  int       `json:"shgId"`
	SHGName                string    `json:"shgName"`
	RepaymentDate          time.Time `json:"repaymentDate"`
	MonthlyRepaymentAmount float64   `json:"monthlyRepaymentAmount"`
	DaysUntil              int       `json:"daysUntil"`
	Branch                 string    `json:"branch"`
	FieldOfficerName       string    `json:"fieldOfficerName"`
}

// MismatchedRepayment flags an (SHG, date) pair whose summed repayments
// diverge from the group's expected monthly amount.
type MismatchedRepayment struct {
	SHGID          int       `json:"shgId"`
	SHGName        string    `json:"shgName"`
	ExpectedAmount float64   `json:"expectedAmount"`
	ActualAmount   float64   `json:"actualAmount"`
	RepaymentDate  time.Time `json:"repaymentDate"`
}

type RepaymentsByMethod struct {
	UPI  int `json:"upi"`
	Cash int `json:"cash"`
}

type RepaymentsByType struct {
	Full int `json:"full"`
	Half int `json:"half"`
}

type UpcomingRepaymentBuckets struct {
	Today    []UpcomingRepayment `json:"today"`
	Tomorrow []UpcomingRepayment `json:"tomorrow"`
	In2Days  []UpcomingRepayment `json:"in2Days"`
	In3Days  []UpcomingRepayment `json:"in3Days"`
}

// RepaymentAnalytics is the full report returned by the analytics engine.
// It is recomputed from scratch on every call and never persisted.
type RepaymentAnalytics struct {
	TotalSHGs              int                      `json:"totalSHGs"`
	TotalRepayments        int                      `json:"totalRepayments"`
	TotalAmountCollected   float64                  `json:"totalAmountCollected"`
	AverageRepaymentAmount float64                  `json:"averageRepaymentAmount"`
	RepaymentsByMethod     RepaymentsByMethod       `json:"repaymentsByMethod"`
	RepaymentsByType       RepaymentsByType         `json:"repaymentsByType"`
	UpcomingRepayments     UpcomingRepaymentBuckets `json:"upcomingRepayments"`
	MismatchedRepayments   []MismatchedRepayment    `json:"mismatchedRepayments"`
}

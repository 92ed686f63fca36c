package models

import "time"

// Payment methods
const (
	PaymentMethodUPI  = "upi"
	PaymentMethodCash = "cash"
)

// Payment types
const (
	PaymentTypeFull = "full"
	PaymentTypeHalf = "half"
)

// MonthlyRepayment is one recorded payment event against an SHG for a
// calendar date. Several rows may share the same (shg, date) pair, e.g. a
// half payment followed by the remainder.
type MonthlyRepayment struct {
	ID               int       `json:"id"`
	SHGID            int       `json:"shgId"`
	SHGName          string    `json:"shgName"` // joined at read time, "" if the SHG is gone
	RepaymentDate    time.Time `json:"repaymentDate"`
	Amount           float64   `json:"amount"`
	ReceiptPhoto     string    `json:"receiptPhoto"` // S3 URL
	PaymentMethod    string    `json:"paymentMethod"`
	PaymentType      string    `json:"paymentType"`
	UnpaidMemberName string    `json:"unpaidMemberName,omitempty"`
	RecordedBy       int       `json:"recordedBy"`
	RecordedByName   string    `json:"recordedByName"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`

	// SHGMonthlyAmount is the owning SHG's current contractual monthly
	// amount, joined at read time for mismatch detection. Not serialized.
	SHGMonthlyAmount float64 `json:"-"`
}

type CreateMonthlyRepaymentRequest struct {
	SHGID            int     `json:"shgId"`
	RepaymentDate    string  `json:"repaymentDate"` // 2006-01-02
	Amount           float64 `json:"amount"`
	ReceiptPhoto     string  `json:"receiptPhoto"`
	PaymentMethod    string  `json:"paymentMethod"`
	PaymentType      string  `json:"paymentType"`
	UnpaidMemberName string  `json:"unpaidMemberName"`
}

type UpdateMonthlyRepaymentRequest struct {
	RepaymentDate    *string  `json:"repaymentDate"`
	Amount           *float64 `json:"amount"`
	ReceiptPhoto     *string  `json:"receiptPhoto"`
	PaymentMethod    *string  `json:"paymentMethod"`
	PaymentType      *string  `json:"paymentType"`
	UnpaidMemberName *string  `json:"unpaidMemberName"`
}

// ValidPaymentMethod reports whether m is upi or cash.
func ValidPaymentMethod(m string) bool {
	return m == PaymentMethodUPI || m == PaymentMethodCash
}

// ValidPaymentType reports whether t is full or half.
func ValidPaymentType(t string) bool {
	return t == PaymentTypeFull || t == PaymentTypeHalf
}

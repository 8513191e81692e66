package model

import (
	"strings"
	"time"
)

type CopyStatus string

const (
	CopyAvailable   CopyStatus = "AVAILABLE"
	CopyUnavailable CopyStatus = "UNAVAILABLE"
)

type LoanStatus string

const (
	LoanBorrowed      LoanStatus = "BORROWED"
	LoanReturned      LoanStatus = "RETURNED"
	LoanOverdue       LoanStatus = "OVERDUE"
	LoanNonreturnable LoanStatus = "NONRETURNABLE"
	LoanRejected      LoanStatus = "REJECTED"
)

// Active reports whether the loan still holds the copy.
func (s LoanStatus) Active() bool {
	return s == LoanBorrowed || s == LoanOverdue
}

type RequestType string

const (
	RequestBorrowing RequestType = "BORROWING"
	RequestReturning RequestType = "RETURNING"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestAccepted RequestStatus = "ACCEPTED"
	RequestDenied   RequestStatus = "DENIED"
	RequestCanceled RequestStatus = "CANCELED"
)

type Copy struct {
	ID      int        `json:"-" db:"id"`
	CopyUid string     `json:"copyUid" db:"copy_uid"`
	Title   string     `json:"title" db:"title"`
	Status  CopyStatus `json:"status" db:"status"`
}

type Patron struct {
	ID       int    `json:"-" db:"id"`
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
}

type Loan struct {
	ID         int        `json:"-" db:"id"`
	LoanUid    string     `json:"loanUid" db:"loan_uid"`
	CopyID     int        `json:"-" db:"copy_id"`
	PatronID   int        `json:"-" db:"patron_id"`
	Status     LoanStatus `json:"status" db:"status"`
	LoanedAt   time.Time  `json:"loanedAt" db:"loaned_at"`
	DueDate    time.Time  `json:"dueDate" db:"due_date"`
	ReturnedAt *time.Time `json:"returnedAt,omitempty" db:"returned_at"`
	RequestID  *int       `json:"-" db:"request_id"`
}

type Request struct {
	ID         int           `json:"-" db:"id"`
	RequestUid string        `json:"requestUid" db:"request_uid"`
	Type       RequestType   `json:"type" db:"type"`
	Status     RequestStatus `json:"status" db:"status"`
	CopyID     int           `json:"-" db:"copy_id"`
	PatronID   int           `json:"-" db:"patron_id"`
	LoanID     *int          `json:"-" db:"loan_id"`
	CreatedAt  time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time     `json:"updatedAt" db:"updated_at"`
}

type Subscription struct {
	ID              int    `json:"-" db:"id"`
	SubscriptionUid string `json:"subscriptionUid" db:"subscription_uid"`
	CopyID          int    `json:"-" db:"copy_id"`
	PatronID        int    `json:"-" db:"patron_id"`
	Active          bool   `json:"active" db:"active"`
}

type Fine struct {
	ID          int       `json:"-" db:"id"`
	FineUid     string    `json:"fineUid" db:"fine_uid"`
	LoanID      int       `json:"-" db:"loan_id"`
	PatronID    int       `json:"-" db:"patron_id"`
	Amount      int       `json:"amount" db:"amount"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// View rows carry the public identifiers the joins resolve.

type RequestView struct {
	Request
	CopyUid  string  `json:"copyUid" db:"copy_uid"`
	Username string  `json:"username" db:"username"`
	LoanUid  *string `json:"loanUid,omitempty" db:"loan_uid"`
}

type LoanView struct {
	Loan
	CopyUid  string `json:"copyUid" db:"copy_uid"`
	Title    string `json:"title" db:"title"`
	Username string `json:"username" db:"username"`
}

type SubscriptionView struct {
	Subscription
	CopyUid string `json:"copyUid" db:"copy_uid"`
	Title   string `json:"title" db:"title"`
}

type FineView struct {
	Fine
	LoanUid  string `json:"loanUid" db:"loan_uid"`
	Username string `json:"username" db:"username"`
}

// NotifyTarget is one active subscriber resolved for delivery.
type NotifyTarget struct {
	SubscriptionUid string `db:"subscription_uid"`
	CopyUid         string `db:"copy_uid"`
	Title           string `db:"title"`
	Username        string `db:"username"`
	Email           string `db:"email"`
}

type StatusLog struct {
	ID        int       `json:"-" db:"id"`
	Component string    `json:"component" db:"component"`
	Status    string    `json:"status" db:"status"`
	CheckedAt time.Time `json:"checkedAt" db:"checked_at"`
	Message   string    `json:"message" db:"message"`
}

// Date accepts both date-only and RFC3339 payloads.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

type CreateRequestRequest struct {
	CopyUid string `json:"copyUid" validate:"required,uuid"`
}

type ProcessRequestRequest struct {
	Approve *bool `json:"approve" validate:"required"`
}

type ExtendDueDateRequest struct {
	DueDate Date `json:"dueDate" validate:"required"`
}

type CreateCopyRequest struct {
	Title string `json:"title" validate:"required"`
}

type UpdateFineRequest struct {
	Amount      int    `json:"amount" validate:"required,gt=0"`
	Description string `json:"description"`
}

// CopyAvailableEvent is what the workflow publishes when a copy returns
// to the pool.
type CopyAvailableEvent struct {
	CopyUid string `json:"copyUid"`
}

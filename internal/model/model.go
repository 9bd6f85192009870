package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleMember    Role = "member"
	RoleLibrarian Role = "librarian"
)

type CopyStatus string

const (
	CopyAvailable   CopyStatus = "AVAILABLE"
	CopyBorrowed    CopyStatus = "BORROWED"
	CopyMaintenance CopyStatus = "MAINTENANCE"
	CopyLost        CopyStatus = "LOST"
)

type LoanStatus string

const (
	LoanActive        LoanStatus = "ACTIVE"
	LoanOverdue       LoanStatus = "OVERDUE"
	LoanPendingReturn LoanStatus = "PENDING_RETURN"
	LoanReturned      LoanStatus = "RETURNED"
)

type ReservationStatus string

const (
	ReservationActive         ReservationStatus = "ACTIVE"
	ReservationAwaitingPickup ReservationStatus = "AWAITING_PICKUP"
	ReservationFulfilled      ReservationStatus = "FULFILLED"
	ReservationExpired        ReservationStatus = "EXPIRED"
	ReservationCancelled      ReservationStatus = "CANCELLED"
)

const (
	LoanPeriod   = 14 * 24 * time.Hour
	PickupWindow = 48 * time.Hour
	// BorrowLimit caps concurrent ACTIVE loans per user.
	BorrowLimit = 3
)

type Book struct {
	ID         int    `json:"-" db:"id"`
	BookUid    string `json:"bookUid" db:"book_uid"`
	Title      string `json:"title" db:"title"`
	Author     string `json:"author" db:"author"`
	CategoryID *int   `json:"categoryId,omitempty" db:"category_id"`
	// AvailableCount is derived from copy-level status, never stored.
	AvailableCount int `json:"availableCount" db:"available_count"`
}

// NewBarcode mints a copy barcode. The format is shared by every entry
// point that registers copies.
func NewBarcode() string {
	return "BC-" + strings.ToUpper(uuid.New().String()[:8])
}

type BookCopy struct {
	ID      int        `json:"-" db:"id"`
	Barcode string     `json:"barcode" db:"barcode"`
	BookID  int        `json:"-" db:"book_id"`
	Status  CopyStatus `json:"status" db:"status"`
}

type Loan struct {
	ID               int        `json:"-" db:"id"`
	LoanUid          string     `json:"loanUid" db:"loan_uid"`
	Username         string     `json:"username" db:"username"`
	CopyID           int        `json:"-" db:"copy_id"`
	Status           LoanStatus `json:"status" db:"status"`
	BorrowedAt       time.Time  `json:"borrowedAt" db:"borrowed_at"`
	DueDate          time.Time  `json:"dueDate" db:"due_date"`
	ReturnedAt       *time.Time `json:"returnedAt,omitempty" db:"returned_at"`
	RenewalRequested bool       `json:"renewalRequested" db:"renewal_requested"`
}

type Reservation struct {
	ID             int               `json:"-" db:"id"`
	ReservationUid string            `json:"reservationUid" db:"reservation_uid"`
	Username       string            `json:"username" db:"username"`
	BookID         int               `json:"-" db:"book_id"`
	Status         ReservationStatus `json:"status" db:"status"`
	AssignedCopyID *int              `json:"-" db:"assigned_copy_id"`
	ReservedAt     time.Time         `json:"reservedAt" db:"reserved_at"`
	ExpiresAt      *time.Time        `json:"expiresAt,omitempty" db:"expires_at"`
}

type Fine struct {
	ID           int        `json:"-" db:"id"`
	FineUid      string     `json:"fineUid" db:"fine_uid"`
	LoanID       *int       `json:"-" db:"loan_id"`
	Username     string     `json:"username" db:"username"`
	Amount       int64      `json:"amount" db:"amount"`
	Reason       string     `json:"reason" db:"reason"`
	FinedForDate time.Time  `json:"finedForDate" db:"fined_for_date"`
	IsPaid       bool       `json:"isPaid" db:"is_paid"`
	PaidAt       *time.Time `json:"paidAt,omitempty" db:"paid_at"`
}

type FineIntervalUnit string

const (
	IntervalDaily   FineIntervalUnit = "DAILY"
	IntervalWeekly  FineIntervalUnit = "WEEKLY"
	IntervalMonthly FineIntervalUnit = "MONTHLY"
	IntervalCustom  FineIntervalUnit = "CUSTOM"
)

// Days resolves the configured unit to an interval length in days.
func (u FineIntervalUnit) Days(customDays int) int {
	switch u {
	case IntervalWeekly:
		return 7
	case IntervalMonthly:
		return 30
	case IntervalCustom:
		if customDays > 0 {
			return customDays
		}
		return 1
	default:
		return 1
	}
}

// FineSettings is the read-only configuration snapshot for one accrual run.
type FineSettings struct {
	Enabled          bool
	FineAmountPerDay int64
	IntervalUnit     FineIntervalUnit
	IntervalDays     int
}

func (s FineSettings) ResolvedIntervalDays() int {
	return s.IntervalUnit.Days(s.IntervalDays)
}

func (s FineSettings) AmountPerInterval() int64 {
	return s.FineAmountPerDay * int64(s.ResolvedIntervalDays())
}

type Availability string

const (
	AvailabilityAny       Availability = ""
	AvailabilityAvailable Availability = "available"
	AvailabilityBorrowed  Availability = "borrowed"
)

// BookFilter is the typed catalog query filter.
type BookFilter struct {
	Search       string
	CategoryID   *int
	Availability Availability
	Page         int
	Size         int
}

type CreateBookRequest struct {
	Title      string `json:"title" validate:"required"`
	Author     string `json:"author" validate:"required"`
	CategoryID *int   `json:"categoryId"`
	Copies     int    `json:"copies" validate:"gte=0,lte=100"`
}

type CreateLoanRequest struct {
	Barcode  string `json:"barcode" validate:"required"`
	Username string `json:"-" validate:"required"`
}

type CreateReservationRequest struct {
	BookUid  string `json:"bookUid" validate:"required,uuid"`
	Username string `json:"-" validate:"required"`
}

type CreateFineRequest struct {
	Username string `json:"username" validate:"required"`
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	Reason   string `json:"reason" validate:"required"`
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type ListBooks struct {
	Paging
	Items []Book `json:"items"`
}

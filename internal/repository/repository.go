package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/hustlib/lending-service/internal/model"
)

type CopyStore interface {
	GetCopyByUid(ctx context.Context, copyUid string) (model.Copy, error)
	// GetCopyForUpdate locks the copy row for the rest of the transaction.
	// The check-then-act sequence on a copy must run under this lock.
	GetCopyForUpdate(ctx context.Context, copyID int) (model.Copy, error)
	SetCopyStatus(ctx context.Context, copyID int, status model.CopyStatus) error
	ListCopies(ctx context.Context) ([]model.Copy, error)
	CreateCopy(ctx context.Context, title string) (model.Copy, error)
	GetPatronByUsername(ctx context.Context, username string) (model.Patron, error)
}

type RequestStore interface {
	GetRequestByUid(ctx context.Context, requestUid string) (model.RequestView, error)
	GetRequestForUpdate(ctx context.Context, requestUid string) (model.Request, error)
	HasPendingRequest(ctx context.Context, copyID, patronID int, typ model.RequestType) (bool, error)
	CreateRequest(ctx context.Context, req model.Request) (model.RequestView, error)
	SetRequestStatus(ctx context.Context, requestID int, status model.RequestStatus, loanID *int) error
	ListRequests(ctx context.Context) ([]model.RequestView, error)
	ListRequestsByPatron(ctx context.Context, patronID int) ([]model.RequestView, error)
}

type LoanStore interface {
	CreateLoan(ctx context.Context, copyID, patronID, requestID int, due time.Time) (model.Loan, error)
	GetLoanByID(ctx context.Context, loanID int) (model.Loan, error)
	GetLoanByUid(ctx context.Context, loanUid string) (model.Loan, error)
	FindActiveLoan(ctx context.Context, copyID, patronID int) (model.Loan, error)
	RecordReturn(ctx context.Context, loanID int) (model.Loan, error)
	ListLoansByPatron(ctx context.Context, patronID int) ([]model.LoanView, error)
	ListLoansByCopy(ctx context.Context, copyID int) ([]model.LoanView, error)
	ListOverdue(ctx context.Context) ([]model.LoanView, error)
	ListBorrowedDue(ctx context.Context, now time.Time) ([]model.Loan, error)
	MarkOverdue(ctx context.Context, loanID int) error
	ExtendDueDate(ctx context.Context, loanID int, due time.Time) (model.Loan, error)
}

type SubscriptionStore interface {
	CreateSubscription(ctx context.Context, copyID, patronID int) (model.Subscription, error)
	DeactivateSubscription(ctx context.Context, subscriptionUid string, patronID int) error
	DeactivateSubscriptionForPatronCopy(ctx context.Context, copyID, patronID int) error
	ListNotifyTargetsByCopy(ctx context.Context, copyID int) ([]model.NotifyTarget, error)
	ListNotifyTargets(ctx context.Context) ([]model.NotifyTarget, error)
	ListSubscriptionsByPatron(ctx context.Context, patronID int) ([]model.SubscriptionView, error)
}

type FineStore interface {
	CreateFine(ctx context.Context, loanID, patronID, amount int, description string) (model.Fine, error)
	ListFines(ctx context.Context) ([]model.FineView, error)
	ListFinesByPatron(ctx context.Context, patronID int) ([]model.FineView, error)
	UpdateFineAmount(ctx context.Context, fineUid string, amount int, description string) (model.Fine, error)
}

// Store is the full set of row operations. Inside WithTx every call runs on
// the same transaction.
type Store interface {
	CopyStore
	RequestStore
	LoanStore
	SubscriptionStore
	FineStore
}

type Repository interface {
	Store
	// WithTx runs fn in one transaction; any error rolls the whole unit back.
	WithTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}

type queryer interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type repository struct {
	store
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		store: store{q: db, log: log.Named("repo")},
		db:    db,
	}, nil
}

func (r *repository) WithTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	if err := fn(ctx, store{q: tx, log: r.log}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.log.Error("tx rollback", zap.Error(rbErr))
		}
		return err
	}
	return errors.Wrap(tx.Commit(), "commit tx")
}

// store holds the SQL; bound either to the pool or to a transaction.
type store struct {
	q   queryer
	log *zap.Logger
}

const (
	copiesTableName        = `copies`
	patronsTableName       = `patrons`
	loansTableName         = `loans`
	requestsTableName      = `requests`
	subscriptionsTableName = `subscriptions`
	finesTableName         = `fines`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

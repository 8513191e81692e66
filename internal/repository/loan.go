package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/hustlib/lending-service/internal/errs"
	"github.com/hustlib/lending-service/internal/model"
)

const loanColumns = `id, loan_uid, copy_id, patron_id, status, loaned_at, due_date, returned_at, request_id`

const loanViewColumns = `l.id, l.loan_uid, l.copy_id, l.patron_id, l.status, l.loaned_at, l.due_date,
	l.returned_at, l.request_id, c.copy_uid, c.title, p.username`

const loanViewFrom = `
	from loans l
	join copies c on c.id = l.copy_id
	join patrons p on p.id = l.patron_id`

func (s store) CreateLoan(ctx context.Context, copyID, patronID, requestID int, due time.Time) (model.Loan, error) {
	q, args, err := qb.Insert(loansTableName).
		Columns("loan_uid", "copy_id", "patron_id", "status", "loaned_at", "due_date", "request_id").
		Values(uuid.New(), copyID, patronID, model.LoanBorrowed, time.Now().UTC(), due, requestID).
		Suffix("returning " + loanColumns).
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	var l model.Loan
	if err := s.q.GetContext(ctx, &l, q, args...); err != nil {
		s.log.Error("CreateLoan", zap.String("q", q), zap.Any("args", args))
		return model.Loan{}, err
	}
	return l, nil
}

func (s store) GetLoanByID(ctx context.Context, loanID int) (model.Loan, error) {
	q := `select ` + loanColumns + ` from loans where id = $1`
	var l model.Loan
	if err := s.q.GetContext(ctx, &l, q, loanID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNotFound
		}
		return model.Loan{}, err
	}
	return l, nil
}

func (s store) GetLoanByUid(ctx context.Context, loanUid string) (model.Loan, error) {
	q := `select ` + loanColumns + ` from loans where loan_uid = $1`
	var l model.Loan
	if err := s.q.GetContext(ctx, &l, q, loanUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNotFound
		}
		return model.Loan{}, err
	}
	return l, nil
}

func (s store) FindActiveLoan(ctx context.Context, copyID, patronID int) (model.Loan, error) {
	q := `select ` + loanColumns + ` from loans
	where copy_id = $1 and patron_id = $2 and status in ('BORROWED', 'OVERDUE')`
	var l model.Loan
	if err := s.q.GetContext(ctx, &l, q, copyID, patronID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNotFound
		}
		return model.Loan{}, err
	}
	return l, nil
}

// RecordReturn closes an active loan; a loan in any other state is an
// invalid-state error, never silently overwritten.
func (s store) RecordReturn(ctx context.Context, loanID int) (model.Loan, error) {
	q := `update loans
	set status = 'RETURNED', returned_at = now()
	where id = $1 and status in ('BORROWED', 'OVERDUE')
	returning ` + loanColumns
	var l model.Loan
	if err := s.q.GetContext(ctx, &l, q, loanID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrInvalidState
		}
		return model.Loan{}, err
	}
	return l, nil
}

func (s store) ListLoansByPatron(ctx context.Context, patronID int) ([]model.LoanView, error) {
	q := `select ` + loanViewColumns + loanViewFrom + `
	where l.patron_id = $1 order by l.loaned_at desc`
	var items []model.LoanView
	if err := s.q.SelectContext(ctx, &items, q, patronID); err != nil {
		return nil, err
	}
	return items, nil
}

func (s store) ListLoansByCopy(ctx context.Context, copyID int) ([]model.LoanView, error) {
	q := `select ` + loanViewColumns + loanViewFrom + `
	where l.copy_id = $1 order by l.loaned_at desc`
	var items []model.LoanView
	if err := s.q.SelectContext(ctx, &items, q, copyID); err != nil {
		return nil, err
	}
	return items, nil
}

func (s store) ListOverdue(ctx context.Context) ([]model.LoanView, error) {
	q := `select ` + loanViewColumns + loanViewFrom + `
	where l.status = 'OVERDUE' order by l.due_date`
	var items []model.LoanView
	if err := s.q.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

func (s store) ListBorrowedDue(ctx context.Context, now time.Time) ([]model.Loan, error) {
	q, args, err := qb.Select("id", "loan_uid", "copy_id", "patron_id", "status",
		"loaned_at", "due_date", "returned_at", "request_id").
		From(loansTableName).
		Where(sq.Eq{"status": model.LoanBorrowed}).
		Where(sq.Lt{"due_date": now}).
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Loan
	if err := s.q.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// MarkOverdue is monotone: only BORROWED flips, re-running is a no-op.
func (s store) MarkOverdue(ctx context.Context, loanID int) error {
	q := `update loans set status = 'OVERDUE' where id = $1 and status = 'BORROWED'`
	_, err := s.q.ExecContext(ctx, q, loanID)
	return err
}

// ExtendDueDate moves the due date strictly forward on an active loan.
func (s store) ExtendDueDate(ctx context.Context, loanID int, due time.Time) (model.Loan, error) {
	q := `update loans set due_date = $2
	where id = $1 and status = 'BORROWED' and due_date < $2
	returning ` + loanColumns
	var l model.Loan
	if err := s.q.GetContext(ctx, &l, q, loanID, due); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrInvalidState
		}
		return model.Loan{}, err
	}
	return l, nil
}

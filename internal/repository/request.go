package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/hustlib/lending-service/internal/errs"
	"github.com/hustlib/lending-service/internal/model"
)

const requestViewColumns = `r.id, r.request_uid, r.type, r.status, r.copy_id, r.patron_id, r.loan_id,
	r.created_at, r.updated_at, c.copy_uid, p.username, l.loan_uid`

const requestViewFrom = `
	from requests r
	join copies c on c.id = r.copy_id
	join patrons p on p.id = r.patron_id
	left join loans l on l.id = r.loan_id`

func (s store) GetRequestByUid(ctx context.Context, requestUid string) (model.RequestView, error) {
	q := `select ` + requestViewColumns + requestViewFrom + ` where r.request_uid = $1`
	var rv model.RequestView
	if err := s.q.GetContext(ctx, &rv, q, requestUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.RequestView{}, errs.ErrNotFound
		}
		return model.RequestView{}, err
	}
	return rv, nil
}

// GetRequestForUpdate locks the request row so two staff decisions on the
// same request serialize; the loser then sees a non-PENDING status.
func (s store) GetRequestForUpdate(ctx context.Context, requestUid string) (model.Request, error) {
	q := `select id, request_uid, type, status, copy_id, patron_id, loan_id, created_at, updated_at
	from requests where request_uid = $1 for update`
	var r model.Request
	if err := s.q.GetContext(ctx, &r, q, requestUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Request{}, errs.ErrNotFound
		}
		return model.Request{}, err
	}
	return r, nil
}

func (s store) HasPendingRequest(ctx context.Context, copyID, patronID int, typ model.RequestType) (bool, error) {
	q := `select count(*) from requests
	where copy_id = $1 and patron_id = $2 and type = $3 and status = 'PENDING'`
	var count int
	if err := s.q.GetContext(ctx, &count, q, copyID, patronID, typ); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s store) CreateRequest(ctx context.Context, req model.Request) (model.RequestView, error) {
	q, args, err := qb.Insert(requestsTableName).
		Columns("request_uid", "type", "status", "copy_id", "patron_id", "loan_id").
		Values(uuid.New(), req.Type, model.RequestPending, req.CopyID, req.PatronID, req.LoanID).
		Suffix("returning request_uid").
		ToSql()
	if err != nil {
		return model.RequestView{}, err
	}
	var requestUid string
	if err := s.q.GetContext(ctx, &requestUid, q, args...); err != nil {
		var pgErr *pgconn.PgError
		// the partial unique index backs up the pending pre-check
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.RequestView{}, errs.ErrConflict
		}
		s.log.Error("CreateRequest", zap.String("q", q), zap.Any("args", args))
		return model.RequestView{}, err
	}
	return s.GetRequestByUid(ctx, requestUid)
}

func (s store) SetRequestStatus(ctx context.Context, requestID int, status model.RequestStatus, loanID *int) error {
	b := qb.Update(requestsTableName).
		Set("status", status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": requestID})
	if loanID != nil {
		b = b.Set("loan_id", *loanID)
	}
	q, args, err := b.ToSql()
	if err != nil {
		return err
	}
	res, err := s.q.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// ListRequests returns pending requests first, oldest first within a bucket,
// so the staff queue surfaces actionable items on top.
func (s store) ListRequests(ctx context.Context) ([]model.RequestView, error) {
	q := `select ` + requestViewColumns + requestViewFrom + `
	order by case when r.status = 'PENDING' then 0 else 1 end, r.created_at`
	var items []model.RequestView
	if err := s.q.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

func (s store) ListRequestsByPatron(ctx context.Context, patronID int) ([]model.RequestView, error) {
	q := `select ` + requestViewColumns + requestViewFrom + `
	where r.patron_id = $1 order by r.created_at desc`
	var items []model.RequestView
	if err := s.q.SelectContext(ctx, &items, q, patronID); err != nil {
		return nil, err
	}
	return items, nil
}

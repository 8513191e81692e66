package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/hustlib/lending-service/internal/errs"
	"github.com/hustlib/lending-service/internal/model"
)

const fineColumns = `id, fine_uid, loan_id, patron_id, amount, description, created_at`

func (s store) CreateFine(ctx context.Context, loanID, patronID, amount int, description string) (model.Fine, error) {
	q, args, err := qb.Insert(finesTableName).
		Columns("fine_uid", "loan_id", "patron_id", "amount", "description").
		Values(uuid.New(), loanID, patronID, amount, description).
		Suffix("returning " + fineColumns).
		ToSql()
	if err != nil {
		return model.Fine{}, err
	}
	var f model.Fine
	if err := s.q.GetContext(ctx, &f, q, args...); err != nil {
		s.log.Error("CreateFine", zap.String("q", q), zap.Any("args", args))
		return model.Fine{}, err
	}
	return f, nil
}

const fineViewQuery = `
	select f.id, f.fine_uid, f.loan_id, f.patron_id, f.amount, f.description, f.created_at,
		l.loan_uid, p.username
	from fines f
	join loans l on l.id = f.loan_id
	join patrons p on p.id = f.patron_id`

func (s store) ListFines(ctx context.Context) ([]model.FineView, error) {
	var items []model.FineView
	if err := s.q.SelectContext(ctx, &items, fineViewQuery+` order by f.created_at desc`); err != nil {
		return nil, err
	}
	return items, nil
}

func (s store) ListFinesByPatron(ctx context.Context, patronID int) ([]model.FineView, error) {
	var items []model.FineView
	q := fineViewQuery + ` where f.patron_id = $1 order by f.created_at desc`
	if err := s.q.SelectContext(ctx, &items, q, patronID); err != nil {
		return nil, err
	}
	return items, nil
}

func (s store) UpdateFineAmount(ctx context.Context, fineUid string, amount int, description string) (model.Fine, error) {
	q := `update fines set amount = $2, description = $3
	where fine_uid = $1
	returning ` + fineColumns
	var f model.Fine
	if err := s.q.GetContext(ctx, &f, q, fineUid, amount, description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Fine{}, errs.ErrNotFound
		}
		return model.Fine{}, err
	}
	return f, nil
}

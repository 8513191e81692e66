package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/hustlib/lending-service/internal/errs"
	"github.com/hustlib/lending-service/internal/model"
)

func (s store) GetCopyByUid(ctx context.Context, copyUid string) (model.Copy, error) {
	q, args, err := qb.Select("id", "copy_uid", "title", "status").
		From(copiesTableName).
		Where(sq.Eq{"copy_uid": copyUid}).
		ToSql()
	if err != nil {
		return model.Copy{}, err
	}
	var c model.Copy
	if err := s.q.GetContext(ctx, &c, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Copy{}, errs.ErrNotFound
		}
		return model.Copy{}, err
	}
	return c, nil
}

func (s store) GetCopyForUpdate(ctx context.Context, copyID int) (model.Copy, error) {
	q := `select id, copy_uid, title, status from copies where id = $1 for update`
	var c model.Copy
	if err := s.q.GetContext(ctx, &c, q, copyID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Copy{}, errs.ErrNotFound
		}
		return model.Copy{}, err
	}
	return c, nil
}

func (s store) SetCopyStatus(ctx context.Context, copyID int, status model.CopyStatus) error {
	q, args, err := qb.Update(copiesTableName).
		Set("status", status).
		Where(sq.Eq{"id": copyID}).
		ToSql()
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

func (s store) ListCopies(ctx context.Context) ([]model.Copy, error) {
	q, args, err := qb.Select("id", "copy_uid", "title", "status").
		From(copiesTableName).
		OrderBy("title", "id").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Copy
	if err := s.q.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s store) CreateCopy(ctx context.Context, title string) (model.Copy, error) {
	q, args, err := qb.Insert(copiesTableName).
		Columns("copy_uid", "title", "status").
		Values(uuid.New(), title, model.CopyAvailable).
		Suffix("returning id, copy_uid, title, status").
		ToSql()
	if err != nil {
		return model.Copy{}, err
	}
	var c model.Copy
	if err := s.q.GetContext(ctx, &c, q, args...); err != nil {
		s.log.Error("CreateCopy", zap.String("q", q), zap.Any("args", args))
		return model.Copy{}, err
	}
	return c, nil
}

func (s store) GetPatronByUsername(ctx context.Context, username string) (model.Patron, error) {
	q, args, err := qb.Select("id", "username", "email").
		From(patronsTableName).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return model.Patron{}, err
	}
	var p model.Patron
	if err := s.q.GetContext(ctx, &p, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Patron{}, errs.ErrNotFound
		}
		return model.Patron{}, err
	}
	return p, nil
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hustlib/lending-service/internal/model"
)

// CreateSubscription always inserts a fresh row; a deactivated subscription
// is never reactivated.
func (s store) CreateSubscription(ctx context.Context, copyID, patronID int) (model.Subscription, error) {
	q, args, err := qb.Insert(subscriptionsTableName).
		Columns("subscription_uid", "copy_id", "patron_id", "active").
		Values(uuid.New(), copyID, patronID, true).
		Suffix("returning id, subscription_uid, copy_id, patron_id, active").
		ToSql()
	if err != nil {
		return model.Subscription{}, err
	}
	var sub model.Subscription
	if err := s.q.GetContext(ctx, &sub, q, args...); err != nil {
		s.log.Error("CreateSubscription", zap.String("q", q), zap.Any("args", args))
		return model.Subscription{}, err
	}
	return sub, nil
}

// DeactivateSubscription is idempotent: deactivating an inactive
// subscription affects no rows and is not an error.
func (s store) DeactivateSubscription(ctx context.Context, subscriptionUid string, patronID int) error {
	q := `update subscriptions set active = false
	where subscription_uid = $1 and patron_id = $2`
	_, err := s.q.ExecContext(ctx, q, subscriptionUid, patronID)
	return err
}

func (s store) DeactivateSubscriptionForPatronCopy(ctx context.Context, copyID, patronID int) error {
	q := `update subscriptions set active = false
	where copy_id = $1 and patron_id = $2 and active`
	_, err := s.q.ExecContext(ctx, q, copyID, patronID)
	return err
}

const notifyTargetQuery = `
	select s.subscription_uid, c.copy_uid, c.title, p.username, p.email
	from subscriptions s
	join copies c on c.id = s.copy_id
	join patrons p on p.id = s.patron_id
	where s.active`

func (s store) ListNotifyTargetsByCopy(ctx context.Context, copyID int) ([]model.NotifyTarget, error) {
	var items []model.NotifyTarget
	if err := s.q.SelectContext(ctx, &items, notifyTargetQuery+` and s.copy_id = $1`, copyID); err != nil {
		return nil, err
	}
	return items, nil
}

func (s store) ListNotifyTargets(ctx context.Context) ([]model.NotifyTarget, error) {
	var items []model.NotifyTarget
	if err := s.q.SelectContext(ctx, &items, notifyTargetQuery); err != nil {
		return nil, err
	}
	return items, nil
}

func (s store) ListSubscriptionsByPatron(ctx context.Context, patronID int) ([]model.SubscriptionView, error) {
	q := `select s.id, s.subscription_uid, s.copy_id, s.patron_id, s.active, c.copy_uid, c.title
	from subscriptions s
	join copies c on c.id = s.copy_id
	where s.patron_id = $1
	order by s.id desc`
	var items []model.SubscriptionView
	if err := s.q.SelectContext(ctx, &items, q, patronID); err != nil {
		return nil, err
	}
	return items, nil
}

package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hustlib/lending-service/internal/model"
)

const availableSubject = "Book copy available"

// Subscribe registers the patron's standing interest in a copy. The copy's
// current availability is not checked; subscribing to an available copy is
// harmless.
func (s *Service) Subscribe(ctx context.Context, username, copyUid string) (model.Subscription, error) {
	patron, err := s.repo.GetPatronByUsername(ctx, username)
	if err != nil {
		return model.Subscription{}, err
	}
	cp, err := s.repo.GetCopyByUid(ctx, copyUid)
	if err != nil {
		return model.Subscription{}, err
	}
	return s.repo.CreateSubscription(ctx, cp.ID, patron.ID)
}

func (s *Service) Unsubscribe(ctx context.Context, username, subscriptionUid string) error {
	patron, err := s.repo.GetPatronByUsername(ctx, username)
	if err != nil {
		return err
	}
	return s.repo.DeactivateSubscription(ctx, subscriptionUid, patron.ID)
}

func (s *Service) ListSubscriptionsByPatron(ctx context.Context, username string) ([]model.SubscriptionView, error) {
	patron, err := s.repo.GetPatronByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.repo.ListSubscriptionsByPatron(ctx, patron.ID)
}

// NotifyForCopy tells every active subscriber that the copy is back in the
// pool. Subscriptions stay active; the patron unsubscribes explicitly or by
// borrowing the copy.
func (s *Service) NotifyForCopy(ctx context.Context, copyUid string) (int, error) {
	cp, err := s.repo.GetCopyByUid(ctx, copyUid)
	if err != nil {
		return 0, err
	}
	targets, err := s.repo.ListNotifyTargetsByCopy(ctx, cp.ID)
	if err != nil {
		return 0, err
	}
	return s.deliver(ctx, targets), nil
}

// NotifyAll is the periodic best-effort broadcast across every active
// subscription.
func (s *Service) NotifyAll(ctx context.Context) (int, error) {
	targets, err := s.repo.ListNotifyTargets(ctx)
	if err != nil {
		return 0, err
	}
	return s.deliver(ctx, targets), nil
}

// deliver fans out one notification per subscriber. A failure for one
// recipient is logged and does not stop the rest.
func (s *Service) deliver(ctx context.Context, targets []model.NotifyTarget) int {
	sent := 0
	for _, t := range targets {
		body := fmt.Sprintf("The copy of %q you subscribed to is now available.", t.Title)
		if err := s.sender.Send(ctx, t.Email, availableSubject, body); err != nil {
			s.log.Error("notify subscriber",
				zap.String("subscriptionUid", t.SubscriptionUid),
				zap.String("to", t.Email),
				zap.Error(err))
			continue
		}
		sent++
	}
	return sent
}

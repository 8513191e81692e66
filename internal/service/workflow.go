package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/hustlib/lending-service/internal/errs"
	"github.com/hustlib/lending-service/internal/model"
	"github.com/hustlib/lending-service/internal/repository"
	"github.com/hustlib/lending-service/pkg/kafka"
)

// A copy is reserved at approval time, not at request time: a PENDING
// borrowing request holds nothing, so deny and cancel roll back nothing.

func (s *Service) CreateBorrowingRequest(ctx context.Context, username, copyUid string) (model.RequestView, error) {
	patron, err := s.repo.GetPatronByUsername(ctx, username)
	if err != nil {
		return model.RequestView{}, err
	}
	cp, err := s.repo.GetCopyByUid(ctx, copyUid)
	if err != nil {
		return model.RequestView{}, err
	}
	if cp.Status != model.CopyAvailable {
		return model.RequestView{}, errors.Wrap(errs.ErrInvalidState, "copy is not available")
	}
	pending, err := s.repo.HasPendingRequest(ctx, cp.ID, patron.ID, model.RequestBorrowing)
	if err != nil {
		return model.RequestView{}, err
	}
	if pending {
		return model.RequestView{}, errors.Wrap(errs.ErrConflict,
			"you already have a pending borrowing request for this copy")
	}
	return s.repo.CreateRequest(ctx, model.Request{
		Type:     model.RequestBorrowing,
		CopyID:   cp.ID,
		PatronID: patron.ID,
	})
}

func (s *Service) CreateReturningRequest(ctx context.Context, username, copyUid string) (model.RequestView, error) {
	patron, err := s.repo.GetPatronByUsername(ctx, username)
	if err != nil {
		return model.RequestView{}, err
	}
	cp, err := s.repo.GetCopyByUid(ctx, copyUid)
	if err != nil {
		return model.RequestView{}, err
	}
	loan, err := s.repo.FindActiveLoan(ctx, cp.ID, patron.ID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.RequestView{}, errors.Wrap(errs.ErrInvalidState, "no active loan found")
		}
		return model.RequestView{}, err
	}
	pending, err := s.repo.HasPendingRequest(ctx, cp.ID, patron.ID, model.RequestReturning)
	if err != nil {
		return model.RequestView{}, err
	}
	if pending {
		return model.RequestView{}, errors.Wrap(errs.ErrConflict,
			"you already have a pending returning request for this copy")
	}
	return s.repo.CreateRequest(ctx, model.Request{
		Type:     model.RequestReturning,
		CopyID:   cp.ID,
		PatronID: patron.ID,
		LoanID:   &loan.ID,
	})
}

// ProcessRequest applies a staff decision to a PENDING request as one
// transaction spanning the request, the copy and the loan. The copy row
// lock serializes concurrent approvals for the same copy; the request row
// lock serializes concurrent decisions on the same request.
func (s *Service) ProcessRequest(ctx context.Context, requestUid string, approve bool) (model.RequestView, error) {
	var out model.RequestView
	err := s.repo.WithTx(ctx, func(ctx context.Context, st repository.Store) error {
		req, err := st.GetRequestForUpdate(ctx, requestUid)
		if err != nil {
			return err
		}
		if req.Status != model.RequestPending {
			return errors.Wrap(errs.ErrInvalidState, "request is not pending")
		}

		switch req.Type {
		case model.RequestBorrowing:
			if err := s.approveBorrowing(ctx, st, req, approve); err != nil {
				return err
			}
		case model.RequestReturning:
			if err := s.approveReturning(ctx, st, req, approve); err != nil {
				return err
			}
		default:
			return errors.Wrapf(errs.ErrCorrupt, "unknown request type %q", req.Type)
		}

		out, err = st.GetRequestByUid(ctx, requestUid)
		return err
	})
	if err != nil {
		return model.RequestView{}, err
	}

	// The copy went back to the pool: hand the availability event to the
	// notifier. Best effort; a slow or failing sink must not fail the
	// decision that already committed.
	if approve && out.Type == model.RequestReturning && s.pub != nil {
		if err := s.pub.Publish(kafka.CopyAvailableTopic, model.CopyAvailableEvent{CopyUid: out.CopyUid}); err != nil {
			s.log.Error("publish copy-available", zap.String("copyUid", out.CopyUid), zap.Error(err))
		}
	}
	return out, nil
}

func (s *Service) approveBorrowing(ctx context.Context, st repository.Store, req model.Request, approve bool) error {
	if req.LoanID != nil {
		return errors.Wrapf(errs.ErrCorrupt, "borrowing request %s already has a loan", req.RequestUid)
	}
	if !approve {
		return st.SetRequestStatus(ctx, req.ID, model.RequestDenied, nil)
	}

	cp, err := st.GetCopyForUpdate(ctx, req.CopyID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errors.Wrapf(errs.ErrCorrupt, "copy %d missing for request %s", req.CopyID, req.RequestUid)
		}
		return err
	}
	if cp.Status != model.CopyAvailable {
		return errors.Wrap(errs.ErrInvalidState, "copy is no longer available")
	}

	due := time.Now().UTC().Add(s.opts.LoanDuration)
	loan, err := st.CreateLoan(ctx, cp.ID, req.PatronID, req.ID, due)
	if err != nil {
		return err
	}
	if err := st.SetCopyStatus(ctx, cp.ID, model.CopyUnavailable); err != nil {
		return err
	}
	// the patron got the copy, their standing interest is served
	if err := st.DeactivateSubscriptionForPatronCopy(ctx, cp.ID, req.PatronID); err != nil {
		return err
	}
	return st.SetRequestStatus(ctx, req.ID, model.RequestAccepted, &loan.ID)
}

func (s *Service) approveReturning(ctx context.Context, st repository.Store, req model.Request, approve bool) error {
	if req.LoanID == nil {
		return errors.Wrapf(errs.ErrCorrupt, "returning request %s has no loan", req.RequestUid)
	}
	if !approve {
		return st.SetRequestStatus(ctx, req.ID, model.RequestDenied, nil)
	}

	if _, err := st.GetLoanByID(ctx, *req.LoanID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errors.Wrapf(errs.ErrCorrupt, "loan %d missing for request %s", *req.LoanID, req.RequestUid)
		}
		return err
	}
	if _, err := st.RecordReturn(ctx, *req.LoanID); err != nil {
		return err
	}
	cp, err := st.GetCopyForUpdate(ctx, req.CopyID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errors.Wrapf(errs.ErrCorrupt, "copy %d missing for request %s", req.CopyID, req.RequestUid)
		}
		return err
	}
	if err := st.SetCopyStatus(ctx, cp.ID, model.CopyAvailable); err != nil {
		return err
	}
	return st.SetRequestStatus(ctx, req.ID, model.RequestAccepted, nil)
}

// CancelRequest lets the patron withdraw their own PENDING request.
// Nothing was reserved, so nothing is rolled back.
func (s *Service) CancelRequest(ctx context.Context, username, requestUid string) error {
	patron, err := s.repo.GetPatronByUsername(ctx, username)
	if err != nil {
		return err
	}
	return s.repo.WithTx(ctx, func(ctx context.Context, st repository.Store) error {
		req, err := st.GetRequestForUpdate(ctx, requestUid)
		if err != nil {
			return err
		}
		if req.PatronID != patron.ID {
			return errs.ErrNotFound
		}
		if req.Status != model.RequestPending {
			return errors.Wrap(errs.ErrInvalidState, "request is not pending")
		}
		return st.SetRequestStatus(ctx, req.ID, model.RequestCanceled, nil)
	})
}

func (s *Service) GetRequest(ctx context.Context, requestUid string) (model.RequestView, error) {
	return s.repo.GetRequestByUid(ctx, requestUid)
}

func (s *Service) ListRequests(ctx context.Context) ([]model.RequestView, error) {
	return s.repo.ListRequests(ctx)
}

func (s *Service) ListRequestsByPatron(ctx context.Context, username string) ([]model.RequestView, error) {
	patron, err := s.repo.GetPatronByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.repo.ListRequestsByPatron(ctx, patron.ID)
}

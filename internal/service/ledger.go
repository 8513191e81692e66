package service

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/hustlib/lending-service/internal/errs"
	"github.com/hustlib/lending-service/internal/model"
)

func (s *Service) ListLoansByPatron(ctx context.Context, username string) ([]model.LoanView, error) {
	patron, err := s.repo.GetPatronByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.repo.ListLoansByPatron(ctx, patron.ID)
}

func (s *Service) ListOverdueLoans(ctx context.Context) ([]model.LoanView, error) {
	return s.repo.ListOverdue(ctx)
}

func (s *Service) ListLoansByCopy(ctx context.Context, copyUid string) ([]model.LoanView, error) {
	cp, err := s.repo.GetCopyByUid(ctx, copyUid)
	if err != nil {
		return nil, err
	}
	return s.repo.ListLoansByCopy(ctx, cp.ID)
}

// ExtendDueDate moves a loan's due date forward. A date at or before the
// current due date is rejected.
func (s *Service) ExtendDueDate(ctx context.Context, loanUid string, due time.Time) (model.Loan, error) {
	loan, err := s.repo.GetLoanByUid(ctx, loanUid)
	if err != nil {
		return model.Loan{}, err
	}
	if loan.Status != model.LoanBorrowed {
		return model.Loan{}, errors.Wrap(errs.ErrInvalidState, "loan is not borrowed")
	}
	if !due.After(loan.DueDate) {
		return model.Loan{}, errors.Wrap(errs.ErrInvalidState, "new due date must be after the current one")
	}
	return s.repo.ExtendDueDate(ctx, loan.ID, due)
}

func (s *Service) ListCopies(ctx context.Context) ([]model.Copy, error) {
	return s.repo.ListCopies(ctx)
}

func (s *Service) CreateCopy(ctx context.Context, title string) (model.Copy, error) {
	return s.repo.CreateCopy(ctx, title)
}

func (s *Service) ListFines(ctx context.Context) ([]model.FineView, error) {
	return s.repo.ListFines(ctx)
}

func (s *Service) ListFinesByPatron(ctx context.Context, username string) ([]model.FineView, error) {
	patron, err := s.repo.GetPatronByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.repo.ListFinesByPatron(ctx, patron.ID)
}

func (s *Service) UpdateFine(ctx context.Context, fineUid string, amount int, description string) (model.Fine, error) {
	return s.repo.UpdateFineAmount(ctx, fineUid, amount, description)
}

package handler

import (
	"context"
	"time"

	"github.com/hustlib/lending-service/internal/model"
	"github.com/hustlib/lending-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LendingService interface {
	CreateBorrowingRequest(ctx context.Context, username, copyUid string) (model.RequestView, error)
	CreateReturningRequest(ctx context.Context, username, copyUid string) (model.RequestView, error)
	ProcessRequest(ctx context.Context, requestUid string, approve bool) (model.RequestView, error)
	CancelRequest(ctx context.Context, username, requestUid string) error
	GetRequest(ctx context.Context, requestUid string) (model.RequestView, error)
	ListRequests(ctx context.Context) ([]model.RequestView, error)
	ListRequestsByPatron(ctx context.Context, username string) ([]model.RequestView, error)

	ListLoansByPatron(ctx context.Context, username string) ([]model.LoanView, error)
	ListOverdueLoans(ctx context.Context) ([]model.LoanView, error)
	ListLoansByCopy(ctx context.Context, copyUid string) ([]model.LoanView, error)
	ExtendDueDate(ctx context.Context, loanUid string, due time.Time) (model.Loan, error)

	ListCopies(ctx context.Context) ([]model.Copy, error)
	CreateCopy(ctx context.Context, title string) (model.Copy, error)

	Subscribe(ctx context.Context, username, copyUid string) (model.Subscription, error)
	Unsubscribe(ctx context.Context, username, subscriptionUid string) error
	ListSubscriptionsByPatron(ctx context.Context, username string) ([]model.SubscriptionView, error)
	NotifyForCopy(ctx context.Context, copyUid string) (int, error)
	NotifyAll(ctx context.Context) (int, error)

	ListFines(ctx context.Context) ([]model.FineView, error)
	ListFinesByPatron(ctx context.Context, username string) ([]model.FineView, error)
	UpdateFine(ctx context.Context, fineUid string, amount int, description string) (model.Fine, error)
}

var _ LendingService = (*service.Service)(nil)

package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hustlib/lending-service/internal/errs"
	"github.com/hustlib/lending-service/internal/model"
	"github.com/hustlib/lending-service/internal/service"
)

func TestExtendDueDate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	alice := repo.addPatron("alice", "alice@example.com")
	cp := repo.addCopy("Working Effectively with Legacy Code", model.CopyAvailable)
	svc, _, _ := newTestService(repo, service.Options{})

	due := time.Now().UTC().Add(7 * 24 * time.Hour).Truncate(time.Second)
	loan, err := repo.CreateLoan(ctx, cp.ID, alice.ID, 0, due)
	require.NoError(t, err)

	tests := []struct {
		name    string
		due     time.Time
		wantErr error
	}{
		{name: "earlier than current", due: due.Add(-24 * time.Hour), wantErr: errs.ErrInvalidState},
		{name: "equal to current", due: due, wantErr: errs.ErrInvalidState},
		{name: "later than current", due: due.Add(7 * 24 * time.Hour)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ExtendDueDate(ctx, loan.LoanUid, tt.due)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.True(t, got.DueDate.Equal(tt.due))
		})
	}
}

func TestExtendDueDateNotBorrowed(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	alice := repo.addPatron("alice", "alice@example.com")
	cp := repo.addCopy("The Pragmatic Programmer", model.CopyAvailable)
	svc, _, _ := newTestService(repo, service.Options{})

	loan, err := repo.CreateLoan(ctx, cp.ID, alice.ID, 0, time.Now().UTC().Add(-48*time.Hour))
	require.NoError(t, err)
	require.NoError(t, repo.MarkOverdue(ctx, loan.ID))

	_, err = svc.ExtendDueDate(ctx, loan.LoanUid, time.Now().UTC().Add(7*24*time.Hour))
	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestSweep(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	alice := repo.addPatron("alice", "alice@example.com")
	bob := repo.addPatron("bob", "bob@example.com")
	lateCopy := repo.addCopy("Overdue Reading", model.CopyUnavailable)
	onTimeCopy := repo.addCopy("Punctual Reading", model.CopyUnavailable)
	svc, _, _ := newTestService(repo, service.Options{FinePerDay: 5})

	late, err := repo.CreateLoan(ctx, lateCopy.ID, alice.ID, 0, time.Now().UTC().Add(-3*24*time.Hour))
	require.NoError(t, err)
	onTime, err := repo.CreateLoan(ctx, onTimeCopy.ID, bob.ID, 0, time.Now().UTC().Add(24*time.Hour))
	require.NoError(t, err)

	sweeper := service.NewSweeper(svc, time.Hour, zap.NewNop())
	sweeper.Sweep(ctx)

	require.Equal(t, model.LoanOverdue, repo.loanByID(late.ID).Status)
	require.Equal(t, model.LoanBorrowed, repo.loanByID(onTime.ID).Status)

	overdue, err := svc.ListOverdueLoans(ctx)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	require.Equal(t, late.LoanUid, overdue[0].LoanUid)

	fines, err := svc.ListFinesByPatron(ctx, alice.Username)
	require.NoError(t, err)
	require.Len(t, fines, 1)
	require.Equal(t, 3*5, fines[0].Amount)

	// a second pass flags nothing new and opens no second fine
	sweeper.Sweep(ctx)
	require.Equal(t, model.LoanOverdue, repo.loanByID(late.ID).Status)
	fines, err = svc.ListFinesByPatron(ctx, alice.Username)
	require.NoError(t, err)
	require.Len(t, fines, 1)
}

func TestSweepWithoutFines(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	alice := repo.addPatron("alice", "alice@example.com")
	cp := repo.addCopy("No Fines Here", model.CopyUnavailable)
	svc, _, _ := newTestService(repo, service.Options{})

	loan, err := repo.CreateLoan(ctx, cp.ID, alice.ID, 0, time.Now().UTC().Add(-24*time.Hour))
	require.NoError(t, err)

	service.NewSweeper(svc, time.Hour, zap.NewNop()).Sweep(ctx)

	require.Equal(t, model.LoanOverdue, repo.loanByID(loan.ID).Status)
	fines, err := svc.ListFines(ctx)
	require.NoError(t, err)
	require.Empty(t, fines)
}

// An overdue loan still holds the copy: the patron can return it, and the
// return settles the copy back to available.
func TestOverdueLoanCanBeReturned(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	alice := repo.addPatron("alice", "alice@example.com")
	cp := repo.addCopy("Better Late Than Never", model.CopyAvailable)
	svc, _, _ := newTestService(repo, service.Options{LoanDuration: time.Nanosecond})

	borrow, err := svc.CreateBorrowingRequest(ctx, alice.Username, cp.CopyUid)
	require.NoError(t, err)
	_, err = svc.ProcessRequest(ctx, borrow.RequestUid, true)
	require.NoError(t, err)

	time.Sleep(time.Millisecond)
	service.NewSweeper(svc, time.Hour, zap.NewNop()).Sweep(ctx)

	ret, err := svc.CreateReturningRequest(ctx, alice.Username, cp.CopyUid)
	require.NoError(t, err)
	out, err := svc.ProcessRequest(ctx, ret.RequestUid, true)
	require.NoError(t, err)
	require.Equal(t, model.RequestAccepted, out.Status)
	require.Equal(t, model.CopyAvailable, repo.copyByID(cp.ID).Status)
	require.Equal(t, model.LoanReturned, repo.loanByID(*ret.LoanID).Status)
}

func TestUpdateFine(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	alice := repo.addPatron("alice", "alice@example.com")
	cp := repo.addCopy("Expensive Habits", model.CopyUnavailable)
	svc, _, _ := newTestService(repo, service.Options{})

	loan, err := repo.CreateLoan(ctx, cp.ID, alice.ID, 0, time.Now().UTC())
	require.NoError(t, err)
	fine, err := repo.CreateFine(ctx, loan.ID, alice.ID, 10, "initial")
	require.NoError(t, err)

	got, err := svc.UpdateFine(ctx, fine.FineUid, 25, "waived half")
	require.NoError(t, err)
	require.Equal(t, 25, got.Amount)
	require.Equal(t, "waived half", got.Description)

	_, err = svc.UpdateFine(ctx, "00000000-0000-0000-0000-000000000000", 1, "")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestCreateAndListCopies(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc, _, _ := newTestService(repo, service.Options{})

	created, err := svc.CreateCopy(ctx, "Brand New Arrival")
	require.NoError(t, err)
	require.Equal(t, model.CopyAvailable, created.Status)
	require.NotEmpty(t, created.CopyUid)

	copies, err := svc.ListCopies(ctx)
	require.NoError(t, err)
	require.Len(t, copies, 1)
	require.Equal(t, created.CopyUid, copies[0].CopyUid)
}

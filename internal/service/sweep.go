package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Sweeper flags overdue loans on a fixed schedule. Transitions are monotone
// (BORROWED to OVERDUE only), so re-running a sweep is always safe.
type Sweeper struct {
	svc      *Service
	interval time.Duration
	log      *zap.Logger
}

func NewSweeper(svc *Service, interval time.Duration, log *zap.Logger) *Sweeper {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &Sweeper{
		svc:      svc,
		interval: interval,
		log:      log.Named("sweep"),
	}
}

// Run blocks until ctx is canceled. The first sweep fires immediately.
func (w *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Sweep(ctx)
	for {
		select {
		case <-ticker.C:
			w.Sweep(ctx)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Sweep flags every borrowed loan past its due date. One loan failing is
// logged and skipped; the rest of the batch continues.
func (w *Sweeper) Sweep(ctx context.Context) {
	now := time.Now().UTC()
	loans, err := w.svc.repo.ListBorrowedDue(ctx, now)
	if err != nil {
		w.log.Error("list due loans", zap.Error(err))
		return
	}

	flagged := 0
	for _, loan := range loans {
		if err := w.svc.repo.MarkOverdue(ctx, loan.ID); err != nil {
			w.log.Error("mark overdue", zap.String("loanUid", loan.LoanUid), zap.Error(err))
			continue
		}
		flagged++

		if w.svc.opts.FinePerDay <= 0 {
			continue
		}
		daysLate := int(now.Sub(loan.DueDate).Hours() / 24)
		if daysLate < 1 {
			daysLate = 1
		}
		amount := daysLate * w.svc.opts.FinePerDay
		desc := fmt.Sprintf("loan %s overdue by %d day(s)", loan.LoanUid, daysLate)
		if _, err := w.svc.repo.CreateFine(ctx, loan.ID, loan.PatronID, amount, desc); err != nil {
			w.log.Error("create fine", zap.String("loanUid", loan.LoanUid), zap.Error(err))
		}
	}
	if flagged > 0 {
		w.log.Info("sweep finished", zap.Int("flagged", flagged))
	} else {
		w.log.Debug("sweep finished", zap.Int("flagged", 0))
	}
}

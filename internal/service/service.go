package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/hustlib/lending-service/internal/mailer"
	"github.com/hustlib/lending-service/internal/repository"
)

type Options struct {
	// LoanDuration is the fixed borrowing period.
	LoanDuration time.Duration
	// FinePerDay is charged for every day a loan is late when the sweep
	// flags it.
	FinePerDay int
}

const DefaultLoanDays = 30

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	pub    Publisher
	sender mailer.Sender
	opts   Options
}

func NewService(repo repository.Repository, pub Publisher, sender mailer.Sender, opts Options, log *zap.Logger) *Service {
	if opts.LoanDuration <= 0 {
		opts.LoanDuration = DefaultLoanDays * 24 * time.Hour
	}
	return &Service{
		log:    log,
		repo:   repo,
		pub:    pub,
		sender: sender,
		opts:   opts,
	}
}

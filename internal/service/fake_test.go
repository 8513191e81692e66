package service_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hustlib/lending-service/internal/errs"
	"github.com/hustlib/lending-service/internal/model"
	"github.com/hustlib/lending-service/internal/repository"
)

// fakeRepo is an in-memory repository. WithTx serializes transactions the
// way the row locks do in Postgres and restores a snapshot on error, so the
// workflow's atomicity and check-then-act behavior are exercised for real.
type fakeRepo struct {
	txMu sync.Mutex
	mu   sync.Mutex

	copies   map[int]model.Copy
	patrons  map[int]model.Patron
	loans    map[int]model.Loan
	requests map[int]model.Request
	subs     map[int]model.Subscription
	fines    map[int]model.Fine
	nextID   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		copies:   make(map[int]model.Copy),
		patrons:  make(map[int]model.Patron),
		loans:    make(map[int]model.Loan),
		requests: make(map[int]model.Request),
		subs:     make(map[int]model.Subscription),
		fines:    make(map[int]model.Fine),
	}
}

var _ repository.Repository = (*fakeRepo)(nil)

func (f *fakeRepo) id() int {
	f.nextID++
	return f.nextID
}

type snapshot struct {
	copies   map[int]model.Copy
	loans    map[int]model.Loan
	requests map[int]model.Request
	subs     map[int]model.Subscription
	fines    map[int]model.Fine
	nextID   int
}

func copyMap[V any](m map[int]V) map[int]V {
	out := make(map[int]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (f *fakeRepo) snapshot() snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return snapshot{
		copies:   copyMap(f.copies),
		loans:    copyMap(f.loans),
		requests: copyMap(f.requests),
		subs:     copyMap(f.subs),
		fines:    copyMap(f.fines),
		nextID:   f.nextID,
	}
}

func (f *fakeRepo) restore(s snapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.copies, f.loans, f.requests, f.subs, f.fines, f.nextID =
		s.copies, s.loans, s.requests, s.subs, s.fines, s.nextID
}

func (f *fakeRepo) WithTx(ctx context.Context, fn func(ctx context.Context, s repository.Store) error) error {
	f.txMu.Lock()
	defer f.txMu.Unlock()
	snap := f.snapshot()
	if err := fn(ctx, f); err != nil {
		f.restore(snap)
		return err
	}
	return nil
}

// test seeding helpers

func (f *fakeRepo) addPatron(username, email string) model.Patron {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := model.Patron{ID: f.id(), Username: username, Email: email}
	f.patrons[p.ID] = p
	return p
}

func (f *fakeRepo) addCopy(title string, status model.CopyStatus) model.Copy {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := model.Copy{ID: f.id(), CopyUid: uuid.NewString(), Title: title, Status: status}
	f.copies[c.ID] = c
	return c
}

func (f *fakeRepo) copyByID(id int) model.Copy {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.copies[id]
}

func (f *fakeRepo) loanByID(id int) model.Loan {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loans[id]
}

func (f *fakeRepo) activeLoans(copyID int) []model.Loan {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Loan
	for _, l := range f.loans {
		if l.CopyID == copyID && l.Status.Active() {
			out = append(out, l)
		}
	}
	return out
}

// CopyStore

func (f *fakeRepo) GetCopyByUid(_ context.Context, copyUid string) (model.Copy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.copies {
		if c.CopyUid == copyUid {
			return c, nil
		}
	}
	return model.Copy{}, errs.ErrNotFound
}

func (f *fakeRepo) GetCopyForUpdate(_ context.Context, copyID int) (model.Copy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.copies[copyID]
	if !ok {
		return model.Copy{}, errs.ErrNotFound
	}
	return c, nil
}

func (f *fakeRepo) SetCopyStatus(_ context.Context, copyID int, status model.CopyStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.copies[copyID]
	if !ok {
		return errs.ErrNotFound
	}
	c.Status = status
	f.copies[copyID] = c
	return nil
}

func (f *fakeRepo) ListCopies(_ context.Context) ([]model.Copy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Copy
	for _, c := range f.copies {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeRepo) CreateCopy(_ context.Context, title string) (model.Copy, error) {
	return f.addCopy(title, model.CopyAvailable), nil
}

func (f *fakeRepo) GetPatronByUsername(_ context.Context, username string) (model.Patron, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.patrons {
		if p.Username == username {
			return p, nil
		}
	}
	return model.Patron{}, errs.ErrNotFound
}

// RequestStore

func (f *fakeRepo) view(r model.Request) model.RequestView {
	rv := model.RequestView{Request: r}
	if c, ok := f.copies[r.CopyID]; ok {
		rv.CopyUid = c.CopyUid
	}
	if p, ok := f.patrons[r.PatronID]; ok {
		rv.Username = p.Username
	}
	if r.LoanID != nil {
		if l, ok := f.loans[*r.LoanID]; ok {
			uid := l.LoanUid
			rv.LoanUid = &uid
		}
	}
	return rv
}

func (f *fakeRepo) GetRequestByUid(_ context.Context, requestUid string) (model.RequestView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.requests {
		if r.RequestUid == requestUid {
			return f.view(r), nil
		}
	}
	return model.RequestView{}, errs.ErrNotFound
}

func (f *fakeRepo) GetRequestForUpdate(_ context.Context, requestUid string) (model.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.requests {
		if r.RequestUid == requestUid {
			return r, nil
		}
	}
	return model.Request{}, errs.ErrNotFound
}

func (f *fakeRepo) HasPendingRequest(_ context.Context, copyID, patronID int, typ model.RequestType) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasPendingLocked(copyID, patronID, typ), nil
}

func (f *fakeRepo) hasPendingLocked(copyID, patronID int, typ model.RequestType) bool {
	for _, r := range f.requests {
		if r.CopyID == copyID && r.PatronID == patronID && r.Type == typ && r.Status == model.RequestPending {
			return true
		}
	}
	return false
}

func (f *fakeRepo) CreateRequest(_ context.Context, req model.Request) (model.RequestView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hasPendingLocked(req.CopyID, req.PatronID, req.Type) {
		return model.RequestView{}, errs.ErrConflict
	}
	now := time.Now().UTC()
	req.ID = f.id()
	req.RequestUid = uuid.NewString()
	req.Status = model.RequestPending
	req.CreatedAt = now
	req.UpdatedAt = now
	f.requests[req.ID] = req
	return f.view(req), nil
}

func (f *fakeRepo) SetRequestStatus(_ context.Context, requestID int, status model.RequestStatus, loanID *int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.requests[requestID]
	if !ok {
		return errs.ErrNotFound
	}
	r.Status = status
	r.UpdatedAt = time.Now().UTC()
	if loanID != nil {
		r.LoanID = loanID
	}
	f.requests[requestID] = r
	return nil
}

func (f *fakeRepo) ListRequests(_ context.Context) ([]model.RequestView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.RequestView
	for _, r := range f.requests {
		out = append(out, f.view(r))
	}
	return out, nil
}

func (f *fakeRepo) ListRequestsByPatron(_ context.Context, patronID int) ([]model.RequestView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.RequestView
	for _, r := range f.requests {
		if r.PatronID == patronID {
			out = append(out, f.view(r))
		}
	}
	return out, nil
}

// LoanStore

func (f *fakeRepo) CreateLoan(_ context.Context, copyID, patronID, requestID int, due time.Time) (model.Loan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l := model.Loan{
		ID:        f.id(),
		LoanUid:   uuid.NewString(),
		CopyID:    copyID,
		PatronID:  patronID,
		Status:    model.LoanBorrowed,
		LoanedAt:  time.Now().UTC(),
		DueDate:   due,
		RequestID: &requestID,
	}
	f.loans[l.ID] = l
	return l, nil
}

func (f *fakeRepo) GetLoanByID(_ context.Context, loanID int) (model.Loan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.loans[loanID]
	if !ok {
		return model.Loan{}, errs.ErrNotFound
	}
	return l, nil
}

func (f *fakeRepo) GetLoanByUid(_ context.Context, loanUid string) (model.Loan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.loans {
		if l.LoanUid == loanUid {
			return l, nil
		}
	}
	return model.Loan{}, errs.ErrNotFound
}

func (f *fakeRepo) FindActiveLoan(_ context.Context, copyID, patronID int) (model.Loan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.loans {
		if l.CopyID == copyID && l.PatronID == patronID && l.Status.Active() {
			return l, nil
		}
	}
	return model.Loan{}, errs.ErrNotFound
}

func (f *fakeRepo) RecordReturn(_ context.Context, loanID int) (model.Loan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.loans[loanID]
	if !ok || !l.Status.Active() {
		return model.Loan{}, errs.ErrInvalidState
	}
	now := time.Now().UTC()
	l.Status = model.LoanReturned
	l.ReturnedAt = &now
	f.loans[loanID] = l
	return l, nil
}

func (f *fakeRepo) ListLoansByPatron(_ context.Context, patronID int) ([]model.LoanView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.LoanView
	for _, l := range f.loans {
		if l.PatronID == patronID {
			out = append(out, model.LoanView{Loan: l})
		}
	}
	return out, nil
}

func (f *fakeRepo) ListLoansByCopy(_ context.Context, copyID int) ([]model.LoanView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.LoanView
	for _, l := range f.loans {
		if l.CopyID == copyID {
			out = append(out, model.LoanView{Loan: l})
		}
	}
	return out, nil
}

func (f *fakeRepo) ListOverdue(_ context.Context) ([]model.LoanView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.LoanView
	for _, l := range f.loans {
		if l.Status == model.LoanOverdue {
			out = append(out, model.LoanView{Loan: l})
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBorrowedDue(_ context.Context, now time.Time) ([]model.Loan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Loan
	for _, l := range f.loans {
		if l.Status == model.LoanBorrowed && l.DueDate.Before(now) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeRepo) MarkOverdue(_ context.Context, loanID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.loans[loanID]
	if !ok || l.Status != model.LoanBorrowed {
		return nil
	}
	l.Status = model.LoanOverdue
	f.loans[loanID] = l
	return nil
}

func (f *fakeRepo) ExtendDueDate(_ context.Context, loanID int, due time.Time) (model.Loan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.loans[loanID]
	if !ok || l.Status != model.LoanBorrowed || !due.After(l.DueDate) {
		return model.Loan{}, errs.ErrInvalidState
	}
	l.DueDate = due
	f.loans[loanID] = l
	return l, nil
}

// SubscriptionStore

func (f *fakeRepo) CreateSubscription(_ context.Context, copyID, patronID int) (model.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := model.Subscription{
		ID:              f.id(),
		SubscriptionUid: uuid.NewString(),
		CopyID:          copyID,
		PatronID:        patronID,
		Active:          true,
	}
	f.subs[s.ID] = s
	return s, nil
}

func (f *fakeRepo) DeactivateSubscription(_ context.Context, subscriptionUid string, patronID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, s := range f.subs {
		if s.SubscriptionUid == subscriptionUid && s.PatronID == patronID {
			s.Active = false
			f.subs[id] = s
		}
	}
	return nil
}

func (f *fakeRepo) DeactivateSubscriptionForPatronCopy(_ context.Context, copyID, patronID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, s := range f.subs {
		if s.CopyID == copyID && s.PatronID == patronID {
			s.Active = false
			f.subs[id] = s
		}
	}
	return nil
}

func (f *fakeRepo) targetLocked(s model.Subscription) model.NotifyTarget {
	t := model.NotifyTarget{SubscriptionUid: s.SubscriptionUid}
	if c, ok := f.copies[s.CopyID]; ok {
		t.CopyUid = c.CopyUid
		t.Title = c.Title
	}
	if p, ok := f.patrons[s.PatronID]; ok {
		t.Username = p.Username
		t.Email = p.Email
	}
	return t
}

func (f *fakeRepo) ListNotifyTargetsByCopy(_ context.Context, copyID int) ([]model.NotifyTarget, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.NotifyTarget
	for _, s := range f.subs {
		if s.CopyID == copyID && s.Active {
			out = append(out, f.targetLocked(s))
		}
	}
	return out, nil
}

func (f *fakeRepo) ListNotifyTargets(_ context.Context) ([]model.NotifyTarget, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.NotifyTarget
	for _, s := range f.subs {
		if s.Active {
			out = append(out, f.targetLocked(s))
		}
	}
	return out, nil
}

func (f *fakeRepo) ListSubscriptionsByPatron(_ context.Context, patronID int) ([]model.SubscriptionView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.SubscriptionView
	for _, s := range f.subs {
		if s.PatronID == patronID {
			out = append(out, model.SubscriptionView{Subscription: s})
		}
	}
	return out, nil
}

// FineStore

func (f *fakeRepo) CreateFine(_ context.Context, loanID, patronID, amount int, description string) (model.Fine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fine := model.Fine{
		ID:          f.id(),
		FineUid:     uuid.NewString(),
		LoanID:      loanID,
		PatronID:    patronID,
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	f.fines[fine.ID] = fine
	return fine, nil
}

func (f *fakeRepo) ListFines(_ context.Context) ([]model.FineView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.FineView
	for _, fine := range f.fines {
		out = append(out, model.FineView{Fine: fine})
	}
	return out, nil
}

func (f *fakeRepo) ListFinesByPatron(_ context.Context, patronID int) ([]model.FineView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.FineView
	for _, fine := range f.fines {
		if fine.PatronID == patronID {
			out = append(out, model.FineView{Fine: fine})
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateFineAmount(_ context.Context, fineUid string, amount int, description string) (model.Fine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, fine := range f.fines {
		if fine.FineUid == fineUid {
			fine.Amount = amount
			fine.Description = description
			f.fines[id] = fine
			return fine, nil
		}
	}
	return model.Fine{}, errs.ErrNotFound
}

// collaborators

type fakePublisher struct {
	mu     sync.Mutex
	events []model.CopyAvailableEvent
	topics []string
}

func (p *fakePublisher) Publish(topic string, v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	if ev, ok := v.(model.CopyAvailableEvent); ok {
		p.events = append(p.events, ev)
	}
	return nil
}

type sentMail struct {
	to, subject, body string
}

type fakeSender struct {
	mu     sync.Mutex
	sent   []sentMail
	failTo map[string]bool
}

func (s *fakeSender) Send(_ context.Context, to, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failTo[to] {
		return errors.New("mail sink unavailable")
	}
	s.sent = append(s.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

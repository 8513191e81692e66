package status

import (
	"context"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/hustlib/lending-service/internal/model"
)

const (
	componentDatabase = "database"
	componentServer   = "server"

	statusOK          = "OK"
	statusUnavailable = "UNAVAILABLE"
)

// Probe periodically checks component liveness and records transitions in
// status_log. The last-known-status map lives on the probe, not in package
// state, so two probes never share history.
type Probe struct {
	db       *sqlx.DB
	interval time.Duration
	log      *zap.Logger

	// Check runs from both the ticker goroutine and the status endpoints.
	mu         sync.Mutex
	lastStatus map[string]string
}

func NewProbe(db *sqlx.DB, interval time.Duration, log *zap.Logger) *Probe {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Probe{
		db:         db,
		interval:   interval,
		log:        log.Named("status"),
		lastStatus: make(map[string]string),
	}
}

func (p *Probe) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.Check(ctx)
	for {
		select {
		case <-ticker.C:
			p.Check(ctx)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (p *Probe) Check(ctx context.Context) map[string]string {
	current := map[string]string{
		componentDatabase: p.databaseStatus(ctx),
		componentServer:   statusOK,
	}
	p.logChanges(ctx, current)
	return current
}

func (p *Probe) databaseStatus(ctx context.Context) string {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := p.db.PingContext(pingCtx); err != nil {
		return statusUnavailable
	}
	return statusOK
}

func (p *Probe) logChanges(ctx context.Context, current map[string]string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for component, status := range current {
		last, seen := p.lastStatus[component]
		if seen && last == status {
			continue
		}
		message := "initial status check"
		if seen {
			message = "status changed from " + last + " to " + status
		}
		if err := p.insertLog(ctx, component, status, message); err != nil {
			p.log.Error("status log", zap.String("component", component), zap.Error(err))
			continue
		}
		p.lastStatus[component] = status
	}
}

func (p *Probe) insertLog(ctx context.Context, component, status, message string) error {
	q := `insert into status_log (component, status, checked_at, message) values ($1, $2, now(), $3)`
	_, err := p.db.ExecContext(ctx, q, component, status, message)
	return err
}

func (p *Probe) RecentLogs(ctx context.Context, limit int) ([]model.StatusLog, error) {
	if limit <= 0 {
		limit = 50
	}
	q := `select id, component, status, checked_at, message
	from status_log order by checked_at desc limit $1`
	var items []model.StatusLog
	if err := p.db.SelectContext(ctx, &items, q, limit); err != nil {
		return nil, err
	}
	return items, nil
}

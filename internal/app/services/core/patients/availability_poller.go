package patients

import (
	"context"
	"sus-form-service/internal/app/contracts"
	"sus-form-service/internal/pkg/constvars"
	"sync"
	"sync/atomic"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultPollCronSpec = "@every 3s"

// AvailabilityPoller asks the FHIR server for patients until it has some, then stops polling
// and reports ready. With maxAttempts > 0 it gives up after that many failed checks.
type AvailabilityPoller struct {
	log         *zap.Logger
	client      contracts.PatientFhirClient
	spec        string
	maxAttempts int

	mu       sync.Mutex
	attempts int
	done     bool
	cron     *cron.Cron
	entryID  cron.EntryID
	ready    atomic.Bool
	runCtx   context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
}

func NewAvailabilityPoller(log *zap.Logger, client contracts.PatientFhirClient, spec string, maxAttempts int) *AvailabilityPoller {
	if spec == "" {
		spec = defaultPollCronSpec
	}
	return &AvailabilityPoller{
		log:         log,
		client:      client,
		spec:        spec,
		maxAttempts: maxAttempts,
	}
}

// Start checks once right away and schedules the remaining checks on the cron spec.
func (p *AvailabilityPoller) Start(ctx context.Context) {
	p.runCtx, p.cancel = context.WithCancel(ctx)

	if p.checkOnce(p.runCtx) {
		return
	}

	c := cron.New()
	entryID, err := c.AddFunc(p.spec, func() { p.checkOnce(p.runCtx) })
	if err != nil {
		p.log.Warn("patients.poller: invalid cron spec, falling back to default",
			zap.String("spec", p.spec),
			zap.Error(err),
		)
		c = cron.New()
		entryID, _ = c.AddFunc(defaultPollCronSpec, func() { p.checkOnce(p.runCtx) })
	}

	p.mu.Lock()
	p.cron = c
	p.entryID = entryID
	p.mu.Unlock()

	c.Start()
}

// Stop cancels in-flight checks and waits for the scheduler to finish.
func (p *AvailabilityPoller) Stop() {
	p.stopOnce.Do(func() {
		if p.cancel != nil {
			p.cancel()
		}
		p.mu.Lock()
		c := p.cron
		p.mu.Unlock()
		if c != nil {
			<-c.Stop().Done()
		}
	})
}

func (p *AvailabilityPoller) IsReady() bool {
	return p.ready.Load()
}

// checkOnce reports whether polling is finished, either because patients were found or because
// the attempt budget is spent.
func (p *AvailabilityPoller) checkOnce(ctx context.Context) bool {
	p.mu.Lock()
	if p.done {
		p.mu.Unlock()
		return true
	}
	p.attempts++
	attempt := p.attempts
	p.mu.Unlock()

	patients, err := p.client.FindPatients(ctx)
	switch {
	case err != nil:
		p.log.Info("patients.poller: waiting for FHIR server",
			zap.Int(constvars.LoggingAttemptKey, attempt),
			zap.Error(err),
		)
	case len(patients) == 0:
		p.log.Info("patients.poller: FHIR server reachable but holds no patients yet",
			zap.Int(constvars.LoggingAttemptKey, attempt),
		)
	default:
		p.ready.Store(true)
		p.log.Info("patients.poller: FHIR server has patients, polling stopped",
			zap.Int(constvars.LoggingAttemptKey, attempt),
			zap.Int("count", len(patients)),
		)
		p.finish()
		return true
	}

	if p.maxAttempts > 0 && attempt >= p.maxAttempts {
		p.log.Warn("patients.poller: giving up after max attempts",
			zap.Int(constvars.LoggingAttemptKey, attempt),
		)
		p.finish()
		return true
	}
	return false
}

func (p *AvailabilityPoller) finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done = true
	if p.cron != nil {
		p.cron.Remove(p.entryID)
	}
}

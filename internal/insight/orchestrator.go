package insight

import (
	"context"
	"time"

	"lynq/internal/agent"
	"lynq/internal/core"
	applog "lynq/internal/log"
)

// Generator issues a generation call to the agent service.
type Generator interface {
	Generate(ctx context.Context, env agent.Envelope) (*agent.Response, error)
}

// Publisher announces completed fetches to interested consumers. Publish
// failures are logged and never affect the session outcome.
type Publisher interface {
	PublishInsightCompleted(ctx context.Context, domain string, success bool, detail string) error
}

// Orchestrator owns the write side of the session store: it issues at most
// one agent call per domain at a time and records every outcome as session
// state. Errors never propagate to callers; they become session text.
type Orchestrator struct {
	store     *Store
	generator Generator
	publisher Publisher
	logger    *applog.Logger
	timeout   time.Duration
}

// NewOrchestrator wires the orchestrator. publisher may be nil when no
// event broker is configured. A zero timeout disables the per-request
// deadline and leaves bounding to the generator's own client timeout.
func NewOrchestrator(store *Store, generator Generator, publisher Publisher, timeout time.Duration, logger *applog.Logger) *Orchestrator {
	if logger == nil {
		logger = applog.New(applog.Config{Component: applog.ComponentInsight})
	}
	return &Orchestrator{
		store:     store,
		generator: generator,
		publisher: publisher,
		logger:    logger.WithComponent(applog.ComponentInsight),
		timeout:   timeout,
	}
}

// Store exposes the session store for read-side consumers.
func (o *Orchestrator) Store() *Store {
	return o.store
}

// RequestInsight starts an asynchronous fetch for the domain and returns
// whether a new fetch was started. A false return means a fetch is already
// in flight and the call was suppressed; the caller observes progress
// through the store either way.
//
// The fetch outlives the caller's context on purpose: a view navigating
// away must not cancel a refresh other views are waiting on.
func (o *Orchestrator) RequestInsight(ctx context.Context, d core.Domain, profileContext any) bool {
	if !o.store.BeginLoad(d) {
		o.logger.DebugContext(ctx, "Insight fetch already in flight",
			applog.FieldDomain, string(d))
		return false
	}

	go o.fetch(context.WithoutCancel(ctx), d, profileContext)
	return true
}

func (o *Orchestrator) fetch(ctx context.Context, d core.Domain, profileContext any) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	resp, err := o.generator.Generate(ctx, agent.Envelope{
		AgentType: d.AgentType(),
		UserData:  profileContext,
	})
	if err != nil {
		msg := agent.FailureMessage(err)
		o.store.Fail(d, msg)
		o.logger.WarnContext(ctx, "Insight fetch failed",
			applog.FieldDomain, string(d),
			applog.FieldError, err)
		o.publish(ctx, d, false, msg)
		return
	}

	o.store.Complete(d, resp.Output)
	o.logger.InfoContext(ctx, "Insight fetch completed",
		applog.FieldDomain, string(d))
	o.publish(ctx, d, true, "")
}

func (o *Orchestrator) publish(ctx context.Context, d core.Domain, success bool, detail string) {
	if o.publisher == nil {
		return
	}
	if err := o.publisher.PublishInsightCompleted(ctx, string(d), success, detail); err != nil {
		o.logger.WarnContext(ctx, "Failed to publish insight event",
			applog.FieldDomain, string(d),
			applog.FieldError, err)
	}
}

package service

import (
	"context"

	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/alexanderramin/pomo/internal/stats"
	"github.com/alexanderramin/pomo/internal/store"
	"github.com/alexanderramin/pomo/internal/timer"
)

type orchestrator struct {
	cfg       domain.Config
	countdown Countdown
	store     store.Store
	prompter  Prompter
	clock     timer.Clock
}

func NewOrchestrator(cfg domain.Config, countdown Countdown, st store.Store, prompter Prompter, clock timer.Clock) Orchestrator {
	return &orchestrator{cfg: cfg, countdown: countdown, store: st, prompter: prompter, clock: clock}
}

func (o *orchestrator) RunSession(ctx context.Context, typ domain.SessionType, minutes int) (domain.SessionRecord, error) {
	out, err := o.countdown.Run(ctx, minutes, typ)
	if err != nil {
		return domain.SessionRecord{}, err
	}

	// End-time attribution: a countdown straddling midnight belongs to
	// the day it ended in.
	rec := domain.SessionRecord{
		Type:      out.Type,
		Duration:  out.Duration,
		Completed: out.Completed,
		Timestamp: domain.FormatTimestamp(o.clock.Now()),
	}

	// An interrupted run arrives here with ctx already cancelled, and
	// interruption is a normal outcome that must still be recorded, so
	// the write runs on a detached context.
	if err := o.store.Append(context.WithoutCancel(ctx), rec); err != nil {
		return domain.SessionRecord{}, err
	}
	return rec, nil
}

func (o *orchestrator) RunCycle(ctx context.Context) error {
	work, err := o.RunSession(ctx, domain.SessionWork, o.cfg.WorkMinutes)
	if err != nil {
		return err
	}
	if !work.Completed {
		return nil
	}

	ok, err := o.prompter.ConfirmBreak(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	_, err = o.RunSession(ctx, domain.SessionBreak, o.cfg.BreakMinutes)
	return err
}

func (o *orchestrator) Stats(ctx context.Context) (domain.StatsSnapshot, error) {
	log, err := o.store.Load(ctx)
	if err != nil {
		return domain.StatsSnapshot{}, err
	}
	return stats.Compute(log, o.clock.Now())
}

func (o *orchestrator) History(ctx context.Context, days int) (domain.SessionLog, error) {
	log, err := o.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if days <= 0 {
		return log, nil
	}

	cutoff := stats.DayStart(o.clock.Now()).AddDate(0, 0, -(days - 1))
	recent := domain.SessionLog{}
	for i, rec := range log {
		ts, err := domain.ParseTimestamp(rec.Timestamp)
		if err != nil {
			return nil, &stats.RecordParseError{Index: i, Timestamp: rec.Timestamp, Err: err}
		}
		if !ts.Before(cutoff) {
			recent = append(recent, rec)
		}
	}
	return recent, nil
}

package monitoring

import (
	"sync"
	"time"

	"github.com/sarchlab/landersim/lander"
	"github.com/sarchlab/landersim/sim"
)

// A ProgressBar is a tracker of the progress
type ProgressBar struct {
	sync.Mutex
	ID         string
	Name       string
	StartTime  time.Time
	Total      uint64
	Finished   uint64
	InProgress uint64
}

// ProgressBarStatus is a copy of a progress bar for reporting.
type ProgressBarStatus struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	StartTime  time.Time `json:"start_time"`
	Total      uint64    `json:"total"`
	Finished   uint64    `json:"finished"`
	InProgress uint64    `json:"in_progress"`
}

// Status returns a copy of the bar.
func (b *ProgressBar) Status() ProgressBarStatus {
	b.Lock()
	defer b.Unlock()

	return ProgressBarStatus{
		ID:         b.ID,
		Name:       b.Name,
		StartTime:  b.StartTime,
		Total:      b.Total,
		Finished:   b.Finished,
		InProgress: b.InProgress,
	}
}

// IncrementInProgress adds the number of in-progress element.
func (b *ProgressBar) IncrementInProgress(amount uint64) {
	b.Lock()
	defer b.Unlock()

	b.InProgress += amount
}

// IncrementFinished add a certain amount to finished element.
func (b *ProgressBar) IncrementFinished(amount uint64) {
	b.Lock()
	defer b.Unlock()

	b.Finished += amount
}

// MoveInProgressToFinished reduces the number of in progress item by a certain
// amount and increase the finished item by the same amount.
func (b *ProgressBar) MoveInProgressToFinished(amount uint64) {
	b.Lock()
	defer b.Unlock()

	b.InProgress -= amount
	b.Finished += amount
}

// AttemptProgress is a hook that shows the attempts of the current run as a
// progress bar.
type AttemptProgress struct {
	monitor *Monitor

	lock sync.Mutex
	bar  *ProgressBar
}

// NewAttemptProgress creates an AttemptProgress that reports to a monitor.
func NewAttemptProgress(m *Monitor) *AttemptProgress {
	return &AttemptProgress{monitor: m}
}

// Func updates the progress bar.
func (p *AttemptProgress) Func(ctx sim.HookCtx) {
	info, ok := ctx.Item.(lander.AttemptInfo)
	if !ok {
		return
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	switch ctx.Pos {
	case lander.HookPosReset:
		p.complete()
	case lander.HookPosAttemptBegin:
		if p.bar == nil {
			p.bar = p.monitor.CreateProgressBar("Attempts",
				uint64(info.Limits.MaxAttempts))
		}

		p.bar.IncrementInProgress(1)
	case lander.HookPosCrashed:
		if p.bar != nil {
			p.bar.MoveInProgressToFinished(1)
		}
	case lander.HookPosLanded:
		if p.bar != nil {
			p.bar.MoveInProgressToFinished(1)
		}

		p.complete()
	case lander.HookPosExhausted:
		p.complete()
	}
}

func (p *AttemptProgress) complete() {
	if p.bar == nil {
		return
	}

	p.monitor.CompleteProgressBar(p.bar)
	p.bar = nil
}

package recording

import (
	"sync"

	"github.com/guptarohit/asciigraph"
	"github.com/sarchlab/landersim/lander"
	"github.com/sarchlab/landersim/sim"
)

// ImpactTrace is a hook that keeps the impact velocity of every finished
// attempt of the current run.
type ImpactTrace struct {
	lock       sync.Mutex
	velocities []float64
}

// NewImpactTrace creates an empty ImpactTrace.
func NewImpactTrace() *ImpactTrace {
	return &ImpactTrace{}
}

// Func records the hook.
func (t *ImpactTrace) Func(ctx sim.HookCtx) {
	info, ok := ctx.Item.(lander.AttemptInfo)
	if !ok {
		return
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	switch ctx.Pos {
	case lander.HookPosReset:
		t.velocities = nil
	case lander.HookPosLanded, lander.HookPosCrashed:
		t.velocities = append(t.velocities, info.ImpactVelocity)
	}
}

// Velocities returns the impact velocities in attempt order.
func (t *ImpactTrace) Velocities() []float64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return append([]float64(nil), t.velocities...)
}

// Plot draws the impact velocities as a chart with the landing threshold as
// a second series. It returns an empty string if no attempt has finished.
func (t *ImpactTrace) Plot(threshold float64) string {
	v := t.Velocities()
	if len(v) == 0 {
		return ""
	}

	limit := make([]float64, len(v))
	for i := range limit {
		limit[i] = threshold
	}

	return asciigraph.PlotMany([][]float64{v, limit},
		asciigraph.Height(8),
		asciigraph.SeriesColors(asciigraph.Default, asciigraph.Green),
		asciigraph.Caption("impact velocity per attempt"))
}

package recording

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/landersim/lander"
	"github.com/sarchlab/landersim/sim"
)

var _ = Describe("ImpactTrace", func() {
	var trace *ImpactTrace

	BeforeEach(func() {
		trace = NewImpactTrace()
	})

	invoke := func(pos *sim.HookPos, v float64) {
		trace.Func(sim.HookCtx{
			Pos:  pos,
			Item: lander.AttemptInfo{ImpactVelocity: v},
		})
	}

	It("should keep the impact velocities in order", func() {
		invoke(lander.HookPosAttemptBegin, 0)
		invoke(lander.HookPosCrashed, 12.5)
		invoke(lander.HookPosAttemptBegin, 0)
		invoke(lander.HookPosLanded, 3.5)

		Expect(trace.Velocities()).To(Equal([]float64{12.5, 3.5}))
	})

	It("should forget the velocities on reset", func() {
		invoke(lander.HookPosCrashed, 12.5)
		invoke(lander.HookPosReset, 0)

		Expect(trace.Velocities()).To(BeEmpty())
		Expect(trace.Plot(4)).To(BeEmpty())
	})

	It("should plot the velocities", func() {
		invoke(lander.HookPosCrashed, 12.5)
		invoke(lander.HookPosCrashed, 8)
		invoke(lander.HookPosLanded, 3.5)

		Expect(trace.Plot(4)).To(ContainSubstring("impact velocity per attempt"))
	})

	It("should ignore hooks without attempt information", func() {
		trace.Func(sim.HookCtx{Pos: lander.HookPosCrashed, Item: 1})

		Expect(trace.Velocities()).To(BeEmpty())
	})
})

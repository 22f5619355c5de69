package recording

import (
	"bytes"
	"log"

	"github.com/sarchlab/landersim/lander"
	"github.com/sarchlab/landersim/sim"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ControllerLogger", func() {
	var (
		buf    *bytes.Buffer
		logger *ControllerLogger
	)

	BeforeEach(func() {
		buf = new(bytes.Buffer)
		logger = NewControllerLogger(log.New(buf, "", 0))
	})

	It("should print the end-of-run notices", func() {
		info := lander.AttemptInfo{
			Time:   8.2,
			Limits: lander.AttemptLimits{AttemptsRun: 4, MaxAttempts: 5},
		}

		logger.Func(sim.HookCtx{Pos: lander.HookPosLanded, Item: info})
		logger.Func(sim.HookCtx{Pos: lander.HookPosExhausted, Item: info})

		Expect(buf.String()).To(ContainSubstring(
			"successful landing at attempt 4"))
		Expect(buf.String()).To(ContainSubstring(
			"simulation ended, no further attempts"))
	})

	It("should only print attempt starts when verbose", func() {
		info := lander.AttemptInfo{Limits: lander.AttemptLimits{AttemptsRun: 1}}

		logger.Func(sim.HookCtx{Pos: lander.HookPosAttemptBegin, Item: info})
		Expect(buf.String()).To(BeEmpty())

		logger.Verbose = true
		logger.Func(sim.HookCtx{Pos: lander.HookPosAttemptBegin, Item: info})
		Expect(buf.String()).To(ContainSubstring("attempt 1/0"))
	})

	It("should discard the output without a logger", func() {
		quiet := NewControllerLogger(nil)

		Expect(func() {
			quiet.Func(sim.HookCtx{
				Pos:  lander.HookPosLanded,
				Item: lander.AttemptInfo{},
			})
		}).NotTo(Panic())
	})
})

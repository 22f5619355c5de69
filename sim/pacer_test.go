package sim

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("WallClockPacer", func() {
	var (
		mockCtrl *gomock.Controller
		pacer    *WallClockPacer
		clock    time.Time
		slept    []time.Duration
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		clock = time.Unix(0, 0)
		slept = nil

		pacer = NewWallClockPacer(1)
		pacer.now = func() time.Time { return clock }
		pacer.sleep = func(d time.Duration) {
			slept = append(slept, d)
			clock = clock.Add(d)
		}
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	eventAt := func(t VTimeInSec) *MockEvent {
		evt := NewMockEvent(mockCtrl)
		evt.EXPECT().Time().Return(t).AnyTimes()

		return evt
	}

	It("should not sleep before the first event", func() {
		pacer.Func(HookCtx{Pos: HookPosBeforeEvent, Item: eventAt(0.05)})
		Expect(slept).To(BeEmpty())
	})

	It("should sleep for the virtual gap between events", func() {
		pacer.Func(HookCtx{Pos: HookPosBeforeEvent, Item: eventAt(0.05)})
		pacer.Func(HookCtx{Pos: HookPosBeforeEvent, Item: eventAt(0.10)})

		Expect(slept).To(HaveLen(1))
		Expect(slept[0]).To(BeNumerically("~", 50*time.Millisecond, time.Microsecond))
	})

	It("should subtract the time spent handling the previous event", func() {
		pacer.Func(HookCtx{Pos: HookPosBeforeEvent, Item: eventAt(1)})
		clock = clock.Add(300 * time.Millisecond)
		pacer.Func(HookCtx{Pos: HookPosBeforeEvent, Item: eventAt(1.8)})

		Expect(slept).To(HaveLen(1))
		Expect(slept[0]).To(BeNumerically("~", 500*time.Millisecond, time.Microsecond))
	})

	It("should scale by speed", func() {
		pacer.speed = 2
		pacer.Func(HookCtx{Pos: HookPosBeforeEvent, Item: eventAt(0)})
		pacer.Func(HookCtx{Pos: HookPosBeforeEvent, Item: eventAt(1)})

		Expect(slept[0]).To(BeNumerically("~", 500*time.Millisecond, time.Microsecond))
	})

	It("should ignore after-event positions", func() {
		pacer.Func(HookCtx{Pos: HookPosAfterEvent, Item: eventAt(0)})
		Expect(pacer.started).To(BeFalse())
	})
})

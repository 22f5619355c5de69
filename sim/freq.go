package sim

import (
	"log"
	"math"
	"time"
)

// Freq is a rate of ticks per virtual second.
type Freq float64

// Hz is one tick per second.
const Hz Freq = 1

// FreqOfPeriod returns the frequency that ticks once every period.
func FreqOfPeriod(period time.Duration) Freq {
	if period <= 0 {
		log.Panic("period must be positive")
	}

	return Freq(float64(time.Second) / float64(period))
}

// Period returns the time between two consecutive ticks
func (f Freq) Period() VTimeInSec {
	if f == 0 {
		log.Panic("frequency cannot be 0")
	}

	return VTimeInSec(1.0 / f)
}

// ThisTick rounds now up to a tick boundary.
//
//	           Input
//	           (          ]
//	|----------|----------|----------|----->
//	                      |
//	                      Output
func (f Freq) ThisTick(now VTimeInSec) VTimeInSec {
	if math.IsNaN(float64(now)) {
		log.Panic("invalid time")
	}

	count := math.Ceil(math.Round(float64(now)*10*float64(f)) / 10)

	return VTimeInSec(count / float64(f))
}

// NCyclesLater returns the tick boundary n cycles after now. Rounding to the
// boundary keeps repeated additions of a period from drifting.
func (f Freq) NCyclesLater(n int, now VTimeInSec) VTimeInSec {
	if math.IsNaN(float64(now)) {
		log.Panic("invalid time")
	}

	return f.ThisTick(now + VTimeInSec(Freq(n)/f))
}

// DurationToVTime converts a wall-clock duration to virtual seconds.
func DurationToVTime(d time.Duration) VTimeInSec {
	return VTimeInSec(d.Seconds())
}

// Duration converts virtual seconds to a wall-clock duration.
func (t VTimeInSec) Duration() time.Duration {
	return time.Duration(float64(t) * float64(time.Second))
}

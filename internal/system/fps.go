package system

import "time"

// halveAfter bounds the counters so the average follows recent frames.
const halveAfter = 60000 * time.Second

// FrameCounter averages frames per second over whole elapsed seconds.
type FrameCounter struct {
	frames  uint64
	elapsed time.Duration
}

func (f *FrameCounter) Tick(dt time.Duration) {
	f.frames++
	f.elapsed += dt
	if f.elapsed >= halveAfter {
		f.frames /= 2
		f.elapsed /= 2
	}
}

// Average returns 0 until a full second has passed.
func (f *FrameCounter) Average() float64 {
	secs := int64(f.elapsed / time.Second)
	if secs == 0 {
		return 0
	}
	return float64(f.frames) / float64(secs)
}

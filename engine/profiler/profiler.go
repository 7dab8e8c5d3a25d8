package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame rate, draw call counts, and memory statistics.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	drawCallCount  int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastTotalAlloc uint64
}

// NewProfiler creates a new Profiler with a 1 second update interval.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
}

// SetUpdateInterval changes how often stats are logged. Intervals below
// 100ms are clamped to avoid log spam.
//
// Parameters:
//   - interval: time between log lines
func (p *Profiler) SetUpdateInterval(interval time.Duration) {
	if interval < 100*time.Millisecond {
		interval = 100 * time.Millisecond
	}
	p.updateInterval = interval
}

// Tick should be called once per frame with the number of draw calls the
// frame submitted. Logs FPS, average draw calls per frame, heap usage,
// allocation rate, and GC count when the update interval has elapsed.
//
// Parameters:
//   - drawCalls: draw calls submitted this frame
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(drawCalls int) bool {
	p.frameCount++
	p.drawCallCount += drawCalls
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()
	avgDraws := float64(p.drawCallCount) / float64(p.frameCount)

	runtime.ReadMemStats(&p.memStats)
	heapMB := float64(p.memStats.Alloc) / 1024 / 1024
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	log.Printf("[Profiler] FPS: %.2f | Draws/frame: %.1f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d",
		fps, avgDraws, heapMB, allocRateMB, p.memStats.NumGC)

	p.frameCount = 0
	p.drawCallCount = 0
	p.lastTime = currentTime
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

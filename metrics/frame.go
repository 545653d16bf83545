// SPDX-License-Identifier: MIT

package metrics

import (
	"sync"
	"time"
)

// Frame holds the statistics of one rendered frame plus running draw totals.
//
// The exported fields belong to the render goroutine and are unsynchronized.
// The draw totals are guarded by mu; never read them directly.
type Frame struct {
	FrameCount    int64
	BoxTests      int
	BoxRejects    int
	SphereTests   int
	SphereRejects int
	TilesSelected int
	SelectTime    time.Duration

	mu        sync.Mutex    // guards drawTime, drawCount
	drawTime  time.Duration // written by the draw goroutine
	drawCount int64
}

// BeginFrame advances FrameCount and clears the per-frame render fields.
// Render goroutine only.
func (f *Frame) BeginFrame() {
	f.FrameCount++
	f.BoxTests = 0
	f.BoxRejects = 0
	f.SphereTests = 0
	f.SphereRejects = 0
	f.TilesSelected = 0
	f.SelectTime = 0
}

// CountBoxTest records one box-frustum test. Render goroutine only.
func (f *Frame) CountBoxTest(visible bool) {
	f.BoxTests++
	if !visible {
		f.BoxRejects++
	}
}

// CountSphereTest records one sphere-frustum test. Render goroutine only.
func (f *Frame) CountSphereTest(visible bool) {
	f.SphereTests++
	if !visible {
		f.SphereRejects++
	}
}

// AddDrawTime accumulates the duration of one draw. Safe from any goroutine.
func (f *Frame) AddDrawTime(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.drawTime += d
	f.drawCount++
}

// DrawStats returns the accumulated draw time and number of draws. Safe from any
// goroutine.
func (f *Frame) DrawStats() (total time.Duration, count int64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.drawTime, f.drawCount
}

// Reset clears every field, including the draw totals. The render goroutine calls it
// while no draw is in flight.
func (f *Frame) Reset() {
	f.BeginFrame()
	f.FrameCount = 0

	f.mu.Lock()
	f.drawTime = 0
	f.drawCount = 0
	f.mu.Unlock()
}

// Publish exports the render fields of the current frame to Prometheus.
// Render goroutine only.
func (f *Frame) Publish() {
	instrumentCullTests(volumeBox, f.BoxTests, f.BoxRejects)
	instrumentCullTests(volumeSphere, f.SphereTests, f.SphereRejects)
	instrumentTilesSelected(f.TilesSelected)
	instrumentSelectLatency(f.SelectTime)
}

// SPDX-License-Identifier: MIT
package metrics_test

import (
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/globekit/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameRenderFields(t *testing.T) {
	var f metrics.Frame
	f.BeginFrame()
	f.CountBoxTest(true)
	f.CountBoxTest(false)
	f.CountBoxTest(false)
	f.CountSphereTest(false)
	f.TilesSelected = 4
	f.SelectTime = time.Millisecond

	assert.Equal(t, int64(1), f.FrameCount)
	assert.Equal(t, 3, f.BoxTests)
	assert.Equal(t, 2, f.BoxRejects)
	assert.Equal(t, 1, f.SphereTests)
	assert.Equal(t, 1, f.SphereRejects)

	f.BeginFrame()
	assert.Equal(t, int64(2), f.FrameCount)
	assert.Zero(t, f.BoxTests)
	assert.Zero(t, f.BoxRejects)
	assert.Zero(t, f.TilesSelected)
	assert.Zero(t, f.SelectTime)
}

func TestFrameDrawFieldsFromAnotherGoroutine(t *testing.T) {
	var (
		f  metrics.Frame
		wg sync.WaitGroup
	)
	const draws = 100

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < draws; i++ {
			f.AddDrawTime(time.Microsecond)
		}
	}()

	// the render goroutine keeps working on its own fields meanwhile
	for i := 0; i < draws; i++ {
		f.BeginFrame()
		f.CountBoxTest(i%2 == 0)
		_, _ = f.DrawStats()
	}
	wg.Wait()

	total, count := f.DrawStats()
	assert.Equal(t, int64(draws), count)
	assert.Equal(t, draws*time.Microsecond, total)
	assert.Equal(t, int64(draws), f.FrameCount)

	f.Reset()
	total, count = f.DrawStats()
	assert.Zero(t, total)
	assert.Zero(t, count)
	assert.Zero(t, f.FrameCount)
}

// metricValue reads a counter or gauge value, or a histogram sample count, from the
// default registry. volume selects a labelled child; empty means unlabelled.
func metricValue(t *testing.T, name, volume string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if volume != "" {
				match := false
				for _, lp := range m.GetLabel() {
					if lp.GetName() == "volume" && lp.GetValue() == volume {
						match = true
					}
				}
				if !match {
					continue
				}
			}
			switch {
			case m.GetCounter() != nil:
				return m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				return m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				return float64(m.GetHistogram().GetSampleCount())
			}
		}
	}

	return 0
}

func TestFramePublish(t *testing.T) {
	boxTests := metricValue(t, "globekit_cull_tests_total", "box")
	boxRejects := metricValue(t, "globekit_cull_rejects_total", "box")
	sphereTests := metricValue(t, "globekit_cull_tests_total", "sphere")
	observations := metricValue(t, "globekit_select_seconds", "")

	var f metrics.Frame
	f.BeginFrame()
	for i := 0; i < 5; i++ {
		f.CountBoxTest(i < 3)
		f.CountSphereTest(true)
	}
	f.TilesSelected = 7
	f.SelectTime = 2 * time.Millisecond
	f.Publish()

	assert.Equal(t, boxTests+5, metricValue(t, "globekit_cull_tests_total", "box"))
	assert.Equal(t, boxRejects+2, metricValue(t, "globekit_cull_rejects_total", "box"))
	assert.Equal(t, sphereTests+5, metricValue(t, "globekit_cull_tests_total", "sphere"))
	assert.Equal(t, 7.0, metricValue(t, "globekit_tiles_selected", ""))
	assert.Equal(t, observations+1, metricValue(t, "globekit_select_seconds", ""))
}

// SPDX-License-Identifier: MIT

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	volumeLabel = "volume"

	volumeBox    = "box"
	volumeSphere = "sphere"
)

var (
	cullTests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "globekit_cull_tests_total",
		Help: "The number of bounding volumes tested against a frustum.",
	}, []string{volumeLabel})

	cullRejects = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "globekit_cull_rejects_total",
		Help: "The number of bounding volumes found outside a frustum.",
	}, []string{volumeLabel})

	tilesSelected = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "globekit_tiles_selected",
		Help: "The number of tiles selected in the last frame.",
	})

	selectLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "globekit_select_seconds",
		Help:    "The time to select the visible tiles of a frame.",
		Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
	})
)

func instrumentCullTests(volume string, tests, rejects int) {
	labels := prometheus.Labels{volumeLabel: volume}
	cullTests.With(labels).Add(float64(tests))
	cullRejects.With(labels).Add(float64(rejects))
}

func instrumentTilesSelected(n int) {
	tilesSelected.Set(float64(n))
}

func instrumentSelectLatency(d time.Duration) {
	selectLatency.Observe(d.Seconds())
}

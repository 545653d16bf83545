// Package metrics collects per-frame culling statistics and exports them to
// Prometheus.
//
// Frame splits its fields by writer instead of guarding everything with one lock:
//
//   - render fields (FrameCount, the volume test counters, TilesSelected,
//     SelectTime) are written only by the goroutine that culls and selects tiles,
//     and are read by that goroutine without synchronization;
//   - draw fields (accumulated draw time and draw count) may be written from a
//     separate draw goroutine, so they sit behind a mutex and are reached only
//     through AddDrawTime and DrawStats.
//
// Publish pushes the render fields of the frame just finished into the package's
// Prometheus collectors, which are registered with the default registry.
package metrics

// Package metrics provides observability hooks for site generation.
package metrics

import "time"

// Recorder defines the generation metrics hooks. Implementations may forward
// to Prometheus or drop everything (NoopRecorder), so metrics stay an
// optional injection.
type Recorder interface {
	ObserveBuildDuration(d time.Duration)
	IncPagesRendered(n int)
	IncAssetsCopied(n int)
	IncWarnings(kind string, n int)
	IncRebuilds()
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not
// configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveBuildDuration(time.Duration) {}
func (NoopRecorder) IncPagesRendered(int)               {}
func (NoopRecorder) IncAssetsCopied(int)                {}
func (NoopRecorder) IncWarnings(string, int)            {}
func (NoopRecorder) IncRebuilds()                       {}

package report

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/geosync/pkg/domain/interfaces"
	"github.com/m-mizutani/geosync/pkg/domain/model"
	"github.com/m-mizutani/geosync/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// TextfileReporter writes run metrics in the Prometheus text format, to be
// picked up by node_exporter's textfile collector
type TextfileReporter struct {
	path string
}

var _ interfaces.RunReporter = (*TextfileReporter)(nil)

// NewTextfileReporter creates a reporter writing to path
func NewTextfileReporter(path string) *TextfileReporter {
	return &TextfileReporter{path: path}
}

// Report writes the metrics of result, replacing the previous file
func (r *TextfileReporter) Report(ctx context.Context, result *model.RunResult) error {
	registry := prometheus.NewRegistry()

	success := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: types.AppName,
		Name:      "last_run_success",
		Help:      "1 if the last run refreshed every rule file, 0 otherwise",
	})
	timestamp := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: types.AppName,
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix time the last run started",
	})
	duration := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: types.AppName,
		Name:      "last_run_duration_seconds",
		Help:      "Wall time of the last run",
	})
	synced := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: types.AppName,
		Name:      "synced_root_directories",
		Help:      "Number of target root directories updated by the last run",
	})
	artifacts := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: types.AppName,
		Name:      "artifact_download_success",
		Help:      "1 if the artifact was downloaded in the last run, 0 otherwise",
	}, []string{"artifact"})
	artifactBytes := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: types.AppName,
		Name:      "artifact_download_bytes",
		Help:      "Size of each artifact downloaded in the last run, labeled by the strategy that served it",
	}, []string{"artifact", "strategy"})

	registry.MustRegister(success, timestamp, duration, synced, artifacts, artifactBytes)

	if result.Success {
		success.Set(1)
	}
	timestamp.Set(float64(result.StartedAt.Unix()))
	duration.Set(result.Duration.Seconds())
	synced.Set(float64(len(result.Targets)))
	for _, a := range result.Artifacts {
		if a.Err != nil {
			artifacts.WithLabelValues(a.Key).Set(0)
			continue
		}
		artifacts.WithLabelValues(a.Key).Set(1)
		artifactBytes.WithLabelValues(a.Key, a.Strategy).Set(float64(a.Bytes))
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return goerr.Wrap(err, "failed to create metrics directory", goerr.V("path", r.path))
	}
	if err := prometheus.WriteToTextfile(r.path, registry); err != nil {
		return goerr.Wrap(err, "failed to write metrics file", goerr.V("path", r.path))
	}

	ctxlog.From(ctx).Debug("metrics written", "path", r.path)
	return nil
}

package metrics

import (
	"context"
	"strings"
	"time"

	"github.com/smallbiznis/invoicepilot/internal/config"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// RenderMetrics captures low-cardinality invoice rendering metrics.
type RenderMetrics struct {
	renders  metric.Int64Counter
	duration metric.Float64Histogram
}

// NewRenderMetrics creates the rendering instruments.
func NewRenderMetrics(cfg config.Config, provider metric.MeterProvider) (*RenderMetrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "invoicepilot"
	}
	meter := provider.Meter(name + "/render")

	renders, err := meter.Int64Counter("invoice.render.total")
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("invoice.render.duration_ms")
	if err != nil {
		return nil, err
	}
	return &RenderMetrics{renders: renders, duration: duration}, nil
}

// RecordRender records one render attempt by template name and outcome.
func (m *RenderMetrics) RecordRender(ctx context.Context, template string, ok bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("template", template),
		attribute.Bool("ok", ok),
	)
	m.renders.Add(ctx, 1, attrs)
	m.duration.Record(ctx, float64(elapsed.Milliseconds()), attrs)
}

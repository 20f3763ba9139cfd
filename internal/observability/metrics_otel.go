package observability

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

const meterName = "matchodds"

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
)

// MetricsConfig controls how metrics are exported.
type MetricsConfig struct {
	Enabled      bool
	ServiceName  string
	OTLPEndpoint string
	OTLPInsecure bool
}

// SetupMetrics wires a Prometheus reader and, when an endpoint is set, an OTLP
// reader. It returns the Recorder, the /metrics handler (nil when disabled)
// and a shutdown function.
func SetupMetrics(ctx context.Context, cfg MetricsConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "matchodds-api"
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}
	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OTLPEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OTLPEndpoint, cfg.OTLPInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(attribute.String("service.name", cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}
	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)
	inst, err := newOtelInstruments(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	return newRecorder(inst), promHandler, provider.Shutdown, nil
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	exp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(15*time.Second)), nil
}

type otelInstruments struct {
	requests       metric.Int64Counter
	requestLatency metric.Float64Histogram
	scrapes        metric.Int64Counter
	scrapeErrors   metric.Int64Counter
	scrapeLatency  metric.Float64Histogram
	cacheLookups   metric.Int64Counter
	reconciled     metric.Int64Counter
	jobs           metric.Int64Counter
	jobFixtures    metric.Int64Counter
	jobLatency     metric.Float64Histogram
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(meterName)

	var (
		inst otelInstruments
		err  error
	)
	if inst.requests, err = meter.Int64Counter("http_requests_total"); err != nil {
		return nil, err
	}
	if inst.requestLatency, err = meter.Float64Histogram("http_request_duration_ms"); err != nil {
		return nil, err
	}
	if inst.scrapes, err = meter.Int64Counter("scrapes_total"); err != nil {
		return nil, err
	}
	if inst.scrapeErrors, err = meter.Int64Counter("scrape_errors_total"); err != nil {
		return nil, err
	}
	if inst.scrapeLatency, err = meter.Float64Histogram("scrape_duration_ms"); err != nil {
		return nil, err
	}
	if inst.cacheLookups, err = meter.Int64Counter("cache_lookups_total"); err != nil {
		return nil, err
	}
	if inst.reconciled, err = meter.Int64Counter("odds_reconciled_quotes_total"); err != nil {
		return nil, err
	}
	if inst.jobs, err = meter.Int64Counter("bulk_jobs_total"); err != nil {
		return nil, err
	}
	if inst.jobFixtures, err = meter.Int64Counter("bulk_job_fixtures_total"); err != nil {
		return nil, err
	}
	if inst.jobLatency, err = meter.Float64Histogram("bulk_job_duration_ms"); err != nil {
		return nil, err
	}
	return &inst, nil
}

func (o *otelInstruments) recordHTTPRequest(ctx context.Context, method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	)
	o.requests.Add(ctx, 1, attrs)
	o.requestLatency.Record(ctx, float64(duration.Milliseconds()), attrs)
}

func (o *otelInstruments) recordScrape(ctx context.Context, source string, err error, elapsed time.Duration) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(AttrSource, source))
	o.scrapes.Add(ctx, 1, attrs)
	o.scrapeLatency.Record(ctx, float64(elapsed.Milliseconds()), attrs)
	if err != nil {
		o.scrapeErrors.Add(ctx, 1, attrs)
	}
}

func (o *otelInstruments) recordCacheLookup(ctx context.Context, kind string, hit bool) {
	if o == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	o.cacheLookups.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrKind, kind),
		attribute.String(AttrResult, result),
	))
}

func (o *otelInstruments) recordReconcile(ctx context.Context, matched, unmatched int) {
	if o == nil {
		return
	}
	o.reconciled.Add(ctx, int64(matched), metric.WithAttributes(attribute.String(AttrResult, "matched")))
	o.reconciled.Add(ctx, int64(unmatched), metric.WithAttributes(attribute.String(AttrResult, "unmatched")))
}

func (o *otelInstruments) recordJob(ctx context.Context, status string, scraped, failed int, elapsed time.Duration) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(AttrStatus, status))
	o.jobs.Add(ctx, 1, attrs)
	o.jobLatency.Record(ctx, float64(elapsed.Milliseconds()), attrs)
	o.jobFixtures.Add(ctx, int64(scraped), metric.WithAttributes(attribute.String(AttrResult, "scraped")))
	o.jobFixtures.Add(ctx, int64(failed), metric.WithAttributes(attribute.String(AttrResult, "failed")))
}

package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"quickorder/internal/intent"
	"quickorder/internal/models"
)

// unmatched labels a missing platform or service type.
const unmatched = "none"

const (
	recordTimeout  = 2 * time.Second
	maxRecordsBusy = 64
)

var (
	parseLookupDesc = prometheus.NewDesc(
		"quickorder_parse_lookups_total",
		"Total parse count by detected intent and outcome",
		[]string{"platform", "service_type", "outcome"},
		nil,
	)

	// ParseDuration observes the time spent in a single parse.
	ParseDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "quickorder_parse_duration_seconds",
		Help:    "Time spent parsing free-text order input",
		Buckets: []float64{.00001, .000025, .00005, .0001, .00025, .0005, .001, .0025, .005},
	})
)

// Store is the persistence used by the collector and recorder.
type Store interface {
	IncrementParseLookup(ctx context.Context, platform, serviceType, outcome string) error
	GetAllParseLookups(ctx context.Context) ([]models.ParseLookup, error)
}

// ParseCollector is a custom Prometheus collector that reads parse lookup
// counts from the database on each scrape.
type ParseCollector struct {
	store Store
}

// Describe sends the metric descriptor to the channel.
func (c *ParseCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- parseLookupDesc
}

// Collect queries the database for all parse lookups and emits them as counters.
func (c *ParseCollector) Collect(ch chan<- prometheus.Metric) {
	lookups, err := c.store.GetAllParseLookups(context.Background())
	if err != nil {
		slog.Error("failed to collect parse lookup metrics", "error", err)
		return
	}
	for _, l := range lookups {
		ch <- prometheus.MustNewConstMetric(
			parseLookupDesc,
			prometheus.CounterValue,
			float64(l.Count),
			l.Platform,
			l.ServiceType,
			l.Outcome,
		)
	}
}

// Recorder provides async parse outcome recording. At most maxRecordsBusy
// writes run at once; further outcomes are dropped until one finishes.
type Recorder struct {
	store Store
	busy  chan struct{}
}

func newRecorder(store Store) *Recorder {
	return &Recorder{store: store, busy: make(chan struct{}, maxRecordsBusy)}
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
	registerOnce sync.Once
)

// Register adds the parse duration histogram to the default registry.
// Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(ParseDuration)
	})
}

// Init registers the custom collector and initializes the recorder.
// Must be called once at startup, and only when parse metrics are enabled.
func Init(store Store) {
	recorderOnce.Do(func() {
		recorder = newRecorder(store)
		prometheus.MustRegister(&ParseCollector{store: store})
	})
}

// Outcome classifies a parse result against the preview threshold.
func Outcome(order intent.ParsedOrder, threshold int) string {
	switch {
	case order.MatchPercentage <= 0:
		return models.OutcomeEmpty
	case order.MatchPercentage >= intent.MaxMatchPercentage:
		return models.OutcomeComplete
	case order.MatchPercentage >= threshold:
		return models.OutcomePreview
	default:
		return models.OutcomePartial
	}
}

// ObserveParse records how long a parse took.
func ObserveParse(start time.Time) {
	ParseDuration.Observe(time.Since(start).Seconds())
}

// RecordParse asynchronously records a parse outcome. It is a no-op until Init is called.
func RecordParse(order intent.ParsedOrder, threshold int) {
	if recorder == nil {
		return
	}
	recorder.record(labels(order, threshold))
}

func (r *Recorder) record(platform, serviceType, outcome string) {
	select {
	case r.busy <- struct{}{}:
	default:
		slog.Debug("dropping parse lookup, recorder busy",
			"platform", platform, "service_type", serviceType, "outcome", outcome)
		return
	}

	go func() {
		defer func() { <-r.busy }()

		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		if err := r.store.IncrementParseLookup(ctx, platform, serviceType, outcome); err != nil {
			slog.Error("failed to record parse lookup",
				"platform", platform, "service_type", serviceType, "outcome", outcome, "error", err)
		}
	}()
}

func labels(order intent.ParsedOrder, threshold int) (platform, serviceType, outcome string) {
	platform, serviceType = unmatched, unmatched
	if order.HasPlatform() {
		platform = string(order.Platform)
	}
	if order.HasServiceType() {
		serviceType = string(order.ServiceType)
	}
	return platform, serviceType, Outcome(order, threshold)
}

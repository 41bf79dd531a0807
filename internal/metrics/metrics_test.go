package metrics

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickorder/internal/intent"
	"quickorder/internal/models"
)

type fakeStore struct {
	lookups   []models.ParseLookup
	err       error
	calls     chan [3]string
	deadlines chan bool
}

func (f *fakeStore) IncrementParseLookup(ctx context.Context, platform, serviceType, outcome string) error {
	if f.deadlines != nil {
		_, ok := ctx.Deadline()
		f.deadlines <- ok
	}
	f.calls <- [3]string{platform, serviceType, outcome}
	return nil
}

func (f *fakeStore) GetAllParseLookups(context.Context) ([]models.ParseLookup, error) {
	return f.lookups, f.err
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		threshold int
		want      string
	}{
		{"empty input", "", 50, models.OutcomeEmpty},
		{"empty with zero threshold", "", 0, models.OutcomeEmpty},
		{"complete", "1k instagram followers @user", 50, models.OutcomeComplete},
		{"preview", "1k followers", 50, models.OutcomePreview},
		{"partial", "instagram", 50, models.OutcomePartial},
		{"high threshold", "1k instagram followers", 90, models.OutcomePartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Outcome(intent.Parse(tt.input), tt.threshold))
		})
	}
}

func TestLabelsUseNoneForMissingFields(t *testing.T) {
	platform, serviceType, outcome := labels(intent.Parse("500 likes"), 50)
	assert.Equal(t, "none", platform)
	assert.Equal(t, "likes", serviceType)
	assert.Equal(t, models.OutcomePreview, outcome)
}

func TestParseCollector(t *testing.T) {
	store := &fakeStore{lookups: []models.ParseLookup{
		{Platform: "instagram", ServiceType: "followers", Outcome: "complete", Count: 7},
		{Platform: "none", ServiceType: "likes", Outcome: "preview", Count: 2},
	}}

	expected := `
# HELP quickorder_parse_lookups_total Total parse count by detected intent and outcome
# TYPE quickorder_parse_lookups_total counter
quickorder_parse_lookups_total{outcome="complete",platform="instagram",service_type="followers"} 7
quickorder_parse_lookups_total{outcome="preview",platform="none",service_type="likes"} 2
`
	err := testutil.CollectAndCompare(&ParseCollector{store: store}, strings.NewReader(expected))
	require.NoError(t, err)
}

func TestParseCollectorStoreError(t *testing.T) {
	store := &fakeStore{err: errors.New("db down")}
	assert.Equal(t, 0, testutil.CollectAndCount(&ParseCollector{store: store}))
}

func TestRecordParse(t *testing.T) {
	store := &fakeStore{calls: make(chan [3]string, 1), deadlines: make(chan bool, 1)}
	recorder = newRecorder(store)
	t.Cleanup(func() { recorder = nil })

	RecordParse(intent.Parse("1k instagram followers @user"), 50)

	select {
	case got := <-store.calls:
		assert.Equal(t, [3]string{"instagram", "followers", "complete"}, got)
		assert.True(t, <-store.deadlines, "write should carry a deadline")
	case <-time.After(2 * time.Second):
		t.Fatal("parse lookup was not recorded")
	}
}

func TestRecordParseDropsWhenBusy(t *testing.T) {
	store := &fakeStore{calls: make(chan [3]string, 1)}
	recorder = &Recorder{store: store, busy: make(chan struct{}, 1)}
	recorder.busy <- struct{}{}
	t.Cleanup(func() { recorder = nil })

	RecordParse(intent.Parse("1k likes"), 50)

	select {
	case got := <-store.calls:
		t.Fatalf("unexpected write %v", got)
	case <-time.After(100 * time.Millisecond):
	}

	<-recorder.busy
	RecordParse(intent.Parse("1k likes"), 50)
	select {
	case got := <-store.calls:
		assert.Equal(t, "likes", got[1])
	case <-time.After(2 * time.Second):
		t.Fatal("parse lookup was not recorded")
	}
}

func TestRecordParseWithoutInit(t *testing.T) {
	require.Nil(t, recorder)
	assert.NotPanics(t, func() { RecordParse(intent.Parse("1k likes"), 50) })
}

func TestObserveParse(t *testing.T) {
	h := prometheus.NewHistogram(prometheus.HistogramOpts{Name: "test_parse_seconds", Help: "test"})
	orig := ParseDuration
	ParseDuration = h
	t.Cleanup(func() { ParseDuration = orig })

	ObserveParse(time.Now())
	assert.Equal(t, 1, testutil.CollectAndCount(h))
}

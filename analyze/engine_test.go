package analyze

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e := NewEngine(time.Millisecond, 5*time.Millisecond, time.Minute, 16, zap.NewNop().Sugar())
	t.Cleanup(e.Shutdown)
	return e
}

func waitForCompletion(t *testing.T, e *Engine, id string) Job {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		job, err := e.Get(id)
		require.NoError(t, err)
		if job.Status == JobStatusCompleted {
			return job
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("job did not complete in time")
	return Job{}
}

func TestEngineStartReturnsPendingJob(t *testing.T) {
	e := newTestEngine(t)

	job := e.Start(Request{Source: "twitter", Keywords: []string{"vote"}, TimeRange: "24h"})

	assert.NotEmpty(t, job.ID)
	assert.Equal(t, JobStatusPending, job.Status)
	assert.Equal(t, "twitter", job.Request.Source)
	assert.NotEmpty(t, job.StartedAt)
	assert.Nil(t, job.Results)
}

func TestEngineJobCompletes(t *testing.T) {
	e := newTestEngine(t)

	started := e.Start(Request{Source: "all", TimeRange: "24h"})
	job := waitForCompletion(t, e, started.ID)

	assert.Equal(t, JobStatusCompleted, job.Status)
	assert.NotEmpty(t, job.CompletedAt)
	require.NotNil(t, job.Results)

	r := job.Results
	assert.GreaterOrEqual(t, r.PostsAnalyzed, 500)
	assert.LessOrEqual(t, r.PostsAnalyzed, 2000)
	assert.GreaterOrEqual(t, r.CampaignsDetected, 1)
	assert.LessOrEqual(t, r.CampaignsDetected, 2)
	assert.Len(t, r.NewCampaigns, r.CampaignsDetected)
	for _, c := range r.NewCampaigns {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Title)
		assert.GreaterOrEqual(t, c.ConfidenceScore, 60.0)
		assert.LessOrEqual(t, c.ConfidenceScore, 95.0)
	}
	assert.GreaterOrEqual(t, r.AccountsFlagged, 10)
	assert.LessOrEqual(t, r.AccountsFlagged, 30)
	assert.GreaterOrEqual(t, r.BotAccountsDetected, 5)
	assert.LessOrEqual(t, r.BotAccountsDetected, 15)
}

func TestEngineGetUnknownJob(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Get("analysis_missing")
	assert.True(t, errors.Is(err, ErrJobNotFound))
}

func TestEngineNotifierReceivesCompletedJob(t *testing.T) {
	e := NewEngine(time.Millisecond, 2*time.Millisecond, time.Minute, 16, zap.NewNop().Sugar())
	defer e.Shutdown()

	var mu sync.Mutex
	var notified []Job
	e.SetNotifier(func(job Job) {
		mu.Lock()
		notified = append(notified, job)
		mu.Unlock()
	})

	started := e.Start(Request{Source: "all"})
	waitForCompletion(t, e, started.ID)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, notified, 1)
	assert.Equal(t, started.ID, notified[0].ID)
	assert.Equal(t, JobStatusCompleted, notified[0].Status)
}

func TestEngineShutdownFinishesPendingJobs(t *testing.T) {
	// Long window: shutdown must cut the sleep short and still complete.
	e := NewEngine(time.Hour, time.Hour, time.Minute, 16, zap.NewNop().Sugar())

	job := e.Start(Request{Source: "all"})
	e.Shutdown()

	got, err := e.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, JobStatusCompleted, got.Status)
}

func TestEngineJobIDsAreUnique(t *testing.T) {
	e := newTestEngine(t)
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		job := e.Start(Request{Source: "all"})
		assert.False(t, seen[job.ID])
		seen[job.ID] = true
	}
}

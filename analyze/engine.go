// Package analyze simulates the detection engine as an asynchronous job:
// starting an analysis returns a pending job immediately and a background
// goroutine completes it after the configured processing window. The query
// layer never waits on it.
package analyze

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"deeptrace/core"
	"deeptrace/metrics"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

// ErrJobNotFound is returned when a job id is unknown or has expired.
var ErrJobNotFound = errors.New("analysis job not found")

// JobStatus is the lifecycle state of an analysis run.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusCompleted JobStatus = "completed"
)

// Request describes what an analysis run should look at.
type Request struct {
	Source    string   `json:"source"`
	Keywords  []string `json:"keywords"`
	TimeRange string   `json:"time_range"`
}

// DetectedCampaign is one mock campaign produced by a run.
type DetectedCampaign struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	ThreatLevel     core.ThreatLevel `json:"threat_level"`
	TotalPosts      int              `json:"total_posts"`
	TotalAccounts   int              `json:"total_accounts"`
	ConfidenceScore float64          `json:"confidence_score"`
}

// Results holds the outcome of a completed run.
type Results struct {
	PostsAnalyzed       int                `json:"posts_analyzed"`
	CampaignsDetected   int                `json:"campaigns_detected"`
	NewCampaigns        []DetectedCampaign `json:"new_campaigns"`
	AccountsFlagged     int                `json:"accounts_flagged"`
	BotAccountsDetected int                `json:"bot_accounts_detected"`
}

// Job is one analysis run. Results is nil while the run is pending.
type Job struct {
	ID              string    `json:"analysis_id"`
	Status          JobStatus `json:"status"`
	Request         Request   `json:"request"`
	StartedAt       string    `json:"started_at"`
	CompletedAt     string    `json:"completed_at,omitempty"`
	DurationSeconds float64   `json:"duration_seconds,omitempty"`
	Results         *Results  `json:"results,omitempty"`
}

// Engine runs simulated analyses. Finished and pending jobs live in an
// expirable LRU so poll endpoints keep working for a while after
// completion without the engine growing without bound.
type Engine struct {
	logger *zap.SugaredLogger

	minDuration time.Duration
	maxDuration time.Duration

	mu   sync.Mutex
	jobs *expirable.LRU[string, *Job]

	// notify, when set, is called with a snapshot of every job that
	// completes. The API wires this to the websocket hub.
	notify func(Job)

	wg     sync.WaitGroup
	stopCh chan struct{}
}

// NewEngine creates an engine. Jobs are evicted maxJobs/ttl-wise; the
// processing window is uniform in [minDuration, maxDuration].
func NewEngine(minDuration, maxDuration, jobTTL time.Duration, maxJobs int, logger *zap.SugaredLogger) *Engine {
	if maxDuration < minDuration {
		maxDuration = minDuration
	}
	return &Engine{
		logger:      logger,
		minDuration: minDuration,
		maxDuration: maxDuration,
		jobs:        expirable.NewLRU[string, *Job](maxJobs, nil, jobTTL),
		stopCh:      make(chan struct{}),
	}
}

// SetNotifier registers a completion callback. Must be called before the
// first Start.
func (e *Engine) SetNotifier(fn func(Job)) {
	e.notify = fn
}

// Start creates a pending job and schedules its completion. The returned
// snapshot is safe to serialize.
func (e *Engine) Start(req Request) Job {
	job := &Job{
		ID:        "analysis_" + uuid.NewString(),
		Status:    JobStatusPending,
		Request:   req,
		StartedAt: now(),
	}

	e.mu.Lock()
	e.jobs.Add(job.ID, job)
	snapshot := *job
	e.mu.Unlock()

	metrics.AnalysesStarted.Inc()
	e.logger.Infow("Analysis started",
		"analysis_id", job.ID,
		"source", req.Source,
		"time_range", req.TimeRange)

	e.wg.Add(1)
	go e.run(job.ID)

	return snapshot
}

// Get returns a snapshot of a job by id.
func (e *Engine) Get(id string) (Job, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	job, ok := e.jobs.Get(id)
	if !ok {
		return Job{}, ErrJobNotFound
	}
	return *job, nil
}

// Shutdown waits for in-flight runs to finish. Pending timers are cut
// short so shutdown is prompt.
func (e *Engine) Shutdown() {
	close(e.stopCh)
	e.wg.Wait()
}

// run sleeps through the simulated processing window, then fills in
// randomized results and flips the job to completed.
func (e *Engine) run(id string) {
	defer e.wg.Done()

	duration := e.minDuration
	if span := e.maxDuration - e.minDuration; span > 0 {
		duration += time.Duration(rand.Int63n(int64(span)))
	}

	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-e.stopCh:
		// Shutting down: complete immediately rather than leaving the
		// job pending forever.
	}

	e.mu.Lock()
	job, ok := e.jobs.Get(id)
	if !ok {
		e.mu.Unlock()
		return
	}
	job.Status = JobStatusCompleted
	job.CompletedAt = now()
	job.DurationSeconds = round2(duration.Seconds())
	job.Results = mockResults()
	snapshot := *job
	e.mu.Unlock()

	metrics.AnalysesCompleted.Inc()
	e.logger.Infow("Analysis completed",
		"analysis_id", snapshot.ID,
		"campaigns_detected", snapshot.Results.CampaignsDetected,
		"duration_seconds", snapshot.DurationSeconds)

	if e.notify != nil {
		e.notify(snapshot)
	}
}

var detectedTitles = []string{
	"New Coordinated Campaign Detected",
	"Suspicious Hashtag Spread",
	"Bot Network Activity",
	"Misinformation Campaign",
}

var detectedThreatLevels = []core.ThreatLevel{
	core.ThreatLevelLow,
	core.ThreatLevelMedium,
	core.ThreatLevelHigh,
}

var detectedCampaignTypes = []string{"political", "commercial", "malware"}

// mockResults generates the randomized outcome of a run. Ranges mirror the
// demo detection engine this stands in for.
func mockResults() *Results {
	numCampaigns := 1 + rand.Intn(2)
	campaigns := make([]DetectedCampaign, 0, numCampaigns)
	for i := 0; i < numCampaigns; i++ {
		campaigns = append(campaigns, DetectedCampaign{
			ID:              fmt.Sprintf("camp_%03d", rand.Intn(1000)),
			Title:           detectedTitles[rand.Intn(len(detectedTitles))],
			ThreatLevel:     detectedThreatLevels[rand.Intn(len(detectedThreatLevels))],
			TotalPosts:      30 + rand.Intn(71),
			TotalAccounts:   10 + rand.Intn(41),
			ConfidenceScore: round1(60 + rand.Float64()*35),
		})
	}

	return &Results{
		PostsAnalyzed:       500 + rand.Intn(1501),
		CampaignsDetected:   numCampaigns,
		NewCampaigns:        campaigns,
		AccountsFlagged:     10 + rand.Intn(21),
		BotAccountsDetected: 5 + rand.Intn(11),
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

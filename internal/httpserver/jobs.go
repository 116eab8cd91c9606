package httpserver

import (
	"context"
	"sync"
	"time"

	"github.com/lorenzo-stoakes/wordle-solver/internal/render"
	"github.com/lorenzo-stoakes/wordle-solver/internal/solver"
	"github.com/lorenzo-stoakes/wordle-solver/internal/wordle"
)

// JobStatus enumerates a solve job's lifecycle, modeled on
// kestfor-CrackHash's worker TaskStatus.
type JobStatus string

const (
	JobPending JobStatus = "pending"
	JobRunning JobStatus = "running"
	JobDone    JobStatus = "done"
	JobFailed  JobStatus = "failed"
)

// jobSummary is everything a client may poll for without ever handing
// back the decision tree itself (spec §4.8).
type jobSummary struct {
	Status         JobStatus `json:"status"`
	Error          string    `json:"error,omitempty"`
	SolvedCount    int       `json:"solvedCount,omitempty"`
	UnsolvedCount  int       `json:"unsolvedCount,omitempty"`
	AverageGuesses float64   `json:"averageGuesses,omitempty"`
	DurationMS     int64     `json:"durationMs,omitempty"`
}

// job tracks one asynchronous Solve call: its summary is read by pollers,
// and its tree and renderer answer single-solution render requests until
// resultTTL has passed, after which RenderSolution returns
// errJobResultExpired. Nothing removes a job, its tree or its renderer
// from memory.
type job struct {
	id   string
	mu   sync.Mutex
	summ jobSummary

	tree      *render.Tree
	root      *solver.Node
	expiresAt time.Time
}

// jobTable is a sync.RWMutex-guarded map of in-flight and recently
// completed jobs, modeled on the teacher's internal/store/memory.go.
type jobTable struct {
	mu        sync.RWMutex
	jobs      map[string]*job
	resultTTL time.Duration
}

func newJobTable(resultTTL time.Duration) *jobTable {
	return &jobTable{jobs: make(map[string]*job), resultTTL: resultTTL}
}

// solveParams bundles one job's inputs.
type solveParams struct {
	guessesPath   string
	solutionsPath string
	pruneLimit    int
}

// Do registers a new job under id and launches the solve in a goroutine,
// mirroring kestfor-CrackHash's workerImpl.Do/do split between the
// atomic-status-tracking entry point and the actual work.
func (jt *jobTable) Do(id string, p solveParams, onDone func(list *wordle.WordList, table *wordle.MatchTable, result *solver.Result, durationMS int64)) {
	j := &job{id: id, summ: jobSummary{Status: JobPending}}
	jt.mu.Lock()
	jt.jobs[id] = j
	jt.mu.Unlock()

	go func() {
		j.setStatus(JobRunning)

		start := time.Now()
		list, err := wordle.LoadWordList(p.guessesPath, p.solutionsPath)
		if err != nil {
			j.fail(err)
			return
		}

		table := wordle.BuildMatchTable(list.Guesses, list.Solutions)
		engine := solver.NewEngine(table)
		result := engine.Solve(p.pruneLimit)
		duration := time.Since(start)

		stats := solver.ComputeStats(result.Root, result.NumSolutions)

		j.mu.Lock()
		j.tree = render.New(table, list.Guesses, list.Solutions)
		j.root = result.Root
		j.expiresAt = time.Now().Add(jt.resultTTL)
		j.summ = jobSummary{
			Status:         JobDone,
			SolvedCount:    stats.SolvedCount,
			UnsolvedCount:  stats.Unsolved,
			AverageGuesses: stats.AverageGuesses(),
			DurationMS:     duration.Milliseconds(),
		}
		j.mu.Unlock()

		if onDone != nil {
			onDone(list, table, result, duration.Milliseconds())
		}
	}()
}

// Summary returns a job's current status snapshot.
func (jt *jobTable) Summary(id string) (jobSummary, bool) {
	jt.mu.RLock()
	j, ok := jt.jobs[id]
	jt.mu.RUnlock()
	if !ok {
		return jobSummary{}, false
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.summ, true
}

// RenderSolution renders the guess path for one target solution word from
// a completed, not-yet-evicted job's in-memory tree.
func (jt *jobTable) RenderSolution(ctx context.Context, id, word string) (string, error) {
	jt.mu.RLock()
	j, ok := jt.jobs[id]
	jt.mu.RUnlock()
	if !ok {
		return "", errJobNotFound
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.summ.Status != JobDone {
		return "", errJobNotReady
	}
	if time.Now().After(j.expiresAt) {
		return "", errJobResultExpired
	}
	return j.tree.RenderSolution(j.root, word)
}

func (j *job) setStatus(s JobStatus) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.summ.Status = s
}

func (j *job) fail(err error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.summ = jobSummary{Status: JobFailed, Error: err.Error()}
}

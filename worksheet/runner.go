package worksheet

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sartorproj/numcalc/numerr"
)

// Result is the outcome of one task. Exactly one of Output and Error is set.
type Result struct {
	Task      string        `json:"task"`
	Kind      string        `json:"kind"`
	Output    any           `json:"output,omitempty"`
	Error     string        `json:"error,omitempty"`
	ErrorKind string        `json:"error_kind,omitempty"`
	Elapsed   time.Duration `json:"elapsed_ns"`
}

// Failed reports whether the task returned an error.
func (r *Result) Failed() bool { return r.Error != "" }

// Report collects the results of one worksheet run.
type Report struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`
	Results  []Result  `json:"results"`
}

// Failed returns the number of failed tasks.
func (r *Report) Failed() int {
	n := 0
	for i := range r.Results {
		if r.Results[i].Failed() {
			n++
		}
	}
	return n
}

// Runner executes worksheets.
type Runner struct {
	logger *zap.Logger
}

// NewRunner creates a Runner. A nil logger discards output.
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger}
}

// Run executes every task in order. A failing task is recorded in the
// report and does not stop the run. Cancelling ctx stops the run between
// tasks and returns the partial report with ctx.Err().
func (r *Runner) Run(ctx context.Context, ws *Worksheet) (*Report, error) {
	report := &Report{
		ID:      uuid.New(),
		Title:   ws.Title,
		Started: time.Now(),
		Results: make([]Result, 0, len(ws.Tasks)),
	}
	log := r.logger.With(zap.String("run_id", report.ID.String()))
	log.Info("Starting worksheet",
		zap.String("title", ws.Title),
		zap.Int("tasks", len(ws.Tasks)))

	for i := range ws.Tasks {
		if err := ctx.Err(); err != nil {
			log.Warn("Worksheet cancelled", zap.Int("completed", i), zap.Error(err))
			report.Finished = time.Now()
			return report, err
		}
		report.Results = append(report.Results, r.runTask(log, ws, &ws.Tasks[i]))
	}

	report.Finished = time.Now()
	log.Info("Worksheet finished",
		zap.Int("tasks", len(report.Results)),
		zap.Int("failed", report.Failed()),
		zap.Duration("elapsed", report.Finished.Sub(report.Started)))
	return report, nil
}

func (r *Runner) runTask(log *zap.Logger, ws *Worksheet, t *Task) Result {
	log = log.With(zap.String("task", t.Name), zap.String("kind", t.Kind))
	log.Debug("Running task")

	res := Result{Task: t.Name, Kind: t.Kind}
	start := time.Now()

	h, ok := handlers[t.Kind]
	if !ok {
		res.Error = "unknown task kind " + t.Kind
		res.ErrorKind = numerr.Unknown.String()
		log.Warn("Task failed", zap.String("error", res.Error))
		return res
	}

	out, err := h(ws, t)
	res.Elapsed = time.Since(start)
	if err != nil {
		res.Error = err.Error()
		res.ErrorKind = numerr.KindOf(err).String()
		log.Warn("Task failed",
			zap.String("error_kind", res.ErrorKind),
			zap.Error(err))
		return res
	}

	res.Output = out
	log.Debug("Task finished", zap.Duration("elapsed", res.Elapsed))
	return res
}

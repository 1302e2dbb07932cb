package bench

import (
	"context"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Runner spawns scripted sessions of the triage binary and measures their
// wall time.
type Runner struct {
	Binary  string        // path of the binary to spawn
	Timeout time.Duration // per-run limit
}

// Result is the outcome of one scripted run.
type Result struct {
	Engine   string
	Elapsed  time.Duration
	Output   string
	Stderr   string
	ExitCode int
}

// Run executes one session of the target binary with the given engine,
// feeds it the script on stdin and captures both output streams while the
// clock runs. A non-zero exit lands in the Result; an error means the run
// itself could not be completed, timeouts included.
func (r *Runner) Run(ctx context.Context, engine, script string) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.Binary, "session", "--engine", engine)
	cmd.Stdin = strings.NewReader(script)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Result{}, errors.Wrap(err, "failed to open stdout pipe")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return Result{}, errors.Wrap(err, "failed to open stderr pipe")
	}

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return Result{}, errors.Wrapf(err, "failed to start %s", r.Binary)
	}

	// Both pipes must be drained before Wait closes them.
	var out, errOut string
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := io.ReadAll(stdout)
		out = string(b)
		return err
	})
	g.Go(func() error {
		b, err := io.ReadAll(stderr)
		errOut = string(b)
		return err
	})

	pumpErr := g.Wait()
	waitErr := cmd.Wait()
	elapsed := time.Since(start)

	switch ctx.Err() {
	case context.DeadlineExceeded:
		return Result{}, errors.Errorf("execution timed out after %.2f seconds", elapsed.Seconds())
	case context.Canceled:
		return Result{}, errors.Wrap(ctx.Err(), "run canceled")
	}
	if pumpErr != nil {
		return Result{}, errors.Wrap(pumpErr, "failed to read child output")
	}

	res := Result{Engine: engine, Elapsed: elapsed, Output: out, Stderr: errOut}
	if waitErr != nil {
		exitErr, ok := waitErr.(*exec.ExitError)
		if !ok {
			return Result{}, errors.Wrap(waitErr, "failed to wait for child")
		}
		res.ExitCode = exitErr.ExitCode()
	}
	return res, nil
}

// Compare runs the same script once per engine, in order.
func (r *Runner) Compare(ctx context.Context, engines []string, script string) ([]Result, error) {
	results := make([]Result, 0, len(engines))
	for _, engine := range engines {
		res, err := r.Run(ctx, engine, script)
		if err != nil {
			return nil, errors.Wrapf(err, "engine %s", engine)
		}
		results = append(results, res)
	}
	return results, nil
}

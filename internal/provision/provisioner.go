package provision

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/openclaw/installer/internal/compose"
	"github.com/openclaw/installer/internal/config"
	"github.com/openclaw/installer/internal/platform/docker"
	"github.com/openclaw/installer/internal/staging"
	"github.com/openclaw/installer/internal/token"
	"github.com/openclaw/installer/internal/util/retry"
)

// Stage is a workflow state.
type Stage string

const (
	StageStart              Stage = "Start"
	StagePreflighted        Stage = "Preflighted"
	StageParametersResolved Stage = "ParametersResolved"
	StageStaged             Stage = "Staged"
	StageManifestWritten    Stage = "ManifestWritten"
	StageLaunched           Stage = "Launched"
	StageVerified           Stage = "Verified"
	StageVerifyWarned       Stage = "VerifyWarned"
	StageAborted            Stage = "Aborted"
)

// Runtime is the subset of the docker runtime the workflow drives.
type Runtime interface {
	Pull(ctx context.Context, dir string) error
	Up(ctx context.Context, dir string) error
	Status(ctx context.Context, dir, service string) (docker.ServiceState, error)
}

type (
	// DetectFunc performs preflight and returns the runtime handle.
	DetectFunc func(ctx context.Context) (Runtime, error)

	// ResolveFunc produces the deployment configuration, either from the
	// interactive wizard or from flags.
	ResolveFunc func(ctx context.Context) (*config.Deployment, error)

	// ObserverFunc is called on every stage transition so the CLI can
	// report progress.
	ObserverFunc func(Stage)

	// Option configures a Workflow.
	Option func(*Workflow)

	releaseFunc func() error
)

// Workflow runs the install stages in order.
type Workflow struct {
	detect   DetectFunc
	resolve  ResolveFunc
	logger   *log.Logger
	observer ObserverFunc

	// settle is the wait before the first post-launch status query.
	settle time.Duration

	// noLaunch stops the workflow after the manifest is written.
	noLaunch bool

	stage Stage

	// verifyRetry bounds the post-launch status polling.
	verifyRetry []retry.Option

	// Seams below default to the real packages; tests replace them.
	stageFS       func(*config.Deployment) error
	acquireLock   func(dir string) (releaseFunc, error)
	generateToken func() (*token.Token, error)
	writeManifest func(*compose.Manifest, string) error
}

// Result is the terminal outcome of a successful (or soft-warned) run.
type Result struct {
	Stage      Stage
	Deployment *config.Deployment
	Token      *token.Token

	// Warning is set when the run ended in VerifyWarned.
	Warning string
}

// WithLogger sets the structured logger.
func WithLogger(logger *log.Logger) Option {
	return func(w *Workflow) { w.logger = logger }
}

// WithObserver registers a stage transition callback.
func WithObserver(fn ObserverFunc) Option {
	return func(w *Workflow) { w.observer = fn }
}

// WithSettleDelay overrides the wait before verification.
func WithSettleDelay(d time.Duration) Option {
	return func(w *Workflow) { w.settle = d }
}

// WithNoLaunch stops after manifest generation; nothing is pulled or
// started.
func WithNoLaunch() Option {
	return func(w *Workflow) { w.noLaunch = true }
}

// WithVerifyRetry overrides the post-launch status polling bounds.
func WithVerifyRetry(opts ...retry.Option) Option {
	return func(w *Workflow) { w.verifyRetry = opts }
}

// New assembles a workflow from a preflight function and a parameter
// resolver.
func New(detect DetectFunc, resolve ResolveFunc, opts ...Option) *Workflow {
	w := &Workflow{
		detect:  detect,
		resolve: resolve,
		logger:  log.Default(),
		settle:  5 * time.Second,
		stage:   StageStart,
		verifyRetry: []retry.Option{
			retry.WithMaxRetries(3),
			retry.WithInitialDelay(2 * time.Second),
		},
		stageFS: staging.Stage,
		acquireLock: func(dir string) (releaseFunc, error) {
			lock, err := staging.Acquire(dir)
			if err != nil {
				return nil, err
			}
			return lock.Release, nil
		},
		generateToken: token.Generate,
		writeManifest: compose.Write,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Stage returns the current workflow state.
func (w *Workflow) Stage() Stage { return w.stage }

// Run executes the workflow end to end.
func (w *Workflow) Run(ctx context.Context) (*Result, error) {
	rt, err := w.detect(ctx)
	if err != nil {
		return nil, w.abort(err)
	}
	w.transition(StagePreflighted)

	deployment, err := w.resolve(ctx)
	if err != nil {
		return nil, w.abort(err)
	}
	w.transition(StageParametersResolved)

	tok, err := w.stageAndWriteManifest(deployment)
	if err != nil {
		return nil, err
	}

	if w.noLaunch {
		w.logger.Info("manifest written, launch skipped", "path", deployment.ManifestPath())
		return &Result{Stage: w.stage, Deployment: deployment, Token: tok}, nil
	}

	if err := rt.Pull(ctx, deployment.InstallDir); err != nil {
		return nil, w.abort(err)
	}
	if err := rt.Up(ctx, deployment.InstallDir); err != nil {
		return nil, w.abort(err)
	}
	w.transition(StageLaunched)

	return w.verify(ctx, rt, deployment, tok)
}

// stageAndWriteManifest runs stages 3 and 4 under the directory lock.
func (w *Workflow) stageAndWriteManifest(deployment *config.Deployment) (*token.Token, error) {
	if err := w.stageFS(deployment); err != nil {
		return nil, w.abort(err)
	}

	release, err := w.acquireLock(deployment.InstallDir)
	if err != nil {
		return nil, w.abort(err)
	}
	defer func() {
		if err := release(); err != nil {
			w.logger.Warn("failed to release install lock", "err", err)
		}
	}()
	w.transition(StageStaged)

	tok, err := w.generateToken()
	if err != nil {
		return nil, w.abort(err)
	}
	if tok.Weak() {
		w.logger.Warn("token generated from a non-cryptographic source", "source", tok.Source())
	}

	manifest := compose.New(deployment, tok.Hex())
	if err := w.writeManifest(manifest, deployment.ManifestPath()); err != nil {
		return nil, w.abort(err)
	}
	w.transition(StageManifestWritten)

	return tok, nil
}

// verify waits the settle period, then polls the orchestrator for a
// running service. An unhealthy outcome is a soft warning, not a
// failure.
func (w *Workflow) verify(ctx context.Context, rt Runtime, deployment *config.Deployment, tok *token.Token) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, w.abort(ctx.Err())
	case <-time.After(w.settle):
	}

	var lastState docker.ServiceState
	err := retry.Do(ctx, func() error {
		state, statusErr := rt.Status(ctx, deployment.InstallDir, compose.ServiceName)
		if statusErr != nil {
			return statusErr
		}
		lastState = state
		if !state.Healthy() {
			return fmt.Errorf("service %s is %s", compose.ServiceName, state)
		}
		return nil
	}, w.verifyRetry...)

	result := &Result{Deployment: deployment, Token: tok}
	if err != nil {
		w.transition(StageVerifyWarned)
		result.Stage = StageVerifyWarned
		result.Warning = verificationWarning(lastState)
		w.logger.Warn("post-launch verification did not find a running service",
			"state", lastState, "err", err)
		return result, nil
	}

	w.transition(StageVerified)
	result.Stage = StageVerified
	return result, nil
}

func verificationWarning(state docker.ServiceState) string {
	detail := "not found in the compose listing"
	if state != "" && state != docker.StateGone {
		detail = "in state " + string(state)
	}
	return fmt.Sprintf(
		"the %s service is %s; inspect the logs with `docker compose logs %s`",
		compose.ServiceName, detail, compose.ServiceName,
	)
}

func (w *Workflow) transition(next Stage) {
	w.logger.Debug("stage transition", "from", w.stage, "to", next)
	w.stage = next
	if w.observer != nil {
		w.observer(next)
	}
}

// abort records the failing stage and wraps the cause.
func (w *Workflow) abort(err error) error {
	failedAt := w.stage
	w.transition(StageAborted)
	return &AbortError{Stage: failedAt, Err: err}
}

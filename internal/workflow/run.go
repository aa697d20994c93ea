package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"dartdecode/internal/config"
	"dartdecode/internal/decoder"
	"dartdecode/internal/logging"
)

// Result describes a run that got at least as far as the decoder.
type Result struct {
	RunID      string
	Product    string
	Device     decoder.DeviceType
	TokenPath  string
	OutputPath string
	Command    decoder.Command
	State      State
	// ViewerErr is set when the viewer could not be started. The run still
	// succeeded.
	ViewerErr error
}

type run struct {
	deps     Deps
	opts     Options
	logger   *slog.Logger
	reporter Reporter
	result   Result
}

// Run executes one decode. On failure the returned error is a *StepError and
// the Result holds whatever was determined before the failing step.
func Run(ctx context.Context, deps Deps, opts Options) (Result, error) {
	if deps.LoadConfig == nil || deps.Prompter == nil || deps.Decoder == nil {
		return Result{}, errors.New("workflow: LoadConfig, Prompter and Decoder are required")
	}
	if deps.NewResolver == nil {
		deps.NewResolver = defaultResolver
	}
	runID := strings.TrimSpace(deps.RunID)
	if runID == "" {
		runID = uuid.NewString()
	}

	r := &run{
		deps:     deps,
		opts:     opts,
		logger:   logging.NewComponentLogger(deps.Logger, "workflow"),
		reporter: deps.Reporter,
		result:   Result{RunID: runID, State: StateStart},
	}
	if r.reporter == nil {
		r.reporter = nopReporter{}
	}

	err := r.execute(ctx)
	if err != nil {
		var stepErr *StepError
		if errors.As(err, &stepErr) {
			r.logger.Error("decode run failed",
				logging.String(logging.FieldState, stepErr.State.String()),
				logging.String(logging.FieldErrorKind, string(stepErr.Kind())),
				logging.String(logging.FieldEventType, "run_failed"),
				logging.Error(stepErr.Err),
			)
		}
	}
	return r.result, err
}

func (r *run) advance(state State) {
	r.result.State = state
	r.logger.Debug("state reached", logging.String(logging.FieldState, state.String()))
}

func (r *run) fail(err error) error {
	return &StepError{State: r.result.State, Err: err}
}

func (r *run) execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return r.fail(err)
	}

	cfg, err := r.deps.LoadConfig()
	if err != nil {
		return r.fail(err)
	}
	r.advance(StateConfigLoaded)

	if err := r.resolveProduct(ctx, cfg); err != nil {
		return r.fail(err)
	}
	r.reporter.TokenFound(r.result.TokenPath)
	r.advance(StateProductResolved)

	if err := decoder.CheckInputs(cfg.DartBinPath(), cfg.DecoderPath(), r.deps.FileExists); err != nil {
		return r.fail(err)
	}
	r.advance(StateBinariesValidated)

	if err := r.chooseDevice(ctx); err != nil {
		return r.fail(err)
	}
	r.advance(StateDeviceTypeChosen)

	r.result.OutputPath = cfg.OutputPath(r.result.Product)
	cmd, err := decoder.BuildCommand(decoder.Request{
		DecoderPath: cfg.DecoderPath(),
		TracePath:   cfg.DartBinPath(),
		OutputPath:  r.result.OutputPath,
		TokenPath:   r.result.TokenPath,
		Device:      r.result.Device,
	})
	if err != nil {
		return r.fail(err)
	}
	r.result.Command = cmd
	r.advance(StateCommandBuilt)

	if err := r.decode(ctx, cmd); err != nil {
		return r.fail(err)
	}
	r.reporter.Decoded(r.result.OutputPath)
	r.advance(StateDecoded)

	if !r.opts.NoViewer {
		r.openViewer(cfg.GloggPath)
	}
	r.advance(StateDone)
	r.logger.Info("decode run complete",
		logging.String("output", r.result.OutputPath),
		logging.String(logging.FieldEventType, "run_complete"),
	)
	return nil
}

func (r *run) resolveProduct(ctx context.Context, cfg *config.Config) error {
	product := strings.TrimSpace(r.opts.Product)
	if product == "" {
		answer, err := r.deps.Prompter.Product(ctx)
		if err != nil {
			return err
		}
		product = answer
	}
	r.result.Product = product

	resolver := r.deps.NewResolver(cfg.TokenBasePath, r.opts.SkipEmpty)
	path, err := resolver.Resolve(product)
	if err != nil {
		return err
	}
	r.result.TokenPath = path
	r.logger.Info("token path resolved",
		logging.String("product", product),
		logging.String("token_path", path),
	)
	return nil
}

func (r *run) chooseDevice(ctx context.Context) error {
	device := r.opts.Device
	if device == "" {
		answer, err := r.deps.Prompter.DeviceType(ctx)
		if err != nil {
			return err
		}
		device = answer
	}
	r.result.Device = device
	return nil
}

func (r *run) decode(ctx context.Context, cmd decoder.Command) error {
	if r.deps.AcquireLock != nil {
		lock, err := r.deps.AcquireLock(r.result.OutputPath)
		if err != nil {
			return err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				r.logger.Warn("release run lock failed", logging.Error(err))
			}
		}()
	}

	r.reporter.Running(cmd)
	r.logger.Info("running decoder",
		logging.String("device", r.result.Device.String()),
		logging.String("command", cmd.String()),
	)
	if err := r.deps.Decoder.Decode(ctx, cmd); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %w", ctxErr, err)
		}
		return err
	}
	return nil
}

// openViewer starts the viewer without waiting for it. The viewer is a
// convenience on top of a finished decode, so a launch failure is recorded on
// the result and reported but never fails the run.
func (r *run) openViewer(viewer string) {
	if err := r.deps.Decoder.OpenViewer(viewer, r.result.OutputPath); err != nil {
		r.result.ViewerErr = err
		r.reporter.ViewerFailed(err)
		r.logger.Warn("viewer launch failed",
			logging.String("viewer", viewer),
			logging.String(logging.FieldErrorKind, string(KindViewerLaunchError)),
			logging.Error(err),
		)
		return
	}
	r.reporter.ViewerOpened(viewer, r.result.OutputPath)
	r.advance(StateViewerLaunched)
}

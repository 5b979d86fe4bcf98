package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/ytcat/internal/catalog"
	"github.com/desertthunder/ytcat/internal/services"
	"github.com/desertthunder/ytcat/internal/shared"
	"github.com/desertthunder/ytcat/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	source services.Source
	writer tasks.SnapshotWriter
	logger *log.Logger
	output io.Writer
	engine *tasks.PipelineEngine
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config   *shared.Config
	Source   services.Source
	Writer   tasks.SnapshotWriter
	Recorder tasks.RunRecorder
	Logger   *log.Logger
	Output   io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Writer == nil {
		opts.Writer = catalog.NewWriter()
	}

	engine := tasks.NewPipelineEngine(opts.Source, opts.Writer, opts.Recorder, opts.Logger)

	return &Runner{
		config: opts.Config,
		source: opts.Source,
		writer: opts.Writer,
		logger: opts.Logger,
		output: opts.Output,
		engine: engine,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, syncCommand, playlistCommand, runsCommand, exportCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// requireSource guards actions that need a configured source API.
func (r *Runner) requireSource() error {
	if r.source == nil {
		return fmt.Errorf("%w: set YOUTUBE_API_KEY or configure credentials in config.toml", shared.ErrMissingCredentials)
	}
	return nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return err
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}

// Where: apkbuild/internal/command/build.go
// What: Build command handler.
// Why: Wire config, env file and report templates around a single wrapper invocation.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/poruru-code/apkbuild/internal/builder"
	"github.com/poruru-code/apkbuild/internal/infra/config"
	"github.com/poruru-code/apkbuild/internal/infra/envutil"
	"github.com/poruru-code/apkbuild/internal/infra/fileops"
	"github.com/poruru-code/apkbuild/internal/infra/process"
	"github.com/poruru-code/apkbuild/internal/infra/ui"
	"github.com/poruru-code/apkbuild/internal/report"
)

// buildPlan is everything resolved before the wrapper runs.
type buildPlan struct {
	request    builder.BuildRequest
	options    builder.Options
	settings   config.Settings
	configPath string
	env        []string
	renderer   *report.Renderer
}

func runBuild(cli CLI, deps Dependencies, out io.Writer) int {
	emojiEnabled, err := resolveEmojiEnabled(out, cli)
	if err != nil {
		return exitWithError(out, err)
	}
	console := newUI(out, emojiEnabled)
	logger := newLogger(deps.ErrOut, cli.Verbose)

	plan, err := resolveBuildPlan(cli, logger)
	if err != nil {
		return exitWithError(out, err)
	}
	if cli.Verbose {
		console.Block("📦", "Build", []ui.KeyValue{
			{Key: "Project", Value: plan.request.ProjectPath},
			{Key: "Wrapper", Value: plan.options.Wrapper},
			{Key: "Goal", Value: plan.options.Goal},
			{Key: "Preset", Value: plan.settings.Preset},
			{Key: "Config", Value: plan.configPath},
		})
	}

	runner := deps.Build.Runner
	if runner == nil {
		runner = process.ExecRunner{Stdout: out, Stderr: deps.ErrOut, Quiet: cli.Build.Quiet}
	}
	files := deps.Build.Files
	if files == nil {
		files = fileops.OS{}
	}

	invoker := builder.Invoker{
		Runner:  runner,
		Files:   files,
		Options: plan.options,
		Env:     plan.env,
		Logger:  logger,
	}
	// The wait is not interruptible; no deadline or cancellation is applied.
	buildErr := invoker.Invoke(context.Background(), plan.request)
	return reportOutcome(console, plan, buildErr, cli.Build.Quiet)
}

func resolveBuildPlan(cli CLI, logger *slog.Logger) (buildPlan, error) {
	project := cli.Build.ProjectPath
	request := builder.BuildRequest{ProjectPath: project}

	configPath := strings.TrimSpace(cli.Config)
	required := configPath != ""
	if !required {
		path, err := config.ProjectConfigPath(project)
		if err != nil {
			return buildPlan{}, err
		}
		configPath = path
	}
	cfg := config.DefaultProjectConfig()
	// A project path that is not a directory has no config; the invoker
	// reports the missing wrapper.
	if required || fileops.DirExists(project) {
		loaded, err := config.LoadProjectConfig(configPath, required)
		if err != nil {
			return buildPlan{}, err
		}
		cfg = loaded
	}
	settings, err := cfg.Resolve()
	if err != nil {
		return buildPlan{}, err
	}
	logger.Debug("config resolved", "path", configPath, "preset", settings.Preset)

	options := builder.Options{
		Wrapper:     settings.Wrapper,
		Goal:        settings.Goal,
		ArtifactDir: settings.ArtifactDir,
	}.WithDefaults()

	envFile := strings.TrimSpace(cli.EnvFile)
	if envFile == "" {
		envFile = envutil.ResolvePath(project, settings.EnvFile)
	}
	var env []string
	if envFile != "" {
		env, err = envutil.ReadEnvFile(envFile)
		if err != nil {
			return buildPlan{}, err
		}
		logger.Debug("env file loaded", "path", envFile, "count", len(env))
	}

	renderer, err := report.New(report.Templates{
		MissingWrapper: settings.Messages.MissingWrapper,
		Success:        settings.Messages.Success,
		Failure:        settings.Messages.Failure,
		InternalError:  settings.Messages.InternalError,
	})
	if err != nil {
		return buildPlan{}, err
	}

	return buildPlan{
		request:    request,
		options:    options,
		settings:   settings,
		configPath: configPath,
		env:        env,
		renderer:   renderer,
	}, nil
}

// reportOutcome prints the outcome message and returns the exit code for it.
func reportOutcome(console ui.UserInterface, plan buildPlan, buildErr error, quiet bool) int {
	data := report.Data{
		Wrapper:      plan.options.Wrapper,
		Goal:         plan.options.Goal,
		ProjectPath:  plan.request.ProjectPath,
		ArtifactDir:  plan.options.ArtifactDir,
		ArtifactName: plan.settings.ArtifactName,
		ProjectKind:  plan.settings.ProjectKind,
	}

	var (
		msg      string
		err      error
		exitCode int
	)
	switch builder.Classify(buildErr) {
	case builder.OutcomeSucceeded:
		msg, err = plan.renderer.Success(data)
		exitCode = ExitOK
	case builder.OutcomeMissingWrapper:
		msg, err = plan.renderer.MissingWrapper(data)
		exitCode = ExitMissingWrapper
	case builder.OutcomeBuildFailed:
		var failed *builder.BuildFailedError
		errors.As(buildErr, &failed)
		data.Detail = failed.Error()
		data.ExitCode = failed.ExitCode
		msg, err = plan.renderer.Failure(data)
		exitCode = ExitFailure
		if err == nil && quiet {
			defer console.Excerpt("🧾", "Wrapper stderr (tail)", string(failed.Stderr))
		}
	default:
		data.Detail = buildErr.Error()
		msg, err = plan.renderer.InternalError(data)
		exitCode = ExitInternalError
	}
	if err != nil {
		// Keep the outcome visible even when a custom template is broken.
		console.Warn(fmt.Sprintf("✗ %v", err))
		if buildErr != nil {
			console.Info(buildErr.Error())
		}
		return exitCode
	}
	console.Info(msg)
	return exitCode
}

// Where: apkbuild/internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/poruru-code/apkbuild/internal/builder"
	"github.com/poruru-code/apkbuild/internal/infra/envutil"
	"github.com/poruru-code/apkbuild/internal/infra/interaction"
	"github.com/poruru-code/apkbuild/internal/infra/process"
	"github.com/poruru-code/apkbuild/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
// Nil fields fall back to the real terminal, filesystem and process runner.
type Dependencies struct {
	Out         io.Writer
	ErrOut      io.Writer
	In          io.Reader
	Prompter    interaction.Prompter
	Interactive func(out io.Writer) bool
	Build       BuildDeps
}

// BuildDeps holds the capabilities used by the build command.
type BuildDeps struct {
	Runner process.CommandRunner
	Files  builder.FileSystem
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	Config  string `short:"c" name:"config" help:"Path to project config (default: <project>/.apkbuild.yaml)"`
	EnvFile string `name:"env-file" help:"Dotenv file with variables for the wrapper process"`
	Verbose bool   `short:"v" help:"Enable debug logging on stderr"`
	Emoji   bool   `name:"emoji" help:"Enable emoji output (default: auto)"`
	NoEmoji bool   `name:"no-emoji" help:"Disable emoji output"`

	Build   BuildCmd   `cmd:"" default:"withargs" help:"Build the project with its wrapper script (default command)"`
	Init    InitCmd    `cmd:"" help:"Write a project config from a preset"`
	Presets PresetsCmd `cmd:"" help:"List recognized build presets"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type (
	// BuildCmd defines the build command arguments.
	BuildCmd struct {
		ProjectPath string `arg:"" name:"project_path" help:"Path to your Android project"`
		Quiet       bool   `short:"q" help:"Do not stream wrapper output; print its stderr tail on failure"`
	}

	// InitCmd defines the init command arguments.
	InitCmd struct {
		ProjectPath string `arg:"" optional:"" name:"project_path" default:"." help:"Project directory (default: current directory)"`
		Preset      string `short:"p" help:"Preset name (see 'presets')"`
		Force       bool   `short:"f" help:"Overwrite an existing config"`
	}

	PresetsCmd struct{}

	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. It returns the process exit code.
func Run(args []string, deps Dependencies) int {
	deps = deps.withDefaults()
	out := deps.Out

	// Handle no arguments: prompt for a project on a terminal, otherwise show usage.
	if len(args) == 0 {
		return runNoArgs(deps, out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(cliName()),
		kong.Description("Turn any Android project into an APK in just a second."),
		kong.Writers(out, deps.ErrOut),
	)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(err, out)
	}

	// Load .env from the current directory into the process environment, as
	// the wrapper inherits it.
	if err := envutil.LoadDotEnv("."); err != nil {
		newUI(out, false).Warn(fmt.Sprintf("failed to load .env: %v", err))
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	return exitWithError(out, fmt.Errorf("%w: %s", errUnknownCommand, command))
}

func (d Dependencies) withDefaults() Dependencies {
	if d.Out == nil {
		d.Out = os.Stdout
	}
	if d.ErrOut == nil {
		d.ErrOut = os.Stderr
	}
	if d.In == nil {
		d.In = os.Stdin
	}
	if d.Prompter == nil {
		d.Prompter = interaction.HuhPrompter{}
	}
	if d.Interactive == nil {
		d.Interactive = interaction.IsInteractive
	}
	return d
}

type commandHandler func(CLI, Dependencies, io.Writer) int

type prefixHandler struct {
	prefix  string
	handler commandHandler
}

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"presets": runPresets,
		"version": func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	prefixHandlers := []prefixHandler{
		{prefix: "build", handler: runBuild},
		{prefix: "init", handler: runInit},
	}

	for _, entry := range prefixHandlers {
		if strings.HasPrefix(command, entry.prefix) {
			return entry.handler(cli, deps, out), true
		}
	}

	return ExitFailure, false
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	newUI(out, false).Info(version.GetVersion())
	return ExitOK
}

// runNoArgs asks for a project path on a terminal and builds it. Without a
// terminal it prints usage, since the project path is required.
func runNoArgs(deps Dependencies, out io.Writer) int {
	if deps.Interactive(out) {
		path, err := deps.Prompter.Input("Path to your Android project", []string{"."})
		if err != nil {
			return exitWithError(out, err)
		}
		if strings.TrimSpace(path) != "" {
			return Run([]string{"build", strings.TrimSpace(path)}, deps)
		}
	}

	ui := newUI(out, false)
	cmd := cliName()
	ui.Info("Usage:")
	ui.Info(fmt.Sprintf("  %s <project_path> [flags]", cmd))
	ui.Info("")
	ui.Info(fmt.Sprintf("Try: %s --help", cmd))
	return ExitFailure
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(err error, out io.Writer) int {
	msg := err.Error()
	ui := newUI(out, false)
	cmd := cliName()
	switch {
	case strings.Contains(msg, "<project_path>"):
		ui.Warn("A project path is required.")
		ui.Info(fmt.Sprintf("Example: %s ./my-android-app", cmd))
		return ExitFailure
	case strings.Contains(msg, "--env-file"):
		ui.Warn("`--env-file` expects a value. Provide a file path.")
		ui.Info(fmt.Sprintf("Example: %s --env-file .env.build ./my-android-app", cmd))
		return ExitFailure
	case strings.Contains(msg, "--config"):
		ui.Warn("`-c/--config` expects a value. Provide a config file path.")
		ui.Info(fmt.Sprintf("Example: %s -c ci.apkbuild.yaml ./my-android-app", cmd))
		return ExitFailure
	}
	return exitWithError(out, err)
}

// Package cli implements the command-line interface of iotable.
package cli

import (
	"fmt"
	"os"

	"github.com/replit/iotable/internal/config"
	"github.com/replit/iotable/internal/trace"
	"github.com/replit/iotable/internal/util"
	"github.com/spf13/cobra"
)

// version is set at build time to a Git tag or the string
// "development version" when not tagging a release.
var version = "unknown version"

// getVersion returns a string that can be printed when calling
// 'iotable --version'.
func getVersion() string {
	return "iotable " + version
}

// flagState holds the values of command-line flags shared between
// subcommands.
type flagState struct {
	configPath string
	color      string
	formatStr  string
	output     string
	noPager    bool
}

// resolveOptions merges the settings file with the flags that were
// given explicitly on the command line.
func resolveOptions(cmd *cobra.Command, flags *flagState) (outputOptions, error) {
	path := flags.configPath
	if path == "" {
		var err error
		path, err = config.SettingsPath()
		if err != nil {
			return outputOptions{}, err
		}
	}
	settings, err := config.LoadSettings(path)
	if err != nil {
		return outputOptions{}, err
	}

	colorMode := settings.Color
	if cmd.Flags().Changed("color") {
		colorMode = flags.color
	}
	if err := util.SetColorMode(colorMode); err != nil {
		return outputOptions{}, err
	}

	formatStr := settings.Format
	if cmd.Flags().Changed("format") {
		formatStr = flags.formatStr
	}
	format, err := parseOutputFormat(formatStr)
	if err != nil {
		return outputOptions{}, err
	}

	return outputOptions{
		format: format,
		output: flags.output,
		pager:  settings.Pager && !flags.noPager,
	}, nil
}

// addOutputFlags registers --format, --output and --no-pager.
func addOutputFlags(cmd *cobra.Command, flags *flagState) {
	cmd.Flags().SortFlags = false
	cmd.Flags().StringVarP(
		&flags.formatStr, "format", "f", "table", `output format ("table" or "json")`,
	)
	cmd.Flags().StringVarP(
		&flags.output, "output", "o", "", "write to this file instead of stdout",
	)
	cmd.Flags().BoolVar(
		&flags.noPager, "no-pager", false, "never show wide tables through less",
	)
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	var flags flagState

	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:          "iotable",
		Short:        "Render tables as fixed-width text",
		Version:      getVersion(),
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate(`{{.Version}}` + "\n")
	rootCmd.PersistentFlags().BoolVarP(
		&config.Quiet, "quiet", "q", false, "don't show progress messages",
	)
	rootCmd.PersistentFlags().StringVar(
		&flags.color, "color", "auto", `color error messages ("auto", "always" or "never")`,
	)
	rootCmd.PersistentFlags().StringVar(
		&flags.configPath, "config", "", "settings file (default $IOTABLE_CONFIG or the user config dir)",
	)
	rootCmd.PersistentFlags().BoolP(
		"help", "h", false, "display command-line usage",
	)
	rootCmd.PersistentFlags().BoolP(
		"version", "v", false, "display command version",
	)

	cmdRender := &cobra.Command{
		Use:   "render FILE...",
		Short: "Render table documents and HTML tables",
		Long: "Render table documents (.toml, .yaml, .yml, .json) and the first\n" +
			"<table> of HTML files (.html, .htm), in the order given",
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			opts, err := resolveOptions(cmd, &flags)
			if err != nil {
				die("%s", err)
			}
			runRender(cmd.Context(), args, opts)
		},
	}
	addOutputFlags(cmdRender, &flags)
	rootCmd.AddCommand(cmdRender)

	cmdQuery := &cobra.Command{
		Use:   "query DATABASE SQL [ARG...]",
		Short: "Render the result of a SQLite query",
		Long:  "Run SQL against a SQLite database, opened read-only, and render the result",
		Args:  cobra.MinimumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			opts, err := resolveOptions(cmd, &flags)
			if err != nil {
				die("%s", err)
			}
			runQuery(cmd.Context(), args[0], args[1], args[2:], opts)
		},
	}
	addOutputFlags(cmdQuery, &flags)
	rootCmd.AddCommand(cmdQuery)

	cmdKinds := &cobra.Command{
		Aliases: []string{"types"},
		Use:     "kinds",
		Short:   "List the column types table documents may declare",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runKinds()
		},
	}
	rootCmd.AddCommand(cmdKinds)

	return rootCmd
}

// DoCLI reads the command-line arguments and runs the appropriate
// code, then exits the process (or returns to indicate normal exit).
func DoCLI() {
	rootCmd := newRootCmd()

	specialArgs := map[string](func()){}
	for _, helpFlag := range []string{"-help", "-?"} {
		specialArgs[helpFlag] = func() {
			rootCmd.Usage()
			os.Exit(0)
		}
	}
	for _, versionFlag := range []string{"-version", "-V"} {
		specialArgs[versionFlag] = func() {
			fmt.Println(getVersion())
			os.Exit(0)
		}
	}

	if len(os.Args) >= 2 {
		fn, ok := specialArgs[os.Args[1]]
		if ok {
			fn()
		}
	}

	if trace.MaybeTrace(getVersion()) {
		defer trace.Stop()
	}

	if err := rootCmd.Execute(); err != nil {
		trace.Stop()
		os.Exit(1)
	}
}

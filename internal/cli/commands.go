// Package cli wires the coursegantt commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/joywang0926/course-gantt-app/internal/config"
	"github.com/joywang0926/course-gantt-app/internal/conflict"
	"github.com/joywang0926/course-gantt-app/internal/csvio"
	"github.com/joywang0926/course-gantt-app/internal/logging"
	"github.com/joywang0926/course-gantt-app/internal/server"
	"github.com/joywang0926/course-gantt-app/internal/timeline"
	"github.com/joywang0926/course-gantt-app/internal/version"
	"github.com/joywang0926/course-gantt-app/pkg/model"
)

// app holds state shared by the commands of one root command.
type app struct {
	verbosity  int
	configPath string
	logFile    string
	horizon    int
	mode       string
	sheet      string
	delimiter  string

	cfg *config.Configuration
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "coursegantt",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(a.verbosity, a.logFile)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return a.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVar(&a.configPath, "config", "", MsgFlagConfig)
	pf.StringVar(&a.logFile, "log-file", logging.LogFilePath(), MsgFlagLogFile)
	pf.IntVar(&a.horizon, "horizon", model.DefaultHorizon, MsgFlagHorizon)
	pf.StringVar(&a.mode, "mode", conflict.FirstOccupant.String(), MsgFlagMode)
	pf.StringVar(&a.sheet, "sheet", "", MsgFlagSheet)
	pf.StringVar(&a.delimiter, "delimiter", ",", MsgFlagDelimiter)

	rootCmd.AddCommand(
		newCheckCmd(a),
		newTimelineCmd(a),
		newExportCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// loadConfig reads the config file and lets explicitly set flags win.
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	flags := cmd.Flags()
	if flags.Changed("horizon") {
		cfg.Horizon = a.horizon
	}
	if flags.Changed("mode") {
		cfg.Mode = a.mode
	}
	if flags.Changed("sheet") {
		cfg.Sheet = a.sheet
	}
	if flags.Changed("delimiter") {
		cfg.Delimiter = a.delimiter
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	a.cfg = cfg
	return nil
}

// run loads the course sheet and detects conflicts.
func (a *app) run(args []string) (*conflict.Result, []*model.ConflictRow, []conflict.Rejection, error) {
	path := a.cfg.CoursesFile
	if len(args) > 0 {
		path = args[0]
	}
	delim, err := a.cfg.DelimiterRune()
	if err != nil {
		return nil, nil, nil, err
	}

	rows, err := csvio.Load(path, a.cfg.Sheet, delim)
	if err != nil {
		return nil, nil, nil, fmt.Errorf(MsgErrLoadCourses, err)
	}
	courses, rejected := csvio.Selected(rows)

	detector, err := a.cfg.Detector()
	if err != nil {
		return nil, nil, nil, err
	}

	start := time.Now()
	res, conflicts := detector.Report(courses)
	logging.LogDuration(log.Logger, start, "detect")

	// report detector rejections by sheet row as well
	for _, rj := range res.Rejected {
		rj.Index = rowOf(rows, rj.Index)
		rejected = append(rejected, rj)
	}
	log.Info().
		Str("path", path).
		Int("courses", len(courses)).
		Int("conflicts", len(conflicts)).
		Int("rejected", len(rejected)).
		Msg("Detection finished")
	return res, conflicts, rejected, nil
}

// rowOf finds the sheet row a detector rejection came from.
func rowOf(rows []*model.CourseRow, index int) int {
	seen := -1
	for i, row := range rows {
		if !row.Selected() {
			continue
		}
		if _, err := row.Course(); err != nil {
			continue
		}
		seen++
		if seen == index {
			return i
		}
	}
	return index
}

func newCheckCmd(a *app) *cobra.Command {
	var report, strict bool
	cmd := &cobra.Command{
		Use:   "check [courses-file]",
		Short: MsgCheckShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, conflicts, rejected, err := a.run(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			csvio.PrintConflicts(out, conflicts, rejected)
			if report {
				_, msg := conflict.Validate(&conflict.Result{Accepted: res.Accepted, Rejected: rejected}, conflicts)
				fmt.Fprintln(out)
				fmt.Fprint(out, msg)
			}
			if strict && res.HasConflicts() {
				return fmt.Errorf(MsgErrConflicts, len(conflicts))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&report, "report", false, MsgFlagReport)
	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)
	return cmd
}

func newTimelineCmd(a *app) *cobra.Command {
	var color string
	cmd := &cobra.Command{
		Use:   "timeline [courses-file]",
		Short: MsgTimelineShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var styled bool
			switch color {
			case "auto":
				styled = timeline.DetectStyled(os.Stdout) && cmd.OutOrStdout() == os.Stdout
			case "always":
				styled = true
			case "never":
				styled = false
			default:
				return fmt.Errorf(MsgErrColor, color)
			}

			res, conflicts, rejected, err := a.run(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, timeline.Render(res.Accepted, res.Conflicts, timeline.Options{Horizon: a.cfg.Horizon, Styled: styled}))
			fmt.Fprintln(out)
			csvio.PrintConflicts(out, conflicts, rejected)
			return nil
		},
	}
	cmd.Flags().StringVar(&color, "color", "auto", MsgFlagColor)
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export [courses-file]",
		Short: MsgExportShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, conflicts, rejected, err := a.run(args)
			if err != nil {
				return err
			}
			path := a.cfg.ExportFile
			if output != "" {
				path = output
			}
			if err := csvio.ExportConflicts(conflicts, path); err != nil {
				return fmt.Errorf(MsgErrExport, err)
			}
			for _, rj := range rejected {
				log.Warn().Int("row", rj.Index+1).Str("course", rj.Course.Name).Err(rj.Err).Msg("Row skipped")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", len(conflicts), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	return cmd
}

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: MsgServeShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.Addr = addr
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(a.cfg).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", MsgFlagAddr)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "coursegantt version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}

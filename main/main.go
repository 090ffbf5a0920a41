package main

import (
	"os"
	"runtime/pprof"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// FileGroup holds the optional log and profile files opened for one run.
type FileGroup struct {
	log, prof *os.File
}

func (fg *FileGroup) Close() {
	if fg.log != nil {
		if err := fg.log.Close(); err != nil {
			logrus.WithError(err).Error("closing log file")
		}
		logrus.SetOutput(os.Stderr)
		fg.log = nil
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		if err := fg.prof.Close(); err != nil {
			logrus.WithError(err).Error("closing profile")
		}
		fg.prof = nil
	}
}

type rootOptions struct {
	verbose     bool
	logFile     string
	profileFile string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	files := &FileGroup{}

	cmd := &cobra.Command{
		Use:   "athena",
		Short: "Evaluate, plot and apply projective geometric algebra scenes",
		Long: "athena builds scenes of points, lines, planes and motors from Lisp " +
			"scripts, evaluates them over time, plots them and applies their " +
			"motors to tables of points.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			if opts.logFile != "" {
				f, err := os.Create(opts.logFile)
				if err != nil {
					return errors.Wrap(err, "opening log file")
				}
				files.log = f
				logrus.SetOutput(f)
			}
			if opts.profileFile != "" {
				f, err := os.Create(opts.profileFile)
				if err != nil {
					return errors.Wrap(err, "opening profile")
				}
				files.prof = f
				if err := pprof.StartCPUProfile(f); err != nil {
					return errors.Wrap(err, "starting profile")
				}
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			files.Close()
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output")
	flags.StringVar(&opts.logFile, "log", "", "write log output to this file")
	flags.StringVar(&opts.profileFile, "cpuprofile", "", "write a CPU profile to this file")

	cmd.AddCommand(
		newEvalCommand(),
		newTransformCommand(),
		newPlotCommand(),
		newConfigCommand(),
		newDumpCommand(),
	)
	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Fatal("athena failed")
	}
}

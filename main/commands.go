package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"

	"github.com/davecgh/go-spew/spew"
	plt "github.com/phil-mansfield/pyplot"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/phil-mansfield/athena/batch"
	"github.com/phil-mansfield/athena/graph"
	"github.com/phil-mansfield/athena/io"
	"github.com/phil-mansfield/athena/render"
	"github.com/phil-mansfield/athena/script"
)

//////////
// eval //
//////////

type evalOptions struct {
	time float64
	out  string
}

func newEvalCommand() *cobra.Command {
	opts := &evalOptions{}
	cmd := &cobra.Command{
		Use:   "eval <script>",
		Short: "Run a script and print the values it shows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, args[0], opts)
		},
	}
	cmd.Flags().Float64VarP(&opts.time, "time", "t", 0, "time the scene is evaluated at")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "save the scene as YAML")
	return cmd
}

func runEval(cmd *cobra.Command, fname string, opts *evalOptions) error {
	src, err := os.ReadFile(fname)
	if err != nil {
		return errors.Wrap(err, "reading script")
	}

	s, evalErrs, err := script.NewEngine().Evaluate(string(src))
	if err != nil {
		return errors.Wrapf(err, "evaluating %s", fname)
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", fname, e)
		}
		return errors.Errorf("%s has %d error(s)", fname, len(evalErrs))
	}

	res, err := s.Evaluate(opts.time)
	if err != nil {
		return errors.Wrapf(err, "evaluating scene at t = %g", opts.time)
	}
	for _, sh := range res.Shown {
		logrus.WithFields(logrus.Fields{"node": sh.Name, "color": sh.Color}).
			Debug("shown")
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", sh.Name, sh.Value)
	}

	if opts.out != "" {
		if err := s.Save(opts.out); err != nil {
			return err
		}
		logrus.WithField("file", opts.out).Info("saved scene")
	}
	return nil
}

///////////////
// transform //
///////////////

func newTransformCommand() *cobra.Command {
	var config string
	cmd := &cobra.Command{
		Use:   "transform --config <file>",
		Short: "Move every point of a table by a motor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd.Context(), config)
		},
	}
	cmd.Flags().StringVarP(&config, "config", "c", "", "[Transform] and [Motor] config file")
	cmd.MarkFlagRequired("config")
	return cmd
}

func runTransform(ctx context.Context, config string) error {
	wrap, err := io.ReadTransformConfig(config)
	if err != nil {
		return err
	}
	con := &wrap.Transform

	xs, err := io.ReadPoints(con.Input, con.Columns())
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"points": len(xs), "motor": wrap.Motor.Type,
	}).Info("read points")

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	opt := batch.Options{Workers: con.Workers, ChunkSize: con.ChunkSize}
	if err := batch.MoveCoords3(ctx, wrap.Motor.Motor(), xs, opt); err != nil {
		return err
	}

	if con.IsBinary() {
		err = io.WriteBinaryPointsFile(con.Output, io.PointHeader{}, xs)
	} else {
		err = io.WritePointsFile(con.Output, xs)
	}
	if err != nil {
		return err
	}
	logrus.WithField("file", con.Output).Info("wrote points")
	return nil
}

//////////
// plot //
//////////

type plotOptions struct {
	config string
	time   float64
	out    string
	title  string
}

func newPlotCommand() *cobra.Command {
	opts := &plotOptions{}
	cmd := &cobra.Command{
		Use:   "plot [scene.yaml]",
		Short: "Plot the values a scene shows",
		Long: "plot evaluates a scene and draws its shown values with matplotlib. " +
			"Settings come from a [Plot] config file, from flags, or both; " +
			"flags win.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, args, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.config, "config", "c", "", "[Plot] config file")
	flags.Float64VarP(&opts.time, "time", "t", 0, "time the scene is evaluated at")
	flags.StringVarP(&opts.out, "out", "o", "", "image file")
	flags.StringVar(&opts.title, "title", "", "figure title")
	return cmd
}

func runPlot(cmd *cobra.Command, args []string, opts *plotOptions) error {
	wrap := io.DefaultPlotWrapper()
	if opts.config != "" {
		var err error
		if wrap, err = io.ReadPlotConfig(opts.config); err != nil {
			return err
		}
	}
	con := &wrap.Plot

	if len(args) > 0 {
		con.Scene = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("time") {
		con.Time = opts.time
	}
	if flags.Changed("out") {
		con.Output = opts.out
	}
	if flags.Changed("title") {
		con.Title = opts.title
	}
	if err := con.CheckInit(); err != nil {
		return err
	}

	s, err := graph.Load(con.Scene)
	if err != nil {
		return err
	}
	res, err := s.Evaluate(con.Time)
	if err != nil {
		return errors.Wrapf(err, "evaluating %s at t = %g", con.Scene, con.Time)
	}

	cam := render.DefaultCamera()
	cam.Eye = [3]float64{con.EyeX, con.EyeY, con.EyeZ}
	cam.FovY = con.FieldOfView * math.Pi / 180
	bounds := render.Bounds{XMin: con.XMin, XMax: con.XMax, YMin: con.YMin, YMax: con.YMax}

	fig := render.NewFigure(res, cam, bounds)
	fig.Title = con.Title
	fig.Draw(con.Output)
	plt.Execute()

	logrus.WithFields(logrus.Fields{
		"file": con.Output, "series": len(fig.Series),
	}).Info("plotted scene")
	return nil
}

////////////
// config //
////////////

var exampleConfigs = map[string]string{
	"transform": io.ExampleTransformFile,
	"plot":      io.ExamplePlotFile,
}

func newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "config <transform|plot>",
		Short:     "Print an example configuration file",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"transform", "plot"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, ok := exampleConfigs[strings.ToLower(args[0])]
			if !ok {
				return errors.Errorf(
					"unrecognized config type '%s'. Only recognized types "+
						"are 'transform' and 'plot'.", args[0],
				)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ex)
			return nil
		},
	}
}

//////////
// dump //
//////////

func newDumpCommand() *cobra.Command {
	var t float64
	cmd := &cobra.Command{
		Use:   "dump <scene.yaml>",
		Short: "Print the decoded scene and its values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := graph.Load(args[0])
			if err != nil {
				return err
			}
			cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true}
			cfg.Fdump(cmd.OutOrStdout(), s.Nodes)

			res, err := s.Evaluate(t)
			if err != nil {
				return errors.Wrapf(err, "evaluating %s at t = %g", args[0], t)
			}
			cfg.Fdump(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().Float64VarP(&t, "time", "t", 0, "time the scene is evaluated at")
	return cmd
}

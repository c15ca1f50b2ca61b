package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/katalvlaran/lvnum/compare"
	"github.com/katalvlaran/lvnum/internal/config"
	"github.com/katalvlaran/lvnum/internal/dataset"
	"github.com/katalvlaran/lvnum/internal/logging"
	"github.com/katalvlaran/lvnum/quad"
	"github.com/katalvlaran/lvnum/spline"
	"github.com/spf13/cast"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// floatList is a comma-separated list of numbers, coerced with spf13/cast.
type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = cast.ToString(v)
	}

	return strings.Join(parts, ",")
}

func (l *floatList) Set(s string) error {
	*l = (*l)[:0]
	for _, p := range strings.Split(s, ",") {
		v, err := cast.ToFloat64E(strings.TrimSpace(p))
		if err != nil {
			return err
		}
		*l = append(*l, v)
	}

	return nil
}

type options struct {
	data      string
	boundary  string
	slopes    floatList
	samples   int
	eval      floatList
	order     int
	integrate bool
	compare   bool
	level     float64
	set       map[string]bool // flags given explicitly
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "splinectl:", err)
		return exitUsage
	}

	opts, err := parseFlags(args, cfg, stderr)
	if err != nil {
		return exitUsage
	}

	log, err := logging.New(logging.Config{Level: cfg.LogLevel, Development: cfg.LogDev, Writer: stderr})
	if err != nil {
		log = logging.NewDefault()
		log.Warn("falling back to default logger", zap.String("level", cfg.LogLevel), zap.Error(err))
	}
	defer func() { _ = log.Sync() }()

	if err = report(stdout, log, cfg, opts); err != nil {
		log.Error("splinectl failed", zap.Error(err))
		fmt.Fprintln(stderr, "splinectl:", err)
		return exitError
	}

	return exitOK
}

func parseFlags(args []string, cfg *config.Config, stderr io.Writer) (*options, error) {
	o := &options{slopes: append(floatList(nil), cfg.Slopes...)}

	fs := flag.NewFlagSet("splinectl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.data, "data", "", "dataset file (.yaml, .toml, .dat)")
	fs.StringVar(&o.boundary, "boundary", cfg.Boundary, "boundary condition: natural or clamped")
	fs.Var(&o.slopes, "slopes", "clamped end slopes `a,b`")
	fs.IntVar(&o.samples, "samples", cfg.Samples, "grid size for the sampling summary")
	fs.Var(&o.eval, "eval", "comma-separated evaluation points")
	fs.IntVar(&o.order, "order", cfg.Order, "derivative order for -eval (0, 1 or 2)")
	fs.BoolVar(&o.integrate, "integrate", false, "integrate over the domain, exact and Romberg")
	fs.BoolVar(&o.compare, "compare", false, "leave-one-out comparison with polynomial interpolants")
	fs.Float64Var(&o.level, "level", 0, "report x where S(x) equals this value")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })

	switch {
	case o.data == "":
		fmt.Fprintln(stderr, "splinectl: -data is required")
	case o.samples < 2:
		fmt.Fprintln(stderr, "splinectl: -samples must be at least 2")
	case !spline.Order(o.order).Valid():
		fmt.Fprintln(stderr, "splinectl: -order must be 0, 1 or 2")
	default:
		return o, nil
	}
	fs.Usage()

	return nil, errors.New("usage")
}

// boundaryCondition applies flag > dataset > environment precedence.
func (o *options) boundaryCondition(ds *dataset.Dataset) (spline.Boundary, error) {
	if o.set["boundary"] || o.set["slopes"] || ds.Boundary == "" {
		slopes := o.slopes
		if o.set["boundary"] && !o.set["slopes"] && strings.EqualFold(strings.TrimSpace(o.boundary), spline.NameNatural) {
			slopes = nil // environment slopes belong to the overridden boundary
		}

		return spline.ParseBoundary(o.boundary, slopes)
	}

	return ds.BoundaryCondition()
}

func report(w io.Writer, log *logging.Logger, cfg *config.Config, o *options) error {
	ds, err := dataset.Load(o.data)
	if err != nil {
		return err
	}
	log.Info("dataset loaded", zap.String("name", ds.Name), zap.Int("samples", len(ds.X)))

	bc, err := o.boundaryCondition(ds)
	if err != nil {
		return err
	}
	sp, err := spline.Build(ds.X, ds.Y, bc, cfg.SplineOptions()...)
	if err != nil {
		return err
	}
	log.Debug("spline built", zap.Stringer("boundary", bc), zap.Int("segments", sp.Len()))

	fmt.Fprintf(w, "Cubic spline (%s), %d knots, %d segments\n\n", bc, len(ds.X), sp.Len())
	if err = spline.WriteTable(w, sp); err != nil {
		return err
	}
	fmt.Fprintln(w)
	for _, eq := range spline.Equations(sp) {
		fmt.Fprintln(w, eq)
	}

	if len(o.eval) > 0 {
		if err = writeEval(w, sp, o.eval, spline.Order(o.order)); err != nil {
			return err
		}
	}
	if err = writeSamples(w, sp, o.samples); err != nil {
		return err
	}
	if o.integrate {
		if err = writeIntegral(w, log, sp, cfg.QuadOptions()); err != nil {
			return err
		}
	}
	if o.compare {
		if err = writeComparison(w, ds); err != nil {
			return err
		}
	}
	if o.set["level"] {
		xs, err := levelCrossings(sp, o.level, cfg.RootsOptions())
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\nS(x) = %g\n", o.level)
		if len(xs) == 0 {
			fmt.Fprintln(w, "  no crossing inside the domain")
		}
		for _, x := range xs {
			fmt.Fprintf(w, "  x = %.6f\n", x)
		}
	}

	return nil
}

var orderLabel = [...]string{"S", "S'", "S''"}

func writeEval(w io.Writer, sp *spline.Spline, points []float64, order spline.Order) error {
	ys, err := sp.EvalAll(points, order)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	for i, x := range points {
		mark := ""
		if sp.IsExtrapolated(x) {
			mark = "  (extrapolated)"
		}
		fmt.Fprintf(w, "%s(%g) = %.6f%s\n", orderLabel[order], x, ys[i], mark)
	}

	return nil
}

func writeSamples(w io.Writer, sp *spline.Spline, n int) error {
	lo, hi := sp.Domain()
	grid := make([]float64, n)
	floats.Span(grid, lo, hi)
	ys, err := sp.EvalAll(grid, spline.OrderValue)
	if err != nil {
		return err
	}
	iMin, iMax := floats.MinIdx(ys), floats.MaxIdx(ys)
	fmt.Fprintf(w, "\nSampled %d points on [%g, %g]\n", n, lo, hi)
	fmt.Fprintf(w, "  max %.6f at x = %.6f\n", ys[iMax], grid[iMax])
	fmt.Fprintf(w, "  min %.6f at x = %.6f\n", ys[iMin], grid[iMin])

	return nil
}

func writeIntegral(w io.Writer, log *logging.Logger, sp *spline.Spline, opts *quad.Options) error {
	lo, hi := sp.Domain()
	exact := sp.Integral(lo, hi)
	res, err := quad.Romberg(sp.Value, lo, hi, opts)
	if errors.Is(err, quad.ErrNoConvergence) {
		log.Warn("romberg did not converge", zap.Int("levels", res.Levels))
	} else if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nIntegral over [%g, %g]\n", lo, hi)
	fmt.Fprintf(w, "  exact    %.10f\n", exact)
	fmt.Fprintf(w, "  romberg  %.10f  (%d levels, |diff| %.2e)\n", res.Value, res.Levels, math.Abs(res.Value-exact))

	return nil
}

func writeComparison(w io.Writer, ds *dataset.Dataset) error {
	rep, err := compare.LeaveOneOut(ds.X, ds.Y)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nLeave-one-out mean absolute error")
	for _, s := range rep.Scores {
		fmt.Fprintf(w, "  %-9s %.15f\n", s.Method, s.MAE)
	}
	fmt.Fprintf(w, "  best: %s\n", rep.Best)

	return nil
}

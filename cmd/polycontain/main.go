package main

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polycontain"
	"github.com/osuushi/polycontain/internal"
	"github.com/osuushi/polycontain/internal/dbg"
	"github.com/osuushi/polycontain/internal/logger"
	"github.com/osuushi/polycontain/internal/polyio"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Test query points against a polygon read from a file. The polygon may wind
// either way. Query points come from --point flags and from the file itself,
// and each one is printed as "x y inside" or "x y outside".
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.L().Warn("could not load .env", "err", err)
	}
	if err := run(os.Args[1:], os.Stdout); err != nil {
		logger.L().Error("polycontain failed", "err", err)
		os.Exit(1)
	}
}

type options struct {
	file    string
	points  []string
	trace   bool
	png     string
	imgcat  bool
	scale   float64
	noColor bool
}

func newApp(opts *options) *kingpin.Application {
	app := kingpin.New("polycontain", "Boundary-inclusive point-in-polygon queries.")
	app.Arg("file", "Polygon file (.svg, .yaml, .yml, or text with one \"x y\" per line).").
		Required().ExistingFileVar(&opts.file)
	app.Flag("point", "Query point as x,y. Repeatable.").
		Short('p').Envar("POLYCONTAIN_POINTS").StringsVar(&opts.points)
	app.Flag("trace", "Print each step of the ear reduction.").
		Envar("POLYCONTAIN_TRACE").BoolVar(&opts.trace)
	app.Flag("png", "Render the polygon and results to this PNG file.").
		Envar("POLYCONTAIN_PNG").StringVar(&opts.png)
	app.Flag("imgcat", "Show the rendering inline in the terminal (iTerm only).").
		Envar("POLYCONTAIN_IMGCAT").BoolVar(&opts.imgcat)
	app.Flag("scale", "Rendering scale in pixels per unit.").
		Default("50").Envar("POLYCONTAIN_SCALE").Float64Var(&opts.scale)
	app.Flag("no-color", "Disable colored output.").
		Envar("POLYCONTAIN_NO_COLOR").BoolVar(&opts.noColor)
	return app
}

func run(args []string, out io.Writer) error {
	var opts options
	if _, err := newApp(&opts).Parse(args); err != nil {
		return errors.WithStack(err)
	}
	if !(opts.scale > 0) {
		return errors.Errorf("--scale must be positive, got %g", opts.scale)
	}
	au := aurora.NewAurora(!opts.noColor)
	log := logger.L().With("file", opts.file)

	input, err := polyio.ReadFile(opts.file)
	if err != nil {
		return err
	}
	queries := input.Points
	for _, s := range opts.points {
		point, err := polyio.ParsePoint(s)
		if err != nil {
			return errors.Wrapf(err, "--point %q", s)
		}
		queries = append(queries, point)
	}
	log.Debug("read polygon", "vertices", len(input.Polygon), "queries", len(queries))

	angle, err := polycontain.Orientation(input.Polygon)
	if err != nil {
		return err
	}
	log.Debug("orientation", "angle", angle)

	results := make([]internal.QueryResult, 0, len(queries))
	for _, query := range queries {
		var trace polycontain.Tracer
		if opts.trace {
			fmt.Fprintf(out, "%s %v\n", au.Bold("query"), query)
			trace = func(event polycontain.Event) {
				printEvent(out, au, event)
			}
		}
		contained, err := polycontain.ContainsTraced(input.Polygon, query, trace)
		if err != nil {
			return errors.Wrapf(err, "query %v", query)
		}
		results = append(results, internal.QueryResult{Point: query, Contained: contained})

		verdict := au.Red("outside")
		if contained {
			verdict = au.Green("inside")
		}
		fmt.Fprintf(out, "%g %g %s\n", query.X, query.Y, verdict)
	}

	if opts.png == "" && !opts.imgcat {
		return nil
	}
	return render(opts, input.Polygon, results, out, log)
}

func render(opts options, polygon []internal.Point, results []internal.QueryResult, out io.Writer, log *slog.Logger) error {
	path := opts.png
	if path == "" {
		dir, err := os.MkdirTemp("", "polycontain")
		if err != nil {
			return errors.WithStack(err)
		}
		defer os.RemoveAll(dir)
		path = filepath.Join(dir, "polycontain.png")
	}

	c := internal.DrawQueries(internal.Polygon{Points: polygon}, results, opts.scale)
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	if opts.png != "" {
		log.Info("wrote rendering", "png", path)
	}
	if opts.imgcat {
		return internal.CatPNG(path, out)
	}
	return nil
}

func printEvent(out io.Writer, au aurora.Aurora, event polycontain.Event) {
	kind := au.Cyan(event.Kind.String())
	switch event.Kind {
	case polycontain.EventReversed:
		fmt.Fprintf(out, "  %s clockwise input\n", kind)
		return
	case polycontain.EventHit:
		kind = au.Green(event.Kind.String())
	case polycontain.EventFinal:
		if event.Contained {
			kind = au.Green(event.Kind.String())
		} else {
			kind = au.Red(event.Kind.String())
		}
	case polycontain.EventCollinear:
		kind = au.Yellow(event.Kind.String())
	}
	t := event.Triangle
	fmt.Fprintf(out, "  %s %s %s %s", kind, vertexName(t.A), vertexName(t.B), vertexName(t.C))
	if event.Kind == polycontain.EventCollinear || event.Kind == polycontain.EventClipped {
		fmt.Fprintf(out, " -%s", vertexName(event.Removed))
	}
	fmt.Fprintf(out, " (%d left)\n", event.Remaining)
}

func vertexName(p internal.Point) string {
	return fmt.Sprintf("%s(%g,%g)", dbg.Name(p), p.X, p.Y)
}

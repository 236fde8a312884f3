// Command atwt splits images into À Trous wavelet bands and merges them back.
//
// Usage:
//
//	atwt [-workers N] [-planes] [-v] extract   -in src.png -out detail.png [-radius 1]
//	atwt [-workers N] [-planes] [-v] replace   -base base.png -detail detail.png -out out.png
//	atwt [-workers N] [-planes] [-v] subtract  -in src.png -detail detail.png -out base.png
//	atwt [-workers N] [-planes] [-v] decompose -in src.png -levels 4 -dir bands [-ext png]
//	atwt [-workers N] [-planes] [-v] recompose -dir bands -levels 4 -out out.png [-ext png]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/atwt"
	"github.com/gogpu/atwt/pyramid"
)

var errUsage = errors.New("usage: atwt [-workers N] [-planes] [-v] extract|replace|subtract|decompose|recompose [flags]")

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("atwt: %v", err)
	}
}

// env carries what every subcommand needs.
type env struct {
	opts []atwt.Option
	out  *message.Printer
	errw io.Writer
}

func run(args []string, stdout, stderr io.Writer) error {
	global := flag.NewFlagSet("atwt", flag.ContinueOnError)
	global.SetOutput(stderr)
	var (
		workers = global.Int("workers", 0, "worker goroutines per pass (0 = single-threaded)")
		planes  = global.Bool("planes", false, "process the planes of a frame concurrently")
		verbose = global.Bool("v", false, "log each processed plane to stderr")
	)
	if err := global.Parse(args); err != nil {
		return err
	}
	if global.NArg() == 0 {
		return errUsage
	}

	if *verbose {
		atwt.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer atwt.SetLogger(nil)
	}

	e := env{out: message.NewPrinter(language.English), errw: stderr}
	if *workers > 0 {
		pool := workerpool.New(*workers)
		defer pool.Close()
		e.opts = append(e.opts, atwt.WithPool(pool))
	}
	if *planes {
		e.opts = append(e.opts, atwt.WithConcurrentPlanes())
	}

	cmd, rest := global.Arg(0), global.Args()[1:]
	var err error
	switch cmd {
	case "extract":
		err = e.extract(rest, stdout)
	case "replace":
		err = e.replace(rest, stdout)
	case "subtract":
		err = e.subtract(rest, stdout)
	case "decompose":
		err = e.decompose(rest, stdout)
	case "recompose":
		err = e.recompose(rest, stdout)
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", cmd, err)
	}
	return nil
}

func (e env) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.errw)
	return fs
}

// required takes flag name and value pairs and reports the first empty one.
func required(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return fmt.Errorf("-%s is required", pairs[i])
		}
	}
	return nil
}

func (e env) extract(args []string, stdout io.Writer) error {
	fs := e.flags("extract")
	var (
		in     = fs.String("in", "", "source image")
		out    = fs.String("out", "", "detail image")
		radius = fs.Int("radius", 1, "wavelet scale, taps are 2^(radius-1) apart")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("in", *in, "out", *out); err != nil {
		return err
	}

	src, err := atwt.LoadFrame(*in)
	if err != nil {
		return err
	}
	ex, err := atwt.NewExtractor(src.Format(), *radius, e.opts...)
	if err != nil {
		return err
	}
	detail, err := ex.ProcessFrame(src)
	if err != nil {
		return err
	}
	if err := detail.Save(*out); err != nil {
		return err
	}
	e.report(stdout, src, 1)
	return nil
}

func (e env) replace(args []string, stdout io.Writer) error {
	fs := e.flags("replace")
	var (
		base   = fs.String("base", "", "base image")
		detail = fs.String("detail", "", "detail image")
		out    = fs.String("out", "", "output image")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("base", *base, "detail", *detail, "out", *out); err != nil {
		return err
	}
	return e.combine(*base, *detail, *out, stdout, (*atwt.Replacer).ProcessFrame)
}

func (e env) subtract(args []string, stdout io.Writer) error {
	fs := e.flags("subtract")
	var (
		in     = fs.String("in", "", "source image")
		detail = fs.String("detail", "", "detail image to remove")
		out    = fs.String("out", "", "base image")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("in", *in, "detail", *detail, "out", *out); err != nil {
		return err
	}
	return e.combine(*in, *detail, *out, stdout, (*atwt.Replacer).SubtractFrame)
}

func (e env) combine(aPath, bPath, outPath string, stdout io.Writer,
	fn func(*atwt.Replacer, *atwt.Frame, *atwt.Frame) (*atwt.Frame, error)) error {
	a, err := atwt.LoadFrame(aPath)
	if err != nil {
		return err
	}
	b, err := atwt.LoadFrame(bPath)
	if err != nil {
		return err
	}
	r, err := atwt.NewReplacer(a.Format(), e.opts...)
	if err != nil {
		return err
	}
	res, err := fn(r, a, b)
	if err != nil {
		return err
	}
	if err := res.Save(outPath); err != nil {
		return err
	}
	e.report(stdout, res, 1)
	return nil
}

func (e env) decompose(args []string, stdout io.Writer) error {
	fs := e.flags("decompose")
	var (
		in     = fs.String("in", "", "source image")
		levels = fs.Int("levels", 4, "number of detail bands")
		dir    = fs.String("dir", "", "output directory for bands")
		ext    = fs.String("ext", "png", "band file extension: png, tif or bmp")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("in", *in, "dir", *dir); err != nil {
		return err
	}

	src, err := atwt.LoadFrame(*in)
	if err != nil {
		return err
	}
	d, err := pyramid.DecomposeFrame(src, *levels, e.opts...)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*dir, 0o755); err != nil {
		return err
	}
	for i, band := range d.Details {
		if err := band.Save(bandPath(*dir, i+1, *ext)); err != nil {
			return err
		}
	}
	if err := d.Base.Save(basePath(*dir, *ext)); err != nil {
		return err
	}
	e.report(stdout, src, d.Levels()+1)
	return nil
}

func (e env) recompose(args []string, stdout io.Writer) error {
	fs := e.flags("recompose")
	var (
		dir    = fs.String("dir", "", "directory written by decompose")
		levels = fs.Int("levels", 4, "number of detail bands to add back")
		out    = fs.String("out", "", "output image")
		ext    = fs.String("ext", "png", "band file extension: png, tif or bmp")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("dir", *dir, "out", *out); err != nil {
		return err
	}
	if *levels < 0 {
		return fmt.Errorf("-levels %d: %w", *levels, pyramid.ErrInvalidLevels)
	}

	base, err := atwt.LoadFrame(basePath(*dir, *ext))
	if err != nil {
		return err
	}
	details := make([]*atwt.Frame, *levels)
	for i := range details {
		if details[i], err = atwt.LoadFrame(bandPath(*dir, i+1, *ext)); err != nil {
			return err
		}
	}
	res, err := pyramid.RecomposeFrame(base, details, e.opts...)
	if err != nil {
		return err
	}
	if err := res.Save(*out); err != nil {
		return err
	}
	e.report(stdout, res, *levels+1)
	return nil
}

func bandPath(dir string, level int, ext string) string {
	return filepath.Join(dir, fmt.Sprintf("detail_%02d.%s", level, ext))
}

func basePath(dir, ext string) string {
	return filepath.Join(dir, "base."+ext)
}

// report prints a one-line summary with locale digit grouping.
func (e env) report(w io.Writer, f *atwt.Frame, images int) {
	pixels := 0
	for _, p := range f.Planes() {
		pixels += p.Width() * p.Height()
	}
	e.out.Fprintf(w, "%v: %d planes, %d samples, %d images\n", f.Format(), f.NumPlanes(), pixels, images)
}

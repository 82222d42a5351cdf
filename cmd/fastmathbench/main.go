// Command fastmathbench times the fastmath kernels against the float32
// standard math library and reports speed and accuracy.
//
// Usage:
//
//	fastmathbench [flags]
//
// Examples:
//
//	fastmathbench
//	fastmathbench -n 1048576 -parallel -kernels sin,cos
//	fastmathbench -spur -bits 10
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cwbudde/algo-fastmath/fastmath"
)

type options struct {
	n        int
	iters    int
	seed     uint64
	bits     int
	taylor   bool
	parallel bool
	kernels  []fastmath.Kernel
	spur     bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg := []fastmath.Option{
		fastmath.WithTableBits(opts.bits),
		fastmath.WithParallel(opts.parallel),
	}
	if opts.taylor {
		cfg = append(cfg, fastmath.WithTableSource(fastmath.SourceTaylor))
	}
	eng := fastmath.New(cfg...)

	if err := printHeader(stdout, eng); err != nil {
		return err
	}
	if err := printTimings(stdout, eng, opts); err != nil {
		return err
	}
	if opts.spur {
		if _, err := fmt.Fprintln(stdout); err != nil {
			return err
		}
		return printSpur(stdout, opts.bits)
	}
	return nil
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("fastmathbench", flag.ContinueOnError)
	fs.SetOutput(stderr)

	n := fs.Int("n", 1<<16, "elements per block")
	iters := fs.Int("iters", 20, "timed passes per kernel")
	seed := fs.Uint64("seed", 1, "random input seed")
	bits := fs.Int("bits", fastmath.DefaultTableBits, "sine table size as a power of two")
	taylor := fs.Bool("taylor", false, "fill the sine table from the Taylor polynomial")
	parallel := fs.Bool("parallel", false, "allow the parallel block strategy")
	kernels := fs.String("kernels", "all", "comma-separated kernels to run (sin,cos,exp,log,sqrt,rsqrt,rcp)")
	spur := fs.Bool("spur", false, "also print SFDR/SINAD of the table sine")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: fastmathbench [flags]\n\n")
		_, _ = fmt.Fprintf(stderr, "Times fastmath block kernels against float32 math and reports error.\n\n")
		_, _ = fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if *n <= 0 {
		return options{}, fmt.Errorf("-n must be positive, got %d", *n)
	}
	if *iters <= 0 {
		return options{}, fmt.Errorf("-iters must be positive, got %d", *iters)
	}
	if *bits < fastmath.MinTableBits || *bits > fastmath.MaxTableBits {
		return options{}, fmt.Errorf("-bits must be in [%d, %d], got %d",
			fastmath.MinTableBits, fastmath.MaxTableBits, *bits)
	}

	ks, err := parseKernels(*kernels)
	if err != nil {
		return options{}, err
	}

	return options{
		n:        *n,
		iters:    *iters,
		seed:     *seed,
		bits:     *bits,
		taylor:   *taylor,
		parallel: *parallel,
		kernels:  ks,
		spur:     *spur,
	}, nil
}

func parseKernels(list string) ([]fastmath.Kernel, error) {
	list = strings.TrimSpace(list)
	if list == "" || strings.EqualFold(list, "all") {
		return fastmath.Kernels(), nil
	}

	var out []fastmath.Kernel
	seen := make(map[fastmath.Kernel]bool)
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		k, err := fastmath.ParseKernel(name)
		if err != nil {
			return nil, err
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	if len(out) == 0 {
		return nil, errors.New("no kernels selected")
	}
	return out, nil
}

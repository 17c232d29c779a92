package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/coreos/pkg/capnslog"
	"github.com/coreos/pkg/multierror"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
	"golang.org/x/sync/errgroup"

	"github.com/pontaoski/colt/ast"
	"github.com/pontaoski/colt/config"
	"github.com/pontaoski/colt/errors"
	"github.com/pontaoski/colt/irgen"
	"github.com/pontaoski/colt/parser"
)

var buildCommand = &cli.Command{
	Name:      "build",
	Usage:     "compile Colt sources to LLVM IR",
	ArgsUsage: "[FILES]",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "config", Value: config.FileName, Usage: "project file"},
		&cli.StringFlag{Name: "out", Usage: "directory receiving the .ll files"},
		&cli.BoolFlag{Name: "no-color", Usage: "disable colored diagnostics"},
		&cli.BoolFlag{Name: "no-error", Usage: "hide errors"},
		&cli.BoolFlag{Name: "no-warn", Usage: "hide warnings"},
		&cli.BoolFlag{Name: "no-message", Usage: "hide messages"},
		&cli.BoolFlag{Name: "print-ir", Usage: "print the IR instead of writing it"},
		&cli.BoolFlag{Name: "print-ast", Usage: "print the parsed expressions"},
		&cli.BoolFlag{Name: "library", Usage: "do not emit an entry point"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log debug output"},
		&cli.IntFlag{Name: "jobs", Aliases: []string{"j"}, Usage: "files parsed at once"},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		if cfg.Verbose {
			capnslog.SetGlobalLogLevel(capnslog.DEBUG)
		}

		sources, err := sourcesOf(c, cfg)
		if err != nil {
			return err
		}
		if len(sources) == 0 {
			return tracerr.New("no sources to build")
		}

		units := parseAll(sources, cfg.Jobs)
		if err := report(units, errors.NewPrinter(os.Stderr, cfg.PrintOptions())); err != nil {
			return err
		}

		settings := irgen.Settings{Package: cfg.Package, Library: c.Bool("library")}
		for _, u := range units {
			if cfg.PrintAST {
				for _, e := range u.tree.Expressions {
					repr.Println(ast.Describe(e))
				}
			}
			m := irgen.Lower(u.tree, settings)
			if cfg.PrintIR {
				os.Stdout.WriteString(m.String())
				continue
			}
			out := outputPath(cfg.Output, u.path)
			plog.Infof("writing %s", out)
			if err := ioutil.WriteFile(out, []byte(m.String()), 0644); err != nil {
				return tracerr.Wrap(err)
			}
		}
		return nil
	},
}

// loadConfig reads the project file when present and applies the flags the
// user set over it.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default(filepath.Base(mustGetwd()))
	if path := c.String("config"); fileExists(path) {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	} else if c.IsSet("config") {
		return cfg, tracerr.Errorf("%s does not exist", path)
	}

	if c.IsSet("no-color") {
		cfg.Colored = !c.Bool("no-color")
	}
	if c.IsSet("no-error") {
		cfg.PrintErrors = !c.Bool("no-error")
	}
	if c.IsSet("no-warn") {
		cfg.PrintWarnings = !c.Bool("no-warn")
	}
	if c.IsSet("no-message") {
		cfg.PrintMessages = !c.Bool("no-message")
	}
	if c.IsSet("print-ir") {
		cfg.PrintIR = c.Bool("print-ir")
	}
	if c.IsSet("print-ast") {
		cfg.PrintAST = c.Bool("print-ast")
	}
	if c.IsSet("verbose") {
		cfg.Verbose = c.Bool("verbose")
	}
	if c.IsSet("out") {
		cfg.Output = c.String("out")
	}
	if c.IsSet("jobs") {
		cfg.Jobs = c.Int("jobs")
	}
	if cfg.Jobs < 1 {
		cfg.Jobs = 1
	}
	return cfg, nil
}

func sourcesOf(c *cli.Context, cfg config.Config) ([]string, error) {
	if c.Args().Present() {
		return c.Args().Slice(), nil
	}
	if len(cfg.Sources) > 0 {
		return cfg.Sources, nil
	}
	return config.Glob(".")
}

type unit struct {
	path string
	tree *ast.AST
	sink *errors.Collector
	err  error
}

// parseAll parses every source with its own Context. Units come back in the
// order of paths regardless of completion order. A file that cannot be read
// gets a unit carrying the read error.
func parseAll(paths []string, jobs int) []*unit {
	units := make([]*unit, len(paths))

	var g errgroup.Group
	g.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			u := &unit{path: path, sink: &errors.Collector{}}
			units[i] = u

			src, err := ioutil.ReadFile(path)
			if err != nil {
				u.err = tracerr.Wrap(err)
				return nil
			}
			u.tree, u.err = parser.CreateAST(string(src), ast.NewContext(), u.sink)
			if u.err != nil {
				plog.Debugf("%s failed to parse: %v", path, u.err)
			}
			return nil
		})
	}
	g.Wait()
	return units
}

// report replays the diagnostics of every unit to r in order. Files that
// could not be read are returned together as a multierror.Error; otherwise
// the error counts of all files are summed.
func report(units []*unit, r errors.Reporter) error {
	var failed multierror.Error
	var total errors.ErrorCount
	for _, u := range units {
		u.sink.Replay(r)
		switch err := u.err.(type) {
		case nil:
		case errors.ErrorCount:
			total += err
		default:
			failed = append(failed, err)
		}
	}

	if err := failed.AsError(); err != nil {
		return err
	}
	if total > 0 {
		return total
	}
	return nil
}

func outputPath(dir, source string) string {
	name := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source)) + ".ll"
	if dir == "" {
		return filepath.Join(filepath.Dir(source), name)
	}
	return filepath.Join(dir, name)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func mustGetwd() string {
	wd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return wd
}

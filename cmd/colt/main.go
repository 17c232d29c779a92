package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/coreos/pkg/capnslog"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"

	"github.com/pontaoski/colt/config"
	"github.com/pontaoski/colt/errors"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/colt", "colt")

func readSource(path string) (string, error) {
	if path == "-" {
		data, err := ioutil.ReadAll(os.Stdin)
		return string(data), tracerr.Wrap(err)
	}
	data, err := ioutil.ReadFile(path)
	return string(data), tracerr.Wrap(err)
}

func main() {
	capnslog.SetFormatter(capnslog.NewPrettyFormatter(os.Stderr, false))
	capnslog.SetGlobalLogLevel(capnslog.WARNING)

	app := &cli.App{
		Name:  "colt",
		Usage: "colt compiler",
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			if count, ok := err.(errors.ErrorCount); ok {
				fmt.Fprintln(os.Stderr, count.Error())
			} else {
				tracerr.PrintSourceColor(err)
			}
			os.Exit(1)
		},
		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "write a default " + config.FileName,
				ArgsUsage: "NAME",
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return tracerr.New("no package name provided")
					}
					if _, err := os.Stat(config.FileName); err == nil {
						return tracerr.Errorf("%s already exists", config.FileName)
					}
					return config.Default(name).Save(config.FileName)
				},
			},
			{
				Name:      "lex",
				Usage:     "print the tokens of a file, - for stdin",
				ArgsUsage: "FILE",
				Action: func(c *cli.Context) error {
					src, err := readSource(c.Args().First())
					if err != nil {
						return err
					}
					return lex(os.Stdout, src)
				},
			},
			{
				Name:      "typeinfo",
				Usage:     "dump the type information of a lowered module",
				ArgsUsage: "FILE.ll",
				Action: func(c *cli.Context) error {
					return typeinfo(c.Args().First())
				},
			},
			buildCommand,
		},
	}
	app.Run(os.Args)
}

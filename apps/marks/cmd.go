package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/trezcool/marksheet/core"
	"github.com/trezcool/marksheet/core/student"
	logsvc "github.com/trezcool/marksheet/services/logger"
	"github.com/trezcool/marksheet/storage/flatfile"
)

var (
	// mockable
	newRepoFunc   = flatfile.NewStudentRepository
	newLoggerFunc = func(conf *core.Config, verbose bool) (core.Logger, func(), error) {
		zl, err := logsvc.NewZapLogger(conf, verbose)
		if err != nil {
			return nil, nil, err
		}
		if conf.RollbarToken == "" {
			return zl, func() { _ = zl.Sync() }, nil
		}
		rl := logsvc.NewRollbarLogger(zl, conf)
		return rl, func() { rl.Close(); _ = zl.Sync() }, nil
	}

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf *core.Config
	in   io.Reader
	out  io.Writer

	// set up before every command runs
	svc      *student.Service
	log      core.Logger
	dataFile string
	verbose  bool
	cleanup  func()
}

func newCommandLine(conf *core.Config, in io.Reader, out io.Writer) *commandLine {
	return &commandLine{conf: conf, in: in, out: out}
}

func (cli *commandLine) setup() error {
	logger, cleanup, err := newLoggerFunc(cli.conf, cli.verbose)
	if err != nil {
		return err
	}
	cli.log, cli.cleanup = logger, cleanup
	cli.svc = student.NewService(newRepoFunc(cli.dataFile), cli.log)
	return nil
}

func (cli *commandLine) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "marks",
		Short:         "Manage student coursework and exam marks",
		Long:          "marks keeps student records in a flat text file and reports percentages and grades.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errHelp
		},
	}
	root.SetIn(cli.in)
	root.SetOut(cli.out)
	root.SetErr(cli.out)

	flags := root.PersistentFlags()
	flags.StringVarP(&cli.dataFile, "file", "f", cli.conf.DataFile, "path of the student marks file")
	flags.BoolVarP(&cli.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		cli.listCmd(),
		cli.showCmd(),
		cli.addCmd(),
		cli.updateCmd(),
		cli.deleteCmd(),
		cli.sortCmd(),
		cli.highestCmd(),
		cli.lowestCmd(),
		cli.statsCmd(),
		cli.searchCmd(),
		cli.exportCmd(),
		cli.resetCmd(),
		cli.watchCmd(),
		cli.shellCmd(),
	)
	return root
}

// run executes the command line; args includes the program name.
func (cli *commandLine) run(args []string) error {
	root := cli.rootCmd()
	if len(args) > 0 {
		args = args[1:]
	}
	root.SetArgs(args)
	defer func() {
		if cli.cleanup != nil {
			cli.cleanup()
			cli.cleanup = nil
		}
	}()
	return root.Execute()
}

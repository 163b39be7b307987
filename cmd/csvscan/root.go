package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shapestone/shape-csvstream/internal/config"
	"github.com/shapestone/shape-csvstream/internal/log"
	"github.com/shapestone/shape-csvstream/internal/source"
	"github.com/shapestone/shape-csvstream/pkg/csv"
)

// app carries state shared by the subcommands.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	fs     afero.Fs

	logFlags   log.Flags
	configFile string

	cfg     config.Config
	dialect csv.Dialect
	logger  *slog.Logger
}

func newRootCmd(in io.Reader, out, errOut io.Writer, fs afero.Fs) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut, fs: fs}

	root := &cobra.Command{
		Use:           "csvscan",
		Short:         "Stream and inspect CSV files",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	config.RegisterFlags(pf)
	log.RegisterFlags(pf, &a.logFlags)
	pf.StringVar(&a.configFile, "config", "", "config file (yaml, json or toml)")

	root.AddCommand(newCatCmd(a), newHeadCmd(a), newStatsCmd(a))
	return root
}

// setup loads logging and configuration once flags are parsed. The logger
// also becomes the slog default.
func (a *app) setup(cmd *cobra.Command) error {
	logger, err := log.Init(a.errOut, a.logFlags)
	if err != nil {
		return err
	}
	a.logger = logger

	cfg, err := config.Load(viper.New(), cmd.Flags(), a.fs, a.configFile)
	if err != nil {
		return err
	}
	d, err := cfg.Dialect()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.dialect = d

	a.logger.Debug("configuration loaded",
		"separator", string(d.Separator),
		"quote", string(d.Quote),
		"header", d.HasHeader,
		"strict", d.StrictFieldCount)
	return nil
}

// countingReader counts the decoded bytes handed to the tokenizer.
type countingReader struct {
	io.ReadCloser
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.ReadCloser.Read(p)
	c.n += int64(n)
	return n, err
}

// open returns a Reader for name ("-" is standard input) and the byte counter
// behind it.
func (a *app) open(name string) (*csv.Reader, *countingReader, error) {
	opts := a.cfg.Source()
	opts.Logger = a.logger

	var (
		rc  io.ReadCloser
		err error
	)
	if name == "-" {
		rc, err = source.Wrap(io.NopCloser(a.in), "", opts)
	} else {
		rc, err = source.Open(a.fs, name, opts)
	}
	if err != nil {
		return nil, nil, err
	}

	counter := &countingReader{ReadCloser: rc}
	return csv.NewReader(counter, a.dialect), counter, nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

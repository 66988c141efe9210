package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dl/srcfmt/internal/cli"
	"github.com/dl/srcfmt/internal/formatter"
)

// exitMissingPath matches the original CLI's status for a missing
// file-or-directory argument.
const exitMissingPath = 255

var exitCode int

type flagValues struct {
	conf      string
	level     string
	header    string
	encoding  string
	linesep   string
	check     bool
	json      bool
	quiet     bool
	hidden    bool
	gitignore bool
	exclude   []string
	color     string
	workers   int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(cli.ExitFatal)
	}
	os.Exit(exitCode)
}

func newRootCmd() *cobra.Command {
	fv := &flagValues{}

	cmd := &cobra.Command{
		Use:   "srcfmt [flags] <path>",
		Short: "Apply source formatters to a file or directory tree",
		Long: "srcfmt rewrites source files in place: each eligible file is run\n" +
			"through the applicable formatters, gets its header block maintained,\n" +
			"and has its line endings normalized.\n\n" + formatterList(),
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, fv)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&fv.conf, "conf", "c", "", "formatter profile file to use")
	flags.StringVarP(&fv.level, "level", "l", "", "source level")
	flags.StringVarP(&fv.header, "header", "H", "", "source file header")
	flags.StringVarP(&fv.encoding, "encoding", "e", "", "source encoding")
	flags.StringVarP(&fv.linesep, "linesep", "s", "", "line separator: lf, cr or crlf")
	flags.BoolVar(&fv.check, "check", false, "report files that would change without rewriting them")
	flags.BoolVar(&fv.json, "json", false, "emit JSON lines instead of text output")
	flags.BoolVarP(&fv.quiet, "quiet", "q", false, "suppress per-file output")
	flags.BoolVar(&fv.hidden, "hidden", false, "include hidden files and directories")
	flags.BoolVar(&fv.gitignore, "respect-gitignore", false, "honor .gitignore files during traversal")
	flags.StringArrayVar(&fv.exclude, "exclude", nil, "exclude paths matching this pattern (repeatable)")
	flags.StringVar(&fv.color, "color", "auto", "colorize output: auto, always or never")
	flags.IntVar(&fv.workers, "workers", 0, "number of parallel workers (0 = all CPUs)")

	return cmd
}

func run(cmd *cobra.Command, args []string, fv *flagValues) error {
	if len(args) == 0 {
		cmd.PrintErrln("Missing file or directory parameter.")
		if err := cmd.Help(); err != nil {
			return err
		}
		exitCode = exitMissingPath
		return nil
	}

	var color cli.ColorMode
	switch fv.color {
	case "auto":
		color = cli.ColorAuto
	case "always":
		color = cli.ColorAlways
	case "never":
		color = cli.ColorNever
	default:
		return fmt.Errorf("color: must be one of ['auto', 'always', 'never'], got %q", fv.color)
	}

	exitCode = cli.Run(cli.Config{
		ConfPath:    fv.conf,
		SourceLevel: fv.level,
		HeaderPath:  fv.header,
		Encoding:    fv.encoding,
		LineSep:     fv.linesep,
		Check:       fv.check,
		JSONOutput:  fv.json,
		Quiet:       fv.quiet,
		Hidden:      fv.hidden,
		Gitignore:   fv.gitignore,
		Exclude:     fv.exclude,
		Color:       color,
		Workers:     fv.workers,
		Path:        args[len(args)-1],
	})
	return nil
}

func formatterList() string {
	var b strings.Builder
	b.WriteString("Available source formatters:\n")
	for _, f := range formatter.NewSet(formatter.Passthrough()) {
		b.WriteString("  * " + f.Name() + " (" + f.ShortDesc() + ")\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

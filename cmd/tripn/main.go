// Command tripn reads an RDF document in Turtle or N-Triples and writes
// it back out, by wiring a tripn.Reader's sinks directly to a
// writer.Writer's methods, the way the original serdi.c wires SerdReader
// sinks straight to SerdWriter functions.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/go-tripn/tripn"
	"github.com/go-tripn/tripn/env"
	"github.com/go-tripn/tripn/writer"
)

const versionString = "tripn 0.1.0"

func main() {
	app := newApp()
	app.ExitErrHandler = func(*cli.Context, error) {} // diagnostics already logged
	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func newApp() *cli.App {
	var (
		bulk        bool
		fullURIs    bool
		showVersion bool
		inSyntax    = "turtle"
		outSyntax   = "ntriples"
		addPrefix   string
		chopPrefix  string
		literalStr  string
		literalSet  bool
	)
	return &cli.App{
		Name:        "tripn",
		Usage:       "Read and write RDF syntax.",
		UsageText:   "tripn [OPTION]... INPUT [BASE_URI]\n   Use - for INPUT to read from standard input.",
		HideVersion: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "b", Usage: "fast bulk output for large serialisations", Destination: &bulk},
			&cli.StringFlag{Name: "c", Usage: "chop `PREFIX` from matching blank node IDs", Destination: &chopPrefix},
			&cli.BoolFlag{Name: "f", Usage: "keep full URIs in input (don't qualify)", Destination: &fullURIs},
			&cli.StringFlag{Name: "i", Usage: "input syntax, `turtle` or `ntriples`", Value: inSyntax, Destination: &inSyntax},
			&cli.StringFlag{Name: "o", Usage: "output syntax, `turtle` or `ntriples`", Value: outSyntax, Destination: &outSyntax},
			&cli.StringFlag{Name: "p", Usage: "add `PREFIX` to blank node IDs", Destination: &addPrefix},
			&cli.StringFlag{Name: "s", Usage: "parse `INPUT` as a literal string instead of a file", Destination: &literalStr,
				Action: func(*cli.Context, string) error { literalSet = true; return nil }},
			&cli.BoolFlag{Name: "v", Usage: "display version information and exit", Destination: &showVersion},
		},
		Action: func(c *cli.Context) error {
			if showVersion {
				fmt.Println(versionString)
				return nil
			}
			return run(c, runOpts{
				bulk: bulk, fullURIs: fullURIs,
				inSyntax: inSyntax, outSyntax: outSyntax,
				addPrefix: addPrefix, chopPrefix: chopPrefix,
				literalStr: literalStr, literalSet: literalSet,
			})
		},
	}
}

type runOpts struct {
	bulk, fullURIs                   bool
	inSyntax, outSyntax              string
	addPrefix, chopPrefix            string
	literalStr                       string
	literalSet                       bool
}

func run(c *cli.Context, o runOpts) error {
	inSyn, err := parseSyntax(o.inSyntax)
	if err != nil {
		return err
	}
	outSyn, err := parseSyntax(o.outSyntax)
	if err != nil {
		return err
	}

	src, name, baseURI, err := resolveInput(c, o.literalSet, o.literalStr)
	if err != nil {
		return err
	}
	if f, ok := src.(*os.File); ok {
		defer f.Close()
	}

	e, err := env.New(baseURI)
	if err != nil {
		return errors.Wrap(err, "tripn: resolving base URI")
	}

	style := outputStyle(inSyn, outSyn, o.fullURIs, o.bulk)
	w := writer.New(os.Stdout, outSyn, style, e)
	if o.chopPrefix != "" {
		w.ChopBlankPrefix(o.chopPrefix)
	}

	log := logrus.StandardLogger()
	r := tripn.NewReader(
		tripn.WithLogger(log),
		tripn.WithBlankPrefix(o.addPrefix),
		tripn.WithBaseSink(w.Base),
		tripn.WithPrefixSink(w.Prefix),
		tripn.WithStatementSink(w.Statement),
		tripn.WithEndSink(w.End),
	)

	var readErr error
	if o.literalSet {
		readErr = r.ReadString([]byte(o.literalStr), name)
	} else {
		readErr = r.ReadFile(src, name)
	}
	if finishErr := w.Finish(); finishErr != nil && readErr == nil {
		readErr = finishErr
	}
	return readErr
}

// outputStyle mirrors serdi.c's output_style construction.
func outputStyle(in, out writer.Syntax, fullURIs, bulk bool) writer.Style {
	var style writer.Style
	if out == writer.NTriples {
		style |= writer.StyleASCII
	} else {
		style |= writer.StyleAbbreviated
		if !fullURIs {
			style |= writer.StyleCURIEd
		}
	}
	if in != writer.NTriples {
		style |= writer.StyleResolved
	}
	if bulk {
		style |= writer.StyleBulk
	}
	return style
}

func parseSyntax(name string) (writer.Syntax, error) {
	switch name {
	case "turtle":
		return writer.Turtle, nil
	case "ntriples":
		return writer.NTriples, nil
	default:
		return 0, errors.Errorf("tripn: unknown syntax %q, want turtle or ntriples", name)
	}
}

// resolveInput opens the document source named by the CLI's positional
// INPUT argument (or the -s literal string), returning a reader (nil for
// the literal-string case, which ReadString handles directly), a
// diagnostics name and the base URI to resolve relative references
// against.
func resolveInput(c *cli.Context, literalSet bool, literalStr string) (src io.Reader, name, baseURI string, err error) {
	if literalSet {
		return nil, "(string)", "", nil
	}
	if c.NArg() == 0 {
		return nil, "", "", errors.New("tripn: missing INPUT argument")
	}
	input := c.Args().Get(0)
	if c.NArg() > 1 {
		baseURI = c.Args().Get(1)
	}

	if input == "-" {
		return os.Stdin, "(stdin)", baseURI, nil
	}

	path, err := tripn.ToPath([]byte(input))
	if err != nil {
		return nil, "", "", errors.Wrap(err, "tripn: resolving INPUT")
	}
	f, err := os.Open(string(path))
	if err != nil {
		return nil, "", "", errors.Wrap(err, "tripn: opening INPUT")
	}
	if baseURI == "" {
		if abs, err := filepath.Abs(string(path)); err == nil {
			baseURI = "file://" + abs
		}
	}
	return f, input, baseURI, nil
}

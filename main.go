package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/alecthomas/repr"
	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/lang/convert"
	"github.com/pontaoski/lang/data"
	"github.com/pontaoski/lang/lexer"
	"github.com/pontaoski/lang/types"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/lang", "main")

// setupLogging applies the --log-level flag, falling back to the module's
// log level.
func setupLogging(c *cli.Context, doc langModule) error {
	name := c.String("log-level")
	if name == "" {
		name = doc.LogLevel
	}
	level, err := capnslog.ParseLevel(strings.ToUpper(name))
	if err != nil {
		return err
	}

	capnslog.SetFormatter(capnslog.NewPrettyFormatter(os.Stderr, level >= capnslog.DEBUG))
	capnslog.SetGlobalLogLevel(level)
	return nil
}

func loadModule(c *cli.Context) (langModule, error) {
	doc, err := readModule(".")
	if err != nil {
		return doc, err
	}
	return doc, setupLogging(c, doc)
}

func reportErrors(files []lexedFile) int {
	n := 0
	for _, f := range files {
		for _, err := range f.Errors {
			fmt.Println(err.Error())
			n++
		}
	}
	return n
}

func main() {
	app := &cli.App{
		Name:  "lang",
		Usage: "lang source tooling",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG or TRACE",
			},
		},
		ExitErrHandler: func(_ *cli.Context, err error) {
			if err == nil {
				return
			}
			if exit, ok := err.(cli.ExitCoder); ok {
				if msg := exit.Error(); msg != "" {
					fmt.Fprintln(os.Stderr, msg)
				}
				os.Exit(exit.ExitCode())
			}
			tracerr.PrintSourceColor(err)
			os.Exit(1)
		},
		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "init a directory",
				ArgsUsage: "<module name>",
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return cli.Exit("no module name provided", 1)
					}
					return writeModule(".", defaultModule(name))
				},
			},
			{
				Name:      "lex",
				Usage:     "print the tokens of source files",
				ArgsUsage: "[files...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "repr",
						Usage: "dump tokens as Go values",
					},
				},
				Action: func(c *cli.Context) error {
					doc, err := loadModule(c)
					if err != nil {
						return err
					}
					files, err := sourceFiles(c.Args().Slice(), doc.SourceSuffix)
					if err != nil {
						return err
					}

					lexed, err := lexFiles(files)
					if err != nil {
						return err
					}
					for _, f := range lexed {
						if c.Bool("repr") {
							repr.Println(f.Tokens)
							continue
						}
						fmt.Printf("%s:\n", f.File)
						for _, tok := range f.Tokens {
							fmt.Printf("\t%s\n", tok)
						}
					}

					if n := reportErrors(lexed); n > 0 {
						return cli.Exit(fmt.Sprintf("%d lexer errors", n), 1)
					}
					return nil
				},
			},
			{
				Name:      "check",
				Usage:     "report lexer errors in source files",
				ArgsUsage: "[files...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "watch",
						Usage: "check again whenever a source file changes",
					},
				},
				Action: func(c *cli.Context) error {
					doc, err := loadModule(c)
					if err != nil {
						return err
					}
					files, err := sourceFiles(c.Args().Slice(), doc.SourceSuffix)
					if err != nil {
						return err
					}

					lexed, err := lexFiles(files)
					if err != nil {
						return err
					}
					for _, f := range lexed {
						plog.Infof("%s: %d code tokens", f.File, f.codeTokens())
					}
					n := reportErrors(lexed)

					if !c.Bool("watch") {
						if n > 0 {
							return cli.Exit(fmt.Sprintf("%d lexer errors", n), 1)
						}
						return nil
					}

					ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
					defer stop()

					var mu sync.Mutex
					return watchSources(ctx, ".", doc.SourceSuffix, func(path string) {
						f, err := lexFile(path)
						mu.Lock()
						defer mu.Unlock()
						if err != nil {
							plog.Errorf("%s: %v", path, err)
							return
						}
						if reportErrors([]lexedFile{f}) == 0 {
							plog.Infof("%s: ok", path)
						}
					})
				},
			},
			{
				Name:      "convert",
				Usage:     "convert a literal to another type",
				ArgsUsage: "<literal>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "to",
						Usage:    "target type, e.g. INT, TEXT, BOOL or NUMBER",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					doc, err := loadModule(c)
					if err != nil {
						return err
					}

					conv := convert.New(convert.Settings{MaxTextDepth: doc.MaxTextDepth})
					out, err := convertLiteral(conv, c.Args().First(), c.String("to"))
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					fmt.Printf("%s %s\n", out.Kind(), conv.ToText(out))
					return nil
				},
			},
		},
	}
	app.Run(os.Args)
}

// literalValue reads text the way the lexer would classify it on its own.
func literalValue(conv *convert.Converter, text string) *data.Value {
	tokens := lexer.Tokenize([]string{text})
	if len(tokens) == 2 {
		switch tokens[0].Kind {
		case types.LITERAL_NULL:
			return data.Null()
		case types.LITERAL_NUMBER:
			if n, ok := conv.ToNumber(data.NewText(text)); ok {
				return n
			}
		}
	}
	return data.NewText(text)
}

func convertLiteral(conv *convert.Converter, text, target string) (*data.Value, error) {
	in := literalValue(conv, text)

	switch strings.ToUpper(target) {
	case "BOOL", "BOOLEAN":
		if conv.ToBool(in) {
			return data.NewInt(1), nil
		}
		return data.NewInt(0), nil
	case "NUMBER":
		if out, ok := conv.ToNumber(in); ok {
			return out, nil
		}
		return nil, fmt.Errorf("%s %q has no NUMBER value", in.Kind(), text)
	}

	for _, t := range data.TypeValues {
		if !strings.EqualFold(t.String(), target) {
			continue
		}
		if out, ok := conv.To(in, t); ok {
			return out, nil
		}
		return nil, fmt.Errorf("%s %q can not be converted to %s", in.Kind(), text, t)
	}
	return nil, fmt.Errorf("unknown type %s", target)
}

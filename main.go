package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"github.com/davecgh/go-spew/spew"
	"github.com/k0kubun/pp/v3"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/sirupsen/logrus"

	"github.com/firodj/mipsdecode/internal"
)

// rootConfig holds the global flags and what is derived from them.
type rootConfig struct {
	configFile string
	verbose    bool
	noColor    bool

	cfg internal.Config
	log *logrus.Logger
}

func (root *rootConfig) load() error {
	cfg, err := internal.LoadConfig(root.configFile)
	if err != nil {
		return fmt.Errorf("config %s: %w", root.configFile, err)
	}
	if root.verbose {
		cfg.Verbose = true
	}
	if root.noColor {
		cfg.Color = false
	}
	root.cfg = cfg

	root.log = logrus.New()
	root.log.SetOutput(os.Stderr)
	if cfg.Verbose {
		root.log.SetLevel(logrus.DebugLevel)
	}
	return nil
}

func (root *rootConfig) openRepository(ctx context.Context) (*internal.SQLRepository, error) {
	repo, err := internal.NewSQLRepository(root.cfg.Database, root.cfg.Verbose)
	if err != nil {
		return nil, err
	}
	if err := repo.Init(ctx); err != nil {
		repo.Close()
		return nil, err
	}
	return repo, nil
}

func decodeCommand(root *rootConfig) *ffcli.Command {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	format := fs.String("format", "text", "output format: text, json, spew, pp")
	record := fs.Bool("record", false, "store decoded words in the history")

	return &ffcli.Command{
		Name:       "decode",
		ShortUsage: "decode [flags] <word> [<word>...]",
		ShortHelp:  "decode 32-bit words given as 0b, 0o, 0x or decimal literals",
		FlagSet:    fs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return errors.New("missing word")
			}
			if err := root.load(); err != nil {
				return err
			}

			words, err := internal.ParseAll(args)
			if err != nil {
				return err
			}

			var repo *internal.SQLRepository
			if *record {
				repo, err = root.openRepository(ctx)
				if err != nil {
					return err
				}
				defer repo.Close()
			}

			printer := internal.NewPrinter(os.Stdout, root.cfg.Color)
			dumper := pp.New()
			dumper.SetColoringEnabled(root.cfg.Color)

			var outErr error
			dec := internal.NewDecoder(root.log)
			dec.DecodeQueue(words, func(instr *internal.Instruction, signals internal.ControlSignals) {
				if outErr != nil {
					return
				}
				if repo != nil {
					if _, err := repo.Record(ctx, instr, "cli"); err != nil {
						outErr = err
						return
					}
				}

				switch *format {
				case "text":
					printer.Print(instr, signals)
				case "json":
					b, err := json.MarshalIndent(internal.NewInstructionView(instr, signals), "", "  ")
					if err != nil {
						outErr = err
						return
					}
					fmt.Println(string(b))
				case "spew":
					spew.Dump(instr, signals)
				case "pp":
					dumper.Println(internal.NewInstructionView(instr, signals))
				default:
					outErr = fmt.Errorf("unknown format %q", *format)
				}
			})
			return outErr
		},
	}
}

func registersCommand(root *rootConfig) *ffcli.Command {
	return &ffcli.Command{
		Name:       "registers",
		ShortUsage: "registers [<index or name>...]",
		ShortHelp:  "print the register table or look up registers",
		Exec: func(ctx context.Context, args []string) error {
			if err := root.load(); err != nil {
				return err
			}
			if len(args) == 0 {
				internal.NewPrinter(os.Stdout, root.cfg.Color).PrintRegisters()
				return nil
			}
			for _, ref := range args {
				index, name, err := internal.LookupRegister(ref)
				if err != nil {
					return err
				}
				fmt.Printf("%d\t%s\n", index, name)
			}
			return nil
		},
	}
}

func tablesCommand(root *rootConfig) *ffcli.Command {
	return &ffcli.Command{
		Name:      "tables",
		ShortHelp: "print the opcode and funct tables",
		Exec: func(ctx context.Context, args []string) error {
			if err := root.load(); err != nil {
				return err
			}
			internal.NewPrinter(os.Stdout, root.cfg.Color).PrintTables()
			return nil
		},
	}
}

func historyCommand(root *rootConfig) *ffcli.Command {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	var limit int
	fs.IntVar(&limit, "limit", 0, "entries to show, 0 = config history_limit")

	return &ffcli.Command{
		Name:      "history",
		ShortHelp: "list recently decoded words",
		FlagSet:   fs,
		Exec: func(ctx context.Context, args []string) error {
			if err := root.load(); err != nil {
				return err
			}
			if limit <= 0 {
				limit = root.cfg.HistoryLimit
			}

			repo, err := root.openRepository(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			rows, err := repo.Recent(ctx, limit)
			if err != nil {
				return err
			}
			for _, row := range rows {
				fmt.Printf("%d\t0x%08x\t%s\t%-8s\t%s\t%s\n", row.ID, row.Word, row.Format, row.Mnemonic, row.Source, row.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

func main() {
	appName := filepath.Base(os.Args[0])

	home := os.Getenv("HOME")
	if runtime.GOOS == "windows" {
		home = os.Getenv("USERPROFILE")
	}

	root := &rootConfig{}
	rootFlagSet := flag.NewFlagSet(appName, flag.ExitOnError)
	rootFlagSet.StringVar(&root.configFile, "config", filepath.Join(home, ".mipsdecode.yaml"), "yaml config file")
	rootFlagSet.BoolVar(&root.verbose, "verbose", false, "debug logging")
	rootFlagSet.BoolVar(&root.noColor, "no-color", false, "disable colored output")

	ctx := context.Background()
	// trap Ctrl+C and call cancel on the context
	ctx, cancel := context.WithCancel(ctx)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)

	defer func() {
		signal.Stop(quit)
		cancel()
	}()

	go func() {
		<-quit
		cancel()
	}()

	cmd := &ffcli.Command{
		ShortUsage: appName + " [flags] <subcommand>",
		FlagSet:    rootFlagSet,
		Options:    []ff.Option{ff.WithEnvVarPrefix("MIPSDECODE")},
		Subcommands: []*ffcli.Command{
			decodeCommand(root),
			registersCommand(root),
			tablesCommand(root),
			historyCommand(root),
			serveCommand(root),
		},
		Exec: func(context.Context, []string) error {
			return flag.ErrHelp
		},
	}

	err := cmd.ParseAndRun(ctx, os.Args[1:])
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

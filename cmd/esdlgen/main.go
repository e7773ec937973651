package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/esdlgen"
	"github.com/syssam/esdlgen/compiler/gen"
	"github.com/syssam/esdlgen/compiler/load"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		outFlag    string
		moduleFlag string
		configFlag string
		lintFlag   bool
		watchFlag  bool
	)

	rootCmd := &cobra.Command{
		Use:   "esdlgen [schema files...]",
		Short: "Translate relational-model schemas to object schema text",
		Long: `esdlgen translates declarative relational-model schemas (models,
relations, enums) into object schema text with properties, links and
computed backlinks.

Examples:
  esdlgen blog.schema                     # writes blog.esdl next to the input
  esdlgen blog.schema -o default.esdl     # explicit output file
  esdlgen schemas/*.schema -o out/        # one output per input
  esdlgen blog.schema --watch             # retranslate on change`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFlag)
			if err != nil {
				return err
			}
			if moduleFlag != "" {
				cfg.Module = moduleFlag
			}
			if outFlag != "" {
				cfg.Out = outFlag
			}
			r := &runner{
				files: args,
				out:   cfg.Out,
				opts:  cfg.options(),
				lint:  cfg.Lint || lintFlag,
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := r.runAll(ctx); err != nil {
				if !watchFlag {
					return err
				}
				// Keep watching; the defect is reported and the next
				// save gets another translation.
				fmt.Fprintf(os.Stderr, "esdlgen: %v\n", err)
			}
			if watchFlag {
				return r.watch(ctx)
			}
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&outFlag, "out", "o", "", "output file, directory, or - for stdout")
	rootCmd.Flags().StringVarP(&moduleFlag, "module", "m", "", "target module name (default \"default\")")
	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "yaml configuration file")
	rootCmd.Flags().BoolVar(&lintFlag, "lint", false, "print schema hints to stderr")
	rootCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "retranslate when the schema files change")
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "esdlgen: %v\n", err)
		os.Exit(1)
	}
}

type runner struct {
	files []string
	out   string
	opts  []gen.Option
	lint  bool
}

// runAll translates every input file, fanning out across files. Each
// file is an independent translation run.
func (r *runner) runAll(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for _, file := range r.files {
		file := file
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return r.generate(file)
			}
		})
	}
	return eg.Wait()
}

// generate translates one schema file. The output file is written only
// after the whole translation succeeded, so a failure leaves no partial
// output behind.
func (r *runner) generate(file string) error {
	src, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	schema, err := load.Parse(src)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	if r.lint {
		for _, is := range gen.Lint(schema) {
			fmt.Fprintf(os.Stderr, "%s: hint: %s.%s: %s\n", file, is.Model, is.Field, is.Message)
		}
	}
	g, err := esdlgen.Translate(schema, r.opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	out, err := r.outPath(file)
	if err != nil {
		return err
	}
	if out == "-" {
		fmt.Print(esdlgen.Render(g))
		return nil
	}
	return os.WriteFile(out, []byte(esdlgen.Render(g)), 0o644)
}

// outPath resolves where the translation of file goes: stdout, a named
// file (single input only), a directory, or a sibling .esdl file.
func (r *runner) outPath(file string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)) + ".esdl"
	switch {
	case r.out == "-":
		return "-", nil
	case r.out == "":
		return filepath.Join(filepath.Dir(file), base), nil
	}
	if info, err := os.Stat(r.out); (err == nil && info.IsDir()) || strings.HasSuffix(r.out, string(os.PathSeparator)) || len(r.files) > 1 {
		if err := os.MkdirAll(r.out, 0o755); err != nil {
			return "", err
		}
		return filepath.Join(r.out, base), nil
	}
	return r.out, nil
}

// watch retranslates inputs as they change, until interrupted.
func (r *runner) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch parent directories; editors often replace files on save,
	// which drops a watch registered on the file itself.
	byPath := make(map[string]string, len(r.files))
	dirs := make(map[string]struct{})
	for _, file := range r.files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return err
		}
		byPath[abs] = file
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}
	fmt.Fprintf(os.Stderr, "esdlgen: watching %d file(s)\n", len(byPath))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			file, ok := byPath[ev.Name]
			if !ok {
				continue
			}
			if err := r.generate(file); err != nil {
				fmt.Fprintf(os.Stderr, "esdlgen: %v\n", err)
				continue
			}
			fmt.Fprintf(os.Stderr, "esdlgen: regenerated %s\n", file)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "esdlgen: watch: %v\n", err)
		}
	}
}

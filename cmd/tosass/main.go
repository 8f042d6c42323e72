package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/viant/tosass/conv"
	"github.com/viant/tosass/host"
	"github.com/viant/tosass/sass"
)

const appName = "tosass"

type env struct {
	log       *zap.Logger
	converter *conv.Converter
}

type envKey struct{}

func envFromContext(ctx context.Context) *env {
	if e, ok := ctx.Value(envKey{}).(*env); ok {
		return e
	}
	return &env{log: zap.NewNop(), converter: conv.New(nil)}
}

// initializeAppContext prepares logger and converter after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	e := &env{log: zap.NewNop()}
	if cmd.Bool("debug") {
		log, err := zap.NewDevelopment()
		if err != nil {
			return ctx, fmt.Errorf("unable to prepare logs: %w", err)
		}
		e.log = log
	}
	config := conv.DefaultConfig()
	if configFile := cmd.String("config"); configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return ctx, fmt.Errorf("unable to read configuration: %w", err)
		}
		if config, err = conv.LoadConfig(data); err != nil {
			return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
		}
		e.log.Debug("Configuration loaded", zap.String("file", configFile))
	}
	config.CaseFormat = cmd.String("case")
	config.Logger = e.log
	e.converter = conv.New(config)
	return context.WithValue(ctx, envKey{}, e), nil
}

func destroyAppContext(ctx context.Context, _ *cli.Command) error {
	// sync errors on terminal outputs are expected, nothing to report
	_ = envFromContext(ctx).log.Sync()
	return nil
}

func convert(ctx context.Context, cmd *cli.Command) (err error) {
	e := envFromContext(ctx)
	if cmd.Args().Len() > 1 {
		e.log.Warn("Malformed command line, too many inputs", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	input := io.Reader(os.Stdin)
	source := cmd.Args().Get(0)
	if source != "" && source != "-" {
		file, er := os.Open(source)
		if er != nil {
			return fmt.Errorf("unable to open input '%s': %w", source, er)
		}
		defer func() {
			if er := file.Close(); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to close input '%s': %w", source, er))
			}
		}()
		input = file
	}
	data, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("unable to read input: %w", err)
	}
	value, err := decode(data, formatOf(cmd.String("format"), source))
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if destination := cmd.String("output"); destination != "" {
		file, er := os.Create(destination)
		if er != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", destination, er)
		}
		defer func() {
			if er := file.Close(); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to close destination file '%s': %w", destination, er))
			}
		}()
		out = file
	}
	e.log.Debug("Converting", zap.String("input", source), zap.Int("size", len(data)))
	return render(out, cmd.String("name"), e.converter.Convert(value))
}

// formatOf returns input format, explicit format wins over file extension
func formatOf(format, source string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml":
		return "yaml"
	}
	return "json"
}

func decode(data []byte, format string) (interface{}, error) {
	switch format {
	case "json":
		return host.DecodeJSON(data)
	case "yaml":
		return host.DecodeYAML(data)
	}
	return nil, fmt.Errorf("unsupported input format: %v", format)
}

// render writes SCSS variable declarations, a map produces one variable per entry
func render(w io.Writer, name string, value sass.Value) error {
	aMap, ok := value.(*sass.Map)
	if !ok {
		_, err := fmt.Fprintf(w, "$%s: %s;\n", name, value.String())
		return err
	}
	for i := 0; i < aMap.Len(); i++ {
		key, err := aMap.Key(i)
		if err != nil {
			return err
		}
		item, err := aMap.Value(i)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintf(w, "$%s: %s;\n", variableName(sass.KeyText(key)), item.String()); err != nil {
			return err
		}
	}
	return nil
}

func variableName(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r > 127:
			return r
		}
		return '-'
	}, key)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            appName,
		Usage:           "converts JSON or YAML documents into SCSS variables",
		ArgsUsage:       "[INPUT]",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		Action:          convert,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load conversion configuration from `FILE` (YAML or JSON)"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "input format: json or yaml, detected from extension by default"},
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Value: "value", Usage: "variable `NAME` used when input is not an object"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write declarations to `FILE` instead of STDOUT"},
			&cli.StringFlag{Name: "case", Usage: "case format of struct derived keys, i.e. lowerDash"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log conversion details to STDERR"},
		},
	}

	err := app.Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
		os.Exit(1)
	}
}

package main

// Generate a component class skeleton and a golden-value header from a
// register map.
//
// Usage:
//
//    regmapgen INPUT
//
// For an input "maps/TimerUnit.txt" this writes timer_unit.cpp and
// timer_unit_golden.h (plus timer_unit_mmap.v and timer_unit.yaml when
// enabled in regmap.toml).  See package regmap for the input format.

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/jbrzusto/regmap/regmap"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// newLogger builds a development-style console logger writing to w.
func newLogger(w io.Writer) (logr.Logger, *zap.Logger) {
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	zl := zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), zapcore.InfoLevel))
	return zapr.NewLogger(zl), zl
}

// run is main without the exit; it returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintf(stdout, "Usage: regmapgen <input_file>\n")
		return 1
	}
	input := args[0]
	if _, err := os.Stat(input); err != nil {
		failColor.Fprintf(stderr, "Error: File not found at %s\n", input)
		return 1
	}

	log, zl := newLogger(stderr)
	defer zl.Sync()

	s := defaultSettings()
	found, err := loadConfig(&s, configPaths...)
	if err != nil {
		failColor.Fprintf(stderr, "An error occurred: %v\n", err)
		return 1
	}
	if found {
		log.V(1).Info("loaded config", "settings", s)
	}
	if err := generate(input, s, log, stdout); err != nil {
		failColor.Fprintf(stderr, "An error occurred: %v\n", err)
		return 1
	}
	return 0
}

// generate parses input once and writes every configured artifact.
func generate(input string, s settings, log logr.Logger, stdout io.Writer) error {
	mask, err := s.pageMask()
	if err != nil {
		return err
	}
	m, diags, err := regmap.ParseFile(input, regmap.WithLogger(log.WithName("parse")), regmap.WithPageMask(mask))
	if err != nil {
		return err
	}
	if len(diags) > 0 {
		log.Info("register map has anomalies", "file", input, "count", len(diags))
	}

	base := baseName(input)
	class := base
	if s.Class.Name != "" {
		class = s.Class.Name
	}
	stem := snakeCase(base)
	if err := os.MkdirAll(s.Output.Dir, 0755); err != nil {
		return errors.Wrapf(err, "creating output directory")
	}
	for _, a := range s.artifacts() {
		text, err := a.Render(m, class)
		if err != nil {
			return errors.Wrapf(err, "rendering %s", a.Name)
		}
		name := filepath.Join(s.Output.Dir, stem+a.Suffix)
		if err := writeArtifact(name, text); err != nil {
			return err
		}
		okColor.Fprintf(stdout, "Successfully generated %s\n", name)
	}
	return nil
}

// writeArtifact creates path and writes text to it.
func writeArtifact(path, text string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if _, err := io.WriteString(f, text); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}

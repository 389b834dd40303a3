package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// newLogger builds the console logger for diagnostics. Conversion output is
// written by the reporters and never goes through it.
func newLogger(w io.Writer, verbose, quiet bool) *zap.Logger {
	if quiet {
		return zap.NewNop()
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.CallerKey = zapcore.OmitKey
	ec.TimeKey = zapcore.OmitKey
	if isTerminal(w) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(w)), level)
	return zap.New(core).Named("css2tw")
}

// loggerFor builds the logger of a command from koanf state.
func loggerFor(cmd *cobra.Command) *zap.Logger {
	return newLogger(
		cmd.ErrOrStderr(),
		getBoolWithFallback("verbose", "verbose", false),
		getBoolWithFallback("quiet", "quiet", false),
	)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

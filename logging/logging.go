// Package logging builds the zap logger used by the console.
package logging

import (
	"io"

	"github.com/kchristidis/listq/config"
	"github.com/pkg/errors"
	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger that writes entries at or above cfg.Level to w, in
// the format named by cfg.Format.
func New(cfg config.Log, w io.Writer) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, errors.Wrapf(err, "bad log level %q", cfg.Level)
	}

	var enc zapcore.Encoder
	switch cfg.Format {
	case config.FormatJSON:
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case config.FormatLogfmt:
		enc = zaplogfmt.NewEncoder(zap.NewProductionEncoderConfig())
	case config.FormatConsole, "":
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	default:
		return nil, errors.Errorf("unknown log format %q", cfg.Format)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}

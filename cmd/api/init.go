package main

import (
	"context"
	"errors"
	"fmt"

	"fincalc-graph/internal/calculator"
	"fincalc-graph/internal/chart"
	"fincalc-graph/internal/config"
	"fincalc-graph/internal/i18n"
	"fincalc-graph/internal/observability"

	"go.uber.org/zap"
)

type shutdownFunc func(context.Context) error

// initTelemetry starts the OTLP trace, metric and log pipelines when enabled
// and registers the calculator instruments either way. The returned func
// flushes every pipeline that started.
func initTelemetry(ctx context.Context, cfg config.Config) (shutdownFunc, error) {
	var shutdowns []shutdownFunc
	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return errors.Join(errs...)
	}

	if cfg.OTelEnabled {
		observability.SetServiceName(cfg.ServiceName)

		for _, start := range []func(context.Context) (func(context.Context) error, error){
			observability.InitTracing,
			observability.InitMetrics,
			observability.InitLogging,
		} {
			fn, err := start(ctx)
			if err != nil {
				_ = shutdown(ctx)
				return nil, err
			}
			shutdowns = append(shutdowns, fn)
		}
	}

	// Instruments bind to whichever meter provider is installed by now.
	if err := calculator.InitMetrics(); err != nil {
		_ = shutdown(ctx)
		return nil, err
	}

	return shutdown, nil
}

// newGraphHandler builds the chart pipeline from cfg.
func newGraphHandler(cfg config.Config) (*calculator.Handler, error) {
	var opts []chart.Option
	if cfg.FontPath != "" {
		font, err := chart.LoadFont(cfg.FontPath)
		if err != nil {
			return nil, fmt.Errorf("graph font: %w", err)
		}
		opts = append(opts, chart.WithFont(font))
	} else {
		observability.Logger.Warn("GRAPH_FONT_PATH not set, Arabic text will render without glyph coverage")
	}

	if !cfg.ArabicShaping {
		observability.Logger.Warn("Arabic shaping disabled, RTL text is drawn in logical order",
			zap.Bool("arabic_shaping", cfg.ArabicShaping),
		)
	}

	return calculator.NewHandler(i18n.NewResolver(cfg.ArabicShaping), chart.NewGoChart(opts...)), nil
}

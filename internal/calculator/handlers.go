package calculator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fincalc-graph/internal/chart"
	"fincalc-graph/internal/handlers"
	"fincalc-graph/internal/i18n"
	"fincalc-graph/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// maxBodyBytes caps the size of a graph request body.
const maxBodyBytes = 1 << 20

// Handler serves chart images for calculator results.
type Handler struct {
	resolver *i18n.Resolver
	renderer chart.Renderer
}

func NewHandler(resolver *i18n.Resolver, renderer chart.Renderer) *Handler {
	return &Handler{resolver: resolver, renderer: renderer}
}

// Graph handles POST /api/graph: it runs the requested calculator, localizes
// the chart text and responds with the chart as a PNG data URI.
func (h *Handler) Graph(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "graph.generate",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req GraphRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "unknown", msgInvalidBody, err, http.StatusBadRequest, w)
		return
	}

	calc := string(req.Type)
	if !req.Type.Valid() {
		observability.RecordError(ctx, span, logger, errorCounter, calc, msgInvalidType, ErrInvalidRequest, http.StatusBadRequest, w)
		return
	}

	loc := h.resolver.Resolve(req.Lang)
	span.SetAttributes(
		attribute.String("calculator.type", calc),
		attribute.String("calculator.lang", loc.Code()),
	)

	// Compute and lay out
	_, computeSpan := tracer.Start(ctx, "graph.compute")
	res, err := Compute(req.Type, req.Inputs, req.Result)
	var spec chart.Spec
	if err == nil {
		spec, err = BuildChart(res, loc)
	}
	if err != nil {
		computeSpan.RecordError(err)
		computeSpan.SetStatus(codes.Error, "compute failed")
		computeSpan.End()
		h.fail(ctx, span, logger, calc, err, w)
		return
	}
	computeSpan.SetAttributes(attribute.String("chart.kind", string(spec.Kind)))
	computeSpan.End()

	// Render (timed for histogram)
	renderCtx, renderSpan := tracer.Start(ctx, "graph.render",
		trace.WithAttributes(attribute.String("chart.kind", string(spec.Kind))),
	)
	start := time.Now()
	img, err := h.renderer.Render(renderCtx, spec)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms
	if err != nil {
		renderSpan.RecordError(err)
		renderSpan.SetStatus(codes.Error, "render failed")
		renderSpan.End()
		h.fail(ctx, span, logger, calc, err, w)
		return
	}
	renderSpan.SetAttributes(attribute.Int("image.bytes", len(img)))
	renderSpan.End()

	attrs := metric.WithAttributes(
		attribute.String("calculator", calc),
		attribute.String("lang", loc.Code()),
	)
	requestCounter.Add(ctx, 1, attrs)
	renderHistogram.Record(ctx, elapsed, attrs)
	imageBytes.Record(ctx, int64(len(img)), attrs)

	span.SetStatus(codes.Ok, "")

	logger.Info("graph generated",
		zap.String("calculator", calc),
		zap.String("lang", loc.Code()),
		zap.String("chart", string(spec.Kind)),
		zap.Int("image_bytes", len(img)),
		zap.Float64("render_ms", elapsed),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, GraphResponse{Image: chart.DataURI(img)})
}

// fail maps err to the client-facing error kind. Details stay in the log.
func (h *Handler) fail(ctx context.Context, span trace.Span, logger *zap.Logger, calc string, err error, w http.ResponseWriter) {
	if errors.Is(err, ErrInvalidRequest) {
		observability.RecordError(ctx, span, logger, errorCounter, calc, msgInvalidType, err, http.StatusBadRequest, w)
		return
	}
	observability.RecordError(ctx, span, logger, errorCounter, calc, MsgGraphFailed, err, http.StatusInternalServerError, w)
}

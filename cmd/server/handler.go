package main

import (
	"encoding/json"
	"time"

	"github.com/baditaflorin/go_fuzzy_compare/pkg/fuzzy"
	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"
)

// PairRequest carries the two texts to compare.
type PairRequest struct {
	A string `json:"a"`
	B string `json:"b"`
	// Threshold overrides the configured threshold when set.
	Threshold *float64 `json:"threshold,omitempty"`
}

// SimilarityResponse is returned by /similarity.
type SimilarityResponse struct {
	Score          float64 `json:"score"`
	ShortLength    int     `json:"short_length"`
	LongLength     int     `json:"long_length"`
	ProcessingTime string  `json:"processing_time"`
}

// CompareResponse is returned by /compare.
type CompareResponse struct {
	Similar        bool     `json:"similar"`
	Threshold      float64  `json:"threshold"`
	Path           string   `json:"path"`
	MetricSkipped  bool     `json:"metric_skipped"`
	Score          *float64 `json:"score,omitempty"`
	UpperBound     float64  `json:"upper_bound"`
	ShortLength    int      `json:"short_length"`
	LongLength     int      `json:"long_length"`
	SizeRatio      float64  `json:"size_ratio"`
	ProcessingTime string   `json:"processing_time"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

type handler struct {
	comparator *fuzzy.Comparator
	logger     l.Logger
}

func newHandler(comparator *fuzzy.Comparator, logger l.Logger) *handler {
	return &handler{comparator: comparator, logger: logger}
}

// ServeHTTP is the fasthttp request handler
func (h *handler) ServeHTTP(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	ctx.Response.Header.Set("Content-Type", "application/json")

	switch string(ctx.Path()) {
	case "/health":
		h.handleHealthCheck(ctx)
	case "/bounds":
		h.handleBounds(ctx)
	case "/similarity":
		h.handleSimilarity(ctx)
	case "/compare":
		h.handleCompare(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		h.writeJSONError(ctx, "Not found")
	}

	h.logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

func (h *handler) handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSONResponse(ctx, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (h *handler) handleBounds(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		h.writeJSONError(ctx, "Method not allowed")
		return
	}
	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSONResponse(ctx, h.comparator.Table().Entries())
}

func (h *handler) handleSimilarity(ctx *fasthttp.RequestCtx) {
	req, ok := h.parsePair(ctx)
	if !ok {
		return
	}

	start := time.Now()
	score := h.comparator.Similarity(req.A, req.B)
	short, long := len(req.A), len(req.B)
	if long < short {
		short, long = long, short
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSONResponse(ctx, SimilarityResponse{
		Score:          score,
		ShortLength:    short,
		LongLength:     long,
		ProcessingTime: time.Since(start).String(),
	})
}

func (h *handler) handleCompare(ctx *fasthttp.RequestCtx) {
	req, ok := h.parsePair(ctx)
	if !ok {
		return
	}

	threshold := h.comparator.Threshold()
	if req.Threshold != nil {
		threshold = *req.Threshold
		if threshold < 0 || threshold > 1 {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			h.writeJSONError(ctx, "threshold must be between 0 and 1")
			return
		}
	}

	start := time.Now()
	v := h.comparator.Decide(req.A, req.B, threshold)
	resp := CompareResponse{
		Similar:        v.Similar,
		Threshold:      threshold,
		Path:           string(v.Path),
		MetricSkipped:  v.Path.MetricSkipped(),
		UpperBound:     v.UpperBound,
		ShortLength:    v.ShortLength,
		LongLength:     v.LongLength,
		SizeRatio:      v.SizeRatio,
		ProcessingTime: time.Since(start).String(),
	}
	if v.ScoreComputed {
		score := v.Score
		resp.Score = &score
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSONResponse(ctx, resp)
}

// parsePair accepts POST requests with a JSON PairRequest body and writes
// the error response itself when the request is unusable.
func (h *handler) parsePair(ctx *fasthttp.RequestCtx) (PairRequest, bool) {
	var req PairRequest
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		h.writeJSONError(ctx, "Method not allowed")
		return req, false
	}
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		h.writeJSONError(ctx, "Invalid request: "+err.Error())
		return req, false
	}
	return req, true
}

// writeJSONResponse writes a JSON response to the context
func (h *handler) writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		h.logger.Error("Error marshaling JSON response", "error", err)
		h.writeJSONError(ctx, "Internal server error")
		return
	}
	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func (h *handler) writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	response, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		h.logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}
	ctx.SetBody(response)
}

package main

import (
	"encoding/json"
	"io"
	"strings"
	"testing"

	adapterlogger "github.com/baditaflorin/go_fuzzy_compare/internal/adapters/logger"
	"github.com/baditaflorin/go_fuzzy_compare/pkg/fuzzy"
	"github.com/baditaflorin/l"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func newTestHandler(t *testing.T) *handler {
	t.Helper()
	cfg := adapterlogger.DefaultConfig(io.Discard)
	cfg.AsyncWrite = false
	cfg.Metrics = false
	logger, err := l.NewStandardFactory().CreateLogger(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { logger.Close() })

	c, err := fuzzy.New(fuzzy.WithLogger(logger), fuzzy.WithThreshold(0.9))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return newHandler(c, logger)
}

func do(t *testing.T, h *handler, method, path, body string) *fasthttp.RequestCtx {
	t.Helper()
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(path)
	if body != "" {
		req.SetBodyString(body)
	}
	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	h.ServeHTTP(ctx)
	return ctx
}

func TestCompareSkipsMetric(t *testing.T) {
	h := newTestHandler(t)
	body, _ := json.Marshal(PairRequest{
		A: strings.Repeat("a", 20000),
		B: strings.Repeat("a", 25000),
	})

	ctx := do(t, h, "POST", "/compare", string(body))
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp CompareResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.False(t, resp.Similar)
	assert.Equal(t, 0.9, resp.Threshold)
	assert.Equal(t, "table_bound", resp.Path)
	assert.True(t, resp.MetricSkipped)
	assert.Nil(t, resp.Score)
	assert.Equal(t, 1.25, resp.SizeRatio)
}

func TestCompareThresholdOverride(t *testing.T) {
	h := newTestHandler(t)

	ctx := do(t, h, "POST", "/compare", `{"a":"the quick fox","b":"the quick dog","threshold":0.6}`)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var resp CompareResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.True(t, resp.Similar)
	assert.Equal(t, "metric", resp.Path)
	require.NotNil(t, resp.Score)
	assert.InDelta(t, 2.0/3.0, *resp.Score, 1e-12)

	ctx = do(t, h, "POST", "/compare", `{"a":"x","b":"y","threshold":2}`)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestSimilarityEndpoint(t *testing.T) {
	h := newTestHandler(t)

	ctx := do(t, h, "POST", "/similarity", `{"a":"ckdp","b":"ecd"}`)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var resp SimilarityResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, 4.0/7.0, resp.Score)
	assert.Equal(t, 3, resp.ShortLength)
	assert.Equal(t, 4, resp.LongLength)

	ctx = do(t, h, "POST", "/similarity", `{"a":"","b":""}`)
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, 1.0, resp.Score)
}

func TestErrorResponses(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		method, path, body string
		status             int
	}{
		{"GET", "/compare", "", fasthttp.StatusMethodNotAllowed},
		{"POST", "/compare", "{not json", fasthttp.StatusBadRequest},
		{"POST", "/bounds", "", fasthttp.StatusMethodNotAllowed},
		{"GET", "/nowhere", "", fasthttp.StatusNotFound},
	}
	for _, tc := range tests {
		ctx := do(t, h, tc.method, tc.path, tc.body)
		assert.Equal(t, tc.status, ctx.Response.StatusCode(), "%s %s", tc.method, tc.path)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
		assert.NotEmpty(t, resp.Error)
	}
}

func TestHealthAndBounds(t *testing.T) {
	h := newTestHandler(t)

	ctx := do(t, h, "GET", "/health", "")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), `"status":"ok"`)

	ctx = do(t, h, "GET", "/bounds", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var entries []fuzzy.Bound
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &entries))
	require.Len(t, entries, 677)
	assert.Equal(t, fuzzy.Bound{SizeRatio: 1, MaxSimilarity: 1}, entries[0])
}

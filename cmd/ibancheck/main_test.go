package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vortex-fintech/go-iban/iban"
)

func decodeLines(t *testing.T, out string) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, l := range strings.Split(strings.TrimSpace(out), "\n") {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(l), &m))
		lines = append(lines, m)
	}
	return lines
}

func TestRun_ArgsAllValid(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"DE75 5121 0800 1245 1261 99", "GB33BUKB20201555555555"}, nil, &stdout, &stderr)

	require.Equal(t, exitOK, code, stderr.String())
	lines := decodeLines(t, stdout.String())
	require.Len(t, lines, 2)
	assert.Equal(t, "DE75 5121 0800 1245 1261 99", lines[0]["value"])
	assert.Equal(t, map[string]any{"ibanInvalid": false, "error": nil}, lines[0]["result"])
}

func TestRun_InvalidExitsOne(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"GB33BUKB20201555555555", "DE57512108001245126199"}, nil, &stdout, &stderr)

	require.Equal(t, exitInvalid, code)
	lines := decodeLines(t, stdout.String())
	require.Len(t, lines, 2)
	res := lines[1]["result"].(map[string]any)
	assert.Equal(t, true, res["ibanInvalid"])
	assert.Equal(t, true, res["error"].(map[string]any)["patternInvalid"])
}

func TestRun_Stdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	in := strings.NewReader("GB33BUKB20201555555555\n\n  \nAT611904300234573201\n")
	code := run(context.Background(), nil, in, &stdout, &stderr)

	require.Equal(t, exitOK, code)
	assert.Len(t, decodeLines(t, stdout.String()), 2)
}

func TestRun_BlankArgumentIsNotEvaluated(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{""}, nil, &stdout, &stderr)

	require.Equal(t, exitOK, code)
	assert.JSONEq(t, `{"value":"","result":null}`, strings.TrimSpace(stdout.String()))
}

func TestRun_BadConfig(t *testing.T) {
	t.Setenv("IBAN_WORKERS", "many")
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"GB33BUKB20201555555555"}, nil, &stdout, &stderr)
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr.String(), "config")
}

func TestRun_ServeStopsOnCancel(t *testing.T) {
	t.Setenv("IBAN_HTTP_ADDR", "127.0.0.1:0")
	t.Setenv("IBAN_SHUTDOWN_TIMEOUT", "1s")

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	var stdout, stderr bytes.Buffer
	assert.Equal(t, exitOK, run(ctx, []string{"serve"}, nil, &stdout, &stderr))
}

func TestCheck_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := check(ctx, iban.New(), []string{"GB33BUKB20201555555555"}, 1, &stdout, &stderr)
	assert.Equal(t, exitFailure, code)
	assert.Empty(t, stdout.String())
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

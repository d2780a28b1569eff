package logging

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNew_JSONLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: "warn", Format: "json"})

	logger.Info("hidden")
	logger.Warn("shown", "rid", "abc")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"rid":"abc"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, log.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, log.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, log.InfoLevel, ParseLevel("whatever"))
}

func TestParseFormatter(t *testing.T) {
	assert.Equal(t, log.JSONFormatter, ParseFormatter("json"))
	assert.Equal(t, log.LogfmtFormatter, ParseFormatter("logfmt"))
	assert.Equal(t, log.TextFormatter, ParseFormatter("text"))
}

func TestCauses(t *testing.T) {
	root := errors.New("connection refused")
	mid := fmt.Errorf("begin tx: %w", root)
	top := fmt.Errorf("get incomplete tasks: %w", mid)

	assert.Equal(t, []string{mid.Error(), root.Error()}, Causes(top))
	assert.Empty(t, Causes(root))

	joined := errors.Join(errors.New("a"), errors.New("b"))
	assert.Equal(t, []string{"a", "b"}, Causes(joined))
}

func TestErr_LogsChain(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: "debug", Format: "logfmt"})

	root := errors.New("connection refused")
	logger.Error("request failed", Err(fmt.Errorf("query tasks: %w", root)))

	assert.Contains(t, buf.String(), "connection refused")
	assert.Contains(t, buf.String(), "query tasks")
}

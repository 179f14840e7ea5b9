package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertions)
var (
	_ Logger = (*SkillLogger)(nil)
	_ Logger = NoOpLogger{}
)

func newBufferLogger(level LogLevel) (*SkillLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := DefaultLoggerConfig()
	cfg.Level = level
	cfg.Output = &buf
	return NewLogger(cfg), &buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &m))
	return m
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LogLevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LogLevelWarn, ParseLevel("warning"))
	assert.Equal(t, LogLevelError, ParseLevel(" error "))
	assert.Equal(t, LogLevelInfo, ParseLevel(""))
	assert.Equal(t, LogLevelInfo, ParseLevel("verbose"))
	assert.Equal(t, "WARN", LogLevelWarn.String())
}

func TestSkillLogger_RequestScope(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo)
	l.WithComponent("skill").WithRequest("req-1", "sess-1", "inv-1").WithContext("locale", "en-US").Info("hello", "k", "v")

	e := lastEntry(t, buf)
	assert.Equal(t, "hello", e["msg"])
	assert.Equal(t, "skill", e["component"])
	assert.Equal(t, "req-1", e["request_id"])
	assert.Equal(t, "sess-1", e["session_id"])
	assert.Equal(t, "inv-1", e["invocation_id"])
	assert.Equal(t, "en-US", e["locale"])
	assert.Equal(t, "v", e["k"])
}

func TestSkillLogger_WithDoesNotMutateParent(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo)
	_ = l.WithContext("child", true)
	l.Info("parent")
	_, ok := lastEntry(t, buf)["child"]
	assert.False(t, ok)
}

func TestSkillLogger_LevelFiltering(t *testing.T) {
	l, buf := newBufferLogger(LogLevelWarn)
	l.Debug("d")
	l.Info("i")
	assert.Empty(t, buf.String())
	l.Warn("w")
	assert.Equal(t, "w", lastEntry(t, buf)["msg"])
}

func TestSkillLogger_LogDispatch(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo)
	l.LogDispatch("Launch", time.Millisecond, true, nil)
	e := lastEntry(t, buf)
	assert.Equal(t, "skill.dispatch.completed", e["msg"])
	assert.Equal(t, "Launch", e["handler"])
	assert.Equal(t, true, e["success"])

	l.LogDispatch("WhoIsTheXofAll", time.Millisecond, false, errors.New("boom"))
	e = lastEntry(t, buf)
	assert.Equal(t, "skill.dispatch.failed", e["msg"])
	assert.Equal(t, "ERROR", e["level"])
	assert.Equal(t, "boom", e["error"])
}

func TestSkillLogger_LogPersistence(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo)
	l.LogPersistence("get", time.Millisecond, nil) // debug, filtered
	assert.Empty(t, buf.String())

	l.LogPersistence("save", time.Millisecond, errors.New("denied"))
	e := lastEntry(t, buf)
	assert.Equal(t, "persistence.call.failed", e["msg"])
	assert.Equal(t, "save", e["operation"])
	assert.Equal(t, "denied", e["error"])
}

func TestNewSlogLogger_TextFormat(t *testing.T) {
	l := NewSlogLogger(LogLevelDebug, "text")
	assert.NotNil(t, l)
	NoOpLogger{}.Info("ignored")
}

package logger_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/golangid/questionario-service/pkg/logger"
	"go.uber.org/zap/zapcore"
)

func TestInitZap(t *testing.T) {
	logOutput := new(bytes.Buffer)
	logger.InitZap(logger.OptionAddWriter(io.MultiWriter(logOutput)))

	logger.LogI("test message")

	if !bytes.Contains(logOutput.Bytes(), []byte("test message")) {
		t.Error("Expected log message not found")
	}
}

func TestLog(t *testing.T) {
	logOutput := new(bytes.Buffer)
	logger.InitZap(logger.OptionAddWriter(io.MultiWriter(logOutput)))

	logger.Log(zapcore.InfoLevel, "testing log", "test_context", "test_scope")

	if !bytes.Contains(logOutput.Bytes(), []byte(`"testing log"`)) {
		t.Error("Expected log message not found")
	}
	if !bytes.Contains(logOutput.Bytes(), []byte(`"context":"test_context"`)) {
		t.Error("Expected context not found")
	}
	if !bytes.Contains(logOutput.Bytes(), []byte(`"scope":"test_scope"`)) {
		t.Error("Expected scope not found")
	}
}

func TestLogE(t *testing.T) {
	logOutput := new(bytes.Buffer)
	logger.InitZap(logger.OptionAddWriter(io.MultiWriter(logOutput)))

	logger.LogE("test error message")

	if !bytes.Contains(logOutput.Bytes(), []byte("test error message")) {
		t.Error("Expected error message not found")
	}
}

func TestLogWithField(t *testing.T) {
	logOutput := new(bytes.Buffer)
	logger.InitZap(logger.OptionAddWriter(io.MultiWriter(logOutput)))

	fields := map[string]interface{}{
		"message": "test log with fields",
		"context": "test_context",
		"scope":   "test_scope",
	}

	logger.LogWithField(zapcore.InfoLevel, fields)

	if !bytes.Contains(logOutput.Bytes(), []byte("test log with fields")) {
		t.Error("Expected message not found in log output")
	}
	if !bytes.Contains(logOutput.Bytes(), []byte(`"context":"test_context"`)) {
		t.Error("Expected context field not found in log output")
	}
}

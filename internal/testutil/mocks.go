// --- START OF FINAL REVISED FILE internal/testutil/mocks.go ---
// Package testutil provides mock implementations for interfaces defined in the
// sovereign-doc core library (pkg/converter and subpackages), plus fixture helpers
// for building package containers on disk.
package testutil

import (
	"context"
	"log/slog"
	"time"

	"github.com/stackvity/sovereign-doc/pkg/converter"
	"github.com/stackvity/sovereign-doc/pkg/converter/runlog"
	"github.com/stretchr/testify/mock"
)

// MockRecorder provides a mock implementation of the converter.Recorder interface.
// Configure expectations using testify/mock methods (e.g., .On("Record", mock.Anything).Return(nil)).
type MockRecorder struct {
	mock.Mock
}

// Record mocks the Record method.
func (m *MockRecorder) Record(rec runlog.Record) error {
	args := m.Called(rec)
	return args.Error(0)
}

// MockEncodingHandler provides a mock implementation of the encoding.EncodingHandler interface.
// Configure expectations using testify/mock methods (e.g., .On("DetectAndDecode", ...).Return(...)).
// See encoding.EncodingHandler for the interface contract.
type MockEncodingHandler struct {
	mock.Mock
}

// DetectAndDecode mocks the DetectAndDecode method.
func (m *MockEncodingHandler) DetectAndDecode(content []byte) (text string, detectedEncoding string, certainty bool, err error) {
	args := m.Called(content)
	text, _ = args.Get(0).(string)
	detectedEncoding, _ = args.Get(1).(string)
	certainty, _ = args.Get(2).(bool)
	err = args.Error(3)
	return
}

// MockPackageReader provides a mock implementation of the converter.PackageReader interface.
type MockPackageReader struct {
	mock.Mock
}

// ExtractText mocks the ExtractText method.
func (m *MockPackageReader) ExtractText(path string) (string, error) {
	args := m.Called(path)
	text, _ := args.Get(0).(string)
	return text, args.Error(1)
}

// MockPackageWriter provides a mock implementation of the converter.PackageWriter interface.
type MockPackageWriter struct {
	mock.Mock
}

// WriteFile mocks the WriteFile method.
func (m *MockPackageWriter) WriteFile(path, text string) error {
	args := m.Called(path, text)
	return args.Error(0)
}

// MockHooks provides a mock implementation of the converter.Hooks interface.
// Configure expectations using testify/mock methods (e.g., .On("OnFileStatusUpdate", ...).Return(...)).
// See converter.Hooks for the interface contract.
type MockHooks struct {
	mock.Mock
}

// OnFileDiscovered mocks the OnFileDiscovered method.
func (m *MockHooks) OnFileDiscovered(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

// OnFileStatusUpdate mocks the OnFileStatusUpdate method.
func (m *MockHooks) OnFileStatusUpdate(path string, status converter.Status, message string, duration time.Duration) error {
	args := m.Called(path, status, message, duration)
	return args.Error(0)
}

// OnRunComplete mocks the OnRunComplete method.
func (m *MockHooks) OnRunComplete(report converter.Report) error {
	args := m.Called(report)
	return args.Error(0)
}

// MockLoggerHandler provides a mock implementation for slog.Handler.
// Generally, using slog.NewTextHandler with a bytes.Buffer is preferred for testing log output.
// Use this full mock only if complex handler interaction logic needs verification.
// See slog.Handler for the interface contract.
type MockLoggerHandler struct {
	mock.Mock
}

// Enabled mocks the Enabled method.
func (m *MockLoggerHandler) Enabled(ctx context.Context, level slog.Level) bool {
	args := m.Called(ctx, level)
	enabled, _ := args.Get(0).(bool)
	return enabled
}

// Handle mocks the Handle method.
func (m *MockLoggerHandler) Handle(ctx context.Context, r slog.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

// WithAttrs mocks the WithAttrs method.
func (m *MockLoggerHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	args := m.Called(attrs)
	retHandler, ok := args.Get(0).(slog.Handler)
	if !ok || retHandler == nil {
		return m // Return self if no specific handler configured or type assertion fails
	}
	return retHandler
}

// WithGroup mocks the WithGroup method.
func (m *MockLoggerHandler) WithGroup(name string) slog.Handler {
	args := m.Called(name)
	retHandler, ok := args.Get(0).(slog.Handler)
	if !ok || retHandler == nil {
		return m // Return self if no specific handler configured or type assertion fails
	}
	return retHandler
}

// --- END OF FINAL REVISED FILE internal/testutil/mocks.go ---

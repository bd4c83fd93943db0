// --- START OF FINAL REVISED FILE internal/cli/hooks/hooks_test.go ---
package hooks

import (
	"bytes"
	"fmt"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/stackvity/sovereign-doc/pkg/converter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock Implementations ---

type MockProgressBar struct {
	mock.Mock
}

// Add mocks the Add method.
func (m *MockProgressBar) Add(num int) error {
	args := m.Called(num)
	return args.Error(0)
}

// ChangeMax mocks the ChangeMax method.
func (m *MockProgressBar) ChangeMax(newMax int) {
	m.Called(newMax)
}

// Describe mocks the Describe method.
func (m *MockProgressBar) Describe(description string) {
	m.Called(description)
}

// Close mocks the Close method.
func (m *MockProgressBar) Close() error {
	args := m.Called()
	return args.Error(0)
}

var _ ProgressBar = (*MockProgressBar)(nil)
var _ ProgressBar = (*NoOpProgressBar)(nil)

// --- Test Suite ---

func TestCLIHooks_OnFileDiscovered(t *testing.T) {
	testPath := "/docs/report.docx"

	t.Run("Verbose Enabled", func(t *testing.T) {
		logBuf := &bytes.Buffer{}
		logger := slog.New(slog.NewJSONHandler(logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		hooks := NewCLIHooks(logger, true, nil, nil)
		err := hooks.OnFileDiscovered(testPath)
		require.NoError(t, err)

		logOutput := logBuf.String()
		assert.Contains(t, logOutput, `"level":"DEBUG"`)
		assert.Contains(t, logOutput, `"msg":"File discovered"`)
		assert.Contains(t, logOutput, `"path":"`+testPath+`"`)
	})

	t.Run("Progress Bar Grows With Discoveries", func(t *testing.T) {
		mockProgress := new(MockProgressBar)
		mockProgress.On("ChangeMax", 1).Once()
		mockProgress.On("ChangeMax", 2).Once()
		logBuf := &bytes.Buffer{}
		logger := slog.New(slog.NewTextHandler(logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		hooks := NewCLIHooks(logger, false, mockProgress, nil)

		require.NoError(t, hooks.OnFileDiscovered("/docs/a.docx"))
		require.NoError(t, hooks.OnFileDiscovered("/docs/b.docx"))

		mockProgress.AssertExpectations(t)
		assert.Empty(t, logBuf.String())
	})

	t.Run("Neither Bar nor Verbose", func(t *testing.T) {
		logBuf := &bytes.Buffer{}
		logger := slog.New(slog.NewTextHandler(logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		hooks := NewCLIHooks(logger, false, nil, nil)
		err := hooks.OnFileDiscovered(testPath)
		require.NoError(t, err)
		assert.Empty(t, logBuf.String())
	})
}

func TestCLIHooks_OnFileStatusUpdate(t *testing.T) {
	testPath := "/docs/file.docx"
	testDuration := 50 * time.Millisecond

	t.Run("Verbose Enabled", func(t *testing.T) {
		logBuf := &bytes.Buffer{}
		logger := slog.New(slog.NewJSONHandler(logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		hooks := NewCLIHooks(logger, true, nil, nil)

		testCases := []struct {
			status        converter.Status
			message       string
			expectedLevel string
			expectedMsg   string
			checkKey      string
		}{
			{converter.StatusProcessing, "Starting", "DEBUG", "File status updated", "message"},
			{converter.StatusSuccess, "/docs/file.md", "INFO", "File status updated", "output"},
			{converter.StatusSkipped, "Matched pattern: ~$*", "INFO", "File status updated", "message"},
			{converter.StatusFailed, "format error", "ERROR", "File conversion failed", "error"},
		}

		for _, tc := range testCases {
			logBuf.Reset()
			err := hooks.OnFileStatusUpdate(testPath, tc.status, tc.message, testDuration)
			require.NoError(t, err)
			logOutput := logBuf.String()

			durationRegex := regexp.QuoteMeta(fmt.Sprintf(`"duration":%d`, testDuration.Nanoseconds()))
			assert.Regexp(t, durationRegex, logOutput)

			assert.Contains(t, logOutput, `"level":"`+tc.expectedLevel+`"`)
			assert.Contains(t, logOutput, `"msg":"`+tc.expectedMsg+`"`)
			assert.Contains(t, logOutput, `"path":"`+testPath+`"`)
			assert.Contains(t, logOutput, `"status":"`+string(tc.status)+`"`)
			assert.Contains(t, logOutput, `"`+tc.checkKey+`":"`+tc.message+`"`)
		}
	})

	t.Run("Progress Bar Enabled", func(t *testing.T) {
		mockProgress := new(MockProgressBar)
		logBuf := &bytes.Buffer{}
		logger := slog.New(slog.NewJSONHandler(logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		hooks := NewCLIHooks(logger, false, mockProgress, nil)

		mockProgress.On("Describe", "Converting file.docx").Once()
		mockProgress.On("Add", 1).Return(nil).Twice()

		require.NoError(t, hooks.OnFileStatusUpdate(testPath, converter.StatusProcessing, "", 0))
		require.NoError(t, hooks.OnFileStatusUpdate(testPath, converter.StatusSuccess, "/docs/file.md", testDuration))
		require.NoError(t, hooks.OnFileStatusUpdate("/docs/~$tmp.docx", converter.StatusSkipped, "Matched pattern: ~$*", 0))
		require.NoError(t, hooks.OnFileStatusUpdate(testPath, converter.StatusFailed, "format error", testDuration))

		mockProgress.AssertExpectations(t)
		assert.Empty(t, logBuf.String(), "Failures are reported from the final report, not logged here")
	})

	t.Run("Standard Mode (Non-TTY, Non-Verbose)", func(t *testing.T) {
		logBuf := &bytes.Buffer{}
		logger := slog.New(slog.NewJSONHandler(logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		hooks := NewCLIHooks(logger, false, nil, nil)

		require.NoError(t, hooks.OnFileStatusUpdate(testPath, converter.StatusProcessing, "", 0))
		require.NoError(t, hooks.OnFileStatusUpdate(testPath, converter.StatusFailed, "format error", testDuration))

		assert.Empty(t, logBuf.String())
	})
}

func TestCLIHooks_OnRunComplete(t *testing.T) {
	t.Run("Closes Progress Bar", func(t *testing.T) {
		mockProgress := new(MockProgressBar)
		mockProgress.On("Close").Return(nil).Once()
		barOut := &bytes.Buffer{}
		hooks := NewCLIHooks(nil, false, mockProgress, barOut)

		err := hooks.OnRunComplete(converter.Report{})

		require.NoError(t, err)
		mockProgress.AssertExpectations(t)
		assert.Equal(t, "\n", barOut.String())
	})

	t.Run("Without Progress Bar", func(t *testing.T) {
		hooks := NewCLIHooks(nil, false, nil, nil)
		assert.NoError(t, hooks.OnRunComplete(converter.Report{}))
	})
}

func TestNewProgressBar_WritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	var bar ProgressBar = NewProgressBar(&buf)
	bar.ChangeMax(2)

	require.NoError(t, bar.Add(2))
	require.NoError(t, bar.Close())
}

func TestNoOpProgressBar(t *testing.T) {
	bar := &NoOpProgressBar{}
	assert.NoError(t, bar.Add(1))
	bar.ChangeMax(3)
	bar.Describe("x")
	assert.NoError(t, bar.Close())
}

// --- END OF FINAL REVISED FILE internal/cli/hooks/hooks_test.go ---

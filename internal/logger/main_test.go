package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storenav/storenav/internal/logger"
)

func TestLogger(t *testing.T) {
	type testCase struct {
		name             string
		cfg              logger.Log
		shouldHaveOutPut bool
		outPutIsJSON     bool
	}

	testCases := []testCase{
		{
			name: "no logger enabled log level not set",
			cfg: logger.Log{
				LogLevel:    "",
				ServiceName: "test",
				AppName:     "test",
			},
			shouldHaveOutPut: false,
		},
		{
			name: "console enabled log level info",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true},
			},
			shouldHaveOutPut: true,
		},
		{
			name: "console enabled console writer enabled",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true, UseConsoleWriter: true},
			},
			shouldHaveOutPut: true,
		},
		{
			name: "console enabled console writer disabled info expect json",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true, UseConsoleWriter: false},
			},
			shouldHaveOutPut: true,
			outPutIsJSON:     true,
		},
		{
			name: "console enabled console writer disabled trace expect json stack",
			cfg: logger.Log{
				LogLevel:     "trace",
				ServiceName:  "test",
				AppName:      "test",
				ReportCaller: true,
				Console:      logger.Console{Enabled: true, UseConsoleWriter: false},
			},
			shouldHaveOutPut: true,
			outPutIsJSON:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := testLoggerConfig(t, tc.cfg)
			t.Logf("out: %s", out)

			switch {
			case out == "" && tc.shouldHaveOutPut:
				t.Errorf("expected console output but got none")
			case out != "" && !tc.shouldHaveOutPut:
				t.Errorf("expected no console output but got: %s", out)
			case tc.outPutIsJSON:
				for _, outLine := range strings.Split(out, "\n") {
					if outLine == "" {
						continue
					}

					var line struct {
						Level   string `json:"level"`
						App     string `json:"app"`
						Message string `json:"message"`
					}

					if err := json.Unmarshal([]byte(outLine), &line); err != nil {
						t.Errorf("expected json output but got: %s", outLine)
						continue
					}

					assert.Equal(t, "test", line.App)
				}
			}
		})
	}
}

func TestInit_Errors(t *testing.T) {
	err := logger.Init(logger.Log{LogLevel: "verbose", ServiceName: "test", AppName: "test"})
	require.Error(t, err)

	err = logger.Init(logger.Log{LogLevel: "info", AppName: "test"})
	require.ErrorIs(t, err, logger.ErrServiceNameIsEmpty)

	err = logger.Init(logger.Log{LogLevel: "info", ServiceName: "test"})
	require.ErrorIs(t, err, logger.ErrAppNameIsEmpty)
}

func TestInit_File(t *testing.T) {
	dir := t.TempDir()

	err := logger.Init(logger.Log{
		LogLevel:    "debug",
		ServiceName: "test",
		AppName:     "test",
		File: logger.LogFile{
			Enabled: true,
			Path:    dir,
			Error:   logger.RollingFile{Name: "error.log", MaxSize: 1},
			Info:    logger.RollingFile{Name: "info.log", MaxSize: 1},
			Trace:   logger.RollingFile{Name: "trace.log", MaxSize: 1},
			Warn:    logger.RollingFile{Name: "warn.log", MaxSize: 1},
		},
	})
	require.NoError(t, err)

	log.Info().Msg("info line")
	log.Warn().Msg("warn line")
	log.Error().Msg("error line")

	info, err := os.ReadFile(dir + "/info.log")
	require.NoError(t, err)
	assert.Contains(t, string(info), "info line")
	assert.NotContains(t, string(info), "error line")

	errs, err := os.ReadFile(dir + "/error.log")
	require.NoError(t, err)
	assert.Contains(t, string(errs), "error line")

	warn, err := os.ReadFile(dir + "/warn.log")
	require.NoError(t, err)
	assert.Contains(t, string(warn), "warn line")
}

func TestLevelWriter_WriteLevel(t *testing.T) {
	var errBuf, infoBuf, traceBuf, warnBuf bytes.Buffer

	lw := &logger.LevelWriter{
		ErrorWriter: &errBuf,
		InfoWriter:  &infoBuf,
		TraceWriter: &traceBuf,
		WarnWriter:  &warnBuf,
	}

	writes := map[zerolog.Level]*bytes.Buffer{
		zerolog.TraceLevel: &traceBuf,
		zerolog.DebugLevel: &infoBuf,
		zerolog.InfoLevel:  &infoBuf,
		zerolog.NoLevel:    &infoBuf,
		zerolog.WarnLevel:  &warnBuf,
		zerolog.ErrorLevel: &errBuf,
		zerolog.FatalLevel: &errBuf,
		zerolog.PanicLevel: &errBuf,
	}

	for level, buf := range writes {
		before := buf.Len()

		_, err := lw.WriteLevel(level, []byte("x"))
		require.NoError(t, err)
		assert.Equal(t, before+1, buf.Len(), level.String())
	}

	n, err := lw.WriteLevel(zerolog.Disabled, []byte("dropped"))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func alwaysErrFunc() error {
	return errors.New("a test error") //nolint:goerr113
}

func testLoggerConfig(t *testing.T, cfg logger.Log) string {
	t.Helper()
	// keep default std out
	stdout := os.Stdout
	stderr := os.Stderr

	// capture stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	os.Stderr = w

	err := logger.Init(cfg)
	if err != nil {
		t.Error(err)
	}

	log.Info().Msg("this info message should be seen...")
	log.Error().Err(alwaysErrFunc()).Msg("this err message should be seen...")
	log.Trace().Err(alwaysErrFunc()).Msg("this trace message should be seen...")

	outC := make(chan string)
	// copy the output in a separate goroutine so printing can't block indefinitely
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	// back to normal state
	_ = w.Close()
	os.Stdout = stdout // restoring the real stdout
	os.Stderr = stderr // restoring the real stderr
	out := <-outC

	return out
}

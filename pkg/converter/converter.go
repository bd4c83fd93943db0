// --- START OF FINAL REVISED FILE pkg/converter/converter.go ---
package converter

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"
	"unicode/utf8"

	"github.com/stackvity/sovereign-doc/pkg/converter/docx"
	"github.com/stackvity/sovereign-doc/pkg/converter/encoding"
	"github.com/stackvity/sovereign-doc/pkg/converter/heuristics"
	"github.com/stackvity/sovereign-doc/pkg/converter/runlog"
	"github.com/stackvity/sovereign-doc/pkg/util"
)

// Result describes one successful conversion.
type Result struct {
	InputPath         string
	OutputPath        string
	SourceFormat      Format
	DestinationFormat Format
	Mode              Mode
	Duration          time.Duration // Load, transform and write; excludes validation and path resolution
	CharsOut          int           // Rune count of the converted content
	Score             float64       // Quality score in [0, 1]
}

// Converter runs single-file and batch conversions with injected collaborators.
// A Converter holds no per-conversion state and may be reused.
type Converter struct {
	logger          *slog.Logger
	hooks           Hooks
	recorder        Recorder
	encodingHandler encoding.EncodingHandler
	reader          PackageReader
	writer          PackageWriter
	ignorePatterns  []string
}

// New creates a Converter from opts, filling every nil collaborator with its default:
// a discarding logger, NoOpHooks, the CSV run log at opts.Log.File (or next to the
// executable), the charset-detecting decoder and the docx reader and writer.
func New(opts Options) *Converter {
	handler := opts.Logger
	if handler == nil {
		handler = slog.DiscardHandler
	}
	c := &Converter{
		logger:          slog.New(handler).With(slog.String("component", "converter")),
		hooks:           opts.EventHooks,
		recorder:        opts.Recorder,
		encodingHandler: opts.EncodingHandler,
		reader:          opts.PackageReader,
		writer:          opts.PackageWriter,
		ignorePatterns:  opts.IgnorePatterns,
	}
	if c.hooks == nil {
		c.hooks = &NoOpHooks{}
	}
	if c.recorder == nil {
		c.recorder = runlog.NewCSVRecorder(opts.Log.File)
	}
	if c.encodingHandler == nil {
		c.encodingHandler = encoding.NewGoCharsetEncodingHandler(opts.DefaultEncoding)
	}
	if c.reader == nil {
		c.reader = docx.NewReader()
	}
	if c.writer == nil {
		c.writer = docx.NewWriter()
	}
	return c
}

// Convert converts inputPath to the destination format and returns the path of the
// new file. It uses a default Converter whose run log sits next to the executable.
// An empty mode is recorded as ModeCore.
func Convert(inputPath, destination string, mode Mode, loggingEnabled bool) (string, error) {
	res, err := New(Options{}).Convert(inputPath, destination, mode, loggingEnabled)
	if err != nil {
		return "", err
	}
	return res.OutputPath, nil
}

// Convert validates the request, picks an output path that never overwrites an
// existing file, runs the route for (source, destination) and, when loggingEnabled
// is set, hands one record to the Recorder. Recorder failures are logged and dropped.
//
// Validation order: the input must be an existing regular file (ErrNotFound), its
// extension must be a source format (ErrFormat), and destination must be a
// destination token (ErrFormat).
func (c *Converter) Convert(inputPath, destination string, mode Mode, loggingEnabled bool) (Result, error) {
	if mode == "" {
		mode = DefaultMode
	}
	logger := c.logger.With(slog.String("input", inputPath))

	info, err := os.Stat(inputPath)
	if err != nil || !info.Mode().IsRegular() {
		return Result{}, fmt.Errorf("%w: %s", ErrNotFound, inputPath)
	}
	src, err := SourceFormatFromPath(inputPath)
	if err != nil {
		return Result{}, err
	}
	dst, err := ParseFormat(destination)
	if err != nil {
		return Result{}, err
	}
	route, err := LookupRoute(src, dst)
	if err != nil {
		return Result{}, err
	}

	outputPath, err := OutputPathFor(inputPath, dst)
	if err != nil {
		return Result{}, err
	}
	logger.Debug("Resolved conversion", slog.String("route", route.Name), slog.String("output", outputPath))

	start := time.Now()
	text, err := c.load(inputPath, src)
	if err != nil {
		return Result{}, err
	}
	converted := route.Transform(text)
	if err := c.write(outputPath, dst, converted); err != nil {
		return Result{}, err
	}
	duration := time.Since(start)

	res := Result{
		InputPath:         inputPath,
		OutputPath:        outputPath,
		SourceFormat:      src,
		DestinationFormat: dst,
		Mode:              mode,
		Duration:          duration,
		CharsOut:          utf8.RuneCountInString(converted),
		Score:             ComputeQualityScore(converted, dst),
	}
	logger.Debug("Conversion finished",
		slog.String("output", outputPath),
		slog.Duration("duration", duration),
		slog.Int("charsOut", res.CharsOut),
		slog.Float64("score", res.Score))

	if loggingEnabled {
		c.record(logger, res)
	}
	return res, nil
}

// load returns the source as plain text: the package reader's paragraphs for docx,
// otherwise the decoded file with normalized line endings.
func (c *Converter) load(inputPath string, src Format) (string, error) {
	if src == FormatDocx {
		text, err := c.reader.ExtractText(inputPath)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrFormat, err)
		}
		return text, nil
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadFailed, inputPath, err)
	}
	text, detected, certain, err := c.encodingHandler.DetectAndDecode(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadFailed, inputPath, err)
	}
	c.logger.Debug("Decoded text source",
		slog.String("input", inputPath),
		slog.String("encoding", detected),
		slog.Bool("certain", certain))
	return heuristics.NormalizeNewlines(text), nil
}

// write stores the converted content at outputPath, creating the file exclusively.
func (c *Converter) write(outputPath string, dst Format, converted string) error {
	if dst == FormatDocx {
		if err := c.writer.WriteFile(outputPath, converted); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteFailed, err)
		}
		return nil
	}

	if err := util.CreateExclusive(outputPath, []byte(converted)); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s appeared while converting: %w", ErrWriteFailed, outputPath, err)
		}
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, outputPath, err)
	}
	return nil
}

func (c *Converter) record(logger *slog.Logger, res Result) {
	rec := runlog.Record{
		Timestamp:         time.Now(),
		InputPath:         res.InputPath,
		OutputPath:        res.OutputPath,
		SourceFormat:      string(res.SourceFormat),
		DestinationFormat: string(res.DestinationFormat),
		Mode:              string(res.Mode),
		DurationMs:        float64(res.Duration) / float64(time.Millisecond),
		CharsOut:          res.CharsOut,
		OmegaScore:        res.Score,
	}
	if err := c.recorder.Record(rec); err != nil {
		logger.Debug("Run log write failed; ignoring", slog.String("error", err.Error()))
	}
}

// --- END OF FINAL REVISED FILE pkg/converter/converter.go ---

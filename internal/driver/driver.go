package driver

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/chronos-tachyon/grin"
	"github.com/chronos-tachyon/grin/internal/config"
	"github.com/chronos-tachyon/grin/internal/metrics"
	"github.com/icza/bitio"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Operation names, used as the op label of every metric and log line.
const (
	OpEncode = "encode"
	OpDecode = "decode"
)

// outputMode is the permission of a newly created output file.
const outputMode fs.FileMode = 0o644

// Driver runs encode and decode operations over file pairs.
type Driver struct {
	logger  zerolog.Logger
	metrics *metrics.Metrics
	bufSize int
}

// New builds a Driver from the io.* settings.
func New(conf *config.Conf, logger zerolog.Logger, m *metrics.Metrics) *Driver {
	bufSize := conf.Int("io.buffer-size", 64*1024)
	if bufSize < 16 {
		bufSize = 16
	}
	return &Driver{
		logger:  logger.With().Str("name", "driver").Logger(),
		metrics: m,
		bufSize: bufSize,
	}
}

// Encode compresses the file at inPath into outPath.  The input is read
// twice: once to count symbol frequencies, once to encode it.
func (d *Driver) Encode(ctx context.Context, inPath, outPath string) (err error) {
	var in, out int64
	logger := d.logger.With().Str("op", OpEncode).Str("in", inPath).Str("out", outPath).Logger()
	defer d.finish(logger, OpEncode, time.Now(), &in, &out, &err)

	f, err := os.Open(inPath)
	if err != nil {
		return ioFailure(err, "opening %s", inPath)
	}
	defer f.Close()

	freqs, err := grin.CountFrequencies(bufio.NewReaderSize(f, d.bufSize))
	if err != nil {
		return errors.Wrapf(err, "scanning %s", inPath)
	}
	in = int64(freqs.Total())

	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return ioFailure(err, "rewinding %s", inPath)
	}

	tree := grin.NewTree(freqs)
	logger.Debug().
		Int("symbols", len(freqs)+1).
		Int("depth", tree.Depth()).
		Int("header-bits", tree.HeaderSize()).
		Msg("built tree")

	out, err = d.writeAtomically(ctx, outPath, func(w io.Writer) error {
		bw := bitio.NewWriter(w)
		if err := grin.Encode(bufio.NewReaderSize(f, d.bufSize), bw, tree); err != nil {
			return err
		}
		if err := bw.Close(); err != nil {
			return ioFailure(err, "flushing bit stream")
		}
		return nil
	})
	return errors.Wrapf(err, "encoding %s", inPath)
}

// Decode decompresses the file at inPath into outPath.
func (d *Driver) Decode(ctx context.Context, inPath, outPath string) (err error) {
	var in, out int64
	logger := d.logger.With().Str("op", OpDecode).Str("in", inPath).Str("out", outPath).Logger()
	defer d.finish(logger, OpDecode, time.Now(), &in, &out, &err)

	f, err := os.Open(inPath)
	if err != nil {
		return ioFailure(err, "opening %s", inPath)
	}
	defer f.Close()

	cr := &countingReader{r: f}

	out, err = d.writeAtomically(ctx, outPath, func(w io.Writer) error {
		r := grin.NewReader(bitio.NewReader(bufio.NewReaderSize(cr, d.bufSize)))
		tree, err := r.Tree()
		if err != nil {
			return err
		}
		logger.Debug().
			Int("symbols", len(tree.Leaves())).
			Int("depth", tree.Depth()).
			Int("header-bits", tree.HeaderSize()).
			Msg("read tree")

		if _, err := io.Copy(w, r); err != nil {
			var e *grin.Error
			if !errors.As(err, &e) {
				err = ioFailure(err, "writing %s", outPath)
			}
			return err
		}
		return nil
	})
	in = cr.n
	return errors.Wrapf(err, "decoding %s", inPath)
}

// writeAtomically runs fn against a temporary file next to outPath and
// renames it into place only if fn succeeds.  On failure the temporary file
// is removed and outPath is left untouched.  An existing outPath keeps its
// permissions; a new one gets outputMode.
func (d *Driver) writeAtomically(ctx context.Context, outPath string, fn func(w io.Writer) error) (int64, error) {
	mode := outputMode
	if info, err := os.Stat(outPath); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(outPath), "."+filepath.Base(outPath)+".*.tmp")
	if err != nil {
		return 0, ioFailure(err, "creating output for %s", outPath)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	cw := &countingWriter{w: tmp}
	bw := bufio.NewWriterSize(cw, d.bufSize)
	if err := fn(bw); err != nil {
		return 0, err
	}
	if err := bw.Flush(); err != nil {
		return 0, ioFailure(err, "writing %s", outPath)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := tmp.Chmod(mode); err != nil {
		return 0, ioFailure(err, "setting permissions of %s", outPath)
	}
	if err := tmp.Close(); err != nil {
		return 0, ioFailure(err, "closing %s", outPath)
	}
	if err := os.Rename(tmp.Name(), outPath); err != nil {
		return 0, ioFailure(err, "renaming into %s", outPath)
	}
	committed = true
	return cw.n, nil
}

func (d *Driver) finish(logger zerolog.Logger, op string, start time.Time, in, out *int64, err *error) {
	elapsed := time.Since(start)
	d.metrics.Observe(op, *in, *out, elapsed, *err)
	if *err != nil {
		logger.Debug().Err(*err).Dur("elapsed", elapsed).Msg("operation failed")
		return
	}
	logger.Info().
		Int64("in-bytes", *in).
		Int64("out-bytes", *out).
		Dur("elapsed", elapsed).
		Msgf("%s finished", op)
}

func ioFailure(err error, format string, args ...any) error {
	return errors.WithStack(&grin.Error{Kind: grin.IoFailure, Msg: fmt.Sprintf(format, args...), Err: err})
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}

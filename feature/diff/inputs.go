package diff

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"csvdiff/core/csvio"
	"csvdiff/core/database"
	"csvdiff/core/matchkey"
	"csvdiff/core/rowsource"
	"csvdiff/core/storage"

	"go.uber.org/zap"
)

const (
	sqlPrefix   = "sql:"
	tablePrefix = "table:"
)

// ErrStdinNotSupported rejects "-" as an input.
var ErrStdinNotSupported = errors.New("standard input cannot be read twice; save it to a file first")

// input is one opened side of a run.
type input struct {
	label    string
	producer rowsource.RowProducer
	// dialect is nil for database inputs.
	dialect  *csvio.Dialect
	encoding string
	header   bool
	sniffed  bool
	close    func() error
}

func (in *input) Close() error {
	if in.close == nil {
		return nil
	}
	return in.close()
}

type inputKind int

const (
	fileInput inputKind = iota
	objectInput
	queryInput
	tableInput
)

func kindOf(path string) inputKind {
	switch {
	case storage.IsURI(path):
		return objectInput
	case strings.HasPrefix(path, sqlPrefix):
		return queryInput
	case strings.HasPrefix(path, tablePrefix):
		return tableInput
	default:
		return fileInput
	}
}

func (s *Service) openInput(ctx context.Context, side rowsource.Side, o SideOptions, opts Options, spec matchkey.Spec, log *zap.Logger) (*input, error) {
	if o.Path == "-" {
		return nil, ErrStdinNotSupported
	}
	if o.Path == "" {
		return nil, fmt.Errorf("no %s input given", side)
	}

	switch kindOf(o.Path) {
	case queryInput, tableInput:
		return s.openQuery(ctx, o.Path, spec)
	default:
		return s.openDelimited(ctx, side, o, opts, log)
	}
}

func (s *Service) openQuery(ctx context.Context, path string, spec matchkey.Spec) (*input, error) {
	db, err := s.database()
	if err != nil {
		return nil, err
	}

	query := strings.TrimSpace(strings.TrimPrefix(path, sqlPrefix))
	label := path
	if kindOf(path) == tableInput {
		table := strings.TrimSpace(strings.TrimPrefix(path, tablePrefix))
		keys := make([]database.OrderKey, len(spec))
		for i, f := range spec {
			keys[i] = database.OrderKey{Index: f.Index, Width: f.Width}
		}
		if query, err = database.TableQuery(db, table, keys); err != nil {
			return nil, err
		}
	}
	if query == "" {
		return nil, fmt.Errorf("empty query in %q", path)
	}

	rows := database.NewQueryRows(ctx, db, query)
	return &input{label: label, producer: rows, close: rows.Close}, nil
}

func (s *Service) openStream(ctx context.Context, path string) (io.ReadSeekCloser, error) {
	if kindOf(path) == objectInput {
		client, err := s.storage()
		if err != nil {
			return nil, err
		}
		return storage.Open(ctx, client, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}

func (s *Service) openDelimited(ctx context.Context, side rowsource.Side, o SideOptions, opts Options, log *zap.Logger) (*input, error) {
	enc, err := csvio.LookupEncoding(o.Encoding)
	if err != nil {
		return nil, err
	}
	configured, err := o.Dialect()
	if err != nil {
		return nil, err
	}
	mode, err := csvio.ParseHeaderMode(opts.Header)
	if err != nil {
		return nil, err
	}

	rs, err := s.openStream(ctx, o.Path)
	if err != nil {
		return nil, err
	}

	dialect, sniffed := configured, false
	if !opts.ForceIndividualSpecs {
		size := opts.SniffingSize
		if size <= 0 {
			size = defaultSniffingSize
		}
		d, err := csvio.SniffFile(rs, size, enc)
		switch {
		case err == nil:
			dialect, sniffed = d, true
		case errors.Is(err, csvio.ErrSniffFailed):
			log.Warn("Sniffing failed, using the configured dialect instead",
				zap.String("side", string(side)),
				zap.String("input", o.Path),
				zap.Int("sniffing_size", size),
				zap.Error(err))
		default:
			rs.Close()
			return nil, err
		}
	}

	log.Debug("Dialect resolved",
		zap.String("side", string(side)),
		zap.Bool("sniffed", sniffed),
		zap.String("dialect", dialect.String()),
		zap.Bool("sniffed_header", dialect.HasHeader))

	dialect.HasHeader = mode.Resolve(sniffed && dialect.HasHeader)

	label := o.Path
	if kindOf(o.Path) == fileInput {
		label = filepath.Base(o.Path)
	}

	return &input{
		label:    label,
		producer: csvio.NewReader(rs, dialect, enc),
		dialect:  &dialect,
		encoding: csvio.EncodingName(enc),
		header:   dialect.HasHeader,
		sniffed:  sniffed,
		close:    rs.Close,
	}, nil
}

package diff

import (
	"context"
	"fmt"
	"io"
	"time"

	"csvdiff/core/csvio"
	"csvdiff/core/failure"
	"csvdiff/core/history"
	"csvdiff/core/logger"
	"csvdiff/core/matchkey"
	"csvdiff/core/reconcile"
	"csvdiff/core/rowsource"
	"csvdiff/core/storage"
	"csvdiff/feature/report"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultSniffingSize = 4096

// DBOpener connects to the database on first use.
type DBOpener func() (*gorm.DB, error)

// StorageOpener creates the object storage client on first use.
type StorageOpener func() (storage.Client, error)

// Service runs diffs.
type Service struct {
	logger      *zap.Logger
	openDB      DBOpener
	openStorage StorageOpener
	history     *history.Store

	db     *gorm.DB
	client storage.Client

	now   func() time.Time
	newID func() string
}

// NewService creates a diff service. Either opener may be nil when the
// corresponding inputs are not used.
func NewService(logger *zap.Logger, openDB DBOpener, openStorage StorageOpener) *Service {
	return &Service{
		logger:      logger,
		openDB:      openDB,
		openStorage: openStorage,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// WithHistory records every run in store.
func (s *Service) WithHistory(store *history.Store) *Service {
	s.history = store
	return s
}

func (s *Service) database() (*gorm.DB, error) {
	if s.db != nil {
		return s.db, nil
	}
	if s.openDB == nil {
		return nil, fmt.Errorf("no database configured for sql inputs")
	}
	db, err := s.openDB()
	if err != nil {
		return nil, err
	}
	s.db = db
	return db, nil
}

func (s *Service) storage() (storage.Client, error) {
	if s.client != nil {
		return s.client, nil
	}
	if s.openStorage == nil {
		return nil, fmt.Errorf("no object storage configured for s3 inputs")
	}
	client, err := s.openStorage()
	if err != nil {
		return nil, err
	}
	s.client = client
	return client, nil
}

// Run compares opts.Left with opts.Right and writes the report to w.
func (s *Service) Run(ctx context.Context, opts Options, w io.Writer) (summary *report.Summary, err error) {
	runID := s.newID()
	started := s.now()
	log := logger.WithRun(s.logger, runID)

	defer func() {
		s.record(runID, started, opts, summary, err, log)
	}()

	spec, err := matchkey.ParseSpec(opts.MatchingKeys)
	if err != nil {
		return nil, err
	}
	ignore, err := ParseIndices(opts.IgnoreColumns)
	if err != nil {
		return nil, err
	}
	reportOpts := opts.Report.Normalize()

	left, err := s.openInput(ctx, rowsource.Left, opts.Left, opts, spec, log)
	if err != nil {
		return nil, fmt.Errorf("left input %s: %w", opts.Left.Path, err)
	}
	defer left.Close()

	right, err := s.openInput(ctx, rowsource.Right, opts.Right, opts, spec, log)
	if err != nil {
		return nil, fmt.Errorf("right input %s: %w", opts.Right.Path, err)
	}
	defer right.Close()

	codec := matchkey.NewCodec(spec)
	leftSource, err := rowsource.New(left.producer, codec, rowsource.Options{
		Side: rowsource.Left, Label: left.label, Header: left.header, Unique: opts.UniqueKey,
	})
	if err != nil {
		return nil, err
	}
	rightSource, err := rowsource.New(right.producer, codec, rowsource.Options{
		Side: rowsource.Right, Label: right.label, Header: right.header, Unique: opts.UniqueKey,
	})
	if err != nil {
		return nil, err
	}

	lines := contextLines(opts, reportOpts, spec, ignore, left, right)
	fields := make([]zap.Field, 0, len(lines))
	for _, l := range lines {
		if !l.Section {
			fields = append(fields, zap.String(l.Name, l.Value))
		}
	}
	log.Debug("Run context", fields...)

	mode := reconcile.ScanLight
	if reportOpts.NeedsSizeInfo() {
		mode = reconcile.ScanDeep
	}
	scan, err := reconcile.Scan(leftSource, rightSource, mode, report.RowWidth)
	if err != nil {
		return nil, err
	}
	log.Debug("Pre-scan finished", zap.Int("columns", scan.Columns), zap.Bool("deep", scan.Size != nil))

	detector := reconcile.NewDetector(scan.Columns, spec.Indices(), ignore)

	if err := report.Heading(w, reportOpts, lines); err != nil {
		return nil, err
	}

	counter := report.NewCounter()
	detail := report.NewDetail(w, reportOpts, scan.Size)
	if err := detail.WriteHeading(left.label, right.label); err != nil {
		return nil, err
	}

	if err := reconcile.NewEngine(detector).Run(leftSource, rightSource, reconcile.Handlers(counter, detail)); err != nil {
		return nil, err
	}

	summary = counter.Summary()
	summary.RunID = runID
	summary.Left = opts.Left.Path
	summary.Right = opts.Right.Path
	summary.KeySpec = spec.String()

	if err := report.WriteCount(w, reportOpts, summary); err != nil {
		return nil, err
	}

	if opts.JSONPath != "" {
		if err := s.export(ctx, opts.JSONPath, summary); err != nil {
			return nil, err
		}
	}

	log.Info("Diff finished",
		zap.Int("same", summary.Same),
		zap.Int("left_only", summary.LeftOnly),
		zap.Int("right_only", summary.RightOnly),
		zap.Int("differences", summary.Differences),
		zap.Duration("elapsed", s.now().Sub(started)))

	return summary, nil
}

func (s *Service) export(ctx context.Context, path string, summary *report.Summary) error {
	if !storage.IsURI(path) {
		return report.WriteJSON(path, summary)
	}

	data, err := report.MarshalSummary(summary)
	if err != nil {
		return err
	}
	client, err := s.storage()
	if err != nil {
		return err
	}
	return storage.Put(ctx, client, path, data, "application/json")
}

func (s *Service) record(runID string, started time.Time, opts Options, summary *report.Summary, runErr error, log *zap.Logger) {
	if s.history == nil {
		return
	}

	r := history.Record{
		RunID:     runID,
		StartedAt: started,
		Duration:  s.now().Sub(started),
		Left:      opts.Left.Path,
		Right:     opts.Right.Path,
		KeySpec:   opts.MatchingKeys,
	}
	if summary != nil {
		r.Same = summary.Same
		r.LeftOnly = summary.LeftOnly
		r.RightOnly = summary.RightOnly
		r.Differences = summary.Differences
	}
	if runErr != nil {
		r.Failure = string(failure.KindOf(runErr))
		r.Error = runErr.Error()
	}

	if err := s.history.Append(r); err != nil {
		log.Warn("Failed to record run", zap.Error(err))
	}
}

// SniffFile reports the dialect Run would sniff for path.
func (s *Service) SniffFile(ctx context.Context, path string, size int, encoding string) (csvio.Dialect, error) {
	switch {
	case path == "-":
		return csvio.Dialect{}, ErrStdinNotSupported
	case kindOf(path) == queryInput || kindOf(path) == tableInput:
		return csvio.Dialect{}, fmt.Errorf("database inputs have no dialect")
	}

	enc, err := csvio.LookupEncoding(encoding)
	if err != nil {
		return csvio.Dialect{}, err
	}
	if size <= 0 {
		size = defaultSniffingSize
	}

	rs, err := s.openStream(ctx, path)
	if err != nil {
		return csvio.Dialect{}, err
	}
	defer rs.Close()

	return csvio.SniffFile(rs, size, enc)
}

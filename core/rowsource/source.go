package rowsource

import (
	"errors"
	"fmt"
	"io"

	"csvdiff/core/failure"
	"csvdiff/core/matchkey"
)

// Side identifies which input a source reads.
type Side string

const (
	Left  Side = "left"
	Right Side = "right"
)

// RowFact is one row as seen by the merge engine.
type RowFact struct {
	Side Side
	// RowNumber is 1-based over data rows; the header is never counted.
	RowNumber int
	Row       []string
	Key       matchkey.Key
}

// IsEnd reports whether the fact marks the end of its stream.
func (f RowFact) IsEnd() bool { return f.Key.IsEnd() }

// Options configures a Source.
type Options struct {
	Side Side
	// Label names the input in diagnostics, typically its file name.
	Label string
	// Header skips the first row.
	Header bool
	// Unique rejects consecutive rows with equal keys.
	Unique bool
}

// Source is an ordered, validated stream of RowFacts for one side.
type Source struct {
	producer RowProducer
	codec    *matchkey.Codec
	opts     Options

	rowNumber   int
	previousKey matchkey.Key
	hasPrevious bool
	exhausted   bool
	header      []string
}

// New wraps producer. When opts.Header is set, the header row is read here.
func New(producer RowProducer, codec *matchkey.Codec, opts Options) (*Source, error) {
	s := &Source{
		producer: producer,
		codec:    codec,
		opts:     opts,
	}
	if err := s.skipHeader(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Source) skipHeader() error {
	s.header = nil
	if !s.opts.Header {
		return nil
	}
	row, err := s.producer.Next()
	if errors.Is(err, io.EOF) {
		s.exhausted = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read header of %s: %w", s.opts.Side, err)
	}
	s.header = row
	return nil
}

// Next returns the next fact. After exhaustion it keeps returning an End fact
// without advancing the row number.
func (s *Source) Next() (RowFact, error) {
	if s.exhausted {
		return s.endFact(), nil
	}

	row, err := s.producer.Next()
	if errors.Is(err, io.EOF) {
		s.exhausted = true
		return s.endFact(), nil
	}
	if err != nil {
		return RowFact{}, fmt.Errorf("failed to read %s row %d: %w", s.opts.Side, s.rowNumber+1, err)
	}

	s.rowNumber++

	key, err := s.codec.Encode(row)
	if err != nil {
		var fe *failure.Error
		if errors.As(err, &fe) {
			fe.Side = string(s.opts.Side)
			fe.Label = s.opts.Label
			fe.RowNumber = s.rowNumber
		}
		return RowFact{}, err
	}

	if err := s.checkOrder(key); err != nil {
		return RowFact{}, err
	}
	s.previousKey = key
	s.hasPrevious = true

	return RowFact{Side: s.opts.Side, RowNumber: s.rowNumber, Row: row, Key: key}, nil
}

func (s *Source) checkOrder(key matchkey.Key) error {
	if !s.hasPrevious {
		return nil
	}

	switch c := key.Compare(s.previousKey); {
	case c < 0:
		return s.orderError(failure.KindUnsortedKey, key, failure.UnsortedHint)
	case c == 0 && s.opts.Unique:
		return s.orderError(failure.KindDuplicateKey, key, "")
	}
	return nil
}

func (s *Source) orderError(kind failure.Kind, key matchkey.Key, hint string) error {
	return &failure.Error{
		Kind:        kind,
		Side:        string(s.opts.Side),
		Label:       s.opts.Label,
		RowNumber:   s.rowNumber,
		CurrentKey:  matchkey.Decode(key),
		PreviousKey: matchkey.Decode(s.previousKey),
		KeySpec:     s.codec.Spec().String(),
		Hint:        hint,
	}
}

func (s *Source) endFact() RowFact {
	return RowFact{Side: s.opts.Side, RowNumber: s.rowNumber, Row: []string{}, Key: matchkey.End}
}

// Reset rewinds to the first data row and clears all ordering state.
func (s *Source) Reset() error {
	if err := s.producer.Rewind(); err != nil {
		return fmt.Errorf("failed to rewind %s: %w", s.opts.Side, err)
	}
	s.rowNumber = 0
	s.previousKey = matchkey.Key{}
	s.hasPrevious = false
	s.exhausted = false
	return s.skipHeader()
}

// RowNumber returns the number of data rows read so far.
func (s *Source) RowNumber() int { return s.rowNumber }

// Header returns the skipped header row, or nil.
func (s *Source) Header() []string { return s.header }

func (s *Source) Side() Side { return s.opts.Side }

func (s *Source) Label() string { return s.opts.Label }

package reconcile

import (
	"errors"

	"csvdiff/core/failure"
	"csvdiff/core/rowsource"
)

// Engine runs the merge join.
type Engine struct {
	detector *Detector
}

// NewEngine returns an engine that compares matched pairs with detector.
func NewEngine(detector *Detector) *Engine {
	return &Engine{detector: detector}
}

// Run merges left and right, calling h for each event, until both sides are
// exhausted. The first error from a source, the detector or h stops the run.
func (e *Engine) Run(left, right Source, h Handler) error {
	l, err := left.Next()
	if err != nil {
		return err
	}
	r, err := right.Next()
	if err != nil {
		return err
	}

	for !l.IsEnd() || !r.IsEnd() {
		switch c := l.Key.Compare(r.Key); {
		case c < 0:
			if err := h.OnLeftOnly(l); err != nil {
				return err
			}
			if l, err = left.Next(); err != nil {
				return err
			}

		case c == 0:
			result, err := e.detector.Detect(l.Row, r.Row)
			if err != nil {
				return locate(err, l, r)
			}
			if err := h.OnMatched(l, r, result); err != nil {
				return err
			}
			if l, err = left.Next(); err != nil {
				return err
			}
			if r, err = right.Next(); err != nil {
				return err
			}

		default:
			if err := h.OnRightOnly(r); err != nil {
				return err
			}
			if r, err = right.Next(); err != nil {
				return err
			}
		}
	}

	return nil
}

// locate adds the row number of the short row to a detector failure.
func locate(err error, l, r rowsource.RowFact) error {
	var fe *failure.Error
	if errors.As(err, &fe) {
		switch fe.Side {
		case string(rowsource.Left):
			fe.RowNumber = l.RowNumber
		case string(rowsource.Right):
			fe.RowNumber = r.RowNumber
		}
	}
	return err
}

type multiHandler []Handler

// Handlers fans every event out to hs in order.
func Handlers(hs ...Handler) Handler {
	return multiHandler(hs)
}

func (m multiHandler) OnLeftOnly(left rowsource.RowFact) error {
	for _, h := range m {
		if err := h.OnLeftOnly(left); err != nil {
			return err
		}
	}
	return nil
}

func (m multiHandler) OnRightOnly(right rowsource.RowFact) error {
	for _, h := range m {
		if err := h.OnRightOnly(right); err != nil {
			return err
		}
	}
	return nil
}

func (m multiHandler) OnMatched(left, right rowsource.RowFact, result ValueDiffResult) error {
	for _, h := range m {
		if err := h.OnMatched(left, right, result); err != nil {
			return err
		}
	}
	return nil
}

package survey

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"flatland/internal/crypto"
	"flatland/internal/domain"
	"flatland/internal/input"
	"flatland/internal/world"
)

// Service surveys input documents.
type Service struct {
	log      *slog.Logger
	recorder domain.Recorder
	newID    func() domain.RunID
}

// New returns a survey service that logs to log and reports to rec.
func New(log *slog.Logger, rec domain.Recorder) *Service {
	return &Service{
		log:      log,
		recorder: rec,
		newID:    func() domain.RunID { return domain.RunID(uuid.NewString()) },
	}
}

// Survey reads a header and its records from r, places every inhabitant and
// returns the merged shadow length.
//
// Failures:
//   - ErrIo, ErrMissingValue, ErrInvalidValue from parsing
//   - ErrOutOfRange for a bad angle, count, position or height, or a record
//     beyond the declared count
//   - ErrMissingLine when fewer records arrive than declared
func (s *Service) Survey(r io.Reader) (domain.Result, error) {
	res := domain.Result{RunID: s.newID()}
	log := s.log.With("run_id", res.RunID.String())

	src := input.NewReader(r)
	fp := crypto.NewFingerprinter()

	header, err := src.ReadHeader()
	if err != nil {
		return res, s.fail(log, src.Line(), err)
	}
	fp.Header(header)
	res.Angle = header.Angle
	res.Declared = header.Count

	w, err := world.New(header.Angle, header.Count)
	if err != nil {
		return res, s.fail(log, src.Line(), err)
	}
	log.Debug("world created", "angle", header.Angle, "capacity", header.Count)

	for {
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, s.fail(log, src.Line(), err)
		}
		if err := w.Add(rec.Position, rec.Height); err != nil {
			return res, s.fail(log, src.Line(), err)
		}
		fp.Record(rec)
		s.recorder.ObserveAdded()
	}
	res.Count = w.Len()

	if res.Count < int(header.Count) {
		return res, s.fail(log, src.Line(), domain.ErrMissingLine)
	}

	merged := w.Merge()
	res.Merged = len(merged)
	res.Total = world.Total(merged)
	res.Digest = fp.Sum()

	s.recorder.ObserveMerged(res.Merged)
	s.recorder.ObserveTotal(res.Total)
	log.Info("survey complete",
		"inhabitants", res.Count,
		"merged", res.Merged,
		"total", res.Total,
		"digest", res.Digest.String(),
	)
	return res, nil
}

// Fingerprint returns the digest of the document in r. Only syntax is
// checked; values need not be in range.
func (s *Service) Fingerprint(r io.Reader) (domain.Digest, error) {
	src := input.NewReader(r)
	fp := crypto.NewFingerprinter()

	header, err := src.ReadHeader()
	if err != nil {
		return "", fmt.Errorf("line %d: %w", src.Line(), err)
	}
	fp.Header(header)
	for {
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			return fp.Sum(), nil
		}
		if err != nil {
			return "", fmt.Errorf("line %d: %w", src.Line(), err)
		}
		fp.Record(rec)
	}
}

// fail records err and annotates it with the line where it occurred.
func (s *Service) fail(log *slog.Logger, line int, err error) error {
	var kind domain.Kind
	if errors.As(err, &kind) {
		s.recorder.ObserveFailure(kind)
	}
	log.Debug("survey stopped", "line", line, "error", err)
	return fmt.Errorf("line %d: %w", line, err)
}

// Compile-time assertion that Service implements domain.SurveyService.
var _ domain.SurveyService = (*Service)(nil)

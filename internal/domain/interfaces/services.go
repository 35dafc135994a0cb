package interfaces

import (
	"io"

	domaintypes "flatland/internal/domain/types"
)

// RecordSource yields the header and records of one input document.
type RecordSource interface {
	ReadHeader() (domaintypes.Header, error)
	// Next returns io.EOF once the input is exhausted.
	Next() (domaintypes.Record, error)
}

// SurveyService runs a full input document through a world.
type SurveyService interface {
	Survey(r io.Reader) (domaintypes.Result, error)
	Fingerprint(r io.Reader) (domaintypes.Digest, error)
}

// Recorder receives counters from a run.
type Recorder interface {
	ObserveAdded()
	ObserveFailure(kind domaintypes.Kind) // once per failed run
	ObserveMerged(n int)
	ObserveTotal(total float64)
}

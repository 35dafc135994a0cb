package domain

import (
	interfaces "flatland/internal/domain/interfaces"
	types "flatland/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Kind   = types.Kind
	Angle  = types.Angle
	Record = types.Record
	Header = types.Header
	Digest = types.Digest
	RunID  = types.RunID
	Result = types.Result
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	RecordSource  = interfaces.RecordSource
	SurveyService = interfaces.SurveyService
	Recorder      = interfaces.Recorder
)

// Error kinds.
const (
	KindIo           = types.KindIo
	KindOutOfRange   = types.KindOutOfRange
	KindMissingValue = types.KindMissingValue
	KindInvalidValue = types.KindInvalidValue
	KindMissingLine  = types.KindMissingLine
)

// Kinds lists every error kind in declaration order.
func Kinds() []Kind { return types.Kinds() }

// Sentinel errors for each kind. Compare with errors.Is.
var (
	ErrIo           error = types.KindIo
	ErrOutOfRange   error = types.KindOutOfRange
	ErrMissingValue error = types.KindMissingValue
	ErrInvalidValue error = types.KindInvalidValue
	ErrMissingLine  error = types.KindMissingLine
)

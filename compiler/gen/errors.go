package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the classification failures. All of them are
// fatal: a single defect anywhere in the schema aborts the whole run
// and no output is produced.
var (
	// ErrMissingTarget indicates a relation pointing at an undeclared model.
	ErrMissingTarget = errors.New("esdlgen: missing relation target")
	// ErrAmbiguousBacklink indicates more than one inverse-relation candidate.
	ErrAmbiguousBacklink = errors.New("esdlgen: ambiguous backlink")
	// ErrCompositeKey indicates a relation materialized by more than one id field.
	ErrCompositeKey = errors.New("esdlgen: composite relation key")
	// ErrUnknownScalar indicates a primitive type absent from the scalar table.
	ErrUnknownScalar = errors.New("esdlgen: unknown scalar type")
	// ErrFunctionType indicates a function/call expression used as a field type.
	ErrFunctionType = errors.New("esdlgen: function type not supported")
)

// MissingTargetError is returned when a relation field's declared type
// names a model that is absent from the normalized schema index.
type MissingTargetError struct {
	Model  string // owning model
	Field  string
	Target string // undeclared model name
}

// Error implements the error interface.
func (e *MissingTargetError) Error() string {
	return fmt.Sprintf("esdlgen: relation field %q on model %q points at undeclared model %q", e.Field, e.Model, e.Target)
}

// Is reports whether the target matches the sentinel error for MissingTargetError.
func (e *MissingTargetError) Is(target error) bool {
	return target == ErrMissingTarget
}

// NewMissingTargetError creates a new MissingTargetError.
func NewMissingTargetError(model, field, target string) *MissingTargetError {
	return &MissingTargetError{Model: model, Field: field, Target: target}
}

// AmbiguousBacklinkError is returned when more than one inverse-relation
// candidate field is found on the target model, so the backlink cannot
// be resolved to a single stored link.
type AmbiguousBacklinkError struct {
	Model      string // model owning the forward field
	Field      string
	Target     string   // model that was scanned for candidates
	Candidates []string // candidate field names on Target
}

// Error implements the error interface.
func (e *AmbiguousBacklinkError) Error() string {
	return fmt.Sprintf(
		"esdlgen: ambiguous backlink for field %q on model %q: model %q has %d inverse candidates (%s)",
		e.Field, e.Model, e.Target, len(e.Candidates), strings.Join(e.Candidates, ", "),
	)
}

// Is reports whether the target matches the sentinel error for AmbiguousBacklinkError.
func (e *AmbiguousBacklinkError) Is(target error) bool {
	return target == ErrAmbiguousBacklink
}

// NewAmbiguousBacklinkError creates a new AmbiguousBacklinkError.
func NewAmbiguousBacklinkError(model, field, target string, candidates []string) *AmbiguousBacklinkError {
	return &AmbiguousBacklinkError{Model: model, Field: field, Target: target, Candidates: candidates}
}

// CompositeKeyError is returned when a relation attribute names more
// than one underlying id field.
type CompositeKeyError struct {
	Model  string
	Field  string
	Fields []string // the id fields named by the relation attribute
}

// Error implements the error interface.
func (e *CompositeKeyError) Error() string {
	return fmt.Sprintf(
		"esdlgen: relation field %q on model %q uses a composite key (%s); single id fields only",
		e.Field, e.Model, strings.Join(e.Fields, ", "),
	)
}

// Is reports whether the target matches the sentinel error for CompositeKeyError.
func (e *CompositeKeyError) Is(target error) bool {
	return target == ErrCompositeKey
}

// NewCompositeKeyError creates a new CompositeKeyError.
func NewCompositeKeyError(model, field string, fields []string) *CompositeKeyError {
	return &CompositeKeyError{Model: model, Field: field, Fields: fields}
}

// UnknownScalarError is returned when a declared primitive type is
// absent from the scalar mapping table.
type UnknownScalarError struct {
	Model string
	Field string
	Type  string
}

// Error implements the error interface.
func (e *UnknownScalarError) Error() string {
	return fmt.Sprintf("esdlgen: field %q on model %q has unknown scalar type %q", e.Field, e.Model, e.Type)
}

// Is reports whether the target matches the sentinel error for UnknownScalarError.
func (e *UnknownScalarError) Is(target error) bool {
	return target == ErrUnknownScalar
}

// NewUnknownScalarError creates a new UnknownScalarError.
func NewUnknownScalarError(model, field, typ string) *UnknownScalarError {
	return &UnknownScalarError{Model: model, Field: field, Type: typ}
}

// FunctionTypeError is returned when a field declares a function/call
// expression as its type instead of a named type.
type FunctionTypeError struct {
	Model string
	Field string
	Func  string // the called function name
}

// Error implements the error interface.
func (e *FunctionTypeError) Error() string {
	return fmt.Sprintf("esdlgen: field %q on model %q declares unsupported function type %s(...)", e.Field, e.Model, e.Func)
}

// Is reports whether the target matches the sentinel error for FunctionTypeError.
func (e *FunctionTypeError) Is(target error) bool {
	return target == ErrFunctionType
}

// NewFunctionTypeError creates a new FunctionTypeError.
func NewFunctionTypeError(model, field, fn string) *FunctionTypeError {
	return &FunctionTypeError{Model: model, Field: field, Func: fn}
}

// IsMissingTargetError reports whether the error is a MissingTargetError.
func IsMissingTargetError(err error) bool {
	var e *MissingTargetError
	return errors.As(err, &e)
}

// IsAmbiguousBacklinkError reports whether the error is an AmbiguousBacklinkError.
func IsAmbiguousBacklinkError(err error) bool {
	var e *AmbiguousBacklinkError
	return errors.As(err, &e)
}

// IsCompositeKeyError reports whether the error is a CompositeKeyError.
func IsCompositeKeyError(err error) bool {
	var e *CompositeKeyError
	return errors.As(err, &e)
}

// IsUnknownScalarError reports whether the error is an UnknownScalarError.
func IsUnknownScalarError(err error) bool {
	var e *UnknownScalarError
	return errors.As(err, &e)
}

// IsFunctionTypeError reports whether the error is a FunctionTypeError.
func IsFunctionTypeError(err error) bool {
	var e *FunctionTypeError
	return errors.As(err, &e)
}

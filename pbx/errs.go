package pbx

import (
	"errors"
	"fmt"

	"github.com/pbx-format/go-pbx/ir"
)

var (
	// ErrField is the common unwrap target for record field failures.
	ErrField = errors.New("field error")
)

// MissingField reports a required field absent from a record.
type MissingField struct {
	Key string
}

func (e *MissingField) Unwrap() error {
	return ErrField
}

func (e *MissingField) Error() string {
	return fmt.Sprintf("missing field %q", e.Key)
}

// TypeMismatch reports a field present with the wrong shape.
type TypeMismatch struct {
	Key  string
	Want ir.Type
	Got  ir.Type
}

func (e *TypeMismatch) Unwrap() error {
	return ErrField
}

func (e *TypeMismatch) Error() string {
	return fmt.Sprintf("field %q: want %s, got %s", e.Key, e.Want, e.Got)
}

// InvalidBoolLiteral reports a boolean-position value that is not
// exactly YES or NO.
type InvalidBoolLiteral struct {
	Text string
}

func (e *InvalidBoolLiteral) Unwrap() error {
	return ErrField
}

func (e *InvalidBoolLiteral) Error() string {
	return fmt.Sprintf("%q is not parseable as boolean", e.Text)
}

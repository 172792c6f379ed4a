package ehdr

import (
	"errors"
	"fmt"
)

var (
	ErrTruncatedInput      = errors.New("truncated ELF header")
	ErrUnsupportedEncoding = errors.New("unsupported ELF data encoding")
	ErrInvalidMagic        = errors.New("invalid ELF magic")
	ErrUnsupportedClass    = errors.New("unsupported ELF class")
)

// TruncatedError reports the field that ran past the end of the input.
type TruncatedError struct {
	Field  string
	Offset int
	Need   int
	Have   int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("%v: %s needs bytes [%d,%d), input has %d",
		ErrTruncatedInput, e.Field, e.Offset, e.Offset+e.Need, e.Have)
}

func (e *TruncatedError) Unwrap() error { return ErrTruncatedInput }

// EncodingError carries the raw EI_DATA byte that could not be used.
type EncodingError struct {
	Code uint8
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%v: %s", ErrUnsupportedEncoding, Data(e.Code))
}

func (e *EncodingError) Unwrap() error { return ErrUnsupportedEncoding }

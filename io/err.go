package io

import (
	"errors"

	"github.com/ezrec/tinker/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrTapeEmpty  = errors.New(f("tape input closed"))
	ErrTapeOutput = errors.New(f("tape output missing"))
)

// ErrTapeMalformed is an input line that is not an unsigned decimal word.
type ErrTapeMalformed string

func (err ErrTapeMalformed) Error() string {
	return f("'%v' is not an unsigned decimal", string(err))
}

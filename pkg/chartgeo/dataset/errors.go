package dataset

import "errors"

// ErrInvalidRange indicates a malformed cell range reference.
var ErrInvalidRange = errors.New("invalid cell range")

// ErrSheetNotFound indicates the requested sheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrUnsupportedInput indicates an input file type the loaders cannot read.
var ErrUnsupportedInput = errors.New("unsupported input format")

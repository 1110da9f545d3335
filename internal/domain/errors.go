package domain

import "errors"

var (
	// ErrTemplate signals a template that cannot be located or parsed.
	ErrTemplate = errors.New("template error")
	// ErrTypeResolution signals an unknown or non-conforming response type.
	ErrTypeResolution = errors.New("response type resolution error")
	// ErrRender signals a store failure while materializing documents for a render.
	ErrRender = errors.New("render error")

	// ErrDocumentNotFound signals a missing document.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrInvalidQuery signals a malformed query request.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrInvalidDocument signals a malformed document payload.
	ErrInvalidDocument = errors.New("invalid document")
	// ErrUnknownWriter signals an unregistered response writer name.
	ErrUnknownWriter = errors.New("unknown response writer")
)

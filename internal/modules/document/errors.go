package document

import "errors"

var (
	ErrDocumentNotFound    = errors.New("document not found")
	ErrNotOwner            = errors.New("you do not own this document")
	ErrNotPending          = errors.New("document is not pending review")
	ErrEmptyFile           = errors.New("file is empty")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrInvalidMimeType     = errors.New("file type is not allowed")
	ErrInvalidDocumentType = errors.New("unknown document type")
	ErrInvalidStatus       = errors.New("review status must be approved or rejected")
	ErrReasonRequired      = errors.New("rejection reason is required")
)

// Package source abstracts where documents come from. The pipeline sees a
// list of handles and a way to get each document's text; it does not care
// whether that is a local directory or an object-store prefix.
package source

import "context"

// Handle identifies one document. Name is the basename used as the record's
// file_name; Path is adapter-specific (filesystem path or object name).
type Handle struct {
	Name string
	Path string
}

// TextSource yields documents for one run. A Text error is a document-level
// fault: the caller skips that document and continues.
type TextSource interface {
	List(ctx context.Context) ([]Handle, error)
	Text(ctx context.Context, h Handle) (string, error)
}

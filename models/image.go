package models

import "io"

// ImageUpload carries an uploaded image file from the transport layer down
// to the storage layer. Size is the client-declared content length; the
// storage layer re-checks the actual byte count while writing.
type ImageUpload struct {
	File     io.Reader
	Filename string
	Size     int64
}

package domain

import "io"

// Upload is one multipart attachment on its way to the media store.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

package media

import (
	"context"
	"io"
)

// File is one inbound upload, already parsed off the request.
type File struct {
	Name   string
	Size   int64
	Reader io.Reader
}

// Uploader stores a profile image with the external media host and returns
// its locator (URL). Implementations must not retry; a transient failure
// fails the whole request.
//
//go:generate mockgen -source=uploader.go -destination=mock/uploader_mock.go -package=mock
type Uploader interface {
	Upload(ctx context.Context, file *File) (string, error)
}

package document

import (
	"context"
	"errors"
	"io"
	"time"
)

// Metadata keys attached to stored objects. Keys are lowercase so they
// survive the round trip through HTTP header canonicalization.
const (
	MetaOriginalFilename = "original-filename"
	MetaDocumentType     = "document-type"
	MetaDescription      = "description"
	MetaUploadDate       = "upload-date"
)

// DefaultDocumentType tags uploads that do not declare a type.
const DefaultDocumentType = "OTHER"

// Descriptor describes a stored object as returned by the listing; the
// backend listing does not carry per-object user metadata.
type Descriptor struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Object is a fetched blob: content stream plus its metadata.
type Object struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
	Metadata    map[string]string
}

// Download pairs the blob stream with the filename recovered from
// metadata for the response.
type Download struct {
	Object   *Object
	Filename string
}

var ErrObjectNotFound = errors.New("object not found")

// Storage is the object store contract for document content.
type Storage interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string, metadata map[string]string) error
	Get(ctx context.Context, key string) (*Object, error)
	List(ctx context.Context) ([]Descriptor, error)
	Remove(ctx context.Context, key string) error
}

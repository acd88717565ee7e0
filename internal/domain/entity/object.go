package entity

import "time"

const (
	StorageClassStandard = "STANDARD"
	ContentTypeUnknown   = "Unknown"
)

// ObjectRecord is one entry of a bucket listing. It is a snapshot: a later
// listing may reflect changes made by other clients.
type ObjectRecord struct {
	Key          string
	Size         int64
	LastModified time.Time
	StorageClass string
}

type ObjectMetadata struct {
	ContentLength int64
	ContentType   string
	LastModified  time.Time
	ETag          string
	StorageClass  string
}

package response

import (
	"time"

	"github.com/marcos-nsantos/bucket-manager/internal/domain/entity"
	"github.com/marcos-nsantos/bucket-manager/internal/pkg/format"
	"github.com/marcos-nsantos/bucket-manager/internal/pkg/pagination"
	"github.com/marcos-nsantos/bucket-manager/internal/usecase/convert"
)

type ObjectResponse struct {
	Key               string    `json:"key"`
	Size              int64     `json:"size"`
	SizeHuman         string    `json:"size_human"`
	LastModified      time.Time `json:"last_modified"`
	LastModifiedHuman string    `json:"last_modified_human"`
	StorageClass      string    `json:"storage_class"`
	IsImage           bool      `json:"is_image"`
}

type ObjectSummary struct {
	Total  int `json:"total"`
	Images int `json:"images"`
	Other  int `json:"other"`
}

type ListObjectsResponse struct {
	Bucket     string           `json:"bucket"`
	Objects    []ObjectResponse `json:"objects"`
	Summary    ObjectSummary    `json:"summary"`
	Pagination *pagination.Info `json:"pagination"`
}

func ObjectFromEntity(r entity.ObjectRecord) ObjectResponse {
	return ObjectResponse{
		Key:               r.Key,
		Size:              r.Size,
		SizeHuman:         format.FileSize(r.Size),
		LastModified:      r.LastModified,
		LastModifiedHuman: format.Timestamp(r.LastModified),
		StorageClass:      r.StorageClass,
		IsImage:           format.IsImageKey(r.Key),
	}
}

// ListObjectsFromEntities renders one page of records. The summary counts
// the whole listing, not only the page.
func ListObjectsFromEntities(bucket string, all, page []entity.ObjectRecord, info *pagination.Info) ListObjectsResponse {
	objects := make([]ObjectResponse, len(page))
	for i, r := range page {
		objects[i] = ObjectFromEntity(r)
	}

	summary := ObjectSummary{Total: len(all)}
	for _, r := range all {
		if format.IsImageKey(r.Key) {
			summary.Images++
		}
	}
	summary.Other = summary.Total - summary.Images

	return ListObjectsResponse{
		Bucket:     bucket,
		Objects:    objects,
		Summary:    summary,
		Pagination: info,
	}
}

type MetadataResponse struct {
	Key                string    `json:"key"`
	ContentLength      int64     `json:"content_length"`
	ContentLengthHuman string    `json:"content_length_human"`
	ContentType        string    `json:"content_type"`
	LastModified       time.Time `json:"last_modified"`
	LastModifiedHuman  string    `json:"last_modified_human"`
	ETag               string    `json:"etag"`
	StorageClass       string    `json:"storage_class"`
}

func MetadataFromEntity(key string, m *entity.ObjectMetadata) MetadataResponse {
	return MetadataResponse{
		Key:                key,
		ContentLength:      m.ContentLength,
		ContentLengthHuman: format.FileSize(m.ContentLength),
		ContentType:        m.ContentType,
		LastModified:       m.LastModified,
		LastModifiedHuman:  format.Timestamp(m.LastModified),
		ETag:               m.ETag,
		StorageClass:       m.StorageClass,
	}
}

type UploadResponse struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

type DeleteFailureResponse struct {
	Key   string `json:"key"`
	Error string `json:"error"`
}

type DeleteReportResponse struct {
	Requested int                     `json:"requested"`
	Deleted   []string                `json:"deleted"`
	Failures  []DeleteFailureResponse `json:"failures"`
}

func DeleteReportFromEntity(r *entity.DeleteReport) DeleteReportResponse {
	failures := make([]DeleteFailureResponse, len(r.Failures))
	for i, f := range r.Failures {
		failures[i] = DeleteFailureResponse{Key: f.Key, Error: f.Error}
	}
	return DeleteReportResponse{
		Requested: r.Requested,
		Deleted:   r.Deleted,
		Failures:  failures,
	}
}

type RenditionResponse struct {
	Device   string `json:"device"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Key      string `json:"key"`
	Location string `json:"location"`
	Size     int    `json:"size"`
}

type ConvertResponse struct {
	Source     string              `json:"source"`
	Renditions []RenditionResponse `json:"renditions"`
}

func ConvertFromRenditions(source string, rs []convert.Rendition) ConvertResponse {
	out := make([]RenditionResponse, len(rs))
	for i, r := range rs {
		out[i] = RenditionResponse(r)
	}
	return ConvertResponse{Source: source, Renditions: out}
}

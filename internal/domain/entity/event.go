package entity

import "net/http"

// ObjectEvent names the object whose creation triggered a conversion.
type ObjectEvent struct {
	Bucket string
	Key    string
}

type EventResult struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

func (r EventResult) OK() bool {
	return r.StatusCode == http.StatusOK
}

package domain

import "errors"

var (
	ErrAuthentication  = errors.New("authentication failed")
	ErrNotConnected    = errors.New("storage not connected")
	ErrList            = errors.New("listing objects failed")
	ErrUpload          = errors.New("upload failed")
	ErrDownload        = errors.New("download failed")
	ErrDelete          = errors.New("delete failed")
	ErrMetadata        = errors.New("fetching metadata failed")
	ErrNotFound        = errors.New("object not found")
	ErrDecode          = errors.New("decoding image failed")
	ErrEncode          = errors.New("encoding image failed")
	ErrDeletionPartial = errors.New("some objects were not deleted")
	ErrInvalidKey      = errors.New("invalid object key")
	ErrSessionNotFound = errors.New("session not found")
	ErrTokenInvalid    = errors.New("token invalid")
	ErrTokenExpired    = errors.New("token expired")
)

package request

type ListObjectsRequest struct {
	Prefix  string `form:"prefix"`
	All     bool   `form:"all"`
	Page    int    `form:"page" binding:"omitempty,min=1"`
	PerPage int    `form:"per_page" binding:"omitempty,min=1,max=1000"`
}

type ObjectKeyRequest struct {
	Key string `form:"key" binding:"required"`
}

type PreviewRequest struct {
	Key  string `form:"key" binding:"required"`
	Size int    `form:"size" binding:"omitempty,min=16,max=1024"`
}

type DeleteObjectsRequest struct {
	Keys []string `json:"keys" binding:"required,min=1,dive,required"`
}

type ConvertRequest struct {
	Key string `json:"key" binding:"required"`
}

package request

type ConnectRequest struct {
	AccessKeyID     string `json:"access_key"`
	SecretAccessKey string `json:"secret_key"`
	Region          string `json:"region" binding:"omitempty,max=32"`
}

package structs

type UploadResult struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

type DestroyRequest struct {
	PublicID string `json:"publicId"`
}

type DestroyResult struct {
	Skipped bool           `json:"skipped"`
	Result  map[string]any `json:"result,omitempty"`
}

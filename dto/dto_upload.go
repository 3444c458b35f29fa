package dto

// ===== Response =====

// UploadResponse echoes where the object landed. The kiosk and CMS reference
// media by these two fields everywhere.
type UploadResponse struct {
	S3Key string `json:"s3Key" example:"videos/1714650000000-intro.mp4"`
	S3URL string `json:"s3Url" example:"https://cdn.example.com/videos/1714650000000-intro.mp4"`
}

package media

// MaxFilenameLength caps user-supplied filenames
const MaxFilenameLength = 255

// AllowedContentTypes lists what the admin may upload: images for post
// covers plus a PDF for the downloadable resume.
var AllowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"application/pdf": true,
}

// UploadURLRequest is the request payload for a presigned upload
type UploadURLRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

// UploadURLResponse carries the presigned upload URL and the key the
// client should reference afterwards
type UploadURLResponse struct {
	UploadURL string `json:"upload_url"`
	FileKey   string `json:"file_key"`
	ExpiresAt int64  `json:"expires_at"`
}

// DownloadURLRequest is the request payload for a presigned download
type DownloadURLRequest struct {
	FileKey string `json:"file_key" binding:"required"`
}

// DownloadURLResponse carries the presigned download URL
type DownloadURLResponse struct {
	DownloadURL string `json:"download_url"`
	ExpiresAt   int64  `json:"expires_at"`
}

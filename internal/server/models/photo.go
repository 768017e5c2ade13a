package models

// Photo describes one image of a surprise. The bytes live in object
// storage under StorageKey.
type Photo struct {
	ID          string
	SurpriseID  string
	StorageKey  string
	ContentType string
	Size        int64
	OrderIndex  int
	// Uploaded is set once the client reports a successful PUT.
	Uploaded bool
}

// PhotoUploadTask instructs the client to upload a photo using a presigned URL.
type PhotoUploadTask struct {
	PhotoID    string
	OrderIndex int
	// URL is a temporary presigned HTTP URL for the client to PUT the image.
	URL string
}

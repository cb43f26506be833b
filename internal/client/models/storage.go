package models

// StorageStatus tells where the backend keeps uploaded files. Fallback is
// set when the status could not be fetched and local storage is assumed.
type StorageStatus struct {
	GoogleDriveEnabled bool `json:"googleDriveEnabled"`
	Fallback           bool `json:"-"`
}

func (s StorageStatus) Describe() string {
	switch {
	case s.GoogleDriveEnabled:
		return "Files will be stored in Google Drive"
	case s.Fallback:
		return "Files will be stored locally (fallback)"
	default:
		return "Files will be stored locally"
	}
}

package models

import (
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

var fileTypes = map[string]string{
	"pdf":  "PDF",
	"doc":  "DOC",
	"docx": "DOC",
	"ppt":  "PPT",
	"pptx": "PPT",
	"txt":  "TEXT",
	"jpg":  "IMAGE",
	"jpeg": "IMAGE",
	"png":  "IMAGE",
	"gif":  "IMAGE",
	"mp4":  "VIDEO",
	"mp3":  "AUDIO",
	"zip":  "ZIP",
	"rar":  "ZIP",
}

// DetectType maps a file name's extension to the backend's type label.
// Unknown extensions yield "FILE".
func DetectType(fileName string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
	if t, ok := fileTypes[ext]; ok {
		return t
	}
	return "FILE"
}

// FormatSize renders a byte count using binary units ("1.5 MiB").
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 B"
	}
	return humanize.IBytes(uint64(bytes))
}

// UploadDescription builds the description sent with an upload.
func UploadDescription(title, fileName string) string {
	return title + " - " + fileName
}

// internal/importer/detector.go
package importer

import "bytes"

type FileType string

const (
	FileTypeFIT     FileType = "fit"
	FileTypeTCX     FileType = "tcx"
	FileTypeGPX     FileType = "gpx"
	FileTypeUnknown FileType = "unknown"
)

// DetectFileType sniffs the activity file format from its leading bytes.
func DetectFileType(data []byte) FileType {
	// FIT signature sits at offset 8 of the header
	if len(data) >= 12 && bytes.Equal(data[8:12], []byte(".FIT")) {
		return FileTypeFIT
	}

	if bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("<?xml")) || bytes.HasPrefix(data, []byte("<")) {
		head := data
		if len(head) > 512 {
			head = head[:512]
		}
		if bytes.Contains(head, []byte("<gpx")) || bytes.Contains(head, []byte("topografix.com/GPX")) {
			return FileTypeGPX
		}
		if bytes.Contains(head, []byte("TrainingCenterDatabase")) {
			return FileTypeTCX
		}
	}

	return FileTypeUnknown
}

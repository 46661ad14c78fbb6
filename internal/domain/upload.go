package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SupportedUploadExtensions are the file extensions accepted for dashboard
// generation from uploaded data.
var SupportedUploadExtensions = []string{".csv", ".json", ".txt", ".md"}

// ValidateUploadFilename rejects any filename whose extension is not one of
// SupportedUploadExtensions. The comparison ignores case.
func ValidateUploadFilename(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range SupportedUploadExtensions {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFileType, filepath.Base(name))
}

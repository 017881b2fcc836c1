// AngelaMos | 2026
// documents.go

package sponsor

import (
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/carterperez-dev/templates/sponsor-backend/internal/core"
)

var (
	imageExtensions = map[string]string{
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".png":  "image/png",
		".webp": "image/webp",
		".gif":  "image/gif",
	}
	documentExtensions = map[string]string{
		".pdf":  "application/pdf",
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".png":  "image/png",
	}
)

// AllowedExtensions maps each document kind to the file extensions it
// accepts and the content type objects are stored with.
var AllowedExtensions = map[DocumentKind]map[string]string{
	DocumentLogo:      imageExtensions,
	DocumentAgreement: documentExtensions,
	DocumentReceipt:   documentExtensions,
}

// DocumentContentType checks an upload against the kind's allow list and
// returns the content type to store it under. A declared content type must
// agree with the extension.
func DocumentContentType(kind DocumentKind, filename, declared string) (string, error) {
	allowed, ok := AllowedExtensions[kind]
	if !ok {
		return "", fmt.Errorf("document kind %q: %w", kind, core.ErrInvalidInput)
	}

	ext := strings.ToLower(path.Ext(path.Base(filename)))
	contentType, ok := allowed[ext]
	if !ok {
		return "", fmt.Errorf("%s file type %q not allowed: %w", kind, ext, core.ErrInvalidInput)
	}

	if declared == "" {
		return contentType, nil
	}

	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil {
		return "", fmt.Errorf("content type %q: %w", declared, core.ErrInvalidInput)
	}
	if mediaType == "image/jpg" {
		mediaType = "image/jpeg"
	}
	if mediaType != contentType {
		return "", fmt.Errorf(
			"content type %s does not match %s: %w",
			mediaType, ext, core.ErrInvalidInput,
		)
	}

	return contentType, nil
}

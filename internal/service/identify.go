package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/astrasemi/fabassist/internal/prompt"
	"github.com/astrasemi/fabassist/pkg/models"
)

// MaxImageBytes caps uploaded image size.
const MaxImageBytes = 5 << 20

var imageMediaTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// Identify explains an uploaded equipment or wafer image for a trainee.
// The image bytes are validated and base64-encoded here, at the prompt
// boundary; nothing is written to disk.
func (s *AnalysisService) Identify(ctx context.Context, filename string, image []byte) (models.AnalysisResult, error) {
	if len(image) == 0 {
		return models.AnalysisResult{}, ErrMissingFile
	}
	if len(image) > MaxImageBytes {
		return models.AnalysisResult{}, fmt.Errorf("%w: %d bytes (limit %d)", ErrImageTooLarge, len(image), MaxImageBytes)
	}

	mediaType, ok := imageMediaTypes[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		return models.AnalysisResult{}, fmt.Errorf("%w: %q is not a supported image", ErrInvalidFileType, filename)
	}

	payload := models.ImagePayload{
		MediaType:  mediaType,
		Base64Data: base64.StdEncoding.EncodeToString(image),
	}
	return s.complete(ctx, prompt.Identify(payload)), nil
}

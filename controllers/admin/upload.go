package adminController

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Shown when an upload fails or no image is sent. Product creation never
// fails on the image: a product with a placeholder still sells.
const placeholderImage = "/images/placeholder-product.jpg"

// saveImage stores the uploaded file under the configured upload dir and
// returns its public URL. Any failure degrades to the placeholder.
func saveImage(c *gin.Context, file *multipart.FileHeader, uploadDir string) string {
	if file == nil {
		return placeholderImage
	}

	filename := strings.ReplaceAll(file.Filename, " ", "_")
	saveDir := filepath.Join(uploadDir, "products")
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		log.Warn().Err(err).Msg("failed to create upload folder, using placeholder")
		return placeholderImage
	}
	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		log.Warn().Err(err).Str("filename", filename).Msg("failed to save image, using placeholder")
		return placeholderImage
	}
	return "/uploads/products/" + filename
}

package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const uploadPublicPath = "/uploads/produits"

func uploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads/produits"
}

func sanitizeExtension(ext string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(ext) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// UploadProductImage saves an image locally and returns the public URL to
// store on the product. Form fields: image (file), productId and type
// (optional, only used in the filename).
func UploadProductImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Aucun fichier reçu (champ 'image')."})
			return
		}
		contentType := fileHeader.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Le fichier doit être une image."})
			return
		}

		if err := os.MkdirAll(uploadDir(), os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		ext := ""
		if raw := filepath.Ext(fileHeader.Filename); raw != "" {
			if safe := sanitizeExtension(raw); safe != "" {
				ext = "." + safe
			}
		}

		parts := []string{}
		if productID := c.PostForm("productId"); productID != "" {
			parts = append(parts, productID)
		}
		if imageType := c.PostForm("type"); imageType != "" {
			parts = append(parts, imageType)
		}
		parts = append(parts, uuid.NewString())
		filename := strings.Join(parts, "-") + ext

		savePath := filepath.Join(uploadDir(), filename)
		if err := c.SaveUploadedFile(fileHeader, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"url":      fmt.Sprintf("%s/%s", uploadPublicPath, filename),
			"filename": filename,
		})
	}
}

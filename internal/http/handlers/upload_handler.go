package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"

	"siproa/internal/auth"
	"siproa/internal/storage"
)

// The frontend submits the evidence file under this multipart field name.
const uploadField = "archivo"

var whitespace = regexp.MustCompile(`\s+`)

// UploadHandler stores a single multipart file in the bucket under a
// per-user, timestamped key and returns the key plus a public URL.
func UploadHandler(up storage.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := auth.ClaimsFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
			return
		}

		header, err := c.FormFile(uploadField)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "no file provided"})
			return
		}

		file, err := header.Open()
		if err != nil {
			slog.Error("failed to open uploaded file", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "could not store file"})
			return
		}
		defer file.Close()

		key := objectKey(claims.UserID, header.Filename, time.Now())
		if err := up.Save(c.Request.Context(), key, header.Header.Get("Content-Type"), file); err != nil {
			slog.Error("bucket upload failed", "key", key, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "could not store file"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"path": key, "url": up.PublicURL(key)})
	}
}

// objectKey builds "user_<id>/<epoch millis>_<name>" with whitespace runs in
// the original filename collapsed to underscores.
func objectKey(userID int64, filename string, now time.Time) string {
	name := whitespace.ReplaceAllString(filename, "_")
	return fmt.Sprintf("user_%d/%d_%s", userID, now.UnixMilli(), name)
}

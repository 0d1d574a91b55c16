package server

import (
	"errors"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"fitcheck-backend/internal/shared/server/respond"
	"fitcheck-backend/internal/shared/storage/object"
	localstore "fitcheck-backend/internal/shared/storage/object/local"
	"fitcheck-backend/internal/shared/telemetry"
)

// filesHandler streams stored objects under FilesPath.
func filesHandler(store object.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimPrefix(c.Param("key"), "/")
		rc, err := store.Open(c.Request.Context(), key)
		if err != nil {
			if errors.Is(err, object.ErrInvalidKey) || errors.Is(err, fs.ErrNotExist) {
				respond.Error(c, http.StatusNotFound, "not_found", "file not found", nil)
				return
			}
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to open file", nil)
			return
		}
		defer rc.Close()

		c.Header("Content-Type", localstore.ContentType(key))
		if rs, ok := rc.(io.ReadSeeker); ok {
			http.ServeContent(c.Writer, c.Request, key, fileModTime(rc), rs)
			return
		}
		c.Status(http.StatusOK)
		if _, err := io.Copy(c.Writer, rc); err != nil {
			telemetry.Warn("files.copy_failed", map[string]any{"key": key, "error": err})
		}
	}
}

func fileModTime(rc io.ReadCloser) time.Time {
	if f, ok := rc.(interface{ Stat() (fs.FileInfo, error) }); ok {
		if info, err := f.Stat(); err == nil {
			return info.ModTime()
		}
	}
	return time.Time{}
}

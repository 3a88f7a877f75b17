package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dilvertex/pipesite-backend/internal/application"
	"github.com/dilvertex/pipesite-backend/internal/domain/repository"
	"github.com/dilvertex/pipesite-backend/internal/storage"
	"github.com/dilvertex/pipesite-backend/pkg/apperrors"
	"github.com/dilvertex/pipesite-backend/pkg/response"
)

// uploadFromForm extracts the named multipart file, if present. A missing
// file part (or a non-multipart body) is not an error: file attachment is
// optional for most variants. The returned closer must be closed after the
// upload has been consumed.
func uploadFromForm(c *gin.Context, field string) (*storage.Upload, io.Closer, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	return &storage.Upload{
		Reader:      f,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	}, f, nil
}

// patchFromForm collects only the form fields actually present in the
// request, preserving merge semantics: an absent field never overwrites the
// stored value.
func patchFromForm(c *gin.Context, keys ...string) map[string]any {
	patch := map[string]any{}
	for _, k := range keys {
		if v, ok := c.GetPostForm(k); ok {
			patch[k] = v
		}
	}
	return patch
}

// patchFromJSON is the JSON-body counterpart of patchFromForm. Unknown keys
// are discarded so a client cannot graft arbitrary fields onto a document.
func patchFromJSON(c *gin.Context, keys ...string) (map[string]any, error) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, err
	}
	patch := map[string]any{}
	for _, k := range keys {
		if v, ok := body[k]; ok {
			patch[k] = v
		}
	}
	return patch, nil
}

// writeError maps application failures onto the response taxonomy: missing
// records to 404, credential failures to 401, consumed tokens to 400 and
// everything else to a generic 500 with detail logged, never returned.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, application.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, "not found", nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, application.ErrInvalidOrExpired):
		response.Error[any](c, http.StatusBadRequest, "invalid or expired token", nil)
	case errors.Is(err, application.ErrUsernameTaken), errors.Is(err, application.ErrEmailTaken):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	default:
		var ae *apperrors.AppError
		if errors.As(err, &ae) {
			if logger != nil {
				logger.WithError(err).Error("request failed")
			}
			response.Error[any](c, ae.HTTPCode, ae.Message, ae.Code)
			return
		}
		if logger != nil {
			logger.WithError(err).Error("request failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	}
}

func clientIP(c *gin.Context) string {
	if ip := c.GetString("real_ip"); ip != "" {
		return ip
	}
	return c.ClientIP()
}

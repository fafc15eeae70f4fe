// Package api wires the HTTP surface: public content endpoints, student and
// faculty account flows, the blog APIs and the admin back office.
package api

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/config"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/mailer"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/services"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/storage"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/store"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/utils"
)

// APIHandler holds all dependencies for API handlers.
type APIHandler struct {
	store          store.Store
	authService    services.AuthService
	blogService    services.BlogService
	contentService services.ContentService
	mail           mailer.Mailer
	uploads        storage.Uploader
	cfg            *config.Config
}

// NewAPIHandler creates a new APIHandler with necessary dependencies.
func NewAPIHandler(
	st store.Store,
	authService services.AuthService,
	blogService services.BlogService,
	contentService services.ContentService,
	mail mailer.Mailer,
	uploads storage.Uploader,
	cfg *config.Config,
) *APIHandler {
	return &APIHandler{
		store:          st,
		authService:    authService,
		blogService:    blogService,
		contentService: contentService,
		mail:           mail,
		uploads:        uploads,
		cfg:            cfg,
	}
}

func statusForKind(kind services.Kind) int {
	switch kind {
	case services.KindValidation:
		return http.StatusBadRequest
	case services.KindAuthorization:
		return http.StatusUnauthorized
	case services.KindForbidden:
		return http.StatusForbidden
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError maps a workflow error onto an HTTP status and the standard
// error envelope.
func (h *APIHandler) respondError(c *gin.Context, err error) {
	var we *services.Error
	if errors.As(err, &we) {
		utils.SendJSONError(c, statusForKind(we.Kind), we.Message, we.Err)
		return
	}
	utils.SendJSONError(c, http.StatusInternalServerError, "", err)
}

// saveUpload stores an optional multipart file and returns its public path;
// an absent file yields an empty path.
func (h *APIHandler) saveUpload(c *gin.Context, field string) (string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", err
	}
	return h.saveUploadHeader(c, header)
}

func (h *APIHandler) saveUploadHeader(c *gin.Context, header *multipart.FileHeader) (string, error) {
	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	path, err := h.uploads.Save(c.Request.Context(), header.Filename, f)
	if err != nil {
		return "", err
	}
	log.Printf("INFO: [API] Stored upload %s at %s", header.Filename, path)
	return path, nil
}

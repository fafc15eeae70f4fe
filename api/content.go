package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/models"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/services"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/utils"
)

// NotificationsHandler returns displayable announcements; ?board=ticker or
// ?board=board narrows to one surface.
func (h *APIHandler) NotificationsHandler(c *gin.Context) {
	views, err := h.contentService.ActiveNotifications(c.Request.Context(), models.Board(c.Query("board")))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GalleryHandler returns gallery items, optionally filtered by exact
// category.
func (h *APIHandler) GalleryHandler(c *gin.Context) {
	views, err := h.contentService.GalleryList(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GalleryPageHandler returns the bucketed sections of the gallery page.
func (h *APIHandler) GalleryPageHandler(c *gin.Context) {
	page, err := h.contentService.GalleryPage(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// EventsHandler returns events split into upcoming and past.
func (h *APIHandler) EventsHandler(c *gin.Context) {
	upcoming, past, err := h.contentService.SplitEvents(c.Request.Context(), time.Now())
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "", gin.H{"upcoming": upcoming, "past": past})
}

// ResearchHandler returns published papers with display URLs resolved.
func (h *APIHandler) ResearchHandler(c *gin.Context) {
	views, err := h.contentService.ResearchList(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// FacultyListHandler returns the public faculty directory.
func (h *APIHandler) FacultyListHandler(c *gin.Context) {
	faculty, err := h.store.ListFaculty(c.Request.Context())
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	// Password hashes and inactive entries stay out of the directory.
	public := make([]models.Faculty, 0, len(faculty))
	for _, f := range faculty {
		if !models.ActiveOrMissing(f.IsActive) {
			continue
		}
		f.PasswordHash = ""
		public = append(public, f)
	}
	c.JSON(http.StatusOK, public)
}

// CSAHandler returns the sitting committee and the past-committee archive.
func (h *APIHandler) CSAHandler(c *gin.Context) {
	members, err := h.contentService.CurrentCSAMembers(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	past, err := h.store.ListPastCSA(c.Request.Context())
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "", gin.H{"members": members, "past": past})
}

// CurriculumHandler returns the syllabus PDFs.
func (h *APIHandler) CurriculumHandler(c *gin.Context) {
	items, err := h.store.ListCurriculum(c.Request.Context())
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// AlumniHandler returns alumni testimonials.
func (h *APIHandler) AlumniHandler(c *gin.Context) {
	items, err := h.store.ListAlumni(c.Request.Context())
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactHandler accepts a public contact-form submission.
func (h *APIHandler) ContactHandler(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request body.", err)
		return
	}
	err := h.contentService.SubmitContact(c.Request.Context(), services.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "Message sent successfully.", nil)
}

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/models"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/store"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/utils"
)

func nowISO() string { return time.Now().UTC().Format(time.RFC3339) }

// DashboardHandler returns the admin landing-page data.
func (h *APIHandler) DashboardHandler(c *gin.Context) {
	summary, err := h.contentService.Dashboard(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ---- Students ----

// AdminListStudentsHandler lists all student accounts, hashes stripped.
func (h *APIHandler) AdminListStudentsHandler(c *gin.Context) {
	students, err := h.store.ListStudents(c.Request.Context())
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	for i := range students {
		students[i].PasswordHash = ""
		students[i].OTPCode = nil
	}
	c.JSON(http.StatusOK, students)
}

// ToggleStudentHandler flips a student account's active flag.
func (h *APIHandler) ToggleStudentHandler(c *gin.Context) {
	active, err := h.contentService.ToggleStudentActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "", gin.H{"is_active": active})
}

// DeleteStudentHandler removes a student account.
func (h *APIHandler) DeleteStudentHandler(c *gin.Context) {
	if err := h.store.DeleteStudent(c.Request.Context(), c.Param("id")); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "Student deleted.", nil)
}

// ---- Faculty ----

// AdminAddFacultyHandler creates a faculty profile from a multipart form
// with optional photo and resume uploads. The account has no password until
// the member's first login sets one.
func (h *APIHandler) AdminAddFacultyHandler(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	if name == "" || email == "" {
		utils.SendJSONError(c, http.StatusBadRequest, "Name and email are required.", nil)
		return
	}
	photo, err := h.saveUpload(c, "photo")
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	resume, err := h.saveUpload(c, "resume")
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	order, _ := strconv.Atoi(c.PostForm("order"))
	fac := &models.Faculty{
		ID:             uuid.New().String(),
		Name:           name,
		Email:          email,
		Designation:    c.PostForm("designation"),
		Specialization: c.PostForm("specialization"),
		Experience:     c.PostForm("experience"),
		Phone:          c.PostForm("phone"),
		Photo:          photo,
		Resume:         resume,
		Order:          order,
		IsActive:       models.BoolPtr(true),
		CreatedAt:      nowISO(),
	}
	if err := h.store.AddFaculty(c.Request.Context(), fac); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusCreated, "Faculty added.", gin.H{"id": fac.ID})
}

// AdminUpdateFacultyHandler applies a field change set to a faculty profile.
func (h *APIHandler) AdminUpdateFacultyHandler(c *gin.Context) {
	var changes store.Changes
	if err := c.ShouldBindJSON(&changes); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request body.", err)
		return
	}
	// Credentials change through the login flows, not this endpoint.
	delete(changes, "password_hash")
	delete(changes, "id")
	if err := h.store.UpdateFaculty(c.Request.Context(), c.Param("id"), changes); err != nil {
		if err == store.ErrNotFound {
			utils.SendJSONError(c, http.StatusNotFound, "Faculty not found.", nil)
			return
		}
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "Faculty updated.", nil)
}

// AdminDeleteFacultyHandler removes a faculty profile.
func (h *APIHandler) AdminDeleteFacultyHandler(c *gin.Context) {
	if err := h.store.DeleteFaculty(c.Request.Context(), c.Param("id")); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "Faculty deleted.", nil)
}

// ---- Events ----

// AdminAddEventHandler creates an event from a multipart form with an
// optional image.
func (h *APIHandler) AdminAddEventHandler(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		utils.SendJSONError(c, http.StatusBadRequest, "Title is required.", nil)
		return
	}
	image, err := h.saveUpload(c, "image")
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	order, _ := strconv.Atoi(c.PostForm("order"))
	event := &models.Event{
		ID:          uuid.New().String(),
		Title:       title,
		Date:        c.PostForm("date"),
		Location:    c.PostForm("location"),
		Description: c.PostForm("description"),
		Image:       image,
		Order:       order,
	}
	if err := h.store.AddEvent(c.Request.Context(), event); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusCreated, "Event added.", gin.H{"id": event.ID})
}

// AdminUpdateEventHandler applies a field change set to an event.
func (h *APIHandler) AdminUpdateEventHandler(c *gin.Context) {
	var changes store.Changes
	if err := c.ShouldBindJSON(&changes); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request body.", err)
		return
	}
	delete(changes, "id")
	if err := h.store.UpdateEvent(c.Request.Context(), c.Param("id"), changes); err != nil {
		if err == store.ErrNotFound {
			utils.SendJSONError(c, http.StatusNotFound, "Event not found.", nil)
			return
		}
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "Event updated.", nil)
}

// AdminDeleteEventHandler removes an event.
func (h *APIHandler) AdminDeleteEventHandler(c *gin.Context) {
	if err := h.store.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "Event deleted.", nil)
}

// ---- Gallery ----

// AdminAddGalleryHandler stores a gallery image upload.
func (h *APIHandler) AdminAddGalleryHandler(c *gin.Context) {
	image, err := h.saveUpload(c, "image")
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	if image == "" {
		utils.SendJSONError(c, http.StatusBadRequest, "Image file is required.", nil)
		return
	}
	item := &models.GalleryItem{
		ID:          uuid.New().String(),
		Title:       c.PostForm("title"),
		Category:    c.PostForm("category"),
		Description: c.PostForm("description"),
		Image:       image,
		Date:        nowISO(),
	}
	if err := h.store.AddGalleryItem(c.Request.Context(), item); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusCreated, "Gallery item added.", gin.H{"id": item.ID})
}

// AdminDeleteGalleryHandler removes a gallery item.
func (h *APIHandler) AdminDeleteGalleryHandler(c *gin.Context) {
	if err := h.store.DeleteGalleryItem(c.Request.Context(), c.Param("id")); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "Gallery item deleted.", nil)
}

// ---- Research ----

// AdminAddResearchHandler creates a research listing with an optional PDF
// upload and/or external link.
func (h *APIHandler) AdminAddResearchHandler(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		utils.SendJSONError(c, http.StatusBadRequest, "Title is required.", nil)
		return
	}
	pdfPath, err := h.saveUpload(c, "pdf")
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	paper := &models.ResearchPaper{
		ID:          uuid.New().String(),
		Title:       title,
		Author:      c.PostForm("author"),
		Category:    c.PostForm("category"),
		Description: c.PostForm("description"),
		Date:        c.PostForm("date"),
		PDFPath:     pdfPath,
		PDFLink:     c.PostForm("pdf_link"),
	}
	if err := h.store.AddResearch(c.Request.Context(), paper); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusCreated, "Research paper added.", gin.H{"id": paper.ID})
}

// AdminDeleteResearchHandler removes a research listing.
func (h *APIHandler) AdminDeleteResearchHandler(c *gin.Context) {
	if err := h.store.DeleteResearch(c.Request.Context(), c.Param("id")); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "Research paper deleted.", nil)
}

// ---- Notifications ----

// AdminAddNotificationHandler creates an announcement with an optional
// attached file.
func (h *APIHandler) AdminAddNotificationHandler(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		utils.SendJSONError(c, http.StatusBadRequest, "Title is required.", nil)
		return
	}
	filePath, err := h.saveUpload(c, "file")
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	board := models.Board(c.PostForm("board"))
	if board == "" {
		board = models.BoardBoth
	}
	n := &models.Notification{
		ID:        uuid.New().String(),
		Title:     title,
		Message:   c.PostForm("message"),
		Category:  c.PostForm("category"),
		Board:     board,
		Date:      c.PostForm("date"),
		LinkURL:   c.PostForm("link_url"),
		FilePath:  filePath,
		IsActive:  models.BoolPtr(true),
		CreatedAt: nowISO(),
	}
	if err := h.store.AddNotification(c.Request.Context(), n); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusCreated, "Notification added.", gin.H{"id": n.ID})
}

// AdminToggleNotificationHandler flips an announcement's active flag.
func (h *APIHandler) AdminToggleNotificationHandler(c *gin.Context) {
	active, err := h.contentService.ToggleNotification(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "", gin.H{"is_active": active})
}

// AdminDeleteNotificationHandler removes an announcement.
func (h *APIHandler) AdminDeleteNotificationHandler(c *gin.Context) {
	if err := h.store.DeleteNotification(c.Request.Context(), c.Param("id")); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "Notification deleted.", nil)
}

// ---- Contacts ----

// AdminListContactsHandler lists contact-form messages.
func (h *APIHandler) AdminListContactsHandler(c *gin.Context) {
	contacts, err := h.store.ListContacts(c.Request.Context())
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// AdminMarkContactReadHandler marks a contact message read.
func (h *APIHandler) AdminMarkContactReadHandler(c *gin.Context) {
	if err := h.store.UpdateContact(c.Request.Context(), c.Param("id"), store.Changes{"read": true}); err != nil {
		if err == store.ErrNotFound {
			utils.SendJSONError(c, http.StatusNotFound, "Contact message not found.", nil)
			return
		}
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "Marked as read.", nil)
}

// AdminDeleteContactHandler removes a contact message.
func (h *APIHandler) AdminDeleteContactHandler(c *gin.Context) {
	if err := h.store.DeleteContact(c.Request.Context(), c.Param("id")); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "Contact deleted.", nil)
}

// ---- CSA ----

// AdminAddCSAMemberHandler adds a committee member.
func (h *APIHandler) AdminAddCSAMemberHandler(c *gin.Context) {
	var member models.CSAMember
	if err := c.ShouldBindJSON(&member); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request body.", err)
		return
	}
	if member.Name == "" {
		utils.SendJSONError(c, http.StatusBadRequest, "Name is required.", nil)
		return
	}
	member.ID = uuid.New().String()
	if member.IsCurrent == nil {
		member.IsCurrent = models.BoolPtr(true)
	}
	if err := h.store.AddCSAMember(c.Request.Context(), &member); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusCreated, "Member added.", gin.H{"id": member.ID})
}

// AdminUpdateCSAMemberHandler applies a field change set to a member.
func (h *APIHandler) AdminUpdateCSAMemberHandler(c *gin.Context) {
	var changes store.Changes
	if err := c.ShouldBindJSON(&changes); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request body.", err)
		return
	}
	delete(changes, "id")
	if err := h.store.UpdateCSAMember(c.Request.Context(), c.Param("id"), changes); err != nil {
		if err == store.ErrNotFound {
			utils.SendJSONError(c, http.StatusNotFound, "Member not found.", nil)
			return
		}
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "Member updated.", nil)
}

// AdminDeleteCSAMemberHandler removes a committee member.
func (h *APIHandler) AdminDeleteCSAMemberHandler(c *gin.Context) {
	if err := h.store.DeleteCSAMember(c.Request.Context(), c.Param("id")); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "Member deleted.", nil)
}

// AdminAddPastCSAHandler archives a past committee document (PDF upload).
func (h *APIHandler) AdminAddPastCSAHandler(c *gin.Context) {
	year := c.PostForm("year")
	if year == "" {
		utils.SendJSONError(c, http.StatusBadRequest, "Year is required.", nil)
		return
	}
	pdfPath, err := h.saveUpload(c, "pdf")
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	entry := &models.PastCSA{
		ID:        uuid.New().String(),
		Year:      year,
		Title:     c.PostForm("title"),
		PDFPath:   pdfPath,
		CreatedAt: nowISO(),
	}
	if err := h.store.AddPastCSA(c.Request.Context(), entry); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusCreated, "Past committee archived.", gin.H{"id": entry.ID})
}

// AdminDeletePastCSAHandler removes an archived committee document.
func (h *APIHandler) AdminDeletePastCSAHandler(c *gin.Context) {
	if err := h.store.DeletePastCSA(c.Request.Context(), c.Param("id")); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "Past committee deleted.", nil)
}

// ---- Curriculum ----

// AdminUploadCurriculumHandler stores a syllabus PDF under its (degree,
// year) key, replacing any previous upload.
func (h *APIHandler) AdminUploadCurriculumHandler(c *gin.Context) {
	pdfURL, err := h.saveUpload(c, "pdf")
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	if pdfURL == "" {
		pdfURL = c.PostForm("pdf_url")
	}
	err = h.contentService.UploadCurriculum(c.Request.Context(), c.PostForm("degree"), c.PostForm("year"), pdfURL)
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "Curriculum uploaded.", nil)
}

// AdminDeleteCurriculumHandler removes the syllabus for one (degree, year).
func (h *APIHandler) AdminDeleteCurriculumHandler(c *gin.Context) {
	if err := h.store.DeleteCurriculum(c.Request.Context(), c.Query("degree"), c.Query("year")); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "Curriculum deleted.", nil)
}

// ---- Alumni ----

// AdminAddAlumniHandler adds an alumni testimonial with an optional photo.
func (h *APIHandler) AdminAddAlumniHandler(c *gin.Context) {
	name := c.PostForm("name")
	message := c.PostForm("message")
	if name == "" || message == "" {
		utils.SendJSONError(c, http.StatusBadRequest, "Name and message are required.", nil)
		return
	}
	photo, err := h.saveUpload(c, "photo")
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	entry := &models.Alumni{
		ID:        uuid.New().String(),
		Name:      name,
		Message:   message,
		Photo:     photo,
		CreatedAt: nowISO(),
	}
	if err := h.store.AddAlumni(c.Request.Context(), entry); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusCreated, "Alumni added.", gin.H{"id": entry.ID})
}

// AdminDeleteAlumniHandler removes an alumni testimonial.
func (h *APIHandler) AdminDeleteAlumniHandler(c *gin.Context) {
	if err := h.store.DeleteAlumni(c.Request.Context(), c.Param("id")); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "Alumni deleted.", nil)
}

// ---- Diagnostics ----

// TestEmailHandler sends a test message to the admin address to confirm the
// mail configuration.
func (h *APIHandler) TestEmailHandler(c *gin.Context) {
	if err := h.mail.SendTest(); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "Test email sent.", nil)
}

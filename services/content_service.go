package services

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/mailer"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/models"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/store"
)

// ContactInput is a public contact-form submission.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// DashboardSummary backs the admin landing page: the stat cards plus the
// five newest contact messages and up to five pending posts.
type DashboardSummary struct {
	Stats          models.DashboardStats `json:"stats"`
	RecentContacts []models.Contact      `json:"recent_contacts"`
	PendingBlogs   []models.Blog         `json:"pending_blogs"`
}

// ContentService serves the public content pages and the admin operations
// that are more than plain record CRUD.
type ContentService interface {
	ActiveNotifications(ctx context.Context, board models.Board) ([]models.NotificationView, error)
	ToggleNotification(ctx context.Context, id string) (bool, error)
	GalleryPage(ctx context.Context) (*models.GalleryPage, error)
	GalleryList(ctx context.Context, category string) ([]models.GalleryView, error)
	SplitEvents(ctx context.Context, now time.Time) (upcoming, past []models.EventView, err error)
	ResearchList(ctx context.Context) ([]models.ResearchView, error)
	CurrentCSAMembers(ctx context.Context) ([]models.CSAMember, error)
	SubmitContact(ctx context.Context, in ContactInput) error
	ToggleStudentActive(ctx context.Context, id string) (bool, error)
	UploadCurriculum(ctx context.Context, degree, year, pdfURL string) error
	Dashboard(ctx context.Context) (*DashboardSummary, error)
}

type contentService struct {
	students      store.StudentStore
	faculty       store.FacultyStore
	blogs         store.BlogStore
	contacts      store.ContactStore
	events        store.EventStore
	notifications store.NotificationStore
	gallery       store.GalleryStore
	research      store.ResearchStore
	csa           store.CSAStore
	curriculum    store.CurriculumStore
	mail          mailer.Mailer
}

// NewContentService creates a new instance of ContentService.
func NewContentService(st store.Store, mail mailer.Mailer) ContentService {
	return &contentService{
		students:      st,
		faculty:       st,
		blogs:         st,
		contacts:      st,
		events:        st,
		notifications: st,
		gallery:       st,
		research:      st,
		csa:           st,
		curriculum:    st,
		mail:          mail,
	}
}

// ActiveNotifications returns displayable announcements. An empty board
// returns every active item; otherwise an item matches its own board or
// "both". The display date prefers the announcement date over created_at and
// falls back to the literal "Notification" when neither parses.
func (s *contentService) ActiveNotifications(ctx context.Context, board models.Board) ([]models.NotificationView, error) {
	items, err := s.notifications.ListNotifications(ctx)
	if err != nil {
		log.Printf("ERROR: [ContentService] Failed to list notifications: %v", err)
		return nil, ErrBackend("notification listing", err)
	}
	views := make([]models.NotificationView, 0, len(items))
	for _, n := range items {
		if !models.ActiveOrMissing(n.IsActive) {
			continue
		}
		itemBoard := n.Board
		if itemBoard == "" {
			itemBoard = models.BoardBoth
		}
		if board != "" && itemBoard != board && itemBoard != models.BoardBoth {
			continue
		}

		dateStr := "Notification"
		rawDate := n.Date
		if rawDate == "" {
			rawDate = n.CreatedAt
		}
		if t := parseFlexibleTime(rawDate); t != nil {
			dateStr = t.Format("02 Jan 2006")
		}

		category := n.Category
		if category == "" {
			category = "general"
		}
		url := n.LinkURL
		if url == "" {
			url = n.FilePath
		}
		views = append(views, models.NotificationView{
			ID:       n.ID,
			Title:    n.Title,
			Message:  n.Message,
			Category: category,
			Board:    itemBoard,
			Date:     dateStr,
			URL:      url,
		})
	}
	return views, nil
}

// ToggleNotification flips an announcement's active flag and returns the new
// state.
func (s *contentService) ToggleNotification(ctx context.Context, id string) (bool, error) {
	n, err := s.notifications.GetNotification(ctx, id)
	if err != nil {
		log.Printf("ERROR: [ContentService] Failed to fetch notification %s: %v", id, err)
		return false, ErrBackend("notification fetch", err)
	}
	if n == nil {
		return false, ErrNotFound("Notification not found.")
	}
	newState := !models.ActiveOrMissing(n.IsActive)
	if err := s.notifications.UpdateNotification(ctx, id, store.Changes{"is_active": newState}); err != nil {
		log.Printf("ERROR: [ContentService] Failed to toggle notification %s: %v", id, err)
		return false, ErrBackend("notification toggle", err)
	}
	return newState, nil
}

// normalizeGalleryImage resolves the image location across the historical
// field names and roots relative paths under /uploads/.
func normalizeGalleryImage(g *models.GalleryItem) string {
	img := g.Image
	if img == "" {
		img = g.File
	}
	if img == "" {
		img = g.Path
	}
	if img == "" || strings.HasPrefix(img, "http") || strings.HasPrefix(img, "/uploads/") {
		return img
	}
	return "/uploads/" + img
}

func galleryView(g *models.GalleryItem) models.GalleryView {
	return models.GalleryView{
		ID:          g.ID,
		Title:       g.Title,
		Category:    g.Category,
		Description: g.Description,
		Image:       normalizeGalleryImage(g),
	}
}

// GalleryPage buckets items into the four sections of the gallery page.
// Several legacy category spellings map onto the industrial-tour buckets;
// anything else is left out of the page entirely.
func (s *contentService) GalleryPage(ctx context.Context) (*models.GalleryPage, error) {
	items, err := s.gallery.ListGallery(ctx)
	if err != nil {
		log.Printf("ERROR: [ContentService] Failed to list gallery: %v", err)
		return nil, ErrBackend("gallery listing", err)
	}
	page := &models.GalleryPage{
		EventsSlider: []models.GalleryView{},
		EventsCards:  []models.GalleryView{},
		TourSlider:   []models.GalleryView{},
		TourCards:    []models.GalleryView{},
	}
	for i := range items {
		g := &items[i]
		v := galleryView(g)
		switch strings.TrimSpace(g.Category) {
		case "events_gallery_slider":
			page.EventsSlider = append(page.EventsSlider, v)
		case "events_gallery_cards":
			page.EventsCards = append(page.EventsCards, v)
		case "industrial_slider", "industrial_tour_slider", "industrial_tour":
			page.TourSlider = append(page.TourSlider, v)
		case "industrial_cards", "industrial_tour_cards":
			page.TourCards = append(page.TourCards, v)
		}
	}
	return page, nil
}

// GalleryList returns gallery items, optionally restricted to one exact
// category, with image paths normalized.
func (s *contentService) GalleryList(ctx context.Context, category string) ([]models.GalleryView, error) {
	items, err := s.gallery.ListGallery(ctx)
	if err != nil {
		log.Printf("ERROR: [ContentService] Failed to list gallery: %v", err)
		return nil, ErrBackend("gallery listing", err)
	}
	views := make([]models.GalleryView, 0, len(items))
	for i := range items {
		if category != "" && items[i].Category != category {
			continue
		}
		views = append(views, galleryView(&items[i]))
	}
	return views, nil
}

// SplitEvents divides events at the given instant. Events whose date fails
// every accepted format count as past. Upcoming sorts soonest first, past
// most recent first; undated entries sort as if they happened now.
func (s *contentService) SplitEvents(ctx context.Context, now time.Time) (upcoming, past []models.EventView, err error) {
	events, lerr := s.events.ListEvents(ctx)
	if lerr != nil {
		log.Printf("ERROR: [ContentService] Failed to list events: %v", lerr)
		return nil, nil, ErrBackend("event listing", lerr)
	}
	upcoming = []models.EventView{}
	past = []models.EventView{}
	for _, e := range events {
		v := models.EventView{Event: e, ParsedDate: parseFlexibleTime(e.Date)}
		if v.ParsedDate != nil && !v.ParsedDate.Before(now) {
			upcoming = append(upcoming, v)
		} else {
			past = append(past, v)
		}
	}
	key := func(v models.EventView) time.Time {
		if v.ParsedDate != nil {
			return *v.ParsedDate
		}
		return now
	}
	sort.SliceStable(upcoming, func(i, j int) bool { return key(upcoming[i]).Before(key(upcoming[j])) })
	sort.SliceStable(past, func(i, j int) bool { return key(past[i]).After(key(past[j])) })
	return upcoming, past, nil
}

// ResearchList resolves display URLs for each paper. Uploaded paths are
// stored as /uploads/<file>, which is the route the server serves them
// from; an explicit external link wins over the uploaded file.
func (s *contentService) ResearchList(ctx context.Context) ([]models.ResearchView, error) {
	papers, err := s.research.ListResearch(ctx)
	if err != nil {
		log.Printf("ERROR: [ContentService] Failed to list research: %v", err)
		return nil, ErrBackend("research listing", err)
	}
	views := make([]models.ResearchView, 0, len(papers))
	for _, p := range papers {
		v := models.ResearchView{ResearchPaper: p}
		v.File = p.PDFPath
		v.Link = p.PDFLink
		if v.Link == "" {
			v.Link = v.File
		}
		views = append(views, v)
	}
	return views, nil
}

// CurrentCSAMembers returns the sitting committee sorted by display order.
// A missing is_current flag counts as current.
func (s *contentService) CurrentCSAMembers(ctx context.Context) ([]models.CSAMember, error) {
	members, err := s.csa.ListCSAMembers(ctx)
	if err != nil {
		log.Printf("ERROR: [ContentService] Failed to list CSA members: %v", err)
		return nil, ErrBackend("committee listing", err)
	}
	current := make([]models.CSAMember, 0, len(members))
	for _, m := range members {
		if models.ActiveOrMissing(m.IsCurrent) {
			current = append(current, m)
		}
	}
	sort.SliceStable(current, func(i, j int) bool { return current[i].Order < current[j].Order })
	return current, nil
}

// SubmitContact stores a contact-form message and notifies both sides by
// mail. Mail failures are logged and do not fail the submission.
func (s *contentService) SubmitContact(ctx context.Context, in ContactInput) error {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	subject := strings.TrimSpace(in.Subject)
	message := strings.TrimSpace(in.Message)
	if name == "" || email == "" || subject == "" || message == "" {
		return ErrValidation("All fields are required.")
	}

	contact := &models.Contact{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   message,
		Read:      false,
		CreatedAt: nowISO(),
	}
	if err := s.contacts.AddContact(ctx, contact); err != nil {
		log.Printf("ERROR: [ContentService] Failed to store contact message from %s: %v", email, err)
		return ErrBackend("contact submission", err)
	}
	log.Printf("INFO: [ContentService] Contact message %s received from %s", contact.ID, email)

	if err := s.mail.SendContactNotice(name, email, subject, message); err != nil {
		log.Printf("ERROR: [ContentService] Failed to send contact notice: %v", err)
	}
	if err := s.mail.SendContactThanks(email, name, subject, message); err != nil {
		log.Printf("ERROR: [ContentService] Failed to send contact thank-you: %v", err)
	}
	return nil
}

// ToggleStudentActive flips a student's active flag and returns the new
// state. Deactivated students cannot log in until reactivated.
func (s *contentService) ToggleStudentActive(ctx context.Context, id string) (bool, error) {
	student, err := s.students.GetStudent(ctx, id)
	if err != nil {
		log.Printf("ERROR: [ContentService] Failed to fetch student %s: %v", id, err)
		return false, ErrBackend("student fetch", err)
	}
	if student == nil {
		return false, ErrNotFound("Student not found.")
	}
	newState := !models.ActiveOrMissing(student.IsActive)
	if err := s.students.UpdateStudent(ctx, id, store.Changes{"is_active": newState}); err != nil {
		log.Printf("ERROR: [ContentService] Failed to toggle student %s: %v", id, err)
		return false, ErrBackend("student toggle", err)
	}
	log.Printf("INFO: [ContentService] Student %s active=%t", id, newState)
	return newState, nil
}

// UploadCurriculum records a syllabus PDF under its (degree, year) key,
// replacing any previous upload for that key.
func (s *contentService) UploadCurriculum(ctx context.Context, degree, year, pdfURL string) error {
	degree = strings.TrimSpace(degree)
	year = strings.TrimSpace(year)
	if degree == "" || year == "" || pdfURL == "" {
		return ErrValidation("Degree, year and PDF are required.")
	}
	c := models.Curriculum{
		Degree:     degree,
		Year:       year,
		PDFURL:     pdfURL,
		UploadedAt: time.Now().UTC().Format("2006-01-02"),
	}
	if err := s.curriculum.UpsertCurriculum(ctx, c); err != nil {
		log.Printf("ERROR: [ContentService] Failed to upsert curriculum %s/%s: %v", degree, year, err)
		return ErrBackend("curriculum upload", err)
	}
	return nil
}

// Dashboard gathers the admin landing-page data: collection counts, the five
// newest contact messages and up to five pending posts.
func (s *contentService) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	students, err := s.students.ListStudents(ctx)
	if err != nil {
		return nil, ErrBackend("dashboard", err)
	}
	pending, err := s.blogs.ListBlogs(ctx, store.BlogFilter{Status: models.BlogStatusPending})
	if err != nil {
		return nil, ErrBackend("dashboard", err)
	}
	contacts, err := s.contacts.ListContacts(ctx)
	if err != nil {
		return nil, ErrBackend("dashboard", err)
	}
	events, err := s.events.ListEvents(ctx)
	if err != nil {
		return nil, ErrBackend("dashboard", err)
	}
	faculty, err := s.faculty.ListFaculty(ctx)
	if err != nil {
		return nil, ErrBackend("dashboard", err)
	}

	stats := models.DashboardStats{
		TotalStudents: len(students),
		PendingBlogs:  len(pending),
		TotalContacts: len(contacts),
		TotalEvents:   len(events),
		TotalFaculty:  len(faculty),
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		ti, tj := parseFlexibleTime(contacts[i].CreatedAt), parseFlexibleTime(contacts[j].CreatedAt)
		switch {
		case ti == nil:
			return false
		case tj == nil:
			return true
		default:
			return ti.After(*tj)
		}
	})
	if len(contacts) > 5 {
		contacts = contacts[:5]
	}
	if len(pending) > 5 {
		pending = pending[:5]
	}

	return &DashboardSummary{
		Stats:          stats,
		RecentContacts: contacts,
		PendingBlogs:   pending,
	}, nil
}

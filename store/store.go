// Package store implements the record store behind the website: named
// collections of schema-less records with a uniform add/list/get/update/
// delete contract, backed either by a single JSON document on disk or by
// MongoDB. The backend is selected once at startup; callers never branch on
// it.
package store

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/config"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/models"
)

// ErrNotFound is returned by updates addressing an absent id. Reads report
// absence as (nil, nil); deletes are idempotent and never return it.
var ErrNotFound = errors.New("record not found")

// Changes is a shallow field-name → value change set merged into a stored
// record. Keys use the stored field names (json/bson tags), e.g. "status",
// "password_hash". Values replace wholesale; there is no deep merge. A nil
// value removes the field in either backend.
type Changes map[string]interface{}

// BlogFilter narrows ListBlogs. Status takes precedence over ApprovedOnly;
// ApprovedOnly additionally admits legacy records that only carry the
// approved flag.
type BlogFilter struct {
	Status       models.BlogStatus
	ApprovedOnly bool
}

// StudentStore is the student collection.
type StudentStore interface {
	AddStudent(ctx context.Context, s *models.Student) error
	ListStudents(ctx context.Context) ([]models.Student, error)
	GetStudent(ctx context.Context, id string) (*models.Student, error)
	FindStudentByEmail(ctx context.Context, email string) (*models.Student, error)
	FindStudentByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	UpdateStudent(ctx context.Context, id string, changes Changes) error
	DeleteStudent(ctx context.Context, id string) error
}

// FacultyStore is the faculty collection.
type FacultyStore interface {
	AddFaculty(ctx context.Context, f *models.Faculty) error
	ListFaculty(ctx context.Context) ([]models.Faculty, error)
	GetFaculty(ctx context.Context, id string) (*models.Faculty, error)
	FindFacultyByEmail(ctx context.Context, email string) (*models.Faculty, error)
	UpdateFaculty(ctx context.Context, id string, changes Changes) error
	DeleteFaculty(ctx context.Context, id string) error
}

// BlogStore is the blog collection. Statuses, likes and comments are opaque
// fields here; the workflow layer owns their semantics.
type BlogStore interface {
	AddBlog(ctx context.Context, b *models.Blog) error
	ListBlogs(ctx context.Context, filter BlogFilter) ([]models.Blog, error)
	GetBlog(ctx context.Context, id string) (*models.Blog, error)
	UpdateBlog(ctx context.Context, id string, changes Changes) error
	DeleteBlog(ctx context.Context, id string) error
}

// ContactStore is the contact-message collection.
type ContactStore interface {
	AddContact(ctx context.Context, c *models.Contact) error
	ListContacts(ctx context.Context) ([]models.Contact, error)
	UpdateContact(ctx context.Context, id string, changes Changes) error
	DeleteContact(ctx context.Context, id string) error
}

// EventStore is the event collection.
type EventStore interface {
	AddEvent(ctx context.Context, e *models.Event) error
	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	UpdateEvent(ctx context.Context, id string, changes Changes) error
	DeleteEvent(ctx context.Context, id string) error
}

// NotificationStore is the announcement collection.
type NotificationStore interface {
	AddNotification(ctx context.Context, n *models.Notification) error
	ListNotifications(ctx context.Context) ([]models.Notification, error)
	GetNotification(ctx context.Context, id string) (*models.Notification, error)
	UpdateNotification(ctx context.Context, id string, changes Changes) error
	DeleteNotification(ctx context.Context, id string) error
}

// GalleryStore is the gallery collection.
type GalleryStore interface {
	AddGalleryItem(ctx context.Context, g *models.GalleryItem) error
	ListGallery(ctx context.Context) ([]models.GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, id string) error
}

// ResearchStore is the research-paper collection.
type ResearchStore interface {
	AddResearch(ctx context.Context, r *models.ResearchPaper) error
	ListResearch(ctx context.Context) ([]models.ResearchPaper, error)
	DeleteResearch(ctx context.Context, id string) error
}

// CSAStore covers the current committee members and the past-committee
// archive.
type CSAStore interface {
	AddCSAMember(ctx context.Context, m *models.CSAMember) error
	ListCSAMembers(ctx context.Context) ([]models.CSAMember, error)
	GetCSAMember(ctx context.Context, id string) (*models.CSAMember, error)
	UpdateCSAMember(ctx context.Context, id string, changes Changes) error
	DeleteCSAMember(ctx context.Context, id string) error

	AddPastCSA(ctx context.Context, e *models.PastCSA) error
	ListPastCSA(ctx context.Context) ([]models.PastCSA, error)
	DeletePastCSA(ctx context.Context, id string) error
}

// CurriculumStore is keyed on (degree, year), not id: Upsert replaces a
// record with a matching key and appends otherwise.
type CurriculumStore interface {
	ListCurriculum(ctx context.Context) ([]models.Curriculum, error)
	UpsertCurriculum(ctx context.Context, c models.Curriculum) error
	DeleteCurriculum(ctx context.Context, degree, year string) error
}

// AlumniStore is the alumni-testimonial collection.
type AlumniStore interface {
	AddAlumni(ctx context.Context, a *models.Alumni) error
	ListAlumni(ctx context.Context) ([]models.Alumni, error)
	DeleteAlumni(ctx context.Context, id string) error
}

// Store is the full record store. Services depend on the narrow per-collection
// interfaces above; only the factory and main see this composition.
type Store interface {
	StudentStore
	FacultyStore
	BlogStore
	ContactStore
	EventStore
	NotificationStore
	GalleryStore
	ResearchStore
	CSAStore
	CurriculumStore
	AlumniStore

	Close(ctx context.Context) error
}

// New selects and initializes the configured backend.
func New(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case "file", "":
		log.Printf("INFO: [Store] Using file backend at %s", cfg.FilePath)
		return newFileStore(cfg.FilePath)
	case "mongo":
		log.Printf("INFO: [Store] Using MongoDB backend at %s (db %s)", cfg.MongoURI, cfg.MongoDB)
		return newMongoStore(ctx, cfg.MongoURI, cfg.MongoDB)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

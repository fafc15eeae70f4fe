package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/models"
)

// document is the entire on-disk datastore: one JSON object with one array
// per collection. Top-level key names are part of the storage contract.
type document struct {
	Students      []models.Student       `json:"students"`
	Blogs         []models.Blog          `json:"blogs"`
	Contacts      []models.Contact       `json:"contacts"`
	Faculty       []models.Faculty       `json:"faculty"`
	Events        []models.Event         `json:"events"`
	Notifications []models.Notification  `json:"notifications"`
	Gallery       []models.GalleryItem   `json:"gallery"`
	Research      []models.ResearchPaper `json:"research"`
	CSAMembers    []models.CSAMember     `json:"csa_members"`
	PastCSA       []models.PastCSA       `json:"past_csa"`
	Curriculum    []models.Curriculum    `json:"curriculum"`
	Alumni        []models.Alumni        `json:"alumni"`
}

func (d *document) normalize() {
	if d.Students == nil {
		d.Students = []models.Student{}
	}
	if d.Blogs == nil {
		d.Blogs = []models.Blog{}
	}
	if d.Contacts == nil {
		d.Contacts = []models.Contact{}
	}
	if d.Faculty == nil {
		d.Faculty = []models.Faculty{}
	}
	if d.Events == nil {
		d.Events = []models.Event{}
	}
	if d.Notifications == nil {
		d.Notifications = []models.Notification{}
	}
	if d.Gallery == nil {
		d.Gallery = []models.GalleryItem{}
	}
	if d.Research == nil {
		d.Research = []models.ResearchPaper{}
	}
	if d.CSAMembers == nil {
		d.CSAMembers = []models.CSAMember{}
	}
	if d.PastCSA == nil {
		d.PastCSA = []models.PastCSA{}
	}
	if d.Curriculum == nil {
		d.Curriculum = []models.Curriculum{}
	}
	if d.Alumni == nil {
		d.Alumni = []models.Alumni{}
	}
}

// fileStore keeps the whole datastore in one JSON file. Every operation is a
// whole-document read, in-memory mutation and whole-document rewrite, exactly
// like the data file it stays compatible with. There is no locking: under
// concurrent writers the last full-document write wins and interleaved
// updates can be lost. Single-process, low-concurrency use only.
type fileStore struct {
	path string
}

func newFileStore(path string) (*fileStore, error) {
	s := &fileStore{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		var doc document
		doc.normalize()
		if err := s.write(&doc); err != nil {
			return nil, fmt.Errorf("failed to initialize datastore at %s: %w", path, err)
		}
		log.Printf("INFO: [FileStore] Created empty datastore at %s", path)
	}
	return s, nil
}

func (s *fileStore) read() (*document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read datastore %s: %w", s.path, err)
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse datastore %s: %w", s.path, err)
	}
	return &doc, nil
}

func (s *fileStore) write(doc *document) error {
	doc.normalize()
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode datastore: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write datastore %s: %w", s.path, err)
	}
	return nil
}

// applyChanges merges a shallow change set into a typed record by
// round-tripping it through its JSON representation, so change keys use the
// same field names the file itself uses.
func applyChanges[T any](rec *T, changes Changes) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode record for update: %w", err)
	}
	fields := map[string]interface{}{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("failed to decode record for update: %w", err)
	}
	for k, v := range changes {
		if v == nil {
			delete(fields, k)
			continue
		}
		fields[k] = v
	}
	merged, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to encode merged record: %w", err)
	}
	var updated T
	if err := json.Unmarshal(merged, &updated); err != nil {
		return fmt.Errorf("failed to apply changes to record: %w", err)
	}
	*rec = updated
	return nil
}

func updateByID[T any](items []T, match func(*T) bool, changes Changes) (bool, error) {
	for i := range items {
		if match(&items[i]) {
			if err := applyChanges(&items[i], changes); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func removeMatching[T any](items []T, match func(*T) bool) []T {
	kept := items[:0:0]
	for i := range items {
		if !match(&items[i]) {
			kept = append(kept, items[i])
		}
	}
	return kept
}

// ---------- students ----------

func (s *fileStore) AddStudent(_ context.Context, st *models.Student) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	if st.IsActive == nil {
		st.IsActive = models.BoolPtr(true)
	}
	doc.Students = append(doc.Students, *st)
	return s.write(doc)
}

func (s *fileStore) ListStudents(_ context.Context) ([]models.Student, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Students, nil
}

func (s *fileStore) GetStudent(_ context.Context, id string) (*models.Student, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range doc.Students {
		if doc.Students[i].ID == id {
			return &doc.Students[i], nil
		}
	}
	return nil, nil
}

func (s *fileStore) FindStudentByEmail(_ context.Context, email string) (*models.Student, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range doc.Students {
		if doc.Students[i].Email == email {
			return &doc.Students[i], nil
		}
	}
	return nil, nil
}

func (s *fileStore) FindStudentByStudentID(_ context.Context, studentID string) (*models.Student, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range doc.Students {
		if doc.Students[i].StudentID == studentID {
			return &doc.Students[i], nil
		}
	}
	return nil, nil
}

func (s *fileStore) UpdateStudent(_ context.Context, id string, changes Changes) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	ok, err := updateByID(doc.Students, func(st *models.Student) bool { return st.ID == id }, changes)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return s.write(doc)
}

func (s *fileStore) DeleteStudent(_ context.Context, id string) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Students = removeMatching(doc.Students, func(st *models.Student) bool { return st.ID == id })
	return s.write(doc)
}

// ---------- faculty ----------

func (s *fileStore) AddFaculty(_ context.Context, f *models.Faculty) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Faculty = append(doc.Faculty, *f)
	return s.write(doc)
}

func (s *fileStore) ListFaculty(_ context.Context) ([]models.Faculty, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Faculty, nil
}

func (s *fileStore) GetFaculty(_ context.Context, id string) (*models.Faculty, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range doc.Faculty {
		if doc.Faculty[i].ID == id {
			return &doc.Faculty[i], nil
		}
	}
	return nil, nil
}

func (s *fileStore) FindFacultyByEmail(_ context.Context, email string) (*models.Faculty, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range doc.Faculty {
		if doc.Faculty[i].Email == email {
			return &doc.Faculty[i], nil
		}
	}
	return nil, nil
}

func (s *fileStore) UpdateFaculty(_ context.Context, id string, changes Changes) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	ok, err := updateByID(doc.Faculty, func(f *models.Faculty) bool { return f.ID == id }, changes)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return s.write(doc)
}

func (s *fileStore) DeleteFaculty(_ context.Context, id string) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Faculty = removeMatching(doc.Faculty, func(f *models.Faculty) bool { return f.ID == id })
	return s.write(doc)
}

// ---------- blogs ----------

func (s *fileStore) AddBlog(_ context.Context, b *models.Blog) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Blogs = append(doc.Blogs, *b)
	return s.write(doc)
}

func (s *fileStore) ListBlogs(_ context.Context, filter BlogFilter) ([]models.Blog, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	blogs := doc.Blogs
	if filter.Status != "" {
		out := make([]models.Blog, 0, len(blogs))
		for _, b := range blogs {
			if b.Status == filter.Status {
				out = append(out, b)
			}
		}
		return out, nil
	}
	if filter.ApprovedOnly {
		out := make([]models.Blog, 0, len(blogs))
		for _, b := range blogs {
			// Legacy records may carry only the approved flag.
			if b.Status == models.BlogStatusApproved || b.Approved {
				out = append(out, b)
			}
		}
		return out, nil
	}
	return blogs, nil
}

func (s *fileStore) GetBlog(_ context.Context, id string) (*models.Blog, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range doc.Blogs {
		if doc.Blogs[i].ID == id {
			return &doc.Blogs[i], nil
		}
	}
	return nil, nil
}

func (s *fileStore) UpdateBlog(_ context.Context, id string, changes Changes) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	ok, err := updateByID(doc.Blogs, func(b *models.Blog) bool { return b.ID == id }, changes)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return s.write(doc)
}

func (s *fileStore) DeleteBlog(_ context.Context, id string) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Blogs = removeMatching(doc.Blogs, func(b *models.Blog) bool { return b.ID == id })
	return s.write(doc)
}

// ---------- contacts ----------

func (s *fileStore) AddContact(_ context.Context, c *models.Contact) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Contacts = append(doc.Contacts, *c)
	return s.write(doc)
}

func (s *fileStore) ListContacts(_ context.Context) ([]models.Contact, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Contacts, nil
}

func (s *fileStore) UpdateContact(_ context.Context, id string, changes Changes) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	ok, err := updateByID(doc.Contacts, func(c *models.Contact) bool { return c.ID == id }, changes)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return s.write(doc)
}

func (s *fileStore) DeleteContact(_ context.Context, id string) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Contacts = removeMatching(doc.Contacts, func(c *models.Contact) bool { return c.ID == id })
	return s.write(doc)
}

// ---------- events ----------

func (s *fileStore) AddEvent(_ context.Context, e *models.Event) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Events = append(doc.Events, *e)
	return s.write(doc)
}

func (s *fileStore) ListEvents(_ context.Context) ([]models.Event, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Events, nil
}

func (s *fileStore) GetEvent(_ context.Context, id string) (*models.Event, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range doc.Events {
		if doc.Events[i].ID == id {
			return &doc.Events[i], nil
		}
	}
	return nil, nil
}

func (s *fileStore) UpdateEvent(_ context.Context, id string, changes Changes) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	ok, err := updateByID(doc.Events, func(e *models.Event) bool { return e.ID == id }, changes)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return s.write(doc)
}

func (s *fileStore) DeleteEvent(_ context.Context, id string) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Events = removeMatching(doc.Events, func(e *models.Event) bool { return e.ID == id })
	return s.write(doc)
}

// ---------- notifications ----------

func (s *fileStore) AddNotification(_ context.Context, n *models.Notification) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Notifications = append(doc.Notifications, *n)
	return s.write(doc)
}

func (s *fileStore) ListNotifications(_ context.Context) ([]models.Notification, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Notifications, nil
}

func (s *fileStore) GetNotification(_ context.Context, id string) (*models.Notification, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range doc.Notifications {
		if doc.Notifications[i].ID == id {
			return &doc.Notifications[i], nil
		}
	}
	return nil, nil
}

func (s *fileStore) UpdateNotification(_ context.Context, id string, changes Changes) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	ok, err := updateByID(doc.Notifications, func(n *models.Notification) bool { return n.ID == id }, changes)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return s.write(doc)
}

func (s *fileStore) DeleteNotification(_ context.Context, id string) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Notifications = removeMatching(doc.Notifications, func(n *models.Notification) bool { return n.ID == id })
	return s.write(doc)
}

// ---------- gallery ----------

func (s *fileStore) AddGalleryItem(_ context.Context, g *models.GalleryItem) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Gallery = append(doc.Gallery, *g)
	return s.write(doc)
}

func (s *fileStore) ListGallery(_ context.Context) ([]models.GalleryItem, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Gallery, nil
}

func (s *fileStore) DeleteGalleryItem(_ context.Context, id string) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Gallery = removeMatching(doc.Gallery, func(g *models.GalleryItem) bool { return g.ID == id })
	return s.write(doc)
}

// ---------- research ----------

func (s *fileStore) AddResearch(_ context.Context, r *models.ResearchPaper) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Research = append(doc.Research, *r)
	return s.write(doc)
}

func (s *fileStore) ListResearch(_ context.Context) ([]models.ResearchPaper, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Research, nil
}

func (s *fileStore) DeleteResearch(_ context.Context, id string) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Research = removeMatching(doc.Research, func(r *models.ResearchPaper) bool { return r.ID == id })
	return s.write(doc)
}

// ---------- csa ----------

func (s *fileStore) AddCSAMember(_ context.Context, m *models.CSAMember) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.CSAMembers = append(doc.CSAMembers, *m)
	return s.write(doc)
}

func (s *fileStore) ListCSAMembers(_ context.Context) ([]models.CSAMember, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.CSAMembers, nil
}

func (s *fileStore) GetCSAMember(_ context.Context, id string) (*models.CSAMember, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range doc.CSAMembers {
		if doc.CSAMembers[i].ID == id {
			return &doc.CSAMembers[i], nil
		}
	}
	return nil, nil
}

func (s *fileStore) UpdateCSAMember(_ context.Context, id string, changes Changes) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	ok, err := updateByID(doc.CSAMembers, func(m *models.CSAMember) bool { return m.ID == id }, changes)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return s.write(doc)
}

func (s *fileStore) DeleteCSAMember(_ context.Context, id string) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.CSAMembers = removeMatching(doc.CSAMembers, func(m *models.CSAMember) bool { return m.ID == id })
	return s.write(doc)
}

func (s *fileStore) AddPastCSA(_ context.Context, e *models.PastCSA) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.PastCSA = append(doc.PastCSA, *e)
	return s.write(doc)
}

func (s *fileStore) ListPastCSA(_ context.Context) ([]models.PastCSA, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.PastCSA, nil
}

func (s *fileStore) DeletePastCSA(_ context.Context, id string) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.PastCSA = removeMatching(doc.PastCSA, func(e *models.PastCSA) bool { return e.ID == id })
	return s.write(doc)
}

// ---------- curriculum ----------

func (s *fileStore) ListCurriculum(_ context.Context) ([]models.Curriculum, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Curriculum, nil
}

func (s *fileStore) UpsertCurriculum(_ context.Context, c models.Curriculum) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	replaced := false
	for i := range doc.Curriculum {
		if doc.Curriculum[i].Degree == c.Degree && doc.Curriculum[i].Year == c.Year {
			doc.Curriculum[i] = c
			replaced = true
			break
		}
	}
	if !replaced {
		doc.Curriculum = append(doc.Curriculum, c)
	}
	return s.write(doc)
}

func (s *fileStore) DeleteCurriculum(_ context.Context, degree, year string) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Curriculum = removeMatching(doc.Curriculum, func(c *models.Curriculum) bool {
		return c.Degree == degree && c.Year == year
	})
	return s.write(doc)
}

// ---------- alumni ----------

func (s *fileStore) AddAlumni(_ context.Context, a *models.Alumni) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Alumni = append(doc.Alumni, *a)
	return s.write(doc)
}

func (s *fileStore) ListAlumni(_ context.Context) ([]models.Alumni, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Alumni, nil
}

func (s *fileStore) DeleteAlumni(_ context.Context, id string) error {
	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Alumni = removeMatching(doc.Alumni, func(a *models.Alumni) bool { return a.ID == id })
	return s.write(doc)
}

// Close is a no-op for the file backend.
func (s *fileStore) Close(_ context.Context) error { return nil }

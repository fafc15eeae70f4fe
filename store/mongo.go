package store

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/models"
)

// mongoStore maps each named collection onto a MongoDB collection of the same
// name. Records are addressed by their caller-generated "id" field, never by
// Mongo's _id, so the two backends stay interchangeable. Operations are
// single-record; there are no cross-collection transactions.
type mongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

func newMongoStore(ctx context.Context, uri, dbName string) (*mongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB at %s: %w", uri, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB at %s: %w", uri, err)
	}
	log.Printf("INFO: [MongoStore] Connected to %s", uri)
	return &mongoStore{client: client, db: client.Database(dbName)}, nil
}

func (s *mongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func insertOne(ctx context.Context, coll *mongo.Collection, rec interface{}) error {
	if _, err := coll.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", coll.Name(), err)
	}
	return nil
}

func listAll[T any](ctx context.Context, coll *mongo.Collection) ([]T, error) {
	cur, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", coll.Name(), err)
	}
	var out []T
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s records: %w", coll.Name(), err)
	}
	return out, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) (*T, error) {
	var rec T
	err := coll.FindOne(ctx, filter).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}
	return &rec, nil
}

// changesToUpdate splits a change set into an update document. A nil value
// removes the field, matching the file backend's delete-on-nil semantics.
func changesToUpdate(changes Changes) bson.M {
	set := bson.M{}
	unset := bson.M{}
	for k, v := range changes {
		if v == nil {
			unset[k] = ""
			continue
		}
		set[k] = v
	}
	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}

func setFields(ctx context.Context, coll *mongo.Collection, filter bson.M, changes Changes) error {
	res, err := coll.UpdateOne(ctx, filter, changesToUpdate(changes))
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteOne(ctx context.Context, coll *mongo.Collection, filter bson.M) error {
	// Idempotent: deleting an absent record is not an error.
	if _, err := coll.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete from %s: %w", coll.Name(), err)
	}
	return nil
}

func (s *mongoStore) students() *mongo.Collection      { return s.db.Collection("students") }
func (s *mongoStore) faculty() *mongo.Collection       { return s.db.Collection("faculty") }
func (s *mongoStore) blogs() *mongo.Collection         { return s.db.Collection("blogs") }
func (s *mongoStore) contacts() *mongo.Collection      { return s.db.Collection("contacts") }
func (s *mongoStore) events() *mongo.Collection        { return s.db.Collection("events") }
func (s *mongoStore) notifications() *mongo.Collection { return s.db.Collection("notifications") }
func (s *mongoStore) gallery() *mongo.Collection       { return s.db.Collection("gallery") }
func (s *mongoStore) research() *mongo.Collection      { return s.db.Collection("research") }
func (s *mongoStore) csaMembers() *mongo.Collection    { return s.db.Collection("csa_members") }
func (s *mongoStore) pastCSA() *mongo.Collection       { return s.db.Collection("past_csa") }
func (s *mongoStore) curriculum() *mongo.Collection    { return s.db.Collection("curriculum") }
func (s *mongoStore) alumni() *mongo.Collection        { return s.db.Collection("alumni") }

// ---------- students ----------

func (s *mongoStore) AddStudent(ctx context.Context, st *models.Student) error {
	if st.IsActive == nil {
		st.IsActive = models.BoolPtr(true)
	}
	return insertOne(ctx, s.students(), st)
}

func (s *mongoStore) ListStudents(ctx context.Context) ([]models.Student, error) {
	return listAll[models.Student](ctx, s.students())
}

func (s *mongoStore) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	return findOne[models.Student](ctx, s.students(), bson.M{"id": id})
}

func (s *mongoStore) FindStudentByEmail(ctx context.Context, email string) (*models.Student, error) {
	return findOne[models.Student](ctx, s.students(), bson.M{"email": email})
}

func (s *mongoStore) FindStudentByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	return findOne[models.Student](ctx, s.students(), bson.M{"student_id": studentID})
}

func (s *mongoStore) UpdateStudent(ctx context.Context, id string, changes Changes) error {
	return setFields(ctx, s.students(), bson.M{"id": id}, changes)
}

func (s *mongoStore) DeleteStudent(ctx context.Context, id string) error {
	return deleteOne(ctx, s.students(), bson.M{"id": id})
}

// ---------- faculty ----------

func (s *mongoStore) AddFaculty(ctx context.Context, f *models.Faculty) error {
	return insertOne(ctx, s.faculty(), f)
}

func (s *mongoStore) ListFaculty(ctx context.Context) ([]models.Faculty, error) {
	return listAll[models.Faculty](ctx, s.faculty())
}

func (s *mongoStore) GetFaculty(ctx context.Context, id string) (*models.Faculty, error) {
	return findOne[models.Faculty](ctx, s.faculty(), bson.M{"id": id})
}

func (s *mongoStore) FindFacultyByEmail(ctx context.Context, email string) (*models.Faculty, error) {
	return findOne[models.Faculty](ctx, s.faculty(), bson.M{"email": email})
}

func (s *mongoStore) UpdateFaculty(ctx context.Context, id string, changes Changes) error {
	return setFields(ctx, s.faculty(), bson.M{"id": id}, changes)
}

func (s *mongoStore) DeleteFaculty(ctx context.Context, id string) error {
	return deleteOne(ctx, s.faculty(), bson.M{"id": id})
}

// ---------- blogs ----------

func (s *mongoStore) AddBlog(ctx context.Context, b *models.Blog) error {
	return insertOne(ctx, s.blogs(), b)
}

func (s *mongoStore) ListBlogs(ctx context.Context, filter BlogFilter) ([]models.Blog, error) {
	q := bson.M{}
	if filter.Status != "" {
		q["status"] = filter.Status
	} else if filter.ApprovedOnly {
		// Legacy records may carry only the approved flag.
		q["$or"] = []bson.M{
			{"status": models.BlogStatusApproved},
			{"approved": true},
		}
	}
	cur, err := s.blogs().Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	var out []models.Blog
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode blog records: %w", err)
	}
	return out, nil
}

func (s *mongoStore) GetBlog(ctx context.Context, id string) (*models.Blog, error) {
	return findOne[models.Blog](ctx, s.blogs(), bson.M{"id": id})
}

func (s *mongoStore) UpdateBlog(ctx context.Context, id string, changes Changes) error {
	return setFields(ctx, s.blogs(), bson.M{"id": id}, changes)
}

func (s *mongoStore) DeleteBlog(ctx context.Context, id string) error {
	return deleteOne(ctx, s.blogs(), bson.M{"id": id})
}

// ---------- contacts ----------

func (s *mongoStore) AddContact(ctx context.Context, c *models.Contact) error {
	return insertOne(ctx, s.contacts(), c)
}

func (s *mongoStore) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return listAll[models.Contact](ctx, s.contacts())
}

func (s *mongoStore) UpdateContact(ctx context.Context, id string, changes Changes) error {
	return setFields(ctx, s.contacts(), bson.M{"id": id}, changes)
}

func (s *mongoStore) DeleteContact(ctx context.Context, id string) error {
	return deleteOne(ctx, s.contacts(), bson.M{"id": id})
}

// ---------- events ----------

func (s *mongoStore) AddEvent(ctx context.Context, e *models.Event) error {
	return insertOne(ctx, s.events(), e)
}

func (s *mongoStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	return listAll[models.Event](ctx, s.events())
}

func (s *mongoStore) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	return findOne[models.Event](ctx, s.events(), bson.M{"id": id})
}

func (s *mongoStore) UpdateEvent(ctx context.Context, id string, changes Changes) error {
	return setFields(ctx, s.events(), bson.M{"id": id}, changes)
}

func (s *mongoStore) DeleteEvent(ctx context.Context, id string) error {
	return deleteOne(ctx, s.events(), bson.M{"id": id})
}

// ---------- notifications ----------

func (s *mongoStore) AddNotification(ctx context.Context, n *models.Notification) error {
	return insertOne(ctx, s.notifications(), n)
}

func (s *mongoStore) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	return listAll[models.Notification](ctx, s.notifications())
}

func (s *mongoStore) GetNotification(ctx context.Context, id string) (*models.Notification, error) {
	return findOne[models.Notification](ctx, s.notifications(), bson.M{"id": id})
}

func (s *mongoStore) UpdateNotification(ctx context.Context, id string, changes Changes) error {
	return setFields(ctx, s.notifications(), bson.M{"id": id}, changes)
}

func (s *mongoStore) DeleteNotification(ctx context.Context, id string) error {
	return deleteOne(ctx, s.notifications(), bson.M{"id": id})
}

// ---------- gallery ----------

func (s *mongoStore) AddGalleryItem(ctx context.Context, g *models.GalleryItem) error {
	return insertOne(ctx, s.gallery(), g)
}

func (s *mongoStore) ListGallery(ctx context.Context) ([]models.GalleryItem, error) {
	return listAll[models.GalleryItem](ctx, s.gallery())
}

func (s *mongoStore) DeleteGalleryItem(ctx context.Context, id string) error {
	return deleteOne(ctx, s.gallery(), bson.M{"id": id})
}

// ---------- research ----------

func (s *mongoStore) AddResearch(ctx context.Context, r *models.ResearchPaper) error {
	return insertOne(ctx, s.research(), r)
}

func (s *mongoStore) ListResearch(ctx context.Context) ([]models.ResearchPaper, error) {
	return listAll[models.ResearchPaper](ctx, s.research())
}

func (s *mongoStore) DeleteResearch(ctx context.Context, id string) error {
	return deleteOne(ctx, s.research(), bson.M{"id": id})
}

// ---------- csa ----------

func (s *mongoStore) AddCSAMember(ctx context.Context, m *models.CSAMember) error {
	return insertOne(ctx, s.csaMembers(), m)
}

func (s *mongoStore) ListCSAMembers(ctx context.Context) ([]models.CSAMember, error) {
	return listAll[models.CSAMember](ctx, s.csaMembers())
}

func (s *mongoStore) GetCSAMember(ctx context.Context, id string) (*models.CSAMember, error) {
	return findOne[models.CSAMember](ctx, s.csaMembers(), bson.M{"id": id})
}

func (s *mongoStore) UpdateCSAMember(ctx context.Context, id string, changes Changes) error {
	return setFields(ctx, s.csaMembers(), bson.M{"id": id}, changes)
}

func (s *mongoStore) DeleteCSAMember(ctx context.Context, id string) error {
	return deleteOne(ctx, s.csaMembers(), bson.M{"id": id})
}

func (s *mongoStore) AddPastCSA(ctx context.Context, e *models.PastCSA) error {
	return insertOne(ctx, s.pastCSA(), e)
}

func (s *mongoStore) ListPastCSA(ctx context.Context) ([]models.PastCSA, error) {
	return listAll[models.PastCSA](ctx, s.pastCSA())
}

func (s *mongoStore) DeletePastCSA(ctx context.Context, id string) error {
	return deleteOne(ctx, s.pastCSA(), bson.M{"id": id})
}

// ---------- curriculum ----------

func (s *mongoStore) ListCurriculum(ctx context.Context) ([]models.Curriculum, error) {
	return listAll[models.Curriculum](ctx, s.curriculum())
}

func (s *mongoStore) UpsertCurriculum(ctx context.Context, c models.Curriculum) error {
	filter := bson.M{"degree": c.Degree, "year": c.Year}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.curriculum().ReplaceOne(ctx, filter, c, opts); err != nil {
		return fmt.Errorf("failed to upsert curriculum %s/%s: %w", c.Degree, c.Year, err)
	}
	return nil
}

func (s *mongoStore) DeleteCurriculum(ctx context.Context, degree, year string) error {
	return deleteOne(ctx, s.curriculum(), bson.M{"degree": degree, "year": year})
}

// ---------- alumni ----------

func (s *mongoStore) AddAlumni(ctx context.Context, a *models.Alumni) error {
	return insertOne(ctx, s.alumni(), a)
}

func (s *mongoStore) ListAlumni(ctx context.Context) ([]models.Alumni, error) {
	return listAll[models.Alumni](ctx, s.alumni())
}

func (s *mongoStore) DeleteAlumni(ctx context.Context, id string) error {
	return deleteOne(ctx, s.alumni(), bson.M{"id": id})
}

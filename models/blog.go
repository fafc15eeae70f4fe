package models

// BlogStatus is the moderation state of a blog post.
type BlogStatus string

const (
	BlogStatusPending  BlogStatus = "pending"
	BlogStatusApproved BlogStatus = "approved"
	BlogStatusRejected BlogStatus = "rejected"
)

// AuthorType identifies which kind of account authored a post or comment.
type AuthorType string

const (
	AuthorStudent AuthorType = "student"
	AuthorFaculty AuthorType = "faculty"
)

// Comment is one entry in a blog post's append-only comment sequence.
type Comment struct {
	ID         string     `json:"id" bson:"id"`
	AuthorName string     `json:"author_name" bson:"author_name"`
	AuthorType AuthorType `json:"author_type" bson:"author_type"`
	Text       string     `json:"text" bson:"text"`
	CreatedAt  string     `json:"created_at" bson:"created_at"`
}

// Blog is a submitted post. Approved mirrors Status for older readers of the
// stored data and must stay consistent with it after every transition.
// Likes holds identity keys ("student:<student_id>" / "faculty:<email>");
// uniqueness is enforced by the toggle logic, not the store.
type Blog struct {
	ID          string     `json:"id" bson:"id"`
	Title       string     `json:"title" bson:"title"`
	Content     string     `json:"content" bson:"content"`
	AuthorName  string     `json:"author_name" bson:"author_name"`
	AuthorType  AuthorType `json:"author_type" bson:"author_type"`
	StudentID   string     `json:"student_id,omitempty" bson:"student_id,omitempty"`
	AuthorClass string     `json:"author_class,omitempty" bson:"author_class,omitempty"`
	AuthorEmail string     `json:"author_email,omitempty" bson:"author_email,omitempty"`
	FileLink    string     `json:"file_link,omitempty" bson:"file_link,omitempty"`
	FilePath    string     `json:"file_path,omitempty" bson:"file_path,omitempty"`
	FileType    string     `json:"file_type,omitempty" bson:"file_type,omitempty"`
	Status      BlogStatus `json:"status" bson:"status"`
	Approved    bool       `json:"approved" bson:"approved"`
	Likes       []string   `json:"likes" bson:"likes"`
	Comments    []Comment  `json:"comments" bson:"comments"`
	CreatedAt   string     `json:"created_at" bson:"created_at"`
	ApprovedAt  string     `json:"approved_at,omitempty" bson:"approved_at,omitempty"`
}

// EffectiveStatus resolves posts stored before the status field existed,
// where only the approved flag was written.
func (b *Blog) EffectiveStatus() BlogStatus {
	if b.Status != "" {
		return b.Status
	}
	if b.Approved {
		return BlogStatusApproved
	}
	return BlogStatusPending
}

package models

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID        string `json:"id" bson:"id"`
	Name      string `json:"name" bson:"name"`
	Email     string `json:"email" bson:"email"`
	Subject   string `json:"subject" bson:"subject"`
	Message   string `json:"message" bson:"message"`
	Read      bool   `json:"read" bson:"read"`
	CreatedAt string `json:"created_at" bson:"created_at"`
}

// Event is a department event. Date is kept as the submitted string; several
// formats are accepted when the upcoming/past split parses it.
type Event struct {
	ID          string `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title"`
	Date        string `json:"date,omitempty" bson:"date,omitempty"`
	Location    string `json:"location,omitempty" bson:"location,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Image       string `json:"image,omitempty" bson:"image,omitempty"`
	Order       int    `json:"order" bson:"order"`
}

// Board selects where an announcement is displayed.
type Board string

const (
	BoardTicker Board = "ticker"
	BoardMain   Board = "board"
	BoardBoth   Board = "both"
)

// Notification is an announcement shown on the ticker and/or main board.
type Notification struct {
	ID        string `json:"id" bson:"id"`
	Title     string `json:"title" bson:"title"`
	Message   string `json:"message" bson:"message"`
	Category  string `json:"category,omitempty" bson:"category,omitempty"`
	Board     Board  `json:"board" bson:"board"`
	Date      string `json:"date,omitempty" bson:"date,omitempty"`
	LinkURL   string `json:"link_url,omitempty" bson:"link_url,omitempty"`
	FilePath  string `json:"file_path,omitempty" bson:"file_path,omitempty"`
	IsActive  *bool  `json:"is_active" bson:"is_active"`
	CreatedAt string `json:"created_at" bson:"created_at"`
}

// GalleryItem is one image in the gallery. The stored image may live in any
// of Image/File/Path depending on when it was uploaded; first non-empty wins.
type GalleryItem struct {
	ID          string `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title"`
	Category    string `json:"category,omitempty" bson:"category,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Image       string `json:"image,omitempty" bson:"image,omitempty"`
	File        string `json:"file,omitempty" bson:"file,omitempty"`
	Path        string `json:"path,omitempty" bson:"path,omitempty"`
	Date        string `json:"date,omitempty" bson:"date,omitempty"`
}

// ResearchPaper is a published paper listing.
type ResearchPaper struct {
	ID          string `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title"`
	Author      string `json:"author,omitempty" bson:"author,omitempty"`
	Category    string `json:"category,omitempty" bson:"category,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Date        string `json:"date,omitempty" bson:"date,omitempty"`
	PDFPath     string `json:"pdf_path,omitempty" bson:"pdf_path,omitempty"`
	PDFLink     string `json:"pdf_link,omitempty" bson:"pdf_link,omitempty"`
}

// CSAMember is a Computer Science Association committee member. A missing
// is_current flag means current.
type CSAMember struct {
	ID        string `json:"id" bson:"id"`
	Name      string `json:"name" bson:"name"`
	Position  string `json:"position,omitempty" bson:"position,omitempty"`
	Year      string `json:"year,omitempty" bson:"year,omitempty"`
	Contact   string `json:"contact,omitempty" bson:"contact,omitempty"`
	Order     int    `json:"order" bson:"order"`
	IsCurrent *bool  `json:"is_current" bson:"is_current"`
}

// PastCSA is an archived committee document for a past year.
type PastCSA struct {
	ID        string `json:"id" bson:"id"`
	Year      string `json:"year" bson:"year"`
	Title     string `json:"title,omitempty" bson:"title,omitempty"`
	PDFPath   string `json:"pdf_path,omitempty" bson:"pdf_path,omitempty"`
	CreatedAt string `json:"created_at" bson:"created_at"`
}

// Curriculum is a syllabus PDF keyed by (degree, year) rather than an id;
// re-uploading the same key replaces the record.
type Curriculum struct {
	Degree     string `json:"degree" bson:"degree"`
	Year       string `json:"year" bson:"year"`
	PDFURL     string `json:"pdf_url" bson:"pdf_url"`
	UploadedAt string `json:"uploaded_at" bson:"uploaded_at"`
}

// Alumni is an alumni testimonial.
type Alumni struct {
	ID        string `json:"id" bson:"id"`
	Name      string `json:"name" bson:"name"`
	Message   string `json:"message" bson:"message"`
	Photo     string `json:"photo,omitempty" bson:"photo,omitempty"`
	CreatedAt string `json:"created_at" bson:"created_at"`
}

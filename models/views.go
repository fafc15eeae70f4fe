package models

import "time"

// BlogView is the presentation shape of a post: counts instead of raw like
// keys, plus the viewer's liked state when an identity was resolved.
type BlogView struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	AuthorName   string     `json:"author_name"`
	AuthorType   AuthorType `json:"author_type"`
	AuthorClass  string     `json:"author_class,omitempty"`
	FileLink     string     `json:"file_link,omitempty"`
	FilePath     string     `json:"file_path,omitempty"`
	FileType     string     `json:"file_type,omitempty"`
	Status       BlogStatus `json:"status"`
	LikeCount    int        `json:"like_count"`
	CommentCount int        `json:"comment_count"`
	Liked        bool       `json:"liked"`
	Comments     []Comment  `json:"comments,omitempty"`
	CreatedAt    string     `json:"created_at"`
	ApprovedAt   string     `json:"approved_at,omitempty"`
}

// NotificationView is an announcement ready for display: only active items,
// date formatted for humans, url resolved from link or attached file.
type NotificationView struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Category string `json:"category"`
	Board    Board  `json:"board"`
	Date     string `json:"date"`
	URL      string `json:"url"`
}

// GalleryView is a gallery item with its image path normalized.
type GalleryView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// GalleryPage buckets gallery items into the sections of the gallery page.
// Items with unrecognized categories appear in no bucket.
type GalleryPage struct {
	EventsSlider []GalleryView `json:"events_slider"`
	EventsCards  []GalleryView `json:"events_cards"`
	TourSlider   []GalleryView `json:"tour_slider"`
	TourCards    []GalleryView `json:"tour_cards"`
}

// EventView carries an event together with its parsed date, when one of the
// accepted formats matched.
type EventView struct {
	Event
	ParsedDate *time.Time `json:"parsed_date,omitempty"`
}

// ResearchView is a paper with display URLs resolved: File points at the
// uploaded PDF, Link prefers an external link over the uploaded file.
type ResearchView struct {
	ResearchPaper
	File string `json:"file,omitempty"`
	Link string `json:"link,omitempty"`
}

// ProfileStats aggregates a user's interactions across all posts.
type ProfileStats struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
}

// DashboardStats backs the admin dashboard cards.
type DashboardStats struct {
	TotalStudents int `json:"total_students"`
	PendingBlogs  int `json:"pending_blogs"`
	TotalContacts int `json:"total_contacts"`
	TotalEvents   int `json:"total_events"`
	TotalFaculty  int `json:"total_faculty"`
}

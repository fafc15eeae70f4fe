package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/mailer"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/models"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/store"
)

const pendingAlertPreviewLen = 300

// BlogSubmission is a new post from a logged-in student or faculty member.
// FilePath is the stored location handed back by the upload collaborator
// (empty when nothing was uploaded); FileLink is an optional external URL.
type BlogSubmission struct {
	Title    string
	Content  string
	FileLink string
	FilePath string
}

// LikeResult reports the state after a like toggle.
type LikeResult struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

// BlogService owns the moderation state machine and all reader interactions
// with posts.
type BlogService interface {
	Submit(ctx context.Context, p models.Principal, in BlogSubmission) (*models.Blog, error)
	ListApproved(ctx context.Context, p models.Principal) ([]models.BlogView, error)
	ListForModeration(ctx context.Context, status models.BlogStatus) ([]models.Blog, error)
	Detail(ctx context.Context, id string, p models.Principal) (*models.BlogView, error)
	ToggleLike(ctx context.Context, id string, p models.Principal) (*LikeResult, error)
	AddComment(ctx context.Context, id string, p models.Principal, text string) (*models.Comment, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	PostsBy(ctx context.Context, p models.Principal) ([]models.BlogView, error)
	Activity(ctx context.Context, p models.Principal) (liked, commented []models.BlogView, err error)
	ProfileStats(ctx context.Context, p models.Principal) (*models.ProfileStats, error)
}

type blogService struct {
	blogs store.BlogStore
	mail  mailer.Mailer
}

// NewBlogService creates a new instance of BlogService.
func NewBlogService(blogs store.BlogStore, mail mailer.Mailer) BlogService {
	return &blogService{blogs: blogs, mail: mail}
}

var imageExtensions = map[string]bool{
	"jpg": true, "jpeg": true, "png": true, "gif": true, "webp": true, "svg": true,
}

func extensionOf(path string) string {
	idx := strings.LastIndex(path, ".")
	if idx < 0 || idx == len(path)-1 {
		return ""
	}
	return strings.ToLower(path[idx+1:])
}

// inferFileType classifies an attachment for the templates: uploaded files
// become pdf/image/file, bare links become pdf/image/link.
func inferFileType(filePath, fileLink string) string {
	if filePath != "" {
		switch ext := extensionOf(filePath); {
		case ext == "pdf":
			return "pdf"
		case imageExtensions[ext]:
			return "image"
		default:
			return "file"
		}
	}
	if fileLink != "" {
		switch ext := extensionOf(strings.ToLower(fileLink)); {
		case ext == "pdf":
			return "pdf"
		case imageExtensions[ext]:
			return "image"
		default:
			return "link"
		}
	}
	return ""
}

func blogView(b *models.Blog, likeKey string, includeComments bool) models.BlogView {
	v := models.BlogView{
		ID:           b.ID,
		Title:        b.Title,
		Content:      b.Content,
		AuthorName:   b.AuthorName,
		AuthorType:   b.AuthorType,
		AuthorClass:  b.AuthorClass,
		FileLink:     b.FileLink,
		FilePath:     b.FilePath,
		FileType:     b.FileType,
		Status:       b.EffectiveStatus(),
		LikeCount:    len(b.Likes),
		CommentCount: len(b.Comments),
		CreatedAt:    b.CreatedAt,
		ApprovedAt:   b.ApprovedAt,
	}
	if likeKey != "" {
		for _, k := range b.Likes {
			if k == likeKey {
				v.Liked = true
				break
			}
		}
	}
	if includeComments {
		v.Comments = b.Comments
	}
	return v
}

// Submit stores a new post in pending state and alerts the admin mailbox.
// The alert is best effort; submission succeeds regardless.
func (s *blogService) Submit(ctx context.Context, p models.Principal, in BlogSubmission) (*models.Blog, error) {
	if p.Role != models.RoleStudent && p.Role != models.RoleFaculty {
		return nil, ErrAuthorization("Please login (student or faculty) to submit a blog.")
	}
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	fileLink := strings.TrimSpace(in.FileLink)
	if title == "" || content == "" {
		return nil, ErrValidation("Title and content are required.")
	}

	blog := &models.Blog{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		FileLink:  fileLink,
		FilePath:  in.FilePath,
		FileType:  inferFileType(in.FilePath, fileLink),
		Status:    models.BlogStatusPending,
		Approved:  false,
		Likes:     []string{},
		Comments:  []models.Comment{},
		CreatedAt: nowISO(),
	}
	if p.Role == models.RoleStudent {
		blog.AuthorType = models.AuthorStudent
		blog.AuthorName = p.Student.Name
		blog.StudentID = p.Student.StudentID
		blog.AuthorClass = p.Student.Class
		blog.AuthorEmail = p.Student.Email
	} else {
		blog.AuthorType = models.AuthorFaculty
		blog.AuthorName = p.Faculty.Name
		blog.AuthorEmail = p.Faculty.Email
	}

	if err := s.blogs.AddBlog(ctx, blog); err != nil {
		log.Printf("ERROR: [BlogService] Failed to store submission %q: %v", title, err)
		return nil, ErrBackend("blog submission", err)
	}
	log.Printf("INFO: [BlogService] Blog %s submitted by %s (%s), pending approval", blog.ID, blog.AuthorName, blog.AuthorType)

	preview := content
	if len(preview) > pendingAlertPreviewLen {
		preview = preview[:pendingAlertPreviewLen]
	}
	if err := s.mail.SendBlogPendingAlert(title, blog.AuthorName, string(blog.AuthorType), blog.AuthorEmail, preview); err != nil {
		log.Printf("ERROR: [BlogService] Failed to send blog notification email: %v", err)
	}
	return blog, nil
}

// ListApproved returns the public listing, newest data as stored; the
// viewer's liked flag is resolved when an identity is present.
func (s *blogService) ListApproved(ctx context.Context, p models.Principal) ([]models.BlogView, error) {
	blogs, err := s.blogs.ListBlogs(ctx, store.BlogFilter{ApprovedOnly: true})
	if err != nil {
		log.Printf("ERROR: [BlogService] Failed to list approved blogs: %v", err)
		return nil, ErrBackend("blog listing", err)
	}
	likeKey, _ := p.IdentityKey()
	views := make([]models.BlogView, 0, len(blogs))
	for i := range blogs {
		views = append(views, blogView(&blogs[i], likeKey, false))
	}
	return views, nil
}

// ListForModeration returns posts for the admin screens; empty status means
// all posts.
func (s *blogService) ListForModeration(ctx context.Context, status models.BlogStatus) ([]models.Blog, error) {
	blogs, err := s.blogs.ListBlogs(ctx, store.BlogFilter{Status: status})
	if err != nil {
		log.Printf("ERROR: [BlogService] Failed to list blogs for moderation: %v", err)
		return nil, ErrBackend("blog listing", err)
	}
	return blogs, nil
}

// Detail returns one approved post with its comments. Unapproved posts are
// reported as not found so unpublished content cannot be probed.
func (s *blogService) Detail(ctx context.Context, id string, p models.Principal) (*models.BlogView, error) {
	blog, err := s.getApproved(ctx, id)
	if err != nil {
		return nil, err
	}
	likeKey, _ := p.IdentityKey()
	v := blogView(blog, likeKey, true)
	return &v, nil
}

func (s *blogService) getApproved(ctx context.Context, id string) (*models.Blog, error) {
	blog, err := s.blogs.GetBlog(ctx, id)
	if err != nil {
		log.Printf("ERROR: [BlogService] Failed to fetch blog %s: %v", id, err)
		return nil, ErrBackend("blog fetch", err)
	}
	if blog == nil || blog.EffectiveStatus() != models.BlogStatusApproved {
		return nil, ErrNotFound("Post not found.")
	}
	return blog, nil
}

// ToggleLike flips the caller's like on an approved post: present → removed,
// absent → appended. Toggling twice restores the original state.
func (s *blogService) ToggleLike(ctx context.Context, id string, p models.Principal) (*LikeResult, error) {
	likeKey, ok := p.IdentityKey()
	if !ok {
		return nil, ErrAuthorization("Please login to like posts.")
	}
	blog, err := s.getApproved(ctx, id)
	if err != nil {
		return nil, err
	}

	likes := make([]string, 0, len(blog.Likes)+1)
	liked := true
	for _, k := range blog.Likes {
		if k == likeKey {
			liked = false
			continue
		}
		likes = append(likes, k)
	}
	if liked {
		likes = append(likes, likeKey)
	}

	if err := s.blogs.UpdateBlog(ctx, id, store.Changes{"likes": likes}); err != nil {
		log.Printf("ERROR: [BlogService] Failed to update likes on blog %s: %v", id, err)
		return nil, ErrBackend("like toggle", err)
	}
	return &LikeResult{Liked: liked, LikeCount: len(likes)}, nil
}

// AddComment appends a comment to an approved post. The submitted text is
// stored verbatim apart from surrounding whitespace.
func (s *blogService) AddComment(ctx context.Context, id string, p models.Principal, text string) (*models.Comment, error) {
	if _, ok := p.IdentityKey(); !ok {
		return nil, ErrAuthorization("Please login to comment.")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrValidation("Comment text is required.")
	}
	blog, err := s.getApproved(ctx, id)
	if err != nil {
		return nil, err
	}

	var authorType models.AuthorType
	if p.Role == models.RoleStudent {
		authorType = models.AuthorStudent
	} else {
		authorType = models.AuthorFaculty
	}
	comment := models.Comment{
		ID:         uuid.New().String(),
		AuthorName: p.DisplayName(),
		AuthorType: authorType,
		Text:       text,
		CreatedAt:  nowISO(),
	}
	comments := append(blog.Comments, comment)
	if err := s.blogs.UpdateBlog(ctx, id, store.Changes{"comments": comments}); err != nil {
		log.Printf("ERROR: [BlogService] Failed to append comment on blog %s: %v", id, err)
		return nil, ErrBackend("comment append", err)
	}
	return &comment, nil
}

// Approve publishes a pending post: status and the legacy approved flag move
// together, the approval time is stamped, and the author is notified by
// mail. A mail failure is logged and never rolls back the approval.
func (s *blogService) Approve(ctx context.Context, id string) error {
	changes := store.Changes{
		"status":      models.BlogStatusApproved,
		"approved":    true,
		"approved_at": nowISO(),
	}
	if err := s.blogs.UpdateBlog(ctx, id, changes); err != nil {
		if err == store.ErrNotFound {
			return ErrNotFound("Post not found.")
		}
		log.Printf("ERROR: [BlogService] Failed to approve blog %s: %v", id, err)
		return ErrBackend("blog approval", err)
	}
	log.Printf("INFO: [BlogService] Blog %s approved", id)

	blog, err := s.blogs.GetBlog(ctx, id)
	if err != nil || blog == nil {
		log.Printf("WARN: [BlogService] Could not fetch blog %s for approval notice: %v", id, err)
		return nil
	}
	authorName := blog.AuthorName
	if authorName == "" {
		authorName = "Author"
	}
	if err := s.mail.SendBlogApproved(blog.AuthorEmail, authorName, blog.Title); err != nil {
		log.Printf("ERROR: [BlogService] Failed to send blog approval email: %v", err)
	}
	return nil
}

// Reject marks a pending post rejected; no notification is sent.
func (s *blogService) Reject(ctx context.Context, id string) error {
	changes := store.Changes{"status": models.BlogStatusRejected, "approved": false}
	if err := s.blogs.UpdateBlog(ctx, id, changes); err != nil {
		if err == store.ErrNotFound {
			return ErrNotFound("Post not found.")
		}
		log.Printf("ERROR: [BlogService] Failed to reject blog %s: %v", id, err)
		return ErrBackend("blog rejection", err)
	}
	log.Printf("INFO: [BlogService] Blog %s rejected", id)
	return nil
}

// Delete removes a post in any state; deleting an absent post succeeds.
func (s *blogService) Delete(ctx context.Context, id string) error {
	if err := s.blogs.DeleteBlog(ctx, id); err != nil {
		log.Printf("ERROR: [BlogService] Failed to delete blog %s: %v", id, err)
		return ErrBackend("blog deletion", err)
	}
	log.Printf("INFO: [BlogService] Blog %s deleted", id)
	return nil
}

// PostsBy lists the caller's own posts in every state, so authors can see
// pending and rejected submissions.
func (s *blogService) PostsBy(ctx context.Context, p models.Principal) ([]models.BlogView, error) {
	if p.Role != models.RoleStudent && p.Role != models.RoleFaculty {
		return nil, ErrAuthorization("Please login to view your posts.")
	}
	blogs, err := s.blogs.ListBlogs(ctx, store.BlogFilter{})
	if err != nil {
		log.Printf("ERROR: [BlogService] Failed to list blogs for author: %v", err)
		return nil, ErrBackend("blog listing", err)
	}
	likeKey, _ := p.IdentityKey()
	var views []models.BlogView
	for i := range blogs {
		b := &blogs[i]
		if p.Role == models.RoleStudent {
			if b.StudentID != p.Student.StudentID {
				continue
			}
		} else if b.AuthorEmail != p.Faculty.Email || b.AuthorType != models.AuthorFaculty {
			continue
		}
		views = append(views, blogView(b, likeKey, false))
	}
	return views, nil
}

// Activity lists the posts the caller liked and the posts they commented on
// (each post once). Comment attribution matches on the stored author name,
// as recorded at comment time.
func (s *blogService) Activity(ctx context.Context, p models.Principal) (liked, commented []models.BlogView, err error) {
	likeKey, ok := p.IdentityKey()
	if !ok {
		return nil, nil, ErrAuthorization("Please login to view your activity.")
	}
	blogs, lerr := s.blogs.ListBlogs(ctx, store.BlogFilter{})
	if lerr != nil {
		log.Printf("ERROR: [BlogService] Failed to list blogs for activity: %v", lerr)
		return nil, nil, ErrBackend("blog listing", lerr)
	}
	name := p.DisplayName()
	seen := map[string]bool{}
	for i := range blogs {
		b := &blogs[i]
		for _, k := range b.Likes {
			if k == likeKey {
				liked = append(liked, blogView(b, likeKey, false))
				break
			}
		}
		for _, c := range b.Comments {
			if c.AuthorName == name && !seen[b.ID] {
				commented = append(commented, blogView(b, likeKey, false))
				seen[b.ID] = true
			}
		}
	}
	return liked, commented, nil
}

// ProfileStats counts the likes the caller has given and the comments they
// have made across all posts.
func (s *blogService) ProfileStats(ctx context.Context, p models.Principal) (*models.ProfileStats, error) {
	likeKey, ok := p.IdentityKey()
	if !ok {
		return nil, ErrAuthorization("Please login to view your profile.")
	}
	blogs, err := s.blogs.ListBlogs(ctx, store.BlogFilter{})
	if err != nil {
		log.Printf("ERROR: [BlogService] Failed to list blogs for profile stats: %v", err)
		return nil, ErrBackend("blog listing", err)
	}
	name := p.DisplayName()
	stats := &models.ProfileStats{}
	for i := range blogs {
		for _, k := range blogs[i].Likes {
			if k == likeKey {
				stats.Likes++
				break
			}
		}
		for _, c := range blogs[i].Comments {
			if c.AuthorName == name {
				stats.Comments++
			}
		}
	}
	return stats, nil
}

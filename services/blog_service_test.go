package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/models"
)

func studentPrincipal() models.Principal {
	return models.AsStudent(models.StudentSession{
		ID: "s1", Name: "Asha Patil", StudentID: "CS101", Email: "asha@example.com", Class: "TYBSc",
	})
}

func facultyPrincipal() models.Principal {
	return models.AsFaculty(models.FacultySession{
		ID: "f1", Name: "Dr. Rao", Email: "rao@example.com",
	})
}

func TestSubmitBlog(t *testing.T) {
	ctx := context.Background()

	t.Run("AnonymousRejected", func(t *testing.T) {
		svc := NewBlogService(newTestStore(t), silentMailer())
		_, err := svc.Submit(ctx, models.Anonymous(), BlogSubmission{Title: "T", Content: "C"})
		require.Error(t, err)
		assert.Equal(t, KindAuthorization, KindOf(err))
		assert.EqualError(t, err, "Please login (student or faculty) to submit a blog.")
	})

	t.Run("TitleAndContentRequired", func(t *testing.T) {
		svc := NewBlogService(newTestStore(t), silentMailer())
		_, err := svc.Submit(ctx, studentPrincipal(), BlogSubmission{Title: "  ", Content: "C"})
		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
		assert.EqualError(t, err, "Title and content are required.")
	})

	t.Run("StartsPendingWithAuthorSnapshot", func(t *testing.T) {
		st := newTestStore(t)
		svc := NewBlogService(st, silentMailer())
		blog, err := svc.Submit(ctx, studentPrincipal(), BlogSubmission{Title: "My Post", Content: "Hello"})
		require.NoError(t, err)
		assert.Equal(t, models.BlogStatusPending, blog.Status)
		assert.False(t, blog.Approved)
		assert.Equal(t, models.AuthorStudent, blog.AuthorType)
		assert.Equal(t, "Asha Patil", blog.AuthorName)
		assert.Equal(t, "CS101", blog.StudentID)
		assert.Equal(t, "TYBSc", blog.AuthorClass)
	})

	t.Run("FileTypeInference", func(t *testing.T) {
		st := newTestStore(t)
		svc := NewBlogService(st, silentMailer())

		pdf, err := svc.Submit(ctx, studentPrincipal(), BlogSubmission{Title: "A", Content: "B", FilePath: "/uploads/x.pdf"})
		require.NoError(t, err)
		assert.Equal(t, "pdf", pdf.FileType)

		img, err := svc.Submit(ctx, studentPrincipal(), BlogSubmission{Title: "A", Content: "B", FilePath: "/uploads/x.PNG"})
		require.NoError(t, err)
		assert.Equal(t, "image", img.FileType)

		link, err := svc.Submit(ctx, studentPrincipal(), BlogSubmission{Title: "A", Content: "B", FileLink: "https://example.com/page"})
		require.NoError(t, err)
		assert.Equal(t, "link", link.FileType)
	})

	t.Run("AdminAlertFailureDoesNotFailSubmission", func(t *testing.T) {
		st := newTestStore(t)
		mail := &MockMailer{}
		mail.On("SendBlogPendingAlert", "My Post", "Asha Patil", "student", "asha@example.com", mock.Anything).
			Return(errors.New("smtp down"))
		svc := NewBlogService(st, mail)

		blog, err := svc.Submit(ctx, studentPrincipal(), BlogSubmission{Title: "My Post", Content: "Hello"})
		require.NoError(t, err)
		stored, err := st.GetBlog(ctx, blog.ID)
		require.NoError(t, err)
		assert.NotNil(t, stored)
		mail.AssertExpectations(t)
	})
}

func TestModerationLifecycle(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mail := silentMailer()
	svc := NewBlogService(st, mail)

	blog, err := svc.Submit(ctx, studentPrincipal(), BlogSubmission{Title: "My Post", Content: "Hello"})
	require.NoError(t, err)

	t.Run("PendingPostIsInvisible", func(t *testing.T) {
		views, err := svc.ListApproved(ctx, models.Anonymous())
		require.NoError(t, err)
		assert.Empty(t, views)

		_, err = svc.Detail(ctx, blog.ID, models.Anonymous())
		require.Error(t, err)
		assert.Equal(t, KindNotFound, KindOf(err))
	})

	t.Run("ApproveStampsStatusFlagAndTime", func(t *testing.T) {
		require.NoError(t, svc.Approve(ctx, blog.ID))

		stored, err := st.GetBlog(ctx, blog.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, models.BlogStatusApproved, stored.Status)
		assert.True(t, stored.Approved)
		assert.NotEmpty(t, stored.ApprovedAt)
	})

	t.Run("ApprovedPostIsPublic", func(t *testing.T) {
		views, err := svc.ListApproved(ctx, models.Anonymous())
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, blog.ID, views[0].ID)
	})

	t.Run("RejectClearsApprovedFlag", func(t *testing.T) {
		other, err := svc.Submit(ctx, facultyPrincipal(), BlogSubmission{Title: "Other", Content: "Text"})
		require.NoError(t, err)
		require.NoError(t, svc.Reject(ctx, other.ID))

		stored, err := st.GetBlog(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, models.BlogStatusRejected, stored.Status)
		assert.False(t, stored.Approved)
	})

	t.Run("ApproveAbsentPost", func(t *testing.T) {
		err := svc.Approve(ctx, "missing")
		require.Error(t, err)
		assert.Equal(t, KindNotFound, KindOf(err))
	})

	t.Run("DeleteIsIdempotent", func(t *testing.T) {
		assert.NoError(t, svc.Delete(ctx, blog.ID))
		assert.NoError(t, svc.Delete(ctx, blog.ID))
	})
}

func TestApprovalMailFailureDoesNotRollBack(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mail := &MockMailer{}
	mail.On("SendBlogPendingAlert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mail.On("SendBlogApproved", "asha@example.com", "Asha Patil", "My Post").Return(errors.New("smtp down"))
	svc := NewBlogService(st, mail)

	blog, err := svc.Submit(ctx, studentPrincipal(), BlogSubmission{Title: "My Post", Content: "Hello"})
	require.NoError(t, err)

	require.NoError(t, svc.Approve(ctx, blog.ID))

	stored, err := st.GetBlog(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BlogStatusApproved, stored.Status)
	mail.AssertExpectations(t)
}

func TestToggleLike(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewBlogService(st, silentMailer())

	blog, err := svc.Submit(ctx, studentPrincipal(), BlogSubmission{Title: "My Post", Content: "Hello"})
	require.NoError(t, err)
	require.NoError(t, svc.Approve(ctx, blog.ID))

	t.Run("AnonymousRejectedWithoutSideEffects", func(t *testing.T) {
		_, err := svc.ToggleLike(ctx, blog.ID, models.Anonymous())
		require.Error(t, err)
		assert.Equal(t, KindAuthorization, KindOf(err))
		assert.EqualError(t, err, "Please login to like posts.")

		stored, err := st.GetBlog(ctx, blog.ID)
		require.NoError(t, err)
		assert.Empty(t, stored.Likes)
	})

	t.Run("ToggleIsInvolutive", func(t *testing.T) {
		on, err := svc.ToggleLike(ctx, blog.ID, studentPrincipal())
		require.NoError(t, err)
		assert.True(t, on.Liked)
		assert.Equal(t, 1, on.LikeCount)

		off, err := svc.ToggleLike(ctx, blog.ID, studentPrincipal())
		require.NoError(t, err)
		assert.False(t, off.Liked)
		assert.Equal(t, 0, off.LikeCount)

		stored, err := st.GetBlog(ctx, blog.ID)
		require.NoError(t, err)
		assert.Empty(t, stored.Likes)
	})

	t.Run("StudentAndFacultyKeysAreDistinct", func(t *testing.T) {
		_, err := svc.ToggleLike(ctx, blog.ID, studentPrincipal())
		require.NoError(t, err)
		result, err := svc.ToggleLike(ctx, blog.ID, facultyPrincipal())
		require.NoError(t, err)
		assert.Equal(t, 2, result.LikeCount)

		stored, err := st.GetBlog(ctx, blog.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"student:CS101", "faculty:rao@example.com"}, stored.Likes)
	})

	t.Run("UnapprovedPostReadsAsNotFound", func(t *testing.T) {
		pending, err := svc.Submit(ctx, studentPrincipal(), BlogSubmission{Title: "Pending", Content: "X"})
		require.NoError(t, err)
		_, err = svc.ToggleLike(ctx, pending.ID, studentPrincipal())
		require.Error(t, err)
		assert.Equal(t, KindNotFound, KindOf(err))
		assert.EqualError(t, err, "Post not found.")
	})
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewBlogService(st, silentMailer())

	blog, err := svc.Submit(ctx, studentPrincipal(), BlogSubmission{Title: "My Post", Content: "Hello"})
	require.NoError(t, err)
	require.NoError(t, svc.Approve(ctx, blog.ID))

	t.Run("AnonymousRejected", func(t *testing.T) {
		_, err := svc.AddComment(ctx, blog.ID, models.Anonymous(), "hi")
		require.Error(t, err)
		assert.EqualError(t, err, "Please login to comment.")
	})

	t.Run("EmptyTextRejected", func(t *testing.T) {
		_, err := svc.AddComment(ctx, blog.ID, studentPrincipal(), "   ")
		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
	})

	t.Run("CommentsAppendInOrderAndVerbatim", func(t *testing.T) {
		first, err := svc.AddComment(ctx, blog.ID, studentPrincipal(), "first comment")
		require.NoError(t, err)
		assert.Equal(t, "Asha Patil", first.AuthorName)
		assert.Equal(t, models.AuthorStudent, first.AuthorType)

		_, err = svc.AddComment(ctx, blog.ID, facultyPrincipal(), "second comment")
		require.NoError(t, err)

		view, err := svc.Detail(ctx, blog.ID, studentPrincipal())
		require.NoError(t, err)
		require.Len(t, view.Comments, 2)
		assert.Equal(t, "first comment", view.Comments[0].Text)
		assert.Equal(t, "second comment", view.Comments[1].Text)
		assert.Equal(t, 2, view.CommentCount)
	})
}

func TestAuthorAndActivityViews(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewBlogService(st, silentMailer())

	mine, err := svc.Submit(ctx, studentPrincipal(), BlogSubmission{Title: "Mine", Content: "X"})
	require.NoError(t, err)
	theirs, err := svc.Submit(ctx, facultyPrincipal(), BlogSubmission{Title: "Theirs", Content: "Y"})
	require.NoError(t, err)
	require.NoError(t, svc.Approve(ctx, theirs.ID))

	t.Run("PostsByIncludesPendingOwnPosts", func(t *testing.T) {
		views, err := svc.PostsBy(ctx, studentPrincipal())
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, mine.ID, views[0].ID)
		assert.Equal(t, models.BlogStatusPending, views[0].Status)
	})

	t.Run("ActivityAndStats", func(t *testing.T) {
		_, err := svc.ToggleLike(ctx, theirs.ID, studentPrincipal())
		require.NoError(t, err)
		_, err = svc.AddComment(ctx, theirs.ID, studentPrincipal(), "nice")
		require.NoError(t, err)

		liked, commented, err := svc.Activity(ctx, studentPrincipal())
		require.NoError(t, err)
		require.Len(t, liked, 1)
		assert.Equal(t, theirs.ID, liked[0].ID)
		require.Len(t, commented, 1)
		assert.Equal(t, theirs.ID, commented[0].ID)

		stats, err := svc.ProfileStats(ctx, studentPrincipal())
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Likes)
		assert.Equal(t, 1, stats.Comments)
	})
}

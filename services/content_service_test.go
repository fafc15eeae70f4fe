package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/models"
)

func TestActiveNotifications(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewContentService(st, silentMailer())

	require.NoError(t, st.AddNotification(ctx, &models.Notification{
		ID: "n1", Title: "Exam schedule", Board: models.BoardTicker, Date: "2026-03-15",
		LinkURL: "https://example.com/exams", IsActive: models.BoolPtr(true),
	}))
	require.NoError(t, st.AddNotification(ctx, &models.Notification{
		ID: "n2", Title: "Holiday notice", Board: models.BoardMain,
		FilePath: "/uploads/holiday.pdf", IsActive: models.BoolPtr(true),
	}))
	require.NoError(t, st.AddNotification(ctx, &models.Notification{
		ID: "n3", Title: "Old news", Board: models.BoardBoth, IsActive: models.BoolPtr(false),
	}))
	// Record written before the is_active flag existed; counts as active.
	require.NoError(t, st.AddNotification(ctx, &models.Notification{
		ID: "n4", Title: "Legacy", Board: models.BoardBoth,
	}))

	t.Run("InactiveFilteredOut", func(t *testing.T) {
		views, err := svc.ActiveNotifications(ctx, "")
		require.NoError(t, err)
		ids := make([]string, 0, len(views))
		for _, v := range views {
			ids = append(ids, v.ID)
		}
		assert.ElementsMatch(t, []string{"n1", "n2", "n4"}, ids)
	})

	t.Run("BoardFilterAdmitsBoth", func(t *testing.T) {
		views, err := svc.ActiveNotifications(ctx, models.BoardTicker)
		require.NoError(t, err)
		ids := make([]string, 0, len(views))
		for _, v := range views {
			ids = append(ids, v.ID)
		}
		assert.ElementsMatch(t, []string{"n1", "n4"}, ids)
	})

	t.Run("URLPrefersLinkOverFile", func(t *testing.T) {
		views, err := svc.ActiveNotifications(ctx, "")
		require.NoError(t, err)
		byID := map[string]models.NotificationView{}
		for _, v := range views {
			byID[v.ID] = v
		}
		assert.Equal(t, "https://example.com/exams", byID["n1"].URL)
		assert.Equal(t, "/uploads/holiday.pdf", byID["n2"].URL)
	})

	t.Run("DateFormattingWithFallback", func(t *testing.T) {
		views, err := svc.ActiveNotifications(ctx, "")
		require.NoError(t, err)
		byID := map[string]models.NotificationView{}
		for _, v := range views {
			byID[v.ID] = v
		}
		assert.Equal(t, "15 Mar 2026", byID["n1"].Date)
		// No date and no parseable created_at.
		assert.Equal(t, "Notification", byID["n4"].Date)
	})

	t.Run("ToggleFlipsState", func(t *testing.T) {
		active, err := svc.ToggleNotification(ctx, "n1")
		require.NoError(t, err)
		assert.False(t, active)

		views, err := svc.ActiveNotifications(ctx, "")
		require.NoError(t, err)
		for _, v := range views {
			assert.NotEqual(t, "n1", v.ID)
		}

		active, err = svc.ToggleNotification(ctx, "n1")
		require.NoError(t, err)
		assert.True(t, active)
	})
}

func TestGalleryBuckets(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewContentService(st, silentMailer())

	require.NoError(t, st.AddGalleryItem(ctx, &models.GalleryItem{ID: "g1", Category: "events_gallery_slider", Image: "fest.jpg"}))
	require.NoError(t, st.AddGalleryItem(ctx, &models.GalleryItem{ID: "g2", Category: "events_gallery_cards", File: "/uploads/card.jpg"}))
	require.NoError(t, st.AddGalleryItem(ctx, &models.GalleryItem{ID: "g3", Category: "industrial_tour", Path: "tour.png"}))
	require.NoError(t, st.AddGalleryItem(ctx, &models.GalleryItem{ID: "g4", Category: "industrial_tour_cards", Image: "https://cdn.example.com/t.png"}))
	require.NoError(t, st.AddGalleryItem(ctx, &models.GalleryItem{ID: "g5", Category: "infrastructure", Image: "lab.jpg"}))

	t.Run("BucketingDropsUnknownCategories", func(t *testing.T) {
		page, err := svc.GalleryPage(ctx)
		require.NoError(t, err)
		require.Len(t, page.EventsSlider, 1)
		assert.Equal(t, "g1", page.EventsSlider[0].ID)
		require.Len(t, page.EventsCards, 1)
		require.Len(t, page.TourSlider, 1)
		assert.Equal(t, "g3", page.TourSlider[0].ID)
		require.Len(t, page.TourCards, 1)
		total := len(page.EventsSlider) + len(page.EventsCards) + len(page.TourSlider) + len(page.TourCards)
		assert.Equal(t, 4, total, "infrastructure item belongs to no bucket")
	})

	t.Run("ImageNormalization", func(t *testing.T) {
		page, err := svc.GalleryPage(ctx)
		require.NoError(t, err)
		assert.Equal(t, "/uploads/fest.jpg", page.EventsSlider[0].Image)
		assert.Equal(t, "/uploads/card.jpg", page.EventsCards[0].Image)
		assert.Equal(t, "/uploads/tour.png", page.TourSlider[0].Image)
		assert.Equal(t, "https://cdn.example.com/t.png", page.TourCards[0].Image)
	})

	t.Run("ListFiltersByExactCategory", func(t *testing.T) {
		views, err := svc.GalleryList(ctx, "infrastructure")
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "g5", views[0].ID)
		assert.Equal(t, "/uploads/lab.jpg", views[0].Image)
	})
}

func TestSplitEvents(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewContentService(st, silentMailer())

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, st.AddEvent(ctx, &models.Event{ID: "past1", Title: "Old workshop", Date: "2020-01-01"}))
	require.NoError(t, st.AddEvent(ctx, &models.Event{ID: "up2", Title: "Far seminar", Date: "2099-01-01"}))
	require.NoError(t, st.AddEvent(ctx, &models.Event{ID: "up1", Title: "Near talk", Date: "2026-07-01T10:00"}))
	require.NoError(t, st.AddEvent(ctx, &models.Event{ID: "past2", Title: "Recent fest", Date: "2026-05-20 09:00"}))
	require.NoError(t, st.AddEvent(ctx, &models.Event{ID: "undated", Title: "No date"}))

	upcoming, past, err := svc.SplitEvents(ctx, now)
	require.NoError(t, err)

	t.Run("UpcomingSortedSoonestFirst", func(t *testing.T) {
		require.Len(t, upcoming, 2)
		assert.Equal(t, "up1", upcoming[0].ID)
		assert.Equal(t, "up2", upcoming[1].ID)
	})

	t.Run("UndatedCountsAsPast", func(t *testing.T) {
		ids := make([]string, 0, len(past))
		for _, e := range past {
			ids = append(ids, e.ID)
		}
		assert.ElementsMatch(t, []string{"past1", "past2", "undated"}, ids)
	})

	t.Run("PastSortedMostRecentFirst", func(t *testing.T) {
		// The undated entry sorts as "now", ahead of both dated past events.
		require.Len(t, past, 3)
		assert.Equal(t, "undated", past[0].ID)
		assert.Equal(t, "past2", past[1].ID)
		assert.Equal(t, "past1", past[2].ID)
	})
}

func TestResearchList(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewContentService(st, silentMailer())

	require.NoError(t, st.AddResearch(ctx, &models.ResearchPaper{ID: "r1", Title: "Uploaded", PDFPath: "/uploads/paper.pdf"}))
	require.NoError(t, st.AddResearch(ctx, &models.ResearchPaper{ID: "r2", Title: "Linked", PDFPath: "/uploads/old.pdf", PDFLink: "https://doi.example.com/x"}))

	views, err := svc.ResearchList(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)

	// File URLs stay on the /uploads route the server serves them from.
	assert.Equal(t, "/uploads/paper.pdf", views[0].File)
	assert.Equal(t, "/uploads/paper.pdf", views[0].Link, "link falls back to the uploaded file")
	assert.Equal(t, "https://doi.example.com/x", views[1].Link, "external link wins")
}

func TestCurrentCSAMembers(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewContentService(st, silentMailer())

	require.NoError(t, st.AddCSAMember(ctx, &models.CSAMember{ID: "m1", Name: "Secretary", Order: 2}))
	require.NoError(t, st.AddCSAMember(ctx, &models.CSAMember{ID: "m2", Name: "President", Order: 1, IsCurrent: models.BoolPtr(true)}))
	require.NoError(t, st.AddCSAMember(ctx, &models.CSAMember{ID: "m3", Name: "Alumnus", Order: 0, IsCurrent: models.BoolPtr(false)}))

	members, err := svc.CurrentCSAMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "President", members[0].Name)
	assert.Equal(t, "Secretary", members[1].Name)
}

func TestSubmitContact(t *testing.T) {
	ctx := context.Background()

	t.Run("AllFieldsRequired", func(t *testing.T) {
		svc := NewContentService(newTestStore(t), silentMailer())
		err := svc.SubmitContact(ctx, ContactInput{Name: "A", Email: "a@example.com", Subject: "", Message: "hi"})
		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
		assert.EqualError(t, err, "All fields are required.")
	})

	t.Run("StoredUnreadAndMailFailureSwallowed", func(t *testing.T) {
		st := newTestStore(t)
		mail := &MockMailer{}
		mail.On("SendContactNotice", "Asha", "asha@example.com", "Admission", "Query text").Return(errors.New("smtp down"))
		mail.On("SendContactThanks", "asha@example.com", "Asha", "Admission", "Query text").Return(errors.New("smtp down"))
		svc := NewContentService(st, mail)

		err := svc.SubmitContact(ctx, ContactInput{Name: "Asha", Email: "asha@example.com", Subject: "Admission", Message: "Query text"})
		require.NoError(t, err)

		contacts, err := st.ListContacts(ctx)
		require.NoError(t, err)
		require.Len(t, contacts, 1)
		assert.False(t, contacts[0].Read)
		mail.AssertExpectations(t)
	})
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewContentService(st, silentMailer())
	blogSvc := NewBlogService(st, silentMailer())

	for i := 0; i < 7; i++ {
		require.NoError(t, st.AddContact(ctx, &models.Contact{
			ID:        string(rune('a' + i)),
			Name:      "C",
			Email:     "c@example.com",
			Subject:   "S",
			Message:   "M",
			CreatedAt: time.Date(2026, 1, 1+i, 0, 0, 0, 0, time.UTC).Format(time.RFC3339),
		}))
	}
	_, err := blogSvc.Submit(ctx, studentPrincipal(), BlogSubmission{Title: "P1", Content: "X"})
	require.NoError(t, err)

	summary, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 7, summary.Stats.TotalContacts)
	assert.Equal(t, 1, summary.Stats.PendingBlogs)
	require.Len(t, summary.RecentContacts, 5)
	// Newest first.
	assert.Equal(t, "g", summary.RecentContacts[0].ID)
	require.Len(t, summary.PendingBlogs, 1)
}

func TestToggleStudentActive(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewContentService(st, silentMailer())

	require.NoError(t, st.AddStudent(ctx, &models.Student{ID: "s1", Name: "Asha", StudentID: "CS101", Email: "a@example.com"}))

	active, err := svc.ToggleStudentActive(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, active, "missing flag reads as active, so the first toggle deactivates")

	active, err = svc.ToggleStudentActive(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, active)

	_, err = svc.ToggleStudentActive(ctx, "missing")
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestUploadCurriculum(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewContentService(st, silentMailer())

	require.NoError(t, svc.UploadCurriculum(ctx, "BSc", "FY", "/uploads/a.pdf"))
	require.NoError(t, svc.UploadCurriculum(ctx, "BSc", "FY", "/uploads/b.pdf"))

	items, err := st.ListCurriculum(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "/uploads/b.pdf", items[0].PDFURL)
	assert.NotEmpty(t, items[0].UploadedAt)

	err = svc.UploadCurriculum(ctx, "", "FY", "/uploads/a.pdf")
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}

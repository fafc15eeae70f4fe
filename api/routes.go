package api

import (
	"github.com/gin-gonic/gin"

	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/middleware"
)

// RegisterRoutes attaches the full HTTP surface to the engine.
func RegisterRoutes(r *gin.Engine, h *APIHandler) {
	// Uploaded files are served straight from the upload folder.
	r.Static("/uploads", h.cfg.Upload.Folder)

	api := r.Group("/api")
	{
		// Public content.
		api.GET("/notifications", h.NotificationsHandler)
		api.GET("/gallery", h.GalleryHandler)
		api.GET("/gallery/page", h.GalleryPageHandler)
		api.GET("/events", h.EventsHandler)
		api.GET("/research", h.ResearchHandler)
		api.GET("/faculty", h.FacultyListHandler)
		api.GET("/csa", h.CSAHandler)
		api.GET("/curriculum", h.CurriculumHandler)
		api.GET("/alumni", h.AlumniHandler)
		api.POST("/contact", h.ContactHandler)

		// Accounts and sessions.
		api.POST("/student/signup", h.StudentSignupHandler)
		api.POST("/student/login", h.StudentLoginHandler)
		api.POST("/student/otp/request", h.StudentOTPRequestHandler)
		api.POST("/student/otp/verify", h.StudentOTPVerifyHandler)
		api.POST("/faculty/signup", h.FacultySignupHandler)
		api.POST("/faculty/login", h.FacultyLoginHandler)
		api.POST("/logout", h.LogoutHandler)
		api.GET("/session", h.SessionHandler)

		// Blog.
		api.GET("/blogs", h.ListBlogsHandler)
		api.GET("/blogs/:id", h.BlogDetailHandler)
		api.POST("/blogs", h.SubmitBlogHandler)
		api.POST("/blogs/:id/like", h.ToggleLikeHandler)
		api.POST("/blogs/:id/comments", h.AddCommentHandler)

		// Logged-in profile pages.
		me := api.Group("/me", middleware.RequireIdentity())
		{
			me.GET("/posts", h.MyPostsHandler)
			me.GET("/activity", h.MyActivityHandler)
			me.GET("/stats", h.ProfileStatsHandler)
		}
	}

	admin := r.Group("/api/admin")
	admin.POST("/login", h.AdminLoginHandler)
	protected := admin.Group("", middleware.RequireAdmin())
	{
		protected.GET("/dashboard", h.DashboardHandler)

		protected.GET("/students", h.AdminListStudentsHandler)
		protected.POST("/students/:id/toggle", h.ToggleStudentHandler)
		protected.DELETE("/students/:id", h.DeleteStudentHandler)

		protected.GET("/blogs", h.AdminListBlogsHandler)
		protected.POST("/blogs/:id/approve", h.ApproveBlogHandler)
		protected.POST("/blogs/:id/reject", h.RejectBlogHandler)
		protected.DELETE("/blogs/:id", h.DeleteBlogHandler)

		protected.POST("/faculty", h.AdminAddFacultyHandler)
		protected.PATCH("/faculty/:id", h.AdminUpdateFacultyHandler)
		protected.DELETE("/faculty/:id", h.AdminDeleteFacultyHandler)

		protected.POST("/events", h.AdminAddEventHandler)
		protected.PATCH("/events/:id", h.AdminUpdateEventHandler)
		protected.DELETE("/events/:id", h.AdminDeleteEventHandler)

		protected.POST("/gallery", h.AdminAddGalleryHandler)
		protected.DELETE("/gallery/:id", h.AdminDeleteGalleryHandler)

		protected.POST("/research", h.AdminAddResearchHandler)
		protected.DELETE("/research/:id", h.AdminDeleteResearchHandler)

		protected.POST("/notifications", h.AdminAddNotificationHandler)
		protected.POST("/notifications/:id/toggle", h.AdminToggleNotificationHandler)
		protected.DELETE("/notifications/:id", h.AdminDeleteNotificationHandler)

		protected.GET("/contacts", h.AdminListContactsHandler)
		protected.POST("/contacts/:id/read", h.AdminMarkContactReadHandler)
		protected.DELETE("/contacts/:id", h.AdminDeleteContactHandler)

		protected.POST("/csa/members", h.AdminAddCSAMemberHandler)
		protected.PATCH("/csa/members/:id", h.AdminUpdateCSAMemberHandler)
		protected.DELETE("/csa/members/:id", h.AdminDeleteCSAMemberHandler)
		protected.POST("/csa/past", h.AdminAddPastCSAHandler)
		protected.DELETE("/csa/past/:id", h.AdminDeletePastCSAHandler)

		protected.POST("/curriculum", h.AdminUploadCurriculumHandler)
		protected.DELETE("/curriculum", h.AdminDeleteCurriculumHandler)

		protected.POST("/alumni", h.AdminAddAlumniHandler)
		protected.DELETE("/alumni/:id", h.AdminDeleteAlumniHandler)

		protected.POST("/test-email", h.TestEmailHandler)
	}
}

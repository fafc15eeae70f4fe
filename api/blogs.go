package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/middleware"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/models"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/services"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/utils"
)

// SubmitBlogHandler accepts a multipart submission: title, content, optional
// file_link and optional attached file. The post lands in pending state.
func (h *APIHandler) SubmitBlogHandler(c *gin.Context) {
	filePath, err := h.saveUpload(c, "file")
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	blog, err := h.blogService.Submit(c.Request.Context(), middleware.PrincipalFrom(c), services.BlogSubmission{
		Title:    c.PostForm("title"),
		Content:  c.PostForm("content"),
		FileLink: c.PostForm("file_link"),
		FilePath: filePath,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.SendJSON(c, http.StatusCreated, "Blog submitted for approval.", gin.H{"id": blog.ID})
}

// ListBlogsHandler returns the approved posts for the public blog page.
func (h *APIHandler) ListBlogsHandler(c *gin.Context) {
	views, err := h.blogService.ListApproved(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// BlogDetailHandler returns one approved post with its comments.
func (h *APIHandler) BlogDetailHandler(c *gin.Context) {
	view, err := h.blogService.Detail(c.Request.Context(), c.Param("id"), middleware.PrincipalFrom(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ToggleLikeHandler flips the caller's like on a post.
func (h *APIHandler) ToggleLikeHandler(c *gin.Context) {
	result, err := h.blogService.ToggleLike(c.Request.Context(), c.Param("id"), middleware.PrincipalFrom(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "", gin.H{"liked": result.Liked, "like_count": result.LikeCount})
}

type commentRequest struct {
	Text string `json:"text"`
}

// AddCommentHandler appends a comment to a post.
func (h *APIHandler) AddCommentHandler(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request body.", err)
		return
	}
	comment, err := h.blogService.AddComment(c.Request.Context(), c.Param("id"), middleware.PrincipalFrom(c), req.Text)
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.SendJSON(c, http.StatusCreated, "", gin.H{"comment": comment})
}

// MyPostsHandler lists the caller's own posts in every state.
func (h *APIHandler) MyPostsHandler(c *gin.Context) {
	views, err := h.blogService.PostsBy(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// MyActivityHandler lists the posts the caller liked and commented on.
func (h *APIHandler) MyActivityHandler(c *gin.Context) {
	liked, commented, err := h.blogService.Activity(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "", gin.H{"liked": liked, "commented": commented})
}

// ProfileStatsHandler reports the caller's like and comment totals.
func (h *APIHandler) ProfileStatsHandler(c *gin.Context) {
	stats, err := h.blogService.ProfileStats(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// AdminListBlogsHandler lists posts for moderation; ?status= narrows to one
// state.
func (h *APIHandler) AdminListBlogsHandler(c *gin.Context) {
	status := models.BlogStatus(c.Query("status"))
	blogs, err := h.blogService.ListForModeration(c.Request.Context(), status)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

// ApproveBlogHandler publishes a pending post.
func (h *APIHandler) ApproveBlogHandler(c *gin.Context) {
	if err := h.blogService.Approve(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "Blog approved.", nil)
}

// RejectBlogHandler marks a pending post rejected.
func (h *APIHandler) RejectBlogHandler(c *gin.Context) {
	if err := h.blogService.Reject(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "Blog rejected.", nil)
}

// DeleteBlogHandler removes a post in any state.
func (h *APIHandler) DeleteBlogHandler(c *gin.Context) {
	if err := h.blogService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "Blog deleted.", nil)
}

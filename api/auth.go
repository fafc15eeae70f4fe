package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/middleware"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/models"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/services"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/utils"
)

type studentSignupRequest struct {
	Name      string `json:"name"`
	StudentID string `json:"student_id"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Class     string `json:"class"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type otpRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type facultySignupRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
	Password    string `json:"password"`
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// StudentSignupHandler registers a student and logs the new account in.
func (h *APIHandler) StudentSignupHandler(c *gin.Context) {
	var req studentSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request body.", err)
		return
	}
	session, err := h.authService.StudentSignup(c.Request.Context(), services.StudentSignupInput{
		Name:      req.Name,
		StudentID: req.StudentID,
		Email:     req.Email,
		Password:  req.Password,
		Class:     req.Class,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	if err := middleware.SetPrincipal(c, models.AsStudent(*session)); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusCreated, "Signup successful.", gin.H{"student": session})
}

// StudentLoginHandler checks email+password and starts a student session.
func (h *APIHandler) StudentLoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request body.", err)
		return
	}
	session, err := h.authService.StudentLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if err := middleware.SetPrincipal(c, models.AsStudent(*session)); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "Login successful.", gin.H{"student": session})
}

// StudentOTPRequestHandler issues a login code to the student's email. When
// mail is not configured the code comes back in the response for development.
func (h *APIHandler) StudentOTPRequestHandler(c *gin.Context) {
	var req otpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request body.", err)
		return
	}
	result, err := h.authService.RequestStudentOTP(c.Request.Context(), req.Email)
	if err != nil {
		h.respondError(c, err)
		return
	}
	extra := gin.H{}
	if result.DebugCode != "" {
		extra["otp_debug"] = result.DebugCode
	}
	utils.SendJSON(c, http.StatusOK, "OTP sent.", extra)
}

// StudentOTPVerifyHandler exchanges a valid code for a student session.
func (h *APIHandler) StudentOTPVerifyHandler(c *gin.Context) {
	var req otpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request body.", err)
		return
	}
	session, err := h.authService.VerifyStudentOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if err := middleware.SetPrincipal(c, models.AsStudent(*session)); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "Login successful.", gin.H{"student": session})
}

// FacultySignupHandler registers a faculty account. Unlike students, faculty
// log in separately after signup.
func (h *APIHandler) FacultySignupHandler(c *gin.Context) {
	var req facultySignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request body.", err)
		return
	}
	err := h.authService.FacultySignup(c.Request.Context(), services.FacultySignupInput{
		Name:        req.Name,
		Email:       req.Email,
		Designation: req.Designation,
		Password:    req.Password,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.SendJSON(c, http.StatusCreated, "Signup successful. Please login.", nil)
}

// FacultyLoginHandler checks email+password and starts a faculty session.
func (h *APIHandler) FacultyLoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request body.", err)
		return
	}
	session, err := h.authService.FacultyLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if err := middleware.SetPrincipal(c, models.AsFaculty(*session)); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "Login successful.", gin.H{"faculty": session})
}

// AdminLoginHandler checks the configured back-office credentials.
func (h *APIHandler) AdminLoginHandler(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request body.", err)
		return
	}
	if err := h.authService.AdminLogin(req.Username, req.Password); err != nil {
		h.respondError(c, err)
		return
	}
	if err := middleware.SetPrincipal(c, models.AsAdmin()); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "Login successful.", nil)
}

// LogoutHandler ends whatever session is attached.
func (h *APIHandler) LogoutHandler(c *gin.Context) {
	if err := middleware.ClearPrincipal(c); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "", err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "Logged out.", nil)
}

// SessionHandler reports the current identity, for page bootstrapping.
func (h *APIHandler) SessionHandler(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	utils.SendJSON(c, http.StatusOK, "", gin.H{"principal": p, "logged_in": !p.IsAnonymous()})
}

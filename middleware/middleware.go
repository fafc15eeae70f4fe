package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/models"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/utils"
)

const (
	sessionName  = "csdweb_session"
	sessionKey   = "principal"
	principalKey = "principal"
)

// Logger is a Gin middleware for logging HTTP requests and responses.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		latency := time.Since(startTime)
		method := c.Request.Method
		uri := c.Request.RequestURI
		statusCode := c.Writer.Status()
		clientIP := c.ClientIP()
		errorsStr := c.Errors.ByType(gin.ErrorTypePrivate).String()
		if errorsStr == "" {
			errorsStr = "None"
		}

		c.Writer.Header().Set("X-Response-Time", latency.String())

		log.Printf("[GIN] %s | %3d | %13v | %15s | %-7s %s\n      Errors: %s",
			startTime.Format("2006/01/02 - 15:04:05"),
			statusCode,
			latency,
			clientIP,
			method,
			uri,
			errorsStr,
		)
	}
}

// Cors is a Gin middleware for enabling Cross-Origin Resource Sharing (CORS).
func Cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, User-Agent")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Sessions installs the cookie session store. Must run before WithPrincipal.
func Sessions(secret string) gin.HandlerFunc {
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   7 * 24 * 60 * 60,
	})
	return sessions.Sessions(sessionName, store)
}

// WithPrincipal resolves the session identity into the request context. A
// missing or unreadable session yields the anonymous principal.
func WithPrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := models.Anonymous()
		if raw, ok := sessions.Default(c).Get(sessionKey).(string); ok && raw != "" {
			var stored models.Principal
			if err := json.Unmarshal([]byte(raw), &stored); err != nil {
				log.Printf("WARN: [Middleware] Dropping unreadable session principal: %v", err)
			} else {
				p = stored
			}
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// PrincipalFrom returns the request's principal; anonymous when the
// middleware did not run.
func PrincipalFrom(c *gin.Context) models.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(models.Principal); ok {
			return p
		}
	}
	return models.Anonymous()
}

// SetPrincipal binds an identity to the session, replacing any previous one.
func SetPrincipal(c *gin.Context, p models.Principal) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	session := sessions.Default(c)
	session.Set(sessionKey, string(raw))
	if err := session.Save(); err != nil {
		return err
	}
	c.Set(principalKey, p)
	return nil
}

// ClearPrincipal logs the session out.
func ClearPrincipal(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(sessionKey)
	return session.Save()
}

// RequireAdmin rejects requests whose session is not the back-office admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if PrincipalFrom(c).Role != models.RoleAdmin {
			utils.SendJSONError(c, http.StatusUnauthorized, "Admin login required.", nil)
			return
		}
		c.Next()
	}
}

// RequireIdentity rejects requests with no student or faculty session.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := PrincipalFrom(c).Role
		if role != models.RoleStudent && role != models.RoleFaculty {
			utils.SendJSONError(c, http.StatusUnauthorized, "Please login to continue.", nil)
			return
		}
		c.Next()
	}
}

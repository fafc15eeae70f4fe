package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/config"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/mailer"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/models"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/store"
)

const otpTTL = 10 * time.Minute

// StudentSignupInput carries the fields of a student registration.
type StudentSignupInput struct {
	Name      string
	StudentID string
	Email     string
	Password  string
	Class     string
}

// FacultySignupInput carries the fields of a faculty registration.
type FacultySignupInput struct {
	Name        string
	Email       string
	Designation string
	Password    string
}

// OTPResult is the outcome of an OTP request. DebugCode is only set when
// mail is not configured, so development logins remain possible; it must
// never be populated in a mail-enabled deployment.
type OTPResult struct {
	DebugCode string
}

// AuthService implements signup, password login, OTP login and the admin
// credential check.
type AuthService interface {
	StudentSignup(ctx context.Context, in StudentSignupInput) (*models.StudentSession, error)
	StudentLogin(ctx context.Context, email, password string) (*models.StudentSession, error)
	RequestStudentOTP(ctx context.Context, email string) (*OTPResult, error)
	VerifyStudentOTP(ctx context.Context, email, otp string) (*models.StudentSession, error)

	FacultySignup(ctx context.Context, in FacultySignupInput) error
	FacultyLogin(ctx context.Context, email, password string) (*models.FacultySession, error)

	AdminLogin(username, password string) error
}

type authService struct {
	students store.StudentStore
	faculty  store.FacultyStore
	admin    config.AdminConfig
	mail     mailer.Mailer
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(students store.StudentStore, faculty store.FacultyStore, admin config.AdminConfig, mail mailer.Mailer) AuthService {
	return &authService{students: students, faculty: faculty, admin: admin, mail: mail}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func studentSession(s *models.Student) *models.StudentSession {
	return &models.StudentSession{
		ID:        s.ID,
		Name:      s.Name,
		StudentID: s.StudentID,
		Email:     s.Email,
		Phone:     s.Phone,
		Class:     s.Class,
		Avatar:    s.Avatar,
	}
}

func facultySession(f *models.Faculty) *models.FacultySession {
	return &models.FacultySession{
		ID:          f.ID,
		Name:        f.Name,
		Email:       f.Email,
		Designation: f.Designation,
		Phone:       f.Phone,
		Avatar:      f.Photo,
	}
}

// StudentSignup validates, enforces student_id and email uniqueness and
// stores a new active student account with a salted password hash.
func (s *authService) StudentSignup(ctx context.Context, in StudentSignupInput) (*models.StudentSession, error) {
	name := strings.TrimSpace(in.Name)
	studentID := strings.TrimSpace(in.StudentID)
	email := strings.TrimSpace(in.Email)
	class := strings.TrimSpace(in.Class)

	if name == "" || studentID == "" || email == "" || in.Password == "" || class == "" {
		return nil, ErrValidation("All fields are required (including class).")
	}

	existing, err := s.students.FindStudentByStudentID(ctx, studentID)
	if err != nil {
		log.Printf("ERROR: [AuthService] Signup uniqueness check failed for student_id %s: %v", studentID, err)
		return nil, ErrBackend("student signup", err)
	}
	if existing != nil {
		return nil, ErrConflict("Student ID already registered.")
	}
	existing, err = s.students.FindStudentByEmail(ctx, email)
	if err != nil {
		log.Printf("ERROR: [AuthService] Signup uniqueness check failed for email %s: %v", email, err)
		return nil, ErrBackend("student signup", err)
	}
	if existing != nil {
		return nil, ErrConflict("Email already registered.")
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, ErrBackend("student signup", err)
	}
	student := &models.Student{
		ID:           uuid.New().String(),
		Name:         name,
		StudentID:    studentID,
		Email:        email,
		PasswordHash: hash,
		Class:        class,
		IsActive:     models.BoolPtr(true),
		CreatedAt:    nowISO(),
	}
	if err := s.students.AddStudent(ctx, student); err != nil {
		log.Printf("ERROR: [AuthService] Failed to store student %s: %v", studentID, err)
		return nil, ErrBackend("student signup", err)
	}
	log.Printf("INFO: [AuthService] Student registered: %s (%s)", studentID, email)
	return studentSession(student), nil
}

// StudentLogin checks email+password. Unknown accounts and wrong passwords
// share one message; inactive accounts get their own (a deliberate,
// documented tradeoff carried over from the original site).
func (s *authService) StudentLogin(ctx context.Context, email, password string) (*models.StudentSession, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, ErrValidation("Email and password are required.")
	}
	student, err := s.students.FindStudentByEmail(ctx, email)
	if err != nil {
		log.Printf("ERROR: [AuthService] Student lookup failed for %s: %v", email, err)
		return nil, ErrBackend("student login", err)
	}
	if student == nil {
		return nil, ErrAuthorization("Invalid email or password.")
	}
	if !models.ActiveOrMissing(student.IsActive) {
		return nil, ErrForbidden("Account is inactive. Contact admin.")
	}
	if !checkPassword(student.PasswordHash, password) {
		log.Printf("WARN: [AuthService] Invalid password for student %s", email)
		return nil, ErrAuthorization("Invalid email or password.")
	}
	return studentSession(student), nil
}

// RequestStudentOTP issues a 6-digit single-use code valid for ten minutes
// and mails it to the student. The code is persisted on the student record
// in the clear (development behavior, flagged in DESIGN.md).
func (s *authService) RequestStudentOTP(ctx context.Context, email string) (*OTPResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrValidation("Email is required.")
	}
	student, err := s.students.FindStudentByEmail(ctx, email)
	if err != nil {
		log.Printf("ERROR: [AuthService] OTP lookup failed for %s: %v", email, err)
		return nil, ErrBackend("otp request", err)
	}
	if student == nil {
		return nil, ErrNotFound("No student account found for this email.")
	}
	if !models.ActiveOrMissing(student.IsActive) {
		return nil, ErrForbidden("Account is inactive. Contact admin.")
	}

	code := fmt.Sprintf("%06d", rand.Intn(1000000))
	expiresAt := time.Now().UTC().Add(otpTTL).Format(time.RFC3339)
	changes := store.Changes{"otp_code": code, "otp_expires_at": expiresAt}
	if err := s.students.UpdateStudent(ctx, student.ID, changes); err != nil {
		log.Printf("ERROR: [AuthService] Failed to persist OTP for %s: %v", email, err)
		return nil, ErrBackend("otp request", err)
	}

	result := &OTPResult{DebugCode: code}
	if s.mail.Enabled() {
		if err := s.mail.SendStudentOTP(email, code); err != nil {
			log.Printf("ERROR: [AuthService] Failed to send student OTP email: %v", err)
		} else {
			result.DebugCode = ""
		}
	}
	log.Printf("INFO: [AuthService] OTP issued for student %s", email)
	return result, nil
}

// VerifyStudentOTP accepts a correct, unexpired code exactly once: a
// successful verification clears the stored code before the session is
// handed back.
func (s *authService) VerifyStudentOTP(ctx context.Context, email, otp string) (*models.StudentSession, error) {
	email = strings.TrimSpace(email)
	otp = strings.TrimSpace(otp)
	if email == "" || otp == "" {
		return nil, ErrValidation("Email and OTP are required.")
	}
	student, err := s.students.FindStudentByEmail(ctx, email)
	if err != nil {
		log.Printf("ERROR: [AuthService] OTP verify lookup failed for %s: %v", email, err)
		return nil, ErrBackend("otp verify", err)
	}
	if student == nil {
		return nil, ErrNotFound("Student not found.")
	}
	if student.OTPCode == nil || *student.OTPCode == "" || *student.OTPCode != otp {
		return nil, ErrAuthorization("Invalid OTP.")
	}
	if student.OTPExpiresAt != nil && *student.OTPExpiresAt != "" {
		if exp := parseFlexibleTime(*student.OTPExpiresAt); exp != nil && exp.Before(time.Now().UTC()) {
			return nil, ErrValidation("OTP has expired.")
		}
	}

	// Clear before returning so the code cannot be replayed.
	changes := store.Changes{"otp_code": nil, "otp_expires_at": nil}
	if err := s.students.UpdateStudent(ctx, student.ID, changes); err != nil {
		log.Printf("ERROR: [AuthService] Failed to clear OTP for %s: %v", email, err)
		return nil, ErrBackend("otp verify", err)
	}
	log.Printf("INFO: [AuthService] OTP login for student %s", email)
	return studentSession(student), nil
}

// FacultySignup creates a faculty account; email must be unique.
func (s *authService) FacultySignup(ctx context.Context, in FacultySignupInput) error {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	password := strings.TrimSpace(in.Password)
	if name == "" || email == "" || password == "" {
		return ErrValidation("Name, email and password are required.")
	}
	existing, err := s.faculty.FindFacultyByEmail(ctx, email)
	if err != nil {
		log.Printf("ERROR: [AuthService] Faculty uniqueness check failed for %s: %v", email, err)
		return ErrBackend("faculty signup", err)
	}
	if existing != nil {
		return ErrConflict("A faculty account already exists for this email.")
	}
	hash, err := hashPassword(password)
	if err != nil {
		return ErrBackend("faculty signup", err)
	}
	fac := &models.Faculty{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Designation:  strings.TrimSpace(in.Designation),
		PasswordHash: hash,
		IsActive:     models.BoolPtr(true),
		CreatedAt:    nowISO(),
	}
	if err := s.faculty.AddFaculty(ctx, fac); err != nil {
		log.Printf("ERROR: [AuthService] Failed to store faculty %s: %v", email, err)
		return ErrBackend("faculty signup", err)
	}
	log.Printf("INFO: [AuthService] Faculty registered: %s", email)
	return nil
}

// FacultyLogin checks email+password. Accounts created by the admin without
// a password adopt the first password submitted at login (low-friction
// onboarding; known gap, documented in DESIGN.md).
func (s *authService) FacultyLogin(ctx context.Context, email, password string) (*models.FacultySession, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, ErrValidation("Email and password are required.")
	}
	fac, err := s.faculty.FindFacultyByEmail(ctx, email)
	if err != nil {
		log.Printf("ERROR: [AuthService] Faculty lookup failed for %s: %v", email, err)
		return nil, ErrBackend("faculty login", err)
	}
	if fac == nil {
		return nil, ErrAuthorization("Invalid email or password.")
	}
	if !models.ActiveOrMissing(fac.IsActive) {
		return nil, ErrForbidden("Account is inactive. Contact admin.")
	}

	if fac.PasswordHash == "" {
		hash, err := hashPassword(password)
		if err != nil {
			return nil, ErrBackend("faculty login", err)
		}
		if err := s.faculty.UpdateFaculty(ctx, fac.ID, store.Changes{"password_hash": hash}); err != nil {
			log.Printf("ERROR: [AuthService] Failed to set first-login password for %s: %v", email, err)
			return nil, ErrBackend("faculty login", err)
		}
		log.Printf("WARN: [AuthService] First-login password set for faculty %s", email)
		fac.PasswordHash = hash
	}

	if !checkPassword(fac.PasswordHash, password) {
		log.Printf("WARN: [AuthService] Invalid password for faculty %s", email)
		return nil, ErrAuthorization("Invalid email or password.")
	}
	return facultySession(fac), nil
}

// AdminLogin compares against the configured back-office credentials.
func (s *authService) AdminLogin(username, password string) error {
	if username != s.admin.Username || password != s.admin.Password {
		log.Printf("WARN: [AuthService] Failed admin login attempt for %q", username)
		return ErrAuthorization("Invalid username or password")
	}
	return nil
}

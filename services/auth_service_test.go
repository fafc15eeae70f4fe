package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/config"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/models"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/store"
)

var testAdmin = config.AdminConfig{Username: "admin", Password: "admin123"}

func signupInput() StudentSignupInput {
	return StudentSignupInput{
		Name:      "Asha Patil",
		StudentID: "CS101",
		Email:     "asha@example.com",
		Password:  "secret123",
		Class:     "TYBSc",
	}
}

func TestStudentSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		st := newTestStore(t)
		svc := NewAuthService(st, st, testAdmin, silentMailer())

		session, err := svc.StudentSignup(ctx, signupInput())
		require.NoError(t, err)
		assert.Equal(t, "CS101", session.StudentID)
		assert.Equal(t, "Asha Patil", session.Name)

		stored, err := st.FindStudentByEmail(ctx, "asha@example.com")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.NotEqual(t, "secret123", stored.PasswordHash, "password must be hashed")
		assert.True(t, models.ActiveOrMissing(stored.IsActive))
	})

	t.Run("MissingClass", func(t *testing.T) {
		st := newTestStore(t)
		svc := NewAuthService(st, st, testAdmin, silentMailer())

		in := signupInput()
		in.Class = ""
		_, err := svc.StudentSignup(ctx, in)
		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
		assert.EqualError(t, err, "All fields are required (including class).")
	})

	t.Run("DuplicateStudentID", func(t *testing.T) {
		st := newTestStore(t)
		svc := NewAuthService(st, st, testAdmin, silentMailer())
		_, err := svc.StudentSignup(ctx, signupInput())
		require.NoError(t, err)

		in := signupInput()
		in.Email = "other@example.com"
		_, err = svc.StudentSignup(ctx, in)
		require.Error(t, err)
		assert.Equal(t, KindConflict, KindOf(err))
		assert.EqualError(t, err, "Student ID already registered.")
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		st := newTestStore(t)
		svc := NewAuthService(st, st, testAdmin, silentMailer())
		_, err := svc.StudentSignup(ctx, signupInput())
		require.NoError(t, err)

		in := signupInput()
		in.StudentID = "CS102"
		_, err = svc.StudentSignup(ctx, in)
		require.Error(t, err)
		assert.Equal(t, KindConflict, KindOf(err))
		assert.EqualError(t, err, "Email already registered.")
	})
}

func TestStudentLogin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewAuthService(st, st, testAdmin, silentMailer())
	_, err := svc.StudentSignup(ctx, signupInput())
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		session, err := svc.StudentLogin(ctx, "asha@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "CS101", session.StudentID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := svc.StudentLogin(ctx, "asha@example.com", "wrong")
		require.Error(t, err)
		assert.Equal(t, KindAuthorization, KindOf(err))
		assert.EqualError(t, err, "Invalid email or password.")
	})

	t.Run("UnknownEmailSharesMessageWithWrongPassword", func(t *testing.T) {
		_, err := svc.StudentLogin(ctx, "nobody@example.com", "secret123")
		require.Error(t, err)
		assert.Equal(t, KindAuthorization, KindOf(err))
		assert.EqualError(t, err, "Invalid email or password.")
	})

	t.Run("InactiveAccount", func(t *testing.T) {
		stored, err := st.FindStudentByEmail(ctx, "asha@example.com")
		require.NoError(t, err)
		require.NoError(t, st.UpdateStudent(ctx, stored.ID, store.Changes{"is_active": false}))

		_, err = svc.StudentLogin(ctx, "asha@example.com", "secret123")
		require.Error(t, err)
		assert.Equal(t, KindForbidden, KindOf(err))
		assert.EqualError(t, err, "Account is inactive. Contact admin.")

		require.NoError(t, st.UpdateStudent(ctx, stored.ID, store.Changes{"is_active": true}))
	})
}

func TestStudentOTPFlow(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mail := silentMailer()
	svc := NewAuthService(st, st, testAdmin, mail)
	_, err := svc.StudentSignup(ctx, signupInput())
	require.NoError(t, err)

	t.Run("DebugCodeWhenMailDisabled", func(t *testing.T) {
		result, err := svc.RequestStudentOTP(ctx, "asha@example.com")
		require.NoError(t, err)
		assert.Len(t, result.DebugCode, 6)
	})

	t.Run("VerifyIsSingleUse", func(t *testing.T) {
		result, err := svc.RequestStudentOTP(ctx, "asha@example.com")
		require.NoError(t, err)
		code := result.DebugCode

		session, err := svc.VerifyStudentOTP(ctx, "asha@example.com", code)
		require.NoError(t, err)
		assert.Equal(t, "CS101", session.StudentID)

		// Replaying the same code fails; it was cleared on verify.
		_, err = svc.VerifyStudentOTP(ctx, "asha@example.com", code)
		require.Error(t, err)
		assert.EqualError(t, err, "Invalid OTP.")
	})

	t.Run("WrongCode", func(t *testing.T) {
		_, err := svc.RequestStudentOTP(ctx, "asha@example.com")
		require.NoError(t, err)
		_, err = svc.VerifyStudentOTP(ctx, "asha@example.com", "000000x")
		require.Error(t, err)
		assert.EqualError(t, err, "Invalid OTP.")
	})

	t.Run("ExpiredCode", func(t *testing.T) {
		result, err := svc.RequestStudentOTP(ctx, "asha@example.com")
		require.NoError(t, err)

		stored, err := st.FindStudentByEmail(ctx, "asha@example.com")
		require.NoError(t, err)
		past := time.Now().UTC().Add(-time.Minute).Format(time.RFC3339)
		require.NoError(t, st.UpdateStudent(ctx, stored.ID, store.Changes{"otp_expires_at": past}))

		_, err = svc.VerifyStudentOTP(ctx, "asha@example.com", result.DebugCode)
		require.Error(t, err)
		assert.Equal(t, KindValidation, KindOf(err))
		assert.EqualError(t, err, "OTP has expired.")
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, err := svc.RequestStudentOTP(ctx, "nobody@example.com")
		require.Error(t, err)
		assert.Equal(t, KindNotFound, KindOf(err))
		assert.EqualError(t, err, "No student account found for this email.")
	})
}

func TestFacultyLogin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewAuthService(st, st, testAdmin, silentMailer())

	t.Run("SignupThenLogin", func(t *testing.T) {
		err := svc.FacultySignup(ctx, FacultySignupInput{Name: "Dr. Rao", Email: "rao@example.com", Password: "teach123"})
		require.NoError(t, err)

		session, err := svc.FacultyLogin(ctx, "rao@example.com", "teach123")
		require.NoError(t, err)
		assert.Equal(t, "Dr. Rao", session.Name)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		err := svc.FacultySignup(ctx, FacultySignupInput{Name: "Dr. Rao", Email: "rao@example.com", Password: "teach123"})
		require.Error(t, err)
		assert.Equal(t, KindConflict, KindOf(err))
		assert.EqualError(t, err, "A faculty account already exists for this email.")
	})

	t.Run("FirstLoginSetsPassword", func(t *testing.T) {
		// Admin-created profile without credentials.
		require.NoError(t, st.AddFaculty(ctx, &models.Faculty{ID: "f2", Name: "Dr. Iyer", Email: "iyer@example.com"}))

		session, err := svc.FacultyLogin(ctx, "iyer@example.com", "firstpass")
		require.NoError(t, err)
		assert.Equal(t, "Dr. Iyer", session.Name)

		// The adopted password is now required.
		_, err = svc.FacultyLogin(ctx, "iyer@example.com", "otherpass")
		require.Error(t, err)
		assert.EqualError(t, err, "Invalid email or password.")

		_, err = svc.FacultyLogin(ctx, "iyer@example.com", "firstpass")
		assert.NoError(t, err)
	})
}

func TestAdminLogin(t *testing.T) {
	st := newTestStore(t)
	svc := NewAuthService(st, st, testAdmin, silentMailer())

	assert.NoError(t, svc.AdminLogin("admin", "admin123"))

	err := svc.AdminLogin("admin", "wrong")
	require.Error(t, err)
	assert.Equal(t, KindAuthorization, KindOf(err))
	assert.EqualError(t, err, "Invalid username or password")
}

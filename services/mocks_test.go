package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/config"
	"github.com/KrishnaJadhav2525/College-Web--Portal--Full-Stack/store"
)

// MockMailer is a mock implementation of mailer.Mailer.
type MockMailer struct {
	mock.Mock
	enabled bool
}

func (m *MockMailer) Enabled() bool { return m.enabled }

func (m *MockMailer) SendStudentOTP(to, code string) error {
	args := m.Called(to, code)
	return args.Error(0)
}

func (m *MockMailer) SendBlogPendingAlert(title, authorName, authorType, authorEmail, preview string) error {
	args := m.Called(title, authorName, authorType, authorEmail, preview)
	return args.Error(0)
}

func (m *MockMailer) SendBlogApproved(to, authorName, title string) error {
	args := m.Called(to, authorName, title)
	return args.Error(0)
}

func (m *MockMailer) SendContactNotice(name, email, subject, message string) error {
	args := m.Called(name, email, subject, message)
	return args.Error(0)
}

func (m *MockMailer) SendContactThanks(to, name, subject, message string) error {
	args := m.Called(to, name, subject, message)
	return args.Error(0)
}

func (m *MockMailer) SendTest() error {
	args := m.Called()
	return args.Error(0)
}

// silentMailer accepts every send without recording; for tests where mail is
// not the subject.
func silentMailer() *MockMailer {
	m := &MockMailer{}
	m.On("SendStudentOTP", mock.Anything, mock.Anything).Return(nil).Maybe()
	m.On("SendBlogPendingAlert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	m.On("SendBlogApproved", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	m.On("SendContactNotice", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	m.On("SendContactThanks", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	m.On("SendTest").Return(nil).Maybe()
	return m
}

// newTestStore backs service tests with a real file store in a temp dir, so
// the workflow layer is exercised against actual persistence semantics.
func newTestStore(t *testing.T) store.Store {
	t.Helper()
	st, err := store.New(context.Background(), config.StorageConfig{
		Backend:  "file",
		FilePath: filepath.Join(t.TempDir(), "database.json"),
	})
	require.NoError(t, err)
	return st
}

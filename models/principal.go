package models

import "fmt"

// Role is the kind of identity bound to the current session. A session holds
// at most one role at a time; logging in as faculty clears a student session
// and vice versa.
type Role string

const (
	RoleAnonymous Role = ""
	RoleStudent   Role = "student"
	RoleFaculty   Role = "faculty"
	RoleAdmin     Role = "admin"
)

// StudentSession is the subset of a student record carried in the session.
type StudentSession struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StudentID string `json:"student_id"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Class     string `json:"class,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
}

// FacultySession is the subset of a faculty record carried in the session.
type FacultySession struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Designation string `json:"designation,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
}

// Principal is the identity attached to a request. Exactly one of the role
// payloads is set, selected by Role.
type Principal struct {
	Role    Role            `json:"role"`
	Student *StudentSession `json:"student,omitempty"`
	Faculty *FacultySession `json:"faculty,omitempty"`
}

// Anonymous returns the principal of a request with no session identity.
func Anonymous() Principal { return Principal{Role: RoleAnonymous} }

// AsStudent builds a student principal from a session payload.
func AsStudent(s StudentSession) Principal {
	return Principal{Role: RoleStudent, Student: &s}
}

// AsFaculty builds a faculty principal from a session payload.
func AsFaculty(f FacultySession) Principal {
	return Principal{Role: RoleFaculty, Faculty: &f}
}

// AsAdmin builds the back-office principal.
func AsAdmin() Principal { return Principal{Role: RoleAdmin} }

// IsAnonymous reports whether no identity is attached.
func (p Principal) IsAnonymous() bool { return p.Role == RoleAnonymous }

// IdentityKey returns the canonical key recorded in blog likes and used for
// ownership checks: "student:<student_id>" or "faculty:<email>". Admin and
// anonymous principals have no identity key.
func (p Principal) IdentityKey() (string, bool) {
	switch p.Role {
	case RoleStudent:
		if p.Student != nil {
			return fmt.Sprintf("student:%s", p.Student.StudentID), true
		}
	case RoleFaculty:
		if p.Faculty != nil {
			return fmt.Sprintf("faculty:%s", p.Faculty.Email), true
		}
	}
	return "", false
}

// DisplayName returns the name shown for the principal's posts and comments.
func (p Principal) DisplayName() string {
	switch p.Role {
	case RoleStudent:
		if p.Student != nil {
			return p.Student.Name
		}
	case RoleFaculty:
		if p.Faculty != nil {
			return p.Faculty.Name
		}
	case RoleAdmin:
		return "Admin"
	}
	return ""
}

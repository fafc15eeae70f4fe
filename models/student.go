package models

// Student is a self-service student account.
// Field names match the stored document layout (`database.json` / Mongo), so
// existing data remains readable.
type Student struct {
	ID           string  `json:"id" bson:"id"`
	Name         string  `json:"name" bson:"name"`
	StudentID    string  `json:"student_id" bson:"student_id"`
	Email        string  `json:"email" bson:"email"`
	PasswordHash string  `json:"password_hash" bson:"password_hash"`
	Class        string  `json:"class" bson:"class"`
	Phone        string  `json:"phone,omitempty" bson:"phone,omitempty"`
	Avatar       string  `json:"avatar,omitempty" bson:"avatar,omitempty"`
	IsActive     *bool   `json:"is_active" bson:"is_active"`
	OTPCode      *string `json:"otp_code,omitempty" bson:"otp_code,omitempty"`
	OTPExpiresAt *string `json:"otp_expires_at,omitempty" bson:"otp_expires_at,omitempty"`
	CreatedAt    string  `json:"created_at" bson:"created_at"`
}

// Faculty is a faculty member profile and account. PasswordHash may be empty
// until the first login sets it.
type Faculty struct {
	ID             string `json:"id" bson:"id"`
	Name           string `json:"name" bson:"name"`
	Email          string `json:"email" bson:"email"`
	PasswordHash   string `json:"password_hash,omitempty" bson:"password_hash,omitempty"`
	Designation    string `json:"designation,omitempty" bson:"designation,omitempty"`
	Specialization string `json:"specialization,omitempty" bson:"specialization,omitempty"`
	Experience     string `json:"experience,omitempty" bson:"experience,omitempty"`
	Phone          string `json:"phone,omitempty" bson:"phone,omitempty"`
	Photo          string `json:"photo,omitempty" bson:"photo,omitempty"`
	Resume         string `json:"resume,omitempty" bson:"resume,omitempty"`
	Order          int    `json:"order" bson:"order"`
	IsActive       *bool  `json:"is_active" bson:"is_active"`
	CreatedAt      string `json:"created_at" bson:"created_at"`
}

// BoolPtr returns a pointer to b, for optional boolean record fields.
func BoolPtr(b bool) *bool { return &b }

// ActiveOrMissing treats a missing is_active / is_current flag as true,
// matching how records written before the flag existed are interpreted.
func ActiveOrMissing(b *bool) bool { return b == nil || *b }

package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Contact is a directory entry for a person, together with the phone numbers
// under which the person can be reached. A contact must have both a first and
// a last name before it can be stored.
type Contact struct {
	Id        int64   `json:"id"        db:"id"`
	FirstName string  `json:"firstname" db:"firstname" validate:"required"`
	LastName  string  `json:"lastname"  db:"lastname"  validate:"required"`
	Phones    []Phone `json:"phones"    db:"-"         validate:"dive"`
}

// Phone is a single number belonging to a contact. The phone type is a
// free-form label such as "home", "office" or "mobile". The number may be left
// blank, the type may not.
type Phone struct {
	Id        int64  `json:"id"         db:"id"`
	ContactId int64  `json:"-"          db:"contact_id"`
	Number    string `json:"number"     db:"number"`
	PhoneType string `json:"phone_type" db:"phone_type" validate:"required"`
}

// DefaultPhoneTypes are the phone slots a new contact form starts out with.
var DefaultPhoneTypes = []string{"home", "office", "mobile"}

// ScaffoldContact returns an unsaved contact prefilled with one empty phone
// per default phone type.
func ScaffoldContact() Contact {
	phones := make([]Phone, 0, len(DefaultPhoneTypes))
	for _, phoneType := range DefaultPhoneTypes {
		phones = append(phones, Phone{PhoneType: phoneType})
	}
	return Contact{Phones: phones}
}

// ContactInput carries the fields of a create or update submission. A nil
// field was not part of the submission and leaves the stored value untouched.
type ContactInput struct {
	FirstName *string       `json:"firstname"`
	LastName  *string       `json:"lastname"`
	Phones    *[]PhoneInput `json:"phones"`
}

// PhoneInput carries one phone of a create or update submission.
type PhoneInput struct {
	Number    *string `json:"number"`
	PhoneType *string `json:"phone_type"`
}

// Empty reports whether the submission contains no fields at all.
func (in ContactInput) Empty() bool {
	return in.FirstName == nil && in.LastName == nil && in.Phones == nil
}

// Merge applies the submitted fields onto base and returns the result. When
// the submission contains phones, they replace the base's phone list as a
// whole; otherwise the base's phones are kept.
func (in ContactInput) Merge(base Contact) Contact {
	merged := base
	if in.FirstName != nil {
		merged.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		merged.LastName = *in.LastName
	}
	if in.Phones != nil {
		merged.Phones = make([]Phone, 0, len(*in.Phones))
		for _, submitted := range *in.Phones {
			var phone Phone
			if submitted.Number != nil {
				phone.Number = *submitted.Number
			}
			if submitted.PhoneType != nil {
				phone.PhoneType = *submitted.PhoneType
			}
			merged.Phones = append(merged.Phones, phone)
		}
	}
	return merged
}

// Role labels for identities. Administrators and users hold the same
// permissions on the directory; guests may only read it.
const (
	RoleAdministrator = "administrator"
	RoleUser          = "user"
	RoleGuest         = "guest"
)

// Identity describes who issued a request.
type Identity struct {
	UserID string
	Role   string
}

// Guest returns the identity of an unauthenticated caller.
func Guest() Identity {
	return Identity{Role: RoleGuest}
}

// Authenticated reports whether the identity belongs to a signed-in user.
func (i Identity) Authenticated() bool {
	return i.Role == RoleAdministrator || i.Role == RoleUser
}

// User is an account that may sign in to the directory.
type User struct {
	Id           string `json:"id"        db:"id"`
	Email        string `json:"email"     db:"email"`
	PasswordHash []byte `json:"-"         db:"password_hash"`
	Role         string `json:"role"      db:"role"`
	FirstName    string `json:"firstname" db:"firstname"`
	LastName     string `json:"lastname"  db:"lastname"`
}

// SetPassword replaces the user's password hash with a bcrypt hash of the
// given clear text password.
func (u *User) SetPassword(password string, cost int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// ComparePassword reports whether the given clear text password matches the
// user's password hash.
func (u *User) ComparePassword(password string) bool {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)) == nil
}

// NewsRelease is a press announcement managed elsewhere in the application.
// It shares the directory's database and test fixtures.
type NewsRelease struct {
	Id         int64     `json:"id"          db:"id"`
	Title      string    `json:"title"       db:"title"`
	Body       string    `json:"body"        db:"body"`
	ReleasedOn time.Time `json:"released_on" db:"released_on"`
}

// Package model holds the wire representation of the directory records as
// external clients see them.
package model

// Contact is the data structure for a person in the directory. All fields
// with the exception of the Id field are optional on submissions.
type Contact struct {
	Id        int64   `json:"id"`
	FirstName *string `json:"firstname,omitempty"`
	LastName  *string `json:"lastname,omitempty"`
	Phones    []Phone `json:"phones,omitempty"`
}

// Phone is one number of a contact, tagged with a free-form type such as
// "home", "office" or "mobile".
type Phone struct {
	Id        int64   `json:"id,omitempty"`
	Number    *string `json:"number,omitempty"`
	PhoneType *string `json:"phone_type,omitempty"`
}

// Credentials is the body of a login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User describes a signed-in account as the login endpoint returns it.
type User struct {
	Id        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

// Session is the answer to a successful login request. The token is sent as
// a bearer token on subsequent requests.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

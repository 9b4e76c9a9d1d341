// Package fixtures builds fully populated records for tests and database
// seeding. Every builder accepts override functions that are applied in
// order before the record is returned.
package fixtures

import (
	"time"

	"gitlab.com/webkontor/contactbook/internal/model"
	"gitlab.com/webkontor/contactbook/internal/randomgen"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the password every user fixture can sign in with.
const DefaultPassword = "wintermute"

// Contact returns an unsaved contact with a random name and one random phone
// number per default phone type.
func Contact(overrides ...func(*model.Contact)) model.Contact {
	contact := model.Contact{
		FirstName: randomgen.PickFirstName(),
		LastName:  randomgen.PickLastName(),
		Phones:    []model.Phone{},
	}
	for _, phoneType := range model.DefaultPhoneTypes {
		contact.Phones = append(contact.Phones, model.Phone{
			Number:    randomgen.PickPhoneNumber(),
			PhoneType: phoneType,
		})
	}
	for _, override := range overrides {
		override(&contact)
	}
	return contact
}

// User returns an unsaved user with the given role, a random name, a derived
// email address and the default password hashed at the lowest cost to keep
// tests fast.
func User(role string, overrides ...func(*model.User)) model.User {
	firstName := randomgen.PickFirstName()
	lastName := randomgen.PickLastName()
	user := model.User{
		Email:     randomgen.PickEmail(firstName, lastName),
		Role:      role,
		FirstName: firstName,
		LastName:  lastName,
	}
	user.SetPassword(DefaultPassword, bcrypt.MinCost)
	for _, override := range overrides {
		override(&user)
	}
	return user
}

// NewsRelease returns an unsaved news release with a fixed announcement so
// that tests relying on its values stay deterministic.
func NewsRelease(overrides ...func(*model.NewsRelease)) model.NewsRelease {
	release := model.NewsRelease{
		Title:      "Webkontor switches to a contact directory",
		Body:       "The address books of all departments have been merged into one searchable directory.",
		ReleasedOn: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, override := range overrides {
		override(&release)
	}
	return release
}

package store

import (
	"github.com/google/uuid"
	"gitlab.com/webkontor/contactbook/internal/model"
)

// GetUserByEmail returns the user registered under the given email address.
func GetUserByEmail(email string) (model.User, error) {
	var users []model.User
	if err := selectUserWhereEmail.Select(&users, email); err != nil {
		return model.User{}, err
	}
	if len(users) == 0 {
		return model.User{}, ErrNotFound
	}
	return users[0], nil
}

// CreateUser inserts the user into the database. A missing id is filled with
// a fresh UUID before the insert.
func CreateUser(user *model.User) error {
	if user.Id == "" {
		user.Id = uuid.NewString()
	}
	_, err := insertUser.Exec(user)
	return err
}

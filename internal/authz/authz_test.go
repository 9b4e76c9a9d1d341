package authz

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/webkontor/contactbook/internal/model"
)

// TestIsAllowedGrid checks every combination of action and role against the
// expected decision: reading is public, writing requires a signed-in user,
// and administrators hold exactly the same permissions as users.
func TestIsAllowedGrid(t *testing.T) {
	identities := map[string]model.Identity{
		model.RoleAdministrator: {UserID: "3d9cf1a2-0001-4ccd-9f66-d60a8977cb6a", Role: model.RoleAdministrator},
		model.RoleUser:          {UserID: "3d9cf1a2-0002-4ccd-9f66-d60a8977cb6a", Role: model.RoleUser},
		model.RoleGuest:         model.Guest(),
	}
	allowed := map[Action]map[string]bool{
		ActionList:     {model.RoleAdministrator: true, model.RoleUser: true, model.RoleGuest: true},
		ActionShow:     {model.RoleAdministrator: true, model.RoleUser: true, model.RoleGuest: true},
		ActionNewForm:  {model.RoleAdministrator: true, model.RoleUser: true, model.RoleGuest: false},
		ActionEditForm: {model.RoleAdministrator: true, model.RoleUser: true, model.RoleGuest: false},
		ActionCreate:   {model.RoleAdministrator: true, model.RoleUser: true, model.RoleGuest: false},
		ActionUpdate:   {model.RoleAdministrator: true, model.RoleUser: true, model.RoleGuest: false},
		ActionDestroy:  {model.RoleAdministrator: true, model.RoleUser: true, model.RoleGuest: false},
	}

	assert.Equal(t, len(AllActions), len(allowed))
	for _, action := range AllActions {
		for role, identity := range identities {
			expected := allowed[action][role]
			actual := IsAllowed(action, identity)
			assert.Equal(t, expected, actual, fmt.Sprintf("action %s, role %s", action, role))
		}
	}
}

// TestIsAllowedUnknownRole verifies that made-up roles are treated like
// guests.
func TestIsAllowedUnknownRole(t *testing.T) {
	intruder := model.Identity{UserID: "0", Role: "superuser"}
	assert.True(t, IsAllowed(ActionList, intruder))
	assert.True(t, IsAllowed(ActionShow, intruder))
	assert.False(t, IsAllowed(ActionCreate, intruder))
	assert.False(t, IsAllowed(ActionDestroy, intruder))
}

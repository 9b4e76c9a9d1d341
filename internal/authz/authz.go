package authz

import (
	"gitlab.com/webkontor/contactbook/internal/model"
)

// Action names one of the operations a caller can attempt on the directory.
type Action string

const (
	ActionList     Action = "list"
	ActionShow     Action = "show"
	ActionNewForm  Action = "new_form"
	ActionEditForm Action = "edit_form"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDestroy  Action = "destroy"
)

// AllActions lists every action the directory dispatches.
var AllActions = []Action{
	ActionList, ActionShow, ActionNewForm, ActionEditForm,
	ActionCreate, ActionUpdate, ActionDestroy,
}

// IsAllowed reports whether the identity may perform the action. Listing and
// showing contacts is open to everyone; every other action requires a
// signed-in user. Administrators hold no additional permissions over regular
// users.
func IsAllowed(action Action, identity model.Identity) bool {
	switch action {
	case ActionList, ActionShow:
		return true
	default:
		return identity.Authenticated()
	}
}

package service

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gitlab.com/webkontor/contactbook/internal/authz"
	"gitlab.com/webkontor/contactbook/internal/config"
	"gitlab.com/webkontor/contactbook/internal/logger"
	"gitlab.com/webkontor/contactbook/internal/model"
	"gitlab.com/webkontor/contactbook/internal/store"
	"go.uber.org/zap"
)

// SetupHttpRouter initializes the REST API router and registers all endpoints.
// Every request first has its identity resolved, and every endpoint is guarded
// by the authorization check for its action before the handler runs.
func SetupHttpRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if strings.EqualFold(cfg.GinLogging, "off") {
		logger.L.Info("http request logging turned off")
	} else {
		router.Use(RequestLogger())
	}
	router.Use(Identify())

	router.GET("/contacts", Authorize(authz.ActionList), findContacts)
	router.GET("/contacts/new", Authorize(authz.ActionNewForm), newContactForm)
	router.GET("/contacts/:id", Authorize(authz.ActionShow), findContactByID)
	router.GET("/contacts/:id/edit", Authorize(authz.ActionEditForm), editContactForm)
	router.POST("/contacts", Authorize(authz.ActionCreate), createContact)
	router.PUT("/contacts/:id", Authorize(authz.ActionUpdate), updateContactByID)
	router.PATCH("/contacts/:id", Authorize(authz.ActionUpdate), updateContactByID)
	router.DELETE("/contacts/:id", Authorize(authz.ActionDestroy), deleteContactByID)
	router.POST("/login", login)
	return router
}

// findContacts responds with the list of contacts as JSON, ordered by last
// name and then first name. Each contact carries its phones.
//
// The URL parameter 'letter' narrows the result to contacts whose last name
// starts with it. An empty result is answered with an empty list.
//
// REST API calls:
//
//	> curl "http://localhost:8080/contacts"
//	> curl "http://localhost:8080/contacts?letter=S"
func findContacts(c *gin.Context) {
	letter := c.Query("letter")
	contacts, err := store.ListContacts(letter)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, contacts)
}

// findContactByID locates the contact whose ID value matches the id parameter
// of the request URL, then returns that contact as a response.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/56
func findContactByID(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}
	contact, err := store.GetContact(id)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, contact)
}

// newContactForm responds with an unsaved contact for prefilling the creation
// form. It carries one empty phone for each default phone type.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/new --header "Authorization: Bearer <token>"
func newContactForm(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, model.ScaffoldContact())
}

// editContactForm responds with the stored contact for prefilling the edit
// form.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/56/edit --header "Authorization: Bearer <token>"
func editContactForm(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}
	contact, err := store.GetContact(id)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, contact)
}

// createContact inserts the contact specified in the request's JSON into the
// database, together with all of its phones. On success it redirects to the
// new contact's show view. A submission that fails validation is answered
// with the entered values and one message per offending field, and nothing
// is written.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts --request "POST" --include --header "Authorization: Bearer <token>" --header "Content-Type: application/json" --data '{"firstname": "Jane", "lastname": "Smith", "phones": [{"number": "+420 111", "phone_type": "home"}]}'
func createContact(c *gin.Context) {
	var input model.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	contact, err := store.CreateContact(input)
	if err != nil {
		handleRejectedContact(c, contact, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/contacts/%d", contact.Id))
}

// updateContactByID updates the contact whose ID value matches the id
// parameter of the request URL. Only the submitted fields are changed; a
// submitted phone list replaces the stored phones as a whole. On success it
// redirects to the contact's show view. A submission that fails validation
// is answered with the entered values and one message per offending field,
// and nothing is written.
//
// Example REST API calls:
//
//	> curl http://localhost:8080/contacts/56 --request "PUT" --include --header "Authorization: Bearer <token>" --header "Content-Type: application/json" --data '{"lastname": "Lawrence"}'
//	> curl http://localhost:8080/contacts/56 --request "PATCH" --include --header "Authorization: Bearer <token>" --header "Content-Type: application/json" --data '{"phones": [{"number": "+420 222", "phone_type": "mobile"}]}'
func updateContactByID(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}
	var input model.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}

	// It only makes sense to continue if we have at least one value to update.
	if input.Empty() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "no values to be updated"})
		return
	}

	contact, err := store.UpdateContact(id, input)
	if err != nil {
		handleRejectedContact(c, contact, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/contacts/%d", contact.Id))
}

// deleteContactByID deletes the contact whose ID value matches the id
// parameter of the request URL from the database, together with all of its
// phones. On success it redirects to the contact list.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/56 --request "DELETE" --include --header "Authorization: Bearer <token>"
func deleteContactByID(c *gin.Context) {
	id, ok := parseId(c)
	if !ok {
		return
	}
	if err := store.DeleteContact(id); err != nil {
		handleStoreError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/contacts")
}

// parseId reads the id parameter of the request URL. A value that is not a
// number cannot belong to any contact, so the request is answered with NOT
// FOUND right away.
func parseId(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "invalid id parameter"})
		return 0, false
	}
	return id, true
}

// handleStoreError answers the request according to the store error: unknown
// ids yield NOT FOUND, anything else is logged and answered with INTERNAL
// SERVER ERROR.
func handleStoreError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
		return
	}
	logger.L.Error("store operation failed",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err))
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
}

// handleRejectedContact answers a failed create or update. A validation
// failure echoes the rejected candidate alongside the per-field messages so
// that the form can be re-displayed with the entered values.
func handleRejectedContact(c *gin.Context, contact model.Contact, err error) {
	var validationErr *store.ValidationError
	if errors.As(err, &validationErr) {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"message": "validation failed",
			"errors":  validationErr.Fields,
			"contact": contact,
		})
		return
	}
	handleStoreError(c, err)
}

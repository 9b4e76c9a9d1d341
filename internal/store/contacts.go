package store

import (
	"github.com/jmoiron/sqlx"
	"gitlab.com/webkontor/contactbook/internal/model"
)

// ListContacts returns all contacts ordered by last name and first name,
// each with its phones attached. A non-empty letter narrows the result to
// contacts whose last name starts with it. An empty result is a valid result.
func ListContacts(letter string) ([]model.Contact, error) {
	contacts := []model.Contact{}
	var err error
	if letter != "" {
		err = db.Select(&contacts, `
			SELECT * FROM contacts
			WHERE lastname LIKE ?
			ORDER BY lastname, firstname, id
		`, letter+"%")
	} else {
		err = db.Select(&contacts, `
			SELECT * FROM contacts
			ORDER BY lastname, firstname, id
		`)
	}
	if err != nil {
		return nil, err
	}
	if err := attachPhones(contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// attachPhones loads the phones of all given contacts in one query and
// distributes them onto their owners, ordered by id.
func attachPhones(contacts []model.Contact) error {
	if len(contacts) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(contacts))
	byId := make(map[int64]*model.Contact, len(contacts))
	for i := range contacts {
		contacts[i].Phones = []model.Phone{}
		ids = append(ids, contacts[i].Id)
		byId[contacts[i].Id] = &contacts[i]
	}
	query, args, err := sqlx.In(`
		SELECT * FROM phones WHERE contact_id IN (?) ORDER BY contact_id, id
	`, ids)
	if err != nil {
		return err
	}
	var phones []model.Phone
	if err := db.Select(&phones, db.Rebind(query), args...); err != nil {
		return err
	}
	for _, phone := range phones {
		if contact, ok := byId[phone.ContactId]; ok {
			contact.Phones = append(contact.Phones, phone)
		}
	}
	return nil
}

// GetContact returns the contact with the given id and its phones.
func GetContact(id int64) (model.Contact, error) {
	var contacts []model.Contact
	if err := selectContactWhereId.Select(&contacts, id); err != nil {
		return model.Contact{}, err
	}
	if len(contacts) == 0 {
		return model.Contact{}, ErrNotFound
	}
	contact := contacts[0]
	contact.Phones = []model.Phone{}
	if err := selectPhonesWhereContactId.Select(&contact.Phones, id); err != nil {
		return model.Contact{}, err
	}
	return contact, nil
}

// CreateContact validates the submitted contact and writes it together with
// all of its phones in a single transaction. Nothing is written unless the
// whole candidate passes validation. On a validation failure the returned
// contact carries the rejected candidate so callers can re-display the
// entered values.
func CreateContact(input model.ContactInput) (model.Contact, error) {
	candidate := input.Merge(model.Contact{})
	if err := validateContact(candidate); err != nil {
		return candidate, err
	}

	tx, err := db.Beginx()
	if err != nil {
		return candidate, err
	}
	defer tx.Rollback()

	result, err := tx.NamedExec(`
		INSERT INTO contacts (firstname, lastname)
		VALUES (:firstname, :lastname)
	`, candidate)
	if err != nil {
		return candidate, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return candidate, err
	}
	candidate.Id = id
	if err := insertPhones(tx, &candidate); err != nil {
		return candidate, err
	}
	if err := tx.Commit(); err != nil {
		return candidate, err
	}
	return candidate, nil
}

// UpdateContact loads the stored contact, applies the submitted fields,
// validates the merged result and only then writes the changes, all in a
// single transaction. Submitted phones replace the stored phone list as a
// whole; name fields missing from the submission keep their stored values.
// On a validation failure nothing is written and the returned contact
// carries the rejected candidate.
func UpdateContact(id int64, input model.ContactInput) (model.Contact, error) {
	current, err := GetContact(id)
	if err != nil {
		return model.Contact{}, err
	}
	merged := input.Merge(current)
	if err := validateContact(merged); err != nil {
		return merged, err
	}

	tx, err := db.Beginx()
	if err != nil {
		return merged, err
	}
	defer tx.Rollback()

	var args []interface{}
	sql := "UPDATE contacts SET "
	if input.FirstName != nil {
		args = append(args, *input.FirstName)
		sql += "firstname=?, "
	}
	if input.LastName != nil {
		args = append(args, *input.LastName)
		sql += "lastname=?, "
	}
	if len(args) > 0 {
		sql = sql[:len(sql)-2]
		sql += " WHERE id=?"
		args = append(args, id)
		if _, err := tx.Exec(sql, args...); err != nil {
			return merged, err
		}
	}

	if input.Phones != nil {
		if _, err := tx.Exec("DELETE FROM phones WHERE contact_id = ?", id); err != nil {
			return merged, err
		}
		if err := insertPhones(tx, &merged); err != nil {
			return merged, err
		}
	}
	if err := tx.Commit(); err != nil {
		return merged, err
	}
	return merged, nil
}

// DeleteContact removes the contact and all of its phones in a single
// transaction.
func DeleteContact(id int64) error {
	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM phones WHERE contact_id = ?", id); err != nil {
		return err
	}
	result, err := tx.Exec("DELETE FROM contacts WHERE id = ?", id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

// insertPhones writes the contact's phones inside the transaction and fills
// in their newly assigned ids.
func insertPhones(tx *sqlx.Tx, contact *model.Contact) error {
	for i := range contact.Phones {
		contact.Phones[i].ContactId = contact.Id
		result, err := tx.NamedExec(`
			INSERT INTO phones (contact_id, number, phone_type)
			VALUES (:contact_id, :number, :phone_type)
		`, contact.Phones[i])
		if err != nil {
			return err
		}
		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		contact.Phones[i].Id = id
	}
	return nil
}

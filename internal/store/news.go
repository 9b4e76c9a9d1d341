package store

import (
	"gitlab.com/webkontor/contactbook/internal/model"
)

// CreateNewsRelease inserts the news release into the database and fills in
// its newly assigned id.
func CreateNewsRelease(release *model.NewsRelease) error {
	result, err := insertNewsRelease.Exec(release)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	release.Id = id
	return nil
}

// GetNewsRelease returns the news release with the given id.
func GetNewsRelease(id int64) (model.NewsRelease, error) {
	var releases []model.NewsRelease
	if err := selectNewsReleaseWhereId.Select(&releases, id); err != nil {
		return model.NewsRelease{}, err
	}
	if len(releases) == 0 {
		return model.NewsRelease{}, ErrNotFound
	}
	return releases[0], nil
}

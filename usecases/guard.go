package usecases

import "health-server/entities"

// CheckOwner permits an operation only when the record belongs to the session user.
func CheckOwner(recordOwnerID, userID string) error {
	if userID == "" || recordOwnerID != userID {
		return entities.ErrForbidden
	}
	return nil
}

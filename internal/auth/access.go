package auth

import "movie-catalog/internal/models"

// CanModify reports whether user may change or delete a resource owned by
// ownerID. Superusers may modify anything.
func CanModify(user *models.User, ownerID uint) bool {
	if user == nil || user.ID == 0 {
		return false
	}
	return user.IsSuperuser || user.ID == ownerID
}

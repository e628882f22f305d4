// Package authz holds the row-access rules for listings: rows are private
// to their owner, with a public-read exception for published listings.
// Handlers call these checks before every persistence operation.
package authz

import "lankastay-backend/internal/models"

func CanWrite(callerID, ownerID uint) bool {
	return callerID != 0 && callerID == ownerID
}

func CanRead(callerID, ownerID uint, status models.PropertyStatus) bool {
	return status == models.StatusPublished || CanWrite(callerID, ownerID)
}

package util

import "eduflow_backend/internal/model"

// CanWrite is the single ownership policy for course and lesson mutation:
// permitted iff the subject is an admin or owns the resource. Lesson
// ownership is derived through the parent course's educator.
//
// Note the platform asymmetries kept on purpose: lesson creation does NOT
// accept the admin override (callers check ownership directly), and
// enrollment mutation is owner-only with no admin path.
func CanWrite(subjectID uint, role model.UserRole, resourceOwnerID uint) bool {
	return role == model.RoleAdmin || subjectID == resourceOwnerID
}

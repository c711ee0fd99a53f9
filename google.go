package lazyuuid

import googleuuid "github.com/google/uuid"

// FromGoogle converts a github.com/google/uuid UUID.
func FromGoogle(u googleuuid.UUID) UUID {
	return UUID(u)
}

// Google returns u as a github.com/google/uuid UUID, for APIs built on that
// package.
func (u UUID) Google() googleuuid.UUID {
	return googleuuid.UUID(u)
}

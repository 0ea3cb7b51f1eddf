package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// ServiceUUID derives the identity for a catalog service from its slug.
func ServiceUUID(slug string) uuid.UUID {
	return UUID("go-localpages:service:" + strings.ToLower(strings.TrimSpace(slug)))
}

// CityUUID derives the identity for a city from its slug.
func CityUUID(slug string) uuid.UUID {
	return UUID("go-localpages:city:" + strings.ToLower(strings.TrimSpace(slug)))
}

// ServicePageUUID derives the identity for a generated page from its parent
// pair. Regenerating a page therefore reuses the same identifier.
func ServicePageUUID(cityID, serviceID uuid.UUID) uuid.UUID {
	return UUID("go-localpages:service_page:" + cityID.String() + ":" + serviceID.String())
}

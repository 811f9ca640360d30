package session

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/artgallery/gallery-service/internal/core/domain"
)

// DefaultRoster returns the seed identities the store starts with. The ids
// mirror the backend's real user records (artists) plus two high-id demo
// enthusiasts, so identifier assignment never collides.
func DefaultRoster() []domain.Identity {
	return []domain.Identity{
		{
			ID:        1,
			Username:  "admin",
			Email:     "admin@artgallery.com",
			FullName:  "Gallery Administrator",
			Role:      domain.RoleArtist,
			Bio:       "Art Gallery System Administrator",
			CreatedAt: time.Date(2025, 7, 13, 0, 32, 17, 0, time.UTC),
			IsActive:  true,
		},
		{
			ID:        2,
			Username:  "painter1",
			Email:     "painter@artgallery.com",
			FullName:  "Sample Artist",
			Role:      domain.RoleArtist,
			Bio:       "Professional artist specializing in contemporary works",
			CreatedAt: time.Date(2025, 7, 13, 0, 32, 17, 0, time.UTC),
			IsActive:  true,
		},
		{
			ID:        5,
			Username:  "test",
			Email:     "test@gmail.com",
			FullName:  "test",
			Role:      domain.RoleArtist,
			Bio:       "test bio",
			CreatedAt: time.Date(2025, 7, 13, 1, 40, 8, 0, time.UTC),
			IsActive:  true,
		},
		{
			ID:        100,
			Username:  "art_lover",
			Email:     "art@lover.com",
			FullName:  "Art Lover",
			Role:      domain.RoleEnthusiast,
			Bio:       "Passionate about discovering new artists",
			CreatedAt: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
			IsActive:  true,
		},
		{
			ID:        101,
			Username:  "gallery_visitor",
			Email:     "visitor@gallery.com",
			FullName:  "Gallery Visitor",
			Role:      domain.RoleEnthusiast,
			Bio:       "Regular gallery visitor and art appreciator",
			CreatedAt: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			IsActive:  true,
		},
	}
}

// DefaultPasswords returns the demo credentials for the seed roster, used
// when the accept-any login policy is disabled.
func DefaultPasswords() map[int]string {
	return map[int]string{
		1:   "admin123",
		2:   "password123",
		5:   "password123",
		100: "password123",
		101: "password123",
	}
}

// BcryptVerifier checks passwords against bcrypt hashes keyed by identity id.
// It exists so a real credential policy can replace AcceptAny without any
// change to the store or the guard.
type BcryptVerifier struct {
	hashes map[int][]byte
}

// NewBcryptVerifier hashes the given plaintext passwords (keyed by identity
// id) at construction time.
func NewBcryptVerifier(passwords map[int]string) (*BcryptVerifier, error) {
	hashes := make(map[int][]byte, len(passwords))
	for id, pw := range passwords {
		h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashes[id] = h
	}
	return &BcryptVerifier{hashes: hashes}, nil
}

// Verify reports whether the password matches the stored hash for the
// identity. Identities without a stored hash are rejected.
func (v *BcryptVerifier) Verify(identity domain.Identity, password string) bool {
	h, ok := v.hashes[identity.ID]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword(h, []byte(password)) == nil
}

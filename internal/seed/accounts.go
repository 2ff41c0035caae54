// Package seed holds the fixed demo account directory. It is the only
// credential source: there is no user database behind this service.
package seed

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dorixona/pharmacy-api/internal/domain"
	"github.com/dorixona/pharmacy-api/internal/domain/entity"
)

type account struct {
	user entity.User
	hash []byte
}

// Directory is the closed set of known (email, password) pairs, each
// mapped to a fixed identity.
type Directory struct {
	accounts []account
}

// NewDirectory builds the three demo accounts. Passwords are bcrypt
// hashed at construction so plaintext never lives past startup.
func NewDirectory() (*Directory, error) {
	createdAt := time.Now().UTC().Format(time.RFC3339)
	demo := []struct {
		user     entity.User
		password string
	}{
		{
			user: entity.User{
				ID:        "1",
				Name:      "Admin User",
				Email:     "admin@dorixona.uz",
				Phone:     "+998901234567",
				Role:      entity.RoleSuperAdmin,
				CreatedAt: createdAt,
			},
			password: "admin123",
		},
		{
			user: entity.User{
				ID:        "2",
				Name:      "Dorixona Admin",
				Email:     "pharmacy@dorixona.uz",
				Phone:     "+998902345678",
				Role:      entity.RolePharmacyAdmin,
				CreatedAt: createdAt,
			},
			password: "pharmacy123",
		},
		{
			user: entity.User{
				ID:        "3",
				Name:      "Mijoz User",
				Email:     "mijoz@dorixona.uz",
				Phone:     "+998909876543",
				Role:      entity.RoleCustomer,
				CreatedAt: createdAt,
			},
			password: "mijoz123",
		},
	}

	d := &Directory{}
	for _, a := range demo {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		d.accounts = append(d.accounts, account{user: a.user, hash: hash})
	}
	return d, nil
}

// Authenticate checks the (email, password) pair against the directory
// and returns the matching identity, or domain.ErrInvalidCredentials.
// An unknown email and a wrong password are indistinguishable to the
// caller.
func (d *Directory) Authenticate(email, password string) (*entity.User, error) {
	for _, a := range d.accounts {
		if a.user.Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword(a.hash, []byte(password)); err != nil {
			return nil, domain.ErrInvalidCredentials
		}
		u := a.user
		return &u, nil
	}
	return nil, domain.ErrInvalidCredentials
}

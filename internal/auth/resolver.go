package auth

import (
	"errors"
	"fmt"

	"aqari/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Login methods accepted by the resolver.
const (
	MethodEmail      = "email"
	MethodNationalID = "nationalId"
)

var (
	// ErrBadMethod reports a loginMethod outside the accepted set.
	ErrBadMethod = errors.New("invalid login method")
	// ErrBadCredentials reports an email with no matching user.
	ErrBadCredentials = errors.New("unknown email")
	// ErrBadPassword reports a credential mismatch for a known user.
	ErrBadPassword = errors.New("wrong password")
	// ErrIDNotRegistered reports a national id with no linked profile.
	ErrIDNotRegistered = errors.New("national id not registered")
)

// Resolver resolves login attempts to stored identities. It only reads from
// the store and never returns or logs the raw credential.
type Resolver struct {
	DB *gorm.DB
}

// Login resolves identifier/password under the given method and returns the
// matched user. The caller serializes the user; the password hash carries a
// json:"-" tag so it never reaches the client.
//
// The nationalId path intentionally performs no credential check: possession
// of a registered national id resolves directly to the linked user. This
// mirrors the trusted-channel assumption of the legacy deployment.
func (r *Resolver) Login(method, identifier, password string) (*models.User, error) {
	switch method {
	case MethodEmail:
		return r.byEmail(identifier, password)
	case MethodNationalID:
		return r.byNationalID(identifier)
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadMethod, method)
	}
}

func (r *Resolver) byEmail(email, password string) (*models.User, error) {
	var user models.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		// Unmigrated legacy rows still hold plaintext; accept an exact match.
		if password != user.Password {
			return nil, ErrBadPassword
		}
	}

	return &user, nil
}

func (r *Resolver) byNationalID(id string) (*models.User, error) {
	var owner models.Owner
	err := r.DB.Where("nationalId = ?", id).First(&owner).Error
	if err == nil && owner.UserID != "" {
		if user, uerr := r.userByID(owner.UserID); uerr == nil {
			return user, nil
		} else if !errors.Is(uerr, gorm.ErrRecordNotFound) {
			return nil, uerr
		}
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup owner: %w", err)
	}

	var tenant models.Tenant
	err = r.DB.Where("tenantIdNo = ?", id).First(&tenant).Error
	if err == nil && tenant.UserID != "" {
		if user, uerr := r.userByID(tenant.UserID); uerr == nil {
			return user, nil
		} else if !errors.Is(uerr, gorm.ErrRecordNotFound) {
			return nil, uerr
		}
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup tenant: %w", err)
	}

	return nil, ErrIDNotRegistered
}

func (r *Resolver) userByID(id string) (*models.User, error) {
	var user models.User
	if err := r.DB.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

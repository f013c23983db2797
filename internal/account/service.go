// internal/account/service.go
package account

import "context"

// Service defines the interface for session and profile workflows.
type Service interface {
	Login(ctx context.Context, creds Credentials) (*Profile, error)
	Register(ctx context.Context, reg Registration) (*Profile, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*Profile, error)
	UpdateProfile(ctx context.Context, update ProfileUpdate) (*Profile, error)
	ChangePassword(ctx context.Context, change PasswordChange) error
}

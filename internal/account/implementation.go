// internal/account/implementation.go
package account

import (
	"context"

	"github.com/rs/zerolog"

	"eventpass/internal/api"
	"eventpass/internal/schema"
	"eventpass/internal/validate"
)

// service implements the Service interface.
type service struct {
	client *api.Client
	log    *zerolog.Logger
}

// NewService creates a new account service instance.
func NewService(client *api.Client, log *zerolog.Logger) Service {
	return &service{client: client, log: log}
}

// authResponse is the body returned by login and register.
type authResponse struct {
	Token string          `json:"token"`
	User  schema.Document `json:"user"`
}

// Login authenticates against the public login endpoint and installs the
// issued token in the shared session.
func (s *service) Login(ctx context.Context, creds Credentials) (*Profile, error) {
	if err := validate.Struct(ctx, creds); err != nil {
		return nil, api.NewDomainError(err.Error())
	}

	var resp authResponse
	if err := s.client.Post(ctx, "/v1/auth/login", creds, &resp, api.Public()); err != nil {
		return nil, api.AsError(err)
	}
	if resp.Token == "" {
		return nil, api.NewSchemaError("login response missing token")
	}

	s.client.Session().Set(resp.Token)
	profile, err := normalizeProfile(resp.User)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", profile.ID).Msg("logged in")
	return &profile, nil
}

// Register creates an account through the public registration endpoint and
// logs the new user in.
func (s *service) Register(ctx context.Context, reg Registration) (*Profile, error) {
	if err := validate.Struct(ctx, reg); err != nil {
		return nil, api.NewDomainError(err.Error())
	}

	var resp authResponse
	if err := s.client.Post(ctx, "/v1/auth/register", reg, &resp, api.Public()); err != nil {
		return nil, api.AsError(err)
	}
	if resp.Token == "" {
		return nil, api.NewSchemaError("register response missing token")
	}

	s.client.Session().Set(resp.Token)
	profile, err := normalizeProfile(resp.User)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Logout tells the server to revoke the session and clears the local token.
// The user's intent is to leave the session, so a failing server never
// blocks it: the token is cleared and the logout reported successful even
// when the revocation call fails.
func (s *service) Logout(ctx context.Context) error {
	err := s.client.Post(ctx, "/v1/auth/logout", nil, nil)
	s.client.Session().Clear()
	if err != nil {
		s.log.Warn().Err(err).Msg("server-side logout failed, local session cleared anyway")
	}
	return nil
}

// Profile fetches the authenticated user's profile.
func (s *service) Profile(ctx context.Context) (*Profile, error) {
	var doc schema.Document
	if err := s.client.Get(ctx, "/v1/profile", nil, &doc); err != nil {
		return nil, err
	}
	profile, err := normalizeProfile(doc)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile saves the editable profile fields.
func (s *service) UpdateProfile(ctx context.Context, update ProfileUpdate) (*Profile, error) {
	if err := validate.Struct(ctx, update); err != nil {
		return nil, api.NewDomainError(err.Error())
	}
	var doc schema.Document
	if err := s.client.Put(ctx, "/v1/profile", update, &doc); err != nil {
		return nil, err
	}
	profile, err := normalizeProfile(doc)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ChangePassword submits a password change.
func (s *service) ChangePassword(ctx context.Context, change PasswordChange) error {
	if err := validate.Struct(ctx, change); err != nil {
		return api.NewDomainError(err.Error())
	}
	return s.client.Post(ctx, "/v1/auth/password", change, nil)
}

// normalizeProfile maps a raw user document. The avatar arrives under either
// of two legacy keys.
func normalizeProfile(doc schema.Document) (Profile, error) {
	var p Profile
	var err error

	if p.ID, err = schema.Identifier(doc, "id"); err != nil {
		return Profile{}, err
	}
	if p.Name, err = schema.String(doc, "", "name", "full_name"); err != nil {
		return Profile{}, err
	}
	if p.Email, err = schema.String(doc, "", "email"); err != nil {
		return Profile{}, err
	}
	if p.Avatar, err = schema.OptionalString(doc, "avatar", "image"); err != nil {
		return Profile{}, err
	}
	if p.Phone, err = schema.OptionalString(doc, "phone"); err != nil {
		return Profile{}, err
	}
	if p.Role, err = schema.String(doc, "attendee", "role"); err != nil {
		return Profile{}, err
	}
	return p, nil
}

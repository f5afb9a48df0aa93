package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ruizdev/challenger/internal/result"
	"github.com/ruizdev/challenger/internal/webserver/guard"
	"github.com/ruizdev/challenger/internal/webserver/model"
	"github.com/ruizdev/challenger/internal/webserver/token"
	"gorm.io/gorm"
)

// Users owns the user lifecycle: invitation, registration, password
// management, role changes and deletion.
type Users struct {
	db          *gorm.DB
	users       *model.UserRepository
	invitations *model.InvitationRepository
	submissions *Submissions
	tokens      *token.Service
	resetGuard  *guard.ResetGuard
	cfg         Config
}

func NewUsers(db *gorm.DB, tokens *token.Service, resetGuard *guard.ResetGuard, submissions *Submissions, cfg Config) *Users {
	return &Users{
		db:          db,
		users:       &model.UserRepository{DB: db},
		invitations: &model.InvitationRepository{DB: db},
		submissions: submissions,
		tokens:      tokens,
		resetGuard:  resetGuard,
		cfg:         cfg,
	}
}

// Invite creates a role-INIT user for the given address and returns the
// signed invite token to be emailed. Non-admin invitees get a submission
// assigned in the same transaction, so neither record persists without
// the other.
func (s *Users) Invite(email string, isAdmin bool) (*model.User, string, error) {
	if !model.ValidEmail(email) {
		return nil, "", model.ErrInvalidEmail
	}

	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", model.ErrUserAlreadyExists
	}

	user := &model.User{
		Uuid:  uuid.NewString(),
		Email: email,
		Role:  model.RoleInit,
		// Throwaway password, replaced when the invitee registers
		Password: model.Hash(uuid.NewString()),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if isAdmin {
			return nil
		}
		return s.submissions.assign(tx, email)
	})
	if err != nil {
		return nil, "", err
	}

	signed, err := s.issueInvite(email, isAdmin)
	if err != nil {
		return nil, "", err
	}
	return user, signed, nil
}

// Register consumes an invite token, promoting the invited account to
// applicant or admin and storing its chosen password.
func (s *Users) Register(tokenString, password string) (*model.User, error) {
	claims, err := s.tokens.DecodeInvite(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(claims.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.ErrResourceNotFound
	}

	// Idempotency gate: a token for an already registered account is
	// rejected no matter whether the invitation record still exists.
	if user.Registered() {
		return nil, fmt.Errorf("%w: account already registered", model.ErrInvalidToken)
	}

	if len(password) < s.cfg.MinPasswordLength {
		return nil, model.ErrWeakPassword
	}

	role := model.RoleApplicant
	if claims.IsAdmin {
		role = model.RoleAdmin
	}
	if !user.CanChangeRoleTo(role) {
		return nil, model.ErrInvalidRoleTransition
	}

	user.Role = role
	user.Password = model.Hash(password)
	if err := s.users.Update(user); err != nil {
		return nil, err
	}

	s.invitations.DeleteByEmail(user.Email)

	return user, nil
}

// SetPassword replaces a user's role and password in one update. The role
// is recomputed from isAdmin, not preserved, so callers must state the
// intended role explicitly.
func (s *Users) SetPassword(email, password string, isAdmin bool) error {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return model.ErrResourceNotFound
	}

	if len(password) < s.cfg.MinPasswordLength {
		return model.ErrWeakPassword
	}

	user.Role = model.RoleApplicant
	if isAdmin {
		user.Role = model.RoleAdmin
	}
	user.Password = model.Hash(password)
	return s.users.Update(user)
}

// Delete removes a user together with their submissions and invitation
// record, all or nothing. Remote repositories are cleaned up afterwards,
// best effort.
func (s *Users) Delete(callerEmail, email string) error {
	if callerEmail == email {
		return model.ErrSelfDelete
	}

	user, err := s.users.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return model.ErrResourceNotFound
	}

	submissions, err := s.submissions.allForUser(email)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_email = ?", email).Delete(&model.Submission{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(user).Error; err != nil {
			return err
		}
		return tx.Where("email = ?", email).Delete(&model.Invitation{}).Error
	})
	if err != nil {
		return err
	}

	s.submissions.cleanupRemote(submissions)
	return nil
}

// ResendInvite issues a fresh invite token for a user who has not yet
// registered, overwriting the tracked expiry of the previous invite.
func (s *Users) ResendInvite(email string, isAdmin bool) (string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", model.ErrResourceNotFound
	}
	if user.Registered() {
		return "", model.ErrUserAlreadyRegistered
	}

	return s.issueInvite(email, isAdmin)
}

// ChangeRole updates a user's role after validating the transition table.
func (s *Users) ChangeRole(email string, role int) (*model.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.ErrResourceNotFound
	}
	if !user.CanChangeRoleTo(role) {
		return nil, model.ErrInvalidRoleTransition
	}

	user.Role = role
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// List returns a page of users, optionally filtered by email.
func (s *Users) List(page, resultsPerPage int, filter string) (result.Paginated[[]model.User], error) {
	return s.users.List(page, resultsPerPage, filter)
}

// Authenticate checks email and password against the stored hash,
// returning nil without error when they do not match.
func (s *Users) Authenticate(email, password string) (*model.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password != model.Hash(password) {
		return nil, nil
	}
	return user, nil
}

// RequestReset issues a reset token for the given address. An unknown
// address yields an empty token and no error, so callers don't leak
// which emails have accounts.
func (s *Users) RequestReset(email string) (string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}

	return s.tokens.IssueReset(email, time.Now().UTC().Add(s.cfg.RecoveryTimeout))
}

// ResetPassword consumes a reset token and stores the new password. The
// token is marked used right before the password mutation, never after a
// validation failure, so a rejected request does not burn the token.
func (s *Users) ResetPassword(tokenString, password string) error {
	claims, err := s.tokens.DecodeReset(tokenString)
	if err != nil {
		return err
	}

	user, err := s.users.FindByEmail(claims.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return model.ErrResourceNotFound
	}

	if len(password) < s.cfg.MinPasswordLength {
		return model.ErrWeakPassword
	}

	if err := s.resetGuard.Consume(claims.ID); err != nil {
		return err
	}

	user.Password = model.Hash(password)
	return s.users.Update(user)
}

func (s *Users) issueInvite(email string, isAdmin bool) (string, error) {
	validUntil := time.Now().UTC().Add(s.cfg.InvitationTimeout)

	signed, err := s.tokens.IssueInvite(email, isAdmin, validUntil)
	if err != nil {
		return "", err
	}

	if err := s.invitations.Upsert(&model.Invitation{Email: email, ValidUntil: validUntil}); err != nil {
		return "", err
	}
	return signed, nil
}

package user

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/pkg/errors"

	"github.com/mwendwa/elimika/core"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrEmailExists    = errors.New("a user with this email already exists")
	ErrUsernameExists = errors.New("a user with this username already exists")
)

type (
	Repository interface {
		CheckUsernameUniqueness(username, email string, excludedUsers ...User) error
		CreateUser(user User) (User, error)
		QueryAllUsers() ([]User, error)
		GetUserByID(id int) (User, error)
		GetUserByUsername(username string) (User, error)
		GetUserByEmail(email string) (User, error)
		GetUserByUsernameOrEmail(username string) (User, error)
		GetUserByGoogleID(googleID string) (User, error)
		// FilterUsers applies AND operation on available QueryFilter fields.
		// QueryFilter.Search does a case-insensitive match on one of User.Name, User.Username or User.Email.
		FilterUsers(filter QueryFilter) ([]User, error)
		// UpdateUser only saves set fields; isActive and profile are applied
		// when non-nil since their zero values are meaningful.
		UpdateUser(user User, isActive *bool, profile *Profile) (User, error)
		SetLastLogin(id int, at time.Time) error
		DeleteUsersByID(ids ...int) error
	}

	Service interface {
		CheckUniqueness(uname, email string, exclUsers ...User) error
		Create(nu NewUser) (User, error)
		GetOrCreateGoogleUser(name, email, googleID string) (User, error)
		QueryAll() ([]User, error)
		GetByID(id int) (User, error)
		GetByUsername(uname string) (User, error)
		GetByEmail(email string) (User, error)
		GetByUsernameOrEmail(uname string) (User, error)
		Filter(filter QueryFilter) ([]User, error)
		Update(id int, uu UpdateUser) (User, error)
		Delete(ids ...int) error
		RequestPasswordReset(email string) error
		ResetPassword(rp ResetUserPassword) error
		TouchLastLogin(id int) error
	}

	service struct {
		repo    Repository
		mailSvc core.EmailService
		logger  core.Logger
	}
)

var _ Service = (*service)(nil)

func NewService(conf *core.Config, repo Repository, mailSvc core.EmailService, logger core.Logger) Service {
	// token generation reads these; see token_gen.go
	secretKey = conf.SecretKey
	passwordResetTimeoutDelta = conf.PasswordResetTimeoutDelta
	return &service{
		repo:    repo,
		mailSvc: mailSvc,
		logger:  logger,
	}
}

func (svc *service) CheckUniqueness(uname, email string, exclUsers ...User) error {
	if err := svc.repo.CheckUsernameUniqueness(uname, email, exclUsers...); err != nil {
		var field string
		switch errors.Cause(err) {
		case ErrUsernameExists:
			field = "username"
		case ErrEmailExists:
			field = "email"
		default:
			return err
		}
		return core.NewValidationError(err, core.FieldError{Field: field, Error: err.Error()})
	}
	return nil
}

func (svc *service) Create(nu NewUser) (User, error) {
	now := time.Now().UTC()
	usr := User{
		Name:      nu.Name,
		Username:  nu.Username,
		Email:     nu.Email,
		IsActive:  true,
		Roles:     nu.Roles,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if len(usr.Roles) == 0 {
		usr.Roles = []string{RoleStudent}
	}
	if err := usr.SetPassword(nu.Password); err != nil {
		return User{}, errors.Wrap(err, "setting password")
	}

	usr, err := svc.repo.CreateUser(usr)
	if err != nil {
		return User{}, err
	}
	svc.sendWelcomeMail(usr)
	return usr, nil
}

// GetOrCreateGoogleUser resolves a verified Google identity to a local account,
// provisioning a student account on first sign-in. Google accounts carry no
// usable local password.
func (svc *service) GetOrCreateGoogleUser(name, email, googleID string) (User, error) {
	usr, err := svc.repo.GetUserByGoogleID(googleID)
	if err == nil {
		return usr, nil
	}
	if errors.Cause(err) != ErrNotFound {
		return User{}, err
	}

	// fall back to an existing email+password account with the same address
	email = core.CleanString(email, true /* lower */)
	if usr, err = svc.repo.GetUserByEmail(email); err == nil {
		usr.GoogleID = googleID
		usr.UpdatedAt = time.Now().UTC()
		return svc.repo.UpdateUser(usr, nil, nil)
	}
	if errors.Cause(err) != ErrNotFound {
		return User{}, err
	}

	now := time.Now().UTC()
	usr = User{
		Name:      core.CleanString(name),
		Username:  email,
		Email:     email,
		IsActive:  true,
		Roles:     []string{RoleStudent},
		GoogleID:  googleID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	usr, err = svc.repo.CreateUser(usr)
	if err != nil {
		return User{}, err
	}
	svc.sendWelcomeMail(usr)
	return usr, nil
}

func (svc *service) QueryAll() ([]User, error) {
	return svc.repo.QueryAllUsers()
}

func (svc *service) GetByID(id int) (User, error) {
	return svc.repo.GetUserByID(id)
}

func (svc *service) GetByUsername(uname string) (User, error) {
	return svc.repo.GetUserByUsername(core.CleanString(uname, true /* lower */))
}

func (svc *service) GetByEmail(email string) (User, error) {
	return svc.repo.GetUserByEmail(core.CleanString(email, true /* lower */))
}

func (svc *service) GetByUsernameOrEmail(uname string) (User, error) {
	return svc.repo.GetUserByUsernameOrEmail(core.CleanString(uname, true /* lower */))
}

func (svc *service) Filter(filter QueryFilter) ([]User, error) {
	return svc.repo.FilterUsers(filter)
}

func (svc *service) Update(id int, uu UpdateUser) (User, error) {
	usr := User{
		ID:        id,
		Name:      uu.Name,
		Username:  uu.Username,
		Email:     uu.Email,
		Roles:     uu.Roles,
		UpdatedAt: time.Now().UTC(),
	}
	if uu.Password != "" {
		if err := usr.SetPassword(uu.Password); err != nil {
			return User{}, errors.Wrap(err, "setting password")
		}
	}
	return svc.repo.UpdateUser(usr, uu.IsActive, uu.Profile)
}

func (svc *service) Delete(ids ...int) error {
	return svc.repo.DeleteUsersByID(ids...)
}

func (svc *service) TouchLastLogin(id int) error {
	return svc.repo.SetLastLogin(id, time.Now().UTC())
}

func (svc *service) RequestPasswordReset(email string) error {
	usr, err := svc.GetByEmail(email)
	if err != nil {
		return err
	}
	go svc.sendPasswordResetMail(usr)
	return nil
}

func (svc *service) ResetPassword(rp ResetUserPassword) error {
	id, err := decodeUID(rp.UID)
	if err != nil {
		return core.NewValidationError(errInvalidToken)
	}
	usr, err := svc.repo.GetUserByID(id)
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			return core.NewValidationError(errInvalidToken)
		}
		return err
	}
	if err := verifyToken(usr, rp.Token); err != nil {
		return core.NewValidationError(err)
	}

	if err := usr.SetPassword(rp.Password); err != nil {
		return errors.Wrap(err, "setting password")
	}
	usr.UpdatedAt = time.Now().UTC()
	if _, err := svc.repo.UpdateUser(usr, nil, nil); err != nil {
		return err
	}
	svc.sendPasswordResetConfirmationMail(usr)
	return nil
}

func (svc *service) sendWelcomeMail(usr User) {
	if usr.Email == "" {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:           []mail.Address{{Name: usr.Name, Address: usr.Email}},
		Subject:      "Karibu! Your account is ready",
		TemplateName: "welcome",
		TemplateData: struct{ Name string }{Name: usr.Name},
	})
}

func (svc *service) sendPasswordResetMail(usr User) {
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:           []mail.Address{{Name: usr.Name, Address: usr.Email}},
		Subject:      "Password Reset",
		TemplateName: "password-reset",
		TemplateData: struct {
			Name, UID, Token string
		}{
			Name:  usr.Name,
			UID:   EncodeUID(usr),
			Token: MakeToken(usr),
		},
	})
}

func (svc *service) sendPasswordResetConfirmationMail(usr User) {
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: usr.Name, Address: usr.Email}},
		Subject: "Password Reset Successful",
		BodyStr: fmt.Sprintf("Hello %s,\n\nYour password was reset successfully.", usr.Name),
	})
}

package profile

import (
	"strings"

	"github.com/agric-empower/portal/internal/platform/timeutil"
)

// Demo identity shared by the synthesized records.
const (
	DefaultAvatar = "./images/default-avatar.svg"

	demoLocation = "Rhino Refugee Camp, Uganda"
	demoPhone    = "+256 774 330 491"

	signupFirstName = "Community"
	signupLastName  = "Member"
	signupEmail     = "member@agric-empower.org"
	signupLocation  = "rhino"

	loginEmail    = "guest@agric-empower.org"
	loginFullName = "Demo User"
)

// FactoryConfig configures a Factory.
type FactoryConfig struct {
	// DefaultAvatar is the picture used when a record has none.
	DefaultAvatar string
	Clock         timeutil.Clock
	// Roles decides the role of a demo login. Defaults to EmailRoleResolver.
	Roles RoleResolver
}

// Factory builds profile records.
type Factory struct {
	avatar string
	now    timeutil.Clock
	roles  RoleResolver
}

// NewFactory applies defaults for zero-valued fields of cfg.
func NewFactory(cfg FactoryConfig) *Factory {
	f := &Factory{avatar: cfg.DefaultAvatar, now: cfg.Clock, roles: cfg.Roles}
	if f.avatar == "" {
		f.avatar = DefaultAvatar
	}
	if f.now == nil {
		f.now = timeutil.SystemClock
	}
	if f.roles == nil {
		f.roles = EmailRoleResolver{}
	}
	return f
}

// Avatar is the configured default picture.
func (f *Factory) Avatar() string {
	return f.avatar
}

// DefaultFarmer is the record synthesized for the user dashboard.
func (f *Factory) DefaultFarmer() Record {
	return f.demo("Demo Farmer", "demo@agric-empower.org", RoleFarmer)
}

// DefaultAdmin is the record synthesized for the admin dashboard.
func (f *Factory) DefaultAdmin() Record {
	return f.demo("Demo Admin", "admin@agric-empower.org", RoleAdmin)
}

func (f *Factory) demo(name, email string, role Role) Record {
	now := timeutil.ISOString(f.now())
	return Record{
		FullName:      name,
		Email:         email,
		Role:          role,
		Location:      demoLocation,
		Phone:         demoPhone,
		ProfilePicURL: f.avatar,
		JoinDate:      now,
		CreatedAt:     now,
	}
}

// SignupInput is the raw signup form.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Location  string
	Role      string
}

// FromSignup builds a record from the signup form. Blank fields fall back to
// the community member defaults. The email is not format-checked.
func (f *Factory) FromSignup(in SignupInput) Record {
	first := orDefault(in.FirstName, signupFirstName)
	last := orDefault(in.LastName, signupLastName)
	return Record{
		FullName:      first + " " + last,
		FirstName:     first,
		LastName:      last,
		Email:         orDefault(in.Email, signupEmail),
		Phone:         orDefault(in.Phone, demoPhone),
		Location:      orDefault(in.Location, signupLocation),
		Role:          Role(orDefault(in.Role, string(RoleFarmer))),
		ProfilePicURL: f.avatar,
		IsActive:      true,
		CreatedAt:     timeutil.ISOString(f.now()),
	}
}

// FromLogin builds the demo login record. The role comes from the resolver.
func (f *Factory) FromLogin(email string) Record {
	email = orDefault(email, loginEmail)
	return f.withRole(email, f.roles.Resolve(email))
}

// FromVerifiedLogin builds a login record whose role was asserted by a
// verified credential. An empty role falls back to the resolver.
func (f *Factory) FromVerifiedLogin(email string, role Role) Record {
	email = orDefault(email, loginEmail)
	if role == "" {
		role = f.roles.Resolve(email)
	}
	return f.withRole(email, role)
}

func (f *Factory) withRole(email string, role Role) Record {
	return Record{
		FullName:      loginFullName,
		Email:         email,
		Role:          role,
		ProfilePicURL: f.avatar,
		LoginTime:     timeutil.ISOString(f.now()),
	}
}

func orDefault(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return fallback
}

package session

// SignupInput for POST /session/signup. Every field is optional; blanks fall
// back to the community member defaults.
type SignupInput struct {
	Body struct {
		FirstName string `json:"firstName,omitempty" maxLength:"100" doc:"First name"                example:"Jane"`
		LastName  string `json:"lastName,omitempty"  maxLength:"100" doc:"Last name"                 example:"Smith"`
		Email     string `json:"email,omitempty"     maxLength:"254" doc:"Email, not format-checked" example:"jane@agric-empower.org"`
		Phone     string `json:"phone,omitempty"     maxLength:"32"  doc:"Phone number"              example:"+256 774 330 491"`
		Location  string `json:"location,omitempty"  maxLength:"100" doc:"Settlement or zone"        example:"rhino"`
		Role      string `json:"role,omitempty"      maxLength:"32"  doc:"Portal role"               example:"farmer"`
	}
}

// LoginInput for POST /session/login. No password is checked.
type LoginInput struct {
	Body struct {
		Email string `json:"email,omitempty" maxLength:"254" doc:"Email; one containing admin opens the admin dashboard" example:"admin@agric-empower.org"`
	}
}

// VerifiedLoginInput for POST /session/login/verified (bearer token required)
type VerifiedLoginInput struct{}

// LogoutInput for POST /session/logout (no body needed)
type LogoutInput struct{}

package profile

// ProfileGetInput for GET /profile (no body needed)
type ProfileGetInput struct{}

// ProfilePutInput for PUT /profile. The body replaces the stored record.
type ProfilePutInput struct {
	Body Profile
}

// ProfileDeleteInput for DELETE /profile (no body needed)
type ProfileDeleteInput struct{}

package profile

// ProfileGetOutput for GET /profile
type ProfileGetOutput struct {
	Body Profile
}

// ProfilePutOutput for PUT /profile
type ProfilePutOutput struct {
	Body Profile
}

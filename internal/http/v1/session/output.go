package session

// NavigationOutput is returned by every session operation.
type NavigationOutput struct {
	Body Navigation
}

package users

import "github.com/agric-empower/portal/internal/platform/pagination"

// UsersListInput for GET /users
type UsersListInput struct {
	pagination.Params
	Role string `query:"role" enum:"farmer,admin" doc:"Only list users with this role"`
}

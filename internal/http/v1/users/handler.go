package users

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"github.com/agric-empower/portal/internal/demo"
	"github.com/agric-empower/portal/internal/platform/pagination"
	"github.com/agric-empower/portal/internal/platform/timeutil"
	"github.com/agric-empower/portal/internal/service/profile"
)

const cursorKind = "user"

// Register registers the demo users endpoint. prefix is the API mount path
// used to build Link headers.
func Register(api huma.API, clock timeutil.Clock, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID: "list-users",
		Method:      http.MethodGet,
		Path:        "/users",
		Summary:     "List demo users",
		Description: "Returns the fixed demo directory the admin dashboard shows, with cursor pagination.",
		Tags:        []string{"Users"},
	}, func(ctx context.Context, input *UsersListInput) (*UsersListOutput, error) {
		all := demo.GenerateUserList(clock())
		farmers, admins := demo.CountRoles(all)

		filtered := all
		query := url.Values{}
		if input.Role != "" {
			query.Set("role", input.Role)
			filtered = nil
			for _, u := range all {
				if u.Role == profile.Role(input.Role) {
					filtered = append(filtered, u)
				}
			}
		}

		page, err := pagination.Paginate(filtered, pagination.Request{
			Kind:    cursorKind,
			Cursor:  input.Cursor,
			Limit:   input.Limit,
			BaseURL: prefix + "/users",
			Query:   query,
		}, func(u demo.User) string { return u.Email })
		if err != nil {
			if errors.Is(err, pagination.ErrInvalidCursor) || errors.Is(err, pagination.ErrCursorMismatch) {
				return nil, huma.Error400BadRequest("invalid cursor")
			}
			return nil, huma.Error500InternalServerError("internal error")
		}

		out := &UsersListOutput{Link: page.LinkHeader}
		out.Body.Items = make([]User, 0, len(page.Items))
		for _, u := range page.Items {
			out.Body.Items = append(out.Body.Items, fromDemo(u))
		}
		out.Body.Total = page.Total
		out.Body.Roles = RoleCounts{Farmers: farmers, Admins: admins}
		out.Body.NextCursor = page.NextCursor
		return out, nil
	})
}

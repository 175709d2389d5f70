package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	profilehttp "github.com/agric-empower/portal/internal/http/v1/profile"
	"github.com/agric-empower/portal/internal/platform/auth"
	appmiddleware "github.com/agric-empower/portal/internal/platform/middleware"
	profilesvc "github.com/agric-empower/portal/internal/service/profile"
	sessionsvc "github.com/agric-empower/portal/internal/session"
	"github.com/agric-empower/portal/internal/storage"
)

// Register registers session endpoints.
func Register(api huma.API, controller *sessionsvc.Controller) {
	huma.Register(api, huma.Operation{
		OperationID: "signup",
		Method:      http.MethodPost,
		Path:        "/session/signup",
		Summary:     "Sign up",
		Description: "Builds a profile from the signup form and stores it in the client's local store.",
		Tags:        []string{"Session"},
	}, func(ctx context.Context, input *SignupInput) (*NavigationOutput, error) {
		nav, err := controller.Signup(ctx, appmiddleware.ClientIDFromContext(ctx), profilesvc.SignupInput{
			FirstName: input.Body.FirstName,
			LastName:  input.Body.LastName,
			Email:     input.Body.Email,
			Phone:     input.Body.Phone,
			Location:  input.Body.Location,
			Role:      input.Body.Role,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return toOutput(nav), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/session/login",
		Summary:     "Demo login",
		Description: "Stores a demo login profile. No credential is checked and the role it picks is cosmetic.",
		Tags:        []string{"Session"},
	}, func(ctx context.Context, input *LoginInput) (*NavigationOutput, error) {
		nav, err := controller.Login(ctx, appmiddleware.ClientIDFromContext(ctx), input.Body.Email)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return toOutput(nav), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "login-verified",
		Method:      http.MethodPost,
		Path:        "/session/login/verified",
		Summary:     "Verified login",
		Description: "Verifies a Firebase ID token and stores a login profile whose role comes from the token's role claim.",
		Tags:        []string{"Session"},
		Security: []map[string][]string{
			{auth.BearerScheme: {}},
		},
	}, func(ctx context.Context, _ *VerifiedLoginInput) (*NavigationOutput, error) {
		identity := auth.IdentityFromContext(ctx)
		if identity == nil {
			return nil, huma.Error401Unauthorized("missing verified identity")
		}
		nav, err := controller.LoginVerified(ctx, appmiddleware.ClientIDFromContext(ctx),
			identity.Email, profilesvc.Role(identity.Role))
		if err != nil {
			return nil, mapServiceError(err)
		}
		return toOutput(nav), nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "logout",
		Method:      http.MethodPost,
		Path:        "/session/logout",
		Summary:     "Log out",
		Description: "Erases every key of the client's local store, contact messages included.",
		Tags:        []string{"Session"},
	}, func(ctx context.Context, _ *LogoutInput) (*NavigationOutput, error) {
		nav, err := controller.Logout(ctx, appmiddleware.ClientIDFromContext(ctx))
		if err != nil {
			return nil, mapServiceError(err)
		}
		return toOutput(nav), nil
	})
}

func toOutput(nav sessionsvc.Navigation) *NavigationOutput {
	out := &NavigationOutput{Body: Navigation{Redirect: nav.Target, Notice: nav.Notice}}
	if nav.Record != (profilesvc.Record{}) {
		p := profilehttp.FromRecord(nav.Record)
		out.Body.Profile = &p
	}
	return out
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, storage.ErrQuotaExceeded):
		return huma.NewError(http.StatusInsufficientStorage, "local store is full")
	case errors.Is(err, storage.ErrInvalidClient):
		return huma.Error400BadRequest("client id required")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}

package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	appmiddleware "github.com/agric-empower/portal/internal/platform/middleware"
	profilesvc "github.com/agric-empower/portal/internal/service/profile"
	"github.com/agric-empower/portal/internal/storage"
)

// Register registers profile endpoints. The profile belongs to the calling
// client; there is no way to address another client's record.
func Register(api huma.API, store *profilesvc.Store) {
	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/profile",
		Summary:     "Get the client's profile",
		Description: "Returns the profile stored in the client's local store. A corrupt record is discarded and reported as missing.",
		Tags:        []string{"Profile"},
	}, func(ctx context.Context, _ *ProfileGetInput) (*ProfileGetOutput, error) {
		rec, err := store.Load(ctx, appmiddleware.ClientIDFromContext(ctx))
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileGetOutput{Body: FromRecord(rec)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "put-profile",
		Method:      http.MethodPut,
		Path:        "/profile",
		Summary:     "Replace the client's profile",
		Description: "Stores the body as the client's profile, replacing any previous record wholesale.",
		Tags:        []string{"Profile"},
	}, func(ctx context.Context, input *ProfilePutInput) (*ProfilePutOutput, error) {
		rec := input.Body.Record()
		if err := store.Save(ctx, appmiddleware.ClientIDFromContext(ctx), rec); err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfilePutOutput{Body: FromRecord(rec)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-profile",
		Method:        http.MethodDelete,
		Path:          "/profile",
		Summary:       "Clear the client's local store",
		Description:   "Removes every key of the client's local store, contact messages included.",
		Tags:          []string{"Profile"},
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, _ *ProfileDeleteInput) (*struct{}, error) {
		if err := store.Clear(ctx, appmiddleware.ClientIDFromContext(ctx)); err != nil {
			return nil, mapServiceError(err)
		}
		return nil, nil
	})
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, profilesvc.ErrNotFound):
		return huma.Error404NotFound("profile not found")
	case errors.Is(err, storage.ErrQuotaExceeded):
		return huma.NewError(http.StatusInsufficientStorage, "local store is full")
	case errors.Is(err, storage.ErrInvalidClient):
		return huma.Error400BadRequest("client id required")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}

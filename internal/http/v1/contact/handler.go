package contact

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	appmiddleware "github.com/agric-empower/portal/internal/platform/middleware"
	contactsvc "github.com/agric-empower/portal/internal/service/contact"
	"github.com/agric-empower/portal/internal/storage"
)

// Register registers the contact form endpoint.
func Register(api huma.API, svc *contactsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-contact-message",
		Method:        http.MethodPost,
		Path:          "/contact",
		Summary:       "Send a contact message",
		Description:   "Validates the contact form and appends it to the client's stored messages.",
		Tags:          []string{"Contact"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *ContactCreateInput) (*ContactCreateOutput, error) {
		msg, err := svc.Submit(ctx, appmiddleware.ClientIDFromContext(ctx),
			input.Body.Name, input.Body.Email, input.Body.Message)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ContactCreateOutput{Body: Receipt{Notice: contactsvc.ThankYou, Timestamp: msg.Timestamp}}, nil
	})
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, contactsvc.ErrIncomplete), errors.Is(err, contactsvc.ErrInvalidEmail):
		return huma.Error422UnprocessableEntity(contactsvc.Notice(err))
	case errors.Is(err, storage.ErrQuotaExceeded):
		return huma.NewError(http.StatusInsufficientStorage, "local store is full")
	case errors.Is(err, storage.ErrInvalidClient):
		return huma.Error400BadRequest("client id required")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}

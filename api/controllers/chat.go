package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/shopzo-app/shopzo-backend/api/responses"
	"github.com/shopzo-app/shopzo-backend/api/validators"
	chatsvc "github.com/shopzo-app/shopzo-backend/internal/chat"
	pkgerrors "github.com/shopzo-app/shopzo-backend/pkg/errors"
	"github.com/shopzo-app/shopzo-backend/pkg/logger"
)

// ChatAsk forwards a shopping question to the assistant backend.
func ChatAsk(svc chatsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "chat service unavailable"))
			return
		}

		var payload chatAskRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Ask(r.Context(), chatsvc.AskInput{
			Prompt:    payload.Prompt,
			ProductID: payload.ProductID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

type chatAskRequest struct {
	Prompt    string     `json:"prompt" validate:"required"`
	ProductID *uuid.UUID `json:"product_id,omitempty"`
}

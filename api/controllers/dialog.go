package controllers

import (
	"net/http"

	"github.com/steeltrade/storefront-backend/api/responses"
	"github.com/steeltrade/storefront-backend/api/validators"
	"github.com/steeltrade/storefront-backend/internal/configurator"
	"github.com/steeltrade/storefront-backend/internal/session"
	pkgerrors "github.com/steeltrade/storefront-backend/pkg/errors"
	"github.com/steeltrade/storefront-backend/pkg/logger"
)

type dialogValuesDTO struct {
	Warehouse string  `json:"warehouse"`
	Diameter  float64 `json:"diameter"`
	Thickness float64 `json:"thickness"`
	Steel     string  `json:"steel"`
	Quantity  int     `json:"quantity"`
	Unit      string  `json:"unit"`
}

type dialogSummaryDTO struct {
	Warehouse string `json:"warehouse"`
	Diameter  string `json:"diameter"`
	Thickness string `json:"thickness"`
	Steel     string `json:"steel"`
	Quantity  string `json:"quantity"`
	Unit      string `json:"unit"`
}

type dialogDTO struct {
	ProductID int              `json:"product_id"`
	Entry     string           `json:"entry"`
	Values    dialogValuesDTO  `json:"values"`
	Summary   dialogSummaryDTO `json:"summary"`
	Total     string           `json:"total"`
}

func toDialogDTO(view session.DialogView) dialogDTO {
	return dialogDTO{
		ProductID: view.ProductID,
		Entry:     view.Entry,
		Values: dialogValuesDTO{
			Warehouse: string(view.Values.Warehouse),
			Diameter:  view.Values.Diameter,
			Thickness: view.Values.Thickness,
			Steel:     string(view.Values.Steel),
			Quantity:  view.Values.Quantity,
			Unit:      string(view.Values.Unit),
		},
		Summary: dialogSummaryDTO{
			Warehouse: view.Summary.Warehouse,
			Diameter:  view.Summary.Diameter,
			Thickness: view.Summary.Thickness,
			Steel:     view.Summary.Steel,
			Quantity:  view.Summary.Quantity,
			Unit:      view.Summary.Unit,
		},
		Total: view.Total,
	}
}

type openDialogRequest struct {
	Source    string `json:"source" validate:"required,oneof=catalog cart_item"`
	ProductID *int   `json:"product_id"`
	CartIndex *int   `json:"cart_index"`
}

// OpenDialog starts a configuration dialog, either for a catalog product or
// to re-edit an existing cart line.
func OpenDialog(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFrom(w, r, logg)
		if !ok {
			return
		}
		var req openDialogRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var view session.DialogView
		var err error
		switch configurator.Entry(req.Source) {
		case configurator.EntryCatalog:
			if req.ProductID == nil {
				err = pkgerrors.New(pkgerrors.CodeValidation, "product_id is required for catalog entry")
			} else {
				view, err = sess.OpenDialogForProduct(*req.ProductID)
			}
		case configurator.EntryCartItem:
			if req.CartIndex == nil {
				err = pkgerrors.New(pkgerrors.CodeValidation, "cart_index is required for cart_item entry")
			} else {
				view, err = sess.OpenDialogForCartLine(*req.CartIndex)
			}
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toDialogDTO(view))
	}
}

// GetDialog renders the open dialog.
func GetDialog(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFrom(w, r, logg)
		if !ok {
			return
		}
		view, err := sess.DialogState()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toDialogDTO(view))
	}
}

type dialogFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// SetDialogField applies one field edit and returns the refreshed summary.
func SetDialogField(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFrom(w, r, logg)
		if !ok {
			return
		}
		var req dialogFieldRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		view, err := sess.SetDialogField(req.Field, req.Value)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toDialogDTO(view))
	}
}

// ConfirmDialog commits the draft and returns the updated cart.
func ConfirmDialog(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFrom(w, r, logg)
		if !ok {
			return
		}
		if err := sess.ConfirmDialog(); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCartDTO(sess.Cart()))
	}
}

// DismissDialog discards the draft.
func DismissDialog(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFrom(w, r, logg)
		if !ok {
			return
		}
		sess.DismissDialog()
		responses.WriteSuccess(w, map[string]string{"status": "dismissed"})
	}
}

package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/steeltrade/storefront-backend/api/responses"
	"github.com/steeltrade/storefront-backend/api/validators"
	"github.com/steeltrade/storefront-backend/internal/session"
	"github.com/steeltrade/storefront-backend/pkg/logger"
)

type cartLineDTO struct {
	LineID    string  `json:"line_id"`
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Code      string  `json:"code"`
	Quantity  int     `json:"quantity"`
	Unit      string  `json:"unit"`
	Selected  bool    `json:"selected"`
	Warehouse string  `json:"warehouse"`
	Diameter  float64 `json:"diameter"`
	Thickness float64 `json:"thickness"`
	Steel     string  `json:"steel"`
	Total     string  `json:"total"`
}

type cartDTO struct {
	Items           []cartLineDTO `json:"items"`
	Count           int           `json:"count"`
	AllSelected     bool          `json:"all_selected"`
	CheckoutEnabled bool          `json:"checkout_enabled"`
	SelectedTotal   string        `json:"selected_total"`
}

func toCartLineDTO(line session.CartLine) cartLineDTO {
	return cartLineDTO{
		LineID:    line.Item.LineID.String(),
		ProductID: line.Item.ProductID,
		Name:      line.Item.Name,
		Code:      line.Item.Code,
		Quantity:  line.Item.Quantity,
		Unit:      string(line.Item.Unit),
		Selected:  line.Item.Selected,
		Warehouse: string(line.Item.Warehouse),
		Diameter:  line.Item.Diameter,
		Thickness: line.Item.Thickness,
		Steel:     string(line.Item.Steel),
		Total:     line.Total,
	}
}

func toCartDTO(view session.CartView) cartDTO {
	out := cartDTO{
		Items:           make([]cartLineDTO, 0, len(view.Items)),
		Count:           view.Count,
		AllSelected:     view.AllSelected,
		CheckoutEnabled: view.CheckoutEnabled,
		SelectedTotal:   view.SelectedTotal,
	}
	for _, line := range view.Items {
		out.Items = append(out.Items, toCartLineDTO(line))
	}
	return out
}

// GetCart renders the cart panel.
func GetCart(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFrom(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, toCartDTO(sess.Cart()))
	}
}

type cartLineRequest struct {
	Quantity *int  `json:"quantity"`
	Selected *bool `json:"selected"`
}

// UpdateCartLine applies a quantity edit or a selection flip to one line.
func UpdateCartLine(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFrom(w, r, logg)
		if !ok {
			return
		}
		index, err := validators.PathInt(chi.URLParam(r, "index"), "cart index")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req cartLineRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view := sess.Cart()
		if req.Quantity != nil {
			if view, err = sess.SetCartQuantity(index, *req.Quantity); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}
		if req.Selected != nil {
			if view, err = sess.SetCartSelected(index, *req.Selected); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}
		responses.WriteSuccess(w, toCartDTO(view))
	}
}

// RemoveCartLine deletes one line.
func RemoveCartLine(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFrom(w, r, logg)
		if !ok {
			return
		}
		index, err := validators.PathInt(chi.URLParam(r, "index"), "cart index")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		view, err := sess.RemoveCartLine(index)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCartDTO(view))
	}
}

type selectAllRequest struct {
	Selected bool `json:"selected"`
}

// SelectAllCart drives the select-all checkbox.
func SelectAllCart(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFrom(w, r, logg)
		if !ok {
			return
		}
		var req selectAllRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCartDTO(sess.SelectAllCart(req.Selected)))
	}
}

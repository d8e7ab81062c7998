package controllers

import (
	"net/http"

	"github.com/steeltrade/storefront-backend/api/responses"
	"github.com/steeltrade/storefront-backend/api/validators"
	"github.com/steeltrade/storefront-backend/internal/checkout"
	"github.com/steeltrade/storefront-backend/internal/session"
	"github.com/steeltrade/storefront-backend/pkg/logger"
)

type checkoutDTO struct {
	Items      []cartLineDTO `json:"items"`
	Total      string        `json:"total"`
	PayEnabled bool          `json:"pay_enabled"`
}

func toCheckoutDTO(view session.CheckoutView) checkoutDTO {
	out := checkoutDTO{
		Items:      make([]cartLineDTO, 0, len(view.Items)),
		Total:      view.Total,
		PayEnabled: view.PayEnabled,
	}
	for _, line := range view.Items {
		out.Items = append(out.Items, toCartLineDTO(line))
	}
	return out
}

// OpenCheckout starts the payment step over the selected cart lines.
func OpenCheckout(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFrom(w, r, logg)
		if !ok {
			return
		}
		view, err := sess.OpenCheckout()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCheckoutDTO(view))
	}
}

type buyNowRequest struct {
	CartIndex int `json:"cart_index" validate:"min=0"`
}

// BuyNow opens the payment step for a single cart line.
func BuyNow(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFrom(w, r, logg)
		if !ok {
			return
		}
		var req buyNowRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		view, err := sess.BuyNow(req.CartIndex)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCheckoutDTO(view))
	}
}

// GetCheckout renders the open payment step.
func GetCheckout(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFrom(w, r, logg)
		if !ok {
			return
		}
		view, err := sess.CheckoutState()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCheckoutDTO(view))
	}
}

type checkoutFormRequest struct {
	CompanyName   string `json:"company_name"`
	ContactName   string `json:"contact_name"`
	Email         string `json:"email"`
	INN           string `json:"inn"`
	Phone         string `json:"phone"`
	PaymentMethod string `json:"payment_method"`
}

type checkoutFormResponse struct {
	PayEnabled bool              `json:"pay_enabled"`
	Errors     map[string]string `json:"errors,omitempty"`
}

// UpdateCheckoutForm stores the latest form state. Incomplete input is not an
// error response; it just reports the pay button disabled with field notes.
func UpdateCheckoutForm(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFrom(w, r, logg)
		if !ok {
			return
		}
		var req checkoutFormRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		enabled, details, err := sess.UpdateCheckoutForm(checkout.Form{
			CompanyName:   req.CompanyName,
			ContactName:   req.ContactName,
			Email:         req.Email,
			INN:           req.INN,
			Phone:         req.Phone,
			PaymentMethod: req.PaymentMethod,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, checkoutFormResponse{PayEnabled: enabled, Errors: details})
	}
}

type acknowledgementDTO struct {
	Message   string `json:"message"`
	Total     string `json:"total"`
	ItemCount int    `json:"item_count"`
}

// SubmitCheckout finalizes the order and clears the submitted lines.
func SubmitCheckout(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFrom(w, r, logg)
		if !ok {
			return
		}
		ack, err := sess.SubmitCheckout()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, acknowledgementDTO{
			Message:   ack.Message,
			Total:     sess.FormatPrice(ack.TotalCents),
			ItemCount: ack.ItemCount,
		})
	}
}

// DismissCheckout abandons the payment step without touching the cart.
func DismissCheckout(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFrom(w, r, logg)
		if !ok {
			return
		}
		sess.DismissCheckout()
		responses.WriteSuccess(w, map[string]string{"status": "dismissed"})
	}
}

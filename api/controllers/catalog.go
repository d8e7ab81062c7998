package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/steeltrade/storefront-backend/api/responses"
	"github.com/steeltrade/storefront-backend/api/validators"
	"github.com/steeltrade/storefront-backend/internal/catalog"
	"github.com/steeltrade/storefront-backend/internal/session"
	"github.com/steeltrade/storefront-backend/pkg/logger"
)

type productDTO struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Code         string  `json:"code"`
	Type         string  `json:"type"`
	Diameter     float64 `json:"diameter"`
	Thickness    float64 `json:"thickness"`
	Standard     string  `json:"standard"`
	Steel        string  `json:"steel"`
	Warehouse    string  `json:"warehouse"`
	Availability string  `json:"availability"`
}

type cardDTO struct {
	Product          productDTO `json:"product"`
	Quantity         int        `json:"quantity"`
	Unit             string     `json:"unit"`
	Price            string     `json:"price"`
	Total            string     `json:"total"`
	AvailabilityLine string     `json:"availability_line"`
}

type catalogDTO struct {
	Cards []cardDTO `json:"cards"`
	Empty bool      `json:"empty"`
}

func toProductDTO(p catalog.Product) productDTO {
	return productDTO{
		ID:           p.ID,
		Name:         p.Name,
		Code:         p.Code,
		Type:         string(p.Type),
		Diameter:     p.Diameter,
		Thickness:    p.Thickness,
		Standard:     string(p.Standard),
		Steel:        string(p.Steel),
		Warehouse:    string(p.Warehouse),
		Availability: p.Availability.String(),
	}
}

func toCardDTO(c session.Card) cardDTO {
	return cardDTO{
		Product:          toProductDTO(c.Product),
		Quantity:         c.Quantity,
		Unit:             c.Unit,
		Price:            c.Price,
		Total:            c.Total,
		AvailabilityLine: c.Availability,
	}
}

// ListCatalog renders the filtered, searched catalog for the session.
func ListCatalog(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFrom(w, r, logg)
		if !ok {
			return
		}

		criteria, err := validators.ParseCriteria(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cards, empty, err := sess.Catalog(criteria, r.URL.Query().Get("q"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out := catalogDTO{Cards: make([]cardDTO, 0, len(cards)), Empty: empty}
		for _, c := range cards {
			out.Cards = append(out.Cards, toCardDTO(c))
		}
		responses.WriteSuccess(w, out)
	}
}

// GetProductCard renders a single card after inline mutations.
func GetProductCard(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFrom(w, r, logg)
		if !ok {
			return
		}
		id, err := validators.PathInt(chi.URLParam(r, "productID"), "product id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		ctx := logg.WithProductID(r.Context(), id)
		card, err := sess.ProductCard(id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCardDTO(card))
	}
}

type quickStateRequest struct {
	Quantity *int    `json:"quantity"`
	Unit     *string `json:"unit"`
}

// UpdateQuickState applies the inline quantity input and unit toggle.
func UpdateQuickState(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFrom(w, r, logg)
		if !ok {
			return
		}
		id, err := validators.PathInt(chi.URLParam(r, "productID"), "product id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithProductID(r.Context(), id)

		var req quickStateRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if req.Quantity != nil {
			if err := sess.SetQuickQuantity(id, *req.Quantity); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
		}
		if req.Unit != nil {
			if err := sess.SetQuickUnit(id, *req.Unit); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
		}

		card, err := sess.ProductCard(id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCardDTO(card))
	}
}

// AddCardToCart commits the card's quick state into the cart.
func AddCardToCart(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFrom(w, r, logg)
		if !ok {
			return
		}
		id, err := validators.PathInt(chi.URLParam(r, "productID"), "product id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		ctx := logg.WithProductID(r.Context(), id)
		if err := sess.AddFromCard(id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, toCartDTO(sess.Cart()))
	}
}

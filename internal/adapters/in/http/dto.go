package http

import (
	"time"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"
	"kirana/internal/core/domain/model/pricelist"

	"github.com/shopspring/decimal"
)

// coordinateDTO is a latitude/longitude pair as it appears on the wire.
type coordinateDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// submitOrderRequest is the POST /api/orders body. Item prices are display
// hints; listed prices override them server-side for known item ids.
type submitOrderRequest struct {
	CustomerName    string             `json:"customerName"`
	CustomerPhone   string             `json:"customerPhone"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Items           []orderLineRequest `json:"items"`
	Location        *coordinateDTO     `json:"location,omitempty"`
	Notes           string             `json:"notes,omitempty"`
}

type orderLineRequest struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// changeStatusRequest is the PUT /api/orders/:id/status body.
type changeStatusRequest struct {
	Status string `json:"status"`
}

// priceItemRequest is the POST and PUT /api/prices body. The name field is
// called "item" on the wire.
type priceItemRequest struct {
	Item     string          `json:"item"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

type orderLineResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

type orderResponse struct {
	ID              int64               `json:"id"`
	CustomerName    string              `json:"customerName"`
	CustomerPhone   string              `json:"customerPhone"`
	DeliveryAddress string              `json:"deliveryAddress"`
	Items           []orderLineResponse `json:"items"`
	Notes           string              `json:"notes,omitempty"`
	Location        *coordinateDTO      `json:"location,omitempty"`
	Subtotal        float64             `json:"subtotal"`
	DeliveryFee     float64             `json:"deliveryFee"`
	DeliveryIsFree  bool                `json:"deliveryIsFree"`
	DistanceKm      *float64            `json:"distanceKm,omitempty"`
	DeliveryMessage string              `json:"deliveryMessage"`
	Total           float64             `json:"total"`
	Status          string              `json:"status"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

type priceItemResponse struct {
	ID       int64   `json:"id"`
	Item     string  `json:"item"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// errorResponse is the uniform error body: "error" names the failure class,
// "message" carries user-correctable detail for validation failures.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// display rounds an amount to 2 decimals for the response body. Internal
// arithmetic stays unrounded; rounding happens only at this boundary.
func display(amount decimal.Decimal) float64 {
	return amount.Round(2).InexactFloat64()
}

func toOrderResponse(o *order.Order) orderResponse {
	items := o.Items()
	lines := make([]orderLineResponse, len(items))
	for i, line := range items {
		lines[i] = orderLineResponse{
			ID:       line.ItemID(),
			Name:     line.Name(),
			Price:    display(line.UnitPrice()),
			Quantity: line.Quantity(),
			Total:    display(line.Total()),
		}
	}

	quote := o.Quote()
	customer := o.Customer()

	return orderResponse{
		ID:              o.ID(),
		CustomerName:    customer.Name(),
		CustomerPhone:   customer.Phone(),
		DeliveryAddress: customer.Address(),
		Items:           lines,
		Notes:           o.Notes(),
		Location:        toCoordinateDTO(o.Location()),
		Subtotal:        display(o.Subtotal()),
		DeliveryFee:     display(quote.Fee),
		DeliveryIsFree:  quote.IsFree,
		DistanceKm:      quote.DistanceKm,
		DeliveryMessage: quote.Explanation,
		Total:           display(o.Total()),
		Status:          o.Status().String(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func toCoordinateDTO(point *kernel.GeoPoint) *coordinateDTO {
	if point == nil {
		return nil
	}
	return &coordinateDTO{
		Latitude:  point.Latitude(),
		Longitude: point.Longitude(),
	}
}

func toPriceItemResponse(item *pricelist.Item) priceItemResponse {
	return priceItemResponse{
		ID:       item.ID(),
		Item:     item.Name(),
		Price:    display(item.Price()),
		Category: item.Category(),
	}
}

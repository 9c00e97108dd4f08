package shopping

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-engine/internal/service"
)

// Item is one line of a shopping list.
type Item struct {
	Name           string `json:"name" required:"true" doc:"Item name"`
	EstimatedPrice string `json:"estimatedPrice" required:"true" doc:"Positive estimated unit price"`
	Quantity       int    `json:"quantity" required:"true" doc:"Quantity, at least 1"`
}

// ShoppingList is the wire representation of a shopping list.
type ShoppingList struct {
	ID         string `json:"id" doc:"Shopping list UUID"`
	Name       string `json:"name" doc:"List name"`
	CategoryID string `json:"categoryId" doc:"Category the checkout transaction will land in"`
	Items      []Item `json:"items" doc:"Staged items"`
	TotalCost  string `json:"totalCost" doc:"Derived estimate: sum of price × quantity"`
}

func listView(l service.ShoppingList) ShoppingList {
	items := make([]Item, len(l.Items))
	for i, item := range l.Items {
		items[i] = Item{
			Name:           item.Name,
			EstimatedPrice: item.EstimatedPrice.String(),
			Quantity:       item.Quantity,
		}
	}
	return ShoppingList{
		ID:         l.ID.String(),
		Name:       l.Name,
		CategoryID: l.CategoryID.String(),
		Items:      items,
		TotalCost:  l.TotalCost().String(),
	}
}

func parseItems(bodies []Item) ([]service.ShoppingItem, error) {
	items := make([]service.ShoppingItem, len(bodies))
	for i, body := range bodies {
		price, err := decimal.NewFromString(body.EstimatedPrice)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid estimatedPrice for "+body.Name, err)
		}
		items[i] = service.ShoppingItem{
			Name:           body.Name,
			EstimatedPrice: price,
			Quantity:       body.Quantity,
		}
	}
	return items, nil
}

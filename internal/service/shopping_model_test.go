package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestShoppingList_TotalCost(t *testing.T) {
	list := ShoppingList{
		Items: []ShoppingItem{
			{Name: "Milk", EstimatedPrice: decimal.RequireFromString("1.29"), Quantity: 2},
			{Name: "Bread", EstimatedPrice: decimal.RequireFromString("2.50"), Quantity: 1},
			{Name: "Eggs", EstimatedPrice: decimal.RequireFromString("3.15"), Quantity: 3},
		},
	}
	assert.True(t, list.TotalCost().Equal(decimal.RequireFromString("14.53")),
		"got %s", list.TotalCost())
}

func TestShoppingList_TotalCostEmpty(t *testing.T) {
	assert.True(t, ShoppingList{}.TotalCost().IsZero())
}

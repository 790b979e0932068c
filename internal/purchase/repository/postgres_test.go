package repository

import (
	"testing"

	"github.com/fekuna/omnipos-purchase-service/internal/purchase/dto"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestBuildWhere(t *testing.T) {
	tests := []struct {
		name      string
		filters   dto.PurchaseFilters
		wantWhere string
		wantArgs  map[string]interface{}
	}{
		{
			name:      "no filters",
			wantWhere: "",
			wantArgs:  map[string]interface{}{},
		},
		{
			name:      "user only",
			filters:   dto.PurchaseFilters{UserID: "u-1"},
			wantWhere: " WHERE user_id = :user_id",
			wantArgs:  map[string]interface{}{"user_id": "u-1"},
		},
		{
			name: "tags and products",
			filters: dto.PurchaseFilters{
				UserID:     "u-1",
				Tags:       []string{"red"},
				ProductIDs: []string{"p-1", "p-2"},
			},
			wantWhere: " WHERE user_id = :user_id AND tags && :tags AND product_id = ANY(:product_ids)",
			wantArgs: map[string]interface{}{
				"user_id":     "u-1",
				"tags":        pq.StringArray{"red"},
				"product_ids": pq.StringArray{"p-1", "p-2"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			where, args := buildWhere(&tc.filters)
			assert.Equal(t, tc.wantWhere, where)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

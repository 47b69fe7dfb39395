package service_test

import (
	"testing"

	"github.com/Maspur102/elokalfa/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCart(t *testing.T) {
	items, err := service.ParseCart(`[{"id":1,"qty":2,"price":10000},{"id":"3","qty":"1","price":"2500"}]`)
	require.NoError(t, err)
	assert.Equal(t, []service.CartItem{
		{ProductID: 1, Qty: 2, Price: 10000},
		{ProductID: 3, Qty: 1, Price: 2500},
	}, items)

	items, err = service.ParseCart(`[{"id":2,"qty":1,"price":1500.0}]`)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), items[0].Price)
}

func TestParseCart_Rejects(t *testing.T) {
	for _, raw := range []string{"", "  ", "[]", "not json", `[{"id":"abc","qty":1,"price":1}]`, `[{"id":1,"qty":1.5,"price":1}]`, `[{"id":-1,"qty":1,"price":1}]`} {
		_, err := service.ParseCart(raw)
		assert.ErrorIs(t, err, service.ErrValidation, raw)
	}
}

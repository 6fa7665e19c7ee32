package queries_test

import (
	"testing"

	"mainbridge/internal/core/application/usecases/queries"
	"mainbridge/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetSupplierOrdersQuery_Valid(t *testing.T) {
	supplierID := kernel.NewUUID()

	query, err := queries.NewGetSupplierOrdersQuery(supplierID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, supplierID.IsEqual(query.SupplierID()))
}

func TestNewGetSupplierOrdersQuery_EmptySupplierID(t *testing.T) {
	_, err := queries.NewGetSupplierOrdersQuery(kernel.UUID{})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetSupplierOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetSupplierOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetSupplierOrdersQueryIsNotConstructed)
}

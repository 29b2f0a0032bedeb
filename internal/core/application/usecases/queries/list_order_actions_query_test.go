package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/action"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrderActionsQuery_Valid(t *testing.T) {
	actionType := action.RefundRequest
	query, err := queries.NewListOrderActionsQuery(mustID(t, 101), &actionType, true)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.NewestFirst())
	require.NotNil(t, query.ActionType())
	assert.Equal(t, action.RefundRequest, *query.ActionType())
}

func TestNewListOrderActionsQuery_ZeroOrder(t *testing.T) {
	_, err := queries.NewListOrderActionsQuery(kernel.ID{}, nil, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewListOrderActionsQuery_InvalidType(t *testing.T) {
	actionType := action.Type(99)
	_, err := queries.NewListOrderActionsQuery(mustID(t, 101), &actionType, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestListOrderActionsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListOrderActionsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListOrderActionsQueryIsNotConstructed)
}

func TestNewGetLatestOrderActionQuery_Valid(t *testing.T) {
	query, err := queries.NewGetLatestOrderActionQuery(mustID(t, 101), nil)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Nil(t, query.ActionType())
}

func TestNewGetActionFilesQuery_ZeroAction(t *testing.T) {
	_, err := queries.NewGetActionFilesQuery(kernel.ID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetOrderTimelineQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderTimelineQuery(mustID(t, 101))
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.OrderID().IsEqual(mustID(t, 101)))
}

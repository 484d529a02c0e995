package transaction_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/raywall/starkbank-go/checks"
	"github.com/raywall/starkbank-go/errs"
	"github.com/raywall/starkbank-go/internal/testutil"
	"github.com/raywall/starkbank-go/rest"
	"github.com/raywall/starkbank-go/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndQuery(t *testing.T) {
	ctx := context.Background()
	_, client := testutil.Emulator(t)

	var batch []transaction.Transaction
	for i := 1; i <= 3; i++ {
		tx, err := transaction.New(checks.Params{
			"amount":      100 * i,
			"description": "repasse",
			"externalId":  fmt.Sprintf("ext-%d", i),
			"receiverId":  "5768064935133184",
			"tags":        []string{"repasse"},
		})
		require.NoError(t, err)
		batch = append(batch, tx)
	}

	created, err := transaction.Create(ctx, client, batch)
	require.NoError(t, err)
	require.Len(t, created, 3)
	for i, tx := range created {
		assert.Equal(t, int64(100*(i+1)), tx.Amount)
		assert.NotEmpty(t, tx.ID)
	}

	got, err := transaction.Get(ctx, client, created[2].ID)
	require.NoError(t, err)
	assert.Equal(t, "ext-3", got.ExternalID)

	byExternal, err := rest.Collect(ctx, transaction.Query(client, transaction.Filter{ExternalIDs: []string{"ext-1", "ext-3"}}))
	require.NoError(t, err)
	require.Len(t, byExternal, 2)
	assert.Equal(t, "ext-1", byExternal[0].ExternalID)
	assert.Equal(t, "ext-3", byExternal[1].ExternalID)

	page, cursor, err := transaction.Page(ctx, client, "", transaction.Filter{Limit: 2, Tags: []string{"repasse"}})
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.NotEmpty(t, cursor)
}

func TestCreate_Validation(t *testing.T) {
	_, client := testutil.Emulator(t)

	_, err := transaction.Create(context.Background(), client, []transaction.Transaction{{
		Amount:      -5,
		Description: "negativo",
		ExternalID:  "x",
		ReceiverID:  "1",
	}})
	require.True(t, errs.IsValidation(err))

	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "amount", verr.Field)
}

func TestNew_RoundTripAndRequired(t *testing.T) {
	params := checks.Params{
		"id":          "5131451845468160",
		"amount":      json.Number("500"),
		"description": "repasse",
		"externalId":  "ext-1",
		"receiverId":  "5768064935133184",
		"senderId":    "9999999999999999",
		"tags":        []any{"repasse"},
		"fee":         0,
		"source":      "self",
		"balance":     100000,
		"created":     "2024-02-01T08:00:00Z",
	}

	tx, err := transaction.New(params)
	require.NoError(t, err)
	assert.Equal(t, tx, testutil.RoundTrip(t, tx, transaction.New))

	testutil.RequireFields(t, params, transaction.New, map[string]string{
		"amount":      "amount",
		"description": "description",
		"externalId":  "externalId",
		"receiverId":  "receiverId",
	})
}

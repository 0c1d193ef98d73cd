package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"inspection_billing/internal/domain/entities"
	"inspection_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	getItem    func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	putItem    func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	updateItem func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	query      func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	transact   func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error)
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return f.getItem(in)
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return f.putItem(in)
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return f.updateItem(in)
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return f.query(in)
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	return f.transact(in)
}

func marshalItem(t *testing.T, v any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	require.NoError(t, err)
	return av
}

func TestInspectionRepository_GetByID(t *testing.T) {
	t.Run("normalizes legacy add-on keys", func(t *testing.T) {
		raw := map[string]any{
			"id":         "insp-1",
			"company_id": "c-1",
			"pricing": map[string]any{"items": []any{
				map[string]any{"type": "addon", "name": "Radon", "price": 75, "serviceId": "S1", "addOnName": "Radon"},
			}},
			"requested_addons": []any{
				map[string]any{"serviceId": "S1", "addonName": "Mold", "add_fee": 40, "status": "approved"},
			},
		}
		f := &fakeDynamo{getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			assert.True(t, *in.ConsistentRead)
			return &dynamodb.GetItemOutput{Item: marshalItem(t, raw)}, nil
		}}
		repo := NewInspectionDynamoRepository(f, "inspections")

		insp, err := repo.GetByID(context.Background(), "insp-1")
		require.NoError(t, err)
		require.Len(t, insp.Pricing.Items, 1)
		assert.Equal(t, "S1", insp.Pricing.Items[0].ServiceID)
		assert.Equal(t, "Radon", insp.Pricing.Items[0].AddonName)
		require.Len(t, insp.RequestedAddons, 1)
		assert.Equal(t, "Mold", insp.RequestedAddons[0].AddonName)
		assert.Equal(t, float64(40), insp.RequestedAddons[0].AddFee)
		assert.NotNil(t, insp.PaymentHistory)
	})

	t.Run("soft deleted is not found", func(t *testing.T) {
		f := &fakeDynamo{getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: marshalItem(t, inspectionItem{ID: "insp-1", Deleted: true})}, nil
		}}
		insp, err := NewInspectionDynamoRepository(f, "").GetByID(context.Background(), "insp-1")
		require.NoError(t, err)
		assert.Empty(t, insp.ID)
	})
}

func TestInspectionRepository_AppendProcessorPayment(t *testing.T) {
	entry := entities.PaymentEntry{ID: "e-1", Amount: 50, PaidAt: time.Now(), Currency: "usd", PaymentMethod: "visa", ProcessorPaymentID: "123"}

	t.Run("guarded append", func(t *testing.T) {
		f := &fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			assert.Contains(t, *in.ConditionExpression, "NOT contains(#processor_payment_ids, :pid)")
			assert.Contains(t, *in.UpdateExpression, "list_append(if_not_exists(#payment_history, :empty), :entry)")
			assert.Contains(t, *in.UpdateExpression, "ADD #processor_payment_ids :processor_payment_ids")
			assert.Equal(t, &types.AttributeValueMemberS{Value: "123"}, in.ExpressionAttributeValues[":pid"])
			assert.NotContains(t, *in.ConditionExpression, "size(#payment_history)")
			return &dynamodb.UpdateItemOutput{}, nil
		}}
		appended, err := NewInspectionDynamoRepository(f, "").AppendProcessorPayment(context.Background(), "insp-1", nil, entry)
		require.NoError(t, err)
		assert.True(t, appended)
	})

	t.Run("already recorded", func(t *testing.T) {
		f := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{Message: strPtr("The conditional request failed")}
		}}
		appended, err := NewInspectionDynamoRepository(f, "").AppendProcessorPayment(context.Background(), "insp-1", nil, entry)
		require.NoError(t, err)
		assert.False(t, appended)
	})

	t.Run("store failure", func(t *testing.T) {
		f := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, errors.New("throttled")
		}}
		_, err := NewInspectionDynamoRepository(f, "").AppendProcessorPayment(context.Background(), "insp-1", nil, entry)
		assert.EqualError(t, err, "throttled")
	})

	legacy := []entities.PaymentEntry{{ID: "e-0", Amount: 100, Currency: "usd", PaymentMethod: "cash", ProcessorPaymentID: "77"}}

	t.Run("seed is appended while the ledger is empty", func(t *testing.T) {
		f := &fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			assert.Contains(t, *in.ConditionExpression, "size(#payment_history) = :zero")
			var added []paymentEntryAttr
			require.NoError(t, attributevalue.Unmarshal(in.ExpressionAttributeValues[":entry"], &added))
			require.Len(t, added, 2)
			assert.Equal(t, "e-0", added[0].ID)
			assert.Equal(t, "e-1", added[1].ID)
			assert.Equal(t, &types.AttributeValueMemberSS{Value: []string{"77", "123"}}, in.ExpressionAttributeValues[":processor_payment_ids"])
			return &dynamodb.UpdateItemOutput{}, nil
		}}
		appended, err := NewInspectionDynamoRepository(f, "").AppendProcessorPayment(context.Background(), "insp-1", legacy, entry)
		require.NoError(t, err)
		assert.True(t, appended)
	})

	t.Run("seed against a filled ledger is a conflict", func(t *testing.T) {
		f := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{Item: marshalItem(t, inspectionItem{
				ID: "insp-1", PaymentHistory: []paymentEntryAttr{{ID: "e-9", Amount: 100}}, Version: 4,
			})}
		}}
		appended, err := NewInspectionDynamoRepository(f, "").AppendProcessorPayment(context.Background(), "insp-1", legacy, entry)
		assert.ErrorIs(t, err, interfaces.ErrVersionConflict)
		assert.False(t, appended)
	})

	t.Run("seed with the payment already recorded", func(t *testing.T) {
		f := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{Item: marshalItem(t, inspectionItem{
				ID: "insp-1", PaymentHistory: []paymentEntryAttr{{ID: "e-9", Amount: 50}}, ProcessorPaymentIDs: []string{"123"},
			})}
		}}
		appended, err := NewInspectionDynamoRepository(f, "").AppendProcessorPayment(context.Background(), "insp-1", legacy, entry)
		require.NoError(t, err)
		assert.False(t, appended)
	})
}

func TestInspectionRepository_UpdatePaymentState(t *testing.T) {
	t.Run("conditions on the version without bumping it", func(t *testing.T) {
		f := &fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			assert.Contains(t, *in.ConditionExpression, "#version = :expected")
			assert.Equal(t, &types.AttributeValueMemberN{Value: "5"}, in.ExpressionAttributeValues[":expected"])
			assert.Equal(t, "version", in.ExpressionAttributeNames["#version"])
			assert.NotContains(t, *in.UpdateExpression, "#version =")
			return &dynamodb.UpdateItemOutput{}, nil
		}}
		err := NewInspectionDynamoRepository(f, "").UpdatePaymentState(context.Background(), "insp-1", 5, entities.PaymentInfo{AmountPaid: 50}, false)
		require.NoError(t, err)
	})

	t.Run("newer version skips the refresh", func(t *testing.T) {
		f := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		}}
		err := NewInspectionDynamoRepository(f, "").UpdatePaymentState(context.Background(), "insp-1", 5, entities.PaymentInfo{AmountPaid: 50}, false)
		assert.NoError(t, err)
	})
}

func TestInspectionRepository_VersionedWrites(t *testing.T) {
	t.Run("conditions on the expected version and keeps processor ids", func(t *testing.T) {
		history := []entities.PaymentEntry{
			{ID: "e-1", Amount: 10, ProcessorPaymentID: "123"},
			{ID: "e-2", Amount: 5},
		}
		f := &fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			assert.Contains(t, *in.ConditionExpression, "#version = :expected")
			assert.Equal(t, &types.AttributeValueMemberN{Value: "7"}, in.ExpressionAttributeValues[":expected"])
			assert.Equal(t, &types.AttributeValueMemberN{Value: "8"}, in.ExpressionAttributeValues[":version"])
			assert.Equal(t, &types.AttributeValueMemberSS{Value: []string{"123"}}, in.ExpressionAttributeValues[":processor_payment_ids"])
			assert.True(t, strings.HasPrefix(*in.UpdateExpression, "SET "))
			return &dynamodb.UpdateItemOutput{Attributes: marshalItem(t, inspectionItem{ID: "insp-1", Version: 8})}, nil
		}}
		insp, err := NewInspectionDynamoRepository(f, "").ReplaceLedger(context.Background(), "insp-1", 7, history, entities.PaymentInfo{AmountPaid: 15}, false)
		require.NoError(t, err)
		assert.Equal(t, int64(8), insp.Version)
	})

	t.Run("conflict", func(t *testing.T) {
		f := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{Item: marshalItem(t, inspectionItem{ID: "insp-1", Version: 9})}
		}}
		_, err := NewInspectionDynamoRepository(f, "").ReplacePricing(context.Background(), "insp-1", 7, nil, false)
		assert.ErrorIs(t, err, interfaces.ErrVersionConflict)
	})

	t.Run("missing item", func(t *testing.T) {
		f := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		}}
		insp, err := NewInspectionDynamoRepository(f, "").SetDiscountCode(context.Background(), "insp-1", 7, "", false)
		require.NoError(t, err)
		assert.Empty(t, insp.ID)
	})

	t.Run("detaching a discount removes the attribute", func(t *testing.T) {
		f := &fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			assert.Contains(t, *in.UpdateExpression, "REMOVE #discount_code_id")
			return &dynamodb.UpdateItemOutput{Attributes: marshalItem(t, inspectionItem{ID: "insp-1"})}, nil
		}}
		_, err := NewInspectionDynamoRepository(f, "").SetDiscountCode(context.Background(), "insp-1", 0, "", true)
		require.NoError(t, err)
	})
}

func TestInspectionItemRoundTrip(t *testing.T) {
	paidAt := time.Date(2026, 2, 1, 15, 4, 5, 0, time.UTC)
	orig := 150.0
	in := entities.Inspection{
		ID:        "insp-1",
		CompanyID: "c-1",
		Pricing: entities.Pricing{Items: []entities.PricingItem{
			{Type: entities.PricingItemService, Name: "Home", Price: 135, OriginalPrice: &orig, ServiceID: "S1"},
		}},
		PaymentHistory: []entities.PaymentEntry{{ID: "e-1", Amount: 50, PaidAt: paidAt, Currency: "usd", PaymentMethod: "card", ProcessorPaymentID: "99"}},
		PaymentInfo:    &entities.PaymentInfo{AmountPaid: 50, PaidAt: paidAt},
		Version:        2,
	}

	it := toInspectionItem(in)
	assert.Equal(t, []string{"99"}, it.ProcessorPaymentIDs)

	out := fromInspectionItem(it)
	assert.Equal(t, in.Pricing, out.Pricing)
	assert.Equal(t, in.PaymentHistory, out.PaymentHistory)
	assert.Equal(t, *in.PaymentInfo, *out.PaymentInfo)
}

func TestUpdateClauses_Expression(t *testing.T) {
	c := newUpdateClauses().
		Set("a", "", &types.AttributeValueMemberN{Value: "1"}).
		Set("b", "if_not_exists(#b, :zero) + :one", nil).
		Add("c", &types.AttributeValueMemberSS{Value: []string{"x"}}).
		Remove("d")

	assert.Equal(t, "SET #a = :a, #b = if_not_exists(#b, :zero) + :one ADD #c :c REMOVE #d", c.Expression())
	assert.Len(t, c.names, 4)
	assert.Len(t, c.values, 2)
}

func strPtr(s string) *string { return &s }

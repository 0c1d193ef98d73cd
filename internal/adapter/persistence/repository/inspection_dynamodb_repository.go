package repository

import (
	"context"
	"strconv"
	"time"

	"inspection_billing/internal/domain/entities"
	"inspection_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInspectionsTableName = "inspections"

type pricingItemAttr struct {
	Type          string   `dynamodbav:"type"`
	Name          string   `dynamodbav:"name"`
	Price         float64  `dynamodbav:"price"`
	ServiceID     string   `dynamodbav:"service_id,omitempty"`
	AddonName     string   `dynamodbav:"addon_name,omitempty"`
	OriginalPrice *float64 `dynamodbav:"original_price,omitempty"`
	Hours         *float64 `dynamodbav:"hours,omitempty"`

	// Documents migrated from the previous store carry camelCase keys.
	LegacyServiceID string `dynamodbav:"serviceId,omitempty"`
	LegacyAddOnName string `dynamodbav:"addOnName,omitempty"`
	LegacyAddonName string `dynamodbav:"addonName,omitempty"`
}

type pricingAttr struct {
	Items []pricingItemAttr `dynamodbav:"items"`
}

type requestedAddonAttr struct {
	ServiceID string  `dynamodbav:"service_id,omitempty"`
	AddonName string  `dynamodbav:"addon_name,omitempty"`
	AddFee    float64 `dynamodbav:"add_fee"`
	Status    string  `dynamodbav:"status"`

	LegacyServiceID string `dynamodbav:"serviceId,omitempty"`
	LegacyAddOnName string `dynamodbav:"addOnName,omitempty"`
	LegacyAddonName string `dynamodbav:"addonName,omitempty"`
}

type paymentEntryAttr struct {
	ID                 string  `dynamodbav:"id"`
	Amount             float64 `dynamodbav:"amount"`
	PaidAt             string  `dynamodbav:"paid_at"`
	Currency           string  `dynamodbav:"currency"`
	PaymentMethod      string  `dynamodbav:"payment_method"`
	ProcessorPaymentID string  `dynamodbav:"processor_payment_id,omitempty"`
}

type paymentInfoAttr struct {
	AmountPaid         float64 `dynamodbav:"amount_paid"`
	PaidAt             string  `dynamodbav:"paid_at,omitempty"`
	Currency           string  `dynamodbav:"currency,omitempty"`
	PaymentMethod      string  `dynamodbav:"payment_method,omitempty"`
	ProcessorPaymentID string  `dynamodbav:"processor_payment_id,omitempty"`
}

type inspectionItem struct {
	ID                  string               `dynamodbav:"id"`
	CompanyID           string               `dynamodbav:"company_id"`
	ClientViewToken     string               `dynamodbav:"client_view_token,omitempty"`
	ConfirmedInspection bool                 `dynamodbav:"confirmed_inspection"`
	Deleted             bool                 `dynamodbav:"deleted"`
	Pricing             pricingAttr          `dynamodbav:"pricing"`
	RequestedAddons     []requestedAddonAttr `dynamodbav:"requested_addons,omitempty"`
	DiscountCodeID      string               `dynamodbav:"discount_code_id,omitempty"`
	PaymentHistory      []paymentEntryAttr   `dynamodbav:"payment_history"`
	PaymentInfo         *paymentInfoAttr     `dynamodbav:"payment_info,omitempty"`
	IsPaid              bool                 `dynamodbav:"is_paid"`
	ProcessorPaymentIDs []string             `dynamodbav:"processor_payment_ids,stringset,omitempty"`
	Version             int64                `dynamodbav:"version"`
	CreatedAt           string               `dynamodbav:"created_at"`
	UpdatedAt           string               `dynamodbav:"updated_at"`
}

// InspectionDynamoRepository persists Inspection aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every write bumps version. Pricing, discount and manual ledger writes are
// conditioned on the version that was read; the processor payment append is
// conditioned on processor_payment_ids instead, so it never conflicts with them.
type InspectionDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IInspectionRepository = (*InspectionDynamoRepository)(nil)

func NewInspectionDynamoRepository(ddb dynamoAPI, tableName string) *InspectionDynamoRepository {
	return &InspectionDynamoRepository{
		ddb:       ddb,
		tableName: tableNameOr(tableName, "INSPECTIONS_TABLE", defaultInspectionsTableName),
	}
}

func (r *InspectionDynamoRepository) Create(ctx context.Context, i entities.Inspection) (entities.Inspection, error) {
	now := time.Now().UTC()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	i.UpdatedAt = now
	if i.Version == 0 {
		i.Version = 1
	}
	if i.PaymentHistory == nil {
		i.PaymentHistory = []entities.PaymentEntry{}
	}

	av, err := attributevalue.MarshalMap(toInspectionItem(i))
	if err != nil {
		return entities.Inspection{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Inspection{}, err
	}
	return i, nil
}

func (r *InspectionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Inspection, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Inspection{}, err
	}
	if len(out.Item) == 0 {
		return entities.Inspection{}, nil
	}

	var it inspectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Inspection{}, err
	}
	if it.Deleted {
		return entities.Inspection{}, nil
	}
	return fromInspectionItem(it), nil
}

func (r *InspectionDynamoRepository) ReplacePricing(ctx context.Context, id string, expectedVersion int64, items []entities.PricingItem, isPaid bool) (entities.Inspection, error) {
	pricing, err := attributevalue.Marshal(pricingAttr{Items: toPricingItemAttrs(items)})
	if err != nil {
		return entities.Inspection{}, err
	}
	c := newUpdateClauses().
		Set("pricing", "", pricing).
		Set("is_paid", "", &types.AttributeValueMemberBOOL{Value: isPaid})
	return r.versionedUpdate(ctx, id, expectedVersion, c)
}

func (r *InspectionDynamoRepository) ReplaceLedger(ctx context.Context, id string, expectedVersion int64, history []entities.PaymentEntry, info entities.PaymentInfo, isPaid bool) (entities.Inspection, error) {
	historyAV, err := attributevalue.Marshal(toPaymentEntryAttrs(history))
	if err != nil {
		return entities.Inspection{}, err
	}
	infoAV, err := attributevalue.Marshal(toPaymentInfoAttr(info))
	if err != nil {
		return entities.Inspection{}, err
	}
	c := newUpdateClauses().
		Set("payment_history", "", historyAV).
		Set("payment_info", "", infoAV).
		Set("is_paid", "", &types.AttributeValueMemberBOOL{Value: isPaid})

	// The id set never shrinks: a processor payment deleted from the ledger by
	// hand must not be recorded again by a late notification.
	if ids := processorIDs(history); len(ids) > 0 {
		c.Add("processor_payment_ids", &types.AttributeValueMemberSS{Value: ids})
	}
	return r.versionedUpdate(ctx, id, expectedVersion, c)
}

func (r *InspectionDynamoRepository) SetDiscountCode(ctx context.Context, id string, expectedVersion int64, discountCodeID string, isPaid bool) (entities.Inspection, error) {
	c := newUpdateClauses().Set("is_paid", "", &types.AttributeValueMemberBOOL{Value: isPaid})
	if discountCodeID == "" {
		c.Remove("discount_code_id")
	} else {
		c.Set("discount_code_id", "", &types.AttributeValueMemberS{Value: discountCodeID})
	}
	return r.versionedUpdate(ctx, id, expectedVersion, c)
}

func (r *InspectionDynamoRepository) AppendProcessorPayment(ctx context.Context, id string, seed []entities.PaymentEntry, entry entities.PaymentEntry) (bool, error) {
	entries := append(append([]entities.PaymentEntry(nil), seed...), entry)
	entryAV, err := attributevalue.Marshal(toPaymentEntryAttrs(entries))
	if err != nil {
		return false, err
	}
	c := newUpdateClauses().
		Set("payment_history", "list_append(if_not_exists(#payment_history, :empty), :entry)", nil).
		Set("version", "if_not_exists(#version, :zero) + :one", nil).
		Set("updated_at", "", &types.AttributeValueMemberS{Value: formatTime(time.Now())}).
		Add("processor_payment_ids", &types.AttributeValueMemberSS{Value: processorIDs(entries)}).
		Value(":entry", entryAV).
		Value(":empty", &types.AttributeValueMemberL{Value: []types.AttributeValue{}}).
		Value(":zero", &types.AttributeValueMemberN{Value: "0"}).
		Value(":one", &types.AttributeValueMemberN{Value: "1"}).
		Value(":pid", &types.AttributeValueMemberS{Value: entry.ProcessorPaymentID}).
		Value(":false", &types.AttributeValueMemberBOOL{Value: false})

	cond := "attribute_exists(#id) AND (attribute_not_exists(#deleted) OR #deleted = :false) AND " +
		"(attribute_not_exists(#processor_payment_ids) OR NOT contains(#processor_payment_ids, :pid))"
	if len(seed) > 0 {
		// Seed entries replace the payment_info cache, which only stands for an empty ledger.
		cond += " AND (attribute_not_exists(#payment_history) OR size(#payment_history) = :zero)"
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:                 aws.String(cond),
		UpdateExpression:                    aws.String(c.Expression()),
		ExpressionAttributeValues:           c.values,
		ExpressionAttributeNames:            mergeNames(c.names, map[string]string{"#id": "id", "#deleted": "deleted"}),
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		cfe, ok := conditionFailed(err)
		if !ok {
			return false, err
		}
		if len(seed) == 0 || len(cfe.Item) == 0 {
			return false, nil
		}
		var old inspectionItem
		if err := attributevalue.UnmarshalMap(cfe.Item, &old); err != nil || old.Deleted || containsString(old.ProcessorPaymentIDs, entry.ProcessorPaymentID) {
			return false, nil
		}
		// The ledger got its first entries since it was read; the seed is stale.
		return false, interfaces.ErrVersionConflict
	}
	return true, nil
}

// UpdatePaymentState refreshes the payment_info/is_paid caches when the item is
// still at expectedVersion. The version is not bumped. A newer write carries its
// own cache, so a failed condition is skipped.
func (r *InspectionDynamoRepository) UpdatePaymentState(ctx context.Context, id string, expectedVersion int64, info entities.PaymentInfo, isPaid bool) error {
	infoAV, err := attributevalue.Marshal(toPaymentInfoAttr(info))
	if err != nil {
		return err
	}
	c := newUpdateClauses().
		Set("payment_info", "", infoAV).
		Set("is_paid", "", &types.AttributeValueMemberBOOL{Value: isPaid}).
		Set("updated_at", "", &types.AttributeValueMemberS{Value: formatTime(time.Now())}).
		Value(":expected", &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)})

	cond := "attribute_exists(#id) AND #version = :expected"
	if expectedVersion == 0 {
		cond = "attribute_exists(#id) AND (attribute_not_exists(#version) OR #version = :expected)"
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(c.Expression()),
		ExpressionAttributeValues: c.values,
		ExpressionAttributeNames:  mergeNames(c.names, map[string]string{"#id": "id", "#version": "version"}),
	})
	if _, ok := conditionFailed(err); ok {
		return nil
	}
	return err
}

// versionedUpdate applies c only when the stored version equals expectedVersion,
// bumping it. A missing or soft-deleted item yields a zero Inspection; any other
// failed condition is a version conflict.
func (r *InspectionDynamoRepository) versionedUpdate(ctx context.Context, id string, expectedVersion int64, c *updateClauses) (entities.Inspection, error) {
	c.Set("version", "", &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion+1, 10)}).
		Set("updated_at", "", &types.AttributeValueMemberS{Value: formatTime(time.Now())}).
		Value(":expected", &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)}).
		Value(":false", &types.AttributeValueMemberBOOL{Value: false})

	cond := "attribute_exists(#id) AND (attribute_not_exists(#deleted) OR #deleted = :false) AND #version = :expected"
	if expectedVersion == 0 {
		// Items written before versioning have no version attribute.
		cond = "attribute_exists(#id) AND (attribute_not_exists(#deleted) OR #deleted = :false) AND (attribute_not_exists(#version) OR #version = :expected)"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:                 aws.String(cond),
		UpdateExpression:                    aws.String(c.Expression()),
		ExpressionAttributeValues:           c.values,
		ExpressionAttributeNames:            mergeNames(c.names, map[string]string{"#id": "id", "#deleted": "deleted"}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if cfe, ok := conditionFailed(err); ok {
			if len(cfe.Item) == 0 {
				return entities.Inspection{}, nil
			}
			var old inspectionItem
			if err := attributevalue.UnmarshalMap(cfe.Item, &old); err == nil && old.Deleted {
				return entities.Inspection{}, nil
			}
			return entities.Inspection{}, interfaces.ErrVersionConflict
		}
		return entities.Inspection{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Inspection{}, nil
	}
	var it inspectionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Inspection{}, err
	}
	return fromInspectionItem(it), nil
}

func processorIDs(history []entities.PaymentEntry) []string {
	seen := make(map[string]struct{}, len(history))
	ids := make([]string, 0, len(history))
	for _, p := range history {
		if p.ProcessorPaymentID == "" {
			continue
		}
		if _, ok := seen[p.ProcessorPaymentID]; ok {
			continue
		}
		seen[p.ProcessorPaymentID] = struct{}{}
		ids = append(ids, p.ProcessorPaymentID)
	}
	return ids
}

func toInspectionItem(i entities.Inspection) inspectionItem {
	it := inspectionItem{
		ID:                  i.ID,
		CompanyID:           i.CompanyID,
		ClientViewToken:     i.ClientViewToken,
		ConfirmedInspection: i.ConfirmedInspection,
		Deleted:             i.Deleted,
		Pricing:             pricingAttr{Items: toPricingItemAttrs(i.Pricing.Items)},
		DiscountCodeID:      i.DiscountCodeID,
		PaymentHistory:      toPaymentEntryAttrs(i.PaymentHistory),
		IsPaid:              i.IsPaid,
		ProcessorPaymentIDs: processorIDs(i.PaymentHistory),
		Version:             i.Version,
		CreatedAt:           formatTime(i.CreatedAt),
		UpdatedAt:           formatTime(i.UpdatedAt),
	}
	for _, a := range i.RequestedAddons {
		it.RequestedAddons = append(it.RequestedAddons, requestedAddonAttr{
			ServiceID: a.ServiceID,
			AddonName: a.AddonName,
			AddFee:    a.AddFee,
			Status:    string(a.Status),
		})
	}
	if i.PaymentInfo != nil {
		info := toPaymentInfoAttr(*i.PaymentInfo)
		it.PaymentInfo = &info
	}
	return it
}

func fromInspectionItem(it inspectionItem) entities.Inspection {
	i := entities.Inspection{
		ID:                  it.ID,
		CompanyID:           it.CompanyID,
		ClientViewToken:     it.ClientViewToken,
		ConfirmedInspection: it.ConfirmedInspection,
		Deleted:             it.Deleted,
		DiscountCodeID:      it.DiscountCodeID,
		IsPaid:              it.IsPaid,
		Version:             it.Version,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
		Pricing:             entities.Pricing{Items: make([]entities.PricingItem, 0, len(it.Pricing.Items))},
		PaymentHistory:      make([]entities.PaymentEntry, 0, len(it.PaymentHistory)),
	}
	for _, p := range it.Pricing.Items {
		i.Pricing.Items = append(i.Pricing.Items, entities.PricingItem{
			Type:          entities.PricingItemType(p.Type),
			Name:          p.Name,
			Price:         p.Price,
			ServiceID:     firstNonEmpty(p.ServiceID, p.LegacyServiceID),
			AddonName:     firstNonEmpty(p.AddonName, p.LegacyAddOnName, p.LegacyAddonName),
			OriginalPrice: p.OriginalPrice,
			Hours:         p.Hours,
		})
	}
	for _, a := range it.RequestedAddons {
		i.RequestedAddons = append(i.RequestedAddons, entities.RequestedAddon{
			ServiceID: firstNonEmpty(a.ServiceID, a.LegacyServiceID),
			AddonName: firstNonEmpty(a.AddonName, a.LegacyAddonName, a.LegacyAddOnName),
			AddFee:    a.AddFee,
			Status:    entities.RequestedAddonStatus(a.Status),
		})
	}
	for _, p := range it.PaymentHistory {
		i.PaymentHistory = append(i.PaymentHistory, entities.PaymentEntry{
			ID:                 p.ID,
			Amount:             p.Amount,
			PaidAt:             parseTime(p.PaidAt),
			Currency:           p.Currency,
			PaymentMethod:      p.PaymentMethod,
			ProcessorPaymentID: p.ProcessorPaymentID,
		})
	}
	if it.PaymentInfo != nil {
		i.PaymentInfo = &entities.PaymentInfo{
			AmountPaid:         it.PaymentInfo.AmountPaid,
			PaidAt:             parseTime(it.PaymentInfo.PaidAt),
			Currency:           it.PaymentInfo.Currency,
			PaymentMethod:      it.PaymentInfo.PaymentMethod,
			ProcessorPaymentID: it.PaymentInfo.ProcessorPaymentID,
		}
	}
	return i
}

func toPricingItemAttrs(items []entities.PricingItem) []pricingItemAttr {
	out := make([]pricingItemAttr, 0, len(items))
	for _, p := range items {
		out = append(out, pricingItemAttr{
			Type:          string(p.Type),
			Name:          p.Name,
			Price:         p.Price,
			ServiceID:     p.ServiceID,
			AddonName:     p.AddonName,
			OriginalPrice: p.OriginalPrice,
			Hours:         p.Hours,
		})
	}
	return out
}

func toPaymentEntryAttrs(history []entities.PaymentEntry) []paymentEntryAttr {
	out := make([]paymentEntryAttr, 0, len(history))
	for _, p := range history {
		out = append(out, toPaymentEntryAttr(p))
	}
	return out
}

func toPaymentEntryAttr(p entities.PaymentEntry) paymentEntryAttr {
	return paymentEntryAttr{
		ID:                 p.ID,
		Amount:             p.Amount,
		PaidAt:             formatTime(p.PaidAt),
		Currency:           p.Currency,
		PaymentMethod:      p.PaymentMethod,
		ProcessorPaymentID: p.ProcessorPaymentID,
	}
}

func toPaymentInfoAttr(info entities.PaymentInfo) paymentInfoAttr {
	return paymentInfoAttr{
		AmountPaid:         info.AmountPaid,
		PaidAt:             formatTime(info.PaidAt),
		Currency:           info.Currency,
		PaymentMethod:      info.PaymentMethod,
		ProcessorPaymentID: info.ProcessorPaymentID,
	}
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

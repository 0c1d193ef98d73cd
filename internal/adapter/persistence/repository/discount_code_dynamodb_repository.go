package repository

import (
	"context"

	"inspection_billing/internal/domain/entities"
	"inspection_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDiscountCodesTableName = "discount_codes"
	discountCodesCodeIndex        = "code-index"
)

type addOnRuleAttr struct {
	Service         string `dynamodbav:"service"`
	AddOnName       string `dynamodbav:"addOnName,omitempty"`
	LegacyAddonName string `dynamodbav:"addonName,omitempty"`
}

type discountCodeItem struct {
	ID                string          `dynamodbav:"id"`
	Code              string          `dynamodbav:"code"`
	Type              string          `dynamodbav:"type"`
	Value             float64         `dynamodbav:"value"`
	Active            bool            `dynamodbav:"active"`
	AppliesToServices []string        `dynamodbav:"applies_to_services"`
	AppliesToAddOns   []addOnRuleAttr `dynamodbav:"applies_to_add_ons"`
	CreatedAt         string          `dynamodbav:"created_at"`
	UpdatedAt         string          `dynamodbav:"updated_at"`
}

// DiscountCodeDynamoRepository persists DiscountCode entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: code-index (PK: code)
type DiscountCodeDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IDiscountCodeRepository = (*DiscountCodeDynamoRepository)(nil)

func NewDiscountCodeDynamoRepository(ddb dynamoAPI, tableName string) *DiscountCodeDynamoRepository {
	return &DiscountCodeDynamoRepository{
		ddb:       ddb,
		tableName: tableNameOr(tableName, "DISCOUNT_CODES_TABLE", defaultDiscountCodesTableName),
	}
}

// Create writes the discount code together with a guard item keyed by the code,
// in one transaction. The guard has no code attribute, so it stays out of the
// code index; it only makes a second create of the same code fail.
func (r *DiscountCodeDynamoRepository) Create(ctx context.Context, d entities.DiscountCode) (entities.DiscountCode, error) {
	av, err := attributevalue.MarshalMap(toDiscountCodeItem(d))
	if err != nil {
		return entities.DiscountCode{}, err
	}
	guard := map[string]types.AttributeValue{
		"id":               &types.AttributeValueMemberS{Value: codeGuardID(d.Code)},
		"discount_code_id": &types.AttributeValueMemberS{Value: d.ID},
		"created_at":       &types.AttributeValueMemberS{Value: formatTime(d.CreatedAt)},
	}
	notExists := map[string]string{"#id": "id"}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     guard,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: notExists,
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: notExists,
			}},
		},
	})
	if err != nil {
		if transactionConditionFailed(err) {
			return entities.DiscountCode{}, interfaces.ErrDuplicateKey
		}
		return entities.DiscountCode{}, err
	}
	return d, nil
}

func codeGuardID(code string) string {
	return "code#" + code
}

func (r *DiscountCodeDynamoRepository) GetByID(ctx context.Context, id string) (entities.DiscountCode, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.DiscountCode{}, err
	}
	if len(out.Item) == 0 {
		return entities.DiscountCode{}, nil
	}

	var it discountCodeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DiscountCode{}, err
	}
	return fromDiscountCodeItem(it), nil
}

func (r *DiscountCodeDynamoRepository) GetByCode(ctx context.Context, code string) (entities.DiscountCode, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(discountCodesCodeIndex),
		KeyConditionExpression: aws.String("#code = :code"),
		ExpressionAttributeNames: map[string]string{
			"#code": "code",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.DiscountCode{}, err
	}
	if len(out.Items) == 0 {
		return entities.DiscountCode{}, nil
	}

	var it discountCodeItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.DiscountCode{}, err
	}
	return fromDiscountCodeItem(it), nil
}

func toDiscountCodeItem(d entities.DiscountCode) discountCodeItem {
	it := discountCodeItem{
		ID:                d.ID,
		Code:              d.Code,
		Type:              string(d.Type),
		Value:             d.Value,
		Active:            d.Active,
		AppliesToServices: append([]string{}, d.AppliesToServices...),
		AppliesToAddOns:   make([]addOnRuleAttr, 0, len(d.AppliesToAddOns)),
		CreatedAt:         formatTime(d.CreatedAt),
		UpdatedAt:         formatTime(d.UpdatedAt),
	}
	for _, a := range d.AppliesToAddOns {
		it.AppliesToAddOns = append(it.AppliesToAddOns, addOnRuleAttr{Service: a.ServiceID, AddOnName: a.AddonName})
	}
	return it
}

func fromDiscountCodeItem(it discountCodeItem) entities.DiscountCode {
	d := entities.DiscountCode{
		ID:                it.ID,
		Code:              it.Code,
		Type:              entities.DiscountType(it.Type),
		Value:             it.Value,
		Active:            it.Active,
		AppliesToServices: it.AppliesToServices,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
	for _, a := range it.AppliesToAddOns {
		d.AppliesToAddOns = append(d.AppliesToAddOns, entities.AddOnRule{
			ServiceID: a.Service,
			AddonName: firstNonEmpty(a.AddOnName, a.LegacyAddonName),
		})
	}
	return d
}

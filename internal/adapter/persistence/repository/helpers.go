package repository

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// dynamoAPI is the subset of *dynamodb.Client the repositories use.
type dynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ dynamoAPI = (*dynamodb.Client)(nil)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func tableNameOr(name, envKey, def string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return getenvDefault(envKey, def)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// conditionFailed returns the ConditionalCheckFailedException wrapped in err, if any.
func conditionFailed(err error) (*types.ConditionalCheckFailedException, bool) {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return cfe, true
	}
	return nil, false
}

// transactionConditionFailed reports whether a transaction was canceled by a
// failed condition of one of its items.
func transactionConditionFailed(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

// updateClauses assembles a DynamoDB UpdateExpression from its SET, ADD and
// REMOVE actions.
type updateClauses struct {
	set    []string
	add    []string
	remove []string
	values map[string]types.AttributeValue
	names  map[string]string
}

func newUpdateClauses() *updateClauses {
	return &updateClauses{values: map[string]types.AttributeValue{}, names: map[string]string{}}
}

// Set adds "#attr = <expr>" with value bound to the placeholder :attr when v is not nil.
func (c *updateClauses) Set(attr, expr string, v types.AttributeValue) *updateClauses {
	c.names["#"+attr] = attr
	if expr == "" {
		expr = ":" + attr
	}
	c.set = append(c.set, "#"+attr+" = "+expr)
	if v != nil {
		c.values[":"+attr] = v
	}
	return c
}

func (c *updateClauses) Add(attr string, v types.AttributeValue) *updateClauses {
	c.names["#"+attr] = attr
	c.add = append(c.add, "#"+attr+" :"+attr)
	c.values[":"+attr] = v
	return c
}

func (c *updateClauses) Remove(attr string) *updateClauses {
	c.names["#"+attr] = attr
	c.remove = append(c.remove, "#"+attr)
	return c
}

func (c *updateClauses) Value(placeholder string, v types.AttributeValue) *updateClauses {
	c.values[placeholder] = v
	return c
}

func (c *updateClauses) Expression() string {
	parts := make([]string, 0, 3)
	if len(c.set) > 0 {
		parts = append(parts, "SET "+strings.Join(c.set, ", "))
	}
	if len(c.add) > 0 {
		parts = append(parts, "ADD "+strings.Join(c.add, ", "))
	}
	if len(c.remove) > 0 {
		parts = append(parts, "REMOVE "+strings.Join(c.remove, ", "))
	}
	return strings.Join(parts, " ")
}

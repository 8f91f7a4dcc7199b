package repository

import (
	"context"
	"sort"
	"strconv"

	"theater_billing/internal/domain/entities"
	"theater_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultPaymentsTableName = "payments"
	PaymentsStatementIDIndex = "statement_id-index"
)

type billingPaymentItem struct {
	ID           string                 `dynamodbav:"id"`
	StatementID  string                 `dynamodbav:"statement_id"`
	Amount       string                 `dynamodbav:"amount"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// BillingPaymentDynamoRepository persists BillingPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: statement_id-index (PK: statement_id)

type BillingPaymentDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IBillingPaymentRepository = (*BillingPaymentDynamoRepository)(nil)

func NewBillingPaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *BillingPaymentDynamoRepository {
	return newBillingPaymentRepository(ddb, tableName)
}

func newBillingPaymentRepository(ddb dynamoAPI, tableName string) *BillingPaymentDynamoRepository {
	return &BillingPaymentDynamoRepository{
		ddb:       ddb,
		tableName: tableNameOr(tableName, DefaultPaymentsTableName),
	}
}

func (r *BillingPaymentDynamoRepository) Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
	av, err := attributevalue.MarshalMap(toBillingPaymentItem(p))
	if err != nil {
		return entities.BillingPayment{}, err
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
		return entities.BillingPayment{}, err
	}
	return p, nil
}

func (r *BillingPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.BillingPayment{}, nil
	}

	var it billingPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BillingPayment{}, err
	}
	return fromBillingPaymentItem(it), nil
}

// ListByStatementID returns the statement's payments, oldest first.
func (r *BillingPaymentDynamoRepository) ListByStatementID(ctx context.Context, statementID string) ([]entities.BillingPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(PaymentsStatementIDIndex),
		KeyConditionExpression: aws.String("statement_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: statementID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.BillingPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it billingPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBillingPaymentItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
	return items, nil
}

func toBillingPaymentItem(p entities.BillingPayment) billingPaymentItem {
	return billingPaymentItem{
		ID:           p.ID,
		StatementID:  p.StatementID,
		Amount:       floatToString(p.Amount),
		Date:         formatTime(p.Date),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromBillingPaymentItem(it billingPaymentItem) entities.BillingPayment {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.BillingPayment{
		ID:           it.ID,
		StatementID:  it.StatementID,
		Amount:       amount,
		Date:         parseTime(it.Date),
		Status:       entities.PaymentStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
}

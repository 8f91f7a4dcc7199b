package repository

import (
	"context"
	"errors"
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
	DefaultStatementsTableName = "statements"
	StatementsCustomerIndex    = "customer-index"
)

type statementLineItem struct {
	PlayID   string `dynamodbav:"play_id"`
	PlayName string `dynamodbav:"play_name"`
	Audience int    `dynamodbav:"audience"`
	Amount   int64  `dynamodbav:"amount"`
	Credits  int    `dynamodbav:"credits"`
}

type statementItem struct {
	ID           string              `dynamodbav:"id"`
	Customer     string              `dynamodbav:"customer"`
	Lines        []statementLineItem `dynamodbav:"lines"`
	TotalAmount  int64               `dynamodbav:"total_amount"`
	TotalCredits int                 `dynamodbav:"total_credits"`
	AmountOwed   string              `dynamodbav:"amount_owed"`
	Format       string              `dynamodbav:"format"`
	Body         string              `dynamodbav:"body"`
	Status       string              `dynamodbav:"status"`
	CreatedAt    string              `dynamodbav:"created_at"`
	UpdatedAt    string              `dynamodbav:"updated_at"`
}

// StatementDynamoRepository persists Statement entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer-index (PK: customer)
//
// Statements are write-once apart from their status, which only changes through
// conditional transitions.

type StatementDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IStatementRepository = (*StatementDynamoRepository)(nil)

func NewStatementDynamoRepository(ddb *dynamodb.Client, tableName string) *StatementDynamoRepository {
	return newStatementRepository(ddb, tableName)
}

func newStatementRepository(ddb dynamoAPI, tableName string) *StatementDynamoRepository {
	return &StatementDynamoRepository{
		ddb:       ddb,
		tableName: tableNameOr(tableName, DefaultStatementsTableName),
	}
}

func (r *StatementDynamoRepository) Create(ctx context.Context, s entities.Statement) (entities.Statement, error) {
	av, err := attributevalue.MarshalMap(toStatementItem(s))
	if err != nil {
		return entities.Statement{}, err
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
		return entities.Statement{}, err
	}
	return s, nil
}

func (r *StatementDynamoRepository) GetByID(ctx context.Context, id string) (entities.Statement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Statement{}, err
	}
	if len(out.Item) == 0 {
		return entities.Statement{}, nil
	}

	var it statementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Statement{}, err
	}
	return fromStatementItem(it), nil
}

// ListByCustomer returns the customer's statements, oldest first.
func (r *StatementDynamoRepository) ListByCustomer(ctx context.Context, customer string) ([]entities.Statement, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(StatementsCustomerIndex),
		KeyConditionExpression: aws.String("#customer = :customer"),
		ExpressionAttributeNames: map[string]string{
			"#customer": "customer",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":customer": &types.AttributeValueMemberS{Value: customer},
		},
	})

	statements := make([]entities.Statement, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it statementItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			statements = append(statements, fromStatementItem(it))
		}
	}

	sort.SliceStable(statements, func(i, j int) bool {
		return statements[i].CreatedAt.Before(statements[j].CreatedAt)
	})
	return statements, nil
}

// TransitionStatusByID moves a statement from one status to another in a single
// conditional write. A missing statement or a status other than from yields an empty
// Statement.
func (r *StatementDynamoRepository) TransitionStatusByID(ctx context.Context, id string, from, to entities.StatementStatus) (entities.Statement, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":status":     &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(nowFunc())},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Statement{}, nil
		}
		return entities.Statement{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Statement{}, nil
	}

	var it statementItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Statement{}, err
	}
	return fromStatementItem(it), nil
}

func toStatementItem(s entities.Statement) statementItem {
	lines := make([]statementLineItem, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, statementLineItem{
			PlayID:   l.PlayID,
			PlayName: l.PlayName,
			Audience: l.Audience,
			Amount:   l.Amount,
			Credits:  l.Credits,
		})
	}
	return statementItem{
		ID:           s.ID,
		Customer:     s.Customer,
		Lines:        lines,
		TotalAmount:  s.TotalAmount,
		TotalCredits: s.TotalCredits,
		AmountOwed:   floatToString(s.AmountOwed),
		Format:       string(s.Format),
		Body:         s.Body,
		Status:       string(s.Status),
		CreatedAt:    formatTime(s.CreatedAt),
		UpdatedAt:    formatTime(s.UpdatedAt),
	}
}

func fromStatementItem(it statementItem) entities.Statement {
	lines := make([]entities.StatementLine, 0, len(it.Lines))
	for _, l := range it.Lines {
		lines = append(lines, entities.StatementLine{
			PlayID:   l.PlayID,
			PlayName: l.PlayName,
			Audience: l.Audience,
			Amount:   l.Amount,
			Credits:  l.Credits,
		})
	}
	owed, _ := strconv.ParseFloat(it.AmountOwed, 64)
	return entities.Statement{
		ID:           it.ID,
		Customer:     it.Customer,
		Lines:        lines,
		TotalAmount:  it.TotalAmount,
		TotalCredits: it.TotalCredits,
		AmountOwed:   owed,
		Format:       entities.StatementFormat(it.Format),
		Body:         it.Body,
		Status:       entities.StatementStatus(it.Status),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"theater_billing/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo keeps items per table keyed by "id" and answers GSI queries by scanning
// for the attribute named in the key condition value.
type fakeDynamo struct {
	tables    map[string]map[string]map[string]types.AttributeValue
	lastPut   *dynamodb.PutItemInput
	lastQuery *dynamodb.QueryInput
	queryAttr string
	err       error
}

func newFakeDynamo(queryAttr string) *fakeDynamo {
	return &fakeDynamo{
		tables:    map[string]map[string]map[string]types.AttributeValue{},
		queryAttr: queryAttr,
	}
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[name]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		f.tables[name] = t
	}
	return t
}

func keyOf(item map[string]types.AttributeValue) string {
	if s, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastPut = in
	t := f.table(aws.ToString(in.TableName))
	id := keyOf(in.Item)
	if _, exists := t[id]; exists {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	t[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.table(aws.ToString(in.TableName))[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastQuery = in
	var want string
	for _, v := range in.ExpressionAttributeValues {
		want = v.(*types.AttributeValueMemberS).Value
	}
	out := &dynamodb.QueryOutput{}
	for _, item := range f.table(aws.ToString(in.TableName)) {
		if s, ok := item[f.queryAttr].(*types.AttributeValueMemberS); ok && s.Value == want {
			out.Items = append(out.Items, item)
		}
	}
	return out, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	t := f.table(aws.ToString(in.TableName))
	item, ok := t[keyOf(in.Key)]
	if !ok {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
	}
	if from, ok := in.ExpressionAttributeValues[":from"].(*types.AttributeValueMemberS); ok {
		current, _ := item["status"].(*types.AttributeValueMemberS)
		if current == nil || current.Value != from.Value {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("status")}
		}
	}
	item["status"] = in.ExpressionAttributeValues[":status"]
	item["updated_at"] = in.ExpressionAttributeValues[":updated_at"]
	return &dynamodb.UpdateItemOutput{Attributes: item}, nil
}

func sampleStatement(id string, created time.Time) entities.Statement {
	return entities.Statement{
		ID:       id,
		Customer: "BigCo",
		Lines: []entities.StatementLine{
			{PlayID: "hamlet", PlayName: "Hamlet", Audience: 55, Amount: 65000, Credits: 25},
		},
		TotalAmount:  65000,
		TotalCredits: 25,
		AmountOwed:   650,
		Format:       entities.StatementFormatText,
		Body:         "Statement for BigCo\n",
		Status:       entities.StatementStatusIssued,
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}

func TestStatementRepository_CreateAndGet(t *testing.T) {
	fake := newFakeDynamo("customer")
	repo := newStatementRepository(fake, "")
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	_, err := repo.Create(context.Background(), sampleStatement("st-1", created))
	require.NoError(t, err)
	assert.Equal(t, DefaultStatementsTableName, aws.ToString(fake.lastPut.TableName))

	got, err := repo.GetByID(context.Background(), "st-1")
	require.NoError(t, err)
	assert.Equal(t, sampleStatement("st-1", created), got)

	_, err = repo.Create(context.Background(), sampleStatement("st-1", created))
	var cfe *types.ConditionalCheckFailedException
	assert.True(t, errors.As(err, &cfe))
}

func TestStatementRepository_GetMissing(t *testing.T) {
	repo := newStatementRepository(newFakeDynamo("customer"), "custom")
	got, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestStatementRepository_ListByCustomer(t *testing.T) {
	fake := newFakeDynamo("customer")
	repo := newStatementRepository(fake, "statements-test")
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"c", "a", "b"} {
		s := sampleStatement(id, base.Add(time.Duration(i)*time.Hour))
		_, err := repo.Create(context.Background(), s)
		require.NoError(t, err)
	}
	other := sampleStatement("z", base)
	other.Customer = "SmallCo"
	_, err := repo.Create(context.Background(), other)
	require.NoError(t, err)

	got, err := repo.ListByCustomer(context.Background(), "BigCo")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, StatementsCustomerIndex, aws.ToString(fake.lastQuery.IndexName))
	assert.Equal(t, "statements-test", aws.ToString(fake.lastQuery.TableName))
}

func TestStatementRepository_TransitionStatusByID(t *testing.T) {
	fake := newFakeDynamo("customer")
	repo := newStatementRepository(fake, "")
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	_, err := repo.Create(context.Background(), sampleStatement("st-1", created))
	require.NoError(t, err)

	updatedAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	prev := nowFunc
	nowFunc = func() time.Time { return updatedAt }
	t.Cleanup(func() { nowFunc = prev })

	got, err := repo.TransitionStatusByID(context.Background(), "st-1", entities.StatementStatusIssued, entities.StatementStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, entities.StatementStatusProcessing, got.Status)
	assert.True(t, got.UpdatedAt.Equal(updatedAt))

	got, err = repo.TransitionStatusByID(context.Background(), "st-1", entities.StatementStatusProcessing, entities.StatementStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, entities.StatementStatusPaid, got.Status)

	missing, err := repo.TransitionStatusByID(context.Background(), "nope", entities.StatementStatusIssued, entities.StatementStatusPaid)
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestStatementRepository_TransitionStatusByIDClaimsOnce(t *testing.T) {
	fake := newFakeDynamo("customer")
	repo := newStatementRepository(fake, "")
	_, err := repo.Create(context.Background(), sampleStatement("st-1", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	first, err := repo.TransitionStatusByID(context.Background(), "st-1", entities.StatementStatusIssued, entities.StatementStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, "st-1", first.ID)

	second, err := repo.TransitionStatusByID(context.Background(), "st-1", entities.StatementStatusIssued, entities.StatementStatusProcessing)
	require.NoError(t, err)
	assert.Empty(t, second.ID)

	stored, err := repo.GetByID(context.Background(), "st-1")
	require.NoError(t, err)
	assert.Equal(t, entities.StatementStatusProcessing, stored.Status)
}

func TestStatementRepository_PropagatesErrors(t *testing.T) {
	fake := newFakeDynamo("customer")
	fake.err = errors.New("throttled")
	repo := newStatementRepository(fake, "")

	_, err := repo.GetByID(context.Background(), "st-1")
	assert.EqualError(t, err, "throttled")
	_, err = repo.ListByCustomer(context.Background(), "BigCo")
	assert.EqualError(t, err, "throttled")
	_, err = repo.TransitionStatusByID(context.Background(), "st-1", entities.StatementStatusIssued, entities.StatementStatusPaid)
	assert.EqualError(t, err, "throttled")
}

func TestBillingPaymentRepository_RoundTrip(t *testing.T) {
	fake := newFakeDynamo("statement_id")
	repo := newBillingPaymentRepository(fake, "")
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	second := entities.BillingPayment{
		ID:           "pay-2",
		StatementID:  "st-1",
		Amount:       1730,
		Date:         base.Add(time.Minute),
		Status:       entities.PaymentStatusApproved,
		MPPayloadRaw: []byte(`{"id":"pay-2"}`),
		MPPayload:    map[string]interface{}{"id": "pay-2"},
	}
	first := entities.BillingPayment{ID: "pay-1", StatementID: "st-1", Amount: 1730, Date: base, Status: entities.PaymentStatusDenied}

	for _, p := range []entities.BillingPayment{second, first} {
		_, err := repo.Create(context.Background(), p)
		require.NoError(t, err)
	}
	assert.Equal(t, DefaultPaymentsTableName, aws.ToString(fake.lastPut.TableName))

	got, err := repo.GetByID(context.Background(), "pay-2")
	require.NoError(t, err)
	assert.Equal(t, "st-1", got.StatementID)
	assert.Equal(t, 1730.0, got.Amount)
	assert.Equal(t, entities.PaymentStatusApproved, got.Status)
	assert.JSONEq(t, `{"id":"pay-2"}`, string(got.MPPayloadRaw))
	assert.Equal(t, "pay-2", got.MPPayload["id"])

	list, err := repo.ListByStatementID(context.Background(), "st-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "pay-1", list[0].ID)
	assert.Equal(t, PaymentsStatementIDIndex, aws.ToString(fake.lastQuery.IndexName))

	missing, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

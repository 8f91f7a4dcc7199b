package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type describerFunc func(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)

func (f describerFunc) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	return f(ctx, params, optFns...)
}

func active() *dynamodb.DescribeTableOutput {
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{TableStatus: types.TableStatusActive}}
}

func TestWaitForTables_RetriesUntilActive(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	calls := 0
	ddb := describerFunc(func(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
		calls++
		if calls < 3 {
			return nil, errors.New("connection refused")
		}
		return active(), nil
	})

	err := WaitForTables(context.Background(), ddb, []string{"statements"}, 10*time.Second, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 2, logs.FilterMessage("dynamodb not ready, retrying").Len())
}

func TestWaitForTables_ChecksEveryTable(t *testing.T) {
	var seen []string
	ddb := describerFunc(func(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
		seen = append(seen, aws.ToString(in.TableName))
		return active(), nil
	})

	err := WaitForTables(context.Background(), ddb, []string{"statements", "payments"}, time.Second, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"statements", "payments"}, seen)
}

func TestWaitForTables_GivesUp(t *testing.T) {
	ddb := describerFunc(func(context.Context, *dynamodb.DescribeTableInput, ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
		return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{TableStatus: types.TableStatusCreating}}, nil
	})

	err := WaitForTables(context.Background(), ddb, []string{"statements"}, 300*time.Millisecond, zap.NewNop())
	assert.ErrorContains(t, err, "not active")
}

func TestWaitForTables_StopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ddb := describerFunc(func(ctx context.Context, _ *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
		return nil, ctx.Err()
	})

	err := WaitForTables(ctx, ddb, []string{"statements"}, time.Minute, zap.NewNop())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClientOptions(t *testing.T) {
	assert.Nil(t, clientOptions(Options{}))

	fns := clientOptions(Options{Endpoint: " http://localhost:8000 "})
	require.Len(t, fns, 1)
	var o dynamodb.Options
	fns[0](&o)
	assert.Equal(t, "http://localhost:8000", aws.ToString(o.BaseEndpoint))
}

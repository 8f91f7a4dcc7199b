package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// Options selects the DynamoDB target.
//
// Local DynamoDB does not validate credentials, but the AWS SDK requires them, so
// AccessKeyID/SecretAccessKey default to "local" upstream in config.
type Options struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// Endpoint overrides the service endpoint (e.g. http://dynamodb:8000).
	Endpoint string
}

// ConnectDynamoDB creates a DynamoDB client for opts.
func ConnectDynamoDB(ctx context.Context, opts Options) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfig(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg, clientOptions(opts)...), nil
}

func NewDynamoDBConfig(ctx context.Context, opts Options) (aws.Config, error) {
	region := strings.TrimSpace(opts.Region)
	if region == "" {
		region = "us-east-1"
	}

	creds := credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	)
}

func clientOptions(opts Options) []func(*dynamodb.Options) {
	endpoint := strings.TrimSpace(opts.Endpoint)
	if endpoint == "" {
		return nil
	}
	return []func(*dynamodb.Options){
		func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		},
	}
}

// TableDescriber is the part of the DynamoDB API WaitForTables needs.
type TableDescriber interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// WaitForTables blocks until every table is ACTIVE, retrying with exponential backoff
// for at most timeout. Local DynamoDB containers usually come up after the service.
func WaitForTables(ctx context.Context, ddb TableDescriber, tables []string, timeout time.Duration, log *zap.Logger) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 200 * time.Millisecond
	policy.MaxInterval = 5 * time.Second
	policy.MaxElapsedTime = timeout

	log.Info("waiting for dynamodb tables", zap.Strings("tables", tables))

	err := backoff.RetryNotify(
		func() error {
			for _, name := range tables {
				out, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)})
				if err != nil {
					if ctx.Err() != nil {
						return backoff.Permanent(ctx.Err())
					}
					return fmt.Errorf("describe %s: %w", name, err)
				}
				if out.Table == nil || out.Table.TableStatus != types.TableStatusActive {
					return fmt.Errorf("table %s not active", name)
				}
			}
			return nil
		},
		backoff.WithContext(policy, ctx),
		func(err error, next time.Duration) {
			log.Warn("dynamodb not ready, retrying",
				zap.Error(err),
				zap.Duration("next_attempt_in", next))
		},
	)
	if err != nil {
		return fmt.Errorf("dynamodb tables not ready: %w", err)
	}

	log.Info("dynamodb tables ready")
	return nil
}

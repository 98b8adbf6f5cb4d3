package database

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"supplier_report/internal/logger"
)

// Options configures the DynamoDB client.
//
// Empty credentials fall back to AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY
// and then to "local", which DynamoDB Local accepts. Endpoint is optional
// (e.g. http://dynamodb:8000).
type Options struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// ConnectDynamoDB creates a DynamoDB client for opts.
func ConnectDynamoDB(ctx context.Context, opts Options) (*dynamodb.Client, error) {
	cfg, err := NewAWSConfig(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}

	log := logger.WithComponent("dynamodb")
	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})
	log.Info().Str("region", cfg.Region).Str("endpoint", opts.Endpoint).Msg("dynamodb client ready")
	return client, nil
}

func NewAWSConfig(ctx context.Context, opts Options) (aws.Config, error) {
	region := opts.Region
	if region == "" {
		region = getenvDefault("AWS_REGION", "us-east-1")
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}

	// Static credentials only for local endpoints; real deployments use the
	// default chain.
	if opts.Endpoint != "" || opts.AccessKeyID != "" {
		key := opts.AccessKeyID
		if key == "" {
			key = getenvDefault("AWS_ACCESS_KEY_ID", "local")
		}
		secret := opts.SecretAccessKey
		if secret == "" {
			secret = getenvDefault("AWS_SECRET_ACCESS_KEY", "local")
		}
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, secret, ""),
		))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

type tableDescriber interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// CheckTables verifies every table exists and is reachable.
func CheckTables(ctx context.Context, client tableDescriber, tables ...string) error {
	for _, t := range tables {
		if _, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(t)}); err != nil {
			return fmt.Errorf("table %s: %w", t, err)
		}
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"squote/internal/store"
)

const DefaultTable = "squote_kv"

// Options configures the DynamoDB connection. Endpoint points the client
// at DynamoDB Local; static credentials are only used when both keys are
// set, otherwise the default AWS credential chain applies.
type Options struct {
	Region          string
	Endpoint        string
	Table           string
	AccessKeyID     string
	SecretAccessKey string
}

type kvItem struct {
	Key   string `dynamodbav:"key"`
	Value []byte `dynamodbav:"value"`
}

// Store persists each collection as one item of a table whose partition
// key is the string attribute "key".
type Store struct {
	ddb   *dynamodb.Client
	table string
}

var _ store.KV = (*Store)(nil)

func New(ctx context.Context, opts Options) (*Store, error) {
	cfg, err := newAWSConfig(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("dynamodb config: %w", err)
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})
	return NewWithClient(client, opts.Table), nil
}

func NewWithClient(client *dynamodb.Client, table string) *Store {
	if table == "" {
		table = DefaultTable
	}
	return &Store{ddb: client, table: table}
}

func newAWSConfig(ctx context.Context, opts Options) (aws.Config, error) {
	region := opts.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, err
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}

	var it kvItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, false, err
	}
	return it.Value, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	av, err := attributevalue.MarshalMap(kvItem{Key: key, Value: value})
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      av,
	})
	return err
}

func (s *Store) Close() error {
	return nil
}

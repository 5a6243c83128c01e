package store

import (
	"context"
	"fmt"

	"dashboard/backend/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoStore — основной драйвер поверх одной таблицы DynamoDB
type DynamoStore struct {
	client *dynamodb.Client
	table  string
}

func NewDynamoStore(ctx context.Context, cfg *config.Config) (*DynamoStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		// Локальный DynamoDB для разработки
		if cfg.DynamoEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoEndpoint)
		}
	})

	return &DynamoStore{client: client, table: cfg.DynamoTable}, nil
}

func (s *DynamoStore) QueryByPrefix(ctx context.Context, pk, skPrefix string, descending bool) ([]Item, error) {
	return s.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.table),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: pk},
			":sk": &types.AttributeValueMemberS{Value: skPrefix},
		},
		ScanIndexForward: aws.Bool(!descending),
	})
}

func (s *DynamoStore) QueryByRange(ctx context.Context, pk, skFrom, skTo string) ([]Item, error) {
	return s.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.table),
		KeyConditionExpression: aws.String("PK = :pk AND SK BETWEEN :from AND :to"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":   &types.AttributeValueMemberS{Value: pk},
			":from": &types.AttributeValueMemberS{Value: skFrom},
			":to":   &types.AttributeValueMemberS{Value: skTo},
		},
		ScanIndexForward: aws.Bool(true),
	})
}

func (s *DynamoStore) query(ctx context.Context, input *dynamodb.QueryInput) ([]Item, error) {
	items := []Item{}

	for {
		out, err := s.client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("querying dynamo: %w", err)
		}

		page := []Item{}
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshalling dynamo items: %w", err)
		}
		items = append(items, page...)

		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	return items, nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"pazes_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProcessedSalesTableName = "processed_sales"

type processedSaleItem struct {
	SaleID      string `dynamodbav:"sale_id"`
	ProcessedAt string `dynamodbav:"processed_at"`
}

// ProcessedSaleDynamoRepository is the durable idempotency store for webhook
// reconciliation.
//
// Table requirements:
//   - PK: sale_id (string)
//
// The conditional put is the whole point: two concurrent notifications for
// the same sale race on attribute_not_exists and exactly one wins.

type ProcessedSaleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProcessedSaleRepository = (*ProcessedSaleDynamoRepository)(nil)

func NewProcessedSaleDynamoRepository(ddb *dynamodb.Client) *ProcessedSaleDynamoRepository {
	return &ProcessedSaleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROCESSED_SALES_TABLE", defaultProcessedSalesTableName),
	}
}

func (r *ProcessedSaleDynamoRepository) MarkProcessed(ctx context.Context, saleID string) error {
	it := processedSaleItem{
		SaleID:      saleID,
		ProcessedAt: time.Now().UTC().Format(time.RFC3339),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sale_id)"),
		ExpressionAttributeNames: map[string]string{
			"#sale_id": "sale_id",
		},
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return interfaces.ErrSaleAlreadyProcessed
		}
		return err
	}
	return nil
}

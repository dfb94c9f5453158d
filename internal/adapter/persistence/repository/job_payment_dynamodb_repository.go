package repository

import (
	"context"
	"encoding/json"
	"time"

	"borewell_ops/internal/domain/entities"
	"borewell_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultJobPaymentsTableName = "job_payments"
	paymentsRequestIndex        = "request_id-index"
)

type jobPaymentItem struct {
	ID        string `dynamodbav:"id"`
	RequestID string `dynamodbav:"request_id"`
	Date      string `dynamodbav:"date"`
	Status    string `dynamodbav:"status"`
	MPPayload string `dynamodbav:"mp_payload,omitempty"`
}

// JobPaymentDynamoRepository persists JobPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: request_id-index (PK: request_id)

type JobPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobPaymentRepository = (*JobPaymentDynamoRepository)(nil)

func NewJobPaymentDynamoRepository(ddb *dynamodb.Client) *JobPaymentDynamoRepository {
	return &JobPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOB_PAYMENTS_TABLE", defaultJobPaymentsTableName),
	}
}

func (r *JobPaymentDynamoRepository) Create(ctx context.Context, p entities.JobPayment) (entities.JobPayment, error) {
	it := toJobPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.JobPayment{}, err
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
		return entities.JobPayment{}, err
	}
	return p, nil
}

func (r *JobPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.JobPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.JobPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.JobPayment{}, nil
	}

	var it jobPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.JobPayment{}, err
	}
	return fromJobPaymentItem(it), nil
}

func (r *JobPaymentDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.JobPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsRequestIndex),
		KeyConditionExpression: aws.String("request_id = :request_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":request_id": &types.AttributeValueMemberS{Value: requestID},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.JobPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it jobPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromJobPaymentItem(it))
	}
	return payments, nil
}

func toJobPaymentItem(p entities.JobPayment) jobPaymentItem {
	return jobPaymentItem{
		ID:        p.ID,
		RequestID: p.RequestID,
		Date:      p.Date.UTC().Format(time.RFC3339Nano),
		Status:    string(p.Status),
		MPPayload: string(p.MPPayloadRaw),
	}
}

func fromJobPaymentItem(it jobPaymentItem) entities.JobPayment {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)

	p := entities.JobPayment{
		ID:        it.ID,
		RequestID: it.RequestID,
		Date:      date,
		Status:    entities.PaymentStatus(it.Status),
	}
	if it.MPPayload != "" {
		p.MPPayloadRaw = json.RawMessage(it.MPPayload)
		_ = json.Unmarshal(p.MPPayloadRaw, &p.MPPayload)
	}
	return p
}

package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"borewell_ops/internal/domain/entities"
	"borewell_ops/internal/domain/pricing"
	"borewell_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRequestsTableName = "service_requests"
	requestsPhoneIndex       = "phone-index"
)

type requestItemItem struct {
	ProductID string `dynamodbav:"product_id"`
	Name      string `dynamodbav:"name,omitempty"`
	Quantity  int    `dynamodbav:"quantity"`
	UnitPrice string `dynamodbav:"unit_price"`
}

type serviceRequestItem struct {
	ID           string `dynamodbav:"id"`
	CustomerName string `dynamodbav:"customer_name"`
	Phone        string `dynamodbav:"phone"`
	Site         string `dynamodbav:"site,omitempty"`

	DrillingDepthFt string `dynamodbav:"drilling_depth_ft"`
	DrillingRate    string `dynamodbav:"drilling_rate"`
	RateVariant     string `dynamodbav:"rate_variant"`

	CasingDepthFt string `dynamodbav:"casing_depth_ft"`
	CasingRate    string `dynamodbav:"casing_rate"`
	CasingKind    string `dynamodbav:"casing_kind,omitempty"`

	SecondaryCasingDepthFt string `dynamodbav:"secondary_casing_depth_ft"`
	SecondaryCasingRate    string `dynamodbav:"secondary_casing_rate"`

	Items []requestItemItem `dynamodbav:"items,omitempty"`

	Total     string `dynamodbav:"total"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ServiceRequestDynamoRepository persists ServiceRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: phone-index (PK: phone)
//
// Depths, rates and totals are stored as formatted strings so round-tripping
// never loses precision to attribute-value number coercion.

type ServiceRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestDynamoRepository)(nil)

func NewServiceRequestDynamoRepository(ddb *dynamodb.Client) *ServiceRequestDynamoRepository {
	return &ServiceRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
	}
}

func (r *ServiceRequestDynamoRepository) Create(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
	it := toServiceRequestItem(sr)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ServiceRequest{}, err
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
		return entities.ServiceRequest{}, err
	}
	return sr, nil
}

func (r *ServiceRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceRequest{}, nil
	}

	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func (r *ServiceRequestDynamoRepository) ListByPhone(ctx context.Context, phone string) ([]entities.ServiceRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(requestsPhoneIndex),
		KeyConditionExpression: aws.String("phone = :phone"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":phone": &types.AttributeValueMemberS{Value: phone},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ServiceRequest, 0, len(out.Items))
	for _, raw := range out.Items {
		var it serviceRequestItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromServiceRequestItem(it))
	}
	return items, nil
}

func (r *ServiceRequestDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.RequestStatus) (entities.ServiceRequest, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceRequest{}, nil
		}
		return entities.ServiceRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceRequest{}, nil
	}

	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

// UpdatePricingByID rewrites the whole item. The pricing fields and the
// recomputed total always change together, so a full put under an existence
// condition is simpler than a long update expression.
func (r *ServiceRequestDynamoRepository) UpdatePricingByID(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
	it := toServiceRequestItem(sr)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceRequest{}, nil
		}
		return entities.ServiceRequest{}, err
	}
	return sr, nil
}

func toServiceRequestItem(sr entities.ServiceRequest) serviceRequestItem {
	items := make([]requestItemItem, 0, len(sr.Items))
	for _, it := range sr.Items {
		items = append(items, requestItemItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: floatToString(it.UnitPrice),
		})
	}
	return serviceRequestItem{
		ID:           sr.ID,
		CustomerName: sr.CustomerName,
		Phone:        sr.Phone,
		Site:         sr.Site,

		DrillingDepthFt: floatToString(sr.DrillingDepthFt),
		DrillingRate:    floatToString(sr.DrillingRate),
		RateVariant:     string(sr.RateVariant),

		CasingDepthFt: floatToString(sr.CasingDepthFt),
		CasingRate:    floatToString(sr.CasingRate),
		CasingKind:    sr.CasingKind,

		SecondaryCasingDepthFt: floatToString(sr.SecondaryCasingDepthFt),
		SecondaryCasingRate:    floatToString(sr.SecondaryCasingRate),

		Items: items,

		Total:     floatToString(sr.Total),
		Status:    string(sr.Status),
		CreatedAt: sr.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: sr.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromServiceRequestItem(it serviceRequestItem) entities.ServiceRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	items := make([]entities.RequestItem, 0, len(it.Items))
	for _, li := range it.Items {
		price, _ := strconv.ParseFloat(li.UnitPrice, 64)
		items = append(items, entities.RequestItem{
			ProductID: li.ProductID,
			Name:      li.Name,
			Quantity:  li.Quantity,
			UnitPrice: price,
		})
	}

	drillingDepth, _ := strconv.ParseFloat(it.DrillingDepthFt, 64)
	drillingRate, _ := strconv.ParseFloat(it.DrillingRate, 64)
	casingDepth, _ := strconv.ParseFloat(it.CasingDepthFt, 64)
	casingRate, _ := strconv.ParseFloat(it.CasingRate, 64)
	secondaryDepth, _ := strconv.ParseFloat(it.SecondaryCasingDepthFt, 64)
	secondaryRate, _ := strconv.ParseFloat(it.SecondaryCasingRate, 64)
	total, _ := strconv.ParseFloat(it.Total, 64)

	return entities.ServiceRequest{
		ID:           it.ID,
		CustomerName: it.CustomerName,
		Phone:        it.Phone,
		Site:         it.Site,

		DrillingDepthFt: drillingDepth,
		DrillingRate:    drillingRate,
		RateVariant:     pricing.Variant(it.RateVariant),

		CasingDepthFt: casingDepth,
		CasingRate:    casingRate,
		CasingKind:    it.CasingKind,

		SecondaryCasingDepthFt: secondaryDepth,
		SecondaryCasingRate:    secondaryRate,

		Items: items,

		Total:     total,
		Status:    entities.RequestStatus(it.Status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

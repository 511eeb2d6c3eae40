package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"quote_service/internal/domain/entities"
	"quote_service/internal/domain/quotemodel"
	"quote_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultQuotesTableName   = "quotes"
	referenceNumberIndexName = "reference_number-index"
)

type quoteItem struct {
	ID              string  `dynamodbav:"id"`
	ReferenceNumber string  `dynamodbav:"reference_number"`
	Items           string  `dynamodbav:"items"`
	Customer        string  `dynamodbav:"customer"`
	Subtotal        float64 `dynamodbav:"subtotal"`
	Total           float64 `dynamodbav:"total"`
	Currency        string  `dynamodbav:"currency"`
	Status          string  `dynamodbav:"status"`
	Comments        string  `dynamodbav:"comments,omitempty"`
	CreatedAt       string  `dynamodbav:"created_at"`
	ExpiresAt       string  `dynamodbav:"expires_at"`
	LastModifiedAt  string  `dynamodbav:"last_modified_at"`
}

// DynamoDBAPI is the subset of the DynamoDB client the quote store calls.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

var _ DynamoDBAPI = (*dynamodb.Client)(nil)

// QuoteDynamoStore persists quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI reference_number-index with PK reference_number (string)
//
// DynamoDB has no insertion order, so listings are sorted by created_at
// before paging. Listing scans the whole table.
type QuoteDynamoStore struct {
	ddb       DynamoDBAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IQuoteStore = (*QuoteDynamoStore)(nil)

func NewQuoteDynamoStore(ddb DynamoDBAPI, tableName string) *QuoteDynamoStore {
	if tableName == "" {
		tableName = DefaultQuotesTableName
	}
	return &QuoteDynamoStore{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *QuoteDynamoStore) CreateQuote(ctx context.Context, e entities.QuoteEntity) (entities.QuoteEntity, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(e))
	if err != nil {
		return entities.QuoteEntity{}, err
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
		return entities.QuoteEntity{}, err
	}
	return e, nil
}

func (r *QuoteDynamoStore) FindQuoteByReference(ctx context.Context, ref string) (entities.QuoteEntity, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(referenceNumberIndexName),
		KeyConditionExpression: aws.String("#ref = :ref"),
		ExpressionAttributeNames: map[string]string{
			"#ref": "reference_number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: ref},
		},
	})
	if err != nil {
		return entities.QuoteEntity{}, err
	}
	if len(out.Items) == 0 {
		return entities.QuoteEntity{}, nil
	}

	items, err := unmarshalQuoteItems(out.Items)
	if err != nil {
		return entities.QuoteEntity{}, err
	}
	// References are not unique at this layer; the oldest wins.
	sortByCreatedAt(items)
	return items[0], nil
}

func (r *QuoteDynamoStore) FindQuoteByID(ctx context.Context, id string) (entities.QuoteEntity, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteEntity{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteEntity{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteEntity{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoStore) UpdateQuoteStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.QuoteEntity, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #last_modified_at = :last_modified_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":           &types.AttributeValueMemberS{Value: string(status)},
			":last_modified_at": &types.AttributeValueMemberS{Value: quotemodel.FormatTime(r.now())},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":           "status",
			"#last_modified_at": "last_modified_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.QuoteEntity{}, nil
		}
		return entities.QuoteEntity{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.QuoteEntity{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.QuoteEntity{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoStore) GetAllReferences(ctx context.Context) ([]string, error) {
	items, err := r.scanAll(ctx, "reference_number, created_at")
	if err != nil {
		return nil, err
	}
	refs := make([]string, 0, len(items))
	for _, e := range items {
		refs = append(refs, e.ReferenceNumber)
	}
	return refs, nil
}

func (r *QuoteDynamoStore) GetAllQuotes(ctx context.Context, limit, offset int) ([]entities.QuoteEntity, error) {
	items, err := r.scanAll(ctx, "")
	if err != nil {
		return nil, err
	}
	start, end := pageWindow(len(items), limit, offset)
	return items[start:end], nil
}

func (r *QuoteDynamoStore) DeleteQuote(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *QuoteDynamoStore) HealthCheck(ctx context.Context) error {
	out, err := r.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return err
	}
	if out.Table == nil || out.Table.TableStatus != types.TableStatusActive {
		return fmt.Errorf("table %s is not active", r.tableName)
	}
	return nil
}

// scanAll reads every item, sorted by created_at. projection is optional.
func (r *QuoteDynamoStore) scanAll(ctx context.Context, projection string) ([]entities.QuoteEntity, error) {
	in := &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	}
	if projection != "" {
		in.ProjectionExpression = aws.String(projection)
	}

	out := make([]entities.QuoteEntity, 0)
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items, err := unmarshalQuoteItems(page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	sortByCreatedAt(out)
	return out, nil
}

func unmarshalQuoteItems(avs []map[string]types.AttributeValue) ([]entities.QuoteEntity, error) {
	var its []quoteItem
	if err := attributevalue.UnmarshalListOfMaps(avs, &its); err != nil {
		return nil, err
	}
	out := make([]entities.QuoteEntity, 0, len(its))
	for _, it := range its {
		out = append(out, fromQuoteItem(it))
	}
	return out, nil
}

// sortByCreatedAt relies on the fixed-width ISO layout sorting lexically.
func sortByCreatedAt(es []entities.QuoteEntity) {
	sort.SliceStable(es, func(i, j int) bool {
		return es[i].CreatedAt < es[j].CreatedAt
	})
}

func toQuoteItem(e entities.QuoteEntity) quoteItem {
	return quoteItem{
		ID:              e.ID,
		ReferenceNumber: e.ReferenceNumber,
		Items:           e.Items,
		Customer:        e.Customer,
		Subtotal:        e.Subtotal,
		Total:           e.Total,
		Currency:        e.Currency,
		Status:          e.Status,
		Comments:        e.Comments,
		CreatedAt:       e.CreatedAt,
		ExpiresAt:       e.ExpiresAt,
		LastModifiedAt:  e.LastModifiedAt,
	}
}

func fromQuoteItem(it quoteItem) entities.QuoteEntity {
	return entities.QuoteEntity{
		ID:              it.ID,
		ReferenceNumber: it.ReferenceNumber,
		Items:           it.Items,
		Customer:        it.Customer,
		Subtotal:        it.Subtotal,
		Total:           it.Total,
		Currency:        it.Currency,
		Status:          it.Status,
		Comments:        it.Comments,
		CreatedAt:       it.CreatedAt,
		ExpiresAt:       it.ExpiresAt,
		LastModifiedAt:  it.LastModifiedAt,
	}
}

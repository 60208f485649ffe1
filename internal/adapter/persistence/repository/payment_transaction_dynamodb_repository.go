package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"madinah_tours/internal/domain/entities"
	"madinah_tours/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName = "payment_transactions"
	transactionsSessionIDIndex   = "session_id-index"
	transactionsBookingIDIndex   = "booking_id-index"
)

type paymentTransactionItem struct {
	ID         string            `dynamodbav:"id"`
	SessionID  string            `dynamodbav:"session_id"`
	BookingID  string            `dynamodbav:"booking_id"`
	Amount     string            `dynamodbav:"amount"`
	Currency   string            `dynamodbav:"currency"`
	PayerEmail string            `dynamodbav:"payer_email"`
	Metadata   map[string]string `dynamodbav:"metadata,omitempty"`
	Status     string            `dynamodbav:"status"`
	CreatedAt  string            `dynamodbav:"created_at"`
	UpdatedAt  string            `dynamodbav:"updated_at"`
}

// PaymentTransactionDynamoRepository persists PaymentTransaction entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: session_id-index (PK: session_id)
//   - GSI: booking_id-index (PK: booking_id)
//
// UpdateStatusIfNotPaid relies on a ConditionExpression so the "paid is
// absorbing" rule is enforced by the store itself; multiple service instances
// behind the same table cannot double-settle a transaction.

type PaymentTransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentTransactionRepository = (*PaymentTransactionDynamoRepository)(nil)

func NewPaymentTransactionDynamoRepository(ddb *dynamodb.Client) *PaymentTransactionDynamoRepository {
	return &PaymentTransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *PaymentTransactionDynamoRepository) Create(ctx context.Context, tx entities.PaymentTransaction) (entities.PaymentTransaction, error) {
	it := toPaymentTransactionItem(tx)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentTransaction{}, err
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
		return entities.PaymentTransaction{}, err
	}
	return tx, nil
}

func (r *PaymentTransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentTransaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentTransaction{}, nil
	}

	var it paymentTransactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentTransaction{}, err
	}
	return fromPaymentTransactionItem(it), nil
}

func (r *PaymentTransactionDynamoRepository) GetBySessionID(ctx context.Context, sessionID string) (entities.PaymentTransaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsSessionIDIndex),
		KeyConditionExpression: aws.String("session_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: sessionID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if len(out.Items) == 0 {
		return entities.PaymentTransaction{}, nil
	}

	var it paymentTransactionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PaymentTransaction{}, err
	}
	return fromPaymentTransactionItem(it), nil
}

func (r *PaymentTransactionDynamoRepository) ListByBookingID(ctx context.Context, bookingID string) ([]entities.PaymentTransaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsBookingIDIndex),
		KeyConditionExpression: aws.String("booking_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: bookingID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentTransaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentTransactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentTransactionItem(it))
	}
	return items, nil
}

// UpdateStatusIfNotPaid sets the status only while the stored status is not
// paid. The ConditionExpression makes the whole check-and-set one atomic store
// operation; a ConditionalCheckFailedException means another writer already
// landed paid and is reported as matched=false, not as an error.
func (r *PaymentTransactionDynamoRepository) UpdateStatusIfNotPaid(ctx context.Context, id string, status entities.TransactionStatus) (entities.PaymentTransaction, bool, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status <> :paid"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid":       &types.AttributeValueMemberS{Value: string(entities.TransactionStatusPaid)},
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
			return entities.PaymentTransaction{}, false, nil
		}
		return entities.PaymentTransaction{}, false, err
	}
	if len(out.Attributes) == 0 {
		return entities.PaymentTransaction{}, false, nil
	}

	var it paymentTransactionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentTransaction{}, false, err
	}
	return fromPaymentTransactionItem(it), true, nil
}

func toPaymentTransactionItem(tx entities.PaymentTransaction) paymentTransactionItem {
	return paymentTransactionItem{
		ID:         tx.ID,
		SessionID:  tx.SessionID,
		BookingID:  tx.BookingID,
		Amount:     floatToString(tx.Amount),
		Currency:   tx.Currency,
		PayerEmail: tx.PayerEmail,
		Metadata:   tx.Metadata,
		Status:     string(tx.Status),
		CreatedAt:  tx.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  tx.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentTransactionItem(it paymentTransactionItem) entities.PaymentTransaction {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.PaymentTransaction{
		ID:         it.ID,
		SessionID:  it.SessionID,
		BookingID:  it.BookingID,
		Amount:     amount,
		Currency:   it.Currency,
		PayerEmail: it.PayerEmail,
		Metadata:   it.Metadata,
		Status:     entities.TransactionStatus(it.Status),
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}

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
	defaultBookingsTableName = "bookings"
	bookingsEmailIndex       = "email-index"
)

type bookingItem struct {
	ID              string `dynamodbav:"id"`
	Name            string `dynamodbav:"name"`
	Email           string `dynamodbav:"email"`
	Phone           string `dynamodbav:"phone"`
	SiteID          string `dynamodbav:"site_id"`
	SiteName        string `dynamodbav:"site_name"`
	GroupSize       int    `dynamodbav:"group_size"`
	Date            string `dynamodbav:"date"`
	Time            string `dynamodbav:"time"`
	SpecialRequests string `dynamodbav:"special_requests,omitempty"`
	TotalPrice      string `dynamodbav:"total_price"`
	BookingType     string `dynamodbav:"booking_type"`
	Status          string `dynamodbav:"status"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)
//
// Status is never overwritten blindly: UpdateStatusIfPending carries a
// ConditionExpression so confirmed/cancelled stay absorbing regardless of how
// many writers race on the same booking.

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	it := toBookingItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Booking{}, err
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
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) ListByEmail(ctx context.Context, email string, limit int) ([]entities.Booking, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookingsEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	}
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}
	return unmarshalBookingItems(out.Items)
}

func (r *BookingDynamoRepository) ListAll(ctx context.Context, limit int) ([]entities.Booking, error) {
	in := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}

	out, err := r.ddb.Scan(ctx, in)
	if err != nil {
		return nil, err
	}
	return unmarshalBookingItems(out.Items)
}

// UpdateStatusIfPending moves the booking to status only while the stored
// status is still pending. ConditionalCheckFailedException is reported as
// matched=false: the booking already settled and must not be rewritten.
func (r *BookingDynamoRepository) UpdateStatusIfPending(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, bool, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.BookingStatusPending)},
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
			return entities.Booking{}, false, nil
		}
		return entities.Booking{}, false, err
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, false, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, false, err
	}
	return fromBookingItem(it), true, nil
}

func unmarshalBookingItems(raw []map[string]types.AttributeValue) ([]entities.Booking, error) {
	items := make([]entities.Booking, 0, len(raw))
	for _, m := range raw {
		var it bookingItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBookingItem(it))
	}
	return items, nil
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:              b.ID,
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		SiteID:          b.SiteID,
		SiteName:        b.SiteName,
		GroupSize:       b.GroupSize,
		Date:            b.Date,
		Time:            b.Time,
		SpecialRequests: b.SpecialRequests,
		TotalPrice:      floatToString(b.TotalPrice),
		BookingType:     string(b.BookingType),
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	totalPrice, _ := strconv.ParseFloat(it.TotalPrice, 64)
	return entities.Booking{
		ID:              it.ID,
		Name:            it.Name,
		Email:           it.Email,
		Phone:           it.Phone,
		SiteID:          it.SiteID,
		SiteName:        it.SiteName,
		GroupSize:       it.GroupSize,
		Date:            it.Date,
		Time:            it.Time,
		SpecialRequests: it.SpecialRequests,
		TotalPrice:      totalPrice,
		BookingType:     entities.BookingType(it.BookingType),
		Status:          entities.BookingStatus(it.Status),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

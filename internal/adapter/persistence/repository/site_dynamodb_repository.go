package repository

import (
	"context"
	"strconv"
	"time"

	"madinah_tours/internal/domain/entities"
	"madinah_tours/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSitesTableName = "historical_sites"

type siteItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	NameArabic   string `dynamodbav:"name_arabic"`
	Description  string `dynamodbav:"description"`
	Significance string `dynamodbav:"significance"`
	Duration     string `dynamodbav:"duration"`
	Distance     string `dynamodbav:"distance"`
	Image        string `dynamodbav:"image"`
	Price        string `dynamodbav:"price"`
	Rating       string `dynamodbav:"rating"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// SiteDynamoRepository reads the HistoricalSite catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog is small and read-only here; List is a plain Scan.

type SiteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISiteRepository = (*SiteDynamoRepository)(nil)

func NewSiteDynamoRepository(ddb *dynamodb.Client) *SiteDynamoRepository {
	return &SiteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SITES_TABLE", defaultSitesTableName),
	}
}

func (r *SiteDynamoRepository) List(ctx context.Context) ([]entities.HistoricalSite, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.HistoricalSite, 0, len(out.Items))
	for _, raw := range out.Items {
		var it siteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromSiteItem(it))
	}
	return items, nil
}

func (r *SiteDynamoRepository) GetByID(ctx context.Context, id string) (entities.HistoricalSite, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.HistoricalSite{}, err
	}
	if len(out.Item) == 0 {
		return entities.HistoricalSite{}, nil
	}

	var it siteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.HistoricalSite{}, err
	}
	return fromSiteItem(it), nil
}

func fromSiteItem(it siteItem) entities.HistoricalSite {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	price, _ := strconv.ParseFloat(it.Price, 64)
	rating, _ := strconv.ParseFloat(it.Rating, 64)
	return entities.HistoricalSite{
		ID:           it.ID,
		Name:         it.Name,
		NameArabic:   it.NameArabic,
		Description:  it.Description,
		Significance: it.Significance,
		Duration:     it.Duration,
		Distance:     it.Distance,
		Image:        it.Image,
		Price:        price,
		Rating:       rating,
		CreatedAt:    createdAt,
	}
}

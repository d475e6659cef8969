package dynamodb

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"qdevmovies/review"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ReviewAPI is the subset of the DynamoDB client used by ReviewRepository.
type ReviewAPI interface {
	dynamodb.QueryAPIClient
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// ReviewRepository stores reviews in a table keyed by movie_id (partition)
// and created_at (sort, RFC 3339).
type ReviewRepository struct {
	client ReviewAPI
	table  string
}

type reviewItem struct {
	MovieID   int64   `dynamodbav:"movie_id"`
	CreatedAt string  `dynamodbav:"created_at"`
	ID        string  `dynamodbav:"id"`
	Author    string  `dynamodbav:"author"`
	Rating    float64 `dynamodbav:"rating"`
	Comment   string  `dynamodbav:"comment"`
}

func NewReviewRepository(client ReviewAPI, table string) *ReviewRepository {
	return &ReviewRepository{
		client: client,
		table:  table,
	}
}

// SaveReview writes r, generating an id when r has none.
func (r *ReviewRepository) SaveReview(ctx context.Context, rv review.Review) (review.Review, error) {
	if err := validateTable(r.table); err != nil {
		return review.Review{}, err
	}
	if rv.ID == "" {
		rv.ID = uuid.NewString()
	}
	if rv.CreatedAt.IsZero() {
		rv.CreatedAt = time.Now()
	}
	rv.CreatedAt = rv.CreatedAt.UTC()

	av, err := attributevalue.MarshalMap(reviewItem{
		MovieID:   rv.MovieID,
		CreatedAt: rv.CreatedAt.Format(time.RFC3339Nano),
		ID:        rv.ID,
		Author:    rv.Author,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
	})
	if err != nil {
		return review.Review{}, fmt.Errorf("dynamodb: marshal review: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &r.table,
		Item:      av,
	})
	if err != nil {
		return review.Review{}, fmt.Errorf("dynamodb: put review: %w", err)
	}

	return rv, nil
}

func (r *ReviewRepository) ReviewsByMovie(ctx context.Context, movieID int64) ([]review.Review, error) {
	if err := validateTable(r.table); err != nil {
		return nil, err
	}

	reviews := []review.Review{}
	paginator := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
		TableName:              &r.table,
		KeyConditionExpression: aws.String("movie_id = :movie_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":movie_id": &types.AttributeValueMemberN{Value: strconv.FormatInt(movieID, 10)},
		},
		ScanIndexForward: aws.Bool(false),
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("dynamodb: query reviews: %w", err)
		}

		var items []reviewItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, fmt.Errorf("dynamodb: unmarshal reviews: %w", err)
		}
		for _, item := range items {
			createdAt, err := time.Parse(time.RFC3339Nano, item.CreatedAt)
			if err != nil {
				return nil, fmt.Errorf("dynamodb: review %s: bad created_at: %w", item.ID, err)
			}
			reviews = append(reviews, review.Review{
				ID:        item.ID,
				MovieID:   item.MovieID,
				Author:    item.Author,
				Rating:    item.Rating,
				Comment:   item.Comment,
				CreatedAt: createdAt,
			})
		}
	}

	return reviews, nil
}

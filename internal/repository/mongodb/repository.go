package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/poultryfarm/internal/domain/models"
)

const reportsCollection = "daily_reports"

// Repository defines the interface for report archiving.
type Repository interface {
	SaveDailyReport(ctx context.Context, report models.DailyReport) error
}

// MongoDBRepository archives daily reports in MongoDB, one document per day.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// reportDocument is the stored shape. Decimal amounts are kept as strings so
// no precision is lost.
type reportDocument struct {
	Date            string    `bson:"date"`
	EggsCollected   int64     `bson:"eggs_collected"`
	GradeA          int64     `bson:"grade_a"`
	GradeB          int64     `bson:"grade_b"`
	Mortality       int64     `bson:"mortality"`
	FeedPurchasedKg string    `bson:"feed_purchased_kg"`
	SalesAmount     string    `bson:"sales_amount"`
	Vaccinations    int64     `bson:"vaccinations"`
	ActiveFlocks    int64     `bson:"active_flocks"`
	LiveBirds       int64     `bson:"live_birds"`
	CreatedAt       time.Time `bson:"created_at"`
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: reportsCollection,
	}, nil
}

// Name identifies the repository as a report sink.
func (r *MongoDBRepository) Name() string { return "mongodb" }

// PublishReport archives the report.
func (r *MongoDBRepository) PublishReport(ctx context.Context, report models.DailyReport, _ string) error {
	return r.SaveDailyReport(ctx, report)
}

// SaveDailyReport upserts the report for its date, so reruns replace the
// previous archive entry.
func (r *MongoDBRepository) SaveDailyReport(ctx context.Context, report models.DailyReport) error {
	collection := r.client.Database(r.dbName).Collection(r.collName)
	doc := toDocument(report)

	_, err := collection.ReplaceOne(ctx, bson.M{"date": doc.Date}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert daily report %s: %w", report.Date, err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

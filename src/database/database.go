package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DatabaseName = "SurveyHubDB"

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error
)

// ConnectMongoDB connects to MongoDB once and prepares the indexes the
// service relies on.
func ConnectMongoDB() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("MongoDB ping failed:", connectErr)
			return
		}

		log.Println("MongoDB connected successfully")
		if err := ensureIndexes(context.TODO()); err != nil {
			connectErr = err
			log.Fatal("Failed to ensure indexes:", err)
		}
	})

	return connectErr
}

// Client returns the shared MongoDB client.
func Client() *mongo.Client {
	if client == nil {
		log.Fatal("MongoDB client is nil")
	}
	return client
}

// GetDatabase returns the service database handle.
func GetDatabase() *mongo.Database {
	return Client().Database(DatabaseName)
}

// GetCollection returns a collection from the service database.
func GetCollection(collectionName string) *mongo.Collection {
	return GetDatabase().Collection(collectionName)
}

// ensureIndexes creates the constraints the engine depends on. The unique
// response index is what makes the submission upsert race-safe: no two rows
// can exist for one (respondent, question, publication) triple.
func ensureIndexes(ctx context.Context) error {
	responses := GetCollection("responses")
	_, err := responses.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "publicationId", Value: 1},
			{Key: "respondentId", Value: 1},
			{Key: "questionId", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_response_triple"),
	})
	if err != nil {
		return err
	}

	publications := GetCollection("publications")
	_, err = publications.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "accessCode", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_access_code"),
	})
	if err != nil {
		return err
	}

	respondents := GetCollection("respondents")
	_, err = respondents.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "tenantId", Value: 1},
			{Key: "email", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_respondent_email"),
	})
	return err
}

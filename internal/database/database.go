package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// --- Global handles ---
var (
	Mongo   *mongo.Client
	DB      *mongo.Database
	Redis   *redis.Client
	Elastic *elasticsearch.Client
	MinIO   *minio.Client
)

// Collection names used across the handlers.
const (
	ColUsers         = "users"
	ColSellers       = "sellers"
	ColProducts      = "products"
	ColCarts         = "carts"
	ColWishlists     = "wishlists"
	ColOrders        = "orders"
	ColReturns       = "returns"
	ColNotifications = "notifications"
)

// Collection is a shorthand for DB.Collection.
func Collection(name string) *mongo.Collection {
	return DB.Collection(name)
}

// ConnectDatabases wires MongoDB and Redis (required) plus Elasticsearch and
// MinIO (optional — search and image upload degrade gracefully without them).
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	connectMongo(ctx)
	connectRedis(ctx)
	connectElastic()
	connectMinIO(ctx)

	log.Println("✅ All datastores connected")
}

// =============================================
// MONGODB
// =============================================
func connectMongo(ctx context.Context) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("❌ MongoDB connection error:", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal("❌ MongoDB ping failed:", err)
	}

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "quickcart"
	}

	Mongo = client
	DB = client.Database(dbName)
	log.Println("✅ Connected to MongoDB:", dbName)
}

// CloseMongo disconnects the Mongo client.
func CloseMongo() {
	if Mongo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Mongo.Disconnect(ctx); err != nil {
		log.Println("⚠️ MongoDB disconnect error:", err)
	}
}

// =============================================
// REDIS
// =============================================
func connectRedis(ctx context.Context) {
	Redis = redis.NewClient(&redis.Options{
		Addr:         os.Getenv("REDIS_HOST"),
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Redis connection error:", err)
	}
	log.Println("✅ Connected to Redis")
}

// =============================================
// ELASTICSEARCH (optional)
// =============================================
func connectElastic() {
	url := os.Getenv("ELASTIC_URL")
	if url == "" {
		log.Println("⚠️ ELASTIC_URL not set — product search disabled")
		return
	}

	cfg := elasticsearch.Config{
		Addresses: []string{url},
		Username:  os.Getenv("ELASTIC_USER"),
		Password:  os.Getenv("ELASTIC_PASSWORD"),
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		log.Println("⚠️ Elasticsearch client error:", err)
		return
	}

	res, err := client.Info()
	if err != nil {
		log.Println("⚠️ Elasticsearch unreachable:", err)
		return
	}
	defer res.Body.Close()

	Elastic = client
	log.Println("✅ Connected to Elasticsearch")
}

// =============================================
// MINIO (optional)
// =============================================
func connectMinIO(ctx context.Context) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		log.Println("⚠️ MINIO_ENDPOINT not set — image upload disabled")
		return
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
		Secure: os.Getenv("MINIO_USE_SSL") == "true",
	})
	if err != nil {
		log.Println("⚠️ MinIO connection error:", err)
		return
	}

	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "products"
	}
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		log.Println("⚠️ MinIO bucket check error:", err)
		return
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			log.Println("⚠️ MinIO bucket creation error:", err)
			return
		}
		log.Println("🪣 Bucket created:", bucket)
	}

	MinIO = client
	log.Println("✅ Connected to MinIO:", endpoint)
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	firebase "firebase.google.com/go/v4"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"google.golang.org/api/option"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	// Test MongoDB
	fmt.Println("Testing MongoDB connection...")
	mongoURI := os.Getenv("MONGO_URI")
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatal("MongoDB connection failed:", err)
	}
	defer client.Disconnect(context.Background())

	if err := client.Ping(context.Background(), nil); err != nil {
		log.Fatal("MongoDB ping failed:", err)
	}
	fmt.Println("✅ MongoDB connected successfully!")

	// Test Firebase Storage
	fmt.Println("\nTesting Firebase Storage connection...")
	firebasePath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
	bucketName := os.Getenv("STORAGE_BUCKET")
	if bucketName == "" {
		log.Fatal("STORAGE_BUCKET missing in .env")
	}

	app, err := firebase.NewApp(context.Background(),
		&firebase.Config{StorageBucket: bucketName},
		option.WithCredentialsFile(firebasePath),
	)
	if err != nil {
		log.Fatal("Firebase initialization failed:", err)
	}

	storageClient, err := app.Storage(context.Background())
	if err != nil {
		log.Fatal("Firebase Storage client failed:", err)
	}
	if _, err := storageClient.DefaultBucket(); err != nil {
		log.Fatal("Default bucket lookup failed:", err)
	}
	fmt.Println("✅ Firebase Storage connected successfully!")

	// Test AI gateway credentials
	fmt.Println("\nChecking AI gateway credentials...")
	if os.Getenv("AI_GATEWAY_KEY") == "" {
		log.Fatal("AI_GATEWAY_KEY missing in .env")
	}
	fmt.Println("✅ AI gateway key present!")

	// Test SendGrid credentials
	fmt.Println("\nChecking SendGrid credentials...")
	if os.Getenv("SENDGRID_API_KEY") == "" || os.Getenv("MAIL_FROM_EMAIL") == "" {
		log.Fatal("SendGrid credentials missing in .env")
	}
	fmt.Println("✅ SendGrid credentials present!")

	fmt.Println("\n🎉 All systems ready! You can start the API.")
	fmt.Printf("  Storage Bucket: %s\n", bucketName)
	fmt.Printf("  Upload Folder: item-images\n")
}

package config

import (
	"Go-Pantry-Assistant/internal/utils"
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

type FirebaseClients struct {
	Auth      *firebaseauth.Client
	Firestore *firestore.Client
}

// ConnectFirebase initializes the Admin SDK from the service-account file and
// returns the identity and document store clients built from it.
func ConnectFirebase(ctx context.Context, cfg *utils.Config) (*FirebaseClients, error) {
	app, err := firebase.NewApp(ctx,
		&firebase.Config{ProjectID: cfg.GoogleCloudProject},
		option.WithCredentialsFile(cfg.FirebaseCredentialsPath),
	)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting firebase auth client: %w", err)
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting firestore client: %w", err)
	}

	return &FirebaseClients{Auth: authClient, Firestore: firestoreClient}, nil
}

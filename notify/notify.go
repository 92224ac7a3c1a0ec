package notify

import (
	"context"
	"errors"
	"os"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"google.golang.org/api/option"
)

// Messenger delivers one push notification to one device token. Delivery
// semantics beyond "the provider accepted it or it errored" are opaque here.
type Messenger interface {
	Send(ctx context.Context, token, title, body string, data map[string]string) error
}

type fcmMessenger struct {
	client *messaging.Client
}

func (f *fcmMessenger) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	_, err := f.client.Send(ctx, &messaging.Message{
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data:  data,
		Token: token,
	})
	return err
}

// NewFCM initializes Firebase Cloud Messaging from FIREBASE_CREDENTIALS_JSON,
// the same JSON blob the admin dashboard registers its device tokens against.
func NewFCM(ctx context.Context) (Messenger, error) {
	credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
	if credsJSON == "" {
		return nil, errors.New("FIREBASE_CREDENTIALS_JSON must be set")
	}

	opt := option.WithCredentialsJSON([]byte(credsJSON))
	config := &firebase.Config{ProjectID: os.Getenv("FIREBASE_PROJECT_ID")}

	app, err := firebase.NewApp(ctx, config, opt)
	if err != nil {
		return nil, err
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, err
	}

	return &fcmMessenger{client: client}, nil
}

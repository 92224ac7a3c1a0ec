package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/planet-of-health/pharmacy-api/models"
	"github.com/stretchr/testify/assert"
)

type fakeMessenger struct {
	failing map[string]bool
	sent    []string
}

func (f *fakeMessenger) Send(_ context.Context, token, _, _ string, _ map[string]string) error {
	f.sent = append(f.sent, token)
	if f.failing[token] {
		return errors.New("registration token not registered")
	}
	return nil
}

func TestSendToTokensIsolatesFailures(t *testing.T) {
	m := &fakeMessenger{failing: map[string]bool{"tok-b": true}}
	tokens := []models.FCMToken{
		{AdminID: 1, Token: "tok-a"},
		{AdminID: 2, Token: "tok-b"},
		{AdminID: 3, Token: "tok-c"},
	}

	sent := SendToTokens(context.Background(), m, tokens, "New Order", "Order #1", nil)

	assert.Equal(t, 2, sent)
	assert.Equal(t, []string{"tok-a", "tok-b", "tok-c"}, m.sent)
}

func TestSendToTokensEmpty(t *testing.T) {
	m := &fakeMessenger{}

	sent := SendToTokens(context.Background(), m, nil, "New Order", "", nil)

	assert.Zero(t, sent)
	assert.Empty(t, m.sent)
}

func TestNotifyAdminsNilSafe(t *testing.T) {
	var n *Notifier
	assert.Zero(t, n.NotifyAdmins(context.Background(), "New Order", "", nil))

	n = &Notifier{}
	assert.Zero(t, n.NotifyAdmins(context.Background(), "New Order", "", nil))
}

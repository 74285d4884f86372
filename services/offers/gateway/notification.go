// Package gateway holds the outbound adapters of the offers service:
// the notification dispatcher, the payment collaborator and the NSQ
// event publisher.
package gateway

import (
	"context"

	httpclient "github.com/hailgo/hailcore/internal/pkg/http"
	"github.com/hailgo/hailcore/internal/pkg/models"
)

// NotificationGW sends templated notifications through the dispatcher service
type NotificationGW struct {
	client *httpclient.Client
}

// NewNotificationGW creates the notification gateway
func NewNotificationGW(cfg *models.Config) *NotificationGW {
	return &NotificationGW{
		client: httpclient.NewClient(cfg.Notification.ServiceURL, 0),
	}
}

type sendResult struct {
	Success bool `json:"success"`
}

// Send dispatches one notification request. The dispatcher answers with a
// success flag rather than an error body.
func (g *NotificationGW) Send(ctx context.Context, req *models.SendNotificationRequest) (bool, error) {
	var result sendResult
	if err := g.client.PostJSON(ctx, "/notifications/send", req, &result); err != nil {
		return false, err
	}
	return result.Success, nil
}

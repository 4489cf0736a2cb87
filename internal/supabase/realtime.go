package supabase

import (
	"github.com/supabase-community/supabase-go"

	"civic-report-backend/internal/models"
)

type RealtimeClient struct {
	client *supabase.Client
}

func NewRealtimeClient(client *supabase.Client) *RealtimeClient {
	return &RealtimeClient{
		client: client,
	}
}

// PublishEvent is a seam for explicit Realtime broadcasts. Inserts into the
// issues table already reach subscribed dashboards through Supabase's
// postgres_changes stream, so nothing extra is sent today.
func (r *RealtimeClient) PublishEvent(channel string, event string, payload map[string]interface{}) error {
	return nil
}

func (r *RealtimeClient) PublishIssueCreated(payload map[string]interface{}) error {
	return r.PublishEvent("issues", "issue_created", payload)
}

func IssueCreatedPayload(id int64, ticketID, category string) map[string]interface{} {
	return map[string]interface{}{
		"id":        id,
		"ticket_id": ticketID,
		"category":  category,
		"status":    models.StatusPending,
	}
}

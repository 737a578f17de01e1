package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eventhub/account-service/internal/core/domain"
	"github.com/eventhub/account-service/internal/core/ports"
)

const authEventsCollection = "auth_events"

// AuthEventRepository implements ports.AuditLog using MongoDB.
type AuthEventRepository struct {
	col *mongo.Collection
}

// NewAuthEventRepository creates a new AuthEventRepository.
func NewAuthEventRepository(db *mongo.Database) *AuthEventRepository {
	return &AuthEventRepository{col: db.Collection(authEventsCollection)}
}

var _ ports.AuditLog = (*AuthEventRepository)(nil)

type authEventDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Type        string             `bson:"event_type"`
	IdentityKey string             `bson:"identity_key,omitempty"`
	Variant     string             `bson:"variant,omitempty"`
	Email       string             `bson:"email,omitempty"`
	Success     bool               `bson:"success"`
	IP          string             `bson:"ip,omitempty"`
	UserAgent   string             `bson:"user_agent,omitempty"`
	RequestID   string             `bson:"request_id,omitempty"`
	Timestamp   time.Time          `bson:"timestamp"`
}

func toAuthEventDoc(e domain.AuthEvent) authEventDoc {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return authEventDoc{
		Type:        e.Type,
		IdentityKey: e.IdentityKey,
		Variant:     string(e.Variant),
		Email:       e.Email,
		Success:     e.Success,
		IP:          e.IP,
		UserAgent:   e.UserAgent,
		RequestID:   e.RequestID,
		Timestamp:   ts.UTC(),
	}
}

func (d authEventDoc) toDomain() domain.AuthEvent {
	return domain.AuthEvent{
		ID:          d.ID.Hex(),
		Type:        d.Type,
		IdentityKey: d.IdentityKey,
		Variant:     domain.Variant(d.Variant),
		Email:       d.Email,
		Success:     d.Success,
		IP:          d.IP,
		UserAgent:   d.UserAgent,
		RequestID:   d.RequestID,
		Timestamp:   d.Timestamp.UTC(),
	}
}

// EnsureIndexes creates the indexes used by the admin listing.
func (r *AuthEventRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "identity_key", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "event_type", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// Log persists one authentication event.
func (r *AuthEventRepository) Log(ctx context.Context, event domain.AuthEvent) error {
	if _, err := r.col.InsertOne(ctx, toAuthEventDoc(event)); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}

// Recent returns up to limit events, newest first.
func (r *AuthEventRepository) Recent(ctx context.Context, limit int) ([]domain.AuthEvent, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find auth events: %w", err)
	}
	defer cur.Close(ctx)

	var docs []authEventDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode auth events: %w", err)
	}

	events := make([]domain.AuthEvent, 0, len(docs))
	for _, d := range docs {
		events = append(events, d.toDomain())
	}
	return events, nil
}

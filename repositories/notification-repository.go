package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/charly15/back-task/logging"
	"github.com/charly15/back-task/models"

	"github.com/gocql/gocql"
	"github.com/sony/gobreaker"
)

type NotificationRepository struct {
	session *gocql.Session
	breaker *gobreaker.CircuitBreaker
}

// NewNotificationRepository creates the keyspace and table when missing and returns a
// repository bound to the keyspace.
func NewNotificationRepository(hosts []string, keyspace string, breaker *gobreaker.CircuitBreaker) (*NotificationRepository, error) {
	cluster := gocql.NewCluster(hosts...)
	cluster.Keyspace = "system"
	cluster.Timeout = 5 * time.Second
	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to cassandra: %w", err)
	}

	err = session.Query(fmt.Sprintf(
		`CREATE KEYSPACE IF NOT EXISTS %s
		 WITH replication = {
			'class': 'SimpleStrategy',
			'replication_factor': 1
		 }`, keyspace)).Exec()
	session.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to create keyspace %s: %w", keyspace, err)
	}

	cluster.Keyspace = keyspace
	cluster.Consistency = gocql.One
	session, err = cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to keyspace %s: %w", keyspace, err)
	}

	repo := &NotificationRepository{session: session, breaker: breaker}
	if err := repo.createTable(); err != nil {
		session.Close()
		return nil, err
	}

	logging.Logger.Infof("Event ID: CASSANDRA_CONNECTED, Description: Connected to Cassandra keyspace %s", keyspace)
	return repo, nil
}

func (r *NotificationRepository) createTable() error {
	err := r.session.Query(
		`CREATE TABLE IF NOT EXISTS notifications (
			user_id TEXT,
			created_at TIMESTAMP,
			id UUID,
			group_id TEXT,
			task_id TEXT,
			message TEXT,
			is_read BOOLEAN,
			PRIMARY KEY ((user_id), created_at, id)
		) WITH CLUSTERING ORDER BY (created_at DESC, id ASC)`).Exec()
	if err != nil {
		return fmt.Errorf("failed to create notifications table: %w", err)
	}
	return nil
}

func (r *NotificationRepository) Close() {
	r.session.Close()
	logging.Logger.Info("Event ID: CASSANDRA_SESSION_CLOSED, Description: Cassandra session closed")
}

func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	id := gocql.TimeUUID()
	if n.ID != "" {
		parsed, err := gocql.ParseUUID(n.ID)
		if err != nil {
			return models.NewValidationError("invalid notification id %q", n.ID)
		}
		id = parsed
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	err := guard(r.breaker, func() error {
		return r.session.Query(
			`INSERT INTO notifications (user_id, created_at, id, group_id, task_id, message, is_read)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			n.UserID, n.CreatedAt, id, n.GroupID, n.TaskID, n.Message, n.IsRead,
		).WithContext(ctx).Exec()
	})
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	n.ID = id.String()
	return nil
}

// FindByUser returns the user's notifications, newest first.
func (r *NotificationRepository) FindByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	notifications := []models.Notification{}
	err := guard(r.breaker, func() error {
		iter := r.session.Query(
			`SELECT id, user_id, group_id, task_id, message, created_at, is_read
			 FROM notifications WHERE user_id = ?`, userID,
		).WithContext(ctx).Iter()

		var (
			id gocql.UUID
			n  models.Notification
		)
		for iter.Scan(&id, &n.UserID, &n.GroupID, &n.TaskID, &n.Message, &n.CreatedAt, &n.IsRead) {
			n.ID = id.String()
			notifications = append(notifications, n)
		}
		return iter.Close()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	return notifications, nil
}

// MarkAsRead flips is_read on an existing row; the IF EXISTS keeps it from creating one.
func (r *NotificationRepository) MarkAsRead(ctx context.Context, userID, notificationID string, createdAt time.Time) error {
	id, err := gocql.ParseUUID(notificationID)
	if err != nil {
		return models.NewValidationError("invalid notification id %q", notificationID)
	}

	return guard(r.breaker, func() error {
		applied, err := r.session.Query(
			`UPDATE notifications SET is_read = true
			 WHERE user_id = ? AND created_at = ? AND id = ? IF EXISTS`,
			userID, createdAt, id,
		).WithContext(ctx).ScanCAS()
		if err != nil {
			return fmt.Errorf("failed to mark notification as read: %w", err)
		}
		if !applied {
			return models.ErrNotificationNotFound
		}
		return nil
	})
}

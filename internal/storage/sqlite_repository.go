package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) CreateConversation(ctx context.Context, in Conversation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO conversations (id, title, icon, created_at, last_updated)
		VALUES (?, ?, ?, ?, ?)`,
		in.ID, in.Title, in.Icon, mustTime(in.CreatedAt), mustTime(in.LastUpdated),
	)
	return err
}

func (r *SQLiteRepository) GetConversation(ctx context.Context, id string) (Conversation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, icon, created_at, last_updated
		FROM conversations WHERE id = ?`, id)
	conv, err := scanConversation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Conversation{}, ErrNotFound
		}
		return Conversation{}, err
	}
	return conv, nil
}

func (r *SQLiteRepository) UpdateConversation(ctx context.Context, in Conversation) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE conversations
		SET title = ?, icon = ?, last_updated = ?
		WHERE id = ?`,
		in.Title, in.Icon, mustTime(in.LastUpdated), in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) DeleteConversation(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM conversations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListConversations(ctx context.Context, filter ConversationListFilter) ([]Conversation, error) {
	args := make([]any, 0, 2)
	query := `SELECT id, title, icon, created_at, last_updated FROM conversations ORDER BY last_updated DESC` +
		applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Conversation, 0)
	for rows.Next() {
		conv, scanErr := scanConversation(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, conv)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) CreateMessage(ctx context.Context, in Message) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO messages (id, conversation_id, role, content, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		in.ID, in.ConversationID, in.Role, in.Content, mustTime(in.CreatedAt),
	)
	return err
}

func (r *SQLiteRepository) GetMessage(ctx context.Context, id string) (Message, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, conversation_id, role, content, created_at
		FROM messages WHERE id = ?`, id)
	msg, err := scanMessage(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Message{}, ErrNotFound
		}
		return Message{}, err
	}
	return msg, nil
}

func (r *SQLiteRepository) DeleteMessage(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

// DeleteMessagesFrom removes the given message and everything after it in
// the conversation. This is the edit-and-regenerate truncation: the caller
// rewrites history from the edited turn onward.
func (r *SQLiteRepository) DeleteMessagesFrom(ctx context.Context, conversationID, messageID string) error {
	anchor, err := r.GetMessage(ctx, messageID)
	if err != nil {
		return err
	}
	if anchor.ConversationID != conversationID {
		return ErrNotFound
	}
	_, err = r.db.ExecContext(ctx, `
		DELETE FROM messages
		WHERE conversation_id = ? AND created_at >= ?`,
		conversationID, mustTime(anchor.CreatedAt),
	)
	return err
}

func (r *SQLiteRepository) ListMessages(ctx context.Context, filter MessageListFilter) ([]Message, error) {
	query := `SELECT id, conversation_id, role, content, created_at FROM messages`
	args := make([]any, 0, 3)
	if filter.ConversationID != "" {
		query += ` WHERE conversation_id = ?`
		args = append(args, filter.ConversationID)
	}
	query += ` ORDER BY created_at ASC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Message, 0)
	for rows.Next() {
		msg, scanErr := scanMessage(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, msg)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) CreateEvent(ctx context.Context, in Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO events (id, conversation_id, message_id, title, event_date, event_time, location, description, alert_at, last_alerted_at, enabled, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.ConversationID, in.MessageID, in.Title, in.Date, in.Time, in.Location, in.Description,
		nullTime(in.AlertAt), nullTime(in.LastAlerted), boolInt(in.Enabled), mustTime(in.CreatedAt),
	)
	return err
}

func (r *SQLiteRepository) GetEvent(ctx context.Context, id string) (Event, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, conversation_id, message_id, title, event_date, event_time, location, description, alert_at, last_alerted_at, enabled, created_at
		FROM events WHERE id = ?`, id)
	item, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Event{}, ErrNotFound
		}
		return Event{}, err
	}
	return item, nil
}

func (r *SQLiteRepository) UpdateEvent(ctx context.Context, in Event) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE events
		SET title = ?, event_date = ?, event_time = ?, location = ?, description = ?, alert_at = ?, last_alerted_at = ?, enabled = ?
		WHERE id = ?`,
		in.Title, in.Date, in.Time, in.Location, in.Description,
		nullTime(in.AlertAt), nullTime(in.LastAlerted), boolInt(in.Enabled), in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) DeleteEvent(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListEvents(ctx context.Context, filter EventListFilter) ([]Event, error) {
	query := `SELECT id, conversation_id, message_id, title, event_date, event_time, location, description, alert_at, last_alerted_at, enabled, created_at FROM events`
	clauses := make([]string, 0, 2)
	args := make([]any, 0, 4)
	if filter.ConversationID != "" {
		clauses = append(clauses, "conversation_id = ?")
		args = append(args, filter.ConversationID)
	}
	if filter.Enabled != nil {
		clauses = append(clauses, "enabled = ?")
		args = append(args, boolInt(*filter.Enabled))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY alert_at ASC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Event, 0)
	for rows.Next() {
		item, scanErr := scanEvent(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func nullTime(v *time.Time) any {
	if v == nil {
		return nil
	}
	return v.UTC().Format(sqliteTimeLayout)
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseNullableTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	tm, err := time.Parse(sqliteTimeLayout, v.String)
	if err != nil {
		return nil, err
	}
	return &tm, nil
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	}
	if offset > 0 {
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

type scanner interface {
	Scan(dest ...any) error
}

func scanConversation(s scanner) (Conversation, error) {
	var out Conversation
	var created string
	var updated string
	if err := s.Scan(&out.ID, &out.Title, &out.Icon, &created, &updated); err != nil {
		return Conversation{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return Conversation{}, err
	}
	lastUpdated, err := parseRequiredTime(updated)
	if err != nil {
		return Conversation{}, err
	}
	out.CreatedAt = createdAt
	out.LastUpdated = lastUpdated
	return out, nil
}

func scanMessage(s scanner) (Message, error) {
	var out Message
	var created string
	if err := s.Scan(&out.ID, &out.ConversationID, &out.Role, &out.Content, &created); err != nil {
		return Message{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return Message{}, err
	}
	out.CreatedAt = createdAt
	return out, nil
}

func scanEvent(s scanner) (Event, error) {
	var out Event
	var alert sql.NullString
	var alerted sql.NullString
	var enabled int
	var created string
	if err := s.Scan(&out.ID, &out.ConversationID, &out.MessageID, &out.Title, &out.Date, &out.Time,
		&out.Location, &out.Description, &alert, &alerted, &enabled, &created); err != nil {
		return Event{}, err
	}
	alertAt, err := parseNullableTime(alert)
	if err != nil {
		return Event{}, err
	}
	lastAlerted, err := parseNullableTime(alerted)
	if err != nil {
		return Event{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return Event{}, err
	}
	out.AlertAt = alertAt
	out.LastAlerted = lastAlerted
	out.Enabled = enabled == 1
	out.CreatedAt = createdAt
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	duckdb "github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"

	"citeprep/internal/record"
	"citeprep/internal/transform"
)

// RunInput describes one transform run to record.
type RunInput struct {
	RunKey      string
	InputPath   string
	Rows        []record.InputRecord
	Records     []record.OutputRecord
	CollectedAt time.Time
}

// StoreResult reports what a Store call wrote.
type StoreResult struct {
	RunID      string
	Questions  int
	Statements int
}

// Store records a run, its source rows, and every extracted statement.
func Store(ctx context.Context, db *sql.DB, input RunInput) (StoreResult, error) {
	if ctx == nil {
		return StoreResult{}, errors.New("duckdb: context is nil")
	}
	if db == nil {
		return StoreResult{}, errors.New("duckdb: db is nil")
	}
	runID, err := RecordRun(ctx, db, input)
	if err != nil {
		return StoreResult{}, err
	}
	questionIDs := make(map[string]string, len(input.Rows))
	for idx, row := range input.Rows {
		id, _, err := UpsertQuestion(ctx, db, row)
		if err != nil {
			return StoreResult{}, fmt.Errorf("row %d: %w", idx+1, err)
		}
		questionIDs[transform.ContextID(idx)] = id
	}
	if err := StoreStatements(ctx, db, runID, input.Records, questionIDs); err != nil {
		return StoreResult{}, err
	}
	return StoreResult{RunID: runID, Questions: len(questionIDs), Statements: len(input.Records)}, nil
}

// RecordRun inserts a runs row and returns its id.
func RecordRun(ctx context.Context, db *sql.DB, input RunInput) (string, error) {
	if input.RunKey == "" {
		return "", errors.New("duckdb: run key is required")
	}
	collectedAt := input.CollectedAt
	if collectedAt.IsZero() {
		collectedAt = time.Now().UTC()
	}
	id := uuid.NewString()
	if _, err := db.ExecContext(
		ctx,
		`INSERT INTO runs (run_id, run_key, input_path, rows_read, statements, collected_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id,
		input.RunKey,
		input.InputPath,
		len(input.Rows),
		len(input.Records),
		collectedAt,
	); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// UpsertQuestion inserts a source row once per fingerprint and returns its
// id and key.
func UpsertQuestion(ctx context.Context, db *sql.DB, row record.InputRecord) (string, string, error) {
	key, err := QuestionKey(row)
	if err != nil {
		return "", "", err
	}
	if _, err := db.ExecContext(
		ctx,
		`INSERT INTO questions (question_id, question_key, question, response, citation_snippets, documents, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, now())
		 ON CONFLICT (question_key) DO NOTHING`,
		uuid.NewString(),
		key,
		row.Question,
		row.Response,
		row.CitationSnippets,
		row.Documents,
	); err != nil {
		return "", "", fmt.Errorf("upsert question: %w", err)
	}
	id, err := lookupID(ctx, db, "questions", "question_id", "question_key", key)
	if err != nil {
		return "", "", fmt.Errorf("lookup question id: %w", err)
	}
	return id, key, nil
}

// StoreStatements bulk-appends statements for a run. questionIDs maps a
// context id to the stored question id.
func StoreStatements(ctx context.Context, db *sql.DB, runID string, records []record.OutputRecord, questionIDs map[string]string) error {
	if len(records) == 0 {
		return nil
	}
	runUUID, err := parseDuckDBUUID(runID)
	if err != nil {
		return fmt.Errorf("parse run id: %w", err)
	}
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer func() { _ = conn.Close() }()

	appender, err := newAppender(conn, "statements")
	if err != nil {
		return fmt.Errorf("create statements appender: %w", err)
	}
	for _, rec := range records {
		questionID, ok := questionIDs[rec.ContextID]
		if !ok {
			_ = appender.Close()
			return fmt.Errorf("no question stored for context %s", rec.ContextID)
		}
		questionUUID, err := parseDuckDBUUID(questionID)
		if err != nil {
			_ = appender.Close()
			return fmt.Errorf("parse question id: %w", err)
		}
		citations, err := json.Marshal(nonNil(rec.Citations))
		if err != nil {
			_ = appender.Close()
			return fmt.Errorf("encode citations: %w", err)
		}
		snippets, err := json.Marshal(nonNil(rec.Snippets))
		if err != nil {
			_ = appender.Close()
			return fmt.Errorf("encode snippets: %w", err)
		}
		if err := appender.AppendRow(
			duckdb.UUID(uuid.New()),
			runUUID,
			questionUUID,
			rec.ContextID,
			int32(rec.StatementIndex),
			rec.Statement,
			string(citations),
			string(snippets),
		); err != nil {
			_ = appender.Close()
			return fmt.Errorf("append statement %s/%d: %w", rec.ContextID, rec.StatementIndex, err)
		}
	}
	if err := appender.Close(); err != nil {
		return fmt.Errorf("flush statements: %w", err)
	}
	return nil
}

// newAppender creates a DuckDB appender on a dedicated connection.
func newAppender(conn *sql.Conn, table string) (*duckdb.Appender, error) {
	var appender *duckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		rawConn, ok := driverConn.(driver.Conn)
		if !ok {
			return fmt.Errorf("duckdb driver connection unavailable (got %T)", driverConn)
		}
		var err error
		appender, err = duckdb.NewAppenderFromConn(rawConn, "", table)
		return err
	}); err != nil {
		return nil, err
	}
	if appender == nil {
		return nil, errors.New("duckdb appender initialization failed")
	}
	return appender, nil
}

// parseDuckDBUUID converts a UUID string into the duckdb-go UUID wrapper.
func parseDuckDBUUID(value string) (duckdb.UUID, error) {
	parsed, err := uuid.Parse(value)
	if err != nil {
		return duckdb.UUID{}, err
	}
	return duckdb.UUID(parsed), nil
}

// lookupID fetches a single ID column value for a row keyed by keyColumn.
func lookupID(ctx context.Context, db *sql.DB, table, idColumn, keyColumn, key string) (string, error) {
	query := fmt.Sprintf("SELECT CAST(%s AS VARCHAR) FROM %s WHERE %s = ?", idColumn, table, keyColumn)
	var id string
	if err := db.QueryRowContext(ctx, query, key).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

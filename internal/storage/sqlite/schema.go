// ABOUTME: SQLite database schema for the embedding store
// ABOUTME: Creates the embeddings table, secondary indexes, and the store_meta stamp
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- Embedding records (append-only; message_id is deliberately not unique)
CREATE TABLE IF NOT EXISTS embeddings (
    id TEXT PRIMARY KEY,
    message_id TEXT NOT NULL,
    source_text TEXT NOT NULL,
    vector BLOB NOT NULL,
    subject TEXT,
    sender TEXT,
    timestamp DATETIME,
    thread_id TEXT,
    category TEXT,
    priority TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Store-level metadata: dimension and encoder stamps
CREATE TABLE IF NOT EXISTS store_meta (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

-- Secondary indexes for filtered scans
CREATE INDEX IF NOT EXISTS idx_embeddings_message ON embeddings(message_id);
CREATE INDEX IF NOT EXISTS idx_embeddings_timestamp ON embeddings(timestamp);
CREATE INDEX IF NOT EXISTS idx_embeddings_sender ON embeddings(sender);
CREATE INDEX IF NOT EXISTS idx_embeddings_category ON embeddings(category);
`

// Keys in the store_meta table
const (
	MetaKeyDimension = "dimension"
	MetaKeyEncoder   = "encoder"
)

// SchemaVersion is the current schema version for migrations
const SchemaVersion = 1

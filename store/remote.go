package store

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// remoteTables maps collections to their hosted table.
var remoteTables = map[Key]string{
	KeySettings:   "settings",
	KeyMenu:       "menu_items",
	KeyCategories: "categories",
	KeyAdmins:     "admins",
}

// Remote mirrors collections into a MySQL-compatible database, one row per
// record, so the hosted tables stay queryable.
type Remote struct {
	db *sql.DB
}

// RemoteDSN builds the driver DSN from the configured endpoint and access
// key. The key, when set, replaces any password in the endpoint.
func RemoteDSN(endpoint, accessKey string) (string, error) {
	cfg, err := mysql.ParseDSN(endpoint)
	if err != nil {
		return "", fmt.Errorf("parse remote dsn: %w", err)
	}
	if accessKey != "" {
		cfg.Passwd = accessKey
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

// OpenRemote connects to the hosted database and creates the collection
// tables when missing. caPath is only used for DSNs requesting tls=tidb.
func OpenRemote(ctx context.Context, endpoint, accessKey, caPath string) (*Remote, error) {
	if strings.Contains(endpoint, "tls=tidb") {
		registerTiDBTLS(caPath)
	}
	dsn, err := RemoteDSN(endpoint, accessKey)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open remote: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping remote: %w", err)
	}
	r := &Remote{db: db}
	if err := r.ensureTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func registerTiDBTLS(caPath string) {
	if caPath == "" {
		caPath = "/etc/ssl/certs/ca-certificates.crt"
	}
	pool := x509.NewCertPool()
	b, err := os.ReadFile(caPath)
	if err != nil || !pool.AppendCertsFromPEM(b) {
		log.Printf("⚠️ could not load CA file %s, using system roots", caPath)
		mysql.RegisterTLSConfig("tidb", &tls.Config{MinVersion: tls.VersionTLS12})
		return
	}
	mysql.RegisterTLSConfig("tidb", &tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12})
}

func (r *Remote) ensureTables(ctx context.Context) error {
	for _, table := range remoteTables {
		_, err := r.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+table+` (
			id VARCHAR(191) PRIMARY KEY,
			sort_order INT NOT NULL DEFAULT 0,
			data JSON NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`)
		if err != nil {
			return fmt.Errorf("ensure table %s: %w", table, err)
		}
	}
	return nil
}

func (r *Remote) Close() error { return r.db.Close() }

func (r *Remote) Read(ctx context.Context, key Key) ([]byte, error) {
	table, ok := remoteTables[key]
	if !ok {
		return nil, fmt.Errorf("unknown key %s", key)
	}
	rows, err := r.db.QueryContext(ctx, `SELECT id, sort_order, data FROM `+table+` ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	defer rows.Close()

	var out []record
	for rows.Next() {
		var rec record
		if err := rows.Scan(&rec.ID, &rec.Order, &rec.Data); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return joinRecords(key, out), nil
}

// Write upserts every record of the snapshot and drops rows the snapshot no
// longer contains, in one transaction.
func (r *Remote) Write(ctx context.Context, key Key, payload []byte) error {
	table, ok := remoteTables[key]
	if !ok {
		return fmt.Errorf("unknown key %s", key)
	}
	recs, err := splitRecords(key, payload)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin %s: %w", table, err)
	}
	defer tx.Rollback()

	upsert := `INSERT INTO ` + table + ` (id, sort_order, data) VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE sort_order = VALUES(sort_order), data = VALUES(data)`
	for _, rec := range recs {
		if _, err := tx.ExecContext(ctx, upsert, rec.ID, rec.Order, string(rec.Data)); err != nil {
			return fmt.Errorf("upsert %s %s: %w", table, rec.ID, err)
		}
	}

	query, args := pruneQuery(table, recs)
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("prune %s: %w", table, err)
	}
	return tx.Commit()
}

// pruneQuery deletes every row whose id is not part of recs.
func pruneQuery(table string, recs []record) (string, []any) {
	if len(recs) == 0 {
		return `DELETE FROM ` + table, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(recs)), ",")
	args := make([]any, len(recs))
	for i, rec := range recs {
		args[i] = rec.ID
	}
	return `DELETE FROM ` + table + ` WHERE id NOT IN (` + placeholders + `)`, args
}

// Package postgres installs Base58 SQL functions that match the Go codec.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/paraglidehq/bs58/base58"
)

// Config holds the alphabet the SQL functions are generated for.
type Config struct {
	Alphabet string
}

// DefaultConfig returns the default configuration (the Bitcoin alphabet).
// Use this unless you've changed bs58.DefaultAlphabet.
func DefaultConfig() Config {
	return Config{
		Alphabet: base58.Bitcoin.String(),
	}
}

var ErrConfigMismatch = errors.New("bs58: database config does not match application config")

// Migrate runs the idempotent bs58 migration with the given configuration.
// If the database already has a different configuration, returns ErrConfigMismatch.
func Migrate(ctx context.Context, db *sql.DB, cfg Config) error {
	if _, err := base58.NewAlphabet(cfg.Alphabet); err != nil {
		return fmt.Errorf("bs58: %w", err)
	}

	// Create config table
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS _bs58_config (
			id int PRIMARY KEY DEFAULT 1 CHECK (id = 1),
			alphabet text NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("bs58: create config table: %w", err)
	}

	// Check existing config
	var alphabet string
	err = db.QueryRowContext(ctx, `SELECT alphabet FROM _bs58_config`).Scan(&alphabet)
	if err == nil {
		if alphabet != cfg.Alphabet {
			return fmt.Errorf("%w: db has alphabet=%q, app has alphabet=%q",
				ErrConfigMismatch, alphabet, cfg.Alphabet)
		}
	} else if errors.Is(err, sql.ErrNoRows) {
		_, err = db.ExecContext(ctx, `INSERT INTO _bs58_config (alphabet) VALUES ($1)`, cfg.Alphabet)
		if err != nil {
			return fmt.Errorf("bs58: insert config: %w", err)
		}
	} else {
		return fmt.Errorf("bs58: read config: %w", err)
	}

	_, err = db.ExecContext(ctx, generateSQL(cfg))
	if err != nil {
		return fmt.Errorf("bs58: run migrations: %w", err)
	}

	return nil
}

// GetConfig reads the bs58 configuration from the database.
func GetConfig(ctx context.Context, db *sql.DB) (Config, error) {
	var cfg Config
	err := db.QueryRowContext(ctx, `SELECT alphabet FROM _bs58_config`).Scan(&cfg.Alphabet)
	return cfg, err
}

// quote returns s as a SQL string literal.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func generateSQL(cfg Config) string {
	alphabet := quote(cfg.Alphabet)

	return fmt.Sprintf(`
-- Encode bytes; each leading zero byte becomes one zero-symbol
CREATE OR REPLACE FUNCTION b58_encode(data bytea)
  RETURNS text
  LANGUAGE plpgsql
  IMMUTABLE PARALLEL SAFE STRICT LEAKPROOF
  AS $$
DECLARE
  alphabet text := %s;
  n numeric := 0;
  result text := '';
  zeros int := 0;
BEGIN
  FOR i IN 0..length(data) - 1 LOOP
    n := n * 256 + get_byte(data, i);
  END LOOP;
  WHILE n > 0 LOOP
    result := substr(alphabet, mod(n, 58)::int + 1, 1) || result;
    n := div(n, 58);
  END LOOP;
  WHILE zeros < length(data) AND get_byte(data, zeros) = 0 LOOP
    zeros := zeros + 1;
  END LOOP;
  RETURN repeat(substr(alphabet, 1, 1), zeros) || result;
END;
$$;

-- Decode text; each leading zero-symbol becomes one zero byte
CREATE OR REPLACE FUNCTION b58_decode(encoded text)
  RETURNS bytea
  LANGUAGE plpgsql
  IMMUTABLE PARALLEL SAFE STRICT
  AS $$
DECLARE
  alphabet text := %s;
  n numeric := 0;
  p int;
  zeros int := 0;
  result bytea := ''::bytea;
BEGIN
  WHILE zeros < length(encoded) AND substr(encoded, zeros + 1, 1) = substr(alphabet, 1, 1) LOOP
    zeros := zeros + 1;
  END LOOP;
  FOR i IN 1..length(encoded) LOOP
    p := strpos(alphabet, substr(encoded, i, 1));
    IF p = 0 THEN
      RAISE EXCEPTION 'invalid base58 character %% at position %%', substr(encoded, i, 1), i - 1;
    END IF;
    n := n * 58 + (p - 1);
  END LOOP;
  WHILE n > 0 LOOP
    result := set_byte('\x00'::bytea, 0, mod(n, 256)::int) || result;
    n := div(n, 256);
  END LOOP;
  RETURN decode(repeat('00', zeros), 'hex') || result;
END;
$$;
`,
		alphabet, // alphabet in b58_encode
		alphabet, // alphabet in b58_decode
	)
}

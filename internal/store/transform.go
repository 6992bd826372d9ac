package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt hashes start with "$2"; a password carrying that marker is stored
// as-is instead of being hashed a second time.
const hashedPrefix = "$2"

// defaultPassword is hashed and stored when a brand-new user arrives without
// a password. The client validates this away, but the store must not end up
// with an empty credential.
const defaultPassword = "password"

// scheduleReplace instructs the syncer to replace a contract's payment
// schedule wholesale inside the same transaction as the contract upsert.
type scheduleReplace struct {
	ContractID string
	Rows       []map[string]interface{}
}

// transform applies per-kind adjustments to a sanitized record before its
// upsert and emits child-collection replacement instructions. exists tells
// whether the id is already persisted (update vs create).
func (s *Syncer) transform(kind Kind, id string, rec, rels map[string]interface{}, exists bool) ([]scheduleReplace, error) {
	switch kind {
	case KindUser:
		return nil, s.transformUser(rec, exists)
	case KindContract:
		return transformContract(id, rels)
	default:
		return nil, nil
	}
}

// transformUser enforces the credential invariants: stored passwords are
// always hashed, an update without a password keeps the existing one, a
// create without a password gets the hashed default.
func (s *Syncer) transformUser(rec map[string]interface{}, exists bool) error {
	pw, _ := rec["password"].(string)
	if pw != "" {
		if strings.HasPrefix(pw, hashedPrefix) {
			return nil
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(pw), s.bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		rec["password"] = string(hash)
		return nil
	}

	if exists {
		delete(rec, "password")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash default password: %w", err)
	}
	rec["password"] = string(hash)
	return nil
}

// transformContract turns an extracted paymentSchedule array into a replace
// instruction. An empty array still replaces (clearing the old rows); a
// missing or non-array value leaves the stored schedule untouched.
func transformContract(id string, rels map[string]interface{}) ([]scheduleReplace, error) {
	raw, ok := rels["paymentSchedule"].([]interface{})
	if !ok {
		return nil, nil
	}

	rows := make([]map[string]interface{}, 0, len(raw))
	for _, entry := range raw {
		p, ok := entry.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("contract %s: malformed payment schedule entry", id)
		}
		rows = append(rows, map[string]interface{}{
			"id":         uuid.NewString(),
			"contractId": id,
			"dueDate":    stringify(p["dueDate"]),
			"amount":     stringify(p["amount"]),
		})
	}

	return []scheduleReplace{{ContractID: id, Rows: rows}}, nil
}

// stringify coerces a JSON value to its canonical text representation
// (legacy clients send amounts as either numbers or strings).
func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

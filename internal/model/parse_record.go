package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	ddl "github.com/dangerclosesec/schemagen/ddl/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParseRecord is one entry of the parse history
type ParseRecord struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	Name          string     `json:"name"`
	SourceHash    string     `json:"source_hash" gorm:"index"`
	Success       bool       `json:"success"`
	RelationCount int        `json:"relation_count"`
	ErrorState    string     `json:"error_state,omitempty"`
	ErrorToken    string     `json:"error_token,omitempty"`
	ErrorLine     int        `json:"error_line,omitempty"`
	ErrorColumn   int        `json:"error_column,omitempty"`
	Schema        SchemaJSON `json:"schema,omitempty" gorm:"type:jsonb"`
	CreatedAt     time.Time  `json:"created_at" gorm:"default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for ParseRecord
func (ParseRecord) TableName() string {
	return "parse_records"
}

// BeforeCreate assigns an ID to new records
func (r *ParseRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// SchemaJSON stores a parsed schema as JSONB
type SchemaJSON struct {
	*ddl.Schema
}

// Value implements the driver.Valuer interface for SchemaJSON
func (s SchemaJSON) Value() (driver.Value, error) {
	if s.Schema == nil {
		return nil, nil
	}
	return json.Marshal(s.Schema)
}

// Scan implements the sql.Scanner interface for SchemaJSON
func (s *SchemaJSON) Scan(value interface{}) error {
	if value == nil {
		s.Schema = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSONB")
	}

	schema := ddl.NewSchema()
	if err := json.Unmarshal(bytes, schema); err != nil {
		return err
	}
	s.Schema = schema
	return nil
}

// MarshalJSON encodes the wrapped schema, or null
func (s SchemaJSON) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Schema)
}

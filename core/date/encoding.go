package date

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// MarshalJSON encodes the date as its 14-digit string. The zero Date is
// encoded as null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.ts == "" {
		return []byte("null"), nil
	}
	return json.Marshal(d.ts)
}

// UnmarshalJSON accepts a 14-digit string or a number. Numbers follow the
// construction rules of New; strings must be 14 digits. An empty string
// yields the zero Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			d.ts = ""
			return nil
		}
		if !IsDateValue(s) {
			return fmt.Errorf("%w: %q", ErrInvalidTimestampFormat, s)
		}
		d.ts = s
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTimestampFormat, data)
	}
	if _, err := n.Int64(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTimestampFormat, data)
	}
	d.setRaw(n.String())
	return nil
}

// Value stores the date as its 14-digit string. The zero Date is stored as NULL.
func (d Date) Value() (driver.Value, error) {
	if d.ts == "" {
		return nil, nil
	}
	return d.ts, nil
}

// Scan reads a CHAR(14) column, an integer column or a DATETIME column.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		d.ts = ""
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	case int64:
		d.setRaw(fmt.Sprint(v))
		return nil
	case time.Time:
		return d.setTime(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimestampFormat, src)
	}
}

func (d *Date) scanString(s string) error {
	if !IsDateValue(s) {
		return fmt.Errorf("%w: %q", ErrInvalidTimestampFormat, s)
	}
	d.ts = s
	return nil
}

// GormDataType reports the general data type used by gorm.
func (Date) GormDataType() string {
	return "string"
}

// GormDBDataType reports the column type used by gorm migrations.
func (Date) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres", "sqlite":
		return "varchar(14)"
	default:
		return "char(14)"
	}
}

package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day backed by a Postgres date column. It marshals
// as YYYY-MM-DD rather than a full RFC3339 timestamp.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(dateLayout, strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*d = Date(t)
	return nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = Date(v)
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	}
	return fmt.Errorf("cannot scan %T into Date", src)
}

func (d *Date) parse(s string) error {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	*d = Date(t)
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return time.Time(d), nil
}

// DateTime is a timestamp backed by a Postgres timestamp column.
type DateTime time.Time

// dateTimeLayouts lists the accepted wire formats, most specific first.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	dateLayout,
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format(time.RFC3339) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	return d.parse(strings.Trim(string(b), `"`))
}

func (d *DateTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateTime(v)
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	}
	return fmt.Errorf("cannot scan %T into DateTime", src)
}

func (d *DateTime) parse(s string) error {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*d = DateTime(t)
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

func (d DateTime) Value() (driver.Value, error) {
	return time.Time(d), nil
}

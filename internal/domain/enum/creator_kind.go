package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// CreatorKind identifies which kind of account committed a transaction
type CreatorKind int

const (
	CreatorKindAdmin    CreatorKind = 0
	CreatorKindEmployee CreatorKind = 1
)

func (k CreatorKind) String() string {
	switch k {
	case CreatorKindAdmin:
		return "admin"
	case CreatorKindEmployee:
		return "employee"
	}
	return "unknown"
}

func (k CreatorKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *CreatorKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*k = CreatorKind(i)
		return nil
	}
	switch str {
	case "admin":
		*k = CreatorKindAdmin
	case "employee":
		*k = CreatorKindEmployee
	}
	return nil
}

func (k CreatorKind) Value() (driver.Value, error) {
	return int64(k), nil
}

func (k *CreatorKind) Scan(value interface{}) error {
	if value == nil {
		*k = CreatorKindEmployee
		return nil
	}
	switch v := value.(type) {
	case int64:
		*k = CreatorKind(v)
	case int:
		*k = CreatorKind(v)
	}
	return nil
}

package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

type SnowflakeID int64

func (s SnowflakeID) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *SnowflakeID) Scan(value interface{}) error {
	switch v := value.(type) {
	case int64:
		*s = SnowflakeID(v)
		return nil
	case []byte:
		i, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return err
		}
		*s = SnowflakeID(i)
		return nil
	default:
		return fmt.Errorf("cannot convert %v to SnowflakeID", value)
	}
}

// Marshal: int64 -> string, supaya id tidak terpotong di javascript
func (s SnowflakeID) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(int64(s), 10))
}

// Unmarshal: terima string maupun angka
func (s *SnowflakeID) UnmarshalJSON(data []byte) error {
	var strID string
	if err := json.Unmarshal(data, &strID); err == nil {
		i, err := strconv.ParseInt(strID, 10, 64)
		if err != nil {
			return err
		}
		*s = SnowflakeID(i)
		return nil
	}
	var intID int64
	if err := json.Unmarshal(data, &intID); err != nil {
		return err
	}
	*s = SnowflakeID(intID)
	return nil
}

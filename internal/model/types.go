package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList 以 JSON 文本存储的字符串数组，兼容 MySQL 与 SQLite 的 LIKE 匹配
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		s = StringList{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	}
	return fmt.Errorf("unsupported type for StringList: %T", value)
}

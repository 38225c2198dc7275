package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// MessageStatus represents the status of a contact message
type MessageStatus int

const (
	MessageStatusNew      MessageStatus = 0
	MessageStatusRead     MessageStatus = 1
	MessageStatusReplied  MessageStatus = 2
	MessageStatusArchived MessageStatus = 3
)

func (s MessageStatus) String() string {
	names := [...]string{"New", "Read", "Replied", "Archived"}
	if int(s) < 0 || int(s) >= len(names) {
		return "New"
	}
	return names[s]
}

func (s MessageStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *MessageStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = MessageStatus(i)
		return nil
	}
	switch str {
	case "New":
		*s = MessageStatusNew
	case "Read":
		*s = MessageStatusRead
	case "Replied":
		*s = MessageStatusReplied
	case "Archived":
		*s = MessageStatusArchived
	}
	return nil
}

func (s MessageStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *MessageStatus) Scan(value interface{}) error {
	if value == nil {
		*s = MessageStatusNew
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = MessageStatus(v)
	case int:
		*s = MessageStatus(v)
	}
	return nil
}

package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ProjectStatus represents the status of a project
type ProjectStatus int

const (
	ProjectStatusPlanned   ProjectStatus = 0
	ProjectStatusActive    ProjectStatus = 1
	ProjectStatusOnHold    ProjectStatus = 2
	ProjectStatusCompleted ProjectStatus = 3
	ProjectStatusCanceled  ProjectStatus = 4
)

func (s ProjectStatus) String() string {
	names := [...]string{"Planned", "Active", "OnHold", "Completed", "Canceled"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Planned"
	}
	return names[s]
}

func (s ProjectStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ProjectStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ProjectStatus(i)
		return nil
	}
	switch str {
	case "Planned":
		*s = ProjectStatusPlanned
	case "Active":
		*s = ProjectStatusActive
	case "OnHold":
		*s = ProjectStatusOnHold
	case "Completed":
		*s = ProjectStatusCompleted
	case "Canceled":
		*s = ProjectStatusCanceled
	}
	return nil
}

func (s ProjectStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ProjectStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ProjectStatusPlanned
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ProjectStatus(v)
	case int:
		*s = ProjectStatus(v)
	}
	return nil
}

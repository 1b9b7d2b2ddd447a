// Package importer loads a YAML bundle of projects, household tasks,
// assignments, and external events, validates it, and converts it into
// domain objects ready for persistence.
package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Bundle is the top-level YAML structure for bulk import.
type Bundle struct {
	Projects       []ProjectImport       `yaml:"projects,omitempty"`
	HouseholdTasks []HouseholdTaskImport `yaml:"household_tasks,omitempty"`
	Assignments    []AssignmentImport    `yaml:"assignments,omitempty"`
	Events         []EventImport         `yaml:"external_events,omitempty"`
}

// ProjectImport defines a project entry in the import file.
type ProjectImport struct {
	Name                 string   `yaml:"name"`
	Description          string   `yaml:"description,omitempty"`
	TotalHours           float64  `yaml:"total_hours"`
	HoursUsed            float64  `yaml:"hours_used,omitempty"`
	AllocationPercentage float64  `yaml:"allocation_percentage"`
	WeeklyHourCap        *float64 `yaml:"weekly_hour_cap,omitempty"`
	DailyHourCap         *float64 `yaml:"daily_hour_cap,omitempty"`
	Priority             string   `yaml:"priority,omitempty"`
	SourceAdapter        string   `yaml:"source_adapter,omitempty"`
	SourceID             *string  `yaml:"source_id,omitempty"`
}

// HouseholdTaskImport defines a household task entry in the import file.
type HouseholdTaskImport struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description,omitempty"`
	DurationMinutes int      `yaml:"duration_minutes"`
	Recurrence      string   `yaml:"recurrence"`
	PreferredDays   []string `yaml:"preferred_days,omitempty"`
	Priority        string   `yaml:"priority,omitempty"`
}

// AssignmentImport defines an assignment entry in the import file.
type AssignmentImport struct {
	Course         string   `yaml:"course"`
	Name           string   `yaml:"name"`
	Description    string   `yaml:"description,omitempty"`
	DueDate        string   `yaml:"due_date"`
	EstimatedHours *float64 `yaml:"estimated_hours,omitempty"`
	Priority       string   `yaml:"priority,omitempty"`
}

// EventImport defines an external calendar event in the import file.
type EventImport struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Start       string `yaml:"start"`
	End         string `yaml:"end"`
	AllDay      bool   `yaml:"all_day,omitempty"`
	Category    string `yaml:"category,omitempty"`
}

// LoadBundle reads and parses an import YAML file.
func LoadBundle(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var bundle Bundle
	if err := yaml.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &bundle, nil
}

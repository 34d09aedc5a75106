package domain

// Config mirrors ~/.shellbridge/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Preferences         Preferences       `yaml:"preferences"`
	History             HistorySettings   `yaml:"history"`
	Execution           ExecutionSettings `yaml:"execution"`
}

// Preferences captures user-level toggles.
type Preferences struct {
	DefaultDirection string `yaml:"default_direction"`
	Color            string `yaml:"color"`
}

// HistorySettings configures translation history persistence.
type HistorySettings struct {
	Enabled    bool   `yaml:"enabled"`
	Backend    string `yaml:"backend"`
	RetainDays int    `yaml:"retain_days"`
}

// ExecutionSettings controls how translated commands run.
type ExecutionSettings struct {
	Shell          string `yaml:"shell"`
	TimeoutSeconds int    `yaml:"timeout"`
}

package config

import "github.com/heartmarshall/notedefs/internal/domain"

// Config is the root application configuration.
type Config struct {
	Definitions DefinitionsConfig `yaml:"definitions"`
	Workspace   WorkspaceConfig   `yaml:"workspace"`
	Sink        SinkConfig        `yaml:"sink"`
	Log         LogConfig         `yaml:"log"`
}

// DefinitionsConfig holds the options consulted when a new definition is created.
type DefinitionsConfig struct {
	DefaultFileType                   domain.StorageStrategy `yaml:"default_file_type"                     env:"DEFS_DEFAULT_FILE_TYPE"   env-default:"consolidated"`
	AutomaticallyDetermineNewDefTypes bool                   `yaml:"automatically_determine_new_def_types" env:"DEFS_AUTO_DETERMINE_TYPE"`
	ContextKey                        string                 `yaml:"context_key"                           env:"DEFS_CONTEXT_KEY"         env-default:"def-context"`
}

// WorkspaceConfig locates the notes workspace and its definition stores.
type WorkspaceConfig struct {
	Root      string `yaml:"root"       env:"WORKSPACE_ROOT"       env-default:"."`
	DefFolder string `yaml:"def_folder" env:"WORKSPACE_DEF_FOLDER" env-default:"definitions"`
	TypeKey   string `yaml:"type_key"   env:"WORKSPACE_TYPE_KEY"   env-default:"def-type"`
}

// SinkConfig selects where dispatched definition records are written.
// An empty Path means stdout.
type SinkConfig struct {
	Path string `yaml:"path" env:"SINK_PATH"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

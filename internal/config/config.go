package config

// Fixed file names of the dictionary source and the generated script,
// both relative to the working directory.
const (
	DefaultSourcePath = "edict2"
	DefaultOutputPath = "edict2.js"
)

// Config is the root application configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Export ExportConfig `yaml:"export"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// ExportConfig holds settings for the edict2 -> edict2.js conversion.
type ExportConfig struct {
	Subset     bool `yaml:"subset"      env:"EDICT_SUBSET"`
	BufferSize int  `yaml:"buffer_size" env:"EDICT_BUFFER_SIZE" env-default:"65536"`

	// SourcePath and OutputPath are fixed by the command; tests point them
	// elsewhere.
	SourcePath string `yaml:"-" env:"-"`
	OutputPath string `yaml:"-" env:"-"`
}

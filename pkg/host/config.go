package host

import (
	"github.com/spf13/viper"
)

// Config controls how guests are linked and run.
type Config struct {
	ModuleName  string `mapstructure:"module_name"`  // import module the guest resolves runtime symbols from
	AllocExport string `mapstructure:"alloc_export"` // guest allocator export used for returned strings
	Entry       string `mapstructure:"entry"`        // exported function invoked by run
	EnableWASI  bool   `mapstructure:"enable_wasi"`  // instantiate wasi_snapshot_preview1 alongside the runtime
	LogDB       string `mapstructure:"log_db"`       // run-log database file under the app dir
	ConsoleLog  bool   `mapstructure:"console_log"`  // mirror logs to the console instead of the database
}

func DefaultConfig() *Config {
	return &Config{
		ModuleName:  "env",
		AllocExport: "malloc",
		Entry:       "_start",
		EnableWASI:  true,
		LogDB:       "onu.db",
	}
}

// LoadConfig layers the defaults under an optional onu.yaml and ONU_*
// environment variables, in that order of precedence.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("onu")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/onu-go/")
	viper.AddConfigPath("$HOME/.onu-go")
	viper.SetEnvPrefix("ONU")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// No config file is fine; defaults and env apply.
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

package configs

// Current holds the effective configuration for this process.
var Current = DefaultConfig()

// Init loads the configuration at path, applies environment overrides,
// validates it and stores it in Current. It returns unknown config keys.
func Init(path string) ([]string, error) {
	cfg, unknown, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	Current = cfg
	return unknown, nil
}

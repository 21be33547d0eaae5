package config

const (
	defaultToolsDir  = "~/.local/share/flightline/tools"
	defaultLogDir    = "~/.local/share/flightline/logs"
	defaultToolName  = "lidar_flightline_overlap"
	defaultPalette   = "light_quant.pal"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ToolsDir: defaultToolsDir,
			LogDir:   defaultLogDir,
		},
		Tool: Tool{
			Name:    defaultToolName,
			Palette: defaultPalette,
			Verbose: true,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

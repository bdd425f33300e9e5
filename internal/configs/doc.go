// Package configs loads and saves campus configuration.
//
// Configuration is a TOML file at $CAMPUS_CONFIG, or at
// <user config dir>/campus/config.toml when the variable is unset:
//
//	[storage]
//	data_dir = "."
//	students_file = "students.txt"
//	accounts_file = "login.txt"
//	atomic_writes = false
//
//	[security]
//	key = "supersecret"
//
//	[output]
//	report_file = "report.csv"
//	transcript_file = "my_transcript.txt"
//
// A missing file is not an error; DefaultConfig applies. The CAMPUS_KEY and
// CAMPUS_DATA_DIR environment variables override the file.
//
// Relative file names are resolved against data_dir.
//
// # Settings
//
// Init stores the effective configuration in Current, which the workflows
// package reads. Tests replace Current directly.
package configs

// Hydroini validates and formats the INI input files of D-Flow FM and 1D2D
// hydraulic models.
//
// Usage:
//
//	# Validate files and report every structural violation
//	hydroini validate model.mdu structures.ini
//
//	# Validate again whenever a file changes
//	hydroini validate --watch structures.ini
//
//	# Rewrite a file with canonical key spelling and defaults filled in
//	hydroini fmt -w crsdef.ini
//
//	# Dump validated records
//	hydroini export --format json boundaryconditions.bc
//
//	# Report violations in Dutch
//	hydroini validate --lang nl structures.ini
//
//	# List the known record types
//	hydroini types
//
// Settings are read from the environment and a .env file:
// HYDROINI_LOG_LEVEL, HYDROINI_LOG_FORMAT, HYDROINI_NO_COLOR, HYDROINI_LANG,
// HYDROINI_JOBS and HYDROINI_WATCH_DEBOUNCE. Flags take precedence.
package main

import "os"

func main() {
	os.Exit(Execute(os.Args[1:]))
}

/*
Package config manages configuration parsing and validation for consoleclean.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +-----------+-----------+-----------+
	      |                       |           |
	+-----+-----+           +----+----+  +---+----+
	|   YAML    |           |   HCL   |  |  TOML  |
	| Parser    |           | Parser  |  | Parser |
	+-----------+           +---------+  +--------+

🎯 Purpose:
- Loads the optional cleanup configuration file
- Validates exclusion globs and extension sets
- Supplies working defaults when no file exists

🔄 Flow:
1. Probes the default config file names (or uses the --config path)
2. Picks a parser by file extension via the registry
3. Fills unset fields with defaults and validates

🤝 Interfaces:
- Parser: Format-specific parsing, registered at init time

📝 Design Philosophy:
The tool must run with zero configuration: every field of Config has a
default matching the behavior of running it bare in a project root.
A config file only narrows or widens the candidate set and relocates
the logger module.
*/
package config

// Package config seeds the logging core from the process
// environment, an optional dotenv file, or a YAML config file. All
// parsing is fail-open: malformed levels mean "no minimum", a
// missing pattern list enables only the first-party namespace
// prefix, and nothing in this package can error out the host
// application at startup.
package config

package impala

import "fmt"

// Connection defaults.
const (
	DefaultHost     = "localhost"
	DefaultPort     = 21050
	DefaultDatabase = "default"
)

// ConnectionDetails is the pass-through connection configuration
// surface. The adapter renders connection strings from it but owns no
// session or pool management.
type ConnectionDetails struct {
	Host     string
	Port     int
	Database string
	// Flags holds extra driver flags, appended verbatim after the
	// database segment (e.g. ";auth=noSasl").
	Flags string
}

// withDefaults fills unset fields with the dialect defaults.
func (c ConnectionDetails) withDefaults() ConnectionDetails {
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Database == "" {
		c.Database = DefaultDatabase
	}
	return c
}

// Subname renders the JDBC-style connection subname,
// //host:port/database<flags>.
func (c ConnectionDetails) Subname() string {
	c = c.withDefaults()
	return fmt.Sprintf("//%s:%d/%s%s", c.Host, c.Port, c.Database, c.Flags)
}

// DriverDSN renders the DSN the Go driver expects.
func (c ConnectionDetails) DriverDSN() string {
	c = c.withDefaults()
	return fmt.Sprintf("impala://%s:%d/%s%s", c.Host, c.Port, c.Database, c.Flags)
}

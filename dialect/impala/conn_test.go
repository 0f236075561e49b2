package impala

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubnameDefaults(t *testing.T) {
	assert.Equal(t, "//localhost:21050/default", ConnectionDetails{}.Subname())
}

func TestSubnameExplicit(t *testing.T) {
	details := ConnectionDetails{
		Host:     "impala.internal",
		Port:     21051,
		Database: "analytics",
		Flags:    ";auth=noSasl",
	}
	assert.Equal(t, "//impala.internal:21051/analytics;auth=noSasl", details.Subname())
}

func TestDriverDSN(t *testing.T) {
	details := ConnectionDetails{Host: "impala.internal", Database: "analytics"}
	assert.Equal(t, "impala://impala.internal:21050/analytics", details.DriverDSN())
}

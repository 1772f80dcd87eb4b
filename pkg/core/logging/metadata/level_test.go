/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package metadata

import (
	"testing"

	"github.com/hyperledger/fabric-cp-go/pkg/core/logging/api"
	"github.com/stretchr/testify/assert"
)

func TestLogLevels(t *testing.T) {

	mlevel := ModuleLevels{}

	mlevel.SetLevel("module-xyz-info", api.INFO)
	mlevel.SetLevel("module-xyz-debug", api.DEBUG)
	mlevel.SetLevel("module-xyz-error", api.ERROR)
	mlevel.SetLevel("module-xyz-warning", api.WARNING)

	//Run info level checks
	assert.True(t, mlevel.IsEnabledFor("module-xyz-info", api.INFO))
	assert.False(t, mlevel.IsEnabledFor("module-xyz-info", api.DEBUG))
	assert.True(t, mlevel.IsEnabledFor("module-xyz-info", api.ERROR))
	assert.True(t, mlevel.IsEnabledFor("module-xyz-info", api.WARNING))

	//Run debug level checks
	assert.True(t, mlevel.IsEnabledFor("module-xyz-debug", api.INFO))
	assert.True(t, mlevel.IsEnabledFor("module-xyz-debug", api.DEBUG))

	//Run error level checks
	assert.False(t, mlevel.IsEnabledFor("module-xyz-error", api.INFO))
	assert.True(t, mlevel.IsEnabledFor("module-xyz-error", api.ERROR))
	assert.False(t, mlevel.IsEnabledFor("module-xyz-error", api.WARNING))

	//Run warning level checks
	assert.False(t, mlevel.IsEnabledFor("module-xyz-warning", api.INFO))
	assert.True(t, mlevel.IsEnabledFor("module-xyz-warning", api.WARNING))

	//Run default log level check --> which is info currently
	assert.True(t, mlevel.IsEnabledFor("module-xyz-random-module", api.INFO))
	assert.False(t, mlevel.IsEnabledFor("module-xyz-random-module", api.DEBUG))

	//The empty module overrides the default
	mlevel.SetLevel("", api.DEBUG)
	assert.True(t, mlevel.IsEnabledFor("module-xyz-random-module", api.DEBUG))
	assert.False(t, mlevel.IsEnabledFor("module-xyz-info", api.DEBUG))
}

func TestParseLevel(t *testing.T) {
	for name, expected := range map[string]api.Level{
		"critical": api.CRITICAL,
		"ERROR":    api.ERROR,
		"Warning":  api.WARNING,
		"warn":     api.WARNING,
		"info":     api.INFO,
		"debug":    api.DEBUG,
	} {
		level, err := ParseLevel(name)
		assert.NoError(t, err, name)
		assert.Equal(t, expected, level, name)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)

	assert.Equal(t, "WARNING", ParseString(api.WARNING))
	assert.Equal(t, "UNKNOWN", ParseString(api.Level(42)))
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package logging

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger/fabric-cp-go/pkg/core/logging/api"
	"github.com/hyperledger/fabric-cp-go/pkg/core/logging/zaplog"
)

var moduleName = "module-xyz"
var moduleName2 = "module-xyz-deftest"
var buf bytes.Buffer

func resetLoggerInstance() {
	loggerProviderInstance = nil
	loggerProviderOnce = sync.Once{}
	buf.Reset()
}

func initTestProvider(t *testing.T) {
	resetLoggerInstance()
	p, err := zaplog.New(zaplog.Config{Writer: &buf})
	require.NoError(t, err)
	Initialize(p)
}

func TestLoggingForCustomLogger(t *testing.T) {
	initTestProvider(t)

	logger := NewLogger(moduleName)

	logger.Infof("info %d", 1)
	assert.Contains(t, buf.String(), `msg="info 1"`)
	assert.Contains(t, buf.String(), "module="+moduleName)

	logger.Warn("warning")
	assert.Contains(t, buf.String(), "level=warn")

	logger.Error("error")
	assert.Contains(t, buf.String(), "level=error")

	logger.Debug("hidden")
	assert.NotContains(t, buf.String(), "hidden")

	//Initialize only takes effect once
	other := &bytes.Buffer{}
	p, err := zaplog.New(zaplog.Config{Writer: other})
	require.NoError(t, err)
	Initialize(p)
	NewLogger(moduleName2).Info("still the first provider")
	assert.Contains(t, buf.String(), "still the first provider")
	assert.Empty(t, other.String())
}

func TestLevels(t *testing.T) {
	initTestProvider(t)

	assert.Equal(t, INFO, GetLevel(moduleName))
	assert.False(t, IsEnabledFor(moduleName, DEBUG))

	SetLevel(moduleName, DEBUG)
	assert.Equal(t, DEBUG, GetLevel(moduleName))
	assert.True(t, IsEnabledFor(moduleName, DEBUG))
	assert.Equal(t, INFO, GetLevel(moduleName2))

	NewLogger(moduleName).Debugf("debug %s", "visible")
	NewLogger(moduleName2).Debug("debug invisible")
	assert.Contains(t, buf.String(), "debug visible")
	assert.NotContains(t, buf.String(), "debug invisible")

	level, err := LogLevel("warning")
	require.NoError(t, err)
	assert.Equal(t, WARNING, level)
	_, err = LogLevel("loud")
	assert.Error(t, err)
}

func TestWith(t *testing.T) {
	initTestProvider(t)

	NewLogger(moduleName).With("enrollID", "carol").Info("got papers")
	assert.Contains(t, buf.String(), "enrollID=carol")
}

type countingProvider struct {
	mutex   sync.Mutex
	modules []string
}

func (p *countingProvider) GetLogger(module string) api.Logger {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.modules = append(p.modules, module)
	zp, _ := zaplog.New(zaplog.Config{Writer: &bytes.Buffer{}})
	return zp.GetLogger(module)
}

func TestProviderWithoutLevels(t *testing.T) {
	resetLoggerInstance()
	p := &countingProvider{}
	Initialize(p)

	SetLevel(moduleName, DEBUG)
	assert.Equal(t, INFO, GetLevel(moduleName))
	assert.True(t, IsEnabledFor(moduleName, WARNING))
	assert.False(t, IsEnabledFor(moduleName, DEBUG))

	// the module logger is resolved lazily, once
	logger := NewLogger(moduleName)
	logger.Info("a")
	logger.Info("b")
	assert.Equal(t, "cpaper/common,"+moduleName, strings.Join(p.modules, ","))
}

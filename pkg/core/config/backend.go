/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// defConfigBackend represents the default config backend
type defConfigBackend struct {
	configViper *viper.Viper
	opts        options
}

// Lookup gets the config item value by Key. Section keys resolve to the
// nested settings, environment overrides included.
func (c *defConfigBackend) Lookup(key string) (interface{}, bool) {
	var value interface{} = c.configViper.AllSettings()
	for _, part := range strings.Split(strings.ToLower(key), ".") {
		section, err := cast.ToStringMapE(value)
		if err != nil {
			return nil, false
		}
		var ok bool
		if value, ok = section[part]; !ok {
			return nil, false
		}
	}
	if value == nil {
		return nil, false
	}
	return value, true
}

// setDefaults registers every known key, so that environment overrides
// apply even when the config file omits them
func (c *defConfigBackend) setDefaults() {
	for key, value := range defaults {
		c.configViper.SetDefault(key, value)
	}
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package logging

import (
	"fmt"

	"github.com/hyperledger/fabric-cp-go/pkg/core/logging/zaplog"
)

var modName = "module-xyz"

func Example() {
	resetLoggerInstance()

	p, err := zaplog.New(zaplog.Config{Writer: &buf, Format: zaplog.JSONFormat})
	if err != nil {
		fmt.Println(err)
		return
	}
	Initialize(p)

	//Create new logger
	logger := NewLogger(modName)

	logger.Info("log test data")

	fmt.Println("log info is completed")

	// Output: log info is completed
}

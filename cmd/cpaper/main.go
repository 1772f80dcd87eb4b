/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import "github.com/hyperledger/fabric-cp-go/cmd/cpaper/cli"

func main() {
	cli.Execute()
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package fabriccp enables Go developers to trade commercial paper on a Hyperledger Fabric network.
//
// Packages for end developer usage
//
// pkg/client/cpaper: The commercial paper client. It creates trading accounts, issues and transfers
// papers and queries them, on behalf of enrolled members.
//
// pkg/fab/gwchain: A chain provider resolving the members of a file system wallet to Fabric gateway
// connections.
//
// pkg/core/config: Loads the client settings from a YAML or JSON file, with environment overrides.
//
// cmd/cpaper: A command line tool over the client.
//
// Basic workflow
//
//  1) Open a chain provider with gwchain.New
//  2) Create a commercial paper client with cpaper.New
//  3) Call CreateCompany, CreatePaper, TransferPaper, GetPapers ...
//  4) Close the provider once done
package fabriccp

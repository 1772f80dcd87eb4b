/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"

	"github.com/hyperledger/fabric-cp-go/pkg/client/cpaper"
)

// output formats of the query commands
const (
	jsonOutput = "json"
	yamlOutput = "yaml"
)

func newCreateCompanyCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "create-company <enrollID>",
		Short: "Create the trading account of an enrolled member.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(func(client *cpaper.Client) error {
				if err := client.CreateCompany(contextOf(cmd), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(s.out, "created company %s\n", args[0])
				return nil
			})
		},
	}
}

type paperFlags struct {
	file     string
	cusip    string
	ticker   string
	par      float64
	qty      int
	discount float64
	maturity int
}

func newCreatePaperCmd(s *session) *cobra.Command {
	var pf paperFlags

	cmd := &cobra.Command{
		Use:   "create-paper <enrollID>",
		Short: "Issue a commercial paper owned by the issuing member.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paper, err := pf.paper(args[0])
			if err != nil {
				return err
			}
			return s.run(func(client *cpaper.Client) error {
				if err := client.CreatePaper(contextOf(cmd), args[0], paper); err != nil {
					return err
				}
				fmt.Fprintln(s.out, "created paper")
				return nil
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&pf.file, "file", "f", "", "Reads the paper from a JSON file; the other paper flags are ignored")
	flags.StringVar(&pf.cusip, "cusip", "", "Sets the CUSIP of the paper")
	flags.StringVar(&pf.ticker, "ticker", "", "Sets the ticker of the paper")
	flags.Float64Var(&pf.par, "par", 0, "Sets the par value")
	flags.IntVar(&pf.qty, "qty", 0, "Sets the issued quantity")
	flags.Float64Var(&pf.discount, "discount", 0, "Sets the discount")
	flags.IntVar(&pf.maturity, "maturity", 0, "Sets the maturity, in days")

	return cmd
}

// paper returns the paper described by the flags, issued by enrollID
func (pf *paperFlags) paper(enrollID string) (interface{}, error) {
	if pf.file != "" {
		raw, err := ioutil.ReadFile(pf.file)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read paper")
		}
		if !json.Valid(raw) {
			return nil, errors.Errorf("%s does not hold a JSON document", pf.file)
		}
		return json.RawMessage(raw), nil
	}

	if pf.ticker == "" {
		return nil, errors.New("either --file or --ticker is required")
	}
	if pf.qty <= 0 {
		return nil, errors.New("--qty must be positive")
	}

	return cpaper.Paper{
		CUSIP:     pf.cusip,
		Ticker:    pf.ticker,
		Par:       pf.par,
		Qty:       pf.qty,
		Discount:  pf.discount,
		Maturity:  pf.maturity,
		Owners:    []cpaper.Owner{{Company: enrollID, Quantity: pf.qty}},
		Issuer:    enrollID,
		IssueDate: strconv.FormatInt(time.Now().UnixNano()/int64(time.Millisecond), 10),
	}, nil
}

func newGetPapersCmd(s *session) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "get-papers <enrollID>",
		Short: "List every commercial paper.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(func(client *cpaper.Client) error {
				papers, err := client.GetPapers(contextOf(cmd), args[0])
				if err != nil {
					return err
				}
				return printPayload(s.out, papers, output)
			})
		},
	}
	addOutputFlag(cmd, &output)
	return cmd
}

func newGetPaperCmd(s *session) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "get-paper <enrollID> <cusip>",
		Short: "Show a commercial paper.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(func(client *cpaper.Client) error {
				paper, err := client.GetPaper(contextOf(cmd), args[0], args[1])
				if err != nil {
					return err
				}
				return printPayload(s.out, paper, output)
			})
		},
	}
	addOutputFlag(cmd, &output)
	return cmd
}

func newGetCompanyCmd(s *session) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "get-company <enrollID> <company>",
		Short: "Show the trading account of a company.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(func(client *cpaper.Client) error {
				company, err := client.GetCompany(contextOf(cmd), args[0], args[1])
				if err != nil {
					return err
				}
				return printPayload(s.out, company, output)
			})
		},
	}
	addOutputFlag(cmd, &output)
	return cmd
}

func newTransferPaperCmd(s *session) *cobra.Command {
	var transfer cpaper.Transfer

	cmd := &cobra.Command{
		Use:   "transfer-paper <enrollID>",
		Short: "Transfer a quantity of a paper to another company.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if transfer.FromCompany == "" {
				transfer.FromCompany = args[0]
			}
			if transfer.CUSIP == "" || transfer.ToCompany == "" {
				return errors.New("--cusip and --to are required")
			}
			if transfer.Quantity <= 0 {
				return errors.New("--quantity must be positive")
			}
			return s.run(func(client *cpaper.Client) error {
				if err := client.TransferPaper(contextOf(cmd), args[0], transfer); err != nil {
					return err
				}
				fmt.Fprintf(s.out, "transferred %d of %s from %s to %s\n",
					transfer.Quantity, transfer.CUSIP, transfer.FromCompany, transfer.ToCompany)
				return nil
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&transfer.CUSIP, "cusip", "", "Sets the CUSIP of the paper to transfer")
	flags.StringVar(&transfer.FromCompany, "from", "", "Sets the selling company (default: the enrolled member)")
	flags.StringVar(&transfer.ToCompany, "to", "", "Sets the buying company")
	flags.IntVar(&transfer.Quantity, "quantity", 0, "Sets the quantity to transfer")
	flags.Float64Var(&transfer.Discount, "discount", 0, "Sets the discount of the sale")

	return cmd
}

func addOutputFlag(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVarP(output, "output", "o", jsonOutput, "Sets the output format (json, yaml)")
}

// printPayload writes a chaincode JSON payload in the requested format
func printPayload(out io.Writer, payload, format string) error {
	switch format {
	case jsonOutput:
		_, err := fmt.Fprintln(out, payload)
		return err
	case yamlOutput:
		var doc interface{}
		if err := json.Unmarshal([]byte(payload), &doc); err != nil {
			return errors.Wrap(err, "chaincode returned malformed JSON")
		}
		raw, err := yaml.Marshal(doc)
		if err != nil {
			return errors.Wrap(err, "failed to encode yaml")
		}
		_, err = out.Write(raw)
		return err
	default:
		return errors.Errorf("unsupported output format %s", format)
	}
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	logger.Debug("command has no context, using background")
	return context.Background()
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger/fabric-cp-go/pkg/common/providers/chain"
	"github.com/hyperledger/fabric-cp-go/pkg/common/providers/chain/mocks"
	"github.com/hyperledger/fabric-cp-go/pkg/core/config"
)

var configFile = filepath.Join("testdata", "config.yaml")

type harness struct {
	ctrl     *gomock.Controller
	provider *mocks.MockProvider
	member   *mocks.MockMember
	out      *bytes.Buffer
	opened   int
	released int
}

func newHarness(t *testing.T) *harness {
	ctrl := gomock.NewController(t)
	return &harness{
		ctrl:     ctrl,
		provider: mocks.NewMockProvider(ctrl),
		member:   mocks.NewMockMember(ctrl),
		out:      new(bytes.Buffer),
	}
}

func (h *harness) factory(cfg *config.Config) (chain.Provider, func(), error) {
	h.opened++
	return h.provider, func() { h.released++ }, nil
}

func (h *harness) execute(args ...string) error {
	cmd := NewCmd(h.out, h.factory)
	cmd.SetArgs(args)
	cmd.SetOut(ioutil.Discard)
	cmd.SetErr(ioutil.Discard)
	return cmd.Execute()
}

func TestCreateCompany(t *testing.T) {
	h := newHarness(t)
	defer h.ctrl.Finish()

	h.provider.EXPECT().GetMember(gomock.Any(), "alice").Return(h.member, nil)
	h.member.EXPECT().
		Invoke(chain.Request{ChaincodeID: "cp", Fcn: "createAccount", Args: []string{"alice"}}).
		Return(chain.NewTransaction(chain.NewSubmittedEvent(nil)))

	require.NoError(t, h.execute("create-company", "alice", "--config", configFile))
	assert.Equal(t, "created company alice\n", h.out.String())
	assert.Equal(t, 1, h.opened)
	assert.Equal(t, 1, h.released)
}

func TestCreateCompanyFailure(t *testing.T) {
	h := newHarness(t)
	defer h.ctrl.Finish()

	h.provider.EXPECT().GetMember(gomock.Any(), "alice").Return(nil, fmt.Errorf("not enrolled"))

	err := h.execute("create-company", "alice", "--config", configFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not enrolled")
	assert.Equal(t, 1, h.released, "the provider is released on failure too")
}

func TestCreatePaperFromFile(t *testing.T) {
	h := newHarness(t)
	defer h.ctrl.Finish()

	h.provider.EXPECT().GetMember(gomock.Any(), "bob").Return(h.member, nil)
	h.member.EXPECT().
		Invoke(chain.Request{
			ChaincodeID: "cp",
			Fcn:         "issueCommercialPaper",
			Args:        []string{`{"cusip":"ABC123","ticker":"ABC","par":100,"qty":10}`},
		}).
		Return(chain.NewTransaction(chain.NewCompletedEvent(nil)))

	require.NoError(t, h.execute("create-paper", "bob", "--config", configFile, "--file", filepath.Join("testdata", "paper.json")))
	assert.Equal(t, "created paper\n", h.out.String())
}

func TestCreatePaperFromFlags(t *testing.T) {
	h := newHarness(t)
	defer h.ctrl.Finish()

	h.provider.EXPECT().GetMember(gomock.Any(), "bob").Return(h.member, nil)
	h.member.EXPECT().Invoke(gomock.Any()).DoAndReturn(func(request chain.Request) chain.Transaction {
		assert.Equal(t, "issueCommercialPaper", request.Fcn)
		require.Len(t, request.Args, 1)
		assert.Contains(t, request.Args[0], `"ticker":"BOB"`)
		assert.Contains(t, request.Args[0], `"owner":[{"company":"bob","quantity":5}]`)
		assert.Contains(t, request.Args[0], `"issuer":"bob"`)
		return chain.NewTransaction(chain.NewSubmittedEvent(nil))
	})

	require.NoError(t, h.execute("create-paper", "bob", "--config", configFile,
		"--ticker", "BOB", "--qty", "5", "--par", "100", "--maturity", "30"))
}

func TestCreatePaperInvalidFlags(t *testing.T) {
	h := newHarness(t)
	defer h.ctrl.Finish()

	assert.Error(t, h.execute("create-paper", "bob", "--config", configFile))
	assert.Error(t, h.execute("create-paper", "bob", "--config", configFile, "--ticker", "BOB"))
	assert.Error(t, h.execute("create-paper", "bob", "--config", configFile, "--file", configFile))
	assert.Equal(t, 0, h.opened)
}

func TestGetPapers(t *testing.T) {
	h := newHarness(t)
	defer h.ctrl.Finish()

	h.provider.EXPECT().GetMember(gomock.Any(), "carol").Return(h.member, nil).Times(2)
	h.member.EXPECT().
		Query(chain.Request{ChaincodeID: "cp", Fcn: "query", Args: []string{"GetAllCPs", "carol"}}).
		Return(chain.NewTransaction(chain.NewQueryCompleteEvent([]byte(`[{"cusip":"A","qty":10}]`)))).
		Times(2)

	require.NoError(t, h.execute("get-papers", "carol", "--config", configFile))
	assert.Equal(t, "[{\"cusip\":\"A\",\"qty\":10}]\n", h.out.String())

	h.out.Reset()
	require.NoError(t, h.execute("get-papers", "carol", "--config", configFile, "--output", "yaml"))
	assert.Equal(t, "- cusip: A\n  qty: 10\n", h.out.String())
}

func TestGetPaperAndCompany(t *testing.T) {
	h := newHarness(t)
	defer h.ctrl.Finish()

	h.provider.EXPECT().GetMember(gomock.Any(), "carol").Return(h.member, nil).Times(2)
	h.member.EXPECT().
		Query(chain.Request{ChaincodeID: "cp", Fcn: "query", Args: []string{"GetCP", "ABC123"}}).
		Return(chain.NewTransaction(chain.NewQueryCompleteEvent([]byte(`{"cusip":"ABC123"}`))))
	h.member.EXPECT().
		Query(chain.Request{ChaincodeID: "cp", Fcn: "query", Args: []string{"GetCompany", "bob"}}).
		Return(chain.NewTransaction(chain.NewQueryCompleteEvent([]byte(`{"id":"bob"}`))))

	require.NoError(t, h.execute("get-paper", "carol", "ABC123", "--config", configFile, "-o", "yaml"))
	assert.Equal(t, "cusip: ABC123\n", h.out.String())

	h.out.Reset()
	require.NoError(t, h.execute("get-company", "carol", "bob", "--config", configFile))
	assert.Equal(t, "{\"id\":\"bob\"}\n", h.out.String())
}

func TestUnsupportedOutput(t *testing.T) {
	h := newHarness(t)
	defer h.ctrl.Finish()

	h.provider.EXPECT().GetMember(gomock.Any(), "carol").Return(h.member, nil)
	h.member.EXPECT().Query(gomock.Any()).Return(chain.NewTransaction(chain.NewQueryCompleteEvent([]byte("[]"))))

	assert.Error(t, h.execute("get-papers", "carol", "--config", configFile, "--output", "xml"))
}

func TestTransferPaper(t *testing.T) {
	h := newHarness(t)
	defer h.ctrl.Finish()

	h.provider.EXPECT().GetMember(gomock.Any(), "bob").Return(h.member, nil)
	h.member.EXPECT().
		Invoke(chain.Request{
			ChaincodeID: "cp",
			Fcn:         "transferPaper",
			Args:        []string{`{"cusip":"ABC123","fromCompany":"bob","toCompany":"alice","quantity":3,"discount":0}`},
		}).
		Return(chain.NewTransaction(chain.NewCompletedEvent(nil)))

	require.NoError(t, h.execute("transfer-paper", "bob", "--config", configFile,
		"--cusip", "ABC123", "--to", "alice", "--quantity", "3"))
	assert.Equal(t, "transferred 3 of ABC123 from bob to alice\n", h.out.String())

	assert.Error(t, h.execute("transfer-paper", "bob", "--config", configFile, "--cusip", "ABC123"))
}

func TestInvalidConfig(t *testing.T) {
	h := newHarness(t)
	defer h.ctrl.Finish()

	err := h.execute("create-company", "alice", "--config", filepath.Join("testdata", "invalid.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")

	err = h.execute("create-company", "alice", "--config", configFile, "--log-level", "loud")
	require.Error(t, err)

	assert.Equal(t, 0, h.opened)
}

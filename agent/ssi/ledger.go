package ssi

import (
	"encoding/json"

	"github.com/findy-network/findy-ledger-cnx/agent/async"
	"github.com/findy-network/findy-ledger-cnx/agent/utils"
	"github.com/findy-network/findy-wrapper-go/ledger"
)

// TxnGetTAA is the ledger transaction type of GET_TXN_AUTHR_AGRMT.
const TxnGetTAA = "6"

type request struct {
	ReqID           uint64    `json:"reqId"`
	Identifier      string    `json:"identifier"`
	Operation       operation `json:"operation"`
	ProtocolVersion uint64    `json:"protocolVersion"`
}

type operation struct {
	Type string `json:"type"`
}

// BuildGetTAARequest builds a GET_TXN_AUTHR_AGRMT read request for the latest
// transaction author agreement.
func BuildGetTAARequest(submitter string, protocolVersion uint64) (string, error) {
	b, err := json.Marshal(request{
		ReqID:           utils.NewNonce(),
		Identifier:      submitter,
		Operation:       operation{Type: TxnGetTAA},
		ProtocolVersion: protocolVersion,
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// SignAndSubmit signs the request with the submitter's key from the wallet,
// sends it to the pool, and returns the ledger's response.
func SignAndSubmit(pool, wallet int, submitter, req string) (string, error) {
	f := async.NewFuture(ledger.SignAndSubmitRequest(pool, wallet, submitter, req))
	if err := f.Err(); err != nil {
		return "", err
	}
	return f.Str1(), nil
}

package main

import (
	"github.com/findy-network/findy-ledger-cnx/cmd"
	"github.com/golang/glog"
)

func main() {
	defer glog.Flush()

	cmd.Execute()
}

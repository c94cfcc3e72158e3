// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/carbonledger/carbond/rpc"
)

// GetStatus - retrieve daemon version, uptime and ledger time
func (client *Client) GetStatus() (*rpc.NodeInfoReply, error) {

	arguments := rpc.NodeInfoArguments{}
	var reply rpc.NodeInfoReply
	if err := client.client.Call("Node.Info", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

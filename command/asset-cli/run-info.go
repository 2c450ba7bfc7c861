// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runInfo(c *cli.Context) error {

	client, m, err := newClient(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetInfo()
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runIdentity(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	principal, err := selfPrincipal(m)
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "%s\n", principal)

	return nil
}

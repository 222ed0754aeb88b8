package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/calebcase/decint/integer"
)

func (a *app) encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode X...",
		Short: "Print the hex block encoding of one or more integers",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runEncode,
	}
}

func (a *app) runEncode(cmd *cobra.Command, args []string) error {
	buf := bytes.NewBuffer(nil)
	enc := integer.NewEncoder(buf)

	for _, arg := range args {
		x, err := a.parse(arg)
		if err != nil {
			return err
		}

		err = enc.Encode(x)
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf.Bytes()))

	return err
}

func (a *app) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode HEX",
		Short: "Print the integers in a hex block encoding, one per line",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runDecode,
	}
}

func (a *app) runDecode(cmd *cobra.Command, args []string) error {
	data, err := hex.DecodeString(args[0])
	if err != nil {
		return integer.Error.Wrap(err)
	}

	dec := integer.NewDecoder(bytes.NewReader(data))
	for {
		var x integer.Int

		err = dec.Decode(&x)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), x)
		if err != nil {
			return err
		}
	}
}

package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oba-ldap/dnkit/dn"
	"github.com/oba-ldap/dnkit/oid"
)

// addOutputFlag registers the shared --out flag on a flag set.
func addOutputFlag(fs *pflag.FlagSet, out *string) {
	fs.StringVarP(out, "out", "o", "hex", "Output format: hex, base64")
}

// newEncodeCmd builds the encode command: RFC 4514 string in, DER out.
func newEncodeCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "encode <distinguished-name>",
		Short: "Encode an RFC 4514 distinguished name to DER",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := dn.ParseName(args[0])
			if err != nil {
				return err
			}
			slog.Debug("parsed distinguished name", "rdns", name.Len())
			raw, err := name.Bytes()
			if err != nil {
				return err
			}
			switch out {
			case "hex":
				fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(raw))
			case "base64":
				fmt.Fprintln(cmd.OutOrStdout(), base64.StdEncoding.EncodeToString(raw))
			default:
				return fmt.Errorf("unknown output format %q", out)
			}
			return nil
		},
	}
	addOutputFlag(cmd.Flags(), &out)
	return cmd
}

// newNormalizeCmd builds the normalize command: parse a DN and print
// its canonical RFC 4514 form.
func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <distinguished-name>",
		Short: "Parse a distinguished name and print its normalized RFC 4514 form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := dn.ParseName(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name.String())
			return nil
		},
	}
}

// newLookupCmd builds the lookup command: resolve an attribute type by
// short name or dotted OID.
func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <short-name-or-oid>",
		Short: "Look up a distinguished name attribute type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := args[0]
			o, ok := oid.ByShortName(arg)
			if !ok {
				parsed, err := oid.Parse(strings.TrimPrefix(arg, "OID."))
				if err != nil {
					return fmt.Errorf("unknown attribute type %q", arg)
				}
				o = parsed
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "oid: %s\n", o)
			if n, ok := oid.DescriptiveName(o); ok {
				fmt.Fprintf(w, "name: %s\n", n)
			}
			if n, ok := oid.ShortName(o); ok {
				fmt.Fprintf(w, "short name: %s\n", n)
			}
			if b, ok := oid.UpperBound(o); ok {
				fmt.Fprintf(w, "upper bound: %d\n", b)
			}
			return nil
		},
	}
}

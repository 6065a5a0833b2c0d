// Command lobcli is the language binding spec.md §6 asks for: it wraps
// orderbook.Engine.Execute and performs no matching logic of its own; it
// exposes none of the BookQuery methods. It reads a script of newline-delimited JSON
// commands and writes the resulting newline-delimited JSON events,
// grounded in the teacher's x/orderbook/client/cli (tx.go/query.go) and
// cmd/perpdexd/cmd conventions, adapted from cobra subcommands wired to a
// chain client into cobra subcommands wired directly to an in-process
// Engine.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openalpha/lobcore/orderbook"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lobcli",
		Short: "Drive an in-memory limit order book from a command script",
	}
	root.PersistentFlags().String("backend", "btree", "side book backend: btree or skiplist")
	root.PersistentFlags().Int("depth", 10, "depth setting, bound to config key 'depth'; no subcommand reads it")
	viper.BindPFlag("backend", root.PersistentFlags().Lookup("backend"))
	viper.BindPFlag("depth", root.PersistentFlags().Lookup("depth"))

	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [script]",
		Short: "Execute a newline-delimited JSON command script and print events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend := orderbook.BackendBTree
			if viper.GetString("backend") == "skiplist" {
				backend = orderbook.BackendSkipList
			}
			return runScript(args[0], backend)
		},
	}
}

func runScript(path string, backend orderbook.Backend) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("lobcli: opening script: %w", err)
	}
	defer f.Close()

	engine := orderbook.NewEngine(backend)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		cmd, err := orderbook.DecodeCommand(line)
		if err != nil {
			return fmt.Errorf("lobcli: %w", err)
		}

		evt := engine.Execute(cmd)
		encoded, err := orderbook.EncodeEvent(evt)
		if err != nil {
			return fmt.Errorf("lobcli: encoding event: %w", err)
		}
		if _, err := out.Write(encoded); err != nil {
			return err
		}
		if err := out.WriteByte('\n'); err != nil {
			return err
		}
	}
	return scanner.Err()
}

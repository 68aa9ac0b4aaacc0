// Package client provides test commands for the catalog gRPC service
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/vladmesh/dnd-helper-sub000/internal/handlers/catalog/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	lang       string
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the catalog",
	Long:  `Client commands allow you to test the catalog by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&lang, "lang", "", "Response language (ru or en)")

	ClientCmd.AddCommand(getMonsterCmd)
	ClientCmd.AddCommand(listMonstersCmd)
	ClientCmd.AddCommand(rollHitPointsCmd)

	ClientCmd.AddCommand(getSpellCmd)
	ClientCmd.AddCommand(listSpellsCmd)

	ClientCmd.AddCommand(listLabelsCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// call sends one request and prints the response as indented JSON
func call(method string, req map[string]any) error {
	conn, err := createConnection()
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if lang != "" {
		req["lang"] = lang
	}

	resp, err := v1alpha1.NewClient(conn).Call(ctx, method, req)
	if err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(resp)
}

// optionalBool returns the flag value only when the user set it
func optionalBool(cmd *cobra.Command, name string) (bool, bool) {
	if !cmd.Flags().Changed(name) {
		return false, false
	}
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false, false
	}
	return v, true
}

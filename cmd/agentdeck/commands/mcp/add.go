package mcp

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"agentdeck/internal/app"
	"agentdeck/internal/errors"
	"agentdeck/internal/mcp"
)

var (
	addType    string
	addCommand string
	addArgs    []string
	addEnv     []string
	addURL     string
	addHeaders []string
	addTimeout int
	addFile    string
)

func init() {
	addCmd.Flags().StringVar(&addType, "type", "", "transport: stdio, http, or sse (inferred when omitted)")
	addCmd.Flags().StringVar(&addCommand, "command", "", "command for a stdio server")
	addCmd.Flags().StringArrayVar(&addArgs, "arg", nil, "command argument (repeatable)")
	addCmd.Flags().StringArrayVar(&addEnv, "env", nil, "environment variable KEY=VALUE (repeatable)")
	addCmd.Flags().StringVar(&addURL, "url", "", "endpoint URL for a remote server")
	addCmd.Flags().StringArrayVar(&addHeaders, "header", nil, "request header KEY=VALUE (repeatable)")
	addCmd.Flags().IntVar(&addTimeout, "timeout", 0, "request timeout in seconds")
	addCmd.Flags().StringVarP(&addFile, "file", "f", "", "read a raw JSON config body from a file ('-' for stdin)")
	Cmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create an MCP server config",
	Example: `  agentdeck mcp add github --command npx --arg -y --arg @modelcontextprotocol/server-github \
      --env GITHUB_PERSONAL_ACCESS_TOKEN=ghp_xxx
  agentdeck mcp add docs --url https://docs.example.com/mcp
  agentdeck mcp add custom -f server.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		return runAdd(a, cmd.OutOrStdout(), cmd.InOrStdin(), args[0])
	},
}

func runAdd(a *app.App, w io.Writer, stdin io.Reader, name string) error {
	if _, err := a.Store.ReadMCPServer(name); err == nil {
		return errors.NewUserError(
			errors.Newf("MCP server %q already exists", name),
			"Use 'agentdeck mcp remove' first to replace it")
	}

	if addFile != "" {
		return addFromFile(a, w, stdin, name)
	}

	if addCommand == "" && addURL == "" {
		return errors.NewUserError(nil, "Provide --command, --url, or --file")
	}

	env, err := parsePairs(addEnv, "--env")
	if err != nil {
		return err
	}
	headers, err := parsePairs(addHeaders, "--header")
	if err != nil {
		return err
	}

	cfg := mcp.New(name)
	cfg.Type = addType
	cfg.Command = addCommand
	cfg.Args = addArgs
	cfg.Env = env
	cfg.URL = addURL
	cfg.Headers = headers
	cfg.Timeout = addTimeout
	cfg.Normalize()

	if err := a.Store.SaveMCPServer(cfg); err != nil {
		return err
	}
	fmt.Fprintf(w, "Created MCP server %q (%s).\n", name, cfg.Type)
	return nil
}

func addFromFile(a *app.App, w io.Writer, stdin io.Reader, name string) error {
	var data []byte
	var err error
	if addFile == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(addFile)
	}
	if err != nil {
		return errors.Wrapf(err, "reading config for %q", name)
	}

	cfg, err := a.Store.SaveMCPServerRaw(name, data)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Created MCP server %q (%s).\n", name, cfg.Type)
	return nil
}

// parsePairs splits KEY=VALUE flag values into a map.
func parsePairs(pairs []string, flag string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return nil, errors.NewUserError(
				errors.Newf("invalid %s value %q", flag, p),
				"Expected KEY=VALUE")
		}
		out[key] = value
	}
	return out, nil
}

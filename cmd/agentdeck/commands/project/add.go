package project

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"agentdeck/cmd/agentdeck/commands/flags"
	"agentdeck/internal/app"
	"agentdeck/internal/cli"
	"agentdeck/internal/errors"
	"agentdeck/internal/store"
	"agentdeck/internal/sync"
)

var (
	addDescription string
	addDirectory   string
	addSkills      []string
	addServers     []string
	addDetect      bool
)

func init() {
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "project description")
	addCmd.Flags().StringVar(&addDirectory, "directory", "", "project directory path")
	addCmd.Flags().StringSliceVar(&addSkills, "skill", nil, "skill(s) to attach")
	addCmd.Flags().StringSliceVar(&addServers, "mcp", nil, "MCP server(s) to attach")
	addCmd.Flags().BoolVar(&addDetect, "detect", false,
		"autodetect agents and servers from the project directory")
	Cmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a project",
	Example: `  agentdeck project add web-app --directory ~/src/web-app
  agentdeck project add web-app --directory ~/src/web-app --detect
  agentdeck project add api --skill deploy --mcp github --agent claude`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		return runAdd(a, cmd.OutOrStdout(), args[0])
	},
}

func runAdd(a *app.App, w io.Writer, name string) error {
	if _, err := a.Store.ReadProject(name); err == nil {
		return errors.NewUserError(
			errors.Newf("project %q already exists", name),
			"Use 'agentdeck project show' to inspect it")
	}

	agents, err := cli.ResolveAgents(flags.GetAgentFlag(), a.Config.DefaultAgents)
	if err != nil {
		return err
	}

	p := &store.Project{
		Name:        name,
		Description: addDescription,
		Directory:   addDirectory,
		Skills:      addSkills,
		MCPServers:  addServers,
		Agents:      agents,
	}

	if addDetect {
		if addDirectory == "" {
			return errors.NewUserError(nil, "--detect requires --directory")
		}
		d, err := sync.Autodetect(addDirectory)
		if err != nil {
			return err
		}
		if len(d.Agents) > 0 {
			p.Agents = d.Agents
		}
		p.MCPServers = append(p.MCPServers, d.MCPServers...)
		p.Skills = append(p.Skills, d.Skills...)
	}

	if err := a.Store.SaveProject(p); err != nil {
		return err
	}
	fmt.Fprintf(w, "Created project %q.\n", name)
	return nil
}

package market

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"agentdeck/internal/app"
	"agentdeck/internal/errors"
	"agentdeck/internal/marketplace"
)

var installCreds []string

func init() {
	installCmd.Flags().StringArrayVar(&installCreds, "cred", nil,
		"credential KEY=VALUE required by the entry (repeatable)")
	Cmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install <id>",
	Short: "Install a catalog entry",
	Example: `  agentdeck market install community/code-review
  agentdeck market install community/github --kind mcp \
      --cred GITHUB_PERSONAL_ACCESS_TOKEN=ghp_xxx`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		kind, err := resolveKind()
		if err != nil {
			return err
		}
		return runInstall(cmd.Context(), a, cmd.OutOrStdout(), kind, args[0])
	},
}

func runInstall(ctx context.Context, a *app.App, w io.Writer, kind marketplace.Kind, id string) error {
	creds, err := parseCreds(installCreds)
	if err != nil {
		return err
	}

	entries, err := a.Market.List(ctx, kind)
	if err != nil {
		return err
	}
	var entry *marketplace.Entry
	for i := range entries {
		if entries[i].ID == id {
			entry = &entries[i]
			break
		}
	}
	if entry == nil {
		return errors.WithDetailf(errors.ErrNotFound, "%s marketplace entry %q", kind, id)
	}

	res, err := a.Installer.Install(entry, creds)
	if err != nil {
		if errors.Is(err, marketplace.ErrMissingCredentials) {
			return errors.NewUserError(err, credHint(entry))
		}
		return err
	}

	if res.AlreadyInstalled {
		fmt.Fprintf(w, "%q is already installed.\n", res.Name)
		return nil
	}
	fmt.Fprintln(w, a.Theme.Success.Render(fmt.Sprintf("Installed %s %q.", kind, res.Name)))
	return nil
}

func parseCreds(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return nil, errors.NewUserError(
				errors.Newf("invalid --cred value %q", p),
				"Expected KEY=VALUE")
		}
		out[key] = value
	}
	return out, nil
}

func credHint(e *marketplace.Entry) string {
	keys := make([]string, 0, len(e.Credentials))
	for _, c := range e.Credentials {
		keys = append(keys, c.Key)
	}
	return "Pass --cred " + strings.Join(keys, "=... --cred ") + "=..."
}
